package main

// Chrome detection depends on the host, so these tests assert the observable
// report structure rather than whether a browser is installed. Environment
// mutation rules out t.Parallel.

import (
	"bytes"
	"encoding/json"
	"runtime"
	"strings"
	"testing"
)

func runDoctorJSON(t *testing.T) (*doctorResult, int) {
	t.Helper()

	var stdout bytes.Buffer
	env := &Environment{Stdout: &stdout, Stderr: &bytes.Buffer{}}

	code := runDoctorCmd([]string{"--json"}, env)

	var result doctorResult
	if err := json.Unmarshal(stdout.Bytes(), &result); err != nil {
		t.Fatalf("invalid JSON output: %v\n%s", err, stdout.String())
	}
	return &result, code
}

func TestRunDoctorCmd_JSONOutput(t *testing.T) {
	result, code := runDoctorJSON(t)

	if result.Env.OS != runtime.GOOS {
		t.Errorf("OS = %q, want %q", result.Env.OS, runtime.GOOS)
	}
	if result.Env.Arch != runtime.GOARCH {
		t.Errorf("Arch = %q, want %q", result.Env.Arch, runtime.GOARCH)
	}

	switch result.Status {
	case "ready", "warnings":
		if code != ExitSuccess {
			t.Errorf("exit code = %d for status %q, want %d", code, result.Status, ExitSuccess)
		}
	case "errors":
		if code != ExitGeneral {
			t.Errorf("exit code = %d for status %q, want %d", code, result.Status, ExitGeneral)
		}
	default:
		t.Errorf("status = %q, want ready/warnings/errors", result.Status)
	}
}

func TestRunDoctorCmd_HumanOutput(t *testing.T) {
	var stdout bytes.Buffer
	env := &Environment{Stdout: &stdout, Stderr: &bytes.Buffer{}}

	runDoctorCmd(nil, env)
	output := stdout.String()

	for _, section := range []string{"svg2pdf doctor", "Chrome/Chromium", "Environment", "System", "Status:"} {
		if !strings.Contains(output, section) {
			t.Errorf("output missing section %q", section)
		}
	}
	if !strings.Contains(output, runtime.GOOS+"/"+runtime.GOARCH) {
		t.Error("output should name the platform")
	}
}

func TestRunDoctorCmd_ContainerOverride(t *testing.T) {
	t.Setenv("SVG2PDF_CONTAINER", "1")

	result, _ := runDoctorJSON(t)

	if !result.Env.Container {
		t.Error("Container = false, want true")
	}
	if result.Env.ContainerHint != "SVG2PDF_CONTAINER=1" {
		t.Errorf("ContainerHint = %q, want SVG2PDF_CONTAINER=1", result.Env.ContainerHint)
	}
}

func TestRunDoctorCmd_SandboxWarning(t *testing.T) {
	t.Run("container with sandbox still enabled", func(t *testing.T) {
		t.Setenv("SVG2PDF_CONTAINER", "1")
		t.Setenv("CI", "")
		t.Setenv("ROD_BROWSER_BIN", "")

		result, _ := runDoctorJSON(t)

		found := false
		for _, w := range result.Warnings {
			if strings.Contains(w, "ROD_BROWSER_BIN") {
				found = true
			}
		}
		if !found {
			t.Errorf("warnings = %v, want a sandbox warning", result.Warnings)
		}
	})

	t.Run("no warning when sandbox disabled", func(t *testing.T) {
		t.Setenv("SVG2PDF_CONTAINER", "1")
		t.Setenv("CI", "true")

		result, _ := runDoctorJSON(t)

		for _, w := range result.Warnings {
			if strings.Contains(w, "sandbox") {
				t.Errorf("unexpected sandbox warning: %q", w)
			}
		}
	})
}

func TestRunDoctorCmd_ReportsBrowserBin(t *testing.T) {
	t.Setenv("ROD_BROWSER_BIN", "/custom/chrome/path")

	result, _ := runDoctorJSON(t)

	if result.Env.BrowserBin != "/custom/chrome/path" {
		t.Errorf("BrowserBin = %q", result.Env.BrowserBin)
	}
	// The pinned path does not exist, so the report must carry an error.
	if result.Status != "errors" {
		t.Errorf("status = %q, want errors for a missing pinned browser", result.Status)
	}
}

func TestRunDoctorCmd_TempDirWritable(t *testing.T) {
	result, _ := runDoctorJSON(t)

	if !result.System.TempWritable {
		t.Error("temp directory should be writable under normal conditions")
	}
}

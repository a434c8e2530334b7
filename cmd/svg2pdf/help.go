package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: svg2pdf <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  convert     Convert a directory or zip of SVG files into one merged PDF")
	fmt.Fprintln(w, "  doctor      Check Chrome availability and environment")
	fmt.Fprintln(w, "  completion  Generate shell completion script")
	fmt.Fprintln(w, "  version     Show version information")
	fmt.Fprintln(w, "  help        Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'svg2pdf help <command>' for details on a specific command.")
}

// printConvertUsage prints usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: svg2pdf convert <input> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert a directory or zip archive of SVG files into one merged PDF.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Directory or zip archive of SVG files")
	fmt.Fprintln(w, "           (optional if config has input.defaultPath)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output PDF file (default: input base name + .pdf)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w, "  -t, --timeout <dur>       Per-page rendering timeout (e.g., 30s, 2m)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Page ordering:")
	fmt.Fprintln(w, "      --pattern <regex>     Page number pattern; the last match in each")
	fmt.Fprintln(w, "                            filename is the page number (default: \\d+)")
	fmt.Fprintln(w, "      --strict              Fail on first conversion error instead of")
	fmt.Fprintln(w, "                            inserting blank pages")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Page layout:")
	fmt.Fprintln(w, "  -p, --page-size <s>       Page size: a4, letter, legal")
	fmt.Fprintln(w, "      --orientation <s>     Orientation: portrait, landscape")
	fmt.Fprintln(w, "      --margin <f>          Margin in inches (0-3.0, default 0)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output modes:")
	fmt.Fprintln(w, "      --keep-pages          Also write the individual per-page PDFs")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed timing")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  SVG2PDF_CONFIG, SVG2PDF_INPUT, SVG2PDF_OUTPUT, SVG2PDF_PATTERN,")
	fmt.Fprintln(w, "  SVG2PDF_PAGE_SIZE, SVG2PDF_TIMEOUT, SVG2PDF_WORKERS, SVG2PDF_STRICT")
	fmt.Fprintln(w, "  Precedence: flags > environment > config file > defaults")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "convert":
		printConvertUsage(env.Stdout)
	case "doctor":
		fmt.Fprintln(env.Stdout, "Usage: svg2pdf doctor [--json]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Check Chrome availability, container/CI detection, and system")
		fmt.Fprintln(env.Stdout, "requirements. Use --json for machine-readable output.")
	case "completion":
		printCompletionUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: svg2pdf version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		printUsage(env.Stdout)
	default:
		fmt.Fprintf(env.Stderr, "Unknown command %q\n\n", args[0])
		printUsage(env.Stderr)
	}
}

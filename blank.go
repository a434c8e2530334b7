package svg2pdf

// blankPage is a minimal valid single-page A4 PDF (595.276 x 841.890 pt).
// It substitutes pages whose conversion failed so the merged document keeps
// its page count and ordering. Byte offsets in the xref table are exact,
// and each xref entry is padded to the mandated 20 bytes; do not reformat.
const blankPage = "%PDF-1.4\n" +
	"1 0 obj<</Type/Catalog/Pages 2 0 R>>endobj\n" +
	"2 0 obj<</Type/Pages/Count 1/Kids[3 0 R]>>endobj\n" +
	"3 0 obj<</Type/Page/MediaBox[0 0 595.276 841.890]/Parent 2 0 R/Resources<<>>>>endobj\n" +
	"xref\n" +
	"0 4\n" +
	"0000000000 65535 f \n" +
	"0000000009 00000 n \n" +
	"0000000052 00000 n \n" +
	"0000000101 00000 n \n" +
	"trailer<</Size 4/Root 1 0 R>>\n" +
	"startxref\n" +
	"186\n" +
	"%%EOF"

// BlankPage returns a fresh copy of the blank A4 fallback page.
func BlankPage() []byte {
	return []byte(blankPage)
}

// IsBlankPage reports whether pdf is the blank fallback page.
func IsBlankPage(pdf []byte) bool {
	return string(pdf) == blankPage
}

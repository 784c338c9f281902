package pdf

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixtureSentence = "Jane Doe Staff Engineer with twelve years of experience"

// buildTextPDF assembles a minimal one-page document whose content
// stream shows the given text with a single Tj, operators packed on one
// line the way common generators emit them. Cross-reference offsets are
// computed from the actual object positions so the document stays valid
// as the text changes.
func buildTextPDF(text string) []byte {
	doc := "%PDF-1.4\n"

	obj1Start := len(doc)
	doc += "1 0 obj\n<<\n/Type /Catalog\n/Pages 2 0 R\n>>\nendobj\n"

	obj2Start := len(doc)
	doc += "2 0 obj\n<<\n/Type /Pages\n/Kids [3 0 R]\n/Count 1\n>>\nendobj\n"

	obj3Start := len(doc)
	doc += "3 0 obj\n<<\n/Type /Page\n/Parent 2 0 R\n/MediaBox [0 0 612 792]\n/Contents 4 0 R\n/Resources <<\n/Font <<\n/F1 <<\n/Type /Font\n/Subtype /Type1\n/BaseFont /Helvetica\n>>\n>>\n>>\n>>\nendobj\n"

	obj4Start := len(doc)
	content := fmt.Sprintf("BT /F1 12 Tf 72 720 Td (%s) Tj ET\n", text)
	doc += fmt.Sprintf("4 0 obj\n<<\n/Length %d\n>>\nstream\n%sendstream\nendobj\n", len(content), content)

	xrefStart := len(doc)
	doc += "xref\n0 5\n0000000000 65535 f \n"
	doc += fmt.Sprintf("%010d 00000 n \n", obj1Start)
	doc += fmt.Sprintf("%010d 00000 n \n", obj2Start)
	doc += fmt.Sprintf("%010d 00000 n \n", obj3Start)
	doc += fmt.Sprintf("%010d 00000 n \n", obj4Start)

	doc += "trailer\n<<\n/Size 5\n/Root 1 0 R\n>>\nstartxref\n"
	doc += fmt.Sprintf("%d\n", xrefStart)
	doc += "%%EOF"

	return []byte(doc)
}

func TestDecoders_EquivalentTextFromBothPaths(t *testing.T) {
	data := buildTextPDF(fixtureSentence)

	primary, perr := primaryDecoder{}.decode(data)
	require.Nil(t, perr, "primary decoder should extract the text layer")
	fallback, ferr := fallbackDecoder{scannedThreshold: 30}.decode(data)
	require.Nil(t, ferr, "fallback decoder should extract the same document")

	assert.Equal(t, fixtureSentence, collapseWhitespace(primary.Text))
	assert.Equal(t, fixtureSentence, fallback.Text)
	assert.Equal(t, 1, primary.PageCount)
	assert.Equal(t, 1, fallback.PageCount)
}

func TestEngine_RealDecodersExtractTextPDF(t *testing.T) {
	engine := NewEngine(5*time.Second, true, 30)

	result, xerr := engine.Extract(context.Background(), buildTextPDF(fixtureSentence))

	require.Nil(t, xerr)
	assert.Equal(t, fixtureSentence, collapseWhitespace(result.Text))
	assert.Equal(t, 1, result.PageCount)
}

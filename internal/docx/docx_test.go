package docx

import (
	"archive/zip"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildPackage assembles an in-memory OOXML zip with the given document
// part content.
func buildPackage(t *testing.T, partName, documentXML string) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	w, err := zw.Create(partName)
	require.NoError(t, err)
	_, err = w.Write([]byte(documentXML))
	require.NoError(t, err)

	require.NoError(t, zw.Close())
	return buf.Bytes()
}

const simpleDoc = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>John Doe</w:t></w:r></w:p>
    <w:p><w:r><w:t>Senior Backend Engineer</w:t></w:r></w:p>
    <w:p><w:r><w:t>Go,</w:t></w:r><w:r><w:t xml:space="preserve"> Postgres</w:t></w:r></w:p>
  </w:body>
</w:document>`

func TestExtract_SimpleDocument(t *testing.T) {
	data := buildPackage(t, "word/document.xml", simpleDoc)

	text, err := Extract(data)

	require.NoError(t, err)
	lines := strings.Split(text, "\n")
	assert.Equal(t, "John Doe", lines[0])
	assert.Equal(t, "Senior Backend Engineer", lines[1])
	assert.Equal(t, "Go, Postgres", lines[2])
}

func TestExtract_TabsAndBreaks(t *testing.T) {
	doc := `<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:body><w:p><w:r><w:t>a</w:t><w:tab/><w:t>b</w:t><w:br/><w:t>c</w:t></w:r></w:p></w:body>
</w:document>`
	data := buildPackage(t, "word/document.xml", doc)

	text, err := Extract(data)

	require.NoError(t, err)
	assert.Equal(t, "a\tb\nc", text)
}

func TestExtract_NotAZip(t *testing.T) {
	_, err := Extract([]byte("plain bytes, no zip magic"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a DOCX package")
}

func TestExtract_MissingDocumentPart(t *testing.T) {
	data := buildPackage(t, "word/styles.xml", "<w:styles/>")

	_, err := Extract(data)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "word/document.xml")
}

func TestExtract_EmptyDocumentIsAnError(t *testing.T) {
	doc := `<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:body><w:p></w:p></w:body></w:document>`
	data := buildPackage(t, "word/document.xml", doc)

	_, err := Extract(data)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no text")
}

func TestExtract_MalformedXML(t *testing.T) {
	data := buildPackage(t, "word/document.xml", "<w:document><unclosed")

	_, err := Extract(data)

	require.Error(t, err)
}

package extract

// SourceFormat identifies the container format of an uploaded document.
type SourceFormat string

const (
	FormatPDF  SourceFormat = "pdf"
	FormatDOCX SourceFormat = "docx"
	FormatTXT  SourceFormat = "txt"
)

// ExtractionRequest carries one uploaded document through the pipeline.
// It is owned by the call that issues it and is never shared across
// concurrent extractions.
type ExtractionRequest struct {
	Bytes        []byte
	DeclaredMime string
	FileName     string
	SizeBytes    int64
}

// ExtractionResult is the flattened text plus minimal metadata handed to
// downstream analysis. Text is UTF-8 and trimmed; it is empty only in the
// degenerate case of an empty TXT upload.
type ExtractionResult struct {
	Text         string
	PageCount    int // 0 when the format has no page notion
	SourceFormat SourceFormat
}

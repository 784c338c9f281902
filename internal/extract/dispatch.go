package extract

import (
	"fmt"
	"path/filepath"
	"strings"
)

const (
	mimePDF        = "application/pdf"
	mimeDOCX       = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	mimeLegacyWord = "application/msword"
)

// DetectFormat classifies a document by declared MIME type and filename.
// Precedence: exact MIME match first, file extension second
// (case-insensitive). Pure; performs no I/O.
//
// Legacy .doc is rejected outright: it is not reliably decodable without
// a native converter.
func DetectFormat(declaredMime, fileName string) (SourceFormat, *ExtractionError) {
	mime := strings.ToLower(strings.TrimSpace(declaredMime))

	switch {
	case mime == mimePDF:
		return FormatPDF, nil
	case mime == mimeDOCX:
		return FormatDOCX, nil
	case strings.HasPrefix(mime, "text/"):
		return FormatTXT, nil
	case mime == mimeLegacyWord:
		return "", NewError(KindUnsupportedFormat,
			fmt.Sprintf("legacy Word documents (%s) are not supported; convert to DOCX", mimeLegacyWord))
	}

	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".pdf":
		return FormatPDF, nil
	case ".docx":
		return FormatDOCX, nil
	case ".txt":
		return FormatTXT, nil
	case ".doc":
		return "", NewError(KindUnsupportedFormat,
			"legacy .doc documents are not supported; convert to DOCX")
	}

	return "", NewError(KindUnsupportedFormat,
		fmt.Sprintf("unsupported file type %q (file %q)", declaredMime, fileName))
}

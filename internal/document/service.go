// Package document is the upload-boundary facade of the extraction
// service: it gates on size, dispatches by format, and routes to the PDF
// decode chain or the single-shot TXT/DOCX extractors.
package document

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dikondaashish/all-in-one-career-sub004/internal/docx"
	"github.com/dikondaashish/all-in-one-career-sub004/internal/extract"
	"github.com/dikondaashish/all-in-one-career-sub004/internal/pdf"
)

// Service processes extraction requests. It holds no mutable state, so
// concurrent extractions proceed fully in parallel with no locking.
type Service struct {
	maxFileSize int64
	engine      *pdf.Engine
}

// NewService creates a document service with the given size limit and PDF
// decode engine.
func NewService(maxFileSize int64, engine *pdf.Engine) *Service {
	return &Service{
		maxFileSize: maxFileSize,
		engine:      engine,
	}
}

// MaxFileSize returns the configured upload limit in bytes.
func (s *Service) MaxFileSize() int64 {
	return s.maxFileSize
}

// Extract turns one uploaded document into flattened text. Every failure
// is an *extract.ExtractionError; nothing unclassified crosses this
// boundary. Size and format checks run before any decode work.
func (s *Service) Extract(ctx context.Context, req extract.ExtractionRequest) (*extract.ExtractionResult, *extract.ExtractionError) {
	size := req.SizeBytes
	if size == 0 {
		size = int64(len(req.Bytes))
	}
	if size > s.maxFileSize {
		return nil, extract.NewError(extract.KindTooLarge,
			fmt.Sprintf("file is %d bytes (max %d)", size, s.maxFileSize))
	}

	format, xerr := extract.DetectFormat(req.DeclaredMime, req.FileName)
	if xerr != nil {
		return nil, xerr
	}

	switch format {
	case extract.FormatPDF:
		return s.engine.Extract(ctx, req.Bytes)
	case extract.FormatDOCX:
		return extractDOCX(req.Bytes)
	default:
		return extractTXT(req.Bytes)
	}
}

func extractDOCX(data []byte) (*extract.ExtractionResult, *extract.ExtractionError) {
	text, err := docx.Extract(data)
	if err != nil {
		return nil, extract.WrapError(extract.KindInvalidOrCorrupt,
			"could not read DOCX content", err)
	}
	return &extract.ExtractionResult{
		Text:         text,
		SourceFormat: extract.FormatDOCX,
	}, nil
}

// extractTXT decodes plain text. An empty file legitimately yields an
// empty string; this is the one degenerate success in the service.
func extractTXT(data []byte) (*extract.ExtractionResult, *extract.ExtractionError) {
	if !utf8.Valid(data) {
		return nil, extract.NewError(extract.KindInvalidOrCorrupt,
			"file is not valid UTF-8 text")
	}
	return &extract.ExtractionResult{
		Text:         strings.TrimSpace(string(data)),
		SourceFormat: extract.FormatTXT,
	}, nil
}

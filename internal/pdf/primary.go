package pdf

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/dikondaashish/all-in-one-career-sub004/internal/extract"
)

// primaryDecoder extracts the embedded text layer directly via
// ledongthuc/pdf. Fast, but fails outright on encrypted documents and on
// structures it cannot parse.
type primaryDecoder struct{}

func (primaryDecoder) decode(data []byte) (result *extract.ExtractionResult, xerr *extract.ExtractionError) {
	// The text-layer parser panics on some malformed inputs instead of
	// returning an error; fold those into the taxonomy.
	defer func() {
		if r := recover(); r != nil {
			result = nil
			xerr = classifyDecodeError(fmt.Errorf("text-layer decoder panic: %v", r))
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, classifyDecodeError(err)
	}

	var builder strings.Builder
	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}

		content, err := page.GetPlainText(nil)
		if err != nil {
			// Keep going; remaining pages may still carry text.
			continue
		}

		if builder.Len() > 0 {
			builder.WriteByte('\n')
		}
		builder.WriteString(content)
	}

	text := strings.TrimSpace(builder.String())
	if text == "" {
		return nil, extract.NewError(extract.KindInvalidOrCorrupt,
			"no text layer could be extracted")
	}

	return &extract.ExtractionResult{
		Text:         text,
		PageCount:    reader.NumPage(),
		SourceFormat: extract.FormatPDF,
	}, nil
}

package pdf

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/dikondaashish/all-in-one-career-sub004/internal/extract"
)

// fallbackDecoder walks the document page by page through pdfcpu,
// rendering each page's text content stream. Slower than the text-layer
// path but tolerant of structural quirks the primary decoder chokes on.
//
// A cleaned result shorter than scannedThreshold is classified
// SCANNED_NO_TEXT rather than returned: a PDF with that little text is
// almost certainly scanned images. Heuristic boundary, not a guarantee.
type fallbackDecoder struct {
	scannedThreshold int
}

func (d fallbackDecoder) decode(data []byte) (result *extract.ExtractionResult, xerr *extract.ExtractionError) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			xerr = classifyDecodeError(fmt.Errorf("page decoder panic: %v", r))
		}
	}()

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	// In-memory session; all handles are released when the context is
	// dropped, on every exit path.
	ctx, err := api.ReadContext(bytes.NewReader(data), conf)
	if err != nil {
		return nil, classifyDecodeError(err)
	}

	if ctx.Encrypt != nil {
		return nil, extract.NewError(extract.KindPasswordProtected,
			"document is password protected")
	}

	if err := ctx.EnsurePageCount(); err != nil {
		return nil, classifyDecodeError(err)
	}

	pages := make([]string, 0, ctx.PageCount)
	for pageNum := 1; pageNum <= ctx.PageCount; pageNum++ {
		stream, err := pdfcpu.ExtractPageContent(ctx, pageNum)
		if err != nil || stream == nil {
			continue
		}
		raw, err := io.ReadAll(stream)
		if err != nil || len(raw) == 0 {
			continue
		}
		if text := renderContentText(raw); text != "" {
			pages = append(pages, text)
		}
	}

	return d.assemble(pages, ctx.PageCount)
}

// assemble joins page texts with a single newline, collapses whitespace,
// and applies the scanned-text threshold.
func (d fallbackDecoder) assemble(pages []string, pageCount int) (*extract.ExtractionResult, *extract.ExtractionError) {
	text := collapseWhitespace(strings.Join(pages, "\n"))
	if utf8.RuneCountInString(text) < d.scannedThreshold {
		return nil, extract.NewError(extract.KindScannedNoText,
			fmt.Sprintf("extracted %d characters across %d pages; document appears to contain no text layer",
				utf8.RuneCountInString(text), pageCount))
	}

	return &extract.ExtractionResult{
		Text:         text,
		PageCount:    pageCount,
		SourceFormat: extract.FormatPDF,
	}, nil
}

// renderContentText walks a page content stream and reassembles the
// text shown by its operators. Literal strings are buffered as operands
// until the operator that consumes them, so a stream packed onto one
// line reads the same as one operator per line. Only text-show and
// positioning operators matter; every other operator discards its
// operands.
func renderContentText(stream []byte) string {
	var sb strings.Builder
	var pending []string

	show := func() {
		for _, s := range pending {
			sb.WriteString(s)
		}
		pending = pending[:0]
	}

	for i := 0; i < len(stream); {
		switch c := stream[i]; {
		case c == '(':
			text, next := parseLiteral(stream, i)
			pending = append(pending, text)
			i = next
		case c == '<':
			// Hex strings and inline dictionaries carry no shown text here.
			i = skipAngle(stream, i)
		case c == '/':
			i++
			for i < len(stream) && isRegularByte(stream[i]) {
				i++
			}
		case c == '%':
			for i < len(stream) && stream[i] != '\n' && stream[i] != '\r' {
				i++
			}
		case isOperatorByte(c):
			start := i
			for i < len(stream) && isOperatorByte(stream[i]) {
				i++
			}
			switch string(stream[start:i]) {
			case "Tj", "TJ":
				show()
			case "'", "\"":
				// ' and " move to the next line before showing text.
				sb.WriteByte('\n')
				show()
			case "Td", "TD":
				if sb.Len() > 0 {
					sb.WriteByte(' ')
				}
				pending = pending[:0]
			case "T*":
				sb.WriteByte('\n')
				pending = pending[:0]
			default:
				pending = pending[:0]
			}
		default:
			i++
		}
	}

	return collapseWhitespace(sb.String())
}

// parseLiteral reads a literal string starting at its opening
// parenthesis, honoring escape sequences and balanced nested
// parentheses. It returns the unescaped text and the index just past
// the closing parenthesis.
func parseLiteral(stream []byte, start int) (string, int) {
	var raw []byte
	depth := 1
	i := start + 1
	for i < len(stream) && depth > 0 {
		c := stream[i]
		switch {
		case c == '\\' && i+1 < len(stream):
			raw = append(raw, c, stream[i+1])
			i += 2
			continue
		case c == '(':
			depth++
			raw = append(raw, c)
		case c == ')':
			depth--
			if depth > 0 {
				raw = append(raw, c)
			}
		default:
			raw = append(raw, c)
		}
		i++
	}
	return unescapeLiteral(raw), i
}

// skipAngle advances past a hex string <...> or dictionary <<...>>.
func skipAngle(stream []byte, start int) int {
	i := start + 1
	if i < len(stream) && stream[i] == '<' {
		for i+1 < len(stream) && !(stream[i] == '>' && stream[i+1] == '>') {
			i++
		}
		if i+1 < len(stream) {
			return i + 2
		}
		return len(stream)
	}
	for i < len(stream) && stream[i] != '>' {
		i++
	}
	return i + 1
}

func isOperatorByte(c byte) bool {
	return c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z' || c == '\'' || c == '"' || c == '*'
}

func isRegularByte(c byte) bool {
	switch c {
	case '(', ')', '<', '>', '[', ']', '{', '}', '/', '%',
		'\x00', '\t', '\n', '\f', '\r', ' ':
		return false
	}
	return true
}

// unescapeLiteral resolves PDF string escapes, including octal codes.
func unescapeLiteral(raw []byte) string {
	var sb strings.Builder
	for i := 0; i < len(raw); i++ {
		if raw[i] != '\\' || i+1 == len(raw) {
			sb.WriteByte(raw[i])
			continue
		}
		i++
		switch c := raw[i]; c {
		case 'n':
			sb.WriteByte('\n')
		case 'r':
			sb.WriteByte('\r')
		case 't':
			sb.WriteByte('\t')
		case '\\', '(', ')':
			sb.WriteByte(c)
		default:
			if c < '0' || c > '7' {
				sb.WriteByte(c)
				break
			}
			val := int(c - '0')
			for n := 0; n < 2 && i+1 < len(raw) && raw[i+1] >= '0' && raw[i+1] <= '7'; n++ {
				i++
				val = val*8 + int(raw[i]-'0')
			}
			sb.WriteByte(byte(val))
		}
	}
	return sb.String()
}

// collapseWhitespace folds whitespace runs into single spaces, drops
// non-printable runes, and trims.
func collapseWhitespace(text string) string {
	var sb strings.Builder
	pendingSpace := false
	for _, r := range text {
		switch {
		case unicode.IsSpace(r):
			pendingSpace = sb.Len() > 0
		case unicode.IsPrint(r):
			if pendingSpace {
				sb.WriteByte(' ')
				pendingSpace = false
			}
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

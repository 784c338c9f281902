// Package docx extracts the raw text content of OOXML wordprocessing
// packages. There is no fallback chain for DOCX; any failure here is
// reported as a single classified error by the caller.
package docx

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

const documentPart = "word/document.xml"

// Extract returns the trimmed text of the main document part, with one
// newline per paragraph.
func Extract(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("not a DOCX package: %w", err)
	}

	var part *zip.File
	for _, f := range zr.File {
		if f.Name == documentPart {
			part = f
			break
		}
	}
	if part == nil {
		return "", fmt.Errorf("package has no %s", documentPart)
	}

	rc, err := part.Open()
	if err != nil {
		return "", fmt.Errorf("open %s: %w", documentPart, err)
	}
	defer rc.Close()

	text, err := collectRuns(rc)
	if err != nil {
		return "", fmt.Errorf("parse %s: %w", documentPart, err)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("document contains no text")
	}
	return text, nil
}

// collectRuns streams the document XML, gathering character data inside
// text runs (w:t) and emitting paragraph (w:p) ends, tabs, and explicit
// breaks as whitespace.
func collectRuns(r io.Reader) (string, error) {
	dec := xml.NewDecoder(r)
	var sb strings.Builder
	inText := false

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inText = true
			case "tab":
				sb.WriteByte('\t')
			case "br":
				sb.WriteByte('\n')
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				sb.WriteByte('\n')
			}
		case xml.CharData:
			if inText {
				sb.Write(t)
			}
		}
	}

	return sb.String(), nil
}

package pdf

import (
	"strings"

	"github.com/dikondaashish/all-in-one-career-sub004/internal/extract"
)

// passwordMarkers appear in decoder errors for documents we cannot open
// without credentials. A different decoder cannot fix these.
var passwordMarkers = []string{
	"password",
	"encrypted",
	"encryption",
	"decrypt",
}

// corruptMarkers indicate the decoder rejected the document's structure.
var corruptMarkers = []string{
	"invalid",
	"malformed",
	"corrupt",
	"not a pdf",
	"no pdf header",
	"xref",
	"trailer",
	"unexpected eof",
	"eof",
}

// classifyDecodeError maps a raw decoder error onto the closed taxonomy.
// Password/encryption markers are fatal; structural complaints are
// recoverable INVALID_OR_CORRUPT; anything unrecognized stays UNKNOWN and
// recoverable, so the fallback decoder gets a chance to diagnose it.
func classifyDecodeError(err error) *extract.ExtractionError {
	msg := strings.ToLower(err.Error())

	for _, marker := range passwordMarkers {
		if strings.Contains(msg, marker) {
			return extract.WrapError(extract.KindPasswordProtected,
				"document is password protected", err)
		}
	}
	for _, marker := range corruptMarkers {
		if strings.Contains(msg, marker) {
			return extract.WrapError(extract.KindInvalidOrCorrupt,
				"document structure could not be parsed", err)
		}
	}
	return extract.WrapError(extract.KindUnknown, "decoder failed", err)
}

package pdf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrimaryDecode_TextPDF(t *testing.T) {
	result, xerr := primaryDecoder{}.decode(buildTextPDF(fixtureSentence))

	require.Nil(t, xerr)
	assert.Equal(t, fixtureSentence, collapseWhitespace(result.Text))
	assert.Equal(t, 1, result.PageCount)
}

func TestPrimaryDecode_GarbageBytes(t *testing.T) {
	result, xerr := primaryDecoder{}.decode([]byte("definitely not a pdf"))

	require.NotNil(t, xerr)
	assert.Nil(t, result)
	assert.True(t, xerr.Recoverable, "a structural rejection must stay eligible for fallback")
}

func TestPrimaryDecode_EmptyInput(t *testing.T) {
	result, xerr := primaryDecoder{}.decode(nil)

	require.NotNil(t, xerr)
	assert.Nil(t, result)
	assert.True(t, xerr.Recoverable)
}

func TestPrimaryDecode_TruncatedHeader(t *testing.T) {
	// A bare header with no body; the parser errors (or panics, which the
	// decoder folds into the taxonomy) rather than returning raw failure.
	result, xerr := primaryDecoder{}.decode([]byte("%PDF-1.4\n"))

	require.NotNil(t, xerr)
	assert.Nil(t, result)
	assert.NotEmpty(t, xerr.Kind)
	assert.True(t, xerr.Recoverable)
}

package pdf

import (
	"context"
	"time"

	"github.com/dikondaashish/all-in-one-career-sub004/internal/extract"
)

// Engine orchestrates the PDF decode chain: a fast text-layer attempt
// first, then at most one page-by-page fallback attempt when the first
// failure is recoverable. Two concrete strategies in fixed order; there
// is no decoder registry.
//
// An Engine holds no mutable state and is safe for concurrent use.
type Engine struct {
	budget         time.Duration
	enableFallback bool

	// Injectable for tests; NewEngine wires the real decoders.
	primary  attemptFunc
	fallback attemptFunc
}

// NewEngine builds an engine with the given per-attempt budget, fallback
// toggle, and scanned-text threshold (in characters).
func NewEngine(budget time.Duration, enableFallback bool, scannedThreshold int) *Engine {
	return &Engine{
		budget:         budget,
		enableFallback: enableFallback,
		primary:        primaryDecoder{}.decode,
		fallback:       fallbackDecoder{scannedThreshold: scannedThreshold}.decode,
	}
}

// Extract runs the decode chain over an in-memory PDF and returns exactly
// one outcome. Each attempt gets an independent, full-length budget;
// timeouts never accumulate across attempts. When the fallback also
// fails, its diagnosis supersedes the primary's, since it inspected the
// document more deeply.
func (e *Engine) Extract(ctx context.Context, data []byte) (*extract.ExtractionResult, *extract.ExtractionError) {
	attempt := runGuarded(decoderPrimary, e.budget, data, e.primary)
	if attempt.err == nil {
		return attempt.result, nil
	}
	if !attempt.err.Recoverable || !e.enableFallback {
		return nil, attempt.err
	}

	// The caller may have given up while the primary attempt ran; do not
	// start a fresh decode for nobody.
	if ctx.Err() != nil {
		return nil, extract.WrapError(extract.KindTimedOut,
			"extraction abandoned by caller", ctx.Err())
	}

	attempt = runGuarded(decoderFallback, e.budget, data, e.fallback)
	if attempt.err != nil {
		return nil, attempt.err
	}
	return attempt.result, nil
}

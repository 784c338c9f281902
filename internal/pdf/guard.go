package pdf

import (
	"fmt"
	"time"

	"github.com/dikondaashish/all-in-one-career-sub004/internal/extract"
)

// decoderKind names the two decode strategies. The chain is fixed:
// primary first, fallback at most once after it.
type decoderKind string

const (
	decoderPrimary  decoderKind = "primary"
	decoderFallback decoderKind = "fallback"
)

// attemptFunc runs one decoder over the raw document bytes.
type attemptFunc func(data []byte) (*extract.ExtractionResult, *extract.ExtractionError)

// decodeAttempt records the outcome of one guarded decode. It is created
// and discarded within a single Engine.Extract call.
type decodeAttempt struct {
	decoder  decoderKind
	deadline time.Time
	result   *extract.ExtractionResult
	err      *extract.ExtractionError
}

// runGuarded races one decode attempt against the given budget. If the
// timer fires first the attempt is abandoned and a recoverable TIMED_OUT
// error is returned. Neither decoding library honors a cancellation
// signal, so the abandoned goroutine runs to natural completion; the
// buffered channel lets it finish and be collected, and its result is
// discarded.
func runGuarded(decoder decoderKind, budget time.Duration, data []byte, fn attemptFunc) *decodeAttempt {
	type outcome struct {
		result *extract.ExtractionResult
		err    *extract.ExtractionError
	}

	ch := make(chan outcome, 1)
	go func() {
		result, err := fn(data)
		ch <- outcome{result: result, err: err}
	}()

	timer := time.NewTimer(budget)
	defer timer.Stop()

	att := &decodeAttempt{decoder: decoder, deadline: time.Now().Add(budget)}
	select {
	case out := <-ch:
		att.result = out.result
		att.err = out.err
	case <-timer.C:
		att.err = extract.NewError(extract.KindTimedOut,
			fmt.Sprintf("%s decoder exceeded %s budget", decoder, budget))
	}
	return att
}

package sprite

import "errors"

// ErrCancelled is returned when a ProgressFunc requested cancellation.
var ErrCancelled = errors.New("operation cancelled")

// ProgressFunc receives completion percentage updates in [0,100].
// Returning a non-nil error cancels the running operation: it performs no
// further pixel work and returns ErrCancelled to its caller.
//
// A nil ProgressFunc is valid and disables reporting.
type ProgressFunc func(percent int) error

// tracker wraps a ProgressFunc with clamping and monotonicity. Repeated or
// regressing percentages are swallowed so callers only ever observe a
// non-decreasing sequence.
type tracker struct {
	fn   ProgressFunc
	last int
}

func newTracker(fn ProgressFunc) *tracker {
	return &tracker{fn: fn, last: -1}
}

func (t *tracker) report(percent int) error {
	if t.fn == nil {
		return nil
	}
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	if percent <= t.last {
		return nil
	}
	t.last = percent
	if err := t.fn(percent); err != nil {
		return ErrCancelled
	}
	return nil
}

// span maps done/total items onto the window [lo,hi] of the overall bar.
func (t *tracker) span(lo, hi, done, total int) error {
	if total <= 0 {
		return t.report(hi)
	}
	return t.report(lo + done*(hi-lo)/total)
}

// stage returns a ProgressFunc that re-scales a nested operation's [0,100]
// range into the window [lo,hi] of this tracker.
func (t *tracker) stage(lo, hi int) ProgressFunc {
	if t.fn == nil {
		return nil
	}
	return func(percent int) error {
		return t.report(lo + percent*(hi-lo)/100)
	}
}

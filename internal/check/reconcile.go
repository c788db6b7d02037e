package check

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/hamed0406/gatewatch/internal/probe"
)

// Reconcile combines a probe outcome with the target's declared expectation,
// setting the verdict and a rendered actual-response string. It performs no
// I/O. A target with an unrecognized expectation is left untouched and the
// error aborts the run.
func Reconcile(t *Target, out probe.Outcome) error {
	switch t.Expected.Kind {
	case ExpectStatus:
		if out.Completed() {
			t.Matched = out.StatusCode == t.Expected.Status
			t.Actual = strconv.Itoa(out.StatusCode)
		} else {
			t.Matched = false
			t.Actual = out.Failure.String()
		}
	case ExpectFailure:
		if out.Completed() {
			t.Matched = false
			t.Actual = strconv.Itoa(out.StatusCode)
		} else {
			// Any transport failure counts as a match, not just the declared
			// kind. Echo the expectation rather than the raw error; error
			// text can carry sensitive fragments of the request.
			t.Matched = true
			t.Actual = t.Expected.String()
		}
	default:
		return fmt.Errorf("target %q: %w (kind %d)", t.Name, ErrUnrecognizedExpectation, t.Expected.Kind)
	}
	t.VerdictKnown = true
	return nil
}

// ReconcileAll probes every target sequentially, in declaration order, one
// bounded call each, and reconciles the results in place. Expectations are
// validated up front so a misconfigured set fails before any network call
// and no partial verdicts are produced.
func ReconcileAll(ctx context.Context, targets []*Target, p probe.Prober, timeout time.Duration) error {
	for _, t := range targets {
		if !t.Expected.Recognized() {
			return fmt.Errorf("target %q: %w (kind %d)", t.Name, ErrUnrecognizedExpectation, t.Expected.Kind)
		}
	}
	for _, t := range targets {
		pctx, cancel := context.WithTimeout(ctx, timeout)
		out := p.Probe(pctx, t.URL)
		cancel()
		if err := Reconcile(t, out); err != nil {
			return err
		}
	}
	return nil
}

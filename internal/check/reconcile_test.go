package check

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hamed0406/gatewatch/internal/probe"
)

// fakeProber replays canned outcomes per URL and records call order.
type fakeProber struct {
	outcomes map[string]probe.Outcome
	calls    []string
}

func (f *fakeProber) Probe(ctx context.Context, url string) probe.Outcome {
	f.calls = append(f.calls, url)
	return f.outcomes[url]
}

func TestReconcile_StatusMatch(t *testing.T) {
	tgt := NewTarget("shop", "https://shop.example", ExpectedStatus(200))
	if err := Reconcile(tgt, probe.Outcome{StatusCode: 200}); err != nil {
		t.Fatalf("reconcile: %v", err)
	}
	if !tgt.VerdictKnown || !tgt.Matched {
		t.Fatalf("want matched verdict, got %+v", tgt)
	}
	if tgt.Actual != "200" {
		t.Fatalf("want actual %q, got %q", "200", tgt.Actual)
	}
}

func TestReconcile_StatusMismatch(t *testing.T) {
	tgt := NewTarget("shop", "https://shop.example", ExpectedStatus(200))
	if err := Reconcile(tgt, probe.Outcome{StatusCode: 500}); err != nil {
		t.Fatalf("reconcile: %v", err)
	}
	if tgt.Matched {
		t.Fatalf("500 against expected 200 must not match")
	}
	if tgt.Actual != "500" {
		t.Fatalf("want actual %q, got %q", "500", tgt.Actual)
	}
}

func TestReconcile_StatusExpectedButTransportFailed(t *testing.T) {
	tgt := NewTarget("shop", "https://shop.example", ExpectedStatus(200))
	if err := Reconcile(tgt, probe.Outcome{Failure: probe.FailureTimeout}); err != nil {
		t.Fatalf("reconcile: %v", err)
	}
	if tgt.Matched {
		t.Fatalf("transport failure against expected status must not match")
	}
	if tgt.Actual != "connect timeout" {
		t.Fatalf("want rendered failure reason, got %q", tgt.Actual)
	}
}

func TestReconcile_FailureExpectedTimeoutMatches(t *testing.T) {
	tgt := NewTarget("vault", "https://vault.example", ExpectedFailure("connect timeout"))
	if err := Reconcile(tgt, probe.Outcome{Failure: probe.FailureTimeout}); err != nil {
		t.Fatalf("reconcile: %v", err)
	}
	if !tgt.Matched {
		t.Fatalf("timeout must match an expected failure")
	}
	// The expectation is echoed back, never the raw error text.
	if tgt.Actual != "connect timeout" {
		t.Fatalf("want echoed expectation, got %q", tgt.Actual)
	}
}

// Any transport failure matches an expected failure, not just a timeout.
// That leniency is inherited behavior; if it ever narrows, this test is the
// place that documents the change.
func TestReconcile_FailureExpectedOtherTransportAlsoMatches(t *testing.T) {
	tgt := NewTarget("vault", "https://vault.example", ExpectedFailure("connect timeout"))
	if err := Reconcile(tgt, probe.Outcome{Failure: probe.FailureTransport}); err != nil {
		t.Fatalf("reconcile: %v", err)
	}
	if !tgt.Matched {
		t.Fatalf("any transport failure should satisfy an expected failure")
	}
}

func TestReconcile_FailureExpectedButSucceeded(t *testing.T) {
	tgt := NewTarget("vault", "https://vault.example", ExpectedFailure("connect timeout"))
	if err := Reconcile(tgt, probe.Outcome{StatusCode: 200}); err != nil {
		t.Fatalf("reconcile: %v", err)
	}
	if tgt.Matched {
		t.Fatalf("a completed request must not match an expected failure")
	}
	if tgt.Actual != "200" {
		t.Fatalf("want status string, got %q", tgt.Actual)
	}
}

func TestReconcile_UnrecognizedExpectationNoMutation(t *testing.T) {
	tgt := NewTarget("odd", "https://odd.example", Expectation{Kind: 42})
	err := Reconcile(tgt, probe.Outcome{StatusCode: 200})
	if !errors.Is(err, ErrUnrecognizedExpectation) {
		t.Fatalf("want ErrUnrecognizedExpectation, got %v", err)
	}
	if tgt.VerdictKnown || tgt.Actual != "" {
		t.Fatalf("target must be untouched on error, got %+v", tgt)
	}
}

func TestReconcileAll_ProbesInDeclarationOrder(t *testing.T) {
	f := &fakeProber{outcomes: map[string]probe.Outcome{
		"https://a.example": {StatusCode: 200},
		"https://b.example": {StatusCode: 200},
		"https://c.example": {Failure: probe.FailureTimeout},
	}}
	targets := []*Target{
		NewTarget("a", "https://a.example", ExpectedStatus(200)),
		NewTarget("b", "https://b.example", ExpectedStatus(200)),
		NewTarget("c", "https://c.example", ExpectedFailure("connect timeout")),
	}

	if err := ReconcileAll(context.Background(), targets, f, time.Second); err != nil {
		t.Fatalf("reconcile all: %v", err)
	}

	want := []string{"https://a.example", "https://b.example", "https://c.example"}
	if len(f.calls) != len(want) {
		t.Fatalf("want %d probes, got %d", len(want), len(f.calls))
	}
	for i, u := range want {
		if f.calls[i] != u {
			t.Fatalf("probe %d: want %s, got %s", i, u, f.calls[i])
		}
	}
	for _, tgt := range targets {
		if !tgt.VerdictKnown || !tgt.Matched {
			t.Fatalf("all targets should match, got %+v", tgt)
		}
	}
}

func TestReconcileAll_UnrecognizedAbortsBeforeAnyProbe(t *testing.T) {
	f := &fakeProber{outcomes: map[string]probe.Outcome{}}
	targets := []*Target{
		NewTarget("a", "https://a.example", ExpectedStatus(200)),
		NewTarget("odd", "https://odd.example", Expectation{Kind: 42}),
	}

	err := ReconcileAll(context.Background(), targets, f, time.Second)
	if !errors.Is(err, ErrUnrecognizedExpectation) {
		t.Fatalf("want ErrUnrecognizedExpectation, got %v", err)
	}
	if len(f.calls) != 0 {
		t.Fatalf("misconfigured set must not cost network calls, got %d probes", len(f.calls))
	}
	for _, tgt := range targets {
		if tgt.VerdictKnown {
			t.Fatalf("no partial verdicts on abort, got %+v", tgt)
		}
	}
}

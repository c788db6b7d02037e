package report

import (
	"context"
	"fmt"

	"go.uber.org/multierr"

	"github.com/hamed0406/gatewatch/internal/check"
)

// Sender publishes one alert line to an external channel. Satisfied by the
// notify package's sinks.
type Sender interface {
	Send(ctx context.Context, text string) error
}

// BusEmitter is the messaging variant: one free-text alert per reported
// target, published separately. Nothing is published when the reported set
// is empty.
type BusEmitter struct {
	Sender Sender
}

func NewBusEmitter(s Sender) *BusEmitter {
	return &BusEmitter{Sender: s}
}

func (e *BusEmitter) Emit(ctx context.Context, gating *check.Target, reported map[string]*check.Target) error {
	var errs error
	for _, name := range sortedNames(reported) {
		if err := e.Sender.Send(ctx, AlertText(reported[name])); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("alert for %q: %w", name, err))
		}
	}
	return errs
}

// AlertText phrases the alert by what the target was supposed to do: a
// target expected to serve a healthy status is "unexpectedly unavailable"
// when it fails; a target whose expectation was itself anomalous (a timeout
// or a restricted status) is "unexpectedly available".
func AlertText(t *check.Target) string {
	avail := "available"
	if t.Expected.Kind == check.ExpectStatus && t.Expected.Status >= 200 && t.Expected.Status < 300 {
		avail = "unavailable"
	}
	return fmt.Sprintf("%s is unexpectedly %s. Expected response: %s. Actual response: %s",
		t.Name, avail, t.Expected, t.Actual)
}

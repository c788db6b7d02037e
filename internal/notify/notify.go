package notify

import (
	"context"

	"go.uber.org/multierr"
)

// Notifier delivers one alert line to an external channel.
type Notifier interface {
	Send(ctx context.Context, text string) error
}

// Multi fans one alert out to several channels; delivery is attempted on
// every channel even when earlier ones fail.
type Multi []Notifier

func (m Multi) Send(ctx context.Context, text string) error {
	var errs error
	for _, n := range m {
		if n == nil {
			continue
		}
		errs = multierr.Append(errs, n.Send(ctx, text))
	}
	return errs
}

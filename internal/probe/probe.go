package probe

import "context"

// FailureReason classifies a transport-level probe failure.
type FailureReason int

const (
	// FailureNone means the request completed and a status code was observed.
	FailureNone FailureReason = iota
	FailureTimeout
	FailureTransport
)

func (r FailureReason) String() string {
	switch r {
	case FailureTimeout:
		return "connect timeout"
	case FailureTransport:
		return "transport error"
	default:
		return ""
	}
}

// Outcome is the normalized result of a single probe. Exactly one of the two
// shapes applies: the request completed with some status code (any code, 4xx
// and 5xx included), or it failed at the transport level with a reason.
type Outcome struct {
	StatusCode int
	Failure    FailureReason
	LatencyMS  float64
}

// Completed reports whether the request finished with an HTTP response.
func (o Outcome) Completed() bool { return o.Failure == FailureNone }

// Prober issues a single probe against a URL. Implementations must not
// return transport errors to the caller; every failure becomes an Outcome.
type Prober interface {
	Probe(ctx context.Context, url string) Outcome
}

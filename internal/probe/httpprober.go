package probe

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"
)

const DefaultTimeout = 5 * time.Second

type HTTPProber struct {
	Client *http.Client
}

// NewHTTPProber builds a prober with a fixed connect/read timeout.
// No retries, no backoff: one GET per call.
func NewHTTPProber(timeout time.Duration) *HTTPProber {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &HTTPProber{
		Client: &http.Client{Timeout: timeout},
	}
}

func (p *HTTPProber) Probe(ctx context.Context, url string) Outcome {
	start := time.Now()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Outcome{Failure: FailureTransport}
	}

	resp, err := p.Client.Do(req)
	latency := time.Since(start).Seconds() * 1000 // ms
	if err != nil {
		return Outcome{Failure: classify(err), LatencyMS: latency}
	}
	defer resp.Body.Close()

	return Outcome{StatusCode: resp.StatusCode, LatencyMS: latency}
}

// classify separates timeouts from everything else (refused, DNS, TLS).
func classify(err error) FailureReason {
	if errors.Is(err, context.DeadlineExceeded) {
		return FailureTimeout
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return FailureTimeout
	}
	return FailureTransport
}

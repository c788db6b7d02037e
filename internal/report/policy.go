package report

import (
	"go.uber.org/zap"

	"github.com/hamed0406/gatewatch/internal/check"
)

// Policy decides which reconciled targets get reported. The gating target's
// verdict controls whether peer failures are surfaced at all:
//
//   - gating matched its (deliberately anomalous) expectation: report only
//     the peers that failed theirs, if any;
//   - gating failed its expectation: report the gating target alone and
//     suppress peer results entirely.
//
// A gating failure is the most actionable signal, so it is never diluted by
// peer noise; peer failures are only trusted once the gating anomaly is
// confirmed.
type Policy struct {
	Log *zap.Logger
}

func NewPolicy(log *zap.Logger) Policy {
	if log == nil {
		log = zap.NewNop()
	}
	return Policy{Log: log}
}

// Decide returns the subset of targets to report as failures, keyed by name.
// It is stateless; the same inputs always yield the same set.
func (p Policy) Decide(gating *check.Target, peers map[string]*check.Target) map[string]*check.Target {
	if gating.Matched {
		failing := make(map[string]*check.Target)
		for name, t := range peers {
			if !t.Matched {
				failing[name] = t
			}
		}
		if len(failing) > 0 {
			p.Log.Warn("gating target matched its expected anomalous state but peer targets did not match theirs",
				zap.String("gating", gating.Name),
				zap.Int("failing_peers", len(failing)),
			)
			return failing
		}
		return map[string]*check.Target{}
	}
	return map[string]*check.Target{gating.Name: gating}
}

package runner

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/hamed0406/gatewatch/internal/check"
	"github.com/hamed0406/gatewatch/internal/probe"
	"github.com/hamed0406/gatewatch/internal/report"
)

// Runner executes one full probe cycle: build the profile's fresh target
// set, probe and reconcile sequentially, apply the gating decision, and
// hand the result to every configured emitter.
type Runner struct {
	Log       *zap.Logger
	Prober    probe.Prober
	Policy    report.Policy
	Emitters  []report.Emitter
	Profile   Profile
	GatingURL string
	Timeout   time.Duration
}

// Report summarizes one run; the HTTP trigger returns it as JSON.
type Report struct {
	RunID    string          `json:"run_id"`
	Profile  string          `json:"profile"`
	Reported []string        `json:"reported"`
	Records  []report.Record `json:"records"`
}

func New(log *zap.Logger, prober probe.Prober, emitters []report.Emitter, prof Profile, gatingURL string, timeout time.Duration) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	if timeout <= 0 {
		timeout = probe.DefaultTimeout
	}
	return &Runner{
		Log:       log,
		Prober:    prober,
		Policy:    report.NewPolicy(log),
		Emitters:  emitters,
		Profile:   prof,
		GatingURL: gatingURL,
		Timeout:   timeout,
	}
}

func (r *Runner) Run(ctx context.Context) (*Report, error) {
	runID := uuid.NewString()
	log := r.Log.With(zap.String("run_id", runID), zap.String("profile", r.Profile.Name))
	log.Info("run_started", zap.String("gating", r.Profile.GatingName))

	targets := r.Profile.Build(r.GatingURL)
	if err := check.ReconcileAll(ctx, targets, r.Prober, r.Timeout); err != nil {
		log.Error("run_aborted", zap.Error(err))
		return nil, err
	}

	gating, peers, err := split(targets, r.Profile.GatingName)
	if err != nil {
		log.Error("run_aborted", zap.Error(err))
		return nil, err
	}

	for _, t := range targets {
		log.Info("target_reconciled",
			zap.String("target", t.Name),
			zap.Bool("matched", t.Matched),
			zap.String("expected", t.Expected.String()),
			zap.String("actual", t.Actual),
		)
	}

	reported := r.Policy.Decide(gating, peers)
	for _, e := range r.Emitters {
		if err := e.Emit(ctx, gating, reported); err != nil {
			// Sink delivery problems are the sink's concern; the run itself
			// still completed.
			log.Warn("emit_failed", zap.Error(err))
		}
	}

	rep := &Report{
		RunID:    runID,
		Profile:  r.Profile.Name,
		Reported: make([]string, 0, len(reported)),
		Records:  report.Records(gating, reported),
	}
	for _, rec := range rep.Records {
		if rec.Status == "Failure" {
			rep.Reported = append(rep.Reported, rec.Target)
		}
	}
	log.Info("run_finished", zap.Int("reported", len(rep.Reported)))
	return rep, nil
}

// split separates the gating target from its peers. The profile guarantees
// the gating name is present; a miss is a programming error.
func split(targets []*check.Target, gatingName string) (*check.Target, map[string]*check.Target, error) {
	var gating *check.Target
	peers := make(map[string]*check.Target, len(targets)-1)
	for _, t := range targets {
		if t.Name == gatingName {
			gating = t
			continue
		}
		peers[t.Name] = t
	}
	if gating == nil {
		return nil, nil, fmt.Errorf("gating target %q not in target set", gatingName)
	}
	return gating, peers, nil
}

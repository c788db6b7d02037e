package scheduler

import (
	"context"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Scheduler fires probe runs on a cron expression. It exists only as a
// trigger; the run itself owns everything else.
type Scheduler struct {
	Log  *zap.Logger
	cron *cron.Cron
}

func New(log *zap.Logger) *Scheduler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Scheduler{Log: log, cron: cron.New()}
}

// ValidateSpec checks a cron expression without starting anything.
func ValidateSpec(spec string) error {
	_, err := cron.ParseStandard(spec)
	return err
}

// Start registers the job under spec and begins ticking. The job runs with
// a background-derived context; runs already in flight are not cancelled by
// Stop.
func (s *Scheduler) Start(spec string, job func(ctx context.Context)) error {
	_, err := s.cron.AddFunc(spec, func() {
		s.Log.Info("scheduled_run_fired", zap.String("spec", spec))
		job(context.Background())
	})
	if err != nil {
		return err
	}
	s.cron.Start()
	s.Log.Info("scheduler_started", zap.String("spec", spec))
	return nil
}

func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.Log.Info("scheduler_stopped")
}

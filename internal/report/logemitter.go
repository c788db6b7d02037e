package report

import (
	"context"

	"go.uber.org/zap"

	"github.com/hamed0406/gatewatch/internal/check"
)

// LogEmitter writes the structured report variant to the zap logger: one
// failure record per reported target, or one success record for the gating
// target when the reported set is empty.
type LogEmitter struct {
	Log *zap.Logger
}

func NewLogEmitter(log *zap.Logger) *LogEmitter {
	if log == nil {
		log = zap.NewNop()
	}
	return &LogEmitter{Log: log}
}

func (e *LogEmitter) Emit(ctx context.Context, gating *check.Target, reported map[string]*check.Target) error {
	for _, rec := range Records(gating, reported) {
		fields := []zap.Field{
			zap.String("status", rec.Status),
			zap.String("target", rec.Target),
			zap.String("message", rec.Message),
		}
		if rec.Expected != "" {
			fields = append(fields, zap.String("expected", rec.Expected))
		}
		if rec.Actual != "" {
			fields = append(fields, zap.String("actual", rec.Actual))
		}
		if rec.Status == "Failure" {
			e.Log.Error("probe_report", fields...)
		} else {
			e.Log.Info("probe_report", fields...)
		}
	}
	return nil
}

package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hamed0406/gatewatch/internal/config"
	"github.com/hamed0406/gatewatch/internal/logging"
	"github.com/hamed0406/gatewatch/internal/notify"
	"github.com/hamed0406/gatewatch/internal/probe"
	"github.com/hamed0406/gatewatch/internal/report"
	"github.com/hamed0406/gatewatch/internal/runner"
)

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Execute one probe cycle and print the report",
		RunE:  runOnce,
	}
}

func runOnce(cmd *cobra.Command, args []string) error {
	cfgPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := logging.NewConsole()
	defer logger.Sync()

	r, err := buildRunner(cfg, logger)
	if err != nil {
		return err
	}

	rep, err := r.Run(cmd.Context())
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(rep)
}

func buildRunner(cfg config.Config, logger *zap.Logger) (*runner.Runner, error) {
	prof, err := runner.ProfileByName(cfg.Profile)
	if err != nil {
		return nil, err
	}

	emitters := []report.Emitter{report.NewLogEmitter(logger)}
	var sinks notify.Multi
	if s := notify.NewSlack(cfg.SlackWebhook); s != nil {
		sinks = append(sinks, s)
	}
	if b := notify.NewBus(cfg.BusEndpoint, cfg.BusSource, cfg.BusType); b != nil {
		sinks = append(sinks, b)
	}
	if len(sinks) > 0 {
		emitters = append(emitters, report.NewBusEmitter(sinks))
	}

	prober := probe.NewHTTPProber(cfg.ProbeTimeout)
	return runner.New(logger, prober, emitters, prof, cfg.GatingURL, cfg.ProbeTimeout), nil
}

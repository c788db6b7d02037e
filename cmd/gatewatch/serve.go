package main

import (
	"context"
	"net/http"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hamed0406/gatewatch/internal/config"
	"github.com/hamed0406/gatewatch/internal/httpapi"
	"github.com/hamed0406/gatewatch/internal/logging"
	"github.com/hamed0406/gatewatch/internal/scheduler"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP trigger and, if SCHEDULE is set, fire runs on a cron",
		RunE:  serve,
	}
}

func serve(cmd *cobra.Command, args []string) error {
	cfgPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.NewLogger(cfg.LogDir)
	if err != nil {
		return err
	}
	defer logger.Sync()

	r, err := buildRunner(cfg, logger)
	if err != nil {
		return err
	}

	if cfg.Schedule != "" {
		sched := scheduler.New(logger)
		err := sched.Start(cfg.Schedule, func(ctx context.Context) {
			if _, err := r.Run(ctx); err != nil {
				logger.Error("scheduled_run_failed", zap.Error(err))
			}
		})
		if err != nil {
			return err
		}
		defer sched.Stop()
	}

	api := httpapi.NewServer(logger, r)
	logger.Info("api_listen", zap.String("addr", cfg.Addr))
	return http.ListenAndServe(cfg.Addr, api.Router())
}

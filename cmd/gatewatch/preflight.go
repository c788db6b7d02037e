package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hamed0406/gatewatch/internal/runner"
	"github.com/hamed0406/gatewatch/internal/scheduler"
)

func newPreflightCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "preflight",
		Short: "Sanity-check the environment before deploying",
		Run:   preflight,
	}
}

func preflight(cmd *cobra.Command, args []string) {
	failed := false
	fail := func(msg string) {
		fmt.Fprintln(os.Stderr, "✖", msg)
		failed = true
	}
	warn := func(msg string) { fmt.Fprintln(os.Stderr, "⚠", msg) }
	ok := func(msg string) { fmt.Println("✔", msg) }

	gating := strings.TrimSpace(os.Getenv("GATING_URL"))
	profile := strings.TrimSpace(os.Getenv("PROFILE"))
	schedule := strings.TrimSpace(os.Getenv("SCHEDULE"))
	webhook := strings.TrimSpace(os.Getenv("SLACK_WEBHOOK"))
	bus := strings.TrimSpace(os.Getenv("BUS_ENDPOINT"))

	if gating == "" {
		fail("GATING_URL is empty (every profile needs its gating target address).")
	} else if !strings.Contains(gating, "://") {
		warn("GATING_URL has no scheme; expected something like https://host")
	} else {
		ok("GATING_URL=" + gating)
	}

	if profile == "" {
		warn("PROFILE empty — the standard profile will be used.")
	} else if _, err := runner.ProfileByName(profile); err != nil {
		fail(err.Error())
	} else {
		ok("PROFILE=" + profile)
	}

	if schedule == "" {
		warn("SCHEDULE empty — serve mode will only run on demand.")
	} else if err := scheduler.ValidateSpec(schedule); err != nil {
		fail("SCHEDULE does not parse: " + err.Error())
	} else {
		ok("SCHEDULE=" + schedule)
	}

	if webhook == "" && bus == "" {
		warn("no SLACK_WEBHOOK or BUS_ENDPOINT — alerts go to the log only.")
	}
	for name, v := range map[string]string{"SLACK_WEBHOOK": webhook, "BUS_ENDPOINT": bus} {
		if v != "" && !strings.HasPrefix(v, "https://") && !strings.HasPrefix(v, "http://") {
			warn(name + " does not look like an HTTP(S) URL")
		}
	}

	if failed {
		os.Exit(1)
	}
	ok("preflight passed")
}

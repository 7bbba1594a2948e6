package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/nstehr/meanmax/meanmax-core/agent"
	"github.com/nstehr/meanmax/meanmax-core/config"
	"github.com/nstehr/meanmax/meanmax-core/ipc"
	"github.com/nstehr/meanmax/meanmax-core/model"
	"github.com/nstehr/meanmax/meanmax-core/rules"
)

func main() {
	fs := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	config.Flags(fs)
	_ = fs.Parse(os.Args[1:])

	cfg, err := config.Load(fs)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(2)
	}

	// stdout belongs to the referee.
	slog.SetDefault(config.NewLogger(cfg, os.Stderr))
	slog.Info("starting meanmax", "side", cfg.Side, "logLevel", cfg.LogLevel)

	profile := rules.DefaultProfile()
	if cfg.TuningFile != "" {
		profile, err = rules.LoadProfile(cfg.TuningFile)
		if err != nil {
			slog.Error("failed to load tuning profile", "path", cfg.TuningFile, "error", err)
			os.Exit(2)
		}
		slog.Info("tuning profile loaded", "path", cfg.TuningFile, "name", profile.Name)
	}

	engine, err := rules.NewEngine(profile)
	if err != nil {
		slog.Error("failed to compile rules", "error", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a := agent.New(model.Owner(cfg.Side), engine)
	if err := a.Run(ctx, ipc.NewConnection(os.Stdin, os.Stdout)); err != nil {
		stop()
		os.Exit(1)
	}
}

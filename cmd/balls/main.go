package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"bouncing-balls/internal/commands"
	"bouncing-balls/internal/config"
	"bouncing-balls/internal/logger"
	"bouncing-balls/internal/model"
	"bouncing-balls/internal/runner"
)

func main() {
	log := logger.New(logger.DefaultPath)
	reg := commands.NewRegistry()
	configPath := config.DefaultPath

	// loadModel reads the config and builds the configured model; every subcommand that runs a
	// simulation goes through it so they all log the same way.
	loadModel := func(seed uint64) (config.Config, model.Model, error) {
		cfg, err := config.Load(configPath)
		if err != nil {
			return cfg, nil, err
		}
		if seed != 0 {
			cfg.Seed = seed
		}
		opts, err := cfg.Options()
		if err != nil {
			return cfg, nil, err
		}
		m, err := model.New(cfg.Model, opts)
		if err != nil {
			return cfg, nil, err
		}
		log.Logf("%s model: %d balls in %gx%g arena (config %s)", cfg.Model, len(m.Snapshot()), cfg.Width, cfg.Height, configPath)
		return cfg, m, nil
	}

	viewFlags := newFlagSet("view", &configPath)
	viewSeed := viewFlags.Uint64("seed", 0, "override the config seed (0 keeps it)")
	reg.Register("view", "open a window and animate the balls (space pauses, N steps)", viewFlags, func() error {
		cfg, m, err := loadModel(*viewSeed)
		if err != nil {
			return err
		}
		view(cfg, m, log)
		return nil
	})

	runFlags := newFlagSet("run", &configPath)
	runSeed := runFlags.Uint64("seed", 0, "override the config seed (0 keeps it)")
	duration := runFlags.Duration("duration", 0, "stop after this long (0 runs until interrupted)")
	tick := runFlags.Duration("tick", runner.DefaultTick, "physics step, in wall-clock time")
	every := runFlags.Duration("every", runner.DefaultReportEvery, "print a snapshot this often")
	reg.Register("run", "step in real time without a window, printing snapshots", runFlags, func() error {
		_, m, err := loadModel(*runSeed)
		if err != nil {
			return err
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return runner.Realtime(ctx, m, runner.Options{Duration: *duration, Tick: *tick, Every: *every}, os.Stdout, log)
	})

	stepsFlags := newFlagSet("steps", &configPath)
	stepsSeed := stepsFlags.Uint64("seed", 0, "override the config seed (0 keeps it)")
	n := stepsFlags.Int("n", 100, "number of steps")
	dt := stepsFlags.Float64("dt", 0.01, "time per step in seconds")
	reg.Register("steps", "advance a fixed number of steps and print the final snapshot", stepsFlags, func() error {
		_, m, err := loadModel(*stepsSeed)
		if err != nil {
			return err
		}
		return runner.Steps(m, *n, *dt, os.Stdout)
	})

	initFlags := newFlagSet("init-config", &configPath)
	force := initFlags.Bool("force", false, "overwrite an existing file")
	reg.Register("init-config", "write the default config file", initFlags, func() error {
		if _, err := os.Stat(configPath); err == nil && !*force {
			return fmt.Errorf("%s already exists (use -force to overwrite)", configPath)
		}
		if err := config.Save(configPath, config.Default()); err != nil {
			return err
		}
		log.Logf("wrote %s", configPath)
		return nil
	})

	if err := reg.Execute(os.Args[1:]); err != nil {
		if errors.Is(err, commands.ErrUsage) {
			reg.Usage(os.Stderr, "balls")
			os.Exit(2)
		}
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Log(err.Error())
		fmt.Fprintln(os.Stderr, "balls:", err)
		os.Exit(1)
	}
}

func newFlagSet(name string, configPath *string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.StringVar(configPath, "config", config.DefaultPath, "path to the YAML config")
	return fs
}

package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"

	"github.com/informaticalaredo/GrowthMaster/internal/advisor"
	"github.com/informaticalaredo/GrowthMaster/internal/batch"
	"github.com/informaticalaredo/GrowthMaster/internal/catalog"
	"github.com/informaticalaredo/GrowthMaster/internal/config"
	"github.com/informaticalaredo/GrowthMaster/internal/console"
	"github.com/informaticalaredo/GrowthMaster/internal/engine"
	"github.com/informaticalaredo/GrowthMaster/internal/game"
	"github.com/informaticalaredo/GrowthMaster/internal/player"
	"github.com/informaticalaredo/GrowthMaster/internal/recorder"
	"github.com/informaticalaredo/GrowthMaster/internal/report"
	"github.com/informaticalaredo/GrowthMaster/internal/scheduler"
)

type options struct {
	configPath string
	mode       string
	export     string
	now        bool
}

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	opts := options{configPath: "configs/config.yaml"}
	flag.StringVar(&opts.mode, "mode", "play", "play | autoplay | batch")
	flag.StringVar(&opts.export, "export", "", "write the final game state as JSON to this path")
	flag.BoolVar(&opts.now, "now", false, "autoplay: play every round immediately instead of on the cron schedule")
	flag.Parse()
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		opts.configPath = v
	}

	log.Println("[INFO] GrowthMaster starting...")

	// Context for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := run(ctx, opts, os.Stdout)
	stop()
	if err != nil {
		log.Fatalf("[FATAL] %v", err)
	}
	log.Println("[INFO] GrowthMaster stopped")
}

// run returns instead of exiting so deferred cleanup, the recorder close
// in particular, happens on every path.
func run(ctx context.Context, opts options, stdout io.Writer) error {
	// Load config
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config validation: %w", err)
	}
	cat, err := cfg.Catalog()
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	log.Printf("[INFO] catalog: %d actions", cat.Len())

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	gameCfg := game.Config{
		MaxRounds:      cfg.Game.MaxRounds,
		InitialBudget:  cfg.Game.InitialBudget,
		SelectionLimit: cfg.Game.SelectionLimit,
	}

	if opts.mode == "batch" {
		return runBatch(ctx, cfg, cat, gameCfg, rec, stdout)
	}

	eng := engine.New(cfg.Economics, cat, nil)
	gm := game.NewManager(gameCfg, eng)
	adv := advisor.NewRuleAdvisor(cat)

	switch opts.mode {
	case "play":
		sched := scheduler.NewScheduler(ctx, gm, nil, adv, rec, stdout)
		prompt := ""
		if isatty.IsTerminal(os.Stdin.Fd()) {
			prompt = "> "
			fmt.Fprintln(stdout, sched.HandleCommand("/help"))
		}
		if err := console.Run(ctx, os.Stdin, stdout, prompt, sched.HandleCommand); err != nil {
			log.Printf("[ERROR] console: %v", err)
		}
	case "autoplay":
		pol := player.New(cfg.Autoplay.Policy, cfg.Autoplay.Plan)
		sched := scheduler.NewScheduler(ctx, gm, pol, adv, rec, stdout)
		if err := sched.StartGame(); err != nil {
			return fmt.Errorf("start game: %w", err)
		}
		if opts.now {
			sched.RunToEnd()
			break
		}
		if err := sched.RegisterAutoplay(cfg.Autoplay.Cron); err != nil {
			return fmt.Errorf("register autoplay: %w", err)
		}
		sched.Start()
		log.Printf("[INFO] autoplay running with policy %s on %q. Press Ctrl+C to stop.", pol.Name(), cfg.Autoplay.Cron)
		select {
		case <-sched.Done():
		case <-ctx.Done():
			log.Println("[INFO] shutdown signal received, stopping...")
		}
		sched.Stop()
	default:
		return fmt.Errorf("unknown mode %q", opts.mode)
	}

	if opts.export != "" {
		if err := game.WriteState(opts.export, gm.State()); err != nil {
			log.Printf("[ERROR] export game state: %v", err)
		} else {
			log.Printf("[INFO] game state written to %s", opts.export)
		}
	}
	return nil
}

func runBatch(ctx context.Context, cfg *config.Config, cat *catalog.Catalog, gameCfg game.Config, rec recorder.Recorder, stdout io.Writer) error {
	var progress io.Writer
	if isatty.IsTerminal(os.Stderr.Fd()) {
		progress = os.Stderr
	}

	policy, plan := cfg.Autoplay.Policy, cfg.Autoplay.Plan
	out, err := batch.Run(ctx, batch.Options{
		Games:     cfg.Batch.Games,
		Workers:   cfg.Batch.Workers,
		Seed:      cfg.Batch.Seed,
		Economics: cfg.Economics,
		Catalog:   cat,
		Game:      gameCfg,
		NewPolicy: func() player.Policy { return player.New(policy, plan) },
		Progress:  progress,
	})
	if err != nil {
		return fmt.Errorf("batch run: %w", err)
	}
	fmt.Fprint(stdout, report.FormatBatch(out))

	if err := rec.RecordBatch(&recorder.BatchEvent{
		RunID:      out.RunID,
		Policy:     out.Policy,
		Games:      out.Games,
		Seed:       out.Seed,
		MeanBudget: out.MeanBudget,
		P10Budget:  out.P10Budget,
		P50Budget:  out.P50Budget,
		P90Budget:  out.P90Budget,
		MeanCR:     out.MeanCR,
	}); err != nil {
		log.Printf("[ERROR] record batch: %v", err)
	}
	return nil
}

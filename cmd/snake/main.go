package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"snake/internal/app"
	"snake/internal/domain"
	"snake/internal/ui/graphics"
	"snake/internal/ui/terminal"

	"github.com/golang/glog"
)

type options struct {
	config *domain.GameConfig
	ui     string
	seed   uint64
}

func parseFlags() *options {
	defaults := domain.DefaultGameConfig()
	opts := &options{config: defaults.Copy()}

	flag.IntVar(&opts.config.Width, "width", defaults.Width, "Grid width in pixels")
	flag.IntVar(&opts.config.Height, "height", defaults.Height, "Grid height in pixels")
	flag.IntVar(&opts.config.CellSize, "cell", defaults.CellSize, "Cell size in pixels, must divide width and height")
	flag.IntVar(&opts.config.TickRate, "tps", defaults.TickRate, "Simulation ticks per second")
	flag.StringVar(&opts.ui, "ui", "gui", "Front-end: gui or term")
	flag.Uint64Var(&opts.seed, "seed", 0, "Food placement seed (0 = time based)")
	flag.Parse()

	return opts
}

func main() {
	opts := parseFlags()
	defer glog.Flush()

	if err := opts.config.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		glog.Exitf("Bad configuration: %v", err)
	}
	if opts.ui != "gui" && opts.ui != "term" {
		fmt.Fprintf(os.Stderr, "unknown -ui %q, want gui or term\n", opts.ui)
		glog.Exitf("Unknown front-end %q", opts.ui)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	state := domain.NewGameState(opts.config, domain.NewRand(opts.seed))

	var err error
	switch opts.ui {
	case "term":
		err = runTerminal(ctx, state)
	default:
		err = runGraphics(ctx, state)
	}
	if err != nil {
		glog.Errorf("Snake stopped: %v", err)
		glog.Flush()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	glog.Info("Shutting down...")
}

func runGraphics(ctx context.Context, state *domain.GameState) error {
	engine := graphics.NewEngine(ctx, state.Config)
	engine.SetLoop(app.NewApp(state, engine, engine))
	return engine.Run()
}

func runTerminal(ctx context.Context, state *domain.GameState) error {
	term, err := terminal.New()
	if err != nil {
		return err
	}
	return term.Run(ctx, app.NewApp(state, term, term))
}

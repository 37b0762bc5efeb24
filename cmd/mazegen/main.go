// Command mazegen carves a perfect maze and writes it as ASCII, PNG or JSON.
//
//	mazegen -rows 10 -cols 30 -seed 7 -solve
//	mazegen -solve -exit farthest
//	mazegen -format png -out maze.png
//	mazegen -animate -delay 30ms
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/labyrinth/grid"
	"github.com/katalvlaran/labyrinth/internal/config"
	"github.com/katalvlaran/labyrinth/internal/logging"
	"github.com/katalvlaran/labyrinth/maze"
	"github.com/katalvlaran/labyrinth/render"
)

// clearScreen homes the cursor and clears the terminal.
const clearScreen = "\033[H\033[2J"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, "mazegen:", err)
		os.Exit(1)
	}
}

type options struct {
	rows, cols int
	seed       int64
	format     string
	out        string
	exit       string
	solve      bool
	animate    bool
	delay      time.Duration
	envfile    string
}

func parseFlags(args []string, cfg config.Config, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("mazegen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&o.rows, "rows", cfg.Rows, "maze height in cells")
	fs.IntVar(&o.cols, "cols", cfg.Cols, "maze width in cells")
	fs.Int64Var(&o.seed, "seed", cfg.Seed, "random seed (0 picks one from the clock)")
	fs.StringVar(&o.format, "format", "ascii", "output format: ascii, png or json")
	fs.StringVar(&o.out, "out", "", "output file (default stdout)")
	fs.BoolVar(&o.solve, "solve", false, "overlay the path from the top-left cell to the exit")
	fs.StringVar(&o.exit, "exit", maze.ExitCorner, "exit placement for -solve: corner or farthest")
	fs.BoolVar(&o.animate, "animate", false, "redraw the maze after every generation step")
	fs.DurationVar(&o.delay, "delay", cfg.Delay, "pause between animated steps")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	switch o.format {
	case "ascii", "png", "json":
	default:
		return o, fmt.Errorf("unknown format %q", o.format)
	}
	switch o.exit {
	case maze.ExitCorner, maze.ExitFarthest:
	default:
		return o, fmt.Errorf("unknown exit placement %q", o.exit)
	}
	if o.animate && o.delay == 0 {
		o.delay = 20 * time.Millisecond
	}
	return o, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg, err := config.Load("")
	if err != nil {
		return err
	}
	logger := logging.New(stderr, cfg.LogLevel)

	o, err := parseFlags(args, cfg, stderr)
	if err != nil {
		return err
	}

	g, err := grid.New(o.rows, o.cols)
	if err != nil {
		return err
	}
	gen, err := maze.NewGenerator(g, generatorOptions(ctx, o, g, stdout, logger)...)
	if err != nil {
		return err
	}
	res, err := gen.Run()
	if err != nil {
		return err
	}
	logger.Info().
		Int64("seed", res.Seed).
		Int("steps", res.Steps).
		Dur("elapsed", res.Elapsed).
		Msg("maze generated")

	var overlay []render.Option
	if o.solve {
		exit, err := maze.Exit(g, o.exit)
		if err != nil {
			return err
		}
		path, err := maze.Solve(g, grid.Coord{}, exit)
		if err != nil {
			return err
		}
		overlay = append(overlay, render.WithPath(path))
	}

	w := stdout
	if o.out != "" {
		f, err := os.Create(o.out)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	if o.animate && o.format == "ascii" && o.out == "" {
		fmt.Fprint(w, clearScreen)
	}

	switch o.format {
	case "png":
		err = render.WritePNG(w, g, overlay...)
	case "json":
		err = render.WriteJSON(w, g, res.Seed, overlay...)
	default:
		err = render.WriteASCII(w, g, overlay...)
	}
	if err != nil {
		return err
	}
	if f, ok := w.(*os.File); ok && f != os.Stdout {
		return f.Close()
	}
	return nil
}

// generatorOptions seeds the run and, when animating, redraws after each step.
func generatorOptions(ctx context.Context, o options, g *grid.Grid, stdout io.Writer, logger zerolog.Logger) []maze.Option {
	opts := []maze.Option{maze.WithContext(ctx), maze.WithLogger(logger)}
	if o.seed != 0 {
		opts = append(opts, maze.WithSeed(o.seed))
	}
	if !o.animate {
		return opts
	}
	return append(opts,
		maze.WithDelay(o.delay),
		maze.WithOnStep(func(ev maze.StepEvent) error {
			fmt.Fprint(stdout, clearScreen)
			return render.WriteASCII(stdout, g, render.WithCursor(ev.To))
		}),
	)
}

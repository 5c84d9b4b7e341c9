package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/xiform/xiform/cmd/xiform/internal/scene"
	"github.com/xiform/xiform/pkg/errors"
	"github.com/xiform/xiform/pkg/terminal"
)

func init() {
	RegisterCommand(&Command{
		Name:  "run",
		Short: "Show the demo form in the terminal",
		Long: `Show the demo form in the terminal. Use the mouse to drag the window by
its title bar, move the slider and focus the text field. Press ctrl+c to quit.

Flags:
  --dir DIR      Project directory holding xiform.yaml (default: enclosing module)
  --log FILE     Append toolkit errors and session frame timings to FILE
                 instead of discarding them`,
		Usage: "xiform run [--dir DIR] [--log FILE]",
		Run:   runRun,
	})
}

type runOptions struct {
	dir     string
	logFile string
}

func parseRunArgs(args []string) (runOptions, error) {
	var opts runOptions
	for i := 0; i < len(args); i++ {
		if v, next, ok, err := flagValue(args, i, "dir"); ok {
			if err != nil {
				return opts, err
			}
			opts.dir, i = v, next
			continue
		}
		if v, next, ok, err := flagValue(args, i, "log"); ok {
			if err != nil {
				return opts, err
			}
			opts.logFile, i = v, next
			continue
		}
		return opts, fmt.Errorf("unknown flag %q", args[i])
	}
	return opts, nil
}

func runRun(args []string, _ io.Writer) error {
	opts, err := parseRunArgs(args)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(opts.dir)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// The terminal owns stdout and stderr while the program runs.
	logOut := io.Discard
	if opts.logFile != "" {
		f, err := os.OpenFile(opts.logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	errors.SetHandler(&errors.LogHandler{Out: logOut})
	defer errors.SetHandler(nil)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reg, _ := scene.Build(cfg)
	stats, err := terminal.Run(ctx, reg, terminal.Options{
		CellWidth:  cfg.CellWidth,
		CellHeight: cfg.CellHeight,
		Background: cfg.Background,
	})
	fmt.Fprintf(logOut, "[xiform] %s: %s\n", cfg.AppName, stats)
	return err
}

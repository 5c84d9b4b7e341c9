package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/xiform/xiform/cmd/xiform/internal/scene"
	"github.com/xiform/xiform/pkg/engine"
	"github.com/xiform/xiform/pkg/input"
	"github.com/xiform/xiform/pkg/raster"
)

func init() {
	RegisterCommand(&Command{
		Name:  "render",
		Short: "Render the demo form to a PNG image",
		Long: `Render the demo form to a PNG image, optionally after replaying input.

The script is a space-separated list of events:
  move:X,Y  down:X,Y  up:X,Y  text:STRING  key:NAME  quit
Key names: backspace delete left right home end enter escape tab.

Flags:
  --dir DIR        Project directory holding xiform.yaml (default: enclosing module)
  --out FILE       Output file (default: <app name>.png)
  --script EVENTS  Events to replay before the final frame`,
		Usage: "xiform render [--dir DIR] [--out FILE] [--script EVENTS]",
		Run:   runRender,
	})
}

type renderOptions struct {
	dir    string
	out    string
	script string
}

func parseRenderArgs(args []string) (renderOptions, error) {
	var opts renderOptions
	for i := 0; i < len(args); i++ {
		matched := false
		for _, f := range []struct {
			name string
			dst  *string
		}{{"dir", &opts.dir}, {"out", &opts.out}, {"script", &opts.script}} {
			v, next, ok, err := flagValue(args, i, f.name)
			if !ok {
				continue
			}
			if err != nil {
				return opts, err
			}
			*f.dst, i, matched = v, next, true
			break
		}
		if !matched {
			return opts, fmt.Errorf("unknown flag %q", args[i])
		}
	}
	return opts, nil
}

func runRender(args []string, out io.Writer) error {
	opts, err := parseRenderArgs(args)
	if err != nil {
		return err
	}
	cfg, err := loadConfig(opts.dir)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	events, err := input.ParseScript(opts.script)
	if err != nil {
		return fmt.Errorf("invalid script: %w", err)
	}
	if opts.out == "" {
		opts.out = cfg.AppName + ".png"
	}

	reg, _ := scene.Build(cfg)
	surf := raster.New(cfg.Width, cfg.Height)
	loop := engine.NewLoop(reg, surf, engine.NewReplay(events))
	loop.Background = cfg.Background
	if err := loop.Run(context.Background()); err != nil {
		return err
	}

	f, err := os.Create(opts.out)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	if err := surf.WritePNG(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	if err := f.Close(); err != nil {
		return err
	}

	fmt.Fprintf(out, "Rendered %s (%dx%d, %s)\n",
		opts.out, cfg.Width, cfg.Height, loop.Stats())
	return nil
}

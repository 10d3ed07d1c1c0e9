// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/slideout-demo/main.go
// Summary: Terminal demo for the slide-out panel.
// Usage: slideout-demo [--dock left] [--size 40%] [--file main.go]

package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/framegrace/texelslide/config"
	"github.com/framegrace/texelslide/internal/devshell"
	"github.com/framegrace/texelslide/internal/effects"
	"github.com/framegrace/texelslide/internal/logging"
	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/term"
)

var errNoTTY = errors.New("slideout-demo: stdin and stdout must be a terminal")

// flagKeys maps command-line flags onto configuration keys.
var flagKeys = map[string]string{
	"dock":         "panel.dock",
	"size":         "panel.size",
	"fixed-size":   "panel.fixed_size",
	"offset":       "panel.offset",
	"min":          "panel.min_size",
	"max":          "panel.max_size",
	"fixed":        "panel.fixed",
	"fullscreen":   "panel.fullscreen",
	"title":        "panel.title",
	"mask":         "panel.mask_color",
	"easing":       "panel.easing",
	"resize":       "panel.allow_resize",
	"no-animation": "panel.disable_animation",
	"mask-close":   "panel.close_on_mask_click",
	"ignore-esc":   "panel.ignore_escape",
	"visible":      "panel.visible",
	"file":         "demo.file",
	"style":        "demo.style",
	"log-file":     "logger.file",
	"log-level":    "logger.level",
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "slideout-demo",
		Short:         "Slide-out panel demo for the terminal",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
				return errNoTTY
			}
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			logger, closeLog, err := logging.New(cfg.Logger)
			if err != nil {
				return fmt.Errorf("slideout-demo: logger: %w", err)
			}
			defer func() { _ = closeLog() }()
			return run(cfg, logger)
		},
	}

	f := cmd.Flags()
	f.StringP("config", "c", "", "config file (default $XDG_CONFIG_HOME/texelslide/slideout.yaml)")
	f.String("dock", "", "dock side: top, right, bottom or left")
	f.String("size", "", "relative size along the dock axis, cells or percent")
	f.StringSlice("fixed-size", nil, "fixed width[,height]")
	f.String("offset", "", "cross-axis offset for fixed sizes")
	f.Int("min", 0, "minimum drag-resize size in cells")
	f.Int("max", 0, "maximum drag-resize size in cells")
	f.Bool("fixed", false, "position against the screen")
	f.Bool("fullscreen", false, "start in full screen")
	f.String("title", "", "panel header title")
	f.String("mask", "", "mask color name or #rrggbb")
	f.String("easing", "", "slide easing: "+strings.Join(effects.EasingNames(), ", "))
	f.Bool("resize", true, "allow drag-resize")
	f.Bool("no-animation", false, "disable the slide animation")
	f.Bool("mask-close", true, "close when the mask is clicked")
	f.Bool("ignore-esc", false, "ignore the Escape key")
	f.Bool("visible", false, "open the panel on start")
	f.String("file", "", "file previewed in the panel body")
	f.String("style", "", "chroma style for the preview")
	f.String("log-file", "", "log file (rotated)")
	f.String("log-level", "", "log level")
	return cmd
}

// resolveConfig layers flags over environment, config file and defaults.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	v, err := config.NewViper(path)
	if err != nil {
		return nil, err
	}
	if err := bindFlags(v, cmd); err != nil {
		return nil, err
	}
	return config.FromViper(v)
}

func bindFlags(v *viper.Viper, cmd *cobra.Command) error {
	for name, key := range flagKeys {
		flag := cmd.Flags().Lookup(name)
		if flag == nil {
			return fmt.Errorf("slideout-demo: unknown flag %q", name)
		}
		// Only explicit flags override lower layers.
		if !flag.Changed {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return err
		}
	}
	return nil
}

func run(cfg *config.Config, logger *zap.Logger) error {
	var app *demoApp
	err := devshell.Run(func(screen tcell.Screen) (devshell.App, error) {
		a, err := newDemoApp(screen, cfg, logger)
		if err != nil {
			return nil, err
		}
		app = a
		return a, nil
	})
	if app != nil {
		app.Close()
	}
	if err != nil {
		logger.Error("demo failed", zap.Error(err))
	}
	return err
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

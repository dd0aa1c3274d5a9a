package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/grindlemire/termkit"
	"github.com/grindlemire/termkit/driver/tcelldriver"
	"github.com/grindlemire/termkit/internal/debug"
)

// runDemo implements the demo subcommand.
func runDemo(args []string) error {
	fs := flag.NewFlagSet("demo", flag.ExitOnError)
	configPath := fs.String("config", "", "TOML config file")
	debugPath := fs.String("debug", "", "debug log file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("demo needs an interactive terminal")
	}
	if *debugPath != "" {
		if err := debug.Init(*debugPath); err != nil {
			return err
		}
		defer debug.Close()
	}

	drv, err := tcelldriver.New()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}

	var opts []tui.AppOption
	if *configPath != "" {
		opts = append(opts, tui.WithConfigFile(*configPath))
	}
	app, err := tui.NewApp(drv, drv, opts...)
	if err != nil {
		drv.Close()
		return err
	}
	defer app.Close()

	d := newDemo(app)
	if _, err := app.RegisterHotKey(tui.OnKeyStop(tui.KeyCtrlQ, func(tui.KeyEvent) { app.Stop() })); err != nil {
		return err
	}
	app.Present(d.main)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()
	return app.Run(ctx)
}

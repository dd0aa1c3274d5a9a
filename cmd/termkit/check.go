package main

import (
	"fmt"
	"io"
	"os"

	"github.com/grindlemire/termkit"
)

// runCheckConfig implements the check-config subcommand.
func runCheckConfig(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("check-config takes exactly one file")
	}
	cfg, err := tui.LoadConfig(args[0])
	if err != nil {
		return err
	}
	printConfig(os.Stdout, cfg)
	return nil
}

func printConfig(w io.Writer, cfg tui.Config) {
	mouse := "default"
	if cfg.Mouse != nil {
		mouse = fmt.Sprint(*cfg.Mouse)
	}
	fmt.Fprintf(w, "frame_rate                = %s\n", orDefault(cfg.FrameRate != 0, fmt.Sprint(cfg.FrameRate)))
	fmt.Fprintf(w, "input_latency             = %s\n", orDefault(cfg.InputLatency.Duration != 0, cfg.InputLatency.String()))
	fmt.Fprintf(w, "event_queue_size          = %s\n", orDefault(cfg.EventQueueSize != 0, fmt.Sprint(cfg.EventQueueSize)))
	fmt.Fprintf(w, "mouse                     = %s\n", mouse)
	fmt.Fprintf(w, "continuous_press_interval = %s\n", orDefault(cfg.ContinuousPressInterval.Duration != 0, cfg.ContinuousPressInterval.String()))
	fmt.Fprintf(w, "debug_log                 = %s\n", orDefault(cfg.DebugLog != "", cfg.DebugLog))
	fmt.Fprintf(w, "blank_rune                = %s\n", orDefault(cfg.BlankRune != "", fmt.Sprintf("%q", cfg.BlankRune)))
}

func orDefault(set bool, value string) string {
	if !set {
		return "default"
	}
	return value
}

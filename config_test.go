package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestParseConfig(t *testing.T) {
	type tc struct {
		input   string
		check   func(t *testing.T, cfg Config)
		wantErr string
	}

	tests := map[string]tc{
		"empty keeps defaults": {
			input: "",
			check: func(t *testing.T, cfg Config) {
				if cfg.FrameRate != 0 || cfg.Mouse != nil || cfg.InputLatency.Duration != 0 {
					t.Errorf("cfg = %+v, want zero", cfg)
				}
			},
		},
		"all fields": {
			input: `
frame_rate = 30
input_latency = "25ms"
event_queue_size = 512
mouse = false
continuous_press_interval = "80ms"
debug_log = "/tmp/x.log"
blank_rune = "·"
`,
			check: func(t *testing.T, cfg Config) {
				if cfg.FrameRate != 30 {
					t.Errorf("FrameRate = %d", cfg.FrameRate)
				}
				if cfg.InputLatency.Duration != 25*time.Millisecond {
					t.Errorf("InputLatency = %v", cfg.InputLatency)
				}
				if cfg.EventQueueSize != 512 {
					t.Errorf("EventQueueSize = %d", cfg.EventQueueSize)
				}
				if cfg.Mouse == nil || *cfg.Mouse {
					t.Errorf("Mouse = %v, want false", cfg.Mouse)
				}
				if cfg.ContinuousPressInterval.Duration != 80*time.Millisecond {
					t.Errorf("ContinuousPressInterval = %v", cfg.ContinuousPressInterval)
				}
				if cfg.DebugLog != "/tmp/x.log" || cfg.BlankRune != "·" {
					t.Errorf("cfg = %+v", cfg)
				}
			},
		},
		"unknown key": {
			input:   "frame_rate = 30\ncolour = \"red\"\n",
			wantErr: "unknown config keys: colour",
		},
		"bad duration": {
			input:   `input_latency = "fast"`,
			wantErr: "parse config",
		},
		"bad syntax": {
			input:   "frame_rate = ",
			wantErr: "parse config",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			cfg, err := ParseConfig(tt.input)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("ParseConfig error = %v, want %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseConfig: %v", err)
			}
			tt.check(t, cfg)
		})
	}
}

func TestWithConfig_AppliesOptions(t *testing.T) {
	cfg, err := ParseConfig(`
frame_rate = 50
input_latency = "10ms"
mouse = false
continuous_press_interval = "40ms"
blank_rune = "."
`)
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	app, _ := newTestApp(t, 4, 1, WithConfig(cfg))

	if app.frameDuration != 20*time.Millisecond {
		t.Errorf("frameDuration = %v, want 20ms", app.frameDuration)
	}
	if app.inputLatency != 10*time.Millisecond {
		t.Errorf("inputLatency = %v, want 10ms", app.inputLatency)
	}
	if app.mouseEnabled {
		t.Error("mouse still enabled")
	}
	if app.continuousPressInterval != 40*time.Millisecond {
		t.Errorf("continuousPressInterval = %v", app.continuousPressInterval)
	}
	if app.blank.Rune != '.' {
		t.Errorf("blank = %q, want '.'", app.blank.Rune)
	}
}

func TestWithConfig_InvalidValues(t *testing.T) {
	type tc struct {
		input   string
		wantErr string
	}

	tests := map[string]tc{
		"frame rate":       {input: "frame_rate = 1000", wantErr: "cannot exceed"},
		"multi-rune blank": {input: `blank_rune = "ab"`, wantErr: "single rune"},
		"queue size":       {input: "event_queue_size = -1", wantErr: "at least 1"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			cfg, err := ParseConfig(tt.input)
			if err != nil {
				t.Fatalf("ParseConfig: %v", err)
			}
			_, err = NewApp(NewMockTerminal(4, 1), nil, WithConfig(cfg))
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("NewApp error = %v, want %q", err, tt.wantErr)
			}
		})
	}
}

func TestWithConfigFile(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.toml")
	if err := os.WriteFile(good, []byte("event_queue_size = 8\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	app, _ := newTestApp(t, 4, 1, WithConfigFile(good))
	if app.eventQueueSize != 8 {
		t.Errorf("eventQueueSize = %d, want 8", app.eventQueueSize)
	}

	_, err := NewApp(NewMockTerminal(4, 1), nil, WithConfigFile(filepath.Join(dir, "missing.toml")))
	if err == nil || !strings.Contains(err.Error(), "missing.toml") {
		t.Errorf("missing file error = %v", err)
	}
}

func TestDuration_Text(t *testing.T) {
	var d Duration
	if err := d.UnmarshalText([]byte("1m30s")); err != nil {
		t.Fatalf("UnmarshalText: %v", err)
	}
	if d.Duration != 90*time.Second {
		t.Errorf("Duration = %v", d.Duration)
	}
	text, err := d.MarshalText()
	if err != nil || string(text) != "1m30s" {
		t.Errorf("MarshalText = %q, %v", text, err)
	}
}

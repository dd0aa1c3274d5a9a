package tui

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"github.com/grindlemire/termkit/internal/debug"
)

// Config is the file form of the App options. Zero fields keep the
// defaults.
//
//	frame_rate = 30
//	input_latency = "25ms"
//	event_queue_size = 512
//	mouse = false
//	continuous_press_interval = "80ms"
//	debug_log = "/tmp/termkit.log"
//	blank_rune = "·"
type Config struct {
	FrameRate               int      `toml:"frame_rate"`
	InputLatency            Duration `toml:"input_latency"`
	EventQueueSize          int      `toml:"event_queue_size"`
	Mouse                   *bool    `toml:"mouse"`
	ContinuousPressInterval Duration `toml:"continuous_press_interval"`
	DebugLog                string   `toml:"debug_log"`
	BlankRune               string   `toml:"blank_rune"`
}

// Duration is a time.Duration written as a string such as "50ms".
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// ParseConfig decodes TOML text. Unknown keys are an error.
func ParseConfig(data string) (Config, error) {
	var cfg Config
	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := checkUndecoded(md); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads and decodes a TOML config file.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := checkUndecoded(md); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

func checkUndecoded(md toml.MetaData) error {
	keys := md.Undecoded()
	if len(keys) == 0 {
		return nil
	}
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.String()
	}
	return fmt.Errorf("unknown config keys: %s", strings.Join(names, ", "))
}

// options converts the non-zero fields into AppOptions.
func (c Config) options() ([]AppOption, error) {
	var opts []AppOption
	if c.FrameRate != 0 {
		opts = append(opts, WithFrameRate(c.FrameRate))
	}
	if c.InputLatency.Duration != 0 {
		opts = append(opts, WithInputLatency(c.InputLatency.Duration))
	}
	if c.EventQueueSize != 0 {
		opts = append(opts, WithEventQueueSize(c.EventQueueSize))
	}
	if c.Mouse != nil && !*c.Mouse {
		opts = append(opts, WithoutMouse())
	}
	if c.ContinuousPressInterval.Duration != 0 {
		opts = append(opts, WithContinuousPressInterval(c.ContinuousPressInterval.Duration))
	}
	if c.BlankRune != "" {
		r, size := utf8.DecodeRuneInString(c.BlankRune)
		if size != len(c.BlankRune) {
			return nil, fmt.Errorf("blank_rune %q must be a single rune", c.BlankRune)
		}
		opts = append(opts, WithBlankCell(NewCell(r, NewStyle())))
	}
	return opts, nil
}

// WithConfig applies every field set in cfg. debug_log starts file
// logging immediately.
func WithConfig(cfg Config) AppOption {
	return func(a *App) error {
		opts, err := cfg.options()
		if err != nil {
			return err
		}
		for _, opt := range opts {
			if err := opt(a); err != nil {
				return fmt.Errorf("config: %w", err)
			}
		}
		if cfg.DebugLog != "" {
			if err := debug.Init(cfg.DebugLog); err != nil {
				return fmt.Errorf("config: %w", err)
			}
		}
		return nil
	}
}

// WithConfigFile loads path with LoadConfig and applies it.
func WithConfigFile(path string) AppOption {
	return func(a *App) error {
		cfg, err := LoadConfig(path)
		if err != nil {
			return err
		}
		return WithConfig(cfg)(a)
	}
}

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"

	"github.com/depeter/slidingpanel/internal/motion"
	"github.com/depeter/slidingpanel/internal/panel"
)

const appName = "slidingpanel"

type Config struct {
	Panel    PanelConfig   `toml:"panel"`
	UI       UIConfig      `toml:"ui"`
	Keybinds KeybindConfig `toml:"keybinds"`
}

type PanelConfig struct {
	AnchoredRatio     float64     `toml:"anchored_ratio"`
	CollapsedRatio    float64     `toml:"collapsed_ratio"`
	InitialState      panel.State `toml:"initial_state"`
	VelocityThreshold float64     `toml:"velocity_threshold"` // px/s
	AnimationMS       int         `toml:"animation_ms"`
	Easing            string      `toml:"easing"` // linear, ease_out_cubic, fast_out_slow_in
	Enabled           bool        `toml:"enabled"`
}

type UIConfig struct {
	Fullscreen bool `toml:"fullscreen"`
	Width      int  `toml:"width"`
	Height     int  `toml:"height"`
}

type KeybindConfig struct {
	Expanded   string `toml:"expanded"`
	Anchored   string `toml:"anchored"`
	Collapsed  string `toml:"collapsed"`
	Hidden     string `toml:"hidden"`
	ToggleDrag string `toml:"toggle_drag"`
	Fullscreen string `toml:"fullscreen"`
}

// StateKey pairs a panel state with the key that animates to it.
type StateKey struct {
	Key   string
	State panel.State
}

// StateKeys lists the per-state bindings in state order.
func (k KeybindConfig) StateKeys() []StateKey {
	return []StateKey{
		{k.Expanded, panel.Expanded},
		{k.Anchored, panel.Anchored},
		{k.Collapsed, panel.Collapsed},
		{k.Hidden, panel.Hidden},
	}
}

func DefaultConfig() *Config {
	return &Config{
		Panel: PanelConfig{
			AnchoredRatio:     panel.DefaultAnchoredRatio,
			CollapsedRatio:    panel.DefaultCollapsedRatio,
			InitialState:      panel.DefaultInitialState,
			VelocityThreshold: panel.DefaultVelocityThreshold,
			AnimationMS:       int(panel.DefaultAnimationDuration / time.Millisecond),
			Easing:            "fast_out_slow_in",
			Enabled:           true,
		},
		UI: UIConfig{
			Fullscreen: false,
			Width:      540,
			Height:     960,
		},
		Keybinds: KeybindConfig{
			Expanded:   "1",
			Anchored:   "2",
			Collapsed:  "3",
			Hidden:     "4",
			ToggleDrag: "D",
			Fullscreen: "F",
		},
	}
}

// AnimationDuration returns Panel.AnimationMS as a duration.
func (p PanelConfig) AnimationDuration() time.Duration {
	return time.Duration(p.AnimationMS) * time.Millisecond
}

// EasingFunc resolves the configured easing curve.
func (p PanelConfig) EasingFunc() motion.Easing {
	if e, ok := motion.EasingByName(p.Easing); ok {
		return e
	}
	return motion.FastOutSlowIn
}

// Options returns the controller options for these settings.
func (p PanelConfig) Options() []panel.Option {
	return []panel.Option{
		panel.WithInitialState(p.InitialState),
		panel.WithVelocityThreshold(p.VelocityThreshold),
		panel.WithAnimationDuration(p.AnimationDuration()),
		panel.WithEnabled(p.Enabled),
	}
}

// Apply pushes reloaded settings into a running controller. The geometry keeps
// its screen height; the initial state only matters at creation.
func (p PanelConfig) Apply(c *panel.Controller) error {
	if err := c.Configure(c.Geometry().ScreenHeight(), p.AnchoredRatio, p.CollapsedRatio); err != nil {
		return err
	}
	if err := c.SetVelocityThreshold(p.VelocityThreshold); err != nil {
		return err
	}
	if err := c.SetAnimationDuration(p.AnimationDuration()); err != nil {
		return err
	}
	c.SetEnabled(p.Enabled)
	return nil
}

// Validate checks everything the panel controller would reject, so a bad
// file fails at load instead of at the first layout.
func (c *Config) Validate() error {
	var errs []error
	if _, err := panel.NewGeometry(0, c.Panel.AnchoredRatio, c.Panel.CollapsedRatio); err != nil {
		errs = append(errs, err)
	}
	if !c.Panel.InitialState.Valid() {
		errs = append(errs, fmt.Errorf("initial_state: %w", panel.ErrInvalidState))
	}
	if c.Panel.VelocityThreshold < 0 {
		errs = append(errs, fmt.Errorf("%w: velocity_threshold %v is negative",
			panel.ErrInvalidConfiguration, c.Panel.VelocityThreshold))
	}
	if c.Panel.AnimationMS < 0 {
		errs = append(errs, fmt.Errorf("%w: animation_ms %d is negative",
			panel.ErrInvalidConfiguration, c.Panel.AnimationMS))
	}
	if _, ok := motion.EasingByName(c.Panel.Easing); !ok {
		errs = append(errs, fmt.Errorf("%w: unknown easing %q", panel.ErrInvalidConfiguration, c.Panel.Easing))
	}
	if c.UI.Width <= 0 || c.UI.Height <= 0 {
		errs = append(errs, fmt.Errorf("%w: window size %dx%d", panel.ErrInvalidConfiguration, c.UI.Width, c.UI.Height))
	}
	return errors.Join(errs...)
}

func ConfigDir() string {
	return filepath.Join(xdg.ConfigHome, appName)
}

func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads the config from the default path. A missing file yields the
// defaults.
func Load() (*Config, error) {
	return LoadFile(ConfigPath())
}

// LoadFile reads path over the defaults and validates the result.
func LoadFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// EnsureFile writes c to path if no file exists there yet, so a first run
// leaves an editable config behind and Watch has a directory to watch.
func (c *Config) EnsureFile(path string) error {
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return c.SaveFile(path)
}

func (c *Config) Save() error {
	return c.SaveFile(ConfigPath())
}

func (c *Config) SaveFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(c)
}

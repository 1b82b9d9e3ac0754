package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/idilsaglam/swipequiz/internal/motion"
	"github.com/idilsaglam/swipequiz/internal/ui"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds application configuration loaded from an optional file,
// SWIPEQUIZ_* environment variables and command-line flags.
type Config struct {
	Env        string     `mapstructure:"env"`   // local, dev, production
	Deck       string     `mapstructure:"deck"`  // optional deck file; empty uses the sample deck
	Theme      string     `mapstructure:"theme"` // classic, neon, mono
	Color      string     `mapstructure:"color"` // auto, always, never
	Log        Log        `mapstructure:"log"`
	Gesture    Gesture    `mapstructure:"gesture"`
	Navigation Navigation `mapstructure:"navigation"`
	Animation  Animation  `mapstructure:"animation"`
}

// Log configures the file logger. The TUI owns the terminal, so an empty
// file disables logging.
type Log struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

type Gesture struct {
	ActivationOffset float64 `mapstructure:"activation_offset"` // cells before a drag starts
}

type Navigation struct {
	DistanceFraction  float64 `mapstructure:"distance_fraction"`  // of the viewport width
	VelocityThreshold float64 `mapstructure:"velocity_threshold"` // cells per second
}

// Animation holds the base spring shared by every transition. Commit and
// Return only carry the fields they change.
type Animation struct {
	FPS    int            `mapstructure:"fps"`
	Spring Spring         `mapstructure:"spring"`
	Commit SpringOverride `mapstructure:"commit"`
	Return SpringOverride `mapstructure:"return"`
}

// CommitSpring is the base spring with the commit overrides applied.
func (a Animation) CommitSpring() motion.Spring { return a.Commit.Apply(a.Spring).Motion() }

// ReturnSpring is the base spring with the return overrides applied.
func (a Animation) ReturnSpring() motion.Spring { return a.Return.Apply(a.Spring).Motion() }

type Spring struct {
	Damping                   float64 `mapstructure:"damping"`
	Mass                      float64 `mapstructure:"mass"`
	Stiffness                 float64 `mapstructure:"stiffness"`
	OvershootClamping         bool    `mapstructure:"overshoot_clamping"`
	RestSpeedThreshold        float64 `mapstructure:"rest_speed_threshold"`
	RestDisplacementThreshold float64 `mapstructure:"rest_displacement_threshold"`
}

// Motion converts the config section into a spring.
func (s Spring) Motion() motion.Spring {
	return motion.Spring(s)
}

// SpringOverride replaces the fields that are set; nil keeps the base value.
type SpringOverride struct {
	Damping                   *float64 `mapstructure:"damping"`
	Mass                      *float64 `mapstructure:"mass"`
	Stiffness                 *float64 `mapstructure:"stiffness"`
	OvershootClamping         *bool    `mapstructure:"overshoot_clamping"`
	RestSpeedThreshold        *float64 `mapstructure:"rest_speed_threshold"`
	RestDisplacementThreshold *float64 `mapstructure:"rest_displacement_threshold"`
}

func (o SpringOverride) Apply(base Spring) Spring {
	set := func(dst *float64, v *float64) {
		if v != nil {
			*dst = *v
		}
	}
	set(&base.Damping, o.Damping)
	set(&base.Mass, o.Mass)
	set(&base.Stiffness, o.Stiffness)
	set(&base.RestSpeedThreshold, o.RestSpeedThreshold)
	set(&base.RestDisplacementThreshold, o.RestDisplacementThreshold)
	if o.OvershootClamping != nil {
		base.OvershootClamping = *o.OvershootClamping
	}
	return base
}

// flagKeys maps config keys onto the CLI flags that override them.
var flagKeys = map[string]string{
	"deck":     "deck",
	"theme":    "theme",
	"color":    "color",
	"log.file": "log-file",
}

// Load reads configuration. file may be empty, in which case swipequiz.yaml
// is looked up in ./config and $HOME/.config/swipequiz and is optional.
// flags may be nil.
func Load(file string, flags *pflag.FlagSet) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("SWIPEQUIZ")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	} else {
		v.SetConfigName("swipequiz")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath("$HOME/.config/swipequiz")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("error loading config file: %w", err)
			}
		}
	}

	if flags != nil {
		for key, name := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the configuration used when nothing overrides it.
func Default() Config {
	commit, ret := motion.CommitSpring(), motion.ReturnSpring()
	return Config{
		Env:   "local",
		Theme: "classic",
		Color: "auto",
		Log:   Log{Level: "info"},
		Gesture: Gesture{
			ActivationOffset: 1,
		},
		Navigation: Navigation{
			DistanceFraction:  0.15,
			VelocityThreshold: 120,
		},
		Animation: Animation{
			FPS:    60,
			Spring: Spring(motion.DefaultSpring()),
			Commit: SpringOverride{Damping: &commit.Damping, Stiffness: &commit.Stiffness},
			Return: SpringOverride{Stiffness: &ret.Stiffness},
		},
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("env", d.Env)
	v.SetDefault("deck", d.Deck)
	v.SetDefault("theme", d.Theme)
	v.SetDefault("color", d.Color)
	v.SetDefault("log.file", d.Log.File)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("gesture.activation_offset", d.Gesture.ActivationOffset)
	v.SetDefault("navigation.distance_fraction", d.Navigation.DistanceFraction)
	v.SetDefault("navigation.velocity_threshold", d.Navigation.VelocityThreshold)
	v.SetDefault("animation.fps", d.Animation.FPS)
	springDefaults(v, "animation.spring", d.Animation.Spring)
	overrideDefaults(v, "animation.commit", d.Animation.Commit)
	overrideDefaults(v, "animation.return", d.Animation.Return)
}

func springDefaults(v *viper.Viper, prefix string, s Spring) {
	v.SetDefault(prefix+".damping", s.Damping)
	v.SetDefault(prefix+".mass", s.Mass)
	v.SetDefault(prefix+".stiffness", s.Stiffness)
	v.SetDefault(prefix+".overshoot_clamping", s.OvershootClamping)
	v.SetDefault(prefix+".rest_speed_threshold", s.RestSpeedThreshold)
	v.SetDefault(prefix+".rest_displacement_threshold", s.RestDisplacementThreshold)
}

// overrideDefaults registers only the fields an override sets, so unset
// fields stay nil and fall through to animation.spring.
func overrideDefaults(v *viper.Viper, prefix string, o SpringOverride) {
	for key, val := range map[string]*float64{
		"damping":                     o.Damping,
		"mass":                        o.Mass,
		"stiffness":                   o.Stiffness,
		"rest_speed_threshold":        o.RestSpeedThreshold,
		"rest_displacement_threshold": o.RestDisplacementThreshold,
	} {
		if val != nil {
			v.SetDefault(prefix+"."+key, *val)
		}
	}
	if o.OvershootClamping != nil {
		v.SetDefault(prefix+".overshoot_clamping", *o.OvershootClamping)
	}
}

// Validate normalizes case and rejects values the app cannot run with.
func (c *Config) Validate() error {
	c.Env = strings.ToLower(strings.TrimSpace(c.Env))
	c.Theme = strings.ToLower(strings.TrimSpace(c.Theme))

	if c.Env == "" {
		c.Env = "local"
	}
	known := false
	for _, t := range ui.Themes {
		if c.Theme == t {
			known = true
		}
	}
	if !known {
		return fmt.Errorf("%w: theme %q", ErrInvalidConfig, c.Theme)
	}
	c.Color = strings.ToLower(strings.TrimSpace(c.Color))
	switch c.Color {
	case "":
		c.Color = "auto"
	case "auto", "always", "never":
	default:
		return fmt.Errorf("%w: color %q (want auto, always or never)", ErrInvalidConfig, c.Color)
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log level %q", ErrInvalidConfig, c.Log.Level)
	}
	if c.Gesture.ActivationOffset < 0 {
		return fmt.Errorf("%w: gesture.activation_offset must be >= 0", ErrInvalidConfig)
	}
	if c.Navigation.DistanceFraction <= 0 || c.Navigation.DistanceFraction > 1 {
		return fmt.Errorf("%w: navigation.distance_fraction must be in (0, 1]", ErrInvalidConfig)
	}
	if c.Navigation.VelocityThreshold <= 0 {
		return fmt.Errorf("%w: navigation.velocity_threshold must be > 0", ErrInvalidConfig)
	}
	if c.Animation.FPS < 1 || c.Animation.FPS > 240 {
		return fmt.Errorf("%w: animation.fps must be in [1, 240]", ErrInvalidConfig)
	}
	for name, s := range map[string]Spring{
		"spring": c.Animation.Spring,
		"commit": c.Animation.Commit.Apply(c.Animation.Spring),
		"return": c.Animation.Return.Apply(c.Animation.Spring),
	} {
		if s.Mass <= 0 || s.Stiffness <= 0 || s.Damping < 0 {
			return fmt.Errorf("%w: animation.%s needs mass > 0, stiffness > 0, damping >= 0", ErrInvalidConfig, name)
		}
		if s.RestSpeedThreshold <= 0 || s.RestDisplacementThreshold <= 0 {
			return fmt.Errorf("%w: animation.%s rest thresholds must be > 0", ErrInvalidConfig, name)
		}
	}
	return nil
}

package main

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"honnef.co/go/casteljau"
	"honnef.co/go/casteljau/render"
)

// Config is the host's configuration, read from a YAML file. Zero values mean
// "use the default".
type Config struct {
	Listen   string  `yaml:"listen"`
	Order    int     `yaml:"order"`
	T        float64 `yaml:"t"`
	Scale    float64 `yaml:"scale"`
	LogLevel string  `yaml:"log_level"`
	// HitSlop is added to the control marker radius when deciding which
	// point a pointer-down hits, in logical units.
	HitSlop float64     `yaml:"hit_slop"`
	Style   StyleConfig `yaml:"style"`
}

// StyleConfig overrides parts of [render.DefaultStyle].
type StyleConfig struct {
	Background   string `yaml:"background"`
	Curve        string `yaml:"curve"`
	Construction string `yaml:"construction"`
	Control      string `yaml:"control"`
	Active       string `yaml:"active"`
	Outline      string `yaml:"outline"`
	Derived      string `yaml:"derived"`
	Result       string `yaml:"result"`
	Label        string `yaml:"label"`

	CurveWidth        float64 `yaml:"curve_width"`
	ConstructionWidth float64 `yaml:"construction_width"`
	ControlRadius     float64 `yaml:"control_radius"`
	DerivedRadius     float64 `yaml:"derived_radius"`
	ResultRadius      float64 `yaml:"result_radius"`
	HideLabel         bool    `yaml:"hide_label"`
}

func defaultConfig() Config {
	return Config{
		Listen:   "127.0.0.1:8080",
		Order:    casteljau.DefaultOrder,
		T:        casteljau.DefaultT,
		Scale:    1.5,
		LogLevel: "info",
		HitSlop:  4,
	}
}

// LoadConfig reads the configuration at path on top of the defaults. An empty
// path or a missing file yields the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	} else if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	cfg.normalize()
	return cfg, nil
}

func (cfg *Config) normalize() {
	def := defaultConfig()
	cfg.Order = casteljau.ClampOrder(cfg.Order)
	if t, ok := casteljau.ClampT(cfg.T); ok {
		cfg.T = t
	} else {
		cfg.T = def.T
	}
	if !(cfg.Scale > 0) {
		cfg.Scale = def.Scale
	}
	if cfg.Listen == "" {
		cfg.Listen = def.Listen
	}
	if cfg.HitSlop < 0 {
		cfg.HitSlop = 0
	}
}

// Level returns the configured log level.
func (cfg Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if cfg.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	if err := lvl.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	return lvl, nil
}

// RenderStyle applies the overrides to the default style.
func (sc StyleConfig) RenderStyle() (render.Style, error) {
	st := render.DefaultStyle()
	for _, c := range []struct {
		name string
		in   string
		dst  *color.NRGBA
	}{
		{"background", sc.Background, &st.Background},
		{"curve", sc.Curve, &st.Curve},
		{"construction", sc.Construction, &st.Construction},
		{"control", sc.Control, &st.Control},
		{"active", sc.Active, &st.Active},
		{"outline", sc.Outline, &st.Outline},
		{"derived", sc.Derived, &st.Derived},
		{"result", sc.Result, &st.Result},
		{"label", sc.Label, &st.Label},
	} {
		if c.in == "" {
			continue
		}
		v, err := render.ParseColor(c.in)
		if err != nil {
			return render.Style{}, fmt.Errorf("style.%s: %w", c.name, err)
		}
		*c.dst = v
	}
	for _, f := range []struct {
		in  float64
		dst *float64
	}{
		{sc.CurveWidth, &st.CurveWidth},
		{sc.ConstructionWidth, &st.ConstructionWidth},
		{sc.ControlRadius, &st.ControlRadius},
		{sc.DerivedRadius, &st.DerivedRadius},
		{sc.ResultRadius, &st.ResultRadius},
	} {
		if f.in > 0 {
			*f.dst = f.in
		}
	}
	st.HideLabel = sc.HideLabel
	return st, nil
}

// SPDX-License-Identifier: MIT
// Package: lvspread/sketch
//
// config.go — canvas geometry and pacing for the spread sketch.
//
// Defaults mirror the desktop sketch:
//   • 1024×768 canvas, ring radius = 0.8 · min(width/2, height/2)
//   • 10px marker, 64 segments per drawn circle
//   • 60 updates per second
//   • 20px status strip at the bottom, fade alpha 10/255
//
// A YAML file may override any subset of fields; unknown keys are
// rejected so typos surface as errors.

package sketch

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config describes the canvas a sketch is drawn on.
type Config struct {
	Width            int     `yaml:"width"`              // canvas width in pixels (>0)
	Height           int     `yaml:"height"`             // canvas height in pixels (>0)
	RadiusRatio      float64 `yaml:"radius_ratio"`       // ring radius as a share of the half-extent, (0,1]
	MarkerRadius     float64 `yaml:"marker_radius"`      // radius of the current-position marker (>0)
	Segments         int     `yaml:"segments"`           // line segments per drawn circle (>=3)
	UpdatesPerSecond int     `yaml:"updates_per_second"` // ticks per second (>=1)
	Trail            int     `yaml:"trail"`              // earlier positions kept visible (>=0)
	FadeAlpha        uint8   `yaml:"fade_alpha"`         // per-frame fade opacity, 0..255
	StatusHeight     int     `yaml:"status_height"`      // status strip height in pixels (>=0)
}

// Deterministic defaults.
const (
	defaultWidth            = 1024
	defaultHeight           = 768
	defaultRadiusRatio      = 0.8
	defaultMarkerRadius     = 10.0
	defaultSegments         = 64
	defaultUpdatesPerSecond = 60
	defaultTrail            = 32
	defaultFadeAlpha        = 10
	defaultStatusHeight     = 20

	minSegments = 3
)

// DefaultConfig returns the configuration of the desktop sketch.
func DefaultConfig() Config {
	return Config{
		Width:            defaultWidth,
		Height:           defaultHeight,
		RadiusRatio:      defaultRadiusRatio,
		MarkerRadius:     defaultMarkerRadius,
		Segments:         defaultSegments,
		UpdatesPerSecond: defaultUpdatesPerSecond,
		Trail:            defaultTrail,
		FadeAlpha:        defaultFadeAlpha,
		StatusHeight:     defaultStatusHeight,
	}
}

// Validate reports the first field outside its range, wrapped in ErrBadConfig.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("canvas %dx%d must be positive: %w", c.Width, c.Height, ErrBadConfig)
	case !(c.RadiusRatio > 0 && c.RadiusRatio <= 1):
		return fmt.Errorf("radius_ratio %g outside (0,1]: %w", c.RadiusRatio, ErrBadConfig)
	case !(c.MarkerRadius > 0):
		return fmt.Errorf("marker_radius %g must be positive: %w", c.MarkerRadius, ErrBadConfig)
	case c.Segments < minSegments:
		return fmt.Errorf("segments %d below %d: %w", c.Segments, minSegments, ErrBadConfig)
	case c.UpdatesPerSecond < 1:
		return fmt.Errorf("updates_per_second %d below 1: %w", c.UpdatesPerSecond, ErrBadConfig)
	case c.Trail < 0:
		return fmt.Errorf("trail %d is negative: %w", c.Trail, ErrBadConfig)
	case c.StatusHeight < 0 || c.StatusHeight >= c.Height:
		return fmt.Errorf("status_height %d outside [0,%d): %w", c.StatusHeight, c.Height, ErrBadConfig)
	}

	return nil
}

// Center returns the ring centre, using integer halves like the sketch.
func (c Config) Center() (x, y float64) {
	return float64(c.Width / 2), float64(c.Height / 2)
}

// Radius returns the ring radius.
func (c Config) Radius() float64 {
	return math.Min(float64(c.Width/2), float64(c.Height/2)) * c.RadiusRatio
}

// Interval is the time between two ticks.
func (c Config) Interval() time.Duration {
	return time.Second / time.Duration(c.UpdatesPerSecond)
}

// LoadConfig decodes YAML from r on top of DefaultConfig and validates
// the result. An empty document yields the defaults.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("sketch: decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// LoadConfigFile reads a YAML config from path.
func LoadConfigFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("sketch: read config %q: %w", path, err)
	}

	return LoadConfig(bytes.NewReader(data))
}

// YAML encodes c in the same layout LoadConfig accepts.
func (c Config) YAML() ([]byte, error) {
	return yaml.Marshal(c)
}

// Package content loads the hero banner document that configures the rotator and the ambient gradient
package content

import (
	_ "embed"
	"math"
	"os"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/daml/herofx/ambient"
	"github.com/daml/herofx/constants"
	"github.com/daml/herofx/rotator"
)

//go:embed hero.yaml
var defaultHero []byte

// Hero is the hero banner document
type Hero struct {
	Title   []string       `yaml:"title"`
	Tagline string         `yaml:"tagline"`
	Rotator RotatorSection `yaml:"rotator"`
	Ambient AmbientSection `yaml:"ambient"`
	Join    JoinSection    `yaml:"join"`
}

// RotatorSection configures the rotating subtitle, omitted timings take defaults
type RotatorSection struct {
	Items        []string `yaml:"items"`
	DelayMs      *int     `yaml:"delay_ms"`
	TransitionMs *int     `yaml:"transition_ms"`
}

// AmbientSection configures the gradient background
type AmbientSection struct {
	Points       *int     `yaml:"points"`
	Easing       *float64 `yaml:"easing"`
	LeaveOpacity *float64 `yaml:"leave_opacity"`
	Colors       []string `yaml:"colors"`
	Base         []string `yaml:"base"`
}

// JoinSection is the call to action and the section it scrolls to
type JoinSection struct {
	Label   string   `yaml:"label"`
	Heading string   `yaml:"heading"`
	Lines   []string `yaml:"lines"`
}

// Default returns the embedded hero document
func Default() (*Hero, error) {
	hero, err := Parse(defaultHero)
	if err != nil {
		return nil, errors.Wrap(err, "embedded hero content")
	}
	return hero, nil
}

// Load reads, parses and validates the hero document at path
func Load(path string) (*Hero, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read content %s", path)
	}
	hero, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "content %s", path)
	}
	return hero, nil
}

// Parse decodes and validates a hero document
func Parse(data []byte) (*Hero, error) {
	var hero Hero
	if err := yaml.Unmarshal(data, &hero); err != nil {
		return nil, errors.Wrap(err, "parse hero yaml")
	}
	if err := hero.Validate(); err != nil {
		return nil, err
	}
	return &hero, nil
}

// Validate checks the component configs, colour strings and display text without mounting anything
// Rotator items are sanitized, every other text field must be free of control characters
func (h *Hero) Validate() error {
	if err := h.validateText(); err != nil {
		return err
	}
	if err := h.RotatorConfig().Validate(); err != nil {
		return err
	}
	if err := h.AmbientConfig().Validate(); err != nil {
		return err
	}
	if _, err := h.Colors(); err != nil {
		return err
	}
	if _, err := h.BaseColors(); err != nil {
		return err
	}
	return nil
}

func (h *Hero) validateText() error {
	fields := []struct {
		name  string
		lines []string
	}{
		{"title", h.Title},
		{"tagline", []string{h.Tagline}},
		{"join.label", []string{h.Join.Label}},
		{"join.heading", []string{h.Join.Heading}},
		{"join.lines", h.Join.Lines},
	}
	for _, f := range fields {
		for _, line := range f.lines {
			if HasControl(line) {
				return errors.Errorf("content %s: control characters in %q", f.name, line)
			}
		}
	}
	return nil
}

// millis converts a millisecond count, saturating instead of wrapping so oversized values fail validation
func millis(ms int) time.Duration {
	const limit = math.MaxInt64 / int64(time.Millisecond)
	switch {
	case int64(ms) > limit:
		return time.Duration(math.MaxInt64)
	case int64(ms) < -limit:
		return time.Duration(math.MinInt64)
	}
	return time.Duration(ms) * time.Millisecond
}

// RotatorConfig converts the rotator section, a missing item list stays nil
func (h *Hero) RotatorConfig() rotator.Config {
	var items []string
	if h.Rotator.Items != nil {
		items = make([]string, 0, len(h.Rotator.Items))
		for _, item := range h.Rotator.Items {
			items = append(items, SanitizeLine(item))
		}
	}

	cfg := rotator.NewConfig(items)
	if h.Rotator.DelayMs != nil {
		cfg.Delay = millis(*h.Rotator.DelayMs)
	}
	if h.Rotator.TransitionMs != nil {
		cfg.Transition = millis(*h.Rotator.TransitionMs)
	}
	return cfg
}

// AmbientConfig converts the ambient section
func (h *Hero) AmbientConfig() ambient.Config {
	count := constants.DefaultFocalPoints
	if h.Ambient.Points != nil {
		count = *h.Ambient.Points
	}
	cfg := ambient.NewConfig(count)
	if h.Ambient.Easing != nil {
		cfg.Easing = *h.Ambient.Easing
	}
	if h.Ambient.LeaveOpacity != nil {
		cfg.LeaveOpacity = *h.Ambient.LeaveOpacity
	}
	return cfg
}

// Colors returns the focal layer palette, cycled when there are more points than colours
func (h *Hero) Colors() ([]colorful.Color, error) {
	return parsePalette("ambient.colors", h.Ambient.Colors, DefaultColors)
}

// BaseColors returns the stops of the background linear gradient
func (h *Hero) BaseColors() ([]colorful.Color, error) {
	return parsePalette("ambient.base", h.Ambient.Base, DefaultBase)
}

// Default palettes used when the document omits them
var (
	DefaultColors = []string{"#ff7f6e", "#ff6f61", "#ff9478", "#3d5a80"}
	DefaultBase   = []string{"#1e3a5f", "#2a4d7c", "#ff6f61"}
)

func parsePalette(field string, hexes, fallback []string) ([]colorful.Color, error) {
	if len(hexes) == 0 {
		hexes = fallback
	}
	out := make([]colorful.Color, 0, len(hexes))
	for _, hex := range hexes {
		c, err := colorful.Hex(hex)
		if err != nil {
			return nil, errors.Wrapf(err, "%s: colour %q", field, hex)
		}
		out = append(out, c)
	}
	return out, nil
}

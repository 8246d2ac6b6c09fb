package celest

import (
	"fmt"
	"math"
	"os"
	"time"

	"github.com/tanema/gween/ease"
	"gopkg.in/yaml.v3"
)

// RevolutionStep is the yaw advanced by one rotation step: a third of a turn,
// one slot per planet.
const RevolutionStep = 2 * math.Pi / 3

// SlotCount is the number of planets, captions and destinations.
const SlotCount = 3

// Config holds the timing and motion constants of the sequencer.
//
// Configuration file location: data/celest.yaml
type Config struct {
	// Debounce is the quiet period that collapses a burst of wheel events
	// into a single step.
	Debounce time.Duration `yaml:"debounce"`

	// RotationDuration drives the planet group, the starfield, the caption
	// shift and the caption reset.
	RotationDuration time.Duration `yaml:"rotationDuration"`
	// CaptionFadeDuration is the subtitle fade-in.
	CaptionFadeDuration time.Duration `yaml:"captionFadeDuration"`

	ShipBobDuration  time.Duration `yaml:"shipBobDuration"`
	ShipRestDuration time.Duration `yaml:"shipRestDuration"`
	// ShipBobRange bounds the random bob offset to [-ShipBobRange, ShipBobRange].
	ShipBobRange   float64   `yaml:"shipBobRange"`
	ShipRestHeight float64   `yaml:"shipRestHeight"`
	ShipRestPitch  float64   `yaml:"shipRestPitch"`
	ShipTilts      []float64 `yaml:"shipTilts"`

	ShrinkDuration  time.Duration `yaml:"shrinkDuration"`
	DescentDuration time.Duration `yaml:"descentDuration"`
	DescentHeight   float64       `yaml:"descentHeight"`
	// SettleDelay separates the end of the shrink from the route change.
	SettleDelay time.Duration `yaml:"settleDelay"`

	// NavigationEnabled gates the route change after a planet selection.
	// When false the selection animation plays and the lock is released
	// afterwards instead of navigating.
	NavigationEnabled bool          `yaml:"navigationEnabled"`
	Routes            []Destination `yaml:"routes"`

	// Easing names; see Easing.
	RotationEase     string `yaml:"rotationEase"`
	CaptionFadeEase  string `yaml:"captionFadeEase"`
	CaptionResetEase string `yaml:"captionResetEase"`
	ShipEase         string `yaml:"shipEase"`
	ShrinkEase       string `yaml:"shrinkEase"`
}

// DefaultConfig returns the stock timings of the landing scene.
func DefaultConfig() Config {
	return Config{
		Debounce:            50 * time.Millisecond,
		RotationDuration:    1580 * time.Millisecond,
		CaptionFadeDuration: 2100 * time.Millisecond,
		ShipBobDuration:     1200 * time.Millisecond,
		ShipRestDuration:    800 * time.Millisecond,
		ShipBobRange:        0.1,
		ShipRestHeight:      0.1,
		ShipRestPitch:       math.Pi / 4,
		ShipTilts:           []float64{math.Pi / 3, math.Pi / 4, math.Pi / 2},
		ShrinkDuration:      time.Second,
		DescentDuration:     1500 * time.Millisecond,
		DescentHeight:       -0.1,
		SettleDelay:         250 * time.Millisecond,
		NavigationEnabled:   true,
		Routes:              DefaultRoutes(),
		RotationEase:        "linear",
		CaptionFadeEase:     "expo.in",
		CaptionResetEase:    "power2.inOut",
		ShipEase:            "power1.inOut",
		ShrinkEase:          "power1.out",
	}
}

// LoadConfig reads a YAML configuration file. Keys missing from the file keep
// their DefaultConfig values.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read celest config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes YAML configuration over DefaultConfig and validates it.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse celest config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid celest config: %w", err)
	}
	return cfg, nil
}

// Validate checks that durations are positive, the route table has one entry
// per slot and every easing name resolves.
func (c *Config) Validate() error {
	durations := []struct {
		name string
		d    time.Duration
	}{
		{"debounce", c.Debounce},
		{"rotationDuration", c.RotationDuration},
		{"captionFadeDuration", c.CaptionFadeDuration},
		{"shipBobDuration", c.ShipBobDuration},
		{"shipRestDuration", c.ShipRestDuration},
		{"shrinkDuration", c.ShrinkDuration},
		{"descentDuration", c.DescentDuration},
	}
	for _, d := range durations {
		if d.d <= 0 {
			return fmt.Errorf("%s must be positive, got %v", d.name, d.d)
		}
	}
	if c.SettleDelay < 0 {
		return fmt.Errorf("settleDelay must not be negative, got %v", c.SettleDelay)
	}
	if c.ShipBobRange < 0 {
		return fmt.Errorf("shipBobRange must not be negative, got %.3f", c.ShipBobRange)
	}
	if len(c.ShipTilts) == 0 {
		return fmt.Errorf("shipTilts must not be empty")
	}
	if len(c.Routes) != SlotCount {
		return fmt.Errorf("routes: want %d destinations, got %d", SlotCount, len(c.Routes))
	}
	for i, r := range c.Routes {
		if r.Path == "" {
			return fmt.Errorf("routes[%d]: empty path", i)
		}
	}
	for _, name := range []string{c.RotationEase, c.CaptionFadeEase, c.CaptionResetEase, c.ShipEase, c.ShrinkEase} {
		if _, err := Easing(name); err != nil {
			return err
		}
	}
	return nil
}

// easings is the resolved form of the Config easing names.
type easings struct {
	rotation, captionFade, captionReset, ship, shrink ease.TweenFunc
}

// resolveEasings assumes Validate has passed; unknown names fall back to
// linear.
func (c *Config) resolveEasings() easings {
	get := func(name string) ease.TweenFunc {
		fn, err := Easing(name)
		if err != nil {
			return ease.Linear
		}
		return fn
	}
	return easings{
		rotation:     get(c.RotationEase),
		captionFade:  get(c.CaptionFadeEase),
		captionReset: get(c.CaptionResetEase),
		ship:         get(c.ShipEase),
		shrink:       get(c.ShrinkEase),
	}
}

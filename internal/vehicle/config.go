// Package vehicle defines the user-facing vehicle configuration and the
// heights and diameters derived from it.
package vehicle

import (
	"errors"
	"fmt"
	"math"

	"github.com/Faultbox/stance/internal/catalog"
	"github.com/Faultbox/stance/internal/engine/material"
	"github.com/Faultbox/stance/internal/engine/scene"
	"github.com/Faultbox/stance/pkg/units"
)

// Configuration errors.
var (
	ErrInvalidConfig   = errors.New("invalid vehicle configuration")
	ErrUnknownRimColor = errors.New("unknown rim color")
	ErrUnknownField    = errors.New("unknown configuration field")
)

// Config is one complete vehicle setup. It is a value: patching returns a
// new Config and never mutates the receiver.
type Config struct {
	ID          string  `yaml:"id"`
	Lift        float64 `yaml:"lift"` // inches, may be negative
	Color       string  `yaml:"color"`
	Roughness   float64 `yaml:"roughness"`
	WheelOffset float64 `yaml:"wheel_offset"` // meters, added to the catalog offset

	Rim               string            `yaml:"rim"`
	RimColor          material.RimColor `yaml:"rim_color"`
	RimColorSecondary material.RimColor `yaml:"rim_color_secondary"`
	RimDiameter       float64           `yaml:"rim_diameter"`    // inches
	RimFrontWidth     float64           `yaml:"rim_front_width"` // mm
	RimRearWidth      float64           `yaml:"rim_rear_width"`  // mm

	Tire            string  `yaml:"tire"`
	TireDiameter    float64 `yaml:"tire_diameter"`     // inches, 0 derives it from the aspect ratio
	TireAspectRatio float64 `yaml:"tire_aspect_ratio"` // percent of the front width

	Spare bool `yaml:"spare"`
}

// TireDiameterInches returns the overall tire diameter. An explicit
// tire_diameter wins; otherwise it is derived from the rim diameter, the
// front tread width and the aspect ratio.
func (c Config) TireDiameterInches() float64 {
	if c.TireDiameter > 0 {
		return c.TireDiameter
	}
	sidewall := c.RimFrontWidth * c.TireAspectRatio / 100
	return c.RimDiameter + 2*units.MMToInch(sidewall)
}

// AxleHeight returns the wheel center height above ground (meters).
func (c Config) AxleHeight() float64 {
	return units.InchToMeter(c.TireDiameterInches()) / 2
}

// LiftHeight returns the suspension lift (meters).
func (c Config) LiftHeight() float64 {
	return units.InchToMeter(c.Lift)
}

// BodyHeight returns the settled ride height of the body (meters).
func (c Config) BodyHeight() float64 {
	return c.AxleHeight() + c.LiftHeight()
}

// BodyColor parses the paint color into linear RGB.
func (c Config) BodyColor() (scene.Color, error) {
	return material.ParseColor(c.Color)
}

// Style returns the styling inputs for this configuration.
func (c Config) Style() (material.Style, error) {
	body, err := c.BodyColor()
	if err != nil {
		return material.Style{}, err
	}
	return material.Style{
		Body:         body,
		Roughness:    c.Roughness,
		Rim:          c.RimColor,
		RimSecondary: c.RimColorSecondary,
	}, nil
}

// Validate checks c against cat. Catalog lookup failures are returned
// wrapped so errors.Is matches catalog.ErrUnknownVehicle and friends.
func (c Config) Validate(cat *catalog.Catalog) error {
	if _, err := cat.Vehicle(c.ID); err != nil {
		return fmt.Errorf("vehicle config: %w", err)
	}
	if _, err := cat.Rim(c.Rim); err != nil {
		return fmt.Errorf("vehicle config: %w", err)
	}
	if _, err := cat.Tire(c.Tire); err != nil {
		return fmt.Errorf("vehicle config: %w", err)
	}

	for _, rc := range []material.RimColor{c.RimColor, c.RimColorSecondary} {
		if rc != "" && !rc.Valid() {
			return fmt.Errorf("%w: %q", ErrUnknownRimColor, rc)
		}
	}

	// Comparisons are written so that NaN fails them.
	switch {
	case !positive(c.RimDiameter):
		return fmt.Errorf("%w: rim_diameter %v", ErrInvalidConfig, c.RimDiameter)
	case !positive(c.RimFrontWidth) || !positive(c.RimRearWidth):
		return fmt.Errorf("%w: rim widths %v/%v", ErrInvalidConfig, c.RimFrontWidth, c.RimRearWidth)
	case !(c.TireDiameter >= 0) || math.IsInf(c.TireDiameter, 0):
		return fmt.Errorf("%w: tire_diameter %v", ErrInvalidConfig, c.TireDiameter)
	case !finite(c.TireAspectRatio) || c.TireDiameter == 0 && !(c.TireAspectRatio > 0):
		return fmt.Errorf("%w: tire_aspect_ratio %v", ErrInvalidConfig, c.TireAspectRatio)
	case !(c.TireDiameterInches() > c.RimDiameter):
		return fmt.Errorf("%w: tire diameter %v not larger than rim %v", ErrInvalidConfig, c.TireDiameterInches(), c.RimDiameter)
	case !(c.Roughness >= 0 && c.Roughness <= 1):
		return fmt.Errorf("%w: roughness %v", ErrInvalidConfig, c.Roughness)
	case !finite(c.Lift):
		return fmt.Errorf("%w: lift %v", ErrInvalidConfig, c.Lift)
	case !finite(c.WheelOffset):
		return fmt.Errorf("%w: wheel_offset %v", ErrInvalidConfig, c.WheelOffset)
	}

	if _, err := c.BodyColor(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

func positive(x float64) bool {
	return x > 0 && !math.IsInf(x, 1)
}

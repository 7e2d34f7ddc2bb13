// Package catalog holds the read-only reference data for vehicle bodies,
// rims and tires.
package catalog

import (
	"errors"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// Catalog errors.
var (
	ErrUnknownVehicle = errors.New("unknown vehicle")
	ErrUnknownRim     = errors.New("unknown rim")
	ErrUnknownTire    = errors.New("unknown tire")
	ErrDegenerateTire = errors.New("tire radial span is not positive")
	ErrInvalidEntry   = errors.New("invalid catalog entry")
)

// VehicleEntry describes a vehicle body.
type VehicleEntry struct {
	Name        string    `yaml:"name"`
	Make        string    `yaml:"make"`
	Model       string    `yaml:"model"`        // Body model reference
	WheelOffset float64   `yaml:"wheel_offset"` // Lateral wheel offset (meters)
	Wheelbase   float64   `yaml:"wheelbase"`    // Front to rear axle (meters)
	Spare       []float64 `yaml:"spare,omitempty"`
}

// SparePosition returns the spare tire mount, if the body has one.
func (v VehicleEntry) SparePosition() ([3]float64, bool) {
	if len(v.Spare) != 3 {
		return [3]float64{}, false
	}
	return [3]float64{v.Spare[0], v.Spare[1], v.Spare[2]}, true
}

// WheelEntry describes a rim or a tire model.
// ID is the bead seat diameter and is only meaningful for tires.
type WheelEntry struct {
	Make  string  `yaml:"make"`
	Name  string  `yaml:"name"`
	Model string  `yaml:"model"`
	Width float64 `yaml:"width"`
	OD    float64 `yaml:"od"`
	ID    float64 `yaml:"id,omitempty"`
}

// OuterRadius returns half the reference outer diameter.
func (w WheelEntry) OuterRadius() float64 {
	return w.OD / 2
}

// InnerRadius returns half the reference bead seat diameter, 0 if unset.
func (w WheelEntry) InnerRadius() float64 {
	return w.ID / 2
}

// RadialSpan returns the tread-to-bead distance of the reference model.
func (w WheelEntry) RadialSpan() float64 {
	return w.OuterRadius() - w.InnerRadius()
}

// Catalog is the full reference table. It is not mutated after loading and
// is safe to share.
type Catalog struct {
	// Defaults is the default vehicle configuration, decoded by the vehicle package.
	Defaults yaml.Node               `yaml:"defaults"`
	Vehicles map[string]VehicleEntry `yaml:"vehicles"`
	Rims     map[string]WheelEntry   `yaml:"rims"`
	Tires    map[string]WheelEntry   `yaml:"tires"`
}

// Vehicle looks up a vehicle body by identifier.
func (c *Catalog) Vehicle(id string) (VehicleEntry, error) {
	v, ok := c.Vehicles[id]
	if !ok {
		return VehicleEntry{}, fmt.Errorf("%w: %q", ErrUnknownVehicle, id)
	}
	return v, nil
}

// Rim looks up a rim by identifier.
func (c *Catalog) Rim(id string) (WheelEntry, error) {
	r, ok := c.Rims[id]
	if !ok {
		return WheelEntry{}, fmt.Errorf("%w: %q", ErrUnknownRim, id)
	}
	return r, nil
}

// Tire looks up a tire by identifier.
func (c *Catalog) Tire(id string) (WheelEntry, error) {
	t, ok := c.Tires[id]
	if !ok {
		return WheelEntry{}, fmt.Errorf("%w: %q", ErrUnknownTire, id)
	}
	return t, nil
}

// VehiclesByMake groups vehicle identifiers by manufacturer.
func (c *Catalog) VehiclesByMake() map[string][]string {
	return groupByMake(c.Vehicles, func(v VehicleEntry) string { return v.Make })
}

// RimsByMake groups rim identifiers by manufacturer.
func (c *Catalog) RimsByMake() map[string][]string {
	return groupByMake(c.Rims, func(w WheelEntry) string { return w.Make })
}

// TiresByMake groups tire identifiers by manufacturer.
func (c *Catalog) TiresByMake() map[string][]string {
	return groupByMake(c.Tires, func(w WheelEntry) string { return w.Make })
}

func groupByMake[E any](entries map[string]E, makeOf func(E) string) map[string][]string {
	groups := make(map[string][]string)
	for id, e := range entries {
		m := makeOf(e)
		groups[m] = append(groups[m], id)
	}
	for _, ids := range groups {
		sort.Strings(ids)
	}
	return groups
}

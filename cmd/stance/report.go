package main

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/stance/internal/engine/material"
	"github.com/Faultbox/stance/internal/rig"
	"github.com/Faultbox/stance/internal/vehicle"
	"github.com/Faultbox/stance/pkg/units"
)

type report struct {
	Vehicle      string          `yaml:"vehicle"`
	Config       vehicle.Config  `yaml:"config"`
	BodyColor    string          `yaml:"body_color"`
	TireDiameter float64         `yaml:"tire_diameter_in"`
	AxleHeight   float64         `yaml:"axle_height_m"`
	TargetHeight float64         `yaml:"target_height_m"`
	Wheels       []wheelReport   `yaml:"wheels"`
	Animation    animationReport `yaml:"animation"`
	Cache        cacheReport     `yaml:"cache"`
}

type wheelReport struct {
	ID          string     `yaml:"id"`
	Position    [3]float64 `yaml:"position,flow"`
	YawDeg      float64    `yaml:"yaw_deg"`
	BeadRadius  float64    `yaml:"bead_radius_m"`
	TreadRadius float64    `yaml:"tread_radius_m"`
	TreadWidth  float64    `yaml:"tread_width_m"`
	RimScale    [3]float64 `yaml:"rim_scale,flow"`
	Vertices    int        `yaml:"vertices"`
}

type animationReport struct {
	Frames  int     `yaml:"frames"`
	Start   float64 `yaml:"start_m"`
	Peak    float64 `yaml:"peak_m"`
	Trough  float64 `yaml:"trough_m"`
	Final   float64 `yaml:"final_m"`
	Settled bool    `yaml:"settled"`
}

type cacheReport struct {
	ProfileHits   int `yaml:"profile_hits"`
	ProfileMisses int `yaml:"profile_misses"`
	MeshHits      int `yaml:"mesh_hits"`
	MeshMisses    int `yaml:"mesh_misses"`
}

func newReport(f *rig.Frame, anim animationReport) report {
	rep := report{
		Vehicle:      f.Vehicle.Name,
		Config:       f.Config,
		TireDiameter: f.Config.TireDiameterInches(),
		AxleHeight:   f.Config.AxleHeight(),
		TargetHeight: f.TargetHeight,
		Animation:    anim,
	}
	if c, err := f.Config.BodyColor(); err == nil {
		rep.BodyColor = material.Hex(c)
	}

	for _, a := range f.Anchors() {
		bead, tread := a.Profile.RadialExtent()
		b := a.Profile.Bounds()
		s := a.RimScale()
		rep.Wheels = append(rep.Wheels, wheelReport{
			ID:          a.ID,
			Position:    [3]float64{a.Position.X, a.Position.Y, a.Position.Z},
			YawDeg:      a.Yaw() / units.DegToRad(1),
			BeadRadius:  bead,
			TreadRadius: tread,
			TreadWidth:  float64(b.Max[2] - b.Min[2]),
			RimScale:    [3]float64{s.X, s.Y, s.Z},
			Vertices:    a.Profile.Count(),
		})
	}
	return rep
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

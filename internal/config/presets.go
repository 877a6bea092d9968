package config

import (
	"sort"

	"github.com/san-kum/ferrosim/internal/ferro"
)

// Presets maps an application tag to a ready-made material configuration.
// The table is read-only; Preset hands out clones so callers can never
// mutate an entry through the returned value.
var Presets = map[string]*ferro.Config{
	"general": {
		InitPolarization: 0.1, InitMagnetization: 1e-6, InitStrain: 0.0,
		Coupling:      1e-8,
		ElectricField: 1e3, MagneticField: 1e-3, MechanicalStress: 1e6,
		PolarizationMin: -1.0, PolarizationMax: 1.0,
		MagnetizationMin: -1e6, MagnetizationMax: 1e6,
		StrainMin: -0.01, StrainMax: 0.01,
		SpatialFreq: 1.0, TemporalFreq: 1.0,
		ElectricAmp: 1e3, MagneticAmp: 1e-3, StressAmp: 1e6,
	},
	"sensor": {
		InitPolarization: 0.05, InitMagnetization: 1e-6, InitStrain: 0.0,
		Coupling:      5e-8,
		ElectricField: 1e2, MagneticField: 1e-4, MechanicalStress: 1e4,
		PolarizationMin: -1.0, PolarizationMax: 1.0,
		MagnetizationMin: -1e6, MagnetizationMax: 1e6,
		StrainMin: -0.01, StrainMax: 0.01,
		SpatialFreq: 10.0, TemporalFreq: 5.0,
		ElectricAmp: 1e2, MagneticAmp: 1e-4, StressAmp: 1e4,
	},
	"actuator": {
		InitPolarization: 0.2, InitMagnetization: 5e-6, InitStrain: 0.0,
		Coupling:      2e-8,
		ElectricField: 2e3, MagneticField: 1e-3, MechanicalStress: 5e6,
		PolarizationMin: -1.0, PolarizationMax: 1.0,
		MagnetizationMin: -1e6, MagnetizationMax: 1e6,
		StrainMin: -0.05, StrainMax: 0.05,
		SpatialFreq: 1.0, TemporalFreq: 0.5,
		ElectricAmp: 2e3, MagneticAmp: 1e-3, StressAmp: 5e6,
	},
	"memory": {
		InitPolarization: 0.5, InitMagnetization: 1e-5, InitStrain: 0.001,
		Coupling:      1e-7,
		ElectricField: 1e3, MagneticField: 1e-2, MechanicalStress: 1e5,
		PolarizationMin: -0.5, PolarizationMax: 0.5,
		MagnetizationMin: -5e5, MagnetizationMax: 5e5,
		StrainMin: -0.005, StrainMax: 0.005,
		SpatialFreq: 0.5, TemporalFreq: 0.2,
		ElectricAmp: 1e3, MagneticAmp: 1e-2, StressAmp: 1e5,
	},
	"energy_harvesting": {
		InitPolarization: 0.1, InitMagnetization: 1e-6, InitStrain: 0.0,
		Coupling:      3e-8,
		ElectricField: 2e3, MagneticField: 5e-3, MechanicalStress: 2e6,
		PolarizationMin: -1.0, PolarizationMax: 1.0,
		MagnetizationMin: -1e6, MagnetizationMax: 1e6,
		StrainMin: -0.02, StrainMax: 0.02,
		SpatialFreq: 1.0, TemporalFreq: 50.0,
		ElectricAmp: 2e3, MagneticAmp: 5e-3, StressAmp: 2e6,
	},
}

// Preset returns a copy of the configuration for tag. An unrecognized tag
// falls back to the general configuration instead of failing.
func Preset(tag string) *ferro.Config {
	cfg, ok := Presets[tag]
	if !ok {
		cfg = Presets["general"]
	}
	return cfg.Clone()
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FromPreset builds a material from a named preset, applying the optional
// customize callback to a private copy first. The table entry is never
// touched.
func FromPreset(tag string, customize func(*ferro.Config)) (*ferro.Material, error) {
	cfg := Preset(tag)
	if customize != nil {
		customize(cfg)
	}
	return ferro.New(cfg)
}

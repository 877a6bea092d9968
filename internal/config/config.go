package config

import (
	"os"

	"github.com/san-kum/ferrosim/internal/ferro"
	"gopkg.in/yaml.v3"
)

const (
	DefaultDt        = 0.01
	DefaultDuration  = 10.0
	DefaultScanSpeed = 0.1
)

type Config struct {
	Preset   string         `yaml:"preset"`
	Material MaterialConfig `yaml:"material"`
	Clamp    ClampConfig    `yaml:"clamp"`
	Drive    DriveConfig    `yaml:"drive"`
	Run      RunConfig      `yaml:"run"`
}

type MaterialConfig struct {
	Polarization  float64 `yaml:"polarization"`
	Magnetization float64 `yaml:"magnetization"`
	Strain        float64 `yaml:"strain"`
	Coupling      float64 `yaml:"coupling"`
	ElectricField float64 `yaml:"electric_field"`
	MagneticField float64 `yaml:"magnetic_field"`
	Stress        float64 `yaml:"stress"`
}

type ClampConfig struct {
	PolarizationMin  float64 `yaml:"polarization_min"`
	PolarizationMax  float64 `yaml:"polarization_max"`
	MagnetizationMin float64 `yaml:"magnetization_min"`
	MagnetizationMax float64 `yaml:"magnetization_max"`
	StrainMin        float64 `yaml:"strain_min"`
	StrainMax        float64 `yaml:"strain_max"`
}

type DriveConfig struct {
	SpatialFreq  float64 `yaml:"spatial_freq"`
	TemporalFreq float64 `yaml:"temporal_freq"`
	ElectricAmp  float64 `yaml:"electric_amp"`
	MagneticAmp  float64 `yaml:"magnetic_amp"`
	StressAmp    float64 `yaml:"stress_amp"`
}

type RunConfig struct {
	Dt        float64 `yaml:"dt"`
	Duration  float64 `yaml:"duration"`
	StartX    float64 `yaml:"start_x"`
	ScanSpeed float64 `yaml:"scan_speed"`
}

func DefaultConfig() *Config {
	c := &Config{
		Preset: "general",
		Run: RunConfig{
			Dt:        DefaultDt,
			Duration:  DefaultDuration,
			ScanSpeed: DefaultScanSpeed,
		},
	}
	c.apply(ferro.DefaultConfig())
	return c
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// FerroConfig converts the file representation into a material
// configuration.
func (c *Config) FerroConfig() *ferro.Config {
	return &ferro.Config{
		InitPolarization:  c.Material.Polarization,
		InitMagnetization: c.Material.Magnetization,
		InitStrain:        c.Material.Strain,
		Coupling:          c.Material.Coupling,
		ElectricField:     c.Material.ElectricField,
		MagneticField:     c.Material.MagneticField,
		MechanicalStress:  c.Material.Stress,
		PolarizationMin:   c.Clamp.PolarizationMin,
		PolarizationMax:   c.Clamp.PolarizationMax,
		MagnetizationMin:  c.Clamp.MagnetizationMin,
		MagnetizationMax:  c.Clamp.MagnetizationMax,
		StrainMin:         c.Clamp.StrainMin,
		StrainMax:         c.Clamp.StrainMax,
		SpatialFreq:       c.Drive.SpatialFreq,
		TemporalFreq:      c.Drive.TemporalFreq,
		ElectricAmp:       c.Drive.ElectricAmp,
		MagneticAmp:       c.Drive.MagneticAmp,
		StressAmp:         c.Drive.StressAmp,
	}
}

func (c *Config) apply(fc *ferro.Config) {
	c.Material = MaterialConfig{
		Polarization:  fc.InitPolarization,
		Magnetization: fc.InitMagnetization,
		Strain:        fc.InitStrain,
		Coupling:      fc.Coupling,
		ElectricField: fc.ElectricField,
		MagneticField: fc.MagneticField,
		Stress:        fc.MechanicalStress,
	}
	c.Clamp = ClampConfig{
		PolarizationMin:  fc.PolarizationMin,
		PolarizationMax:  fc.PolarizationMax,
		MagnetizationMin: fc.MagnetizationMin,
		MagnetizationMax: fc.MagnetizationMax,
		StrainMin:        fc.StrainMin,
		StrainMax:        fc.StrainMax,
	}
	c.Drive = DriveConfig{
		SpatialFreq:  fc.SpatialFreq,
		TemporalFreq: fc.TemporalFreq,
		ElectricAmp:  fc.ElectricAmp,
		MagneticAmp:  fc.MagneticAmp,
		StressAmp:    fc.StressAmp,
	}
}

package ferro

import "testing"

func TestConfig_Clone(t *testing.T) {
	orig := DefaultConfig()
	cl := orig.Clone()

	cl.Coupling = 9e-5
	cl.InitPolarization = 0.77
	cl.StrainMax = 123.0
	cl.ElectricAmp = 1.0

	if orig.Coupling != DefaultCoupling {
		t.Errorf("clone mutation leaked into original coupling: %v", orig.Coupling)
	}
	if orig.InitPolarization != DefaultPolarization {
		t.Errorf("clone mutation leaked into original initial polarization: %v", orig.InitPolarization)
	}
	if orig.StrainMax != DefaultStrainBound {
		t.Errorf("clone mutation leaked into original strain bound: %v", orig.StrainMax)
	}
	if orig.ElectricAmp != DefaultElectricField {
		t.Errorf("clone mutation leaked into original amplitude: %v", orig.ElectricAmp)
	}
}

func TestConfig_CloneNil(t *testing.T) {
	var c *Config
	if c.Clone() != nil {
		t.Error("cloning nil should return nil")
	}
}

func TestDefaultConfig_Bounds(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.PolarizationMin >= cfg.PolarizationMax {
		t.Error("polarization clamp interval is empty")
	}
	if cfg.MagnetizationMin >= cfg.MagnetizationMax {
		t.Error("magnetization clamp interval is empty")
	}
	if cfg.StrainMin >= cfg.StrainMax {
		t.Error("strain clamp interval is empty")
	}
}

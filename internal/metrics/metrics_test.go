package metrics

import (
	"math"
	"testing"

	"github.com/san-kum/ferrosim/internal/ferro"
)

func TestMeanEnergy(t *testing.T) {
	m := NewMeanEnergy()

	m.Observe(ferro.Sample{Energy: 2.0})
	m.Observe(ferro.Sample{Energy: 4.0})

	if got := m.Value(); math.Abs(got-3.0) > 1e-12 {
		t.Errorf("mean = %v, want 3.0", got)
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("expected zero after reset")
	}
}

func TestMeanEnergy_Empty(t *testing.T) {
	if NewMeanEnergy().Value() != 0 {
		t.Error("expected zero mean with no samples")
	}
}

func TestPeakEnergy(t *testing.T) {
	p := NewPeakEnergy()

	p.Observe(ferro.Sample{Energy: 1.5})
	p.Observe(ferro.Sample{Energy: -7.0})
	p.Observe(ferro.Sample{Energy: 3.0})

	if got := p.Value(); got != 7.0 {
		t.Errorf("peak = %v, want 7.0", got)
	}
}

func TestSaturation(t *testing.T) {
	cfg := ferro.DefaultConfig()
	s := NewSaturation(cfg)

	s.Observe(ferro.Sample{Polarization: 0.1, Magnetization: 0, Strain: 0})
	s.Observe(ferro.Sample{Polarization: cfg.PolarizationMax, Magnetization: 0, Strain: 0})
	s.Observe(ferro.Sample{Polarization: 0, Magnetization: 0, Strain: cfg.StrainMin})
	s.Observe(ferro.Sample{Polarization: 0, Magnetization: 0, Strain: 0})

	if got := s.Value(); math.Abs(got-0.5) > 1e-12 {
		t.Errorf("saturation = %v, want 0.5", got)
	}

	s.Reset()
	if s.Value() != 0 {
		t.Error("expected zero after reset")
	}
}

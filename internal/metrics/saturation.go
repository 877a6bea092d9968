package metrics

import "github.com/san-kum/ferrosim/internal/ferro"

// Saturation measures how often the material sits pinned at a clamp bound:
// the fraction of samples where at least one state variable equals its
// configured minimum or maximum.
type Saturation struct {
	name    string
	cfg     *ferro.Config
	pinned  int
	samples int
}

func NewSaturation(cfg *ferro.Config) *Saturation {
	return &Saturation{name: "saturation", cfg: cfg}
}

func (s *Saturation) Name() string { return s.name }

func (s *Saturation) Observe(smp ferro.Sample) {
	s.samples++
	if smp.Polarization == s.cfg.PolarizationMin || smp.Polarization == s.cfg.PolarizationMax ||
		smp.Magnetization == s.cfg.MagnetizationMin || smp.Magnetization == s.cfg.MagnetizationMax ||
		smp.Strain == s.cfg.StrainMin || smp.Strain == s.cfg.StrainMax {
		s.pinned++
	}
}

func (s *Saturation) Value() float64 {
	if s.samples == 0 {
		return 0
	}
	return float64(s.pinned) / float64(s.samples)
}

func (s *Saturation) Reset() {
	s.pinned = 0
	s.samples = 0
}

package metrics

import (
	"math"

	"github.com/san-kum/ferrosim/internal/ferro"
)

// MeanEnergy averages the energy density over all observed samples.
type MeanEnergy struct {
	name    string
	total   float64
	samples int
}

func NewMeanEnergy() *MeanEnergy {
	return &MeanEnergy{name: "mean_energy"}
}

func (m *MeanEnergy) Name() string { return m.name }

func (m *MeanEnergy) Observe(s ferro.Sample) {
	m.total += s.Energy
	m.samples++
}

func (m *MeanEnergy) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.total / float64(m.samples)
}

func (m *MeanEnergy) Reset() {
	m.total = 0
	m.samples = 0
}

// PeakEnergy tracks the largest energy-density magnitude seen.
type PeakEnergy struct {
	name string
	peak float64
}

func NewPeakEnergy() *PeakEnergy {
	return &PeakEnergy{name: "peak_energy"}
}

func (p *PeakEnergy) Name() string { return p.name }

func (p *PeakEnergy) Observe(s ferro.Sample) {
	if v := math.Abs(s.Energy); v > p.peak {
		p.peak = v
	}
}

func (p *PeakEnergy) Value() float64 { return p.peak }

func (p *PeakEnergy) Reset() { p.peak = 0 }

package ferro

import "math"

// Sample records the material state and energy density at one drive step.
type Sample struct {
	Time          float64 `json:"time"`
	Position      float64 `json:"position"`
	Polarization  float64 `json:"polarization"`
	Magnetization float64 `json:"magnetization"`
	Strain        float64 `json:"strain"`
	Energy        float64 `json:"energy"`
}

func (s Sample) IsValid() bool {
	for _, v := range []float64{s.Polarization, s.Magnetization, s.Strain, s.Energy} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

type Metric interface {
	Name() string
	Observe(s Sample)
	Value() float64
	Reset()
}

type Observer interface {
	OnSample(s Sample)
}

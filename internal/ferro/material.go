package ferro

import "math"

// Material holds the coupled electrical, magnetic, and mechanical state of
// a multiferroic sample. State is mutated only by Update, which every
// EnergyDensity call invokes.
type Material struct {
	cfg *Config

	polarization  float64
	magnetization float64
	strain        float64
}

// New binds a material to cfg. The configuration is referenced, not
// copied; pass a Clone if the caller keeps mutating the original.
func New(cfg *Config) (*Material, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	return &Material{
		cfg:           cfg,
		polarization:  cfg.InitPolarization,
		magnetization: cfg.InitMagnetization,
		strain:        cfg.InitStrain,
	}, nil
}

// NewFromState is the legacy construction path: explicit initial state and
// steady field seeds, everything else defaulted.
func NewFromState(p, m, s, electricField, magneticField, mechanicalStress float64) *Material {
	cfg := DefaultConfig()
	cfg.InitPolarization = p
	cfg.InitMagnetization = m
	cfg.InitStrain = s
	cfg.ElectricField = electricField
	cfg.MagneticField = magneticField
	cfg.MechanicalStress = mechanicalStress
	mat, _ := New(cfg)
	return mat
}

// NewSimple is the short legacy path: initial polarization and field seeds
// only, with magnetization and strain starting from the defaults.
func NewSimple(p, electricField, magneticField, mechanicalStress float64) *Material {
	return NewFromState(p, DefaultMagnetization, DefaultStrain,
		electricField, magneticField, mechanicalStress)
}

// Update advances the state one step under the given instantaneous fields.
// The three lines are sequential, not simultaneous: each reads the value
// left by the line above it. Clamping happens once, after all three
// updates; reordering either would change the trajectory.
func (m *Material) Update(electricField, magneticField, mechanicalStress float64) {
	k := m.cfg.Coupling

	m.polarization += k * electricField * m.magnetization
	m.magnetization += k * magneticField * m.strain
	m.strain += k * mechanicalStress * m.polarization

	m.polarization = clamp(m.polarization, m.cfg.PolarizationMin, m.cfg.PolarizationMax)
	m.magnetization = clamp(m.magnetization, m.cfg.MagnetizationMin, m.cfg.MagnetizationMax)
	m.strain = clamp(m.strain, m.cfg.StrainMin, m.cfg.StrainMax)
}

// EnergyDensity derives the drive fields at (x, t) from the configured
// shape parameters, advances the state under them, and returns the energy
// density of the post-update state. y is accepted for interface symmetry
// but does not enter the computation.
func (m *Material) EnergyDensity(x, y, t float64) float64 {
	_ = y

	electricField := math.Sin(x*m.cfg.SpatialFreq) * m.cfg.ElectricAmp
	magneticField := math.Cos(x*m.cfg.SpatialFreq) * m.cfg.MagneticAmp
	mechanicalStress := math.Sin(t*m.cfg.TemporalFreq) * m.cfg.StressAmp

	m.Update(electricField, magneticField, mechanicalStress)

	return 0.5*electricField*m.polarization +
		0.5*magneticField*m.magnetization +
		0.5*mechanicalStress*m.strain +
		m.cfg.Coupling*m.polarization*m.magnetization*m.strain
}

// UpdateConfig replaces the drive parameters: coupling strength, both
// frequencies, and the three amplitudes. Initial values, clamp bounds, and
// the current state are untouched; only future updates change. A nil
// argument is silently ignored.
func (m *Material) UpdateConfig(cfg *Config) {
	if cfg == nil {
		return
	}
	m.cfg.Coupling = cfg.Coupling
	m.cfg.SpatialFreq = cfg.SpatialFreq
	m.cfg.TemporalFreq = cfg.TemporalFreq
	m.cfg.ElectricAmp = cfg.ElectricAmp
	m.cfg.MagneticAmp = cfg.MagneticAmp
	m.cfg.StressAmp = cfg.StressAmp
}

func (m *Material) Polarization() float64  { return m.polarization }
func (m *Material) Magnetization() float64 { return m.magnetization }
func (m *Material) Strain() float64        { return m.strain }
func (m *Material) Coupling() float64      { return m.cfg.Coupling }

// Config returns the material's current configuration.
func (m *Material) Config() *Config { return m.cfg }

// GetParams exposes the adjustable drive parameters for interactive use.
func (m *Material) GetParams() map[string]float64 {
	return map[string]float64{
		"coupling":     m.cfg.Coupling,
		"spatialFreq":  m.cfg.SpatialFreq,
		"temporalFreq": m.cfg.TemporalFreq,
		"electricAmp":  m.cfg.ElectricAmp,
		"magneticAmp":  m.cfg.MagneticAmp,
		"stressAmp":    m.cfg.StressAmp,
	}
}

// SetParam adjusts one drive parameter by name. Unknown names are ignored,
// matching the lenient replacement semantics of UpdateConfig.
func (m *Material) SetParam(n string, v float64) error {
	switch n {
	case "coupling":
		m.cfg.Coupling = v
	case "spatialFreq":
		m.cfg.SpatialFreq = v
	case "temporalFreq":
		m.cfg.TemporalFreq = v
	case "electricAmp":
		m.cfg.ElectricAmp = v
	case "magneticAmp":
		m.cfg.MagneticAmp = v
	case "stressAmp":
		m.cfg.StressAmp = v
	}
	return nil
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

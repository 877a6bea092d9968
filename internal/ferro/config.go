package ferro

const (
	DefaultPolarization  = 0.1
	DefaultMagnetization = 1e-6
	DefaultStrain        = 0.0
	DefaultCoupling      = 1e-8

	DefaultElectricField    = 1e3
	DefaultMagneticField    = 1e-3
	DefaultMechanicalStress = 1e6

	DefaultPolarizationBound  = 1.0
	DefaultMagnetizationBound = 1e6
	DefaultStrainBound        = 0.01

	DefaultSpatialFreq  = 1.0
	DefaultTemporalFreq = 1.0
)

// Config bundles everything that parameterizes a Material: initial state,
// coupling strength, clamp bounds, and the drive-signal shape. It is a
// parameter bag, not a validated object; no invariant between fields is
// enforced, and physically inconsistent values are accepted as given.
type Config struct {
	InitPolarization  float64
	InitMagnetization float64
	InitStrain        float64

	Coupling float64

	// Steady field seeds. These are recorded for inspection and kept by
	// the legacy construction paths, but the update rule derives its
	// instantaneous fields from position and time instead of reading them.
	ElectricField    float64
	MagneticField    float64
	MechanicalStress float64

	// Closed clamp intervals for the three state variables.
	PolarizationMin  float64
	PolarizationMax  float64
	MagnetizationMin float64
	MagnetizationMax float64
	StrainMin        float64
	StrainMax        float64

	// Drive-signal shape: how position and time map to field values.
	SpatialFreq  float64
	TemporalFreq float64
	ElectricAmp  float64
	MagneticAmp  float64
	StressAmp    float64
}

func DefaultConfig() *Config {
	return &Config{
		InitPolarization:  DefaultPolarization,
		InitMagnetization: DefaultMagnetization,
		InitStrain:        DefaultStrain,
		Coupling:          DefaultCoupling,
		ElectricField:     DefaultElectricField,
		MagneticField:     DefaultMagneticField,
		MechanicalStress:  DefaultMechanicalStress,
		PolarizationMin:   -DefaultPolarizationBound,
		PolarizationMax:   DefaultPolarizationBound,
		MagnetizationMin:  -DefaultMagnetizationBound,
		MagnetizationMax:  DefaultMagnetizationBound,
		StrainMin:         -DefaultStrainBound,
		StrainMax:         DefaultStrainBound,
		SpatialFreq:       DefaultSpatialFreq,
		TemporalFreq:      DefaultTemporalFreq,
		ElectricAmp:       DefaultElectricField,
		MagneticAmp:       DefaultMagneticField,
		StressAmp:         DefaultMechanicalStress,
	}
}

// Clone returns an independent copy; mutating the copy never affects the
// original. All fields are scalars, so a value copy is a deep copy.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}
	cc := *c
	return &cc
}

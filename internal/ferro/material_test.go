package ferro

import (
	"errors"
	"math"
	"testing"
)

func TestNew_NilConfig(t *testing.T) {
	mat, err := New(nil)
	if mat != nil {
		t.Error("expected nil material for nil config")
	}
	if !errors.Is(err, ErrNilConfig) {
		t.Errorf("expected ErrNilConfig, got %v", err)
	}
}

func TestNew_InitialState(t *testing.T) {
	cfg := DefaultConfig()
	cfg.InitPolarization = 0.25
	cfg.InitMagnetization = 2e-6
	cfg.InitStrain = 0.001

	mat, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}

	if mat.Polarization() != 0.25 {
		t.Errorf("polarization = %v, want 0.25", mat.Polarization())
	}
	if mat.Magnetization() != 2e-6 {
		t.Errorf("magnetization = %v, want 2e-6", mat.Magnetization())
	}
	if mat.Strain() != 0.001 {
		t.Errorf("strain = %v, want 0.001", mat.Strain())
	}
}

func TestUpdate_SequentialCoupling(t *testing.T) {
	mat := NewFromState(0.1, 1e-6, 0.0, 0, 0, 0)

	mat.Update(1e3, 1e-3, 1e6)

	// Each line reads the value left by the line above it: the
	// polarization term sees the pre-update magnetization, and the strain
	// term sees the already-updated polarization.
	wantP := 0.1 + 1e-8*1e3*1e-6
	wantM := 1e-6 + 1e-8*1e-3*0.0
	wantS := 0.0 + 1e-8*1e6*wantP

	if got := mat.Polarization(); got != wantP {
		t.Errorf("polarization = %.18g, want %.18g", got, wantP)
	}
	if got := mat.Magnetization(); got != wantM {
		t.Errorf("magnetization = %.18g, want %.18g", got, wantM)
	}
	if got := mat.Strain(); got != wantS {
		t.Errorf("strain = %.18g, want %.18g", got, wantS)
	}

	// A simultaneous update would have used the stale polarization here.
	stale := 0.0 + 1e-8*1e6*0.1
	if mat.Strain() == stale {
		t.Error("strain used pre-update polarization; updates must be sequential")
	}
}

func TestUpdate_SequentialCoupling_NonzeroStrain(t *testing.T) {
	cfg := DefaultConfig()
	cfg.InitPolarization = 1.0
	cfg.InitMagnetization = 1.0
	cfg.InitStrain = 1.0
	cfg.Coupling = 0.1
	cfg.PolarizationMin, cfg.PolarizationMax = -10, 10
	cfg.MagnetizationMin, cfg.MagnetizationMax = -10, 10
	cfg.StrainMin, cfg.StrainMax = -10, 10

	mat, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}

	mat.Update(1, 1, 1)

	// P = 1 + 0.1*1*1 = 1.1; M = 1 + 0.1*1*1 = 1.1 (strain still 1.0);
	// S = 1 + 0.1*1*1.1 = 1.11 (polarization already updated).
	if got := mat.Polarization(); math.Abs(got-1.1) > 1e-12 {
		t.Errorf("polarization = %v, want 1.1", got)
	}
	if got := mat.Magnetization(); math.Abs(got-1.1) > 1e-12 {
		t.Errorf("magnetization = %v, want 1.1", got)
	}
	if got := mat.Strain(); math.Abs(got-1.11) > 1e-12 {
		t.Errorf("strain = %v, want 1.11", got)
	}
}

func TestUpdate_ClampInvariant(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Coupling = 1.0
	cfg.PolarizationMin, cfg.PolarizationMax = -0.5, 0.5
	cfg.MagnetizationMin, cfg.MagnetizationMax = -2.0, 2.0
	cfg.StrainMin, cfg.StrainMax = -0.1, 0.1

	mat, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}

	inputs := []struct{ e, b, sigma float64 }{
		{1e6, 1e6, 1e6},
		{-1e9, 1e3, -1e9},
		{0, 0, 0},
		{1e-3, -1e6, 42},
	}

	for i, in := range inputs {
		mat.Update(in.e, in.b, in.sigma)

		if p := mat.Polarization(); p < -0.5 || p > 0.5 {
			t.Errorf("step %d: polarization %v outside [-0.5, 0.5]", i, p)
		}
		if m := mat.Magnetization(); m < -2.0 || m > 2.0 {
			t.Errorf("step %d: magnetization %v outside [-2, 2]", i, m)
		}
		if s := mat.Strain(); s < -0.1 || s > 0.1 {
			t.Errorf("step %d: strain %v outside [-0.1, 0.1]", i, s)
		}
	}
}

func TestUpdate_ClampSaturatesToBound(t *testing.T) {
	cfg := DefaultConfig()
	cfg.InitMagnetization = 1.0
	cfg.Coupling = 1.0
	cfg.PolarizationMin, cfg.PolarizationMax = -0.5, 0.5

	mat, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}

	mat.Update(1e12, 0, 0)
	if got := mat.Polarization(); got != 0.5 {
		t.Errorf("polarization = %v, want the upper bound 0.5", got)
	}

	mat.Update(-1e12, 0, 0)
	if got := mat.Polarization(); got != -0.5 {
		t.Errorf("polarization = %v, want the lower bound -0.5", got)
	}
}

func TestEnergyDensity_MutatesState(t *testing.T) {
	mat, err := New(DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}

	u1 := mat.EnergyDensity(1.0, 0, 0.1)
	u2 := mat.EnergyDensity(1.0, 0, 0.1)

	if u1 == u2 {
		t.Errorf("consecutive queries returned identical %v; state must accumulate", u1)
	}
}

func TestEnergyDensity_IgnoresY(t *testing.T) {
	a, _ := New(DefaultConfig())
	b, _ := New(DefaultConfig())

	ua := a.EnergyDensity(0.7, 0, 0.3)
	ub := b.EnergyDensity(0.7, 123.4, 0.3)

	if ua != ub {
		t.Errorf("y changed the result: %v vs %v", ua, ub)
	}
}

func TestEnergyDensity_Value(t *testing.T) {
	cfg := DefaultConfig()
	mat, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}

	x, tm := 1.0, 0.1
	e := math.Sin(x*cfg.SpatialFreq) * cfg.ElectricAmp
	b := math.Cos(x*cfg.SpatialFreq) * cfg.MagneticAmp
	sigma := math.Sin(tm*cfg.TemporalFreq) * cfg.StressAmp

	ref := NewFromState(cfg.InitPolarization, cfg.InitMagnetization, cfg.InitStrain, 0, 0, 0)
	ref.Update(e, b, sigma)
	want := 0.5*e*ref.Polarization() + 0.5*b*ref.Magnetization() +
		0.5*sigma*ref.Strain() + cfg.Coupling*ref.Polarization()*ref.Magnetization()*ref.Strain()

	if got := mat.EnergyDensity(x, 0, tm); got != want {
		t.Errorf("energy density = %.18g, want %.18g", got, want)
	}
}

func TestUpdateConfig_ReplacesDriveOnly(t *testing.T) {
	cfg := DefaultConfig()
	mat, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	mat.EnergyDensity(1.0, 0, 0.1)

	p, m, s := mat.Polarization(), mat.Magnetization(), mat.Strain()

	next := DefaultConfig()
	next.Coupling = 5e-7
	next.SpatialFreq = 3.0
	next.TemporalFreq = 2.0
	next.ElectricAmp = 2e3
	next.MagneticAmp = 4e-3
	next.StressAmp = 9e6
	next.InitPolarization = 0.9
	next.PolarizationMax = 7.0

	mat.UpdateConfig(next)

	if mat.Polarization() != p || mat.Magnetization() != m || mat.Strain() != s {
		t.Error("state changed on configuration replacement")
	}
	if mat.Coupling() != 5e-7 {
		t.Errorf("coupling = %v, want 5e-7", mat.Coupling())
	}
	if got := mat.Config(); got.SpatialFreq != 3.0 || got.ElectricAmp != 2e3 || got.StressAmp != 9e6 {
		t.Error("drive shape not replaced")
	}
	if got := mat.Config(); got.InitPolarization != DefaultPolarization || got.PolarizationMax != DefaultPolarizationBound {
		t.Error("initial values and clamp bounds must survive replacement")
	}
}

func TestUpdateConfig_NilIsNoop(t *testing.T) {
	mat, _ := New(DefaultConfig())
	before := mat.GetParams()

	mat.UpdateConfig(nil)

	after := mat.GetParams()
	for k, v := range before {
		if after[k] != v {
			t.Errorf("param %s changed on nil replacement: %v -> %v", k, v, after[k])
		}
	}
}

func TestUpdateConfig_AffectsNextQuery(t *testing.T) {
	a, _ := New(DefaultConfig())
	b, _ := New(DefaultConfig())

	boosted := DefaultConfig()
	boosted.ElectricAmp = 10 * DefaultElectricField
	b.UpdateConfig(boosted)

	if a.EnergyDensity(1.0, 0, 0.1) == b.EnergyDensity(1.0, 0, 0.1) {
		t.Error("replaced amplitudes did not change the next query")
	}
}

func TestLegacyConstructors_Equivalent(t *testing.T) {
	cfg := DefaultConfig()
	cfg.InitPolarization = 0.2
	direct, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}

	simple := NewSimple(0.2, DefaultElectricField, DefaultMagneticField, DefaultMechanicalStress)

	for i := 0; i < 10; i++ {
		tm := float64(i) * 0.05
		ud := direct.EnergyDensity(0.5, 0, tm)
		us := simple.EnergyDensity(0.5, 0, tm)
		if ud != us {
			t.Fatalf("step %d: construction paths diverged: %v vs %v", i, ud, us)
		}
	}
}

func TestNewFromState_RecordsSeeds(t *testing.T) {
	mat := NewFromState(0.3, 2e-6, 0.002, 5e3, 7e-3, 3e6)

	cfg := mat.Config()
	if cfg.ElectricField != 5e3 || cfg.MagneticField != 7e-3 || cfg.MechanicalStress != 3e6 {
		t.Error("field seeds not recorded in configuration")
	}
	if mat.Polarization() != 0.3 || mat.Magnetization() != 2e-6 || mat.Strain() != 0.002 {
		t.Error("initial state not taken from arguments")
	}
}

func TestUpdate_NonFinitePropagates(t *testing.T) {
	mat, _ := New(DefaultConfig())

	mat.Update(math.NaN(), 0, 0)

	if !math.IsNaN(mat.Polarization()) {
		t.Error("NaN input should propagate into polarization")
	}
}

func TestSetParam(t *testing.T) {
	mat, _ := New(DefaultConfig())

	if err := mat.SetParam("coupling", 4e-8); err != nil {
		t.Fatal(err)
	}
	if mat.Coupling() != 4e-8 {
		t.Errorf("coupling = %v, want 4e-8", mat.Coupling())
	}

	// Unknown names are ignored, like a nil replacement config.
	if err := mat.SetParam("bogus", 1.0); err != nil {
		t.Fatal(err)
	}
}

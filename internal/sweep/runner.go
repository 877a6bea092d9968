// Package sweep drives a material along a position/time schedule and
// collects the resulting energy-density series.
package sweep

import (
	"context"
	"fmt"

	"github.com/san-kum/ferrosim/internal/ferro"
)

// Config describes one drive schedule: the probe scans from StartX at
// ScanSpeed while time advances in Dt steps up to Duration.
type Config struct {
	Dt        float64
	Duration  float64
	StartX    float64
	ScanSpeed float64

	// DetectNaN stops the run when a recorded sample goes non-finite.
	// The material itself stays lenient either way.
	DetectNaN bool
}

func DefaultConfig() Config {
	return Config{
		Dt:        0.01,
		Duration:  10.0,
		ScanSpeed: 0.1,
	}
}

type Result struct {
	Samples []ferro.Sample
	Metrics map[string]float64
	Steps   int
	Errors  []error
}

type RunError struct {
	Step    int
	Time    float64
	Message string
}

func (e RunError) Error() string {
	return fmt.Sprintf("step %d (t=%.4f): %s", e.Step, e.Time, e.Message)
}

type Runner struct {
	mat       *ferro.Material
	metrics   []ferro.Metric
	observers []ferro.Observer
}

func New(mat *ferro.Material) *Runner {
	return &Runner{
		mat:       mat,
		metrics:   make([]ferro.Metric, 0),
		observers: make([]ferro.Observer, 0),
	}
}

func (r *Runner) AddMetric(m ferro.Metric)     { r.metrics = append(r.metrics, m) }
func (r *Runner) AddObserver(o ferro.Observer) { r.observers = append(r.observers, o) }

func (r *Runner) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	steps := int(cfg.Duration / cfg.Dt)
	result := &Result{
		Samples: make([]ferro.Sample, 0, steps),
		Metrics: make(map[string]float64),
		Errors:  make([]error, 0),
	}

	for _, m := range r.metrics {
		m.Reset()
	}

	t := 0.0
	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		x := cfg.StartX + cfg.ScanSpeed*t
		energy := r.mat.EnergyDensity(x, 0, t)

		s := ferro.Sample{
			Time:          t,
			Position:      x,
			Polarization:  r.mat.Polarization(),
			Magnetization: r.mat.Magnetization(),
			Strain:        r.mat.Strain(),
			Energy:        energy,
		}

		for _, m := range r.metrics {
			m.Observe(s)
		}
		for _, obs := range r.observers {
			obs.OnSample(s)
		}

		result.Samples = append(result.Samples, s)
		result.Steps++

		if cfg.DetectNaN && !s.IsValid() {
			result.Errors = append(result.Errors, RunError{Step: i, Time: t, Message: "non-finite sample"})
			break
		}

		t += cfg.Dt
	}

	for _, m := range r.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}

// RunWithCallback streams samples to the callback instead of collecting
// them; returning false stops the run early.
func (r *Runner) RunWithCallback(ctx context.Context, cfg Config, callback func(ferro.Sample) bool) error {
	if err := validateConfig(cfg); err != nil {
		return err
	}

	t := 0.0
	for t < cfg.Duration {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		x := cfg.StartX + cfg.ScanSpeed*t
		energy := r.mat.EnergyDensity(x, 0, t)

		s := ferro.Sample{
			Time:          t,
			Position:      x,
			Polarization:  r.mat.Polarization(),
			Magnetization: r.mat.Magnetization(),
			Strain:        r.mat.Strain(),
			Energy:        energy,
		}

		if !callback(s) {
			return nil
		}

		t += cfg.Dt
	}

	return nil
}

func validateConfig(cfg Config) error {
	if cfg.Dt <= 0 {
		return fmt.Errorf("%w: dt must be positive, got %f", ferro.ErrBadSchedule, cfg.Dt)
	}
	if cfg.Duration <= 0 {
		return fmt.Errorf("%w: duration must be positive, got %f", ferro.ErrBadSchedule, cfg.Duration)
	}
	return nil
}

// Package ferro provides the core multiferroic material model.
//
// The package defines the two elements everything else builds on:
//
//   - [Config]: a plain parameter bag of initial conditions, coupling
//     strength, clamp bounds, and drive-signal shape
//   - [Material]: the coupled polarization/magnetization/strain state
//     and its update rule
//
// # Example
//
//	mat, _ := ferro.New(ferro.DefaultConfig())
//	u := mat.EnergyDensity(1.0, 0, 0.1)
//
// Every [Material.EnergyDensity] call advances the material state; it is
// a drive step, not a pure query.
//
// # Thread Safety
//
// Material instances are NOT thread-safe. Confine each instance to one
// goroutine; the sweep package does this for parallel runs.
package ferro

package ferro

import "errors"

// Domain errors for material construction and driving.
var (
	// ErrNilConfig indicates a material was constructed without a
	// configuration. A material with no clamp bounds is undefined, so
	// construction is rejected instead of defaulting.
	ErrNilConfig = errors.New("ferro: material requires a configuration")

	// ErrBadSchedule indicates a drive schedule with a non-positive
	// timestep or duration.
	ErrBadSchedule = errors.New("ferro: invalid drive schedule")
)

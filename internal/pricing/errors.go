package pricing

import "errors"

var (
	// ErrInvalidRoute is returned when origin and destination are the same city.
	ErrInvalidRoute = errors.New("origin and destination must differ")
	// ErrUnknownCity is returned for city tokens outside the supported set.
	ErrUnknownCity = errors.New("unknown city")
	// ErrUnknownServiceTier is returned for tier keys outside the supported set.
	ErrUnknownServiceTier = errors.New("unknown service tier")
	// ErrNegativeMeasure is returned when weight, volume or a dimension is negative.
	ErrNegativeMeasure = errors.New("measurements must not be negative")
	// ErrMeasureOutOfRange is returned when weight, volume or a dimension
	// exceeds what a single consignment can carry.
	ErrMeasureOutOfRange = errors.New("measurement out of range")
)

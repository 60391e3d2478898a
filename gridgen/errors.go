package gridgen

import "errors"

// ErrTooSmall indicates that a dimension is below the constructor minimum.
// Usage: if errors.Is(err, ErrTooSmall) { /* report invalid size */ }.
var ErrTooSmall = errors.New("gridgen: grid dimensions too small")

// ErrInvalidDensity indicates a density outside the closed interval [0,1].
var ErrInvalidDensity = errors.New("gridgen: density out of range")

// ErrNeedRandSource indicates a random draw was needed but no RNG was set
// (see WithSeed / WithRand).
var ErrNeedRandSource = errors.New("gridgen: rng is required")

// ErrMarkerConflict indicates the obstacle marker collides with the empty
// or house marker.
var ErrMarkerConflict = errors.New("gridgen: obstacle marker collides with empty or house marker")

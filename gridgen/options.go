package gridgen

import (
	"math/rand"

	"github.com/katalvlaran/meetgrid/grid"
)

// ObstacleMarker is the default value written for obstacle cells.
const ObstacleMarker = 2

// Option customizes a constructor by mutating its config.
type Option func(*config)

// config aggregates all generator knobs. Defaults are deterministic:
//   - rng            = nil (no randomness unless seeded)
//   - houseDensity   = 0.1
//   - obstacleDensity = 0.0
//   - markers        = grid.DefaultMarkers()
//   - obstacle       = ObstacleMarker
type config struct {
	rng             *rand.Rand
	houseDensity    float64
	obstacleDensity float64
	markers         grid.Markers
	obstacle        int
}

const (
	defaultHouseDensity    = 0.1
	defaultObstacleDensity = 0.0
)

func newConfig(opts []Option) config {
	c := config{
		houseDensity:    defaultHouseDensity,
		obstacleDensity: defaultObstacleDensity,
		markers:         grid.DefaultMarkers(),
		obstacle:        ObstacleMarker,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand provides an explicit RNG. Panics on nil; prefer WithSeed for
// reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("gridgen: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithHouseDensity sets the fraction of all cells that become houses.
// Validated by the constructor (ErrInvalidDensity).
func WithHouseDensity(p float64) Option {
	return func(c *config) {
		c.houseDensity = p
	}
}

// WithObstacleDensity sets the fraction of the cells left empty after house
// placement that become obstacles. Validated by the constructor.
func WithObstacleDensity(p float64) Option {
	return func(c *config) {
		c.obstacleDensity = p
	}
}

// WithMarkers sets the empty and house values written to the grid.
func WithMarkers(m grid.Markers) Option {
	return func(c *config) {
		c.markers = m
	}
}

// WithObstacleMarker sets the value written for obstacle cells.
func WithObstacleMarker(v int) Option {
	return func(c *config) {
		c.obstacle = v
	}
}

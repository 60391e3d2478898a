package gridgen

import (
	"fmt"
)

const (
	methodRandom  = "Random"
	methodCorners = "Corners"

	minCornersCells = 3
	densityMin      = 0.0
	densityMax      = 1.0
)

// Random returns a rows×cols grid. First int(rows·cols·houseDensity) cells
// are drawn as houses, then int(emptyLeft·obstacleDensity) of the remaining
// empty cells are drawn as obstacles; both draws are without replacement.
//
// Contract:
//   - rows ≥ 1 and cols ≥ 1 (else ErrTooSmall).
//   - densities in [0,1] (else ErrInvalidDensity).
//   - an RNG is required whenever a draw is a proper subset (else ErrNeedRandSource).
//
// Complexity: O(rows·cols) time and memory.
func Random(rows, cols int, opts ...Option) ([][]int, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%s: %dx%d: %w", methodRandom, rows, cols, ErrTooSmall)
	}
	cfg := newConfig(opts)
	if err := validate(methodRandom, cfg); err != nil {
		return nil, err
	}

	values := filled(rows, cols, cfg.markers.Empty)
	total := rows * cols

	all := make([]int, total)
	for i := range all {
		all[i] = i
	}
	houses, err := sample(cfg, all, int(float64(total)*cfg.houseDensity))
	if err != nil {
		return nil, fmt.Errorf("%s: houses: %w", methodRandom, err)
	}
	isHouse := make([]bool, total)
	for _, idx := range houses {
		isHouse[idx] = true
		values[idx/cols][idx%cols] = cfg.markers.House
	}

	if cfg.obstacleDensity > 0 {
		free := make([]int, 0, total-len(houses))
		for idx := 0; idx < total; idx++ {
			if !isHouse[idx] {
				free = append(free, idx)
			}
		}
		obstacles, err := sample(cfg, free, int(float64(len(free))*cfg.obstacleDensity))
		if err != nil {
			return nil, fmt.Errorf("%s: obstacles: %w", methodRandom, err)
		}
		for _, idx := range obstacles {
			values[idx/cols][idx%cols] = cfg.obstacle
		}
	}

	return values, nil
}

// Corners returns a rows×cols grid with houses at (0,0) and
// (rows-1, cols-1) and every other cell empty. Needs at least three cells
// so that the corners differ and one empty cell remains (else ErrTooSmall).
func Corners(rows, cols int, opts ...Option) ([][]int, error) {
	if rows < 1 || cols < 1 || rows*cols < minCornersCells {
		return nil, fmt.Errorf("%s: %dx%d: %w", methodCorners, rows, cols, ErrTooSmall)
	}
	cfg := newConfig(opts)
	if err := validate(methodCorners, cfg); err != nil {
		return nil, err
	}
	values := filled(rows, cols, cfg.markers.Empty)
	values[0][0] = cfg.markers.House
	values[rows-1][cols-1] = cfg.markers.House
	return values, nil
}

func validate(method string, cfg config) error {
	for _, p := range []float64{cfg.houseDensity, cfg.obstacleDensity} {
		if p < densityMin || p > densityMax {
			return fmt.Errorf("%s: density %.6f not in [%.1f,%.1f]: %w",
				method, p, densityMin, densityMax, ErrInvalidDensity)
		}
	}
	if cfg.obstacle == cfg.markers.Empty || cfg.obstacle == cfg.markers.House {
		return fmt.Errorf("%s: obstacle=%d: %w", method, cfg.obstacle, ErrMarkerConflict)
	}
	return nil
}

func filled(rows, cols, v int) [][]int {
	values := make([][]int, rows)
	for r := range values {
		row := make([]int, cols)
		for c := range row {
			row[c] = v
		}
		values[r] = row
	}
	return values
}

// sample draws k distinct elements of pool. k == 0 and k == len(pool) are
// deterministic and need no RNG.
func sample(cfg config, pool []int, k int) ([]int, error) {
	switch {
	case k <= 0:
		return nil, nil
	case k >= len(pool):
		return pool, nil
	case cfg.rng == nil:
		return nil, ErrNeedRandSource
	}
	perm := cfg.rng.Perm(len(pool))
	out := make([]int, k)
	for i := range out {
		out[i] = pool[perm[i]]
	}
	return out, nil
}

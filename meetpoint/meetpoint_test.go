package meetpoint_test

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/katalvlaran/meetgrid/grid"
	"github.com/katalvlaran/meetgrid/gridgen"
	"github.com/katalvlaran/meetgrid/meetpoint"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//----------------------------------------------------------------------------//
// Scenario Tests
//----------------------------------------------------------------------------//

// TestSolve_Scenarios covers the documented reference grids.
func TestSolve_Scenarios(t *testing.T) {
	cases := []struct {
		name string
		grid [][]int
		want int
	}{
		{"CanonicalWithObstacle", [][]int{
			{1, 0, 2, 0, 1},
			{0, 0, 0, 0, 0},
			{0, 0, 1, 0, 0},
		}, 7},
		{"SingleHouseNoEmpty", [][]int{{1}}, -1},
		{"HouseNextToEmpty", [][]int{{1, 0}}, 1},
		{"EnclosedEmpty", [][]int{
			{1, 2, 2, 2},
			{2, 2, 0, 2},
			{2, 2, 2, 2},
		}, -1},
		{"Linear", [][]int{{1, 0, 1, 0, 1}}, 5},
		{"SingleHouseCentre", [][]int{
			{0, 0, 0},
			{0, 1, 0},
			{0, 0, 0},
		}, 1},
		{"NoHouses", [][]int{{0, 0, 0}, {0, 0, 0}}, -1},
		{"NoEmptyLand", [][]int{
			{1, 2, 1},
			{2, 2, 2},
			{1, 2, 1},
		}, -1},
		{"UnreachableHouses", [][]int{
			{1, 2, 0},
			{2, 2, 0},
			{1, 2, 0},
		}, -1},
		{"OnlyEmptyIsolated", [][]int{
			{1, 2, 1},
			{2, 0, 2},
			{1, 2, 1},
		}, -1},
		{"Square4", [][]int{
			{1, 0, 0, 1},
			{0, 0, 0, 0},
			{0, 0, 0, 0},
			{1, 0, 0, 1},
		}, 12},
		{"Detour", [][]int{
			{1, 0, 2, 0, 1},
			{0, 2, 2, 2, 0},
			{0, 0, 0, 0, 0},
		}, 8},
		{"EmptyGrid", [][]int{}, -1},
		{"EmptyRow", [][]int{{}}, -1},
		{"Nil", nil, -1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, meetpoint.Solve(tc.grid))
		})
	}
}

// TestCompute_CanonicalResult checks the meeting cell and strategy as well.
func TestCompute_CanonicalResult(t *testing.T) {
	res, err := meetpoint.Compute([][]int{
		{1, 0, 2, 0, 1},
		{0, 0, 0, 0, 0},
		{0, 0, 1, 0, 0},
	})
	require.NoError(t, err)
	assert.Equal(t, meetpoint.Result{
		Distance: 7,
		Meeting:  grid.Point{Row: 1, Col: 2},
		Strategy: meetpoint.Reachability,
		Houses:   3,
	}, res)
	assert.True(t, res.Feasible())
}

// TestCompute_OppositeCorners matches the coordinate-wise median sum.
func TestCompute_OppositeCorners(t *testing.T) {
	for _, size := range [][2]int{{5, 5}, {2, 7}, {9, 4}, {1, 3}} {
		values, err := gridgen.Corners(size[0], size[1])
		require.NoError(t, err)

		res, err := meetpoint.Compute(values)
		require.NoError(t, err)
		assert.Equal(t, meetpoint.Separable, res.Strategy)
		assert.Equal(t, size[0]-1+size[1]-1, res.Distance, "%dx%d", size[0], size[1])

		g, err := grid.New(values)
		require.NoError(t, err)
		oracle, err := meetpoint.BruteForce(g)
		require.NoError(t, err)
		assert.Equal(t, oracle, withStrategy(res, oracle.Strategy))
	}
}

// TestSolve_Idempotent calls Solve twice on the same grid.
func TestSolve_Idempotent(t *testing.T) {
	values := [][]int{
		{1, 0, 2, 0, 1},
		{0, 2, 0, 0, 0},
		{0, 0, 1, 0, 2},
	}
	snapshot := [][]int{
		{1, 0, 2, 0, 1},
		{0, 2, 0, 0, 0},
		{0, 0, 1, 0, 2},
	}
	first := meetpoint.Solve(values)
	assert.Equal(t, first, meetpoint.Solve(values))
	assert.Equal(t, snapshot, values, "input must not be mutated")
}

//----------------------------------------------------------------------------//
// Error and Option Tests
//----------------------------------------------------------------------------//

// TestCompute_Errors covers malformed input and option misuse.
func TestCompute_Errors(t *testing.T) {
	_, err := meetpoint.Compute([][]int{{1, 0}, {0}})
	assert.ErrorIs(t, err, grid.ErrNonRectangular)
	assert.Equal(t, meetpoint.NoMeetingPoint, meetpoint.Solve([][]int{{1, 0}, {0}}))

	_, err = meetpoint.Compute([][]int{{1, 0}}, meetpoint.WithMarkers(grid.Markers{Empty: 4, House: 4}))
	assert.ErrorIs(t, err, grid.ErrMarkerConflict)

	_, err = meetpoint.Compute([][]int{{1, 0}}, meetpoint.WithStrategy(meetpoint.Strategy(42)))
	assert.ErrorIs(t, err, meetpoint.ErrOptionViolation)

	_, err = meetpoint.Compute([][]int{{1, 0}}, meetpoint.WithStrategy(meetpoint.None))
	assert.ErrorIs(t, err, meetpoint.ErrOptionViolation)

	_, err = meetpoint.Compute([][]int{{1, 2, 0}}, meetpoint.WithStrategy(meetpoint.Separable))
	assert.ErrorIs(t, err, meetpoint.ErrStrategyMismatch)

	_, err = meetpoint.Compute([][]int{{1, 0}},
		meetpoint.WithStrategy(meetpoint.Separable), meetpoint.WithHouseTransit(false))
	assert.ErrorIs(t, err, meetpoint.ErrStrategyMismatch)

	_, err = meetpoint.SolveGrid(nil)
	assert.ErrorIs(t, err, meetpoint.ErrNilGrid)

	_, err = meetpoint.BruteForce(nil)
	assert.ErrorIs(t, err, meetpoint.ErrNilGrid)
}

// TestCompute_CustomMarkers solves a grid written with other markers.
func TestCompute_CustomMarkers(t *testing.T) {
	res, err := meetpoint.Compute([][]int{
		{'H', '.', '#', '.', 'H'},
		{'.', '.', '.', '.', '.'},
		{'.', '.', 'H', '.', '.'},
	}, meetpoint.WithMarkers(grid.Markers{Empty: '.', House: 'H'}))
	require.NoError(t, err)
	assert.Equal(t, 7, res.Distance)
}

// TestCompute_ForcedReachability agrees with Separable on open grids.
func TestCompute_ForcedReachability(t *testing.T) {
	values := [][]int{
		{1, 0, 0, 1},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{1, 0, 0, 1},
	}
	fast, err := meetpoint.Compute(values, meetpoint.WithStrategy(meetpoint.Separable))
	require.NoError(t, err)
	slow, err := meetpoint.Compute(values, meetpoint.WithStrategy(meetpoint.Reachability))
	require.NoError(t, err)

	assert.Equal(t, meetpoint.Separable, fast.Strategy)
	assert.Equal(t, meetpoint.Reachability, slow.Strategy)
	assert.Equal(t, fast.Distance, slow.Distance)
	assert.Equal(t, fast.Meeting, slow.Meeting)
}

// TestCompute_HouseTransit shows houses blocking the only corridor once
// transit through houses is disabled.
func TestCompute_HouseTransit(t *testing.T) {
	values := [][]int{{1, 1, 0}}

	open, err := meetpoint.Compute(values)
	require.NoError(t, err)
	assert.Equal(t, 3, open.Distance)
	assert.Equal(t, meetpoint.Separable, open.Strategy)

	strict, err := meetpoint.Compute(values, meetpoint.WithHouseTransit(false))
	require.NoError(t, err)
	assert.Equal(t, meetpoint.NoMeetingPoint, strict.Distance)
	assert.Equal(t, meetpoint.Reachability, strict.Strategy)

	// A detour around the middle house keeps the strict variant feasible.
	detour, err := meetpoint.Compute([][]int{
		{1, 1, 0},
		{0, 0, 0},
	}, meetpoint.WithHouseTransit(false))
	require.NoError(t, err)
	assert.Equal(t, 3, detour.Distance, "(0,0) steps down, (0,1) walks around")
	assert.Equal(t, grid.Point{Row: 1, Col: 0}, detour.Meeting)
}

// TestCompute_DisconnectedHouses short-circuits before any solver runs.
func TestCompute_DisconnectedHouses(t *testing.T) {
	res, err := meetpoint.Compute([][]int{
		{1, 2, 1},
		{0, 2, 0},
	})
	require.NoError(t, err)
	assert.Equal(t, meetpoint.NoMeetingPoint, res.Distance)
	assert.Equal(t, meetpoint.None, res.Strategy)
	assert.Equal(t, 2, res.Houses)
	assert.Equal(t, grid.Point{Row: -1, Col: -1}, res.Meeting)
	assert.False(t, res.Feasible())
}

// TestCompute_Logger checks the dispatch trace reaches an injected logger.
func TestCompute_Logger(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	_, err := meetpoint.Compute([][]int{{1, 2, 0, 1}, {0, 0, 0, 0}}, meetpoint.WithLogger(logger))
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, `"strategy":"reachability"`)
	assert.Contains(t, out, `"meeting":"(0,2)"`)
	assert.Contains(t, out, `"message":"solved"`)

	buf.Reset()
	_, err = meetpoint.Compute([][]int{{0, 0}}, meetpoint.WithLogger(logger))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "no houses or no empty cells")
}

// TestParseStrategy round-trips the CLI names.
func TestParseStrategy(t *testing.T) {
	for in, want := range map[string]meetpoint.Strategy{
		"":             meetpoint.Auto,
		"auto":         meetpoint.Auto,
		"separable":    meetpoint.Separable,
		"reachability": meetpoint.Reachability,
		"bfs":          meetpoint.Reachability,
	} {
		got, err := meetpoint.ParseStrategy(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := meetpoint.ParseStrategy("dijkstra")
	assert.ErrorIs(t, err, meetpoint.ErrOptionViolation)

	assert.Equal(t, "separable", meetpoint.Separable.String())
	assert.Equal(t, "none", meetpoint.None.String())
	assert.Equal(t, "Strategy(9)", meetpoint.Strategy(9).String())
}

//----------------------------------------------------------------------------//
// Property Tests
//----------------------------------------------------------------------------//

// withStrategy copies r with its strategy replaced, so results of different
// algorithms can be compared field by field.
func withStrategy(r meetpoint.Result, s meetpoint.Strategy) meetpoint.Result {
	r.Strategy = s
	return r
}

// randomGrid draws a small grid with random shape and densities.
func randomGrid(t *testing.T, rng *rand.Rand, obstacles bool) [][]int {
	t.Helper()
	opts := []gridgen.Option{
		gridgen.WithRand(rng),
		gridgen.WithHouseDensity(0.05 + 0.4*rng.Float64()),
	}
	if obstacles {
		opts = append(opts, gridgen.WithObstacleDensity(0.5*rng.Float64()))
	}
	values, err := gridgen.Random(1+rng.Intn(10), 1+rng.Intn(10), opts...)
	require.NoError(t, err)
	return values
}

// TestProperty_BruteForceOracle compares the dispatcher with the oracle on
// random grids up to 10×10, in both house-transit modes.
func TestProperty_BruteForceOracle(t *testing.T) {
	rng := rand.New(rand.NewSource(2024))
	for i := 0; i < 400; i++ {
		values := randomGrid(t, rng, i%4 != 0)
		g, err := grid.New(values)
		require.NoError(t, err)

		for _, transit := range []bool{true, false} {
			got, err := meetpoint.SolveGrid(g, meetpoint.WithHouseTransit(transit))
			require.NoError(t, err)
			want, err := meetpoint.BruteForce(g, meetpoint.WithHouseTransit(transit))
			require.NoError(t, err)

			assert.Equal(t, want.Distance, got.Distance, "grid %v transit=%v", values, transit)
			if want.Feasible() {
				assert.Equal(t, want.Meeting, got.Meeting, "grid %v transit=%v", values, transit)
			}
		}
	}
}

// TestProperty_CrossValidation runs both strategies on obstacle-free grids.
func TestProperty_CrossValidation(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	checked := 0
	for i := 0; i < 300; i++ {
		values := randomGrid(t, rng, false)
		g, err := grid.New(values)
		require.NoError(t, err)
		if !g.Scan().Feasible() {
			continue
		}
		checked++

		fast, err := meetpoint.SolveGrid(g, meetpoint.WithStrategy(meetpoint.Separable))
		require.NoError(t, err)
		slow, err := meetpoint.SolveGrid(g, meetpoint.WithStrategy(meetpoint.Reachability))
		require.NoError(t, err)
		assert.Equal(t, fast, withStrategy(slow, meetpoint.Separable), "grid %v", values)
	}
	assert.Greater(t, checked, 100)
}

// TestProperty_NoHousesOrNoEmpty always yields NoMeetingPoint.
func TestProperty_NoHousesOrNoEmpty(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 100; i++ {
		rows, cols := 1+rng.Intn(8), 1+rng.Intn(8)
		values := make([][]int, rows)
		for r := range values {
			values[r] = make([]int, cols)
			for c := range values[r] {
				// Either no houses (0/2) or no empty cells (1/2).
				if i%2 == 0 {
					values[r][c] = 2 * rng.Intn(2)
				} else {
					values[r][c] = 1 + rng.Intn(2)
				}
			}
		}
		assert.Equal(t, meetpoint.NoMeetingPoint, meetpoint.Solve(values), "grid %v", values)
	}
}

// TestAxisMedianCost checks the median rule against exhaustive search.
func TestAxisMedianCost(t *testing.T) {
	assert.Equal(t, 0, meetpoint.AxisMedianCost(nil))
	assert.Equal(t, 0, meetpoint.AxisMedianCost([]int{5}))
	assert.Equal(t, 4, meetpoint.AxisMedianCost([]int{0, 4}))
	assert.Equal(t, 4, meetpoint.AxisMedianCost([]int{0, 2, 4}))

	rng := rand.New(rand.NewSource(99))
	for i := 0; i < 200; i++ {
		coords := make([]int, 1+rng.Intn(9))
		for j := range coords {
			coords[j] = rng.Intn(20) - 5
		}
		best := -1
		for v := -6; v <= 15; v++ {
			sum := 0
			for _, c := range coords {
				if c > v {
					sum += c - v
				} else {
					sum += v - c
				}
			}
			if best < 0 || sum < best {
				best = sum
			}
		}
		assert.Equal(t, best, meetpoint.AxisMedianCost(coords), "coords %v", coords)
	}

	in := []int{3, 1, 2}
	meetpoint.AxisMedianCost(in)
	assert.Equal(t, []int{3, 1, 2}, in, "input must not be reordered")
}

// Package grid models a rectangular 2-D map of houses, empty lots and
// obstacles, and provides the single-pass scanner used by the meeting-point
// solvers.
//
// What:
//
//   - Grid wraps a rectangular [][]int input, classifying every marker into a
//     CellKind (Empty, House, Obstacle) according to Markers.
//   - Scan collects house coordinates (row-major), obstacle presence and the
//     number of empty cells in one pass.
//   - Components finds 4-connected regions of cells accepted by a predicate.
//
// Encoding:
//
//   - Markers.Empty (default 0) marks an empty lot, a meeting-point candidate.
//   - Markers.House (default 1) marks a house.
//   - Any other value is an obstacle.
//
// Complexity:
//
//   - New:        O(R×C) time and memory.
//   - Scan:       O(R×C) time, O(H) memory.
//   - Components: O(R×C×4) time, O(R×C) memory.
//
// Errors:
//
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrMarkerConflict: Empty and House markers are equal.
//
// A grid with zero rows or zero columns is valid; it simply has no cells.
package grid

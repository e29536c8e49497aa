// Package patrol simulates the lab guard of day 6 ("Guard Gallivant"): a
// single agent stepping across a bounded 2D map, turning 90° clockwise
// whenever a wall blocks the cell ahead.
//
// What:
//
//   - Builder / Parse turn the puzzle text into an immutable Grid plus the
//     origin marked by '^' (the guard starts there facing up).
//   - Grid.Patrol walks the unobstructed route and collects every distinct
//     cell the guard stands on until it leaves the map.
//   - Grid.PatrolWithObstruction walks the same route with one extra wall
//     overlaid and reports whether the guard ends up in a cycle.
//   - CountLoopObstructions tries every cell of the baseline route (origin
//     excluded) as the extra wall and counts the placements that trap the
//     guard. Candidates can be evaluated sequentially or fanned out over a
//     bounded worker pool.
//
// Motion rule, applied until a terminal outcome:
//
//	ahead off-map  → Exited (no turn, no move)
//	ahead is wall  → turn right, stay in place
//	otherwise      → move one cell forward
//
// Complexity:
//
//   - Patrol:                 O(W×H) steps, Memory: O(W×H).
//   - PatrolWithObstruction:  O(W×H) steps (≤ 4·W·H), Memory: O(W×H).
//   - CountLoopObstructions:  O((W×H)²) worst case, parallel over candidates.
//
// Errors:
//
//   - ErrEmptyGrid: no rows, or a row with no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrInvalidCharacter: a character outside '#', '.', '^'.
//   - ErrMissingOrigin / ErrMultipleOrigins: the map must mark exactly one '^'.
//   - ErrBaselineLoop: the unobstructed route never leaves the map.
//   - ErrOptionViolation: an invalid search Option was supplied.
package patrol

// Package puzzle is the plumbing shared by every daily solver: the
// line-at-a-time Solver contract, the readers that feed input lines into it,
// and a Registry mapping (day, part) to a solver factory.
//
// What:
//
//   - Solver consumes one input line per ProcessLine call and reports a
//     single base-10 answer from Result.
//   - ProcessReader / ProcessFile / ProcessLines drive a Solver to completion.
//     The first failing line aborts the run; the error names the line number.
//   - Registry is a small catalogue used by the command line front end.
//
// Errors:
//
//   - ErrUnknownPuzzle: no solver registered for the requested key.
//   - ErrDuplicatePuzzle: a key was registered twice.
//   - ErrInvalidKey: day or part out of range.
package puzzle

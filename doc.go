// Package aoc2024 collects line-driven solvers for Advent of Code 2024,
// days 1 to 6, and the CLI that runs them.
//
// What is in here?
//
//	puzzle/    : Solver contract, registry keyed by (day, part), input feeding
//	patrol/    : day 6 guard patrol: grid builder, walker, loop-obstruction search
//	historian/ : day 1 list distance and similarity
//	reports/   : day 2 report safety, with and without the dampener
//	mull/      : day 3 corrupted-memory multiplications
//	ceres/     : day 4 word search
//	printqueue/: day 5 page ordering rules
//	config/    : YAML configuration with environment overrides
//	cmd/aoc/   : command-line entry point
//
// Every solver consumes its input one line at a time through ProcessLine and
// reports a single integer answer from Result:
//
//	s := patrol.NewLoopSolver(patrol.WithWorkers(0))
//	answer, err := puzzle.ProcessFile("input.txt", s)
//
// From the shell:
//
//	go run ./cmd/aoc solve 6 2 input.txt --progress --time
package aoc2024

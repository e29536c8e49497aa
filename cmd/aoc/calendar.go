package main

import (
	"github.com/katalvlaran/aoc2024/ceres"
	"github.com/katalvlaran/aoc2024/historian"
	"github.com/katalvlaran/aoc2024/mull"
	"github.com/katalvlaran/aoc2024/patrol"
	"github.com/katalvlaran/aoc2024/printqueue"
	"github.com/katalvlaran/aoc2024/puzzle"
	"github.com/katalvlaran/aoc2024/reports"
)

// newCalendar registers every solver. searchOpts configure day 6 part 2.
func newCalendar(searchOpts ...patrol.Option) *puzzle.Registry {
	r := puzzle.NewRegistry()
	add := func(day, part int, title string, f puzzle.Factory) {
		if err := r.Register(puzzle.Key{Day: day, Part: part}, title, f); err != nil {
			panic(err)
		}
	}

	add(1, 1, "Historian Hysteria", func() puzzle.Solver { return historian.NewDistanceSolver() })
	add(1, 2, "Historian Hysteria", func() puzzle.Solver { return historian.NewSimilaritySolver() })
	add(2, 1, "Red-Nosed Reports", func() puzzle.Solver { return reports.NewSafeSolver() })
	add(2, 2, "Red-Nosed Reports", func() puzzle.Solver { return reports.NewDampenedSolver() })
	add(3, 1, "Mull It Over", func() puzzle.Solver { return mull.NewSolver() })
	add(3, 2, "Mull It Over", func() puzzle.Solver { return mull.NewConditionalSolver() })
	add(4, 1, "Ceres Search", func() puzzle.Solver { return ceres.NewXMASSolver() })
	add(4, 2, "Ceres Search", func() puzzle.Solver { return ceres.NewCrossSolver() })
	add(5, 1, "Print Queue", func() puzzle.Solver { return printqueue.NewOrderedSolver() })
	add(5, 2, "Print Queue", func() puzzle.Solver { return printqueue.NewReorderSolver() })
	add(6, 1, "Guard Gallivant", func() puzzle.Solver { return patrol.NewVisitedSolver() })
	add(6, 2, "Guard Gallivant", func() puzzle.Solver { return patrol.NewLoopSolver(searchOpts...) })
	return r
}

// searchOptions maps the loaded configuration onto candidate search options.
// bar may be nil.
func searchOptions(bar *progressBar) []patrol.Option {
	opts := []patrol.Option{
		patrol.WithWorkers(cfg.Workers),
		patrol.WithLogger(logger),
	}
	if bar != nil {
		opts = append(opts,
			patrol.WithOnStart(bar.start),
			patrol.WithOnCandidate(func(patrol.Coordinate, bool) { bar.add() }))
	}
	return opts
}

package patrol

import (
	"slices"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// VisitedCount returns how many distinct cells the guard covers before
// leaving the unobstructed map.
// Returns ErrBaselineLoop if the plain route never exits.
// Complexity: O(W×H).
func VisitedCount(g *Grid) (int, error) {
	res := g.Patrol(Start(g.origin))
	if res.Outcome != Exited {
		return 0, ErrBaselineLoop
	}
	return len(res.Visited), nil
}

// Candidates returns the cells worth trying as an extra wall: every cell of
// the unobstructed route except the origin, in row-major order.
//
// A wall placed off the route never meets the guard, so it cannot change
// the outcome; the origin is excluded because the guard stands on it.
//
// Returns ErrBaselineLoop if the plain route never exits.
// Complexity: O(W×H · log(W×H)).
func Candidates(g *Grid) ([]Coordinate, error) {
	res := g.Patrol(Start(g.origin))
	if res.Outcome != Exited {
		return nil, ErrBaselineLoop
	}
	out := make([]Coordinate, 0, len(res.Visited))
	for c := range res.Visited {
		if c != g.origin {
			out = append(out, c)
		}
	}
	slices.SortFunc(out, func(a, b Coordinate) int {
		if a.Y != b.Y {
			return a.Y - b.Y
		}
		return a.X - b.X
	})
	return out, nil
}

// CountLoopObstructions counts the single extra walls that trap the guard in
// a cycle. Each candidate from Candidates is walked from the origin, facing
// up, with that candidate as the obstruction.
//
// Candidate walks share nothing but the read-only Grid, so with Workers > 1
// they are fanned out over a bounded errgroup; each walk writes only its own
// verdict slot and the count is a plain sum afterwards.
//
// Returns ErrOptionViolation for invalid options and ErrBaselineLoop if the
// plain route never exits.
// Complexity: O(C · W×H) time for C candidates, O(Workers · W×H) memory.
func CountLoopObstructions(g *Grid, opts ...Option) (int, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return 0, o.err
	}

	candidates, err := Candidates(g)
	if err != nil {
		return 0, err
	}
	start := Start(g.origin)
	o.Logger.Debug("candidate search started",
		zap.Int("candidates", len(candidates)),
		zap.Int("workers", o.Workers),
		zap.Int("width", g.Width),
		zap.Int("height", g.Height))
	o.OnStart(len(candidates))

	looped := make([]bool, len(candidates))
	evaluate := func(i int) {
		c := candidates[i]
		res := g.PatrolWithObstruction(start, c)
		looped[i] = res.Outcome == Looped
		o.OnCandidate(c, looped[i])
	}

	if o.Workers <= 1 {
		for i := range candidates {
			evaluate(i)
		}
	} else {
		var eg errgroup.Group
		eg.SetLimit(o.Workers)
		for i := range candidates {
			eg.Go(func() error {
				evaluate(i)
				return nil
			})
		}
		// walks cannot fail; Wait only joins the pool
		_ = eg.Wait()
	}

	count := 0
	for _, l := range looped {
		if l {
			count++
		}
	}
	o.Logger.Debug("candidate search finished", zap.Int("loops", count))
	return count, nil
}

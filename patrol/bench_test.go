package patrol_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/katalvlaran/aoc2024/patrol"
)

// benchMap builds a deterministic n×n map with roughly 1 wall in 12 cells and
// the origin in the middle. Seeds whose plain route loops are skipped.
func benchMap(b *testing.B, n int, seed int64) *patrol.Grid {
	b.Helper()
	rng := rand.New(rand.NewSource(seed))
	lines := make([]string, n)
	for y := 0; y < n; y++ {
		var sb strings.Builder
		for x := 0; x < n; x++ {
			switch {
			case x == n/2 && y == n/2:
				sb.WriteByte('^')
			case rng.Intn(12) == 0:
				sb.WriteByte('#')
			default:
				sb.WriteByte('.')
			}
		}
		lines[y] = sb.String()
	}
	g, err := patrol.Parse(lines)
	if err != nil {
		b.Fatalf("setup Parse failed: %v", err)
	}
	if _, err := patrol.VisitedCount(g); err != nil {
		b.Skipf("seed %d: %v", seed, err)
	}
	return g
}

// BenchmarkCountLoopObstructions_Sequential measures the reference search on
// a 130×130 map, the size of real puzzle input.
// Complexity: O(C·W×H)
func BenchmarkCountLoopObstructions_Sequential(b *testing.B) {
	g := benchMap(b, 130, 42)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = patrol.CountLoopObstructions(g)
	}
}

// BenchmarkCountLoopObstructions_Parallel measures the same search with one
// worker per CPU.
func BenchmarkCountLoopObstructions_Parallel(b *testing.B) {
	g := benchMap(b, 130, 42)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = patrol.CountLoopObstructions(g, patrol.WithWorkers(0))
	}
}

// BenchmarkPatrol measures a single baseline walk.
func BenchmarkPatrol(b *testing.B) {
	g := benchMap(b, 130, 42)
	start := patrol.Start(g.Origin())
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Patrol(start)
	}
}

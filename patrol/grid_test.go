package patrol_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2024/patrol"
)

// exampleMap is the 10×10 map from the puzzle statement.
var exampleMap = []string{
	"....#.....",
	".........#",
	"..........",
	"..#.......",
	".......#..",
	"..........",
	".#..^.....",
	"........#.",
	"#.........",
	"......#...",
}

//----------------------------------------------------------------------------//
// Builder / Parse
//----------------------------------------------------------------------------//

// TestParse_Errors verifies that Parse rejects every malformed map.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name  string
		lines []string
		err   error
	}{
		{"NoRows", nil, patrol.ErrEmptyGrid},
		{"EmptyFirstRow", []string{""}, patrol.ErrEmptyGrid},
		{"EmptyLaterRow", []string{"^.", ""}, patrol.ErrEmptyGrid},
		{"Ragged", []string{"^..", ".."}, patrol.ErrNonRectangular},
		{"InvalidCharacter", []string{"..X", ".^."}, patrol.ErrInvalidCharacter},
		{"NoOrigin", []string{"...", "#.."}, patrol.ErrMissingOrigin},
		{"TwoOrigins", []string{"^..", "..^"}, patrol.ErrMultipleOrigins},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := patrol.Parse(tc.lines)
			assert.Nil(t, g)
			assert.True(t, errors.Is(err, tc.err), "Parse(%q) error = %v; want %v", tc.lines, err, tc.err)
		})
	}
}

// TestParse_Example checks geometry and origin discovery on the example map.
func TestParse_Example(t *testing.T) {
	g, err := patrol.Parse(exampleMap)
	require.NoError(t, err)

	assert.Equal(t, 10, g.Width)
	assert.Equal(t, 10, g.Height)
	assert.Equal(t, 100, g.Cells())
	assert.Equal(t, patrol.Coordinate{X: 4, Y: 6}, g.Origin())

	tile, ok := g.At(patrol.Coordinate{X: 4, Y: 0})
	assert.True(t, ok)
	assert.Equal(t, patrol.Wall, tile)

	// the origin is ordinary floor
	tile, ok = g.At(g.Origin())
	assert.True(t, ok)
	assert.Equal(t, patrol.Open, tile)
}

// TestBuilder_InvalidLineLeavesStateUntouched ensures a rejected line does not
// leak a half-decoded row or origin into the builder.
func TestBuilder_InvalidLineLeavesStateUntouched(t *testing.T) {
	var b patrol.Builder
	require.NoError(t, b.AddLine("#."))
	require.ErrorIs(t, b.AddLine("^?"), patrol.ErrInvalidCharacter)

	_, err := b.Build()
	assert.ErrorIs(t, err, patrol.ErrMissingOrigin)

	require.NoError(t, b.AddLine(".^"))
	g, err := b.Build()
	require.NoError(t, err)
	assert.Equal(t, 2, g.Height)
	assert.Equal(t, patrol.Coordinate{X: 1, Y: 1}, g.Origin())
}

// TestInBounds checks InBounds on a 3×2 map.
func TestInBounds(t *testing.T) {
	g, err := patrol.Parse([]string{"#^.", "..#"})
	require.NoError(t, err)

	for _, c := range []patrol.Coordinate{{X: 0, Y: 0}, {X: 2, Y: 1}, {X: 1, Y: 1}} {
		assert.True(t, g.InBounds(c), "InBounds(%v)", c)
	}
	for _, c := range []patrol.Coordinate{{X: -1, Y: 0}, {X: 3, Y: 0}, {X: 1, Y: 2}, {X: 2, Y: -1}} {
		assert.False(t, g.InBounds(c), "InBounds(%v)", c)
		_, ok := g.At(c)
		assert.False(t, ok, "At(%v)", c)
	}
}

// TestGrid_String renders the map back to its input text.
func TestGrid_String(t *testing.T) {
	g, err := patrol.Parse([]string{"#^.", "..#"})
	require.NoError(t, err)
	assert.Equal(t, "#^.\n..#\n", g.String())
}

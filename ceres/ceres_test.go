package ceres_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2024/ceres"
	"github.com/katalvlaran/aoc2024/puzzle"
)

var example = []string{
	"MMMSXXMASM",
	"MSAMXMSMSA",
	"AMXSXMAAMM",
	"MSAMASMSMX",
	"XMASAMXAMM",
	"XXAMMXXAMA",
	"SMSMSASXSS",
	"SAXAMASAAA",
	"MAMMMXMMMM",
	"MXMXAXMASX",
}

func TestXMASSolver_Example(t *testing.T) {
	got, err := puzzle.ProcessLines(example, ceres.NewXMASSolver())
	require.NoError(t, err)
	assert.Equal(t, "18", got)
}

func TestCrossSolver_Example(t *testing.T) {
	got, err := puzzle.ProcessLines(example, ceres.NewCrossSolver())
	require.NoError(t, err)
	assert.Equal(t, "9", got)
}

// TestCrossSolver_Rotations accepts all four orientations and rejects
// crosses whose diagonals read MAM / SAS.
func TestCrossSolver_Rotations(t *testing.T) {
	cases := []struct {
		rows []string
		want string
	}{
		{[]string{"M.S", ".A.", "M.S"}, "1"},
		{[]string{"M.M", ".A.", "S.S"}, "1"},
		{[]string{"S.M", ".A.", "S.M"}, "1"},
		{[]string{"S.S", ".A.", "M.M"}, "1"},
		{[]string{"M.S", ".A.", "S.M"}, "0"},
		{[]string{"M.M", ".A.", "M.M"}, "0"},
	}
	for _, tc := range cases {
		got, err := puzzle.ProcessLines(tc.rows, ceres.NewCrossSolver())
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "%q", tc.rows)
	}
}

func TestXMASSolver_Directions(t *testing.T) {
	got, err := puzzle.ProcessLines([]string{"XMASAMX"}, ceres.NewXMASSolver())
	require.NoError(t, err)
	assert.Equal(t, "2", got)

	got, err = puzzle.ProcessLines([]string{"X...", ".M..", "..A.", "...S"}, ceres.NewXMASSolver())
	require.NoError(t, err)
	assert.Equal(t, "1", got)
}

func TestSolver_Errors(t *testing.T) {
	_, err := ceres.NewXMASSolver().Result()
	assert.ErrorIs(t, err, ceres.ErrEmptyGrid)

	_, err = puzzle.ProcessLines([]string{"XMAS", "XM"}, ceres.NewCrossSolver())
	assert.ErrorIs(t, err, ceres.ErrNonRectangular)
}

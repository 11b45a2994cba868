package domain

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// boardFromRows builds a board from top-to-bottom row strings; '.' is empty.
func boardFromRows(t *testing.T, rows ...string) *Board {
	t.Helper()
	require.Len(t, rows, Rows)

	b := NewBoard()
	for r, line := range rows {
		require.Len(t, line, Columns, "row %d", r)
		for c, ch := range line {
			if ch != '.' {
				b.grid[r][c] = Symbol(ch)
			}
		}
	}
	return b
}

func TestIsValidMoveOnEmptyBoard(t *testing.T) {
	b := NewBoard()
	for c := 0; c < Columns; c++ {
		assert.True(t, b.IsValidMove(c), "column %d", c)
	}
	assert.False(t, b.IsValidMove(-1))
	assert.False(t, b.IsValidMove(Columns))
}

func TestMakeMoveFillsColumnFromBottom(t *testing.T) {
	b := NewBoard()
	for i := 0; i < Rows; i++ {
		require.True(t, b.MakeMove(0, 'X'), "drop %d", i)
		assert.Equal(t, Symbol('X'), b.Cell(Rows-1-i, 0))
	}

	before := b.Grid()
	assert.False(t, b.MakeMove(0, 'X'))
	assert.False(t, b.IsValidMove(0))
	if diff := cmp.Diff(before, b.Grid()); diff != "" {
		t.Errorf("full column drop changed the grid (-before +after):\n%s", diff)
	}
}

func TestDropReportsLandingRowAndErrors(t *testing.T) {
	b := NewBoard()

	row, err := b.Drop(4, 'O')
	require.NoError(t, err)
	assert.Equal(t, Rows-1, row)

	row, err = b.Drop(4, 'X')
	require.NoError(t, err)
	assert.Equal(t, Rows-2, row)

	_, err = b.Drop(-1, 'X')
	assert.ErrorIs(t, err, ErrColumnOutOfRange)
	_, err = b.Drop(Columns, 'X')
	assert.ErrorIs(t, err, ErrColumnOutOfRange)
	_, err = b.Drop(2, Empty)
	assert.ErrorIs(t, err, ErrInvalidSymbol)
	assert.False(t, b.MakeMove(9, 'X'))
}

func TestColumnsStayContiguous(t *testing.T) {
	b := NewBoard()
	cols := []int{3, 3, 2, 6, 3, 0, 2, 6, 6, 1, 3}
	for i, c := range cols {
		sym := Symbol('X')
		if i%2 == 1 {
			sym = 'O'
		}
		require.True(t, b.MakeMove(c, sym))
	}

	for c := 0; c < Columns; c++ {
		seenEmpty := false
		for r := Rows - 1; r >= 0; r-- {
			if b.Cell(r, c) == Empty {
				seenEmpty = true
				continue
			}
			assert.False(t, seenEmpty, "floating token at row %d column %d", r, c)
		}
	}
}

func TestLandingRowAndValidMoves(t *testing.T) {
	b := boardFromRows(t,
		"X......",
		"O......",
		"X......",
		"O......",
		"X....O.",
		"O...XX.",
	)

	assert.Equal(t, -1, b.LandingRow(0))
	assert.Equal(t, Rows-1, b.LandingRow(1))
	assert.Equal(t, Rows-2, b.LandingRow(4))
	assert.Equal(t, Rows-3, b.LandingRow(5))
	assert.Equal(t, -1, b.LandingRow(Columns))
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, b.ValidMoves())
}

func TestCopyIsIndependent(t *testing.T) {
	b := NewBoard()
	b.MakeMove(3, 'X')

	c := b.Copy()
	c.MakeMove(3, 'O')

	assert.Equal(t, Empty, b.Cell(Rows-2, 3))
	assert.Equal(t, Symbol('O'), c.Cell(Rows-2, 3))
	assert.Equal(t, Empty, b.Cell(-1, 0))
}

func TestIsFull(t *testing.T) {
	b := NewBoard()
	assert.False(t, b.IsFull())

	full := boardFromRows(t,
		"XOXOXOX",
		"XOXOXOX",
		"OXOXOXO",
		"OXOXOXO",
		"XOXOXOX",
		"OXOXOXO",
	)
	assert.True(t, full.IsFull())
	assert.Empty(t, full.ValidMoves())

	full.grid[0][6] = Empty
	assert.False(t, full.IsFull())
}

func TestRender(t *testing.T) {
	b := NewBoard()
	b.MakeMove(0, 'X')
	b.MakeMove(6, 'O')

	lines := strings.Split(strings.TrimSuffix(b.String(), "\n"), "\n")
	require.Len(t, lines, Rows+2)
	assert.Equal(t, "|   |   |   |   |   |   |   |", lines[0])
	assert.Equal(t, "| X |   |   |   |   |   | O |", lines[Rows-1])
	assert.Equal(t, strings.Repeat("-", 29), lines[Rows])
	assert.Equal(t, "  1   2   3   4   5   6   7", strings.TrimRight(lines[Rows+1], " "))
}

package domain

import (
	"fmt"
	"io"
	"strings"
)

// Board is the 6x7 grid. Row 0 is the top row, Rows-1 the bottom one.
// Occupied cells of a column always form a contiguous block from the bottom.
type Board struct {
	grid [Rows][Columns]Symbol
}

func NewBoard() *Board {
	return &Board{}
}

func (b *Board) IsValidMove(column int) bool {
	if column < 0 || column >= Columns {
		return false
	}

	// row 0 is the top, so a free top cell means the column has room
	return b.grid[0][column] == Empty
}

// Drop places symbol in the lowest empty cell of column and returns its row.
func (b *Board) Drop(column int, symbol Symbol) (int, error) {
	if symbol == Empty {
		return -1, ErrInvalidSymbol
	}
	if column < 0 || column >= Columns {
		return -1, ErrColumnOutOfRange
	}

	for row := Rows - 1; row >= 0; row-- {
		if b.grid[row][column] == Empty {
			b.grid[row][column] = symbol
			return row, nil
		}
	}

	return -1, ErrColumnFull
}

// MakeMove is Drop without the details. A full column leaves the board untouched.
func (b *Board) MakeMove(column int, symbol Symbol) bool {
	_, err := b.Drop(column, symbol)
	return err == nil
}

func (b *Board) IsFull() bool {
	for c := 0; c < Columns; c++ {
		if b.IsValidMove(c) {
			return false
		}
	}

	return true
}

// LandingRow reports the row a token dropped into column would settle in,
// or -1 if the column is full or out of range.
func (b *Board) LandingRow(column int) int {
	if !b.IsValidMove(column) {
		return -1
	}
	for row := Rows - 1; row >= 0; row-- {
		if b.grid[row][column] == Empty {
			return row
		}
	}
	return -1
}

func (b *Board) ValidMoves() []int {
	validMoves := []int{}
	for col := 0; col < Columns; col++ {
		if b.IsValidMove(col) {
			validMoves = append(validMoves, col)
		}
	}
	return validMoves
}

// Cell returns Empty for coordinates outside the grid.
func (b *Board) Cell(row, column int) Symbol {
	if !inBounds(row, column) {
		return Empty
	}
	return b.grid[row][column]
}

// Grid returns a snapshot; mutating it does not affect the board.
func (b *Board) Grid() [Rows][Columns]Symbol {
	return b.grid
}

func (b *Board) Copy() *Board {
	return &Board{grid: b.grid}
}

// Render writes the grid top to bottom followed by a 1-based column legend.
func (b *Board) Render(w io.Writer) error {
	var sb strings.Builder
	for row := 0; row < Rows; row++ {
		sb.WriteString("|")
		for col := 0; col < Columns; col++ {
			fmt.Fprintf(&sb, " %s |", b.grid[row][col])
		}
		sb.WriteString("\n")
	}
	sb.WriteString(strings.Repeat("-", Columns*4+1))
	sb.WriteString("\n")
	for col := 1; col <= Columns; col++ {
		fmt.Fprintf(&sb, "  %d ", col)
	}
	sb.WriteString("\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

func (b *Board) String() string {
	var sb strings.Builder
	_ = b.Render(&sb)
	return sb.String()
}

func inBounds(row, col int) bool {
	return row >= 0 && row < Rows && col >= 0 && col < Columns
}

package domain

// the four run directions: horizontal, vertical, diagonal \ and diagonal /
var directions = [4][2]int{
	{0, 1},
	{1, 0},
	{1, 1},
	{1, -1},
}

// CheckWin scans every anchor cell for a run of ToWin consecutive symbols.
// It should only be asked about the player who just moved.
func (b *Board) CheckWin(symbol Symbol) bool {
	if symbol == Empty {
		return false
	}

	for row := 0; row < Rows; row++ {
		for col := 0; col < Columns; col++ {
			if b.grid[row][col] != symbol {
				continue
			}
			for _, dir := range directions {
				if b.runFrom(row, col, dir[0], dir[1], symbol) {
					return true
				}
			}
		}
	}

	return false
}

// runFrom reports whether ToWin cells starting at (row, col) in the given
// direction all hold symbol. Runs that would leave the grid never match.
func (b *Board) runFrom(row, col, deltaRow, deltaCol int, symbol Symbol) bool {
	endRow := row + deltaRow*(ToWin-1)
	endCol := col + deltaCol*(ToWin-1)
	if !inBounds(endRow, endCol) {
		return false
	}

	for i := 0; i < ToWin; i++ {
		if b.grid[row+deltaRow*i][col+deltaCol*i] != symbol {
			return false
		}
	}
	return true
}

package domain

// Symbol is the token a player drops into the grid. The zero value marks an
// empty cell.
type Symbol rune

const Empty Symbol = 0

func (s Symbol) String() string {
	if s == Empty {
		return " "
	}
	return string(rune(s))
}

const (
	Rows    = 6
	Columns = 7
	ToWin   = 4
)

// to represent the game status
type GameStatus string

const (
	StatusInProgress GameStatus = "in_progress"
	StatusPlayerAWon GameStatus = "player_a_won"
	StatusPlayerBWon GameStatus = "player_b_won"
	StatusDraw       GameStatus = "draw"
)

func (s GameStatus) IsTerminal() bool {
	return s == StatusPlayerAWon || s == StatusPlayerBWon || s == StatusDraw
}

// Move is a single applied drop.
type Move struct {
	Column int
	Row    int
	Symbol Symbol
}

// basic error that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrInvalidMove      Error = "invalid move"
	ErrColumnFull       Error = "column is full"
	ErrColumnOutOfRange Error = "column is out of range"
	ErrNotANumber       Error = "input is not a number"
	ErrInvalidSymbol    Error = "invalid symbol"
	ErrBoardFull        Error = "board is full"
	ErrGameOver         Error = "game is already over"
	ErrInputClosed      Error = "input closed"
	ErrTooManyFailures  Error = "too many consecutive internal errors"
)

package player

import (
	"context"
	"math/rand"
	"time"

	"github.com/iamasit07/4-in-a-row/console/internal/domain"
)

const centerColumn = domain.Columns / 2

// Computer always takes the center column while it is open and otherwise
// picks uniformly among the open columns. No lookahead.
type Computer struct {
	Info
	rng *rand.Rand
}

// NewComputer uses rng for the random fallback; nil seeds one from the clock.
func NewComputer(name string, symbol domain.Symbol, rng *rand.Rand) *Computer {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Computer{Info: NewInfo(name, symbol), rng: rng}
}

func (c *Computer) GetMove(_ context.Context, board *domain.Board) (int, error) {
	if board.IsValidMove(centerColumn) {
		return centerColumn, nil
	}

	validColumns := board.ValidMoves()
	if len(validColumns) == 0 {
		return -1, domain.ErrBoardFull
	}

	return validColumns[c.rng.Intn(len(validColumns))], nil
}

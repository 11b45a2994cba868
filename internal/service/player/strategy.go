// Package player holds the move-selection strategies: a Human that asks an
// input provider and a Computer that uses a fixed heuristic.
package player

import (
	"context"

	"github.com/iamasit07/4-in-a-row/console/internal/domain"
)

// Strategy picks the column for the next move. A returned column always
// satisfies board.IsValidMove when err is nil.
type Strategy interface {
	Name() string
	Symbol() domain.Symbol
	GetMove(ctx context.Context, board *domain.Board) (int, error)
}

// Info is the immutable identity shared by every strategy.
type Info struct {
	name   string
	symbol domain.Symbol
}

func NewInfo(name string, symbol domain.Symbol) Info {
	return Info{name: name, symbol: symbol}
}

func (i Info) Name() string          { return i.name }
func (i Info) Symbol() domain.Symbol { return i.symbol }

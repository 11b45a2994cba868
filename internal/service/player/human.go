package player

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/iamasit07/4-in-a-row/console/internal/domain"
)

// Prompt tells the input provider whose turn it is.
type Prompt struct {
	PlayerName string
	Symbol     domain.Symbol
}

// InputProvider supplies raw column tokens (1-based) and receives the reason
// whenever one is rejected.
type InputProvider interface {
	RequestColumn(ctx context.Context, prompt Prompt) (string, error)
	Reject(prompt Prompt, reason error)
}

type Human struct {
	Info
	input InputProvider
}

func NewHuman(name string, symbol domain.Symbol, input InputProvider) *Human {
	return &Human{Info: NewInfo(name, symbol), input: input}
}

// GetMove keeps asking until the provider returns a playable column. There is
// no retry limit; only a provider error ends the loop early.
func (h *Human) GetMove(ctx context.Context, board *domain.Board) (int, error) {
	prompt := Prompt{PlayerName: h.Name(), Symbol: h.Symbol()}

	for {
		if err := ctx.Err(); err != nil {
			return -1, err
		}

		raw, err := h.input.RequestColumn(ctx, prompt)
		if err != nil {
			return -1, fmt.Errorf("reading column for %s: %w", h.Name(), err)
		}

		column, reason := ParseColumn(raw, board)
		if reason == nil {
			return column, nil
		}
		h.input.Reject(prompt, reason)
	}
}

// ParseColumn converts a 1-based user token into a 0-based column playable on
// board. The error is one of domain.ErrNotANumber, domain.ErrColumnOutOfRange
// or domain.ErrColumnFull.
func ParseColumn(raw string, board *domain.Board) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return -1, domain.ErrNotANumber
	}
	if n < 1 || n > domain.Columns {
		return -1, domain.ErrColumnOutOfRange
	}

	column := n - 1
	if !board.IsValidMove(column) {
		return -1, domain.ErrColumnFull
	}
	return column, nil
}

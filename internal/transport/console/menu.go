package console

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/iamasit07/4-in-a-row/console/internal/domain"
	"github.com/iamasit07/4-in-a-row/console/internal/service/game"
	"go.uber.org/zap"
)

// GameStarter runs one complete game for the chosen mode.
type GameStarter interface {
	Play(ctx context.Context, mode game.Mode) (domain.GameStatus, error)
}

// Menu is the session selector shown between games.
type Menu struct {
	console *Console
	games   GameStarter
	logger  *zap.Logger
}

func NewMenu(c *Console, games GameStarter, logger *zap.Logger) *Menu {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Menu{console: c, games: games, logger: logger}
}

// Run shows the menu until the user exits or input ends. A game that fails
// is reported and the menu is shown again.
func (m *Menu) Run(ctx context.Context) error {
	for {
		m.console.Announce("\n=== Connect Four ===")
		m.console.Announce("1. Human vs Human")
		m.console.Announce("2. Human vs Computer")
		m.console.Announce("3. Exit")

		choice, err := m.console.Ask(ctx, "Choose an option: ")
		if errors.Is(err, domain.ErrInputClosed) {
			return nil
		}
		if err != nil {
			return err
		}

		var mode game.Mode
		switch strings.TrimSpace(choice) {
		case "1":
			mode = game.ModeHumanVsHuman
		case "2":
			mode = game.ModeHumanVsComputer
		case "3":
			m.console.Announce("Goodbye!")
			return nil
		default:
			m.console.Announce("Invalid choice. Please enter 1, 2 or 3.")
			continue
		}

		if err := m.PlayOnce(ctx, mode); err != nil {
			if errors.Is(err, domain.ErrInputClosed) {
				return nil
			}
			return err
		}
	}
}

// PlayOnce runs a single game. Only input closure and cancellation are
// returned; other failures are reported to the player.
func (m *Menu) PlayOnce(ctx context.Context, mode game.Mode) error {
	status, err := m.games.Play(ctx, mode)
	switch {
	case err == nil:
		m.logger.Info("game over", zap.Stringer("mode", mode), zap.String("status", string(status)))
		return nil
	case errors.Is(err, domain.ErrInputClosed), errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	default:
		m.logger.Error("game aborted", zap.Stringer("mode", mode), zap.Error(err))
		m.console.Announce(fmt.Sprintf("Game aborted: %v", err))
		return nil
	}
}

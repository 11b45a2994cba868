package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/iamasit07/4-in-a-row/console/internal/domain"
	"github.com/iamasit07/4-in-a-row/console/internal/service/player"
	"github.com/iamasit07/4-in-a-row/console/pkg/uid"
	"go.uber.org/zap"
)

// Display receives board renders and win/draw/error announcements.
type Display interface {
	Render(board *domain.Board)
	Announce(message string)
}

type TurnOutcome int

const (
	TurnSuccess TurnOutcome = iota
	TurnInvalidMove
	TurnInternalError
)

func (o TurnOutcome) String() string {
	switch o {
	case TurnSuccess:
		return "success"
	case TurnInvalidMove:
		return "invalid_move"
	case TurnInternalError:
		return "internal_error"
	default:
		return "unknown"
	}
}

// TurnResult is what a single PlayTurn call produced. Only TurnSuccess
// changes the engine state.
type TurnResult struct {
	Outcome TurnOutcome
	Move    domain.Move
	Err     error
}

// Engine drives one game between two strategies. It owns its board.
type Engine struct {
	GameID string

	board     *domain.Board
	players   [2]player.Strategy
	current   int
	status    domain.GameStatus
	moves     []domain.Move
	display   Display
	logger    *zap.Logger
	maxFaults int
}

type Option func(*Engine)

// WithMaxInternalErrors stops Run after n consecutive internal errors on the
// same turn. Rejected moves are not counted. Zero retries forever.
func WithMaxInternalErrors(n int) Option {
	return func(e *Engine) { e.maxFaults = n }
}

func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewEngine starts a game with playerA to move first. The two symbols must differ.
func NewEngine(playerA, playerB player.Strategy, display Display, opts ...Option) (*Engine, error) {
	if playerA == nil || playerB == nil {
		return nil, fmt.Errorf("two players are required")
	}
	if display == nil {
		return nil, fmt.Errorf("a display is required")
	}
	if playerA.Symbol() == domain.Empty || playerB.Symbol() == domain.Empty {
		return nil, domain.ErrInvalidSymbol
	}
	if playerA.Symbol() == playerB.Symbol() {
		return nil, fmt.Errorf("players share symbol %q: %w", playerA.Symbol(), domain.ErrInvalidSymbol)
	}

	e := &Engine{
		GameID:  uid.GenerateGameID(),
		board:   domain.NewBoard(),
		players: [2]player.Strategy{playerA, playerB},
		status:  domain.StatusInProgress,
		display: display,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.logger = e.logger.With(zap.String("game_id", e.GameID))

	return e, nil
}

func (e *Engine) Board() *domain.Board           { return e.board }
func (e *Engine) Status() domain.GameStatus      { return e.status }
func (e *Engine) CurrentPlayer() player.Strategy { return e.players[e.current] }
func (e *Engine) MoveCount() int                 { return len(e.moves) }
func (e *Engine) IsFinished() bool               { return e.status.IsTerminal() }

func (e *Engine) Moves() []domain.Move {
	out := make([]domain.Move, len(e.moves))
	copy(out, e.moves)
	return out
}

// Winner returns the winning strategy, or nil while in progress or on a draw.
func (e *Engine) Winner() player.Strategy {
	switch e.status {
	case domain.StatusPlayerAWon:
		return e.players[0]
	case domain.StatusPlayerBWon:
		return e.players[1]
	}
	return nil
}

// Run plays turns until the game ends. Failed turns are retried with the same
// player. It returns early on context cancellation, a closed input, or when
// the internal error limit is reached.
func (e *Engine) Run(ctx context.Context) (domain.GameStatus, error) {
	e.logger.Info("game started",
		zap.String("player_a", e.players[0].Name()),
		zap.String("player_b", e.players[1].Name()),
	)

	faults := 0
	for !e.IsFinished() {
		if err := ctx.Err(); err != nil {
			return e.status, err
		}

		e.display.Render(e.board)
		result := e.PlayTurn(ctx)

		switch result.Outcome {
		case TurnSuccess:
			faults = 0
		case TurnInvalidMove:
			e.logger.Warn("rejected move",
				zap.String("player", e.CurrentPlayer().Name()),
				zap.Int("column", result.Move.Column),
				zap.Error(result.Err),
			)
			e.display.Announce(fmt.Sprintf("Invalid move by %s: %v. Try again.", e.CurrentPlayer().Name(), result.Err))
		case TurnInternalError:
			if errors.Is(result.Err, domain.ErrInputClosed) || errors.Is(result.Err, context.Canceled) || errors.Is(result.Err, context.DeadlineExceeded) {
				e.logger.Info("game abandoned", zap.Error(result.Err))
				return e.status, result.Err
			}

			faults++
			e.logger.Error("turn failed",
				zap.String("player", e.CurrentPlayer().Name()),
				zap.Int("attempt", faults),
				zap.Error(result.Err),
			)
			e.display.Announce(fmt.Sprintf("An internal error occurred: %v", result.Err))
			if err := e.checkFaults(faults); err != nil {
				return e.status, err
			}
		}
	}

	e.display.Render(e.board)
	if winner := e.Winner(); winner != nil {
		e.display.Announce(fmt.Sprintf("%s wins!", winner.Name()))
	} else {
		e.display.Announce("It's a draw!")
	}

	e.logger.Info("game finished",
		zap.String("status", string(e.status)),
		zap.Int("moves", len(e.moves)),
	)
	return e.status, nil
}

// checkFaults applies the consecutive internal error limit.
func (e *Engine) checkFaults(faults int) error {
	if e.maxFaults > 0 && faults >= e.maxFaults {
		return fmt.Errorf("%s's turn failed %d times: %w", e.CurrentPlayer().Name(), faults, domain.ErrTooManyFailures)
	}
	return nil
}

// PlayTurn asks the current player for a column and applies it. A panic in
// the strategy is reported as TurnInternalError.
func (e *Engine) PlayTurn(ctx context.Context) (result TurnResult) {
	if e.IsFinished() {
		return TurnResult{Outcome: TurnInvalidMove, Move: domain.Move{Column: -1, Row: -1}, Err: domain.ErrGameOver}
	}

	mover := e.players[e.current]
	defer func() {
		if r := recover(); r != nil {
			result = TurnResult{
				Outcome: TurnInternalError,
				Move:    domain.Move{Column: -1, Row: -1, Symbol: mover.Symbol()},
				Err:     fmt.Errorf("strategy %s panicked: %v", mover.Name(), r),
			}
		}
	}()

	column, err := mover.GetMove(ctx, e.board)
	if err != nil {
		return TurnResult{
			Outcome: TurnInternalError,
			Move:    domain.Move{Column: -1, Row: -1, Symbol: mover.Symbol()},
			Err:     err,
		}
	}

	row, err := e.board.Drop(column, mover.Symbol())
	if err != nil {
		return TurnResult{
			Outcome: TurnInvalidMove,
			Move:    domain.Move{Column: column, Row: -1, Symbol: mover.Symbol()},
			Err:     fmt.Errorf("%w: %w", domain.ErrInvalidMove, err),
		}
	}

	move := domain.Move{Column: column, Row: row, Symbol: mover.Symbol()}
	e.moves = append(e.moves, move)
	e.logger.Debug("move applied",
		zap.String("player", mover.Name()),
		zap.Int("column", column),
		zap.Int("row", row),
	)

	if e.board.CheckWin(mover.Symbol()) {
		if e.current == 0 {
			e.status = domain.StatusPlayerAWon
		} else {
			e.status = domain.StatusPlayerBWon
		}
		return TurnResult{Outcome: TurnSuccess, Move: move}
	}

	if e.board.IsFull() {
		e.status = domain.StatusDraw
		return TurnResult{Outcome: TurnSuccess, Move: move}
	}

	e.current = 1 - e.current
	return TurnResult{Outcome: TurnSuccess, Move: move}
}

package game

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/iamasit07/4-in-a-row/console/internal/config"
	"github.com/iamasit07/4-in-a-row/console/internal/domain"
	"github.com/iamasit07/4-in-a-row/console/internal/service/player"
	"go.uber.org/zap"
)

// Mode selects the pair of strategies for a new game.
type Mode int

const (
	ModeHumanVsHuman Mode = iota + 1
	ModeHumanVsComputer
)

func (m Mode) String() string {
	switch m {
	case ModeHumanVsHuman:
		return "human-vs-human"
	case ModeHumanVsComputer:
		return "human-vs-computer"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "hvh", "human-vs-human":
		return ModeHumanVsHuman, nil
	case "2", "hvc", "human-vs-computer":
		return ModeHumanVsComputer, nil
	default:
		return 0, fmt.Errorf("unknown game mode %q", s)
	}
}

// Service is the entry point for starting games (facade)
type Service struct {
	Config  *config.Config
	Input   player.InputProvider
	Display Display
	rng     *rand.Rand
	logger  *zap.Logger
}

func NewService(cfg *config.Config, input player.InputProvider, display Display, logger *zap.Logger) *Service {
	seed := cfg.RandomSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Service{
		Config:  cfg,
		Input:   input,
		Display: display,
		rng:     rand.New(rand.NewSource(seed)),
		logger:  logger,
	}
}

// NewEngine builds a fresh game for mode. Player A always moves first.
func (s *Service) NewEngine(mode Mode) (*Engine, error) {
	symbolA, _ := utf8.DecodeRuneInString(s.Config.PlayerASymbol)
	symbolB, _ := utf8.DecodeRuneInString(s.Config.PlayerBSymbol)

	playerA := player.NewHuman(s.Config.PlayerAName, domain.Symbol(symbolA), s.Input)

	var playerB player.Strategy
	switch mode {
	case ModeHumanVsHuman:
		playerB = player.NewHuman(s.Config.PlayerBName, domain.Symbol(symbolB), s.Input)
	case ModeHumanVsComputer:
		playerB = player.NewComputer(s.Config.ComputerName, domain.Symbol(symbolB), s.rng)
	default:
		return nil, fmt.Errorf("unknown game mode %d", int(mode))
	}

	engine, err := NewEngine(playerA, playerB, s.Display,
		WithMaxInternalErrors(s.Config.MaxInternalErrors),
		WithLogger(s.logger.Named("engine")),
	)
	if err != nil {
		return nil, err
	}

	s.logger.Info("created game",
		zap.String("game_id", engine.GameID),
		zap.Stringer("mode", mode),
	)
	return engine, nil
}

// Play builds and runs a single game.
func (s *Service) Play(ctx context.Context, mode Mode) (domain.GameStatus, error) {
	engine, err := s.NewEngine(mode)
	if err != nil {
		return "", err
	}
	return engine.Run(ctx)
}

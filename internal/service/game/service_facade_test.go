package game

import (
	"context"
	"testing"

	"github.com/iamasit07/4-in-a-row/console/internal/config"
	"github.com/iamasit07/4-in-a-row/console/internal/domain"
	"github.com/iamasit07/4-in-a-row/console/internal/service/player"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type queuedInput struct {
	tokens []string
}

func (q *queuedInput) RequestColumn(context.Context, player.Prompt) (string, error) {
	if len(q.tokens) == 0 {
		return "", domain.ErrInputClosed
	}
	tok := q.tokens[0]
	q.tokens = q.tokens[1:]
	return tok, nil
}

func (q *queuedInput) Reject(player.Prompt, error) {}

func testConfig() *config.Config {
	return &config.Config{
		PlayerAName:       "Ada",
		PlayerBName:       "Bob",
		ComputerName:      "Hal",
		PlayerASymbol:     "X",
		PlayerBSymbol:     "O",
		RandomSeed:        99,
		MaxInternalErrors: 2,
	}
}

func TestParseMode(t *testing.T) {
	for _, s := range []string{"1", "hvh", "Human-vs-Human "} {
		m, err := ParseMode(s)
		require.NoError(t, err, s)
		assert.Equal(t, ModeHumanVsHuman, m)
	}
	for _, s := range []string{"2", "HVC", "human-vs-computer"} {
		m, err := ParseMode(s)
		require.NoError(t, err, s)
		assert.Equal(t, ModeHumanVsComputer, m)
	}
	_, err := ParseMode("3")
	assert.Error(t, err)
	assert.Equal(t, "human-vs-computer", ModeHumanVsComputer.String())
}

func TestServiceNewEngineHumanVsComputer(t *testing.T) {
	svc := NewService(testConfig(), &queuedInput{}, &recordingDisplay{}, nil)

	e, err := svc.NewEngine(ModeHumanVsComputer)
	require.NoError(t, err)

	a := e.CurrentPlayer()
	assert.IsType(t, &player.Human{}, a)
	assert.Equal(t, "Ada", a.Name())
	assert.Equal(t, domain.Symbol('X'), a.Symbol())

	e.current = 1
	b := e.CurrentPlayer()
	assert.IsType(t, &player.Computer{}, b)
	assert.Equal(t, "Hal", b.Name())
	assert.Equal(t, domain.Symbol('O'), b.Symbol())
}

func TestServiceNewEngineUnknownMode(t *testing.T) {
	svc := NewService(testConfig(), &queuedInput{}, &recordingDisplay{}, nil)
	_, err := svc.NewEngine(Mode(42))
	assert.Error(t, err)
}

func TestServicePlayHumanVsComputer(t *testing.T) {
	// the computer stacks the center column while Ada stacks column 1
	input := &queuedInput{tokens: []string{"1", "1", "1", "1"}}
	display := &recordingDisplay{}
	svc := NewService(testConfig(), input, display, nil)

	status, err := svc.Play(context.Background(), ModeHumanVsComputer)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPlayerAWon, status)
	assert.Equal(t, []string{"Ada wins!"}, display.messages)
}

func TestServicePlayHumanVsHumanInputCloses(t *testing.T) {
	input := &queuedInput{tokens: []string{"4", "4"}}
	svc := NewService(testConfig(), input, &recordingDisplay{}, nil)

	status, err := svc.Play(context.Background(), ModeHumanVsHuman)
	assert.ErrorIs(t, err, domain.ErrInputClosed)
	assert.Equal(t, domain.StatusInProgress, status)
}

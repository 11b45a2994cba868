// Package console is the line-oriented terminal front end. Console is both
// the input provider for human players and the display for the engine.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/iamasit07/4-in-a-row/console/internal/domain"
	"github.com/iamasit07/4-in-a-row/console/internal/service/player"
)

type Console struct {
	in    *bufio.Scanner
	out   io.Writer
	start sync.Once
	lines chan line
}

type line struct {
	text string
	err  error
}

func New(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewScanner(in), out: out, lines: make(chan line)}
}

// readLines feeds the scanner into c.lines until input ends.
func (c *Console) readLines() {
	defer close(c.lines)
	for c.in.Scan() {
		c.lines <- line{text: c.in.Text()}
	}
	if err := c.in.Err(); err != nil {
		c.lines <- line{err: fmt.Errorf("reading input: %w", err)}
	}
}

// Ask prints question and returns the next line without its newline. It
// returns ctx.Err() as soon as ctx is done, even while waiting for input.
// End of input is reported as domain.ErrInputClosed.
func (c *Console) Ask(ctx context.Context, question string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	c.start.Do(func() { go c.readLines() })

	fmt.Fprint(c.out, question)
	select {
	case <-ctx.Done():
		fmt.Fprintln(c.out)
		return "", ctx.Err()
	case l, ok := <-c.lines:
		if !ok {
			fmt.Fprintln(c.out)
			return "", domain.ErrInputClosed
		}
		return l.text, l.err
	}
}

func (c *Console) RequestColumn(ctx context.Context, prompt player.Prompt) (string, error) {
	return c.Ask(ctx, fmt.Sprintf("%s (%s), choose a column (1-%d): ", prompt.PlayerName, prompt.Symbol, domain.Columns))
}

func (c *Console) Reject(_ player.Prompt, reason error) {
	switch {
	case errors.Is(reason, domain.ErrNotANumber):
		fmt.Fprintln(c.out, "Invalid input. Please enter a number.")
	case errors.Is(reason, domain.ErrColumnOutOfRange):
		fmt.Fprintf(c.out, "Column must be between 1 and %d.\n", domain.Columns)
	case errors.Is(reason, domain.ErrColumnFull):
		fmt.Fprintln(c.out, "That column is full. Choose another one.")
	default:
		fmt.Fprintf(c.out, "Move rejected: %v\n", reason)
	}
}

func (c *Console) Render(board *domain.Board) {
	fmt.Fprintln(c.out)
	_ = board.Render(c.out)
}

func (c *Console) Announce(message string) {
	fmt.Fprintln(c.out, message)
}

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/iamasit07/4-in-a-row/console/internal/config"
	"github.com/iamasit07/4-in-a-row/console/internal/domain"
	"github.com/iamasit07/4-in-a-row/console/internal/logger"
	"github.com/iamasit07/4-in-a-row/console/internal/service/game"
	"github.com/iamasit07/4-in-a-row/console/internal/transport/console"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../.env"); err != nil {
			log.Println("No .env file found")
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

type options struct {
	mode      string
	logLevel  string
	logFormat string
	seed      int64
}

// parseFlags overrides the environment configuration with command-line flags.
// shouldExit is true when only help was requested.
func parseFlags(args []string, cfg *config.Config, out io.Writer) (opts options, shouldExit bool, err error) {
	fs := flag.NewFlagSet("connect4", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.Usage = func() {
		fmt.Fprint(out, `
Connect Four - play on a 6x7 grid in the terminal.

Usage:
  connect4 [options]

Without -mode an interactive menu is shown.

Options:
`)
		fs.PrintDefaults()
	}

	fs.StringVar(&opts.mode, "mode", "", "Start a single game directly: 'hvh' (human vs human) or 'hvc' (human vs computer).")
	fs.StringVar(&opts.logLevel, "log-level", cfg.LogLevel, "Logging level: 'debug', 'info', 'warn' or 'error'.")
	fs.StringVar(&opts.logFormat, "log-format", cfg.LogFormat, "Log output format: 'console' or 'json'.")
	fs.Int64Var(&opts.seed, "seed", cfg.RandomSeed, "Seed for the computer player's random choices. 0 uses the clock.")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return opts, true, nil
		}
		return opts, false, err
	}
	if fs.NArg() > 0 {
		return opts, false, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	cfg.LogLevel = opts.logLevel
	cfg.LogFormat = opts.logFormat
	cfg.RandomSeed = opts.seed
	return opts, false, nil
}

// run wires configuration, logging, the game service and the console, then
// plays either one game (-mode) or the menu loop.
func run(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	opts, shouldExit, err := parseFlags(args, cfg, out)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	zl, err := logger.New(cfg.LogLevel, cfg.LogFormat, errOut)
	if err != nil {
		return err
	}
	defer zl.Sync()

	term := console.New(in, out)
	svc := game.NewService(cfg, term, term, zl.Named("game"))
	menu := console.NewMenu(term, svc, zl.Named("menu"))

	if opts.mode != "" {
		mode, err := game.ParseMode(opts.mode)
		if err != nil {
			return err
		}
		err = menu.PlayOnce(ctx, mode)
		return ignoreClosedInput(err)
	}

	zl.Info("starting menu", zap.Int64("seed", cfg.RandomSeed))
	return ignoreClosedInput(menu.Run(ctx))
}

func ignoreClosedInput(err error) error {
	if errors.Is(err, domain.ErrInputClosed) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

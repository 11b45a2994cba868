package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

type Config struct {
	PlayerAName       string
	PlayerBName       string
	ComputerName      string
	PlayerASymbol     string
	PlayerBSymbol     string
	RandomSeed        int64
	MaxInternalErrors int
	LogLevel          string
	LogFormat         string
}

// LoadConfig reads the environment. Malformed numeric values keep their
// defaults and are reported together in the returned error.
func LoadConfig() (*Config, error) {
	seed, seedErr := GetEnvAsInt64("RANDOM_SEED", 0)
	maxErrors, maxErr := GetEnvAsInt("MAX_INTERNAL_ERRORS", 5)

	cfg := &Config{
		PlayerAName:       GetEnv("PLAYER_A_NAME", "Player 1"),
		PlayerBName:       GetEnv("PLAYER_B_NAME", "Player 2"),
		ComputerName:      GetEnv("COMPUTER_NAME", "Computer"),
		PlayerASymbol:     GetEnv("PLAYER_A_SYMBOL", "X"),
		PlayerBSymbol:     GetEnv("PLAYER_B_SYMBOL", "O"),
		RandomSeed:        seed,
		MaxInternalErrors: maxErrors,
		LogLevel:          strings.ToLower(GetEnv("LOG_LEVEL", "warn")),
		LogFormat:         strings.ToLower(GetEnv("LOG_FORMAT", "console")),
	}
	return cfg, errors.Join(seedErr, maxErr)
}

// Validate checks that both symbols are single visible runes and differ.
func (c *Config) Validate() error {
	for _, s := range []struct{ key, value string }{
		{"PLAYER_A_SYMBOL", c.PlayerASymbol},
		{"PLAYER_B_SYMBOL", c.PlayerBSymbol},
	} {
		if utf8.RuneCountInString(s.value) != 1 {
			return fmt.Errorf("%s must be a single character, got %q", s.key, s.value)
		}
		r, _ := utf8.DecodeRuneInString(s.value)
		if unicode.IsSpace(r) || !unicode.IsPrint(r) {
			return fmt.Errorf("%s must be a visible character, got %q", s.key, s.value)
		}
	}
	if c.PlayerASymbol == c.PlayerBSymbol {
		return fmt.Errorf("player symbols must differ, both are %q", c.PlayerASymbol)
	}
	if c.MaxInternalErrors < 0 {
		return fmt.Errorf("MAX_INTERNAL_ERRORS must not be negative, got %d", c.MaxInternalErrors)
	}
	return nil
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) (int, error) {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue, fmt.Errorf("invalid integer value for %s: %q", key, valueStr)
	}
	return value, nil
}

func GetEnvAsInt64(key string, defaultValue int64) (int64, error) {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue, nil
	}
	value, err := strconv.ParseInt(valueStr, 10, 64)
	if err != nil {
		return defaultValue, fmt.Errorf("invalid integer value for %s: %q", key, valueStr)
	}
	return value, nil
}

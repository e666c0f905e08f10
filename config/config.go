// Package config loads front-end settings for mazegen from an optional .env
// file and the process environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/labyrinth/grid"
	"github.com/katalvlaran/labyrinth/pathfind"
)

// ErrInvalidValue is returned when an environment variable cannot be parsed.
var ErrInvalidValue = errors.New("config: invalid value")

// Environment keys.
const (
	KeyWidth    = "MAZE_WIDTH"
	KeyHeight   = "MAZE_HEIGHT"
	KeyStart    = "MAZE_START"
	KeyEnd      = "MAZE_END"
	KeySeed     = "MAZE_SEED"
	KeyStrategy = "MAZE_STRATEGY"
)

// Config holds the maze request.
type Config struct {
	Width    int               // requested columns, rounded up to odd by the grid
	Height   int               // requested rows, rounded up to odd by the grid
	Start    grid.Coord        // entry cell
	End      grid.Coord        // exit cell; bottom-right of the normalized grid when unset
	Seed     int64             // 0 selects a time-based seed
	Strategy pathfind.Strategy // search algorithm
}

// Default returns a 21×21 maze from the top-left to the bottom-right corner.
func Default() Config {
	return Config{
		Width:    21,
		Height:   21,
		Start:    grid.Coord{},
		End:      grid.Coord{Row: 20, Col: 20},
		Strategy: pathfind.BreadthFirst,
	}
}

// Load reads .env files (default ".env"; a missing file is not an error) and
// then the environment. Existing environment variables win over file values.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("config: loading env file: %w", err)
	}
	return FromEnv()
}

// FromEnv builds a Config from the process environment on top of Default.
func FromEnv() (Config, error) {
	cfg := Default()
	var err error

	if cfg.Width, err = intEnv(KeyWidth, cfg.Width); err != nil {
		return Config{}, err
	}
	if cfg.Height, err = intEnv(KeyHeight, cfg.Height); err != nil {
		return Config{}, err
	}
	cfg.End = grid.Coord{Row: grid.Normalize(cfg.Height) - 1, Col: grid.Normalize(cfg.Width) - 1}

	if v, ok := os.LookupEnv(KeyStart); ok {
		if cfg.Start, err = ParseCoord(v); err != nil {
			return Config{}, fmt.Errorf("%s: %w", KeyStart, err)
		}
	}
	if v, ok := os.LookupEnv(KeyEnd); ok && strings.TrimSpace(v) != "" {
		if cfg.End, err = ParseCoord(v); err != nil {
			return Config{}, fmt.Errorf("%s: %w", KeyEnd, err)
		}
	}
	if v, ok := os.LookupEnv(KeySeed); ok {
		if cfg.Seed, err = strconv.ParseInt(strings.TrimSpace(v), 10, 64); err != nil {
			return Config{}, fmt.Errorf("%w: %s=%q", ErrInvalidValue, KeySeed, v)
		}
	}
	if v, ok := os.LookupEnv(KeyStrategy); ok {
		if cfg.Strategy, err = pathfind.ParseStrategy(strings.ToLower(strings.TrimSpace(v))); err != nil {
			return Config{}, fmt.Errorf("%w: %s: %w", ErrInvalidValue, KeyStrategy, err)
		}
	}
	return cfg, nil
}

// ParseCoord parses "row,col" (spaces allowed) into a Coord.
func ParseCoord(s string) (grid.Coord, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return grid.Coord{}, fmt.Errorf("%w: coordinate %q, want \"row,col\"", ErrInvalidValue, s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return grid.Coord{}, fmt.Errorf("%w: row in %q", ErrInvalidValue, s)
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return grid.Coord{}, fmt.Errorf("%w: col in %q", ErrInvalidValue, s)
	}
	return grid.Coord{Row: row, Col: col}, nil
}

// intEnv returns the integer value of key, or def when unset.
func intEnv(key string, def int) (int, error) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return def, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidValue, key, v)
	}
	return n, nil
}

// Command mazegen carves a perfect maze, solves it and prints or displays
// the result.
//
// Usage:
//
//	mazegen [-env .env] [-width 21] [-height 21] [-start 0,0] [-end 20,20]
//	        [-seed 0] [-strategy bfs|ucs] [-view]
//
// Flags override MAZE_* environment variables, which override the .env file.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/katalvlaran/labyrinth/carve"
	"github.com/katalvlaran/labyrinth/config"
	"github.com/katalvlaran/labyrinth/grid"
	"github.com/katalvlaran/labyrinth/pathfind"
	"github.com/katalvlaran/labyrinth/render"
)

func main() {
	log.SetFlags(log.LstdFlags)
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatalf("[MAZE] [FATAL] %v", err)
	}
}

// maze bundles one generated and solved request.
type maze struct {
	cfg    config.Config
	grid   *grid.Grid
	result *pathfind.Result
}

// run parses args, builds the maze and writes the text rendering to out.
func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("mazegen", flag.ContinueOnError)
	fs.SetOutput(out)
	envFile := fs.String("env", ".env", "optional .env file with MAZE_* settings")
	width := fs.Int("width", 0, "maze width in cells (even values are rounded up)")
	height := fs.Int("height", 0, "maze height in cells (even values are rounded up)")
	start := fs.String("start", "", "start cell as row,col")
	end := fs.String("end", "", "end cell as row,col")
	seed := fs.Int64("seed", 0, "random seed (0 = time based)")
	strategy := fs.String("strategy", "", "search strategy: bfs or ucs")
	view := fs.Bool("view", false, "open an interactive terminal view")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*envFile)
	if err != nil {
		return err
	}
	endSet := false
	var ferr error
	fs.Visit(func(f *flag.Flag) {
		if ferr != nil {
			return
		}
		switch f.Name {
		case "width":
			cfg.Width = *width
		case "height":
			cfg.Height = *height
		case "start":
			cfg.Start, ferr = config.ParseCoord(*start)
		case "end":
			cfg.End, ferr = config.ParseCoord(*end)
			endSet = true
		case "seed":
			cfg.Seed = *seed
		case "strategy":
			cfg.Strategy, ferr = pathfind.ParseStrategy(*strategy)
		}
	})
	if ferr != nil {
		return ferr
	}
	// no explicit end anywhere: default to the bottom-right corner of the final size
	if v, ok := os.LookupEnv(config.KeyEnd); !endSet && (!ok || v == "") {
		cfg.End = grid.Coord{Row: grid.Normalize(cfg.Height) - 1, Col: grid.Normalize(cfg.Width) - 1}
	}

	m, err := build(cfg)
	if err != nil {
		return err
	}
	if *view {
		return viewMaze(m)
	}
	report(out, m)
	return nil
}

// build generates, solves and marks the maze described by cfg.
func build(cfg config.Config) (*maze, error) {
	log.Printf("[MAZE] [INFO] generating %dx%d maze %v -> %v (seed %d)",
		cfg.Width, cfg.Height, cfg.Start, cfg.End, cfg.Seed)

	g, err := carve.Generate(cfg.Start, cfg.End, cfg.Width, cfg.Height, carve.WithSeed(cfg.Seed))
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}
	res, err := pathfind.ShortestPath(g, cfg.Start, cfg.End, pathfind.WithStrategy(cfg.Strategy))
	if err != nil {
		return nil, fmt.Errorf("solve: %w", err)
	}
	if res.Reached() {
		if err = pathfind.MarkPath(g, res.Path); err != nil {
			return nil, fmt.Errorf("mark: %w", err)
		}
	} else {
		log.Printf("[MAZE] [INFO] end %v is not reachable from %v", cfg.End, cfg.Start)
	}
	return &maze{cfg: cfg, grid: g, result: res}, nil
}

// report writes the rendering and a one-line summary.
func report(out io.Writer, m *maze) {
	fmt.Fprint(out, render.Text(m.grid, render.WithEndpoints(m.cfg.Start, m.cfg.End)))
	fmt.Fprintln(out, summary(m))
}

func summary(m *maze) string {
	w, h := m.grid.Dimensions()
	if !m.result.Reached() {
		return fmt.Sprintf("grid %dx%d, open %d, end unreachable", w, h, m.grid.OpenCount())
	}
	return fmt.Sprintf("grid %dx%d, open %d, path %d cells, distance %d (%s)",
		w, h, m.grid.OpenCount(), len(m.result.Path), m.result.Length(), m.cfg.Strategy)
}

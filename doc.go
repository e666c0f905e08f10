// Package labyrinth generates perfect mazes on rectangular grids and finds
// shortest paths through them.
//
// What it does:
//
//	grid/          the shared cell lattice (Wall, Path, OnShortestPath), odd-normalized
//	               dimensions, checked accessors, connectivity and spanning-tree checks
//	carve/         iterative randomized depth-first carving with an injectable
//	               random Source, plus an end-connectivity pass
//	pathfind/      hop-count shortest paths (BFS, or uniform-cost over a heap),
//	               distance maps, path reconstruction and marking
//	render/        text rendering and tcell screen painting
//	config/        .env and MAZE_* environment settings for the front end
//	cmd/mazegen/   CLI and terminal viewer
//
// Quick start:
//
//	start, end := grid.Coord{Row: 0, Col: 0}, grid.Coord{Row: 20, Col: 20}
//	g, err := carve.Generate(start, end, 21, 21, carve.WithSeed(7))
//	if err != nil {
//		log.Fatal(err)
//	}
//	res, err := pathfind.ShortestPath(g, start, end)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if res.Reached() {
//		_ = pathfind.MarkPath(g, res.Path)
//	}
//	fmt.Print(render.Text(g, render.WithEndpoints(start, end)))
//
// Coordinates are always (row, col). Everything is single-threaded and
// in-memory; a Grid has exactly one owner at a time.
//
//	go get github.com/katalvlaran/labyrinth
package labyrinth

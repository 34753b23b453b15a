package main

import (
	"bufio"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/lmittmann/tint"

	"github.com/go-tentai/tentai/internal/tentai"
)

const gameIDPrefix = "Game ID: "

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: solve [options] <path>")
	fmt.Fprintln(os.Stderr, "Options:")
	fmt.Fprintln(os.Stderr, "  --dfs            Use depth-first search instead of breadth-first")
	fmt.Fprintln(os.Stderr, "  --workers=N      Split the root moves across N workers (0 = sequential)")
	fmt.Fprintln(os.Stderr, "  --help           Show this help")
}

func readGameID(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", fmt.Errorf("reading %s: %w", path, err)
		}
		return "", fmt.Errorf("reading %s: empty file", path)
	}

	line := strings.TrimSpace(scanner.Text())
	if rest, ok := strings.CutPrefix(line, gameIDPrefix); ok {
		return rest, nil
	}
	if strings.Contains(line, ":") {
		return line, nil
	}
	return "", fmt.Errorf("%s: first line is not a recognisable game id", path)
}

func main() {
	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: slog.LevelWarn}))

	var (
		dfsFlag     = flag.Bool("dfs", false, "use depth-first search")
		workersFlag = flag.Int("workers", 0, "number of parallel workers (0 = sequential)")
		helpFlag    = flag.Bool("help", false, "show usage")
	)
	flag.Usage = usage
	flag.Parse()

	if *helpFlag {
		usage()
		os.Exit(0)
	}
	if flag.NArg() != 1 {
		usage()
		os.Exit(1)
	}

	gameID, err := readGameID(flag.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	puzzle, err := tentai.Decode(gameID)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	solver := tentai.NewSolver(puzzle)

	var solution *tentai.State
	if *workersFlag > 0 {
		solution, err = solver.SolveParallel(*workersFlag, logger)
	} else {
		driver := tentai.BFS
		if *dfsFlag {
			driver = tentai.DFS
		}
		solution, err = solver.Solve(driver, logger)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if solution == nil {
		fmt.Println("No solution found.")
		return
	}

	fmt.Println(tentai.RenderSolution(puzzle, solution))
}

package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/lmittmann/tint"

	"github.com/go-tentai/tentai/internal/tentai"
)

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: generate [options]")
	fmt.Fprintln(os.Stderr, "Options:")
	fmt.Fprintln(os.Stderr, "  --size=WxH       Set puzzle size (default: 7x7)")
	fmt.Fprintln(os.Stderr, "  --seed=N         Set random seed")
	fmt.Fprintln(os.Stderr, "  --count=N        Generate N puzzles (default: 1)")
	fmt.Fprintln(os.Stderr, "  --help           Show this help")
}

func parseSize(s string) (w, h int, err error) {
	parts := strings.SplitN(s, "x", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid size format %q, want WxH", s)
	}
	w, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid width in %q: %w", s, err)
	}
	h, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid height in %q: %w", s, err)
	}
	return w, h, nil
}

func main() {
	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: slog.LevelWarn}))

	var (
		sizeFlag  = flag.String("size", "7x7", "puzzle size WxH")
		seedFlag  = flag.Int64("seed", time.Now().UnixNano(), "random seed")
		countFlag = flag.Int("count", 1, "number of puzzles to generate")
		helpFlag  = flag.Bool("help", false, "show usage")
	)
	flag.Usage = usage
	flag.Parse()

	if *helpFlag {
		usage()
		os.Exit(0)
	}

	w, h, err := parseSize(*sizeFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		usage()
		os.Exit(1)
	}
	if w > tentai.MaxSize || h > tentai.MaxSize {
		fmt.Fprintf(os.Stderr, "--size=%dx%d exceeds the documented legacy limit of %dx%d\n", w, h, tentai.MaxSize, tentai.MaxSize)
		os.Exit(1)
	}
	if *countFlag < 1 {
		fmt.Fprintln(os.Stderr, "--count must be at least 1")
		usage()
		os.Exit(1)
	}

	seedBytes := make([]byte, 8)
	seed := uint64(*seedFlag)
	for i := range seedBytes {
		seedBytes[i] = byte(seed >> (8 * i))
	}
	rnd := tentai.NewSource(seedBytes)

	for i := 0; i < *countFlag; i++ {
		board := tentai.Generate(tentai.GameParams{Width: w, Height: h}, rnd, logger)

		fmt.Printf("Puzzle %d:\n", i+1)
		fmt.Printf("Game ID: %s\n", tentai.Encode(board))
		fmt.Println(tentai.RenderBoard(board))

		if i < *countFlag-1 {
			fmt.Println("---")
		}
	}
}

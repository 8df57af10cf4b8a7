// Command benchmark runs every search algorithm against a batch of
// generated puzzle instances, writes per-run results as CSV, and prints a
// per-solver summary table.
package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"github.com/elektrokombinacija/ricochet-solver/internal/board"
	"github.com/elektrokombinacija/ricochet-solver/internal/generate"
	"github.com/elektrokombinacija/ricochet-solver/internal/search"
)

// BenchmarkResult stores the outcome of a single (instance, solver) run.
type BenchmarkResult struct {
	Timestamp string
	GoVersion string
	OS        string
	Arch      string
	Instance  string
	BoardSize int
	Solver    string
	RuntimeMs float64
	Success   bool
	PathLen   int
}

// SolverMetrics aggregates results across every instance for one solver.
type SolverMetrics struct {
	Name           string
	TotalRuns      int
	Successes      int
	TotalRuntimeMs float64
	TotalPathLen   int
}

func solvers() []search.Solver {
	return []search.Solver{
		search.NewBreadthFirst(),
		search.NewAStar(),
		search.NewIterativeDeepening(),
	}
}

func main() {
	boardSize := flag.Int("size", 16, "side length of generated boards")
	numInstances := flag.Int("instances", 20, "number of instances to generate")
	seed := flag.Int64("seed", 1, "base seed; instance i uses seed+i")
	outputFile := flag.String("output", "evidence/benchmark_results.csv", "output CSV path")
	timeout := flag.Duration("timeout", 30*time.Second, "per-run search timeout")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	outputDir := filepath.Dir(*outputFile)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		logger.Error("creating output directory", "error", err)
		os.Exit(1)
	}

	logger.Info("starting benchmark run",
		"board_size", *boardSize, "instances", *numInstances, "seed", *seed)

	var results []*BenchmarkResult
	for i := 0; i < *numInstances; i++ {
		instSeed := *seed + int64(i)
		round, start, name := generateInstance(*boardSize, instSeed, i)

		for _, s := range solvers() {
			result := runSolver(name, *boardSize, s, round, start, *timeout)
			logger.Info("run complete",
				"instance", name, "solver", s.Name(),
				"success", result.Success, "runtime_ms", result.RuntimeMs, "path_len", result.PathLen)
			results = append(results, result)
		}
	}

	if err := writeCSV(results, *outputFile); err != nil {
		logger.Error("writing CSV", "error", err)
		os.Exit(1)
	}
	logger.Info("wrote results", "path", *outputFile, "rows", len(results))

	printSummary(results)
}

// generateInstance builds a board+target+starting-positions triple around
// a random Spiral target, using the shared generator so benchmark
// instances exercise the same wall-placement code the solver is meant to
// face in practice.
func generateInstance(size int, seed int64, index int) (*board.Round, board.RobotPositions, string) {
	gen := generate.NewSeeded(board.Coordinate(size), seed)
	game := gen.GenerateGame()
	targetPos, ok := game.TargetPosition(board.Spiral)
	if !ok {
		targetPos = board.NewPosition(board.Coordinate(size-1), board.Coordinate(size-1))
	}
	round := board.NewRound(game.Board(), board.Spiral, targetPos)

	placement := [4][2]board.Coordinate{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
	start := board.NewRobotPositions(placement)

	return round, start, fmt.Sprintf("instance-%03d-seed%d", index, seed)
}

func runSolver(instance string, boardSize int, s search.Solver, round *board.Round, start board.RobotPositions, timeout time.Duration) *BenchmarkResult {
	result := &BenchmarkResult{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		GoVersion: runtime.Version(),
		OS:        runtime.GOOS,
		Arch:      runtime.GOARCH,
		Instance:  instance,
		BoardSize: boardSize,
		Solver:    s.Name(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	startTime := time.Now()
	path, err := s.Solve(ctx, round, start)
	result.RuntimeMs = float64(time.Since(startTime).Microseconds()) / 1000.0

	if err != nil {
		result.Success = false
		return result
	}
	result.Success = true
	result.PathLen = path.Len()
	return result
}

func writeCSV(results []*BenchmarkResult, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{
		"timestamp", "go_version", "os", "arch",
		"instance", "board_size", "solver", "runtime_ms", "success", "path_len",
	}
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, r := range results {
		row := []string{
			r.Timestamp, r.GoVersion, r.OS, r.Arch,
			r.Instance, fmt.Sprintf("%d", r.BoardSize), r.Solver,
			fmt.Sprintf("%.3f", r.RuntimeMs), fmt.Sprintf("%t", r.Success),
			fmt.Sprintf("%d", r.PathLen),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func printSummary(results []*BenchmarkResult) {
	metrics := make(map[string]*SolverMetrics)
	for _, r := range results {
		m, ok := metrics[r.Solver]
		if !ok {
			m = &SolverMetrics{Name: r.Solver}
			metrics[r.Solver] = m
		}
		m.TotalRuns++
		if r.Success {
			m.Successes++
			m.TotalRuntimeMs += r.RuntimeMs
			m.TotalPathLen += r.PathLen
		}
	}

	fmt.Println("\n=== BENCHMARK SUMMARY ===")
	fmt.Printf("%-20s %8s %8s %14s %12s\n", "Solver", "Runs", "Solved", "Avg Time(ms)", "Avg PathLen")
	fmt.Println(strings.Repeat("-", 66))

	var names []string
	for name := range metrics {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		m := metrics[name]
		avgTime, avgPath := 0.0, 0.0
		if m.Successes > 0 {
			avgTime = m.TotalRuntimeMs / float64(m.Successes)
			avgPath = float64(m.TotalPathLen) / float64(m.Successes)
		}
		fmt.Printf("%-20s %8d %8d %14.2f %12.2f\n", m.Name, m.TotalRuns, m.Successes, avgTime, avgPath)
	}
}

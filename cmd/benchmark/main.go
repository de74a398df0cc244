package main

import (
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/samber/lo"

	"github.com/limaJavier/timetable-engine/pkg/model"
)

const MB float32 = 1024 * 1024

type ResultType int

const (
	assigned ResultType = iota
	structuralFailure
	verificationFailure
)

var resultTypes = map[ResultType]string{
	assigned:            "assigned",
	structuralFailure:   "structural-failure",
	verificationFailure: "verification-failure",
}

type TestMetadata struct {
	Name       string
	Seed       uint64
	Professors int
	Rooms      int
	Subjects   int
}

type BenchmarkResult struct {
	Test     TestMetadata
	Duration time.Duration
	Memory   float32 // Allocated during the run, in MB
	Assigned int
	Skipped  model.SkipReport
	Result   ResultType
}

// Professors, rooms and subjects per instance size
var sizes = [][3]int{
	{5, 5, 25},
	{10, 8, 100},
	{25, 15, 400},
	{50, 30, 1000},
	{100, 50, 2500},
	{200, 80, 6000},
}

func main() {
	runsPtr := flag.Int("runs", 3, "Instances generated per size, each one with its own seed")
	outFilePathPtr := flag.String("out", "benchmark_results.csv", "Path to the CSV file where the results will be written")
	flag.Parse()

	if *runsPtr <= 0 {
		log.Fatalf("runs must be greater than 0: %v", *runsPtr)
	}

	tests := getTests(*runsPtr)
	results := make([]BenchmarkResult, 0, len(tests))
	for _, test := range tests {
		fmt.Printf("Benchmarking test \"%v\" (%v professors, %v rooms, %v subjects)\n", test.Name, test.Professors, test.Rooms, test.Subjects)
		results = append(results, measure(test))
	}

	toCsv(results, *outFilePathPtr)
}

func getTests(runs int) []TestMetadata {
	tests := make([]TestMetadata, 0, len(sizes)*runs)
	for _, size := range sizes {
		tests = append(tests, lo.Times(runs, func(run int) TestMetadata {
			return TestMetadata{
				Name:       fmt.Sprintf("p%d-r%d-s%d#%d", size[0], size[1], size[2], run+1),
				Seed:       uint64(run + 1),
				Professors: size[0],
				Rooms:      size[1],
				Subjects:   size[2],
			}
		})...)
	}
	return tests
}

func measure(test TestMetadata) BenchmarkResult {
	random := rand.New(rand.NewPCG(test.Seed, uint64(test.Subjects)))
	input := model.GenerateModelInput(random, test.Professors, test.Rooms, test.Subjects)
	assigner := model.NewGreedyAssigner()

	var before, after runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&before)

	start := time.Now()
	result, err := assigner.Build(input)
	duration := time.Since(start)

	runtime.ReadMemStats(&after)

	benchmarkResult := BenchmarkResult{
		Test:     test,
		Duration: duration,
		Memory:   float32(after.TotalAlloc-before.TotalAlloc) / MB,
		Assigned: len(result.Assignments),
		Skipped:  result.Skipped,
		Result:   assigned,
	}

	var structuralErr model.StructuralError
	if errors.As(err, &structuralErr) {
		benchmarkResult.Result = structuralFailure
	} else if err != nil {
		log.Fatalf("an error occurred during the execution of test \"%v\": %v", test.Name, err)
	} else if !assigner.Verify(result.Assignments, input) {
		benchmarkResult.Result = verificationFailure
	}
	return benchmarkResult
}

func toRecord(result BenchmarkResult) []string {
	return []string{
		result.Test.Name,
		fmt.Sprintf("%d", result.Test.Seed),
		fmt.Sprintf("%d", result.Test.Professors),
		fmt.Sprintf("%d", result.Test.Rooms),
		fmt.Sprintf("%d", result.Test.Subjects),
		fmt.Sprintf("%d", result.Assigned),
		fmt.Sprintf("%d", len(result.Skipped.NoProfessor)),
		fmt.Sprintf("%d", len(result.Skipped.NoAvailableSlot)),
		fmt.Sprintf("%d", len(result.Skipped.NoAvailableRoom)),
		fmt.Sprintf("%.3f", float64(result.Duration.Microseconds())/1000),
		fmt.Sprintf("%.1f", result.Memory),
		resultTypes[result.Result],
	}
}

func toCsv(results []BenchmarkResult, path string) {
	file, err := os.Create(path)
	if err != nil {
		log.Panicf("cannot create CSV file: %v", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{"Test", "Seed", "Professors", "Rooms", "Subjects", "Assigned", "NoProfessor", "NoAvailableSlot", "NoAvailableRoom", "Duration(ms)", "Memory(MB)", "Result"}
	if err := writer.Write(header); err != nil {
		log.Panicf("cannot write CSV header: %v", err)
	}

	for _, result := range results {
		if err := writer.Write(toRecord(result)); err != nil {
			log.Panicf("cannot write CSV record: %v", err)
		}
	}
}

package main

import (
	"errors"
	"flag"
	"log"
	"os"
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/limaJavier/timetable-engine/pkg/config"
	"github.com/limaJavier/timetable-engine/pkg/logger"
	"github.com/limaJavier/timetable-engine/pkg/model"
)

const (
	exitAssigned           = 10
	exitVerificationFailed = 15
	exitStructuralFailure  = 20
)

var validFormats = []string{config.OutputJson, config.OutputCsv}

func main() {
	// Define arguments
	filePathPtr := flag.String("file", "", "Path to the input file (JSON or YAML)")
	outFilePathPtr := flag.String("out", "", "Path to the file where the output will be written; if empty, it'll be written into the Standard Output")
	formatPtr := flag.String("format", "", "Output format. Allowed values are: \"json\" and \"csv\"; if empty, the configured one is used")
	configPathPtr := flag.String("config", "", "Path to the configuration file; if empty, config.json next to the executable is used when present")
	flag.Parse()
	filePath := *filePathPtr
	outFile := *outFilePathPtr
	format := strings.ToLower(*formatPtr)
	configPath := *configPathPtr

	// Validate arguments
	if filePath == "" {
		log.Fatal("an input file must be specified")
	} else if format != "" && !slices.Contains(validFormats, format) {
		log.Fatalf("%v is not a valid output format", format)
	}

	// Load configuration
	if configPath == "" {
		defaultPath, err := config.DefaultPath()
		if err != nil {
			log.Fatalf("cannot locate configuration file: %v", err)
		}
		configPath = defaultPath
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("cannot load configuration: %v", err)
	}
	if format == "" {
		format = cfg.Output.Format
	}

	zapLogger, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("cannot initialize logger: %v", err)
	}

	code := run(filePath, outFile, format, cfg, zapLogger)
	_ = zapLogger.Sync()
	os.Exit(code)
}

func run(filePath, outFile, format string, cfg *config.Config, zapLogger *zap.Logger) int {
	// Extract input
	input, err := model.InputFromFile(filePath)
	if err != nil {
		log.Fatalf("cannot parse input file: %v", err)
	}

	// Initialize engine
	assigner := model.NewGreedyAssigner(
		model.WithLogger(zapLogger),
		model.WithIdentifierPattern(cfg.Identifier.Prefix, cfg.Identifier.Digits),
	)

	// Build assignment
	result, err := assigner.Build(input)
	var structuralErr model.StructuralError
	if errors.As(err, &structuralErr) {
		zapLogger.Warn("no assignment produced", zap.String("failure", string(structuralErr.Failure)), zap.Error(err))
		return exitStructuralFailure
	} else if err != nil {
		log.Fatalf("an error occurred during assignment construction: %v", err)
	}

	// Verify assignment correctness
	if !assigner.Verify(result.Assignments, input) {
		zapLogger.Error("assignment verification failed", zap.Int("assignments", len(result.Assignments)))
		return exitVerificationFailed
	}

	output, err := encode(result, format)
	if err != nil {
		log.Fatalf("an error occurred while building output: %v", err)
	}

	// Verify outfile is empty, if so then write the results to the Standard Output
	if outFile == "" {
		os.Stdout.Write(output) //nolint:errcheck
	} else if err := os.WriteFile(outFile, output, 0666); err != nil {
		log.Fatalf("an error occurred while writing to the output file: %v", err)
	}

	zapLogger.Info(result.Summary())
	return exitAssigned
}

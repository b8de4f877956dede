package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fitchlang/fitch/formatter"
	"github.com/fitchlang/fitch/internal"
	tt "github.com/fitchlang/fitch/internal/types"
	"github.com/fitchlang/fitch/prove"
)

var (
	ignoreTheorems  string
	ignorePaths     string
	checkJsonOutput bool
	outPath         string
)

var checkCmd = &cobra.Command{
	Use:   "check [paths...]",
	Short: "Check the proof scripts at the given paths",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: Please provide file or directory paths")
			os.Exit(1)
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		engine, err := prove.New(cfgFile, logger)
		if err != nil {
			logger.Fatal("Failed to initialize proof engine", zap.Error(err))
		}

		if ignoreTheorems != "" {
			names := strings.Split(ignoreTheorems, ",")
			for _, name := range names {
				engine.IgnoreTheorem(strings.TrimSpace(name))
			}
		}

		if ignorePaths != "" {
			paths := strings.Split(ignorePaths, ",")
			for _, path := range paths {
				engine.IgnorePath(strings.TrimSpace(path))
			}
		}

		runCheckProcess(ctx, logger, engine, args, checkJsonOutput, outPath)
	},
}

func init() {
	checkCmd.Flags().StringVar(&ignoreTheorems, "ignore", "", "Comma-separated list of theorem names to skip")
	checkCmd.Flags().StringVar(&ignorePaths, "ignore-paths", "", "Comma-separated list of paths to ignore")
	checkCmd.Flags().BoolVar(&checkJsonOutput, "json", false, "Output results in JSON format")
	checkCmd.Flags().StringVarP(&outPath, "output", "o", "", "Output path (when using JSON)")
}

func runCheckProcess(ctx context.Context, logger *zap.Logger, engine prove.ProofEngine, paths []string, isJson bool, jsonOutput string) {
	results, err := prove.ProcessFiles(ctx, logger, engine, paths, prove.ProcessFile)
	if err != nil {
		logger.Error("Error processing files", zap.Error(err))
		os.Exit(1)
	}

	printResults(logger, results, isJson, jsonOutput)

	for _, res := range results {
		if res.Failed() {
			os.Exit(1)
		}
	}
}

func printResults(logger *zap.Logger, results []tt.Result, isJson bool, jsonOutput string) {
	resultsByFile := make(map[string][]tt.Result)
	for _, res := range results {
		resultsByFile[res.Filename] = append(resultsByFile[res.Filename], res)
	}

	sortedFiles := make([]string, 0, len(resultsByFile))
	for filename := range resultsByFile {
		sortedFiles = append(sortedFiles, filename)
	}
	sort.Strings(sortedFiles)

	if !isJson {
		// text output
		for _, filename := range sortedFiles {
			fileResults := resultsByFile[filename]
			sourceCode, err := internal.ReadSourceCode(filename)
			if err != nil {
				logger.Error("Error reading source file", zap.String("file", filename), zap.Error(err))
				sourceCode = nil
			}
			fmt.Print(formatter.FormatResults(fileResults, sourceCode))
		}
		fmt.Println(formatter.Summary(results))
	} else {
		// JSON output
		d, err := json.Marshal(resultsByFile)
		if err != nil {
			logger.Error("Error marshalling results to JSON", zap.Error(err))
			return
		}
		if jsonOutput == "" {
			fmt.Println(string(d))
		} else {
			f, err := os.Create(jsonOutput)
			if err != nil {
				logger.Error("Error creating JSON output file", zap.Error(err))
				return
			}
			defer f.Close()
			if _, err := f.Write(d); err != nil {
				logger.Error("Error writing JSON output file", zap.Error(err))
				return
			}
		}
	}
}

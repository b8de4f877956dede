// Package prove is the public entry point for checking proof scripts.
package prove

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/fitchlang/fitch/internal"
	"github.com/fitchlang/fitch/internal/checker"
	tt "github.com/fitchlang/fitch/internal/types"
)

// ScriptExt is the file extension of proof scripts.
const ScriptExt = ".ndp"

// ProofEngine is the interface the facade functions drive.
type ProofEngine interface {
	Run(filePath string) ([]tt.Result, error)
	RunSource(source []byte) ([]tt.Result, error)
	IgnoreTheorem(name string)
	IgnorePath(path string)
	PathIgnored(path string) bool
}

// New creates a proof engine configured from the given configuration
// file. An empty path or a missing file yields the default
// configuration. The logger may be nil.
func New(configurationPath string, logger *zap.Logger) (*internal.Engine, error) {
	config, err := parseConfigurationFile(configurationPath)
	if err != nil {
		return nil, err
	}

	engine := internal.NewEngine(checker.Config{AllowClassical: config.Classical}, logger)
	for _, name := range config.IgnoreTheorems {
		engine.IgnoreTheorem(name)
	}
	for _, path := range config.IgnorePaths {
		engine.IgnorePath(path)
	}
	return engine, nil
}

// ProcessFiles checks every proof script in the given paths and
// returns the combined results.
func ProcessFiles(
	ctx context.Context,
	logger *zap.Logger,
	engine ProofEngine,
	paths []string,
	processor func(ProofEngine, string) ([]tt.Result, error),
) ([]tt.Result, error) {
	var allResults []tt.Result
	for _, path := range paths {
		results, err := ProcessPath(ctx, logger, engine, path, processor)
		if err != nil {
			if logger != nil {
				logger.Error("Error processing path", zap.String("path", path), zap.Error(err))
			}
			return nil, err
		}
		allResults = append(allResults, results...)
	}

	return allResults, nil
}

// ProcessPath checks a single file or walks a directory for proof
// scripts. Directory runs use a bounded worker pool with a progress
// bar.
func ProcessPath(
	ctx context.Context,
	logger *zap.Logger,
	engine ProofEngine,
	path string,
	processor func(ProofEngine, string) ([]tt.Result, error),
) ([]tt.Result, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("error accessing %s: %w", path, err)
	}

	var results []tt.Result
	if info.IsDir() {
		var files []string
		filepath.Walk(path, func(filePath string, fileInfo os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if !fileInfo.IsDir() && filepath.Ext(filePath) == ScriptExt && !engine.PathIgnored(filePath) {
				files = append(files, filePath)
			}
			return nil
		})

		if len(files) == 0 {
			return nil, nil
		}

		resultChan := make(chan []tt.Result, len(files))
		errorChan := make(chan error, len(files))

		// limit the number of workers
		maxWorkers := runtime.NumCPU()
		sem := make(chan struct{}, maxWorkers)

		bar := progressbar.NewOptions(len(files),
			progressbar.OptionSetDescription(path),
			progressbar.OptionEnableColorCodes(true),
			progressbar.OptionSetWidth(40),
			progressbar.OptionShowCount(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "[green]=[reset]",
				SaucerHead:    "[green]>[reset]",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}))

		var wg sync.WaitGroup
		for _, filePath := range files {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			default:
				sem <- struct{}{}
				wg.Add(1)
				go func(fp string) {
					defer func() { <-sem; wg.Done() }()

					fileResults, err := processor(engine, fp)
					if err != nil {
						if logger != nil {
							logger.Error("Error processing file", zap.String("file", fp), zap.Error(err))
						}
						errorChan <- err
						resultChan <- nil
					} else {
						resultChan <- fileResults
						errorChan <- nil
					}
					bar.Add(1)
				}(filePath)
			}
		}
		wg.Wait()

		for range files {
			if err := <-errorChan; err != nil {
				continue
			}
			if result := <-resultChan; result != nil {
				results = append(results, result...)
			}
		}

		fmt.Println()
		return results, nil
	} else if filepath.Ext(path) == ScriptExt {
		if engine.PathIgnored(path) {
			return nil, nil
		}
		fileResults, err := processor(engine, path)
		if err != nil {
			return nil, err
		}
		results = append(results, fileResults...)
	}

	return results, nil
}

// ProcessFile checks a single proof script file.
func ProcessFile(engine ProofEngine, filePath string) ([]tt.Result, error) {
	return engine.Run(filePath)
}

// ProcessSource checks proof script source directly.
func ProcessSource(engine ProofEngine, source []byte) ([]tt.Result, error) {
	return engine.RunSource(source)
}

// Config represents the checker configuration.
type Config struct {
	Name           string   `yaml:"name"`
	Classical      bool     `yaml:"classical"`
	IgnoreTheorems []string `yaml:"ignore-theorems"`
	IgnorePaths    []string `yaml:"ignore-paths"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{Name: "fitch", Classical: true}
}

func parseConfigurationFile(configurationPath string) (Config, error) {
	config := DefaultConfig()
	if configurationPath == "" {
		return config, nil
	}

	f, err := os.Open(configurationPath)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return config, err
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&config); err != nil {
		return config, err
	}

	return config, nil
}

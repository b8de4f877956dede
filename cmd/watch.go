package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fitchlang/fitch/formatter"
	"github.com/fitchlang/fitch/internal"
	tt "github.com/fitchlang/fitch/internal/types"
	"github.com/fitchlang/fitch/prove"
)

var watchCmd = &cobra.Command{
	Use:   "watch [paths...]",
	Short: "Watch proof scripts and re-check them on change",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: Please provide file or directory paths")
			os.Exit(1)
		}

		engine, err := prove.New(cfgFile, logger)
		if err != nil {
			logger.Fatal("Failed to initialize proof engine", zap.Error(err))
		}

		dirs, err := watchDirs(args)
		if err != nil {
			logger.Fatal("Failed to resolve watch paths", zap.Error(err))
		}

		err = engine.StartWatching(dirs, func(filename string, results []tt.Result) {
			sourceCode, err := internal.ReadSourceCode(filename)
			if err != nil {
				logger.Error("Error reading source file", zap.String("file", filename), zap.Error(err))
				sourceCode = nil
			}
			fmt.Print(formatter.FormatResults(results, sourceCode))
			fmt.Println(formatter.Summary(results))
		})
		if err != nil {
			logger.Fatal("Failed to start watching", zap.Error(err))
		}
		defer engine.StopWatching()

		fmt.Printf("watching %d directories, press Ctrl+C to stop\n", len(dirs))

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
	},
}

// watchDirs resolves the given paths to the set of directories to
// watch: a file argument contributes its containing directory.
func watchDirs(paths []string) ([]string, error) {
	seen := make(map[string]bool)
	var dirs []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, err
		}
		dir := path
		if !info.IsDir() {
			dir = filepath.Dir(path)
		}
		if !seen[dir] {
			seen[dir] = true
			dirs = append(dirs, dir)
		}
	}
	return dirs, nil
}

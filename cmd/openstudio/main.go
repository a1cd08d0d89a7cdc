// cmd/openstudio/main.go
//
// This is the entry point for the openstudio CLI.
// When you run `openstudio` from any directory, this is what executes.
//
// Flow:
// 1. Load .env and pick the project directory (OPENSTUDIO_HOME or cwd)
// 2. Initialize .openstudio/ and read its config
// 3. Open the model document, or start an empty model if none exists
// 4. Launch the TUI
//
// An optional argument names the model document and overrides model.path.

package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/kingrea/openstudio/internal/config"
	"github.com/kingrea/openstudio/internal/logbook"
	"github.com/kingrea/openstudio/internal/logging"
	"github.com/kingrea/openstudio/internal/model"
	"github.com/kingrea/openstudio/internal/tui"
)

func main() {
	_ = godotenv.Load()

	projectDir, err := resolveProjectDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error resolving project directory: %v\n", err)
		os.Exit(1)
	}

	if err := config.InitProjectDir(projectDir); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing .openstudio directory: %v\n", err)
		os.Exit(1)
	}
	cfg, err := config.NewConfig(projectDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if len(os.Args) > 1 {
		path, err := filepath.Abs(os.Args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error resolving model path: %v\n", err)
			os.Exit(1)
		}
		cfg.Project.Model.Path = path
	}

	logger, err := logging.New(projectDir, cfg.LogLevel())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log: %v\n", err)
		os.Exit(1)
	}

	// os.Exit skips deferred calls, so the log is closed before exiting
	err = run(cfg, logger)
	logger.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error %v\n", err)
		os.Exit(1)
	}
}

// run opens the model and the journal, then blocks until the user quits.
func run(cfg *config.Config, logger *logging.Logger) error {
	m, err := openModel(cfg.ModelPath(), logger.Logger)
	if err != nil {
		return fmt.Errorf("opening model: %w", err)
	}
	logger.Info("session opened",
		zap.String("model", cfg.ModelPath()),
		zap.Int("objects", m.Workspace().Len()),
		zap.String("units", cfg.Project.Units))

	journal, err := logbook.New(filepath.Join(cfg.LogsDir(), logbook.FileName))
	if err != nil {
		return fmt.Errorf("opening journal: %w", err)
	}

	app, err := tui.NewApp(cfg, m, tui.WithLogger(logger.Logger), tui.WithLogbook(journal))
	if err != nil {
		return fmt.Errorf("creating TUI: %w", err)
	}

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Error("tui exited", zap.Error(err))
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}

func resolveProjectDir() (string, error) {
	if home := os.Getenv("OPENSTUDIO_HOME"); home != "" {
		return filepath.Abs(home)
	}
	return os.Getwd()
}

// openModel loads path. A missing document yields an empty model that the
// first save creates.
func openModel(path string, logger *zap.Logger) (*model.Model, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		logger.Info("model not found, starting empty", zap.String("path", path))
	}
	return model.LoadFile(path, model.WithLogger(logger))
}

package main

import (
	"context"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/VarunSharma3520/GenPad/internal/config"
	"github.com/VarunSharma3520/GenPad/internal/fs"
	"github.com/VarunSharma3520/GenPad/internal/llm"
	"github.com/VarunSharma3520/GenPad/internal/logger"
	"github.com/VarunSharma3520/GenPad/internal/ui"
)

const logFileName = "genpad.log"

func main() {
	if err := config.LoadEnvFile(); err != nil {
		log.Fatalf("Failed to load .env: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Ensure vault exists before starting UI
	if err := fs.EnsureVaultExists(cfg.VaultPath); err != nil {
		log.Fatalf("Failed to ensure vault folder exists: %v", err)
	}

	appLogger, err := logger.NewLogger(filepath.Join(cfg.VaultPath, logFileName))
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Close()

	ctx := context.Background()

	// A missing key should not stop the UI; the error shows up on the first click.
	gen, err := llm.New(ctx, cfg)
	startupStatus := ""
	if err != nil {
		appLogger.Error("generator unavailable", err, map[string]interface{}{
			"backend": cfg.Backend,
			"model":   cfg.ModelName,
		})
		gen = llm.Unavailable(err)
		startupStatus = "Generator unavailable: " + err.Error()
	} else {
		appLogger.Info("generator ready", map[string]interface{}{
			"backend": cfg.Backend,
			"model":   cfg.ModelName,
		})
	}

	model := ui.InitialModel(ctx, cfg, gen, appLogger)
	model.StatusMsg = startupStatus

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithOutput(os.Stdout),
	)

	if _, err := p.Run(); err != nil {
		appLogger.Error("program exited with error", err, nil)
		log.SetOutput(os.Stderr)
		log.Printf("Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/rgehrsitz/finhealth/internal/advisor"
	"github.com/rgehrsitz/finhealth/internal/calculation"
	"github.com/rgehrsitz/finhealth/internal/config"
	"github.com/rgehrsitz/finhealth/internal/logging"
	"github.com/rgehrsitz/finhealth/internal/tui"
)

// Usage: finhealth-tui [snapshot-file] [profile]
//
// Logs go to the file named by FINHEALTH_TUI_LOG; the terminal belongs to the UI.
func main() {
	var snapshotPath, profile string
	if len(os.Args) > 1 {
		snapshotPath = os.Args[1]
		if _, err := os.Stat(snapshotPath); os.IsNotExist(err) {
			fmt.Printf("Error: snapshot file not found: %s\n", snapshotPath)
			os.Exit(1)
		}
	}
	if len(os.Args) > 2 {
		profile = os.Args[2]
	}

	settings, err := config.LoadSettings(os.Getenv("FINHEALTH_CONFIG"))
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	logger := zerolog.Nop()
	if path := os.Getenv("FINHEALTH_TUI_LOG"); path != "" {
		f, err := tea.LogToFile(path, "finhealth")
		if err != nil {
			fmt.Printf("Error opening log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logger = logging.New(f, settings.Log.Level, "json")
	}

	var adv advisor.Advisor = advisor.Disabled{}
	if settings.Advisor.Enabled() {
		adv = advisor.NewOpenRouterClient(settings.Advisor)
	}

	evaluator := calculation.NewHealthEvaluator()
	evaluator.SetLogger(logging.NewAdapter(logger))

	model := tui.NewModel(tui.Options{
		SnapshotPath: snapshotPath,
		Profile:      profile,
		Evaluator:    evaluator,
		Advisor:      adv,
		Logger:       logging.NewAdapter(logger),
	})

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

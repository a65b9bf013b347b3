package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"chime/internal/app"
	"chime/internal/config"
	"chime/internal/logging"
	"chime/internal/player"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog := logging.Setup(cfg.Log)
	defer closeLog()

	p := player.New()
	m := app.New(cfg, p, logger)

	prog := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := prog.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kingrea/fieldlint/internal/config"
	"github.com/kingrea/fieldlint/internal/logging"
	"github.com/kingrea/fieldlint/internal/tui"
)

func handleTUICommand() bool {
	if len(os.Args) < 2 || os.Args[1] != "tui" {
		return false
	}
	cwd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error getting working directory: %v\n", err)
		os.Exit(1)
	}
	if err := config.InitFieldlintDir(cwd); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing .fieldlint directory: %v\n", err)
		os.Exit(1)
	}
	reg, err := buildRegistry(cwd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading rules: %v\n", err)
		os.Exit(1)
	}
	logger, err := logging.New(cwd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
		os.Exit(1)
	}
	p := tea.NewProgram(
		tui.NewApp(reg, logger),
		tea.WithAltScreen(), // Use alternate screen buffer (like vim does)
	)
	_, runErr := p.Run()
	logger.Close()
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", runErr)
		os.Exit(1)
	}
	os.Exit(0)
	return true
}

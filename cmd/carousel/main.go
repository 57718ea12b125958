package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"carousel/internal/config"
	"carousel/internal/ui"
)

func main() {
	// Parse command line arguments
	var configPath string
	flag.StringVar(&configPath, "config", "", "Path to a carousel config file")
	flag.StringVar(&configPath, "c", "", "Path to a carousel config file (shorthand)")
	flag.Parse()

	// Set up logging
	logFile, err := os.OpenFile("carousel.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	cfg := loadOrCreateConfig(configPath)

	model := ui.NewModel(cfg)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		log.Printf("Error running program: %v", err)
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}

// loadOrCreateConfig loads the config from the given path, or from the
// working directory's dotfile, creating it with defaults when missing.
func loadOrCreateConfig(path string) *config.Config {
	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}
	svc := config.NewService(wd)

	if path != "" {
		cfg, err := svc.LoadFromPath(path)
		if err != nil {
			log.Printf("Error loading config from %s: %v", path, err)
			return config.Default()
		}
		log.Printf("Loaded config from %s", path)
		return cfg
	}

	dotfile := filepath.Join(wd, config.FileName)
	if _, err := os.Stat(dotfile); err == nil {
		if cfg, err := svc.LoadFromPath(dotfile); err == nil {
			log.Printf("Loaded config from %s", dotfile)
			return cfg
		}
	}

	// No config or failed to load - create a new one
	log.Printf("Creating new config at %s", dotfile)
	cfg := config.Default()
	if err := svc.SaveToPath(cfg, dotfile); err != nil {
		log.Printf("Failed to save config: %v", err)
	}
	return cfg
}

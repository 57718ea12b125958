package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// FileName is the dotfile looked up in the working directory.
const FileName = ".carousel.toml"

// Config represents the demo application configuration
type Config struct {
	StartFrame    int     `toml:"start_frame"`
	FrameBoundary float64 `toml:"frame_boundary"`
	Loop          bool    `toml:"loop"`
	ClonesCount   int     `toml:"clones_count"`
	Draggable     bool    `toml:"draggable"`
	Swipeable     bool    `toml:"swipeable"`
	Vertical      bool    `toml:"vertical"`
	TransitionMs  int     `toml:"transition_ms"`

	Frames []Frame `toml:"frames"` // demo frame content
}

// Frame is one demo frame's content
type Frame struct {
	Title string `toml:"title"`
	Body  string `toml:"body"`
	Color string `toml:"color"` // ANSI color code for lipgloss
}

// Service handles configuration management
type Service interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// service is the concrete implementation
type service struct {
	filePath string
}

// NewService creates a config service rooted at dir.
func NewService(dir string) Service {
	return &service{filePath: filepath.Join(dir, FileName)}
}

// Load loads the configuration from the service's default path, falling
// back to defaults when no file exists.
func (s *service) Load() (*Config, error) {
	if _, err := os.Stat(s.filePath); os.IsNotExist(err) {
		return Default(), nil
	}
	return s.LoadFromPath(s.filePath)
}

// Save saves the configuration to the service's default path
func (s *service) Save(config *Config) error {
	return s.SaveToPath(config, s.filePath)
}

// LoadFromPath loads configuration from a specific path
func (s *service) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}

// SaveToPath saves configuration to a specific path
func (s *service) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		StartFrame:    0,
		FrameBoundary: 0.25,
		Loop:          true,
		ClonesCount:   2,
		Draggable:     true,
		Swipeable:     true,
		TransitionMs:  300,
		Frames: []Frame{
			{Title: "one", Body: "First frame", Color: "99"},
			{Title: "two", Body: "Second frame", Color: "33"},
			{Title: "three", Body: "Third frame", Color: "214"},
			{Title: "four", Body: "Fourth frame", Color: "41"},
			{Title: "five", Body: "Fifth frame", Color: "203"},
		},
	}
}

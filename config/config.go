// SPDX-License-Identifier: GPL-2.0-or-later

// Package config loads the yaml settings file and builds the logger
// from it. Priority is defaults, then file, then command line flags.
package config

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config holds all game settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Audio    AudioConfig    `yaml:"audio"`
	Game     GameConfig     `yaml:"game"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width         int  `yaml:"width"`
	Height        int  `yaml:"height"`
	Fullscreen    bool `yaml:"fullscreen"`
	VSync         bool `yaml:"vsync"`
	StencilShadow bool `yaml:"stencil_shadows"`
	PlanarShadow  bool `yaml:"planar_shadows"`
}

// AudioConfig holds audio settings.
type AudioConfig struct {
	Volume float64 `yaml:"volume"`
	Muted  bool    `yaml:"muted"`
}

// GameConfig holds gameplay settings.
type GameConfig struct {
	BaseDir string `yaml:"base_dir"` // asset tree root
	Map     string `yaml:"map"`
	Model   string `yaml:"model"` // player model name
	Bots    int    `yaml:"bots"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns the settings used without a config file.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:         1280,
			Height:        720,
			VSync:         true,
			StencilShadow: true,
			PlanarShadow:  true,
		},
		Audio: AudioConfig{
			Volume: 0.8,
		},
		Game: GameConfig{
			BaseDir: "data",
			Map:     "arena",
			Model:   "sarge",
			Bots:    1,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads the config file at path, or from the standard locations
// when path is empty. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		path = findConfigFile()
	}
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read config %s", path)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "parse config %s", path)
	}
	return cfg, nil
}

func findConfigFile() string {
	candidates := []string{
		"./goarena.yaml",
		filepath.Join(configDir(), "goarena.yaml"),
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

func configDir() string {
	switch runtime.GOOS {
	case "darwin":
		home, _ := os.UserHomeDir()
		return filepath.Join(home, "Library", "Application Support", "goarena")
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "goarena")
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "goarena")
		}
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "goarena")
	}
}

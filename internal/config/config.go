package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gobwas/glob"

	"github.com/LFroesch/lsl/internal/logger"
)

// Version info - set via ldflags during build
var Version = "0.3.0"

// Sort orders accepted in the config file.
const (
	SortNone      = "none"
	SortName      = "name"
	SortDirsFirst = "dirs-first"
)

const defaultTimeFormat = "2006-01-02 15:04"

// Config holds all lsl configuration
type Config struct {
	Editor       string   `json:"editor"`        // empty: first of nvim, vim, nano, vi found on PATH
	ShowHidden   bool     `json:"show_hidden"`   // list dotfiles
	HidePatterns []string `json:"hide_patterns"` // glob patterns of names to leave out, e.g. "*.o"
	Sort         string   `json:"sort"`          // none (directory order), name, dirs-first
	GitStatus    bool     `json:"git_status"`    // show branch and modified markers
	TimeFormat   string   `json:"time_format"`   // Go layout for the modified column
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		ShowHidden:   true,
		HidePatterns: []string{},
		Sort:         SortNone,
		GitStatus:    true,
		TimeFormat:   defaultTimeFormat,
	}
}

// Load reads config from ~/.config/lsl/lsl-config.json
func Load() *Config {
	defaultConfig := Default()

	configPath, err := GetConfigPath()
	if err != nil {
		logger.Error("Failed to resolve config path: %v", err)
		return defaultConfig
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		// Save default config and return it
		if err := Save(defaultConfig); err != nil {
			logger.Warn("Failed to save default config: %v", err)
		}
		return defaultConfig
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		logger.Warn("Failed to parse config file %s: %v, using defaults", configPath, err)
		return defaultConfig
	}

	config.validate()
	return config
}

func (c *Config) validate() {
	switch c.Sort {
	case SortNone, SortName, SortDirsFirst:
	case "":
		c.Sort = SortNone
	default:
		logger.Warn("Unknown sort %q, using %q", c.Sort, SortNone)
		c.Sort = SortNone
	}

	if c.TimeFormat == "" {
		c.TimeFormat = defaultTimeFormat
	} else if strings.TrimSpace(time.Unix(0, 0).Format(c.TimeFormat)) == "" {
		logger.Warn("Time format %q renders nothing, using default", c.TimeFormat)
		c.TimeFormat = defaultTimeFormat
	}

	if c.HidePatterns == nil {
		c.HidePatterns = []string{}
	}
}

// Save writes config to ~/.config/lsl/lsl-config.json
func Save(config *Config) error {
	configPath, err := GetConfigPath()
	if err != nil {
		logger.Error("Failed to resolve config path: %v", err)
		return err
	}
	configDir := filepath.Dir(configPath)

	if err := os.MkdirAll(configDir, 0755); err != nil {
		logger.Error("Failed to create config directory %s: %v", configDir, err)
		return fmt.Errorf("cannot create config directory: %w", err)
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		logger.Error("Failed to marshal config: %v", err)
		return fmt.Errorf("cannot marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		logger.Error("Failed to write config file %s: %v", configPath, err)
		return fmt.Errorf("cannot write config file: %w", err)
	}

	return nil
}

// GetConfigPath returns the path to the config file
func GetConfigPath() (string, error) {
	dir, err := logger.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "lsl-config.json"), nil
}

// Visible returns a predicate that reports whether an entry name should be
// listed. Patterns that fail to compile are logged and ignored.
func (c *Config) Visible() func(name string) bool {
	var patterns []glob.Glob
	for _, p := range c.HidePatterns {
		g, err := glob.Compile(p)
		if err != nil {
			logger.Warn("Ignoring hide pattern %q: %v", p, err)
			continue
		}
		patterns = append(patterns, g)
	}
	showHidden := c.ShowHidden

	return func(name string) bool {
		if !showHidden && strings.HasPrefix(name, ".") {
			return false
		}
		for _, g := range patterns {
			if g.Match(name) {
				return false
			}
		}
		return true
	}
}

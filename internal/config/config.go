// Package config provides viper-backed engine settings and path utilities.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Settings holds every user-tunable knob the engine and CLI consume.
type Settings struct {
	DatabasePath      string
	KeywordTablesFile string
	RulesFile         string
	ReviewThreshold   float64
	CategoryThreshold float64
}

// SetDefaults registers defaults for every settings key.
func SetDefaults() {
	viper.SetDefault("review.threshold", 0.25)
	viper.SetDefault("review.category_threshold", 0.50)
	viper.SetDefault("database.path", "~/.local/share/ledgerlens/ledgerlens.db")
	viper.SetDefault("categories.keywords_file", "")
	viper.SetDefault("categories.rules_file", "")
}

// Load reads settings out of viper, expanding paths and validating ranges.
func Load() (Settings, error) {
	s := Settings{
		DatabasePath:      ExpandPath(viper.GetString("database.path")),
		KeywordTablesFile: ExpandPath(viper.GetString("categories.keywords_file")),
		RulesFile:         ExpandPath(viper.GetString("categories.rules_file")),
		ReviewThreshold:   viper.GetFloat64("review.threshold"),
		CategoryThreshold: viper.GetFloat64("review.category_threshold"),
	}

	if s.ReviewThreshold < 0.0 || s.ReviewThreshold > 1.0 {
		return Settings{}, fmt.Errorf("review.threshold must be between 0.0 and 1.0, got %.2f", s.ReviewThreshold)
	}
	if s.CategoryThreshold < 0.0 || s.CategoryThreshold > 1.0 {
		return Settings{}, fmt.Errorf("review.category_threshold must be between 0.0 and 1.0, got %.2f", s.CategoryThreshold)
	}
	if s.DatabasePath == "" {
		return Settings{}, fmt.Errorf("database.path must not be empty")
	}
	return s, nil
}

// ExpandPath expands ~ and environment variables in a file path.
func ExpandPath(path string) string {
	if path == "" {
		return path
	}

	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, path[2:])
		}
	} else if path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			path = home
		}
	}

	return os.ExpandEnv(path)
}

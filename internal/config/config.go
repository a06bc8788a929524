// FILE: internal/config/config.go

// Package config loads optional per-user rendering preferences.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var validate = validator.New()

// Config holds the user's rendering preferences. Every field is
// optional; zero values defer to the built-in defaults.
type Config struct {
	Theme    string `yaml:"theme" validate:"omitempty,oneof=classic brown green gray mono"`
	Glyphs   string `yaml:"glyphs" validate:"omitempty,oneof=unicode ascii"`
	Flip     bool   `yaml:"flip"`
	ShowTurn *bool  `yaml:"show-turn"`
}

// ShowTurnValue resolves the optional show-turn field, defaulting to on.
func (c Config) ShowTurnValue() bool {
	if c.ShowTurn == nil {
		return true
	}
	return *c.ShowTurn
}

// Path returns the per-user config file location, or "" when the user
// config directory cannot be determined.
func Path() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "fencat", "config.yaml")
}

// Load reads the user's config file. A missing file is not an error;
// the zero Config is returned.
func Load() (Config, error) {
	p := Path()
	if p == "" {
		return Config{}, nil
	}
	return LoadFile(p)
}

// LoadFile reads and validates the config file at path. A missing file
// yields the zero Config without error.
func LoadFile(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks field values against their constraints and reports
// every violation in one message.
func (c Config) Validate() error {
	errs := validate.Struct(c)
	if errs == nil {
		return nil
	}
	var details strings.Builder
	for _, err := range errs.(validator.ValidationErrors) {
		if details.Len() > 0 {
			details.WriteString("; ")
		}
		switch err.Tag() {
		case "oneof":
			details.WriteString(fmt.Sprintf("%s must be one of [%s]", err.Field(), err.Param()))
		default:
			details.WriteString(fmt.Sprintf("%s failed %s validation", err.Field(), err.Tag()))
		}
	}
	return fmt.Errorf("invalid config: %s", details.String())
}

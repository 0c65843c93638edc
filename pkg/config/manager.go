// Package config provides beamer's environment-backed configuration.
package config

import (
	"fmt"
	"os"
)

const (
	// EnvXrandr overrides the display tool binary beamer invokes.
	EnvXrandr = "BEAMER_XRANDR"
	// DefaultXrandr is the binary used when no override is set.
	DefaultXrandr = "xrandr"
)

// Manager provides configuration management functionality
type Manager interface {
	GetString(key string) (string, error)
	GetStringWithDefault(key, defaultValue string) string
}

// EnvManager implements the Manager interface over process environment
type EnvManager struct {
}

// NewManager creates a new environment-backed config manager
func NewManager() Manager {
	return &EnvManager{}
}

// GetString gets a configuration value by key, returns error if not found
func (m *EnvManager) GetString(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("configuration key %s not found", key)
	}
	return value, nil
}

// GetStringWithDefault gets a configuration value by key, returns default if not found
func (m *EnvManager) GetStringWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// XrandrBinary returns the display tool binary to invoke.
func XrandrBinary(m Manager) string {
	return m.GetStringWithDefault(EnvXrandr, DefaultXrandr)
}

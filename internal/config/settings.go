package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/mattn/go-isatty"
)

// Settings carries the environment-driven knobs shared by all
// commands.
type Settings struct {
	// Color selects colored output: auto, always or never.
	Color string `env:"KIN_COLOR" envDefault:"auto"`
}

// FromEnv loads settings from environment variables.
func FromEnv() (*Settings, error) {
	s := &Settings{}
	if err := env.Parse(s); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	// A set-but-empty KIN_COLOR means "unset" to the shell user.
	if s.Color == "" {
		s.Color = ColorAuto
	}
	switch s.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return nil, fmt.Errorf("KIN_COLOR: invalid mode %q (want auto, always or never)", s.Color)
	}
	return s, nil
}

// ColorEnabled decides whether output to fd should carry ANSI codes.
// The always and never modes win outright; auto follows the NO_COLOR
// convention, then requires a real terminal.
func (s *Settings) ColorEnabled(fd uintptr) bool {
	switch s.Color {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}

	// NO_COLOR convention: https://no-color.org/
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return true
}

// Package settings persists host preferences that are not part of the engine
// configuration, such as whether the ghost piece is drawn.
package settings

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strconv"

	"github.com/kirsle/configdir"
	"github.com/spf13/viper"
)

const (
	Ghost     = "ghost"
	Inspector = "inspector"
)

var defaults = map[string]bool{
	Ghost:     true,
	Inspector: false,
}

// Keys lists the known settings in a stable order.
func Keys() []string {
	keys := make([]string, 0, len(defaults))
	for k := range defaults {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

type Settings struct {
	v    *viper.Viper
	file string
}

// DefaultDir is the per-user directory the settings file lives in.
func DefaultDir() string {
	return configdir.LocalConfig("blockfall")
}

// Read loads settings.yaml from dir, creating the directory and the file
// when missing. An empty dir means DefaultDir.
func Read(dir string) (*Settings, error) {
	if dir == "" {
		dir = DefaultDir()
	}
	if err := configdir.MakePath(dir); err != nil {
		return nil, fmt.Errorf("create settings dir: %w", err)
	}

	v := viper.New()
	v.SetConfigName("settings")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)
	for k, def := range defaults {
		v.SetDefault(k, def)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read settings: %w", err)
		}
		if err := v.SafeWriteConfig(); err != nil {
			return nil, fmt.Errorf("create settings: %w", err)
		}
	}
	return &Settings{v: v, file: filepath.Join(dir, "settings.yaml")}, nil
}

func (s *Settings) Ghost() bool     { return s.v.GetBool(Ghost) }
func (s *Settings) Inspector() bool { return s.v.GetBool(Inspector) }

// Get returns the value of key formatted as on or off.
func (s *Settings) Get(key string) (string, error) {
	if _, ok := defaults[key]; !ok {
		return "", fmt.Errorf("unknown setting %q", key)
	}
	return onOff(s.v.GetBool(key)), nil
}

// Set parses value as on/off (or any strconv boolean), stores it and writes
// the file.
func (s *Settings) Set(key, value string) error {
	if _, ok := defaults[key]; !ok {
		return fmt.Errorf("unknown setting %q", key)
	}
	b, err := parseBool(value)
	if err != nil {
		return fmt.Errorf("setting %s: %w", key, err)
	}
	s.v.Set(key, b)
	if err := s.v.WriteConfig(); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// File is the path of the backing settings file.
func (s *Settings) File() string {
	return s.file
}

func parseBool(value string) (bool, error) {
	switch value {
	case "on":
		return true, nil
	case "off":
		return false, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%q is neither on nor off", value)
	}
	return b, nil
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

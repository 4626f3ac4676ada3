// Package config loads etsvibes settings from an INI file.
//
// The file is chosen from, in order: the --config flag, the ETSVIBES_CONFIG
// environment variable, or <user config dir>/etsvibes/config.ini. A missing
// default file yields the defaults; a missing explicit file is an error.
//
//	[paths]
//	roots = /mnt/games/Euro Truck Simulator 2, /backup/ats
//
//	[edit]
//	encrypt = false
//	money   = 50000000
//	xp      = 10000000
//
//	[log]
//	enabled = true
//	dir     = /tmp/etsvibes-logs
//	level   = debug
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/ini.v1"
)

// EnvVar names the environment variable holding a config path.
const EnvVar = "ETSVIBES_CONFIG"

// Defaults applied when the file omits a value.
const (
	DefaultMoney int64 = 50_000_000
	DefaultXP    int64 = 10_000_000
)

// Config is the resolved configuration.
type Config struct {
	// Path is the file the config was read from; empty for defaults.
	Path string

	// Roots are extra game data directories searched for profiles.
	Roots []string

	// Encrypt re-encrypts saves that were encrypted when read.
	Encrypt bool
	// Money is the default balance for `quick`.
	Money int64
	// XP is the default experience for `quick-xp`.
	XP int64

	Log LogConfig
}

// LogConfig configures internal/logger.
type LogConfig struct {
	Enabled bool
	Dir     string
	Level   string
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Money: DefaultMoney,
		XP:    DefaultXP,
		Log:   LogConfig{Level: "info"},
	}
}

// DefaultPath returns <user config dir>/etsvibes/config.ini.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "etsvibes", "config.ini"), nil
}

// Load resolves the config file (explicit path, then EnvVar, then the default
// path) and parses it.
func Load(explicit string) (Config, error) {
	path := explicit
	if path == "" {
		path = os.Getenv(EnvVar)
	}
	if path != "" {
		return LoadFile(path)
	}

	path, err := DefaultPath()
	if err != nil {
		return Default(), nil
	}
	cfg, err := LoadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// LoadFile parses the INI file at path.
func LoadFile(path string) (Config, error) {
	if _, err := os.Stat(path); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	file, err := ini.Load(path)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	cfg, err := parse(file)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	cfg.Path = path
	return cfg, nil
}

// Parse parses INI text; used for inline configs and tests.
func Parse(data []byte) (Config, error) {
	file, err := ini.Load(data)
	if err != nil {
		return Config{}, err
	}
	return parse(file)
}

func parse(file *ini.File) (Config, error) {
	cfg := Default()

	paths := file.Section("paths")
	cfg.Roots = paths.Key("roots").Strings(",")

	edit := file.Section("edit")
	var err error
	if cfg.Encrypt, err = boolKey(edit, "encrypt", false); err != nil {
		return Config{}, err
	}
	if cfg.Money, err = int64Key(edit, "money", DefaultMoney); err != nil {
		return Config{}, err
	}
	if cfg.XP, err = int64Key(edit, "xp", DefaultXP); err != nil {
		return Config{}, err
	}

	log := file.Section("log")
	if cfg.Log.Enabled, err = boolKey(log, "enabled", false); err != nil {
		return Config{}, err
	}
	cfg.Log.Dir = log.Key("dir").String()
	cfg.Log.Level = log.Key("level").MustString("info")

	return cfg, nil
}

func boolKey(s *ini.Section, name string, def bool) (bool, error) {
	if !s.HasKey(name) || s.Key(name).String() == "" {
		return def, nil
	}
	v, err := s.Key(name).Bool()
	if err != nil {
		return false, fmt.Errorf("[%s] %s: %w", s.Name(), name, err)
	}
	return v, nil
}

func int64Key(s *ini.Section, name string, def int64) (int64, error) {
	if !s.HasKey(name) || s.Key(name).String() == "" {
		return def, nil
	}
	v, err := s.Key(name).Int64()
	if err != nil {
		return 0, fmt.Errorf("[%s] %s: %w", s.Name(), name, err)
	}
	if v < 0 {
		return 0, fmt.Errorf("[%s] %s: negative value %d", s.Name(), name, v)
	}
	return v, nil
}

// Package config loads sidecar settings: defaults, then an optional YAML
// file, then a .env file and PITCHSIDE_* environment overrides.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/nstehr/pitchside/tactics"
)

const envPrefix = "PITCHSIDE_"

type Config struct {
	Socket   string          `yaml:"socket"`
	WSAddr   string          `yaml:"ws_addr"`
	DBPath   string          `yaml:"db_path"`
	DumpDir  string          `yaml:"dump_dir"`
	LogLevel string          `yaml:"log_level"`
	Team     string          `yaml:"team"`
	Profile  tactics.Profile `yaml:"profile"`
}

func Default() Config {
	return Config{
		Socket:   "/tmp/pitchside.sock",
		DBPath:   "pitchside.db",
		LogLevel: "info",
		Team:     "left",
		Profile:  tactics.DefaultProfile(),
	}
}

// Load builds the effective configuration. path may be empty; envFile is
// optional and silently skipped when missing.
func Load(path, envFile string) (Config, error) {
	cfg := Default()

	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := decode(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if envFile != "" {
		// Variables already set in the process environment win.
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load env file: %w", err)
		}
	}
	applyEnv(&cfg)

	cfg.Profile.Validate()
	if _, err := ParseLevel(cfg.LogLevel); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadProfile reads only the tactical profile section of a config file.
func LoadProfile(path string) (tactics.Profile, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		return tactics.Profile{}, fmt.Errorf("read config: %w", err)
	}
	if err := decode(b, &cfg); err != nil {
		return tactics.Profile{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.Profile.Validate()
	return cfg.Profile, nil
}

func decode(b []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func applyEnv(cfg *Config) {
	overrides := map[string]*string{
		"SOCKET":    &cfg.Socket,
		"WS_ADDR":   &cfg.WSAddr,
		"DB":        &cfg.DBPath,
		"DUMP_DIR":  &cfg.DumpDir,
		"LOG_LEVEL": &cfg.LogLevel,
		"TEAM":      &cfg.Team,
	}
	for key, dst := range overrides {
		if v, ok := os.LookupEnv(envPrefix + key); ok {
			*dst = strings.TrimSpace(v)
		}
	}
}

// ParseLevel maps a level name to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log level %q: %w", s, err)
	}
	return lvl, nil
}

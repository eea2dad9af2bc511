package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the shell settings that may be given in a YAML file; any key
// left out keeps its default.
type Config struct {
	// Prompt is shown before each line in terminal mode.
	Prompt string `yaml:"prompt"`

	// History names the file that lines typed into the terminal shell are
	// appended to; empty disables history.
	History string `yaml:"history"`

	// Precision is the number of significant digits used to print values,
	// or -1 for as many as needed.
	Precision int `yaml:"precision"`
}

const configEnv = "RPNCALC_CONFIG"

func defaultConfig() Config {
	cfg := Config{
		Prompt:    "> ",
		Precision: -1,
	}
	if home, err := os.UserHomeDir(); err == nil {
		cfg.History = filepath.Join(home, ".rpncalc_history")
	}
	return cfg
}

// configPath returns the config file named by $RPNCALC_CONFIG, falling back
// to rpncalc/config.yaml under the user config directory.
func configPath() string {
	if path := os.Getenv(configEnv); path != "" {
		return path
	}
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "rpncalc", "config.yaml")
	}
	return ""
}

// loadConfig reads the config file at path over the defaults. A missing file
// is not an error; on any other error the defaults are returned with it.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	} else if err != nil {
		return cfg, err
	}
	defer f.Close()

	loaded := cfg
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&loaded); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("invalid config %v: %w", path, err)
	}
	if loaded.Precision < -1 {
		return cfg, fmt.Errorf("invalid config %v: precision must be -1 or more, got %v", path, loaded.Precision)
	}
	return loaded, nil
}

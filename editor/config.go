// SPDX-FileCopyrightText:  Copyright 2024 Roland Csaszar
// SPDX-License-Identifier: MIT
//
// Project:  go-modal-editor
// File:     config.go
//
// =============================================================================

package editor

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/Release-Candidate/go-modal-editor/options"
)

// Config is the optional ~/.edrc.toml file's shape: a flat table of
// option name -> raw value string, applied to the editor-scope registry
// the same way a :setg would, before any buffer or window exists.
type Config struct {
	Set map[string]string `toml:"set"`
}

// LoadConfig reads and parses path (expanding a leading "~"), returning a
// zero Config and no error if the file does not exist -- the config file
// is entirely optional.
func LoadConfig(path string) (Config, error) {
	path, err := expandHome(path)
	if err != nil {
		return Config{}, err
	}

	if _, statErr := os.Stat(path); os.IsNotExist(statErr) {
		return Config{}, nil
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// Apply seeds reg with every option in cfg, in map iteration order (the
// config file only sets independent editor-scope options, so ordering
// does not matter).
func (cfg Config) Apply(reg *options.Registry) error {
	for name, raw := range cfg.Set {
		v, err := options.ParseValue(name, raw)
		if err != nil {
			return err
		}

		if err := reg.SetGlobal(name, v); err != nil {
			return err
		}
	}

	return nil
}

// ApplyConfig seeds the editor-scope registry from cfg, called once by
// cmd/edit right after New and before the first key is handled.
func (e *Editor) ApplyConfig(cfg Config) error {
	return cfg.Apply(e.opts)
}

func expandHome(path string) (string, error) {
	if path == "~" {
		return os.UserHomeDir()
	}

	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}

		return filepath.Join(home, path[2:]), nil
	}

	return path, nil
}

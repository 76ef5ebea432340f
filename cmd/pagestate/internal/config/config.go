// Package config loads the optional pagestate.yaml of the demo CLI.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/pagestate/pkg/theme"
)

// FileName is the config file looked up in the project root.
const FileName = "pagestate.yaml"

// Config represents the optional pagestate.yaml configuration.
type Config struct {
	App   AppConfig  `yaml:"app"`
	Theme theme.Spec `yaml:"theme"`
}

// AppConfig contains application metadata.
type AppConfig struct {
	Name string `yaml:"name,omitempty"`
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root       string
	ModulePath string
	AppName    string
	Style      *theme.Style
}

// Load reads and parses the config file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}
	return parse(data, filepath.Base(path))
}

// LoadOptional reads pagestate.yaml from dir if present.
func LoadOptional(dir string) (*Config, error) {
	cfg, err := Load(filepath.Join(dir, FileName))
	if errors.Is(err, os.ErrNotExist) {
		return &Config{}, nil
	}
	return cfg, err
}

func parse(data []byte, name string) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return &cfg, nil
}

// Resolve loads the config (path, or pagestate.yaml in dir when path is
// empty) and resolves defaults. A directory without go.mod is fine; the app
// name then comes from the directory name.
func Resolve(dir, path string) (*Resolved, error) {
	var (
		cfg *Config
		err error
	)
	if path != "" {
		cfg, err = Load(path)
	} else {
		cfg, err = LoadOptional(dir)
	}
	if err != nil {
		return nil, err
	}

	style, err := cfg.Theme.Resolve()
	if err != nil {
		return nil, fmt.Errorf("invalid theme: %w", err)
	}

	modPath := modulePath(dir)
	appName := strings.TrimSpace(cfg.App.Name)
	if appName == "" {
		appName = defaultAppName(modPath, dir)
	}

	return &Resolved{
		Root:       dir,
		ModulePath: modPath,
		AppName:    appName,
		Style:      style,
	}, nil
}

// FindProjectRoot walks up from the current directory to the nearest go.mod.
// Outside a module it returns the current directory.
func FindProjectRoot() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for dir := wd; ; {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return wd, nil
		}
		dir = parent
	}
}

func modulePath(dir string) string {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		return ""
	}
	return modfile.ModulePath(data)
}

func defaultAppName(modulePath, dir string) string {
	base := filepath.Base(dir)
	if modName, _, ok := module.SplitPathVersion(modulePath); ok && modName != "" {
		parts := strings.Split(modName, "/")
		base = parts[len(parts)-1]
	}
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "pagestate"
	}
	return base
}

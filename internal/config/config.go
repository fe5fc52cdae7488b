package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/BurntSushi/toml"
)

// Config is the startup configuration read from a TOML file:
//
//	symbols = "board.yaml"
//	scripts = ["init.cmd"]
//
//	[options]
//	color = true
type Config struct {
	// Symbols names a YAML symbol table to load before anything else.
	Symbols string `toml:"symbols"`

	// Scripts are command files run in order, non-interactively.
	Scripts []string `toml:"scripts"`

	// Options maps option names to boolean, integer, or string values.
	Options map[string]interface{} `toml:"options"`
}

// Setting is one option assignment, its value rendered as text suitable for
// an option parser.
type Setting struct {
	Name string
	Word string
}

// Load reads configuration from a TOML file. Environment variables are
// expanded in file paths, and relative paths are taken relative to the
// directory holding the configuration file.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	cfg.resolvePaths(filepath.Dir(path))
	return &cfg, nil
}

// Parse reads configuration from TOML text; paths are left as written, apart
// from environment expansion.
func Parse(text string) (*Config, error) {
	var cfg Config
	if _, err := toml.Decode(text, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.resolvePaths("")
	return &cfg, nil
}

func (cfg *Config) resolvePaths(dir string) {
	resolve := func(path string) string {
		path = os.ExpandEnv(path)
		if dir != "" && path != "" && !filepath.IsAbs(path) {
			path = filepath.Join(dir, path)
		}
		return path
	}
	cfg.Symbols = resolve(cfg.Symbols)
	for i, script := range cfg.Scripts {
		cfg.Scripts[i] = resolve(script)
	}
}

// Settings returns the configured options sorted by name.
func (cfg *Config) Settings() ([]Setting, error) {
	names := make([]string, 0, len(cfg.Options))
	for name := range cfg.Options {
		names = append(names, name)
	}
	sort.Strings(names)

	settings := make([]Setting, 0, len(names))
	for _, name := range names {
		var word string
		switch value := cfg.Options[name].(type) {
		case bool:
			word = "false"
			if value {
				word = "true"
			}
		case int64:
			word = strconv.FormatInt(value, 10)
		case string:
			word = value
		default:
			return nil, fmt.Errorf("option %v has unsupported value %v (%T)", name, value, value)
		}
		settings = append(settings, Setting{Name: name, Word: word})
	}
	return settings, nil
}

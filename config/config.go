//go:build !js

// Package config loads game catalogs from disk and process settings from
// the environment.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"github.com/simukka/catch-it/game"
)

// Env holds the process settings shared by the server and terminal builds.
type Env struct {
	// Server
	Addr      string
	ConfigDir string
	StaticDir string

	// Logging
	Debug bool
}

// LoadEnv reads settings from the environment, loading .env first if it
// exists.
func LoadEnv() *Env {
	// Load .env file if it exists
	godotenv.Load()

	return &Env{
		Addr:      getEnv("CATCHIT_ADDR", ":8080"),
		ConfigDir: getEnv("CATCHIT_CONFIG_DIR", "configs"),
		StaticDir: getEnv("CATCHIT_STATIC_DIR", "."),
		Debug:     getEnvBool("CATCHIT_DEBUG", false),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

// Parse decodes a catalog in the given format ("json" or "toml") and
// validates it.
func Parse(data []byte, format string) (game.Config, error) {
	var cfg game.Config
	switch strings.ToLower(strings.TrimPrefix(format, ".")) {
	case "json":
		if err := json.Unmarshal(data, &cfg); err != nil {
			return game.Config{}, err
		}
	case "toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return game.Config{}, err
		}
	default:
		return game.Config{}, fmt.Errorf("unsupported config format %q", format)
	}
	if err := cfg.Validate(); err != nil {
		return game.Config{}, err
	}
	return cfg, nil
}

// Load reads the catalog at path, choosing the decoder by file extension.
func Load(path string) (game.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return game.Config{}, fmt.Errorf("load config: %w", err)
	}
	cfg, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return game.Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadDir loads every .json and .toml catalog in dir, keyed by file name
// without extension.
func LoadDir(dir string) (map[string]game.Config, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("load config dir: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".json", ".toml":
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	configs := make(map[string]game.Config, len(names))
	for _, name := range names {
		id := strings.TrimSuffix(name, filepath.Ext(name))
		if _, dup := configs[id]; dup {
			return nil, fmt.Errorf("load config dir: duplicate game id %q", id)
		}
		cfg, err := Load(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		configs[id] = cfg
		game.Debugf("Loaded game config %q", id)
	}
	return configs, nil
}

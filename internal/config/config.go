// Package config loads bob configuration.
//
// Values are layered, highest priority last:
// defaults -> bob.yaml -> BOB_* environment variables -> command line flags.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// Default configuration values.
const (
	DefaultConfigFile    = "bob.yaml"
	DefaultApplication   = "application/"
	DefaultBundles       = "bundles/"
	DefaultBundleName    = "application"
	DefaultExtension     = ".php"
	DefaultTemplatesDir  = "templates"
	DefaultHistoryFile   = ".bob/history.db"
	EnvPrefix            = "BOB_"
	DefaultHistoryLength = 20
)

// Config holds all bob configuration options.
type Config struct {
	Timestamps    bool        `koanf:"timestamps"`
	Force         bool        `koanf:"force"`
	Pretend       bool        `koanf:"pretend"`
	Verbose       bool        `koanf:"verbose"`
	DefaultBundle string      `koanf:"default_bundle"`
	Extension     string      `koanf:"extension"`
	TemplatesDir  string      `koanf:"templates_dir"`
	History       bool        `koanf:"history"`
	HistoryPath   string      `koanf:"history_path"`
	Paths         PathsConfig `koanf:"paths"`

	// ProjectRoot is the directory relative paths are resolved against.
	ProjectRoot string `koanf:"-"`
	// FileUsed is the config file that was loaded, if any.
	FileUsed string `koanf:"-"`
}

// PathsConfig locates the application and bundle directories.
type PathsConfig struct {
	Application string `koanf:"application"`
	Bundles     string `koanf:"bundles"`
}

// Loader reads layered configuration and keeps the raw key space around
// so generators can look up switches by name.
type Loader struct {
	k *koanf.Koanf
}

// NewLoader creates an empty Loader.
func NewLoader() *Loader {
	return &Loader{k: koanf.New(".")}
}

// Koanf returns the underlying key space.
func (l *Loader) Koanf() *koanf.Koanf {
	return l.k
}

// Bool reports the boolean value of key.
func (l *Loader) Bool(key string) bool {
	return l.k.Bool(key)
}

// Load reads configuration from cfgFile (or ./bob.yaml), the environment and
// flags. Only flags that were explicitly set override lower layers.
func (l *Loader) Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	l.k = koanf.New(".")

	if err := l.k.Load(confmap.Provider(map[string]interface{}{
		"timestamps":        false,
		"force":             false,
		"pretend":           false,
		"verbose":           false,
		"default_bundle":    DefaultBundleName,
		"extension":         DefaultExtension,
		"templates_dir":     DefaultTemplatesDir,
		"history":           true,
		"history_path":      DefaultHistoryFile,
		"paths.application": DefaultApplication,
		"paths.bundles":     DefaultBundles,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	used := findConfigFile(cfgFile)
	if used != "" {
		if err := l.k.Load(file.Provider(used), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", used, err)
		}
	}

	// BOB_HISTORY_PATH -> history_path, BOB_PATHS__BUNDLES -> paths.bundles
	if err := l.k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.ReplaceAll(key, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if flags != nil {
		if err := l.k.Load(posflag.ProviderWithFlag(flags, ".", l.k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := l.k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	cfg.FileUsed = used
	cfg.ProjectRoot = projectRoot(used)
	cfg.TemplatesDir = resolvePathRelativeTo(cfg.TemplatesDir, cfg.ProjectRoot)
	cfg.HistoryPath = resolvePathRelativeTo(cfg.HistoryPath, cfg.ProjectRoot)

	return &cfg, nil
}

// findConfigFile returns the explicit path, or ./bob.yaml when it exists.
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if _, err := os.Stat(DefaultConfigFile); err == nil {
		return DefaultConfigFile
	}
	return ""
}

// projectRoot is the config file's directory, or the working directory.
func projectRoot(cfgFile string) string {
	if cfgFile != "" {
		if abs, err := filepath.Abs(cfgFile); err == nil {
			return filepath.Dir(abs)
		}
	}
	cwd, err := os.Getwd()
	if err != nil || cwd == "" {
		return "."
	}
	return cwd
}

// resolvePathRelativeTo resolves a path relative to baseDir if it's not absolute.
func resolvePathRelativeTo(path, baseDir string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(baseDir, path)
}

package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

const CONFIG_FILE = "config.toml"

//go:embed schema.cue
var schemaSrc string

// Load reads the configuration file at path on top of Defaults. The decoder
// is picked from the file extension.
func Load(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Defaults()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.Decode(string(content), cfg); err != nil {
			return nil, fmt.Errorf("%s: toml: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, cfg); err != nil {
			return nil, fmt.Errorf("%s: yaml: %w", path, err)
		}
	case ".cue":
		if err := decodeCUE(path, content, cfg); err != nil {
			return nil, fmt.Errorf("%s: cue: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%s: unsupported config extension %q", path, ext)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func decodeCUE(path string, content []byte, cfg *Config) error {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaSrc).LookupPath(cue.ParsePath("#Config"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}

	value := ctx.CompileBytes(content, cue.Filename(path))
	if err := value.Err(); err != nil {
		return err
	}

	unified := schema.Unify(value)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return err
	}
	return unified.Decode(cfg)
}

// DefaultPath is config.toml inside the per-user configuration directory.
func DefaultPath() (string, error) {
	dir, err := getConfigDir(APP_NAME)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, CONFIG_FILE), nil
}

// Resolve loads the explicit path when one is given. Otherwise it loads the
// default path if that file exists and falls back to Defaults. HON_*
// environment variables are applied last. The returned path is the file
// that was read, or "" when none was.
func Resolve(explicit string) (*Config, string, error) {
	path := explicit
	if path == "" {
		defaultPath, err := DefaultPath()
		if err == nil {
			if _, statErr := os.Stat(defaultPath); statErr == nil {
				path = defaultPath
			}
		}
	}

	cfg := Defaults()
	if path != "" {
		loaded, err := Load(path)
		if err != nil {
			return nil, "", err
		}
		cfg = loaded
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, "", err
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

// WriteDefault creates path with the default configuration. It fails with
// fs.ErrExist rather than overwrite a file.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s: %w", path, fs.ErrExist)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0644)
	if err != nil {
		return err
	}
	defer file.Close()

	return toml.NewEncoder(file).Encode(Defaults())
}

func getConfigDir(appName string) (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	if os.Getenv("OS") == "Windows_NT" {
		return filepath.Join(os.Getenv("APPDATA"), appName), nil
	}
	return filepath.Join(homeDir, ".config", appName), nil
}

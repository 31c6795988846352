package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaults(t *testing.T) {
	cfg := Defaults()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected defaults to be valid, got %v", err)
	}

	expected := []Entry{
		{"parser.max_depth", "200"},
		{"log.level", "info"},
		{"log.file", ""},
		{"output.format", "text"},
		{"output.color", "true"},
	}
	if got := cfg.Entries(); !reflect.DeepEqual(got, expected) {
		t.Fatalf("\nexpected %v\ngot      %v", expected, got)
	}

	level, err := cfg.LogLevel()
	if err != nil || level != slog.LevelInfo {
		t.Errorf("expected info level, got %v (%v)", level, err)
	}
	if cfg.OutputFormat() != FORMAT_TEXT {
		t.Errorf("expected text format, got %s", cfg.OutputFormat())
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		content string
		check   func(t *testing.T, cfg *Config)
	}{
		{
			name:    "config.toml",
			content: "[parser]\nmax_depth = 50\n",
			check: func(t *testing.T, cfg *Config) {
				if cfg.Parser.MaxDepth != 50 {
					t.Errorf("expected max_depth 50, got %d", cfg.Parser.MaxDepth)
				}
				if cfg.Log.Level != "info" || !cfg.Output.Color {
					t.Errorf("expected missing keys to keep defaults, got %+v", cfg)
				}
			},
		},
		{
			name:    "config.yaml",
			content: "log:\n  level: debug\n  file: /tmp/hon.log\noutput:\n  format: json\n",
			check: func(t *testing.T, cfg *Config) {
				level, _ := cfg.LogLevel()
				if level != slog.LevelDebug {
					t.Errorf("expected debug level, got %v", level)
				}
				if cfg.Log.File != "/tmp/hon.log" {
					t.Errorf("unexpected log file %q", cfg.Log.File)
				}
				if cfg.OutputFormat() != FORMAT_JSON {
					t.Errorf("expected json format, got %s", cfg.OutputFormat())
				}
				if cfg.Parser.MaxDepth != 200 {
					t.Errorf("expected default max_depth, got %d", cfg.Parser.MaxDepth)
				}
			},
		},
		{
			name:    "config.yml",
			content: "output:\n  color: false\n",
			check: func(t *testing.T, cfg *Config) {
				if cfg.Output.Color {
					t.Errorf("expected color to be disabled")
				}
			},
		},
		{
			name:    "config.cue",
			content: "parser: max_depth: 10\noutput: {\n\tformat: \"yaml\"\n\tcolor:  false\n}\n",
			check: func(t *testing.T, cfg *Config) {
				if cfg.Parser.MaxDepth != 10 {
					t.Errorf("expected max_depth 10, got %d", cfg.Parser.MaxDepth)
				}
				if cfg.OutputFormat() != FORMAT_YAML || cfg.Output.Color {
					t.Errorf("unexpected output section %+v", cfg.Output)
				}
				if cfg.Log.Level != "info" {
					t.Errorf("expected default level, got %q", cfg.Log.Level)
				}
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cfg, err := Load(writeFile(t, test.name, test.content))
			if err != nil {
				t.Fatalf("unexpected error '%v'", err)
			}
			test.check(t, cfg)
		})
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"config.toml", "[parser]\nmax_depth = 0\n"},
		{"config.toml", "[output]\nformat = \"xml\"\n"},
		{"config.toml", "[parser\n"},
		{"config.yaml", "log:\n  level: loud\n"},
		{"config.yaml", "parser: [1, 2\n"},
		{"config.cue", "parser: max_depth: 0\n"},
		{"config.cue", "unknown: 1\n"},
		{"config.cue", "log: level: \"loud\"\n"},
		{"config.ini", "max_depth=1\n"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if _, err := Load(writeFile(t, test.name, test.content)); err == nil {
				t.Fatalf("expected error for %q", test.content)
			}
		})
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected fs.ErrNotExist, got %v", err)
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("HON_PARSER_MAX_DEPTH", "12")
	t.Setenv("HON_OUTPUT_COLOR", "false")
	t.Setenv("HON_LOG_LEVEL", "warn")

	cfg := Defaults()
	if err := cfg.ApplyEnv(); err != nil {
		t.Fatalf("unexpected error '%v'", err)
	}
	if cfg.Parser.MaxDepth != 12 || cfg.Output.Color || cfg.Log.Level != "warn" {
		t.Fatalf("environment not applied: %+v", cfg)
	}

	t.Setenv("HON_PARSER_MAX_DEPTH", "deep")
	if err := Defaults().ApplyEnv(); err == nil {
		t.Fatalf("expected error for a non-numeric max depth")
	}
}

func TestResolve(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, path, err := Resolve("")
	if err != nil {
		t.Fatalf("unexpected error '%v'", err)
	}
	if path != "" || !reflect.DeepEqual(cfg, Defaults()) {
		t.Fatalf("expected defaults without a config file, got %q %+v", path, cfg)
	}

	defaultPath, err := DefaultPath()
	if err != nil {
		t.Fatalf("unexpected error '%v'", err)
	}
	if filepath.Base(defaultPath) != CONFIG_FILE || filepath.Base(filepath.Dir(defaultPath)) != APP_NAME {
		t.Fatalf("unexpected default path %q", defaultPath)
	}

	if err := WriteDefault(defaultPath); err != nil {
		t.Fatalf("unexpected error '%v'", err)
	}
	if err := WriteDefault(defaultPath); !errors.Is(err, fs.ErrExist) {
		t.Fatalf("expected fs.ErrExist, got %v", err)
	}

	cfg, path, err = Resolve("")
	if err != nil {
		t.Fatalf("unexpected error '%v'", err)
	}
	if path != defaultPath || !reflect.DeepEqual(cfg, Defaults()) {
		t.Fatalf("expected written defaults to load back, got %q %+v", path, cfg)
	}

	explicit := writeFile(t, "other.toml", "[parser]\nmax_depth = 7\n")
	cfg, path, err = Resolve(explicit)
	if err != nil {
		t.Fatalf("unexpected error '%v'", err)
	}
	if path != explicit || cfg.Parser.MaxDepth != 7 {
		t.Fatalf("expected explicit file to win, got %q %+v", path, cfg)
	}

	if _, _, err := Resolve(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatalf("expected an explicit missing file to fail")
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input string
		want  Format
		err   bool
	}{
		{"text", FORMAT_TEXT, false},
		{"", FORMAT_TEXT, false},
		{"YAML", FORMAT_YAML, false},
		{"yml", FORMAT_YAML, false},
		{"json", FORMAT_JSON, false},
		{"xml", FORMAT_TEXT, true},
	}
	for _, test := range tests {
		got, err := ParseFormat(test.input)
		if (err != nil) != test.err || got != test.want {
			t.Errorf("ParseFormat(%q) = %s, %v", test.input, got, err)
		}
	}
}

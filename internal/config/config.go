package config

import (
	"fmt"
	"log/slog"
	"os"
	"reflect"
	"strconv"
	"strings"
)

const APP_NAME = "hon"

type Format int

const (
	FORMAT_TEXT Format = iota
	FORMAT_YAML
	FORMAT_JSON
)

func (f Format) String() string {
	switch f {
	case FORMAT_TEXT:
		return "text"
	case FORMAT_YAML:
		return "yaml"
	case FORMAT_JSON:
		return "json"
	}
	return "unknown"
}

func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "text", "":
		return FORMAT_TEXT, nil
	case "yaml", "yml":
		return FORMAT_YAML, nil
	case "json":
		return FORMAT_JSON, nil
	}
	return FORMAT_TEXT, fmt.Errorf("unknown output format %q", s)
}

type Config struct {
	Parser ParserConfig `toml:"parser" yaml:"parser" json:"parser"`
	Log    LogConfig    `toml:"log" yaml:"log" json:"log"`
	Output OutputConfig `toml:"output" yaml:"output" json:"output"`
}

type ParserConfig struct {
	MaxDepth int `toml:"max_depth" yaml:"max_depth" json:"max_depth" env:"HON_PARSER_MAX_DEPTH"`
}

type LogConfig struct {
	Level string `toml:"level" yaml:"level" json:"level" env:"HON_LOG_LEVEL"`
	File  string `toml:"file" yaml:"file" json:"file" env:"HON_LOG_FILE"`
}

type OutputConfig struct {
	Format string `toml:"format" yaml:"format" json:"format" env:"HON_OUTPUT_FORMAT"`
	Color  bool   `toml:"color" yaml:"color" json:"color" env:"HON_OUTPUT_COLOR"`
}

func Defaults() *Config {
	return &Config{
		Parser: ParserConfig{MaxDepth: 200},
		Log:    LogConfig{Level: "info"},
		Output: OutputConfig{Format: "text", Color: true},
	}
}

func (c *Config) Validate() error {
	if c.Parser.MaxDepth < 1 {
		return fmt.Errorf("parser.max_depth must be at least 1, got %d", c.Parser.MaxDepth)
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	if _, err := ParseFormat(c.Output.Format); err != nil {
		return err
	}
	return nil
}

func (c *Config) LogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelInfo, fmt.Errorf("log.level: %w", err)
	}
	return level, nil
}

func (c *Config) OutputFormat() Format {
	format, _ := ParseFormat(c.Output.Format)
	return format
}

type Entry struct {
	Key   string
	Value string
}

// Entries flattens the configuration into dotted keys, in declaration
// order.
func (c *Config) Entries() []Entry {
	var entries []Entry
	walkFields(reflect.ValueOf(c).Elem(), "", func(key string, _ reflect.StructField, value reflect.Value) {
		entries = append(entries, Entry{Key: key, Value: fmt.Sprint(value.Interface())})
	})
	return entries
}

// ApplyEnv overrides fields from the HON_* variables named by their env
// tags. Unset variables leave the field alone.
func (c *Config) ApplyEnv() error {
	return c.MapEnvToStruct(envMap())
}

func (c *Config) MapEnvToStruct(data map[string]string) error {
	var firstErr error
	walkFields(reflect.ValueOf(c).Elem(), "", func(key string, field reflect.StructField, value reflect.Value) {
		envTag := field.Tag.Get("env")
		raw, ok := data[envTag]
		if envTag == "" || !ok || firstErr != nil {
			return
		}
		if err := setFromString(value, raw); err != nil {
			firstErr = fmt.Errorf("%s: %s: %w", envTag, key, err)
		}
	})
	return firstErr
}

func walkFields(v reflect.Value, prefix string, fn func(string, reflect.StructField, reflect.Value)) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		fieldValue := v.Field(i)

		key := field.Tag.Get("toml")
		if prefix != "" {
			key = prefix + "." + key
		}

		if fieldValue.Kind() == reflect.Struct {
			walkFields(fieldValue, key, fn)
			continue
		}
		fn(key, field, fieldValue)
	}
}

func setFromString(value reflect.Value, raw string) error {
	switch value.Kind() {
	case reflect.String:
		value.SetString(raw)
	case reflect.Int:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return err
		}
		value.SetInt(int64(n))
	case reflect.Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return err
		}
		value.SetBool(b)
	default:
		return fmt.Errorf("unsupported kind %s", value.Kind())
	}
	return nil
}

func envMap() map[string]string {
	env := make(map[string]string)
	for _, kv := range os.Environ() {
		key, value, ok := strings.Cut(kv, "=")
		if ok && strings.HasPrefix(key, "HON_") {
			env[key] = value
		}
	}
	return env
}

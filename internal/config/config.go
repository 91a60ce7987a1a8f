/*
Copyright 2025 Trident Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package config holds the settings shared by the splituri binaries.
package config

import (
	"os"
	"strings"

	"github.com/joeshaw/envdecode"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Build metadata, set with -ldflags at release time.
var (
	Version   = "dev"
	GitCommit = "none"
	BuildDate = "unknown"
)

// Log formats accepted by LogFormat.
const (
	LogFormatConsole = "console"
	LogFormatJSON    = "json"
)

// Config is loaded in three layers: the defaults of Default, an optional
// YAML file, then SPLITURI_* environment variables. A variable that is set
// but cannot be parsed into its field fails the load.
type Config struct {
	// Listen is the address the HTTP server binds to. ENV: SPLITURI_LISTEN
	Listen string `yaml:"listen" env:"SPLITURI_LISTEN,strict"`
	// LogLevel is a zap level name (debug, info, warn, error). ENV: SPLITURI_LOG_LEVEL
	LogLevel string `yaml:"log_level" env:"SPLITURI_LOG_LEVEL,strict"`
	// LogFormat is "console" or "json". ENV: SPLITURI_LOG_FORMAT
	LogFormat string `yaml:"log_format" env:"SPLITURI_LOG_FORMAT,strict"`
	// Pretty indents JSON output of the CLI. ENV: SPLITURI_PRETTY
	Pretty bool `yaml:"pretty" env:"SPLITURI_PRETTY,strict"`
	// Normalize applies NFC before splitting. ENV: SPLITURI_NORMALIZE
	Normalize bool `yaml:"normalize" env:"SPLITURI_NORMALIZE,strict"`
	// Strict turns unsupported schemes into errors. ENV: SPLITURI_STRICT
	Strict bool `yaml:"strict" env:"SPLITURI_STRICT,strict"`
	// MaxBodyBytes caps HTTP request bodies. ENV: SPLITURI_MAX_BODY_BYTES
	MaxBodyBytes int64 `yaml:"max_body_bytes" env:"SPLITURI_MAX_BODY_BYTES,strict"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Listen:       "127.0.0.1:8080",
		LogLevel:     "info",
		LogFormat:    LogFormatConsole,
		MaxBodyBytes: 1 << 20,
	}
}

// Load builds a Config from the defaults, the YAML file at path (skipped
// when path is empty) and the environment, then validates it.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, errors.Wrap(err, "read config file")
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, errors.Wrapf(err, "parse config file %s", path)
		}
	}
	if err := envdecode.Decode(&cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return Config{}, errors.Wrap(err, "decode environment")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that every field holds a usable value.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Listen) == "" {
		return errors.New("listen address must not be empty")
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return errors.Errorf("unknown log level %q", c.LogLevel)
	}
	switch c.LogFormat {
	case LogFormatConsole, LogFormatJSON:
	default:
		return errors.Errorf("unknown log format %q", c.LogFormat)
	}
	if c.MaxBodyBytes <= 0 {
		return errors.Errorf("max body bytes must be positive, got %d", c.MaxBodyBytes)
	}
	return nil
}

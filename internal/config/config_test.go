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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "splituri.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_File(t *testing.T) {
	path := writeFile(t, `
listen: ":9090"
log_level: debug
log_format: json
pretty: true
strict: true
max_body_bytes: 2048
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Listen)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, LogFormatJSON, cfg.LogFormat)
	assert.True(t, cfg.Pretty)
	assert.True(t, cfg.Strict)
	assert.False(t, cfg.Normalize)
	assert.EqualValues(t, 2048, cfg.MaxBodyBytes)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	cfg, err := Load(writeFile(t, "normalize: true\n"))
	require.NoError(t, err)
	assert.True(t, cfg.Normalize)
	assert.Equal(t, Default().Listen, cfg.Listen)
	assert.Equal(t, Default().MaxBodyBytes, cfg.MaxBodyBytes)
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	path := writeFile(t, "listen: \":9090\"\nlog_level: debug\n")
	t.Setenv("SPLITURI_LISTEN", ":7070")
	t.Setenv("SPLITURI_STRICT", "true")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.Listen)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.Strict)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.ErrorContains(t, err, "read config file")
	})
	t.Run("bad yaml", func(t *testing.T) {
		_, err := Load(writeFile(t, "listen: [\n"))
		assert.ErrorContains(t, err, "parse config file")
	})
	t.Run("bad env value", func(t *testing.T) {
		t.Setenv("SPLITURI_MAX_BODY_BYTES", "lots")
		_, err := Load("")
		assert.ErrorContains(t, err, "decode environment")
	})
	t.Run("bad env bool", func(t *testing.T) {
		t.Setenv("SPLITURI_STRICT", "maybe")
		_, err := Load(writeFile(t, "strict: false\n"))
		assert.ErrorContains(t, err, "decode environment")
	})
	t.Run("invalid value", func(t *testing.T) {
		_, err := Load(writeFile(t, "log_format: xml\n"))
		assert.ErrorContains(t, err, "unknown log format")
	})
}

func TestConfig_Validate(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "upper case level", mutate: func(c *Config) { c.LogLevel = "WARN" }},
		{name: "empty listen", mutate: func(c *Config) { c.Listen = " " }, errMsg: "listen address"},
		{name: "bad level", mutate: func(c *Config) { c.LogLevel = "trace" }, errMsg: "unknown log level"},
		{name: "bad format", mutate: func(c *Config) { c.LogFormat = "" }, errMsg: "unknown log format"},
		{name: "zero body", mutate: func(c *Config) { c.MaxBodyBytes = 0 }, errMsg: "max body bytes"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tc.errMsg)
		})
	}
}

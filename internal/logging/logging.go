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

// Package logging builds the zap loggers used by the splituri binaries.
package logging

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/jplu/splituri/internal/config"
)

// New builds a logger for the given level and format. The console format is
// meant for terminals: no timestamps, coloured levels, no caller and no
// stack traces. The JSON format is zap's production encoder.
func New(level, format string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, errors.Wrap(err, "parse log level")
	}

	var logConfig zap.Config
	switch format {
	case config.LogFormatJSON:
		logConfig = zap.NewProductionConfig()
	case config.LogFormatConsole, "":
		logConfig = zap.NewDevelopmentConfig()
		logConfig.EncoderConfig.TimeKey = ""
		logConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		logConfig.DisableCaller = true
	default:
		return nil, errors.Errorf("unknown log format %q", format)
	}
	logConfig.DisableStacktrace = true
	logConfig.Level.SetLevel(lvl)

	log, err := logConfig.Build()
	if err != nil {
		return nil, errors.Wrap(err, "build logger")
	}
	return log, nil
}

// FromConfig builds the logger described by cfg.
func FromConfig(cfg config.Config) (*zap.Logger, error) {
	return New(cfg.LogLevel, cfg.LogFormat)
}

package config_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/oskpack/pkg/cli/config"
)

func TestLogger_Configure(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		wantErr bool
	}{
		{name: "Valid level: debug", level: "debug"},
		{name: "Valid level: DEBUG (case insensitive)", level: "DEBUG"},
		{name: "Valid level: info", level: "info"},
		{name: "Valid level: INFO", level: "INFO"},
		{name: "Valid level: warn", level: "warn"},
		{name: "Valid level: WARN", level: "WARN"},
		{name: "Valid level: error", level: "error"},
		{name: "Valid level: ERROR", level: "ERROR"},
		{name: "Invalid level: invalid", level: "invalid", wantErr: true},
		{name: "Invalid level: empty string", level: "", wantErr: true},
		{name: "Invalid level: random", level: "random", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := &config.Logger{
				Level:  tt.level,
				Output: &buf,
			}

			result, err := logger.Configure()
			if tt.wantErr {
				gt.Error(t, err)
				gt.Value(t, result).Nil()
				return
			}

			gt.NoError(t, err)
			gt.Value(t, result).NotNil()
		})
	}
}

func TestLogger_Configure_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := &config.Logger{
		Level:  "info",
		JSON:   true,
		Output: &buf,
	}

	result, err := logger.Configure()
	gt.NoError(t, err).Required()

	result.Info("test log message", "skin", "My Skin")
	gt.String(t, buf.String()).Contains(`"msg":"test log message"`)
	gt.String(t, buf.String()).Contains(`"skin":"My Skin"`)
}

func TestLogger_Configure_LevelBehavior(t *testing.T) {
	var buf bytes.Buffer
	logger := &config.Logger{
		Level:  "warn",
		JSON:   true,
		Output: &buf,
	}

	result, err := logger.Configure()
	gt.NoError(t, err).Required()

	result.Debug("debug message")
	result.Info("info message")
	result.Warn("warn message")
	result.Error("error message")

	out := buf.String()
	gt.False(t, strings.Contains(out, "debug message"))
	gt.False(t, strings.Contains(out, "info message"))
	gt.True(t, strings.Contains(out, "warn message"))
	gt.True(t, strings.Contains(out, "error message"))
}

func TestLogger_Configure_Console(t *testing.T) {
	var buf bytes.Buffer
	logger := &config.Logger{
		Level:  "info",
		Output: &buf,
	}

	result, err := logger.Configure()
	gt.NoError(t, err).Required()

	result.Info("console message")
	gt.String(t, buf.String()).Contains("console message")
}

func TestLogger_Flags(t *testing.T) {
	logger := &config.Logger{}
	flags := logger.Flags()

	gt.Number(t, len(flags)).Equal(2)

	flagNames := make(map[string]bool)
	for _, flag := range flags {
		switch f := flag.(type) {
		case interface{ Names() []string }:
			names := f.Names()
			if len(names) > 0 {
				flagNames[names[0]] = true
			}
		}
	}

	gt.True(t, flagNames["log-level"])
	gt.True(t, flagNames["log-json"])
}

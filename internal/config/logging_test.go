package config

import (
	"path/filepath"
	"testing"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name      string
		config    LoggingConfig
		override  string
		expectErr bool
	}{
		{"Defaults", LoggingConfig{}, "", false},
		{"Console format", LoggingConfig{Level: "debug", Format: "console"}, "", false},
		{"Override level", LoggingConfig{Level: "info"}, "error", false},
		{"Warning alias", LoggingConfig{Level: "warning"}, "", false},
		{"Invalid level", LoggingConfig{Level: "verbose"}, "", true},
		{"Invalid override", LoggingConfig{Level: "info"}, "loud", true},
		{"Invalid format", LoggingConfig{Format: "xml"}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := NewLogger(tt.config, tt.override)
			if tt.expectErr {
				if err == nil {
					t.Errorf("NewLogger() expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("NewLogger() error = %v", err)
			}
			if logger == nil {
				t.Errorf("NewLogger() returned nil logger")
			}
		})
	}
}

func TestNewLoggerFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "sign-quote.log")
	logger, err := NewLogger(LoggingConfig{Format: "json", OutputFile: path}, "")
	if err != nil {
		t.Fatalf("NewLogger() error = %v", err)
	}

	logger.Info("log file smoke test")
	_ = logger.Sync()
}

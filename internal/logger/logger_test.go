package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	logger, closer, err := New(Config{Level: "warn", Output: &buf})
	if err != nil {
		t.Fatalf("Failed to create logger: %v", err)
	}
	defer closer.Close()

	logger.Info("hidden message")
	logger.Warn("shown message", "key", "value")

	out := buf.String()
	if strings.Contains(out, "hidden message") {
		t.Errorf("info message logged at warn level: %s", out)
	}
	if !strings.Contains(out, "shown message") || !strings.Contains(out, "key=value") {
		t.Errorf("expected warn message with fields, got: %s", out)
	}
}

func TestNewDebugOverridesLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, closer, err := New(Config{Level: "error", Debug: true, Output: &buf})
	if err != nil {
		t.Fatalf("Failed to create logger in debug mode: %v", err)
	}
	defer closer.Close()

	logger.Debug("debug message")
	if !strings.Contains(buf.String(), "debug message") {
		t.Errorf("expected debug output, got: %s", buf.String())
	}
}

func TestNewWritesFile(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "logs", "praetordesk.log")

	var buf bytes.Buffer
	logger, closer, err := New(Config{File: logFile, MaxSizeMB: 1, Output: &buf})
	if err != nil {
		t.Fatalf("Failed to create logger with file: %v", err)
	}

	logger.Info("to file")
	if err := closer.Close(); err != nil {
		t.Fatalf("Failed to close log file: %v", err)
	}

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("Log file was not created: %v", err)
	}
	if !strings.Contains(string(data), "to file") {
		t.Errorf("expected message in log file, got: %s", data)
	}
	if !strings.Contains(buf.String(), "to file") {
		t.Errorf("expected message on output too, got: %s", buf.String())
	}
}

func TestNewInvalidLevel(t *testing.T) {
	if _, _, err := New(Config{Level: "loud"}); err == nil {
		t.Error("expected error for invalid level")
	}
}

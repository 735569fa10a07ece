package cmdlog

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/charmbracelet/log"
)

func TestInit_CreatesFile(t *testing.T) {
	resetLogger()

	tmpFile := filepath.Join(t.TempDir(), "svn.log")
	if err := Init(tmpFile, log.InfoLevel); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	if _, err := os.Stat(tmpFile); os.IsNotExist(err) {
		t.Error("log file was not created")
	}
}

func TestInit_EmptyPath_DisablesLogging(t *testing.T) {
	resetLogger()

	if err := Init("", log.InfoLevel); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	if logEnabled {
		t.Error("logging should be disabled with empty path")
	}
}

func TestInit_OnlyOnce(t *testing.T) {
	resetLogger()

	tmpFile1 := filepath.Join(t.TempDir(), "first.log")
	tmpFile2 := filepath.Join(t.TempDir(), "second.log")

	Init(tmpFile1, log.InfoLevel)
	Init(tmpFile2, log.InfoLevel) // Should be ignored

	done := Op("status")
	done(nil)

	content1, _ := os.ReadFile(tmpFile1)
	content2, _ := os.ReadFile(tmpFile2)

	if len(content1) == 0 {
		t.Error("first log file should have content")
	}
	if len(content2) > 0 {
		t.Error("second log file should be empty")
	}
}

func TestOp_Success(t *testing.T) {
	buf := setupTestLogger(t)

	done := Op("status", "dir", "/tmp/wc")
	done(nil)

	output := buf.String()

	if !strings.Contains(output, "status") {
		t.Error("log should contain operation name")
	}
	if !strings.Contains(output, "duration") {
		t.Error("log should contain duration")
	}
	if !strings.Contains(output, "/tmp/wc") {
		t.Error("log should contain key-value pair")
	}
	if strings.Contains(output, "ERRO") {
		t.Error("success should not log at ERROR level")
	}
}

func TestOp_Error(t *testing.T) {
	buf := setupTestLogger(t)

	done := Op("log")
	done(errors.New("svn: E155007: not a working copy"))

	output := buf.String()

	if !strings.Contains(output, "E155007") {
		t.Error("log should contain error message")
	}
	if !strings.Contains(output, "ERRO") {
		t.Error("error should log at ERROR level")
	}
}

func TestOp_DisabledLogging(t *testing.T) {
	resetLogger()
	// Don't initialize logger

	// Should not panic
	done := Op("status")
	done(nil)
	done(errors.New("boom"))
}

func TestSetLogger_Nil(t *testing.T) {
	resetLogger()

	SetLogger(nil)

	if logEnabled {
		t.Error("logging should be disabled when SetLogger(nil)")
	}

	done := Op("status")
	done(nil)
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		input    string
		maxLen   int
		expected string
	}{
		{"short", 10, "short"},
		{"exactly10!", 10, "exactly10!"},
		{"this is too long", 10, "this is to..."},
		{"", 10, ""},
	}

	for _, tc := range tests {
		result := Truncate(tc.input, tc.maxLen)
		if result != tc.expected {
			t.Errorf("Truncate(%q, %d) = %q, want %q",
				tc.input, tc.maxLen, result, tc.expected)
		}
	}
}

// Helper functions

func resetLogger() {
	loggerOnce = sync.Once{}
	logger = nil
	logEnabled = false
}

func setupTestLogger(t *testing.T) *bytes.Buffer {
	t.Helper()
	resetLogger()

	buf := &bytes.Buffer{}
	logger = log.NewWithOptions(buf, log.Options{
		Level:           log.DebugLevel,
		Prefix:          "SVN",
		ReportTimestamp: false,
	})
	logEnabled = true

	return buf
}

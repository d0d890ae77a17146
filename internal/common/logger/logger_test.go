package logger

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/AlibekovAA/exercise-tracker/backend/internal/common/constants"
)

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "tracker", "warn")

	log.Info("hidden")
	log.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("expected info to be filtered, got %q", out)
	}
	if !strings.Contains(out, "[WARNING] [tracker]") || !strings.Contains(out, "shown") {
		t.Errorf("expected warning line, got %q", out)
	}
	if !log.ShouldLog(ERROR) || log.ShouldLog(INFO) {
		t.Error("unexpected ShouldLog result")
	}
}

func TestLogger_SetLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "", "error")

	log.Debug("first")
	log.SetLevel("debug")
	log.Debug("second")

	out := buf.String()
	if strings.Contains(out, "first") || !strings.Contains(out, "second") {
		t.Errorf("unexpected output %q", out)
	}
	if !strings.Contains(out, "[DEBUG] ") {
		t.Errorf("expected bare level prefix without service, got %q", out)
	}
}

func TestLogger_WithFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "tracker", "debug")

	ctx := context.WithValue(context.Background(), constants.TraceIDKey, "abc123")
	log.WithFields(ctx, Fields{"user_id": "u1", "action": "create_user_success"}).Infof("user %s created", "u1")

	out := buf.String()
	if !strings.Contains(out, "[trace_id=abc123 action=create_user_success user_id=u1]") {
		t.Errorf("expected sorted fields with trace id, got %q", out)
	}
	if !strings.Contains(out, "logger_test.go:") {
		t.Errorf("expected caller to be the test file, got %q", out)
	}
	if !strings.Contains(out, "user u1 created") {
		t.Errorf("expected formatted message, got %q", out)
	}
}

func TestLogger_ExplicitTraceIDWins(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "tracker", "info")

	ctx := context.WithValue(context.Background(), constants.TraceIDKey, "from-ctx")
	log.WithFields(ctx, Fields{"trace_id": "explicit"}).Info("msg")

	out := buf.String()
	if strings.Contains(out, "from-ctx") || !strings.Contains(out, "trace_id=explicit") {
		t.Errorf("expected explicit trace id only, got %q", out)
	}
}

func TestNew_WithLogDir(t *testing.T) {
	dir := t.TempDir()
	log, err := New(dir, "tracker", "info")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	log.Info("to file")
	if err := log.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}

package logger

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestSetupLevels(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	Setup(&buf, "info")
	Debug("hidden", nil)
	Info("shown", Fields{"b": 2, "a": 1})
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug line written at info level: %s", out)
	}
	if !strings.Contains(out, "msg=shown a=1 b=2") {
		t.Fatalf("fields not sorted or missing: %s", out)
	}

	buf.Reset()
	Setup(&buf, " DEBUG ")
	Debug("visible", nil)
	Error("failed", errors.New("boom"), Fields{"id": "x"})
	out = buf.String()
	if !strings.Contains(out, "visible") || !strings.Contains(out, "error=boom") {
		t.Fatalf("unexpected output: %s", out)
	}
}

package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestNew_IncludesStackAndComponentOnError(t *testing.T) {
	var buf bytes.Buffer
	log := New("test-component", &buf)
	log.Error().Stack().Err(errors.New("boom")).Msg("something failed")

	line := strings.TrimSpace(buf.String())
	if line == "" {
		t.Fatalf("no output captured")
	}
	var payload map[string]any
	if err := json.Unmarshal([]byte(line), &payload); err != nil {
		t.Fatalf("invalid json log: %v\n%s", err, line)
	}
	if c, ok := payload["component"].(string); !ok || c != "test-component" {
		t.Fatalf("expected component=\"test-component\", got %v", payload["component"])
	}
	if lvl, ok := payload["level"].(string); !ok || lvl != "error" {
		t.Fatalf("expected level=\"error\", got %v", payload["level"])
	}
	if _, ok := payload["stack"]; !ok {
		t.Fatalf("expected stack field in error log: %s", line)
	}
}

func TestConsole_Level(t *testing.T) {
	var quiet, loud bytes.Buffer
	quietLog := Console("cli", &quiet, false)
	quietLog.Debug().Msg("hidden")
	loudLog := Console("cli", &loud, true)
	loudLog.Debug().Msg("shown")

	if quiet.Len() != 0 {
		t.Fatalf("debug line written at info level: %q", quiet.String())
	}
	if !strings.Contains(loud.String(), "shown") {
		t.Fatalf("debug line missing: %q", loud.String())
	}
}

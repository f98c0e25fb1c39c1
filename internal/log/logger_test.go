package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"WARN":    slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q)=%v, want %v", in, got, want)
		}
	}
}

func TestNewJSONCarriesComponent(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Format: "json", Output: &buf, Component: ComponentState})

	logger.Info("view selected", FieldView, "charts")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("unmarshal: %v body=%s", err, buf.String())
	}
	if entry[FieldComponent] != ComponentState {
		t.Fatalf("component=%v, want %s", entry[FieldComponent], ComponentState)
	}
	if entry[FieldView] != "charts" {
		t.Fatalf("view=%v, want charts", entry[FieldView])
	}
}

func TestLevelFiltersDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: "info", Output: &buf})

	logger.Debug("hidden")
	if buf.Len() != 0 {
		t.Fatalf("debug output should be filtered, got %q", buf.String())
	}
}

func TestWithComponentReplacesComponent(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Format: "json", Output: &buf}).WithComponent(ComponentHTTP)

	logger.Info("request")

	if n := bytes.Count(buf.Bytes(), []byte(`"component"`)); n != 1 {
		t.Fatalf("component key count=%d, want 1: %s", n, buf.String())
	}
	if logger.Component() != ComponentHTTP {
		t.Fatalf("Component()=%q, want %q", logger.Component(), ComponentHTTP)
	}
}

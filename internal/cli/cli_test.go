package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"revenueplatform/internal/config"
	"revenueplatform/internal/format"
	"revenueplatform/internal/model"
)

// run 以隔离的配置执行命令
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv(config.EnvUploadDelayMs, "0")

	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	var stdout, stderr bytes.Buffer
	err := Execute(context.Background(), append(args, "--config", cfgPath, "--log-level", "error"), &stdout, &stderr)
	return stdout.String(), err
}

func TestSummaryCommand(t *testing.T) {
	out, err := run(t, "summary")
	if err != nil {
		t.Fatalf("summary failed: %v", err)
	}
	for _, want := range []string{"Q3 2024", "₹352,500", "+8.5%", "₹298,500"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestUploadCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "q4.csv")
	if err := os.WriteFile(path, []byte("anything"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	out, err := run(t, "upload", path)
	if err != nil {
		t.Fatalf("upload failed: %v", err)
	}
	if !strings.Contains(out, "Successfully processed q4.csv") || !strings.Contains(out, "Q4 2024") {
		t.Fatalf("unexpected output:\n%s", out)
	}
	// 单条记录没有上期，增速为 0
	if !strings.Contains(out, "₹385,000") || !strings.Contains(out, "0.0%") {
		t.Fatalf("unexpected overview:\n%s", out)
	}
}

func TestUploadCommandRejectsExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.pdf")
	if err := os.WriteFile(path, []byte("%PDF"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	out, err := run(t, "upload", path)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(out, "Please upload a valid Excel file") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestExportCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")

	if _, err := run(t, "export", path); err != nil {
		t.Fatalf("export failed: %v", err)
	}
	fi, err := os.Stat(path)
	if err != nil || fi.Size() == 0 {
		t.Fatalf("report not written: %v", err)
	}
}

func TestRenderSummaryEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := renderSummary(&buf, []model.RevenueRecord{}, format.Default()); err == nil {
		t.Fatalf("expected error for empty records")
	}
	if !strings.Contains(buf.String(), "Insufficient data") {
		t.Fatalf("unexpected output: %s", buf.String())
	}
}

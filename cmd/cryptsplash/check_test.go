// ABOUTME: Tests for the -check report
// ABOUTME: Output goes to a buffer, so lipgloss renders plain text

package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/mauromedda/cryptsplash/internal/config"
)

func TestRunCheck_Valid(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Device.UUID = "1234"

	var out bytes.Buffer
	if err := runCheck(&out, "/etc/cryptsplash/config.yaml", cfg); err != nil {
		t.Fatalf("runCheck() error: %v\n%s", err, out.String())
	}
	report := out.String()
	for _, want := range []string{"cryptsplash config check", "/etc/cryptsplash/config.yaml", "layer 0: 8 rows", "config is valid"} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q:\n%s", want, report)
		}
	}
	if strings.Contains(report, "\x1b[") {
		t.Errorf("report styled for a non-terminal:\n%q", report)
	}
}

func TestRunCheck_Failures(t *testing.T) {
	t.Parallel()

	cfg, err := config.Parse([]byte(`
theme:
  layers:
    - ascii: ["日本"]
  field:
    anchor_row: 7
`), "")
	if err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	err = runCheck(&out, "test.yaml", cfg)
	if !errors.Is(err, errCheckFailed) {
		t.Fatalf("runCheck() = %v, want errCheckFailed", err)
	}
	report := out.String()
	for _, want := range []string{
		"anchor_row is outside the frame",
		"device uuid is not set",
		"layer 0 row 0: clipped as 2 columns but draws 4 cells",
	} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q:\n%s", want, report)
		}
	}
	if strings.Contains(report, "config is valid") {
		t.Error("failed report claims the config is valid")
	}
}

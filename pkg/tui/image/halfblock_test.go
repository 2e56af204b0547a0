// ABOUTME: Tests for the half-block image renderer
// ABOUTME: Row pairing, scaling, transparency to NUL, and that output is clip-safe for the compositor

package image

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mauromedda/cryptsplash/pkg/tui/width"
)

func solid(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestRenderHalfBlock_BasicOutput(t *testing.T) {
	t.Parallel()

	lines := RenderHalfBlock(solid(4, 4, color.RGBA{R: 255, A: 255}), 4)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines for 4px height, got %d", len(lines))
	}
	for i, line := range lines {
		if got := strings.Count(line, "▄"); got != 4 {
			t.Errorf("line %d has %d half blocks, want 4", i, got)
		}
		if !strings.Contains(line, "\x1b[48;2;255;0;0m\x1b[38;2;255;0;0m") {
			t.Errorf("line %d missing fg/bg colour pair: %q", i, line)
		}
		if !strings.HasSuffix(line, "\x1b[0m") {
			t.Errorf("line %d missing ANSI reset", i)
		}
		if got := width.VisibleLength(line); got != 4 {
			t.Errorf("line %d VisibleLength = %d, want 4", i, got)
		}
	}
}

func TestRenderHalfBlock_OddHeight(t *testing.T) {
	t.Parallel()

	lines := RenderHalfBlock(solid(2, 3, color.RGBA{G: 255, A: 255}), 4)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines for 3px height, got %d", len(lines))
	}
	// Last row has no bottom pixel: upper half on the default background.
	if !strings.Contains(lines[1], "\x1b[49m\x1b[38;2;0;255;0m▀") {
		t.Errorf("odd row not drawn as upper half: %q", lines[1])
	}
}

func TestRenderHalfBlock_TransparentIsSkip(t *testing.T) {
	t.Parallel()

	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	img.Set(1, 0, color.RGBA{B: 255, A: 255})
	img.Set(1, 1, color.RGBA{B: 255, A: 255})

	lines := RenderHalfBlock(img, 10)
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
	plain := width.StripEscapes(lines[0])
	if plain != "\x00▄\x00" {
		t.Errorf("cells = %q, want skip, block, skip", plain)
	}
}

func TestRenderHalfBlock_ScalesDown(t *testing.T) {
	t.Parallel()

	lines := RenderHalfBlock(solid(80, 4, color.White), 40)
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1 (80x4 scaled to 40x2)", len(lines))
	}
	if got := width.VisibleLength(lines[0]); got != 40 {
		t.Errorf("VisibleLength = %d, want 40", got)
	}
}

func TestRenderHalfBlock_Empty(t *testing.T) {
	t.Parallel()

	if lines := RenderHalfBlock(image.NewRGBA(image.Rect(0, 0, 0, 0)), 40); len(lines) != 0 {
		t.Errorf("expected no lines for empty image, got %d", len(lines))
	}
	if lines := RenderHalfBlock(solid(2, 2, color.White), 0); len(lines) != 0 {
		t.Errorf("expected no lines for zero columns, got %d", len(lines))
	}
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "logo.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, solid(6, 4, color.Black)); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	lines, err := LoadFile(path, 3)
	if err != nil {
		t.Fatalf("LoadFile() error: %v", err)
	}
	if len(lines) != 1 || width.VisibleLength(lines[0]) != 3 {
		t.Errorf("LoadFile() = %q, want one 3-cell row", lines)
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.png"), 3); err == nil {
		t.Error("expected error for missing file")
	}
}

// ABOUTME: Renders an image into half-block ANSI art rows that the compositor can clip and place
// ABOUTME: Two pixel rows per text row; fully transparent cells become the NUL skip sentinel

package image

import (
	"fmt"
	goimage "image"
	"os"
	"strings"

	// Decoders for image layers.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

const (
	lowerHalf = "▄"
	upperHalf = "▀"
	// alphaCutoff is the 16-bit alpha below which a pixel is transparent.
	alphaCutoff = 0x8000
)

// LoadFile decodes the image at path and renders it at most maxCols wide.
func LoadFile(path string, maxCols int) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening image: %w", err)
	}
	defer f.Close()

	img, _, err := goimage.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding image %s: %w", path, err)
	}
	return RenderHalfBlock(img, maxCols), nil
}

// RenderHalfBlock converts img to rows of half-block cells. For each pair
// of pixel rows the top pixel is the background and the bottom pixel the
// foreground of '▄'; a cell with one transparent half draws the other with
// the default background, and a cell with both halves transparent is NUL.
// The image is scaled down to maxCols keeping its aspect ratio.
func RenderHalfBlock(img goimage.Image, maxCols int) []string {
	bounds := img.Bounds()
	srcW, srcH := bounds.Dx(), bounds.Dy()
	if srcW == 0 || srcH == 0 || maxCols <= 0 {
		return nil
	}

	targetW, targetH := srcW, srcH
	if targetW > maxCols {
		targetH = max(targetH*maxCols/targetW, 1)
		targetW = maxCols
	}

	scaled := img
	if targetW != srcW || targetH != srcH {
		dst := goimage.NewRGBA(goimage.Rect(0, 0, targetW, targetH))
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Src, nil)
		scaled = dst
	}
	origin := scaled.Bounds().Min

	lines := make([]string, 0, (targetH+1)/2)
	for y := 0; y < targetH; y += 2 {
		var b strings.Builder
		for x := range targetW {
			top, topOK := pixelAt(scaled, origin.X+x, origin.Y+y)
			var bot rgb
			botOK := false
			if y+1 < targetH {
				bot, botOK = pixelAt(scaled, origin.X+x, origin.Y+y+1)
			}
			writeCell(&b, top, topOK, bot, botOK)
		}
		b.WriteString("\x1b[0m")
		lines = append(lines, b.String())
	}
	return lines
}

type rgb struct{ r, g, b uint8 }

func writeCell(b *strings.Builder, top rgb, topOK bool, bot rgb, botOK bool) {
	switch {
	case topOK && botOK:
		fmt.Fprintf(b, "\x1b[48;2;%d;%d;%dm\x1b[38;2;%d;%d;%dm%s",
			top.r, top.g, top.b, bot.r, bot.g, bot.b, lowerHalf)
	case topOK:
		fmt.Fprintf(b, "\x1b[49m\x1b[38;2;%d;%d;%dm%s", top.r, top.g, top.b, upperHalf)
	case botOK:
		fmt.Fprintf(b, "\x1b[49m\x1b[38;2;%d;%d;%dm%s", bot.r, bot.g, bot.b, lowerHalf)
	default:
		b.WriteByte(0)
	}
}

// pixelAt returns the 8-bit colour at (x, y) and whether it is opaque enough to draw.
func pixelAt(img goimage.Image, x, y int) (rgb, bool) {
	r, g, b, a := img.At(x, y).RGBA()
	if a < alphaCutoff {
		return rgb{}, false
	}
	return rgb{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)}, true
}

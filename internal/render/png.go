package render

import (
	"image"
	"image/draw"
	"image/png"
	"os"
	"strings"
	"time"

	"golang.org/x/image/font"
	"golang.org/x/image/font/inconsolata"
	"golang.org/x/image/math/fixed"

	"github.com/temirov/ftree/internal/types"
)

const (
	pngLineHeight      = 18
	pngCharacterWidth  = 8
	pngCanvasPadding   = 40
	pngHeaderReserve   = 150
	pngMinimumLineSpan = 50
	pngMaximumLineSpan = 120
	pngHeaderRuleWidth = 50
)

// pngRenderer rasterizes the tree into a white-background PNG using a
// monospaced bitmap face. The canvas is sized to the longest line and the
// total line count.
type pngRenderer struct{}

func (renderer *pngRenderer) Format() string {
	return types.FormatPNG
}

func (renderer *pngRenderer) Available() bool {
	return true
}

func (renderer *pngRenderer) Write(lines []string, statistics types.TreeStatistics, outputPath string, rootPath string) error {
	canvasWidth := longestLineLength(lines, pngMinimumLineSpan)*pngCharacterWidth + pngCanvasPadding*2
	canvasHeight := len(lines)*pngLineHeight + pngHeaderReserve

	canvas := image.NewRGBA(image.Rect(0, 0, canvasWidth, canvasHeight))
	draw.Draw(canvas, canvas.Bounds(), image.White, image.Point{}, draw.Src)

	textDrawer := &font.Drawer{
		Dst:  canvas,
		Src:  image.Black,
		Face: inconsolata.Regular8x16,
	}

	verticalPosition := 20 + pngLineHeight
	headerBlock := append(headerLines(statistics, rootPath, time.Now()), headerRule())
	for _, headerLine := range headerBlock {
		textDrawer.Dot = fixed.P(pngCanvasPadding, verticalPosition)
		textDrawer.DrawString(headerLine)
		verticalPosition += pngLineHeight
	}
	verticalPosition += 10

	for _, line := range lines {
		textDrawer.Dot = fixed.P(pngCanvasPadding, verticalPosition)
		textDrawer.DrawString(capLineLength(line, pngMaximumLineSpan))
		verticalPosition += pngLineHeight
	}

	outputFile, createError := os.Create(outputPath)
	if createError != nil {
		return createError
	}
	encodeError := png.Encode(outputFile, canvas)
	closeError := outputFile.Close()
	if encodeError != nil {
		return encodeError
	}
	return closeError
}

// headerRule returns the dashed rule that closes the header block.
func headerRule() string {
	return strings.Repeat("-", pngHeaderRuleWidth)
}

var _ LineRenderer = (*pngRenderer)(nil)

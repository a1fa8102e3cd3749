package render

import (
	"os"
	"time"

	svg "github.com/ajstarks/svgo"

	"github.com/temirov/ftree/internal/types"
)

const (
	svgLineHeight      = 20
	svgCharacterWidth  = 8
	svgCanvasPadding   = 100
	svgHeaderReserve   = 200
	svgMinimumLineSpan = 50
	svgLeftMargin      = 20
	svgTreeStartOffset = 120

	svgHeaderClass = `class="header"`
	svgInfoClass   = `class="info"`
	svgTreeClass   = `class="tree"`

	svgStylesheet = `
		.header { font-family: Arial, sans-serif; font-size: 16px; font-weight: bold; }
		.info { font-family: Arial, sans-serif; font-size: 12px; fill: gray; }
		.tree { font-family: 'Courier New', monospace; font-size: 14px; }
	`
)

// svgRenderer writes the tree as an SVG document with a styled header block
// and one monospaced text element per line.
type svgRenderer struct{}

func (renderer *svgRenderer) Format() string {
	return types.FormatSVG
}

func (renderer *svgRenderer) Available() bool {
	return true
}

func (renderer *svgRenderer) Write(lines []string, statistics types.TreeStatistics, outputPath string, rootPath string) error {
	documentWidth := longestLineLength(lines, svgMinimumLineSpan)*svgCharacterWidth + svgCanvasPadding
	documentHeight := len(lines)*svgLineHeight + svgHeaderReserve

	outputFile, createError := os.Create(outputPath)
	if createError != nil {
		return createError
	}
	defer outputFile.Close()

	canvas := svg.New(outputFile)
	canvas.Start(documentWidth, documentHeight)
	canvas.Style("text/css", svgStylesheet)

	headerBlock := headerLines(statistics, rootPath, time.Now())
	canvas.Text(svgLeftMargin, 30, headerBlock[0], svgHeaderClass)
	verticalPosition := 50
	for _, informationLine := range headerBlock[1:] {
		canvas.Text(svgLeftMargin, verticalPosition, informationLine, svgInfoClass)
		verticalPosition += svgLineHeight
	}

	verticalPosition = svgTreeStartOffset
	for _, line := range lines {
		canvas.Text(svgLeftMargin, verticalPosition, line, svgTreeClass)
		verticalPosition += svgLineHeight
	}

	canvas.End()
	return nil
}

var _ LineRenderer = (*svgRenderer)(nil)

package render

import (
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/temirov/ftree/internal/types"
)

const (
	pdfLeftMargin      = 50.0
	pdfLineHeight      = 12.0
	pdfBottomReserve   = 50.0
	pdfTreeStartOffset = 130.0
	pdfMaximumLineSpan = 100

	pdfHeaderFontFamily = "Helvetica"
	pdfTreeFontFamily   = "Courier"
)

// pdfRenderer writes the tree as an A4 PDF, paginating when a page runs out
// of vertical space.
type pdfRenderer struct{}

func (renderer *pdfRenderer) Format() string {
	return types.FormatPDF
}

func (renderer *pdfRenderer) Available() bool {
	return true
}

func (renderer *pdfRenderer) Write(lines []string, statistics types.TreeStatistics, outputPath string, rootPath string) error {
	document := fpdf.New("P", "pt", "A4", "")
	translate := document.UnicodeTranslatorFromDescriptor("")
	document.AddPage()
	_, pageHeight := document.GetPageSize()

	headerBlock := headerLines(statistics, rootPath, time.Now())
	document.SetFont(pdfHeaderFontFamily, "B", 16)
	document.Text(pdfLeftMargin, 50, translate(headerBlock[0]))
	document.SetFont(pdfHeaderFontFamily, "", 10)
	verticalPosition := 70.0
	for _, informationLine := range headerBlock[1:] {
		document.Text(pdfLeftMargin, verticalPosition, translate(informationLine))
		verticalPosition += 15
	}

	document.SetFont(pdfTreeFontFamily, "", 9)
	verticalPosition = pdfTreeStartOffset
	for _, line := range lines {
		if verticalPosition > pageHeight-pdfBottomReserve {
			document.AddPage()
			verticalPosition = pdfBottomReserve
		}
		document.Text(pdfLeftMargin, verticalPosition, translate(capLineLength(line, pdfMaximumLineSpan)))
		verticalPosition += pdfLineHeight
	}

	return document.OutputFileAndClose(outputPath)
}

var _ LineRenderer = (*pdfRenderer)(nil)

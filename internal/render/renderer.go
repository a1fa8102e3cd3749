// Package render writes computed tree lines to destination files in the
// supported output formats.
package render

import (
	"fmt"
	"sort"
	"time"

	"github.com/temirov/ftree/internal/types"
	"github.com/temirov/ftree/internal/utils"
)

const (
	headerTitle          = "FTREE DIRECTORY TREE"
	generatedLineFormat  = "Generated: %s"
	rootLineFormat       = "Root: %s"
	statisticsLineFormat = "Statistics: %d folders, %d files"
)

// LineRenderer writes a computed tree rendition to a destination file. The
// traversal core never depends on a concrete format; it only asks whether a
// renderer is available and hands over the finished line list.
type LineRenderer interface {
	// Format returns the output format name the renderer serves.
	Format() string
	// Available reports whether the backing capability can be used.
	Available() bool
	// Write renders the lines and statistics to outputPath.
	Write(lines []string, statistics types.TreeStatistics, outputPath string, rootPath string) error
}

var formatRenderers = map[string]LineRenderer{
	types.FormatText: &textRenderer{},
	types.FormatPNG:  &pngRenderer{},
	types.FormatSVG:  &svgRenderer{},
	types.FormatPDF:  &pdfRenderer{},
}

// RendererFor returns the renderer registered for the named format.
func RendererFor(formatName string) (LineRenderer, bool) {
	renderer, registered := formatRenderers[formatName]
	return renderer, registered
}

// RegisteredFormats returns the sorted names of all registered formats.
func RegisteredFormats() []string {
	formatNames := make([]string, 0, len(formatRenderers))
	for formatName := range formatRenderers {
		formatNames = append(formatNames, formatName)
	}
	sort.Strings(formatNames)
	return formatNames
}

// headerLines builds the header block shared by every output format.
func headerLines(statistics types.TreeStatistics, rootPath string, generatedAt time.Time) []string {
	return []string{
		headerTitle,
		fmt.Sprintf(generatedLineFormat, utils.FormatTimestamp(generatedAt)),
		fmt.Sprintf(rootLineFormat, rootPath),
		fmt.Sprintf(statisticsLineFormat, statistics.FolderCount, statistics.FileCount),
	}
}

// capLineLength returns the line truncated to at most maximumLength runes.
func capLineLength(line string, maximumLength int) string {
	lineRunes := []rune(line)
	if len(lineRunes) <= maximumLength {
		return line
	}
	return string(lineRunes[:maximumLength])
}

// longestLineLength returns the rune length of the longest line, with a floor
// that keeps narrow trees from producing unusably small canvases.
func longestLineLength(lines []string, minimumLength int) int {
	longestLength := minimumLength
	for _, line := range lines {
		lineLength := len([]rune(line))
		if lineLength > longestLength {
			longestLength = lineLength
		}
	}
	return longestLength
}

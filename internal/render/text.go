package render

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/temirov/ftree/internal/types"
	"github.com/temirov/ftree/internal/utils"
)

const (
	textBannerWidth     = 80
	textOutputFileMode  = 0o644
	textFooter          = "Generated by ftree"
	rootPathLineFormat  = "Root Path: %s"
	totalSizeLineFormat = "Total Size: %s"
)

// textRenderer writes the tree as a UTF-8 text file with a banner, header
// block, the lines verbatim, and a footer.
type textRenderer struct{}

func (renderer *textRenderer) Format() string {
	return types.FormatText
}

func (renderer *textRenderer) Available() bool {
	return true
}

func (renderer *textRenderer) Write(lines []string, statistics types.TreeStatistics, outputPath string, rootPath string) error {
	var documentBuilder strings.Builder
	bannerLine := strings.Repeat("=", textBannerWidth)
	dividerLine := strings.Repeat("-", textBannerWidth)

	documentBuilder.WriteString(bannerLine + "\n")
	documentBuilder.WriteString(headerTitle + "\n")
	documentBuilder.WriteString(bannerLine + "\n\n")
	documentBuilder.WriteString(fmt.Sprintf(generatedLineFormat, utils.FormatTimestamp(time.Now())) + "\n")
	documentBuilder.WriteString(fmt.Sprintf(rootPathLineFormat, rootPath) + "\n")
	documentBuilder.WriteString(fmt.Sprintf(statisticsLineFormat, statistics.FolderCount, statistics.FileCount) + "\n")
	if statistics.TotalSizeBytes > 0 {
		documentBuilder.WriteString(fmt.Sprintf(totalSizeLineFormat, utils.FormatByteSize(statistics.TotalSizeBytes)) + "\n")
	}
	documentBuilder.WriteString("\n" + dividerLine + "\n\n")

	for _, line := range lines {
		documentBuilder.WriteString(line + "\n")
	}

	documentBuilder.WriteString("\n" + bannerLine + "\n")
	documentBuilder.WriteString(textFooter + "\n")

	return os.WriteFile(outputPath, []byte(documentBuilder.String()), textOutputFileMode)
}

var _ LineRenderer = (*textRenderer)(nil)

// Package types defines every cross-package data structure used by the ftree CLI.
package types

const (
	StyleSimple    = "simple"
	StyleArtisanal = "artisanal"
	StyleMinimal   = "minimal"

	FormatText = "txt"
	FormatPNG  = "png"
	FormatSVG  = "svg"
	FormatPDF  = "pdf"
)

// DefaultExcludePatterns lists the patterns excluded when the user provides none.
var DefaultExcludePatterns = []string{".git", "__pycache__", "node_modules"}

// TreeConfiguration is the immutable option set consumed by the tree builder.
type TreeConfiguration struct {
	// MaxDepth limits how many levels below the root are visited. The root
	// itself is depth zero and is always rendered; MaxDepth must be at least one.
	MaxDepth int
	// MaxFilesPerDirectory caps the number of children rendered per directory.
	// Zero disables truncation.
	MaxFilesPerDirectory int
	// ShowHidden renders entries whose names start with a dot.
	ShowHidden bool
	// ShowSizes appends a human-readable size suffix to file entries.
	ShowSizes bool
	// ExcludePatterns drops entries whose name contains or starts with a pattern.
	ExcludePatterns []string
	// Style selects the connector glyph set (simple, artisanal, or minimal).
	Style string
	// UseIcons prefixes every entry with a type icon.
	UseIcons bool
}

// TreeStatistics accumulates aggregate counts during one traversal and is
// frozen once the traversal returns.
type TreeStatistics struct {
	FolderCount    int
	FileCount      int
	TotalSizeBytes int64
}

// IsSupportedStyle reports whether the provided style name is recognized.
func IsSupportedStyle(styleName string) bool {
	switch styleName {
	case StyleSimple, StyleArtisanal, StyleMinimal:
		return true
	default:
		return false
	}
}

// IsSupportedFormat reports whether the provided output format is recognized.
func IsSupportedFormat(formatName string) bool {
	switch formatName {
	case FormatText, FormatPNG, FormatSVG, FormatPDF:
		return true
	default:
		return false
	}
}

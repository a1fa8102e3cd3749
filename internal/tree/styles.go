// Package tree implements the directory traversal and line formatting core.
package tree

import "github.com/temirov/ftree/internal/types"

// StyleSet holds the four glyphs that control visual rendering of one style.
type StyleSet struct {
	// Branch precedes an entry that has following siblings.
	Branch string
	// Last precedes the final entry of a sibling group.
	Last string
	// Pipe is the continuation prefix inherited below a non-last ancestor.
	Pipe string
	// Space is the continuation prefix inherited below a last ancestor.
	Space string
}

var styleGlyphSets = map[string]StyleSet{
	types.StyleSimple: {
		Branch: "├── ",
		Last:   "└── ",
		Pipe:   "│   ",
		Space:  "    ",
	},
	types.StyleArtisanal: {
		Branch: "├─ ",
		Last:   "└─ ",
		Pipe:   "│  ",
		Space:  "   ",
	},
	types.StyleMinimal: {
		Branch: "+ ",
		Last:   "+ ",
		Pipe:   "| ",
		Space:  "  ",
	},
}

// StyleGlyphs returns the glyph set for the named style.
// Unknown style names fall back to the simple style.
func StyleGlyphs(styleName string) StyleSet {
	glyphs, known := styleGlyphSets[styleName]
	if !known {
		return styleGlyphSets[types.StyleSimple]
	}
	return glyphs
}

package tree_test

import (
	"testing"

	"github.com/temirov/ftree/internal/tree"
	"github.com/temirov/ftree/internal/types"
)

func TestStyleGlyphs(testInstance *testing.T) {
	testCases := []struct {
		name           string
		styleName      string
		expectedGlyphs tree.StyleSet
	}{
		{
			name:           "simple",
			styleName:      types.StyleSimple,
			expectedGlyphs: tree.StyleSet{Branch: "├── ", Last: "└── ", Pipe: "│   ", Space: "    "},
		},
		{
			name:           "artisanal",
			styleName:      types.StyleArtisanal,
			expectedGlyphs: tree.StyleSet{Branch: "├─ ", Last: "└─ ", Pipe: "│  ", Space: "   "},
		},
		{
			name:           "minimal",
			styleName:      types.StyleMinimal,
			expectedGlyphs: tree.StyleSet{Branch: "+ ", Last: "+ ", Pipe: "| ", Space: "  "},
		},
		{
			name:           "unknown falls back to simple",
			styleName:      "baroque",
			expectedGlyphs: tree.StyleSet{Branch: "├── ", Last: "└── ", Pipe: "│   ", Space: "    "},
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			glyphs := tree.StyleGlyphs(testCase.styleName)
			if glyphs != testCase.expectedGlyphs {
				testInstance.Fatalf("expected glyphs %+v, got %+v", testCase.expectedGlyphs, glyphs)
			}
		})
	}
}

func TestContinuationGlyphWidthsMatch(testInstance *testing.T) {
	for _, styleName := range []string{types.StyleSimple, types.StyleArtisanal, types.StyleMinimal} {
		glyphs := tree.StyleGlyphs(styleName)
		if len([]rune(glyphs.Pipe)) != len([]rune(glyphs.Space)) {
			testInstance.Fatalf("style %s: pipe %q and space %q must render at the same width", styleName, glyphs.Pipe, glyphs.Space)
		}
	}
}

package cli

import (
	"reflect"
	"testing"

	"github.com/temirov/ftree/internal/types"
)

func TestParseOutputFormats(testInstance *testing.T) {
	testCases := []struct {
		name                string
		rawFormats          string
		expectedSupported   []string
		expectedUnsupported []string
	}{
		{
			name:              "comma separated",
			rawFormats:        "txt,png,svg",
			expectedSupported: []string{"txt", "png", "svg"},
		},
		{
			name:              "space separated",
			rawFormats:        "txt png",
			expectedSupported: []string{"txt", "png"},
		},
		{
			name:              "comma separated with spaces",
			rawFormats:        "txt, pdf",
			expectedSupported: []string{"txt", "pdf"},
		},
		{
			name:                "invalid names partitioned out",
			rawFormats:          "txt,bogus,png",
			expectedSupported:   []string{"txt", "png"},
			expectedUnsupported: []string{"bogus"},
		},
		{
			name:              "duplicates collapsed",
			rawFormats:        "txt,txt,png",
			expectedSupported: []string{"txt", "png"},
		},
		{
			name:              "uppercase normalized",
			rawFormats:        "TXT,Png",
			expectedSupported: []string{"txt", "png"},
		},
		{
			name:              "empty value yields nothing",
			rawFormats:        "",
			expectedSupported: []string{},
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			supportedFormats, unsupportedFormats := parseOutputFormats(testCase.rawFormats)
			if !reflect.DeepEqual(supportedFormats, testCase.expectedSupported) {
				testInstance.Fatalf("expected supported %v, got %v", testCase.expectedSupported, supportedFormats)
			}
			if len(testCase.expectedUnsupported) == 0 {
				if len(unsupportedFormats) != 0 {
					testInstance.Fatalf("expected no unsupported formats, got %v", unsupportedFormats)
				}
			} else if !reflect.DeepEqual(unsupportedFormats, testCase.expectedUnsupported) {
				testInstance.Fatalf("expected unsupported %v, got %v", testCase.expectedUnsupported, unsupportedFormats)
			}
		})
	}
}

func TestClampDepth(testInstance *testing.T) {
	testCases := []struct {
		name          string
		depthValue    int
		expectedDepth int
	}{
		{name: "below minimum", depthValue: 0, expectedDepth: 1},
		{name: "negative", depthValue: -3, expectedDepth: 1},
		{name: "in range", depthValue: 3, expectedDepth: 3},
		{name: "above maximum", depthValue: 9, expectedDepth: 5},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			clampedDepth := clampDepth(testCase.depthValue)
			if clampedDepth != testCase.expectedDepth {
				testInstance.Fatalf("expected %d, got %d", testCase.expectedDepth, clampedDepth)
			}
		})
	}
}

func TestApplyPositionalArguments(testInstance *testing.T) {
	testInstance.Run("depth only", func(testInstance *testing.T) {
		options := &generationOptions{depth: defaultDepth, style: types.StyleSimple}
		if positionalError := applyPositionalArguments([]string{".", "3"}, options); positionalError != nil {
			testInstance.Fatalf("unexpected error: %v", positionalError)
		}
		if options.depth != 3 {
			testInstance.Fatalf("expected depth 3, got %d", options.depth)
		}
	})

	testInstance.Run("beautiful shorthand", func(testInstance *testing.T) {
		options := &generationOptions{depth: defaultDepth, style: types.StyleSimple, formats: types.FormatText}
		if positionalError := applyPositionalArguments([]string{".", "3", "beautiful"}, options); positionalError != nil {
			testInstance.Fatalf("unexpected error: %v", positionalError)
		}
		if options.style != types.StyleArtisanal {
			testInstance.Fatalf("expected artisanal style, got %s", options.style)
		}
		if !options.useIcons {
			testInstance.Fatalf("expected icons enabled")
		}
		if options.formats != types.FormatText+","+types.FormatPNG {
			testInstance.Fatalf("expected txt,png formats, got %s", options.formats)
		}
	})

	testInstance.Run("explicit positional style", func(testInstance *testing.T) {
		options := &generationOptions{depth: defaultDepth, style: types.StyleSimple}
		if positionalError := applyPositionalArguments([]string{".", "2", "minimal"}, options); positionalError != nil {
			testInstance.Fatalf("unexpected error: %v", positionalError)
		}
		if options.style != types.StyleMinimal {
			testInstance.Fatalf("expected minimal style, got %s", options.style)
		}
		if options.useIcons {
			testInstance.Fatalf("expected icons to stay disabled")
		}
	})

	testInstance.Run("non numeric depth rejected", func(testInstance *testing.T) {
		options := &generationOptions{depth: defaultDepth, style: types.StyleSimple}
		if positionalError := applyPositionalArguments([]string{".", "deep"}, options); positionalError == nil {
			testInstance.Fatalf("expected an error for non-numeric depth")
		}
	})

	testInstance.Run("unknown positional style rejected", func(testInstance *testing.T) {
		options := &generationOptions{depth: defaultDepth, style: types.StyleSimple}
		if positionalError := applyPositionalArguments([]string{".", "2", "ornate"}, options); positionalError == nil {
			testInstance.Fatalf("expected an error for unknown style")
		}
	})
}

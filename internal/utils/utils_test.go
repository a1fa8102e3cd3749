package utils_test

import (
	"reflect"
	"testing"

	"github.com/temirov/ftree/internal/utils"
)

func TestDeduplicatePatterns(testInstance *testing.T) {
	testCases := []struct {
		name           string
		inputPatterns  []string
		expectedOutput []string
	}{
		{name: "duplicates removed in order", inputPatterns: []string{"a", "b", "a", "c", "b"}, expectedOutput: []string{"a", "b", "c"}},
		{name: "no duplicates", inputPatterns: []string{"x", "y"}, expectedOutput: []string{"x", "y"}},
		{name: "empty input", inputPatterns: nil, expectedOutput: []string{}},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			deduplicated := utils.DeduplicatePatterns(testCase.inputPatterns)
			if !reflect.DeepEqual(deduplicated, testCase.expectedOutput) {
				testInstance.Fatalf("expected %v, got %v", testCase.expectedOutput, deduplicated)
			}
		})
	}
}

func TestContainsString(testInstance *testing.T) {
	values := []string{"txt", "png"}
	if !utils.ContainsString(values, "png") {
		testInstance.Fatalf("expected png to be found in %v", values)
	}
	if utils.ContainsString(values, "pdf") {
		testInstance.Fatalf("expected pdf to be absent from %v", values)
	}
}

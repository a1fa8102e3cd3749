package utils_test

import (
	"testing"

	"github.com/temirov/ftree/internal/utils"
)

func TestFormatByteSize(testInstance *testing.T) {
	testCases := []struct {
		name           string
		byteCount      int64
		expectedOutput string
	}{
		{name: "zero bytes", byteCount: 0, expectedOutput: "0.0B"},
		{name: "under one kilobyte", byteCount: 512, expectedOutput: "512.0B"},
		{name: "kilobyte boundary", byteCount: 1024, expectedOutput: "1.0KB"},
		{name: "one and a half kilobytes", byteCount: 1536, expectedOutput: "1.5KB"},
		{name: "megabytes", byteCount: 5 * 1024 * 1024, expectedOutput: "5.0MB"},
		{name: "gigabytes", byteCount: 3 * 1024 * 1024 * 1024, expectedOutput: "3.0GB"},
		{name: "terabytes", byteCount: 2 * 1024 * 1024 * 1024 * 1024, expectedOutput: "2.0TB"},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			formattedSize := utils.FormatByteSize(testCase.byteCount)
			if formattedSize != testCase.expectedOutput {
				testInstance.Fatalf("expected %s, got %s", testCase.expectedOutput, formattedSize)
			}
		})
	}
}

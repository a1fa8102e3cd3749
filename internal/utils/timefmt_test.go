package utils_test

import (
	"testing"
	"time"

	"github.com/temirov/ftree/internal/utils"
)

func TestFormatTimestamp(testInstance *testing.T) {
	sampleTime := time.Date(2024, time.March, 5, 14, 30, 9, 0, time.Local)
	if formatted := utils.FormatTimestamp(sampleTime); formatted != "2024-03-05 14:30:09" {
		testInstance.Fatalf("expected 2024-03-05 14:30:09, got %s", formatted)
	}
	if formatted := utils.FormatTimestamp(time.Time{}); formatted != "" {
		testInstance.Fatalf("expected empty string for zero time, got %s", formatted)
	}
}

func TestFormatFileNameTimestamp(testInstance *testing.T) {
	sampleTime := time.Date(2024, time.March, 5, 14, 30, 9, 0, time.Local)
	if formatted := utils.FormatFileNameTimestamp(sampleTime); formatted != "20240305_143009" {
		testInstance.Fatalf("expected 20240305_143009, got %s", formatted)
	}
}

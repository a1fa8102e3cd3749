package utils

import "fmt"

var byteSizeUnits = []string{"B", "KB", "MB", "GB"}

const largestByteSizeUnit = "TB"

// FormatByteSize converts a byte length into a human-readable unit string
// with one decimal place, dividing by 1024 at each threshold. 1536 bytes
// render as "1.5KB".
func FormatByteSize(byteCount int64) string {
	value := float64(byteCount)
	for _, unitName := range byteSizeUnits {
		if value < 1024 {
			return fmt.Sprintf("%.1f%s", value, unitName)
		}
		value /= 1024
	}
	return fmt.Sprintf("%.1f%s", value, largestByteSizeUnit)
}

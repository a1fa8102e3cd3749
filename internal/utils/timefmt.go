package utils

import "time"

const (
	displayTimestampLayout  = "2006-01-02 15:04:05"
	fileNameTimestampLayout = "20060102_150405"
)

// FormatTimestamp returns the provided time in the local zone using the
// human-readable layout shown in output headers.
func FormatTimestamp(value time.Time) string {
	if value.IsZero() {
		return ""
	}
	return value.In(time.Local).Format(displayTimestampLayout)
}

// FormatFileNameTimestamp returns the provided time formatted for embedding
// in generated output file names.
func FormatFileNameTimestamp(value time.Time) string {
	return value.In(time.Local).Format(fileNameTimestampLayout)
}

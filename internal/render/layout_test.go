package render

import "testing"

func TestCapLineLength(testInstance *testing.T) {
	if capped := capLineLength("├── naïve.txt", 6); capped != "├── na" {
		testInstance.Fatalf("expected rune-safe cap, got %q", capped)
	}
	if capped := capLineLength("short", 10); capped != "short" {
		testInstance.Fatalf("expected line under the cap to pass through, got %q", capped)
	}
}

func TestLongestLineLength(testInstance *testing.T) {
	lines := []string{"a", "├── long entry"}
	if longest := longestLineLength(lines, 5); longest != 14 {
		testInstance.Fatalf("expected 14, got %d", longest)
	}
	if longest := longestLineLength([]string{"ab"}, 50); longest != 50 {
		testInstance.Fatalf("expected the floor of 50, got %d", longest)
	}
}

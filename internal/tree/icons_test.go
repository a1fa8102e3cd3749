package tree_test

import (
	"testing"

	"github.com/temirov/ftree/internal/tree"
)

func TestFileIcon(testInstance *testing.T) {
	testCases := []struct {
		name         string
		fileName     string
		expectedIcon string
	}{
		{name: "python source", fileName: "main.py", expectedIcon: "🐍"},
		{name: "uppercase extension", fileName: "REPORT.PDF", expectedIcon: "📋"},
		{name: "typescript source", fileName: "app.ts", expectedIcon: "📜"},
		{name: "archive", fileName: "bundle.tar", expectedIcon: "📦"},
		{name: "configuration", fileName: "settings.yaml", expectedIcon: "⚙️"},
		{name: "database", fileName: "store.sqlite", expectedIcon: "🗄️"},
		{name: "unmapped extension", fileName: "core.dump", expectedIcon: "📄"},
		{name: "no extension", fileName: "Makefile", expectedIcon: "📄"},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			icon := tree.FileIcon(testCase.fileName)
			if icon != testCase.expectedIcon {
				testInstance.Fatalf("expected icon %s, got %s", testCase.expectedIcon, icon)
			}
		})
	}
}

func TestFolderIcon(testInstance *testing.T) {
	if icon := tree.FolderIcon(); icon != "📁" {
		testInstance.Fatalf("expected folder icon 📁, got %s", icon)
	}
}

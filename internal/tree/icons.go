package tree

import (
	"path/filepath"
	"strings"
)

const (
	iconCategoryFolder     = "folder"
	iconCategoryFile       = "file"
	iconCategoryPython     = "python"
	iconCategoryJavascript = "javascript"
	iconCategoryHTML       = "html"
	iconCategoryCSS        = "css"
	iconCategoryImage      = "image"
	iconCategoryDocument   = "document"
	iconCategoryArchive    = "archive"
	iconCategoryConfig     = "config"
	iconCategoryDatabase   = "database"
	iconCategoryExecutable = "executable"
)

var categoryIcons = map[string]string{
	iconCategoryFolder:     "📁",
	iconCategoryFile:       "📄",
	iconCategoryPython:     "🐍",
	iconCategoryJavascript: "📜",
	iconCategoryHTML:       "🌐",
	iconCategoryCSS:        "🎨",
	iconCategoryImage:      "🖼️",
	iconCategoryDocument:   "📋",
	iconCategoryArchive:    "📦",
	iconCategoryConfig:     "⚙️",
	iconCategoryDatabase:   "🗄️",
	iconCategoryExecutable: "⚡",
}

var extensionCategories = map[string]string{
	".py":     iconCategoryPython,
	".js":     iconCategoryJavascript,
	".ts":     iconCategoryJavascript,
	".jsx":    iconCategoryJavascript,
	".tsx":    iconCategoryJavascript,
	".html":   iconCategoryHTML,
	".htm":    iconCategoryHTML,
	".css":    iconCategoryCSS,
	".scss":   iconCategoryCSS,
	".sass":   iconCategoryCSS,
	".png":    iconCategoryImage,
	".jpg":    iconCategoryImage,
	".jpeg":   iconCategoryImage,
	".gif":    iconCategoryImage,
	".svg":    iconCategoryImage,
	".pdf":    iconCategoryDocument,
	".doc":    iconCategoryDocument,
	".docx":   iconCategoryDocument,
	".txt":    iconCategoryDocument,
	".zip":    iconCategoryArchive,
	".tar":    iconCategoryArchive,
	".gz":     iconCategoryArchive,
	".rar":    iconCategoryArchive,
	".json":   iconCategoryConfig,
	".yaml":   iconCategoryConfig,
	".yml":    iconCategoryConfig,
	".toml":   iconCategoryConfig,
	".db":     iconCategoryDatabase,
	".sqlite": iconCategoryDatabase,
	".sql":    iconCategoryDatabase,
	".exe":    iconCategoryExecutable,
	".bat":    iconCategoryExecutable,
	".sh":     iconCategoryExecutable,
}

// FolderIcon returns the icon used for directory entries.
func FolderIcon() string {
	return categoryIcons[iconCategoryFolder]
}

// FileIcon returns the icon for a file name keyed by its lowercase extension.
// Unmapped extensions receive the generic file icon.
func FileIcon(fileName string) string {
	extension := strings.ToLower(filepath.Ext(fileName))
	category, mapped := extensionCategories[extension]
	if !mapped {
		return categoryIcons[iconCategoryFile]
	}
	return categoryIcons[category]
}

package tree

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
	"github.com/temirov/ftree/internal/types"
	"github.com/temirov/ftree/internal/utils"
)

const (
	// permissionDeniedPlaceholder is emitted in place of an unreadable directory listing.
	permissionDeniedPlaceholder = "[Permission Denied]"
	// accessErrorLineFormat renders a non-permission listing failure inline.
	accessErrorLineFormat = "%s[Error: %s]"
	// truncationLineFormat summarizes children omitted by the per-directory cap.
	truncationLineFormat = "%s... (%d more items)"

	// maxErrorDescriptionLength caps inline error descriptions.
	maxErrorDescriptionLength = 50

	hiddenNamePrefix = "."
	rootNameSuffix   = "/"
	sizeSuffixFormat = " (%s)"
	entryLineFormat  = "%s%s%s%s%s"
	rootLineFormat   = "%s%s" + rootNameSuffix
	emptyPrefix      = ""

	// errorInvalidMaxDepthFormat reports a max depth below the allowed minimum.
	errorInvalidMaxDepthFormat = "max depth must be at least 1, got %d"
	// errorRootMissingFormat reports a root path that does not exist.
	errorRootMissingFormat = "root path '%s' does not exist"
	// errorRootNotDirectoryFormat reports a root path that is not a directory.
	errorRootNotDirectoryFormat = "root path '%s' is not a directory"
	// errorStatRootFormat reports failure to stat the root path.
	errorStatRootFormat = "stat root path '%s': %w"
	// errorAbsoluteRootFormat reports failure to resolve the root path.
	errorAbsoluteRootFormat = "resolving absolute path for '%s': %w"
)

// TreeBuilder renders a directory subtree into display lines using the
// configured options. All filesystem access goes through FileSystem.
type TreeBuilder struct {
	FileSystem    afero.Fs
	Configuration types.TreeConfiguration
}

// NewTreeBuilder constructs a TreeBuilder over the provided filesystem.
func NewTreeBuilder(fileSystem afero.Fs, configuration types.TreeConfiguration) *TreeBuilder {
	return &TreeBuilder{FileSystem: fileSystem, Configuration: configuration}
}

// traversalContext threads the accumulated output of one traversal through
// the recursive descent. Exactly one traversal owns it at a time.
type traversalContext struct {
	glyphs     StyleSet
	lines      []string
	statistics types.TreeStatistics
}

// BuildTree walks rootPath depth-first in pre-order and returns the formatted
// display lines together with aggregate statistics. An invalid root or an
// invalid configuration aborts before traversal; every other filesystem
// failure is recorded as an inline placeholder line and traversal continues.
func (builder *TreeBuilder) BuildTree(rootPath string) ([]string, types.TreeStatistics, error) {
	if builder.Configuration.MaxDepth < 1 {
		return nil, types.TreeStatistics{}, fmt.Errorf(errorInvalidMaxDepthFormat, builder.Configuration.MaxDepth)
	}

	absoluteRootPath, absolutePathError := filepath.Abs(rootPath)
	if absolutePathError != nil {
		return nil, types.TreeStatistics{}, fmt.Errorf(errorAbsoluteRootFormat, rootPath, absolutePathError)
	}
	rootInfo, rootStatError := builder.FileSystem.Stat(absoluteRootPath)
	if rootStatError != nil {
		if os.IsNotExist(rootStatError) {
			return nil, types.TreeStatistics{}, fmt.Errorf(errorRootMissingFormat, rootPath)
		}
		return nil, types.TreeStatistics{}, fmt.Errorf(errorStatRootFormat, rootPath, rootStatError)
	}
	if !rootInfo.IsDir() {
		return nil, types.TreeStatistics{}, fmt.Errorf(errorRootNotDirectoryFormat, rootPath)
	}

	context := &traversalContext{glyphs: StyleGlyphs(builder.Configuration.Style)}

	rootIcon := emptyPrefix
	if builder.Configuration.UseIcons {
		rootIcon = FolderIcon()
	}
	context.lines = append(context.lines, fmt.Sprintf(rootLineFormat, rootIcon, filepath.Base(absoluteRootPath)))
	context.statistics.FolderCount++

	rootEntries, rootReadError := afero.ReadDir(builder.FileSystem, absoluteRootPath)
	if rootReadError != nil {
		// Root-level placeholders carry no glyph prefix.
		context.lines = append(context.lines, listingPlaceholder(emptyPrefix, rootReadError))
		return context.lines, context.statistics, nil
	}

	retainedChildren, truncatedCount := builder.prepareChildren(rootEntries)
	for childIndex, childInfo := range retainedChildren {
		childIsLast := childIndex == len(retainedChildren)-1 && truncatedCount == 0
		builder.renderEntry(filepath.Join(absoluteRootPath, childInfo.Name()), childInfo, emptyPrefix, 1, childIsLast, context)
	}
	if truncatedCount > 0 {
		context.lines = append(context.lines, fmt.Sprintf(truncationLineFormat, context.glyphs.Last, truncatedCount))
	}

	return context.lines, context.statistics, nil
}

// renderEntry emits one entry line, updates statistics, and recurses into
// directories while the depth limit allows.
func (builder *TreeBuilder) renderEntry(entryPath string, entryInfo os.FileInfo, prefix string, depth int, entryIsLast bool, context *traversalContext) {
	glyphs := context.glyphs

	connector := glyphs.Branch
	if entryIsLast {
		connector = glyphs.Last
	}

	entryIcon := emptyPrefix
	if builder.Configuration.UseIcons {
		if entryInfo.IsDir() {
			entryIcon = FolderIcon()
		} else {
			entryIcon = FileIcon(entryInfo.Name())
		}
	}

	sizeSuffix := emptyPrefix
	if builder.Configuration.ShowSizes && !entryInfo.IsDir() {
		sizeSuffix = fmt.Sprintf(sizeSuffixFormat, utils.FormatByteSize(entryInfo.Size()))
	}

	context.lines = append(context.lines, fmt.Sprintf(entryLineFormat, prefix, connector, entryIcon, entryInfo.Name(), sizeSuffix))

	if entryInfo.IsDir() {
		context.statistics.FolderCount++
	} else {
		context.statistics.FileCount++
		context.statistics.TotalSizeBytes += entryInfo.Size()
	}

	if !entryInfo.IsDir() || depth >= builder.Configuration.MaxDepth {
		return
	}

	continuation := glyphs.Pipe
	if entryIsLast {
		continuation = glyphs.Space
	}
	childPrefix := prefix + continuation
	placeholderPrefix := prefix + glyphs.Space + glyphs.Last

	childEntries, readDirectoryError := afero.ReadDir(builder.FileSystem, entryPath)
	if readDirectoryError != nil {
		context.lines = append(context.lines, listingPlaceholder(placeholderPrefix, readDirectoryError))
		return
	}

	retainedChildren, truncatedCount := builder.prepareChildren(childEntries)
	for childIndex, childInfo := range retainedChildren {
		childIsLast := childIndex == len(retainedChildren)-1 && truncatedCount == 0
		builder.renderEntry(filepath.Join(entryPath, childInfo.Name()), childInfo, childPrefix, depth+1, childIsLast, context)
	}
	if truncatedCount > 0 {
		context.lines = append(context.lines, fmt.Sprintf(truncationLineFormat, placeholderPrefix, truncatedCount))
	}
}

// prepareChildren applies hidden and exclude filtering, sorts directories
// before files with case-insensitive names, and applies the per-directory
// cap. The omitted count is measured against the unfiltered listing, so
// entries already dropped by filters still inflate it.
func (builder *TreeBuilder) prepareChildren(directoryEntries []os.FileInfo) ([]os.FileInfo, int) {
	filteredEntries := make([]os.FileInfo, 0, len(directoryEntries))
	for _, directoryEntry := range directoryEntries {
		if !builder.Configuration.ShowHidden && strings.HasPrefix(directoryEntry.Name(), hiddenNamePrefix) {
			continue
		}
		if builder.shouldExclude(directoryEntry.Name()) {
			continue
		}
		filteredEntries = append(filteredEntries, directoryEntry)
	}

	sort.SliceStable(filteredEntries, func(firstIndex, secondIndex int) bool {
		firstEntry := filteredEntries[firstIndex]
		secondEntry := filteredEntries[secondIndex]
		if firstEntry.IsDir() != secondEntry.IsDir() {
			return firstEntry.IsDir()
		}
		return strings.ToLower(firstEntry.Name()) < strings.ToLower(secondEntry.Name())
	})

	maximumChildren := builder.Configuration.MaxFilesPerDirectory
	if maximumChildren <= 0 || len(filteredEntries) <= maximumChildren {
		return filteredEntries, 0
	}
	return filteredEntries[:maximumChildren], len(directoryEntries) - maximumChildren
}

// shouldExclude reports whether the entry name matches any exclude pattern.
// A pattern matches when it is a substring of the name or the name starts
// with it. The dual rule is deliberately permissive.
func (builder *TreeBuilder) shouldExclude(entryName string) bool {
	for _, excludePattern := range builder.Configuration.ExcludePatterns {
		if strings.Contains(entryName, excludePattern) || strings.HasPrefix(entryName, excludePattern) {
			return true
		}
	}
	return false
}

// listingPlaceholder formats the inline placeholder for a failed directory listing.
func listingPlaceholder(placeholderPrefix string, listingError error) string {
	if os.IsPermission(listingError) || errors.Is(listingError, fs.ErrPermission) {
		return placeholderPrefix + permissionDeniedPlaceholder
	}
	return fmt.Sprintf(accessErrorLineFormat, placeholderPrefix, truncateErrorDescription(listingError.Error()))
}

// truncateErrorDescription caps an error description at maxErrorDescriptionLength characters.
func truncateErrorDescription(description string) string {
	if len(description) <= maxErrorDescriptionLength {
		return description
	}
	return description[:maxErrorDescriptionLength]
}

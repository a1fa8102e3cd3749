// Package cli provides the command line interface.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/temirov/ftree/internal/config"
	"github.com/temirov/ftree/internal/render"
	"github.com/temirov/ftree/internal/services/clipboard"
	"github.com/temirov/ftree/internal/tree"
	"github.com/temirov/ftree/internal/types"
	"github.com/temirov/ftree/internal/utils"
)

const (
	depthFlagName        = "depth"
	maxFilesFlagName     = "max-files"
	styleFlagName        = "style"
	iconsFlagName        = "icons"
	hiddenFlagName       = "hidden"
	sizesFlagName        = "sizes"
	formatsFlagName      = "formats"
	excludeFlagName      = "exclude"
	outputFlagName       = "output"
	copyFlagName         = "copy"
	configFlagName       = "config"
	versionFlagName      = "version"
	versionTemplate      = "ftree version: %s\n"
	rootUse              = "ftree <path> [depth] [style]"
	rootShortDescription = "render a directory tree (ftree)"
	rootLongDescription  = `ftree renders a directory subtree as a textual tree diagram.
It draws connector glyphs per entry, aggregates folder/file statistics, and
exports the result to txt, png, svg, or pdf files.`
	rootUsageExample = `  # Text tree of the current project, two levels deep
  ftree .

  # Positional shorthand: depth three, artisanal style with icons, txt and png
  ftree . 3 beautiful

  # Full control
  ftree . --style artisanal --icons --max-files 5 --depth 3 --formats txt,png,svg`

	defaultDepth             = 2
	minimumDepth             = 1
	maximumDepth             = 5
	previewLineCount         = 20
	positionalStyleBeautiful = "beautiful"

	depthFlagDescription    = "maximum depth (1-5)"
	maxFilesFlagDescription = "maximum entries rendered per directory"
	styleFlagDescription    = "tree drawing style (simple, artisanal, minimal)"
	iconsFlagDescription    = "use file type icons"
	hiddenFlagDescription   = "show hidden files"
	sizesFlagDescription    = "show file sizes"
	formatsFlagDescription  = "output formats, comma- or space-separated (txt, png, svg, pdf)"
	excludeFlagDescription  = "patterns to exclude"
	outputFlagDescription   = "destination directory for generated files"
	copyFlagDescription     = "copy the text rendition to the clipboard"
	configFlagDescription   = "configuration file path"
	versionFlagDescription  = "display application version"

	outputFileNameFormat  = "tree_%s_%s.%s"
	outputDirectoryMode   = 0o755
	previewSeparatorWidth = 60

	// invalidStyleMessage reports an unrecognized style value.
	invalidStyleMessage = "invalid style value '%s'"
	// invalidDepthArgumentMessage reports a non-numeric positional depth.
	invalidDepthArgumentMessage = "invalid depth argument '%s'"
	// invalidFormatsWarningFormat reports format names dropped from --formats.
	invalidFormatsWarningFormat = "invalid formats ignored: %s (valid formats: %s)"
	// formatUnavailableWarningFormat reports a renderer whose capability is missing.
	formatUnavailableWarningFormat = "%s skipped: renderer unavailable"
	// formatSavedMessageFormat reports a successfully written output file.
	formatSavedMessageFormat = "%s saved: %s"
	// clipboardWarningFormat reports a failed clipboard copy.
	clipboardWarningFormat = "clipboard copy failed: %v"
	// clipboardCopiedMessage confirms a clipboard copy.
	clipboardCopiedMessage = "tree copied to clipboard"
	// generatingMessageFormat announces the traversal target.
	generatingMessageFormat = "generating folder tree for %s"
	// loadConfigurationErrorFormat reports a failed configuration load.
	loadConfigurationErrorFormat = "loading configuration: %w"
	// createOutputDirectoryErrorFormat reports a failed destination setup.
	createOutputDirectoryErrorFormat = "creating output directory %s: %w"
	// writeFormatErrorFormat reports a failed export.
	writeFormatErrorFormat = "writing %s output: %w"
	// previewMoreLinesFormat summarizes lines elided from the preview.
	previewMoreLinesFormat = "... and %d more lines"
	// previewStatisticsFormat renders the statistics line under the preview.
	previewStatisticsFormat = "Statistics: %d folders, %d files, %s total"
)

// generationOptions stores the flag values of the root command.
type generationOptions struct {
	depth           int
	maxFiles        int
	style           string
	useIcons        bool
	showHidden      bool
	showSizes       bool
	formats         string
	excludePatterns []string
	outputDirectory string
	copyToClipboard bool
	configFilePath  string
}

// Execute runs the ftree application.
func Execute(applicationContext context.Context, logger *zap.Logger) error {
	rootCommand := createRootCommand(logger)
	return rootCommand.ExecuteContext(applicationContext)
}

// createRootCommand builds the root Cobra command.
func createRootCommand(logger *zap.Logger) *cobra.Command {
	var showVersion bool
	options := &generationOptions{}

	rootCommand := &cobra.Command{
		Use:          rootUse,
		Short:        rootShortDescription,
		Long:         rootLongDescription,
		Example:      rootUsageExample,
		Args:         cobra.RangeArgs(1, 3),
		SilenceUsage: true,
		PersistentPreRun: func(command *cobra.Command, arguments []string) {
			if showVersion {
				fmt.Printf(versionTemplate, utils.GetApplicationVersion())
				os.Exit(0)
			}
		},
		RunE: func(command *cobra.Command, arguments []string) error {
			return runGenerate(command, arguments, options, logger)
		},
	}

	rootCommand.PersistentFlags().BoolVar(&showVersion, versionFlagName, false, versionFlagDescription)
	rootCommand.Flags().IntVar(&options.depth, depthFlagName, defaultDepth, depthFlagDescription)
	rootCommand.Flags().IntVar(&options.maxFiles, maxFilesFlagName, 0, maxFilesFlagDescription)
	rootCommand.Flags().StringVar(&options.style, styleFlagName, types.StyleSimple, styleFlagDescription)
	rootCommand.Flags().BoolVar(&options.useIcons, iconsFlagName, false, iconsFlagDescription)
	rootCommand.Flags().BoolVar(&options.showHidden, hiddenFlagName, false, hiddenFlagDescription)
	rootCommand.Flags().BoolVar(&options.showSizes, sizesFlagName, false, sizesFlagDescription)
	rootCommand.Flags().StringVar(&options.formats, formatsFlagName, types.FormatText, formatsFlagDescription)
	rootCommand.Flags().StringArrayVar(&options.excludePatterns, excludeFlagName, types.DefaultExcludePatterns, excludeFlagDescription)
	rootCommand.Flags().StringVar(&options.outputDirectory, outputFlagName, ".", outputFlagDescription)
	rootCommand.Flags().BoolVar(&options.copyToClipboard, copyFlagName, false, copyFlagDescription)
	rootCommand.Flags().StringVar(&options.configFilePath, configFlagName, "", configFlagDescription)
	return rootCommand
}

// runGenerate builds the tree for the requested path and exports it in every
// requested format.
func runGenerate(command *cobra.Command, arguments []string, options *generationOptions, logger *zap.Logger) error {
	applicationConfiguration, configurationError := config.LoadApplicationConfiguration(config.LoadOptions{ExplicitFilePath: options.configFilePath})
	if configurationError != nil {
		return fmt.Errorf(loadConfigurationErrorFormat, configurationError)
	}
	applyConfigurationDefaults(command, options, applicationConfiguration)

	rootPath := arguments[0]
	if positionalError := applyPositionalArguments(arguments, options); positionalError != nil {
		return positionalError
	}

	if !types.IsSupportedStyle(options.style) {
		return fmt.Errorf(invalidStyleMessage, options.style)
	}

	requestedFormats, invalidFormats := parseOutputFormats(options.formats)
	if len(invalidFormats) > 0 {
		logger.Warn(fmt.Sprintf(invalidFormatsWarningFormat, strings.Join(invalidFormats, ", "), strings.Join(render.RegisteredFormats(), ", ")))
	}
	if len(requestedFormats) == 0 {
		requestedFormats = []string{types.FormatText}
	}

	treeConfiguration := types.TreeConfiguration{
		MaxDepth:             clampDepth(options.depth),
		MaxFilesPerDirectory: options.maxFiles,
		ShowHidden:           options.showHidden,
		ShowSizes:            options.showSizes,
		ExcludePatterns:      options.excludePatterns,
		Style:                options.style,
		UseIcons:             options.useIcons,
	}

	absoluteRootPath, absolutePathError := filepath.Abs(rootPath)
	if absolutePathError != nil {
		return fmt.Errorf("resolving absolute path for '%s': %w", rootPath, absolutePathError)
	}
	logger.Info(fmt.Sprintf(generatingMessageFormat, absoluteRootPath))

	treeBuilder := tree.NewTreeBuilder(afero.NewOsFs(), treeConfiguration)
	lines, statistics, buildError := treeBuilder.BuildTree(absoluteRootPath)
	if buildError != nil {
		return buildError
	}

	printPreview(command.OutOrStdout(), lines, statistics)

	if exportError := exportOutputs(command.Context(), lines, statistics, absoluteRootPath, options.outputDirectory, requestedFormats, logger); exportError != nil {
		return exportError
	}

	if options.copyToClipboard {
		copier := clipboard.NewSystemClipboard()
		if copyError := copier.Copy(strings.Join(lines, "\n")); copyError != nil {
			logger.Warn(fmt.Sprintf(clipboardWarningFormat, copyError))
		} else {
			logger.Info(clipboardCopiedMessage)
		}
	}

	return command.Context().Err()
}

// applyConfigurationDefaults overrides built-in flag defaults with values from
// the configuration files. Flags the user typed always win.
func applyConfigurationDefaults(command *cobra.Command, options *generationOptions, applicationConfiguration config.ApplicationConfiguration) {
	flagSet := command.Flags()
	if !flagSet.Changed(depthFlagName) && applicationConfiguration.Depth != nil {
		options.depth = *applicationConfiguration.Depth
	}
	if !flagSet.Changed(styleFlagName) && applicationConfiguration.Style != "" {
		options.style = applicationConfiguration.Style
	}
	if !flagSet.Changed(iconsFlagName) && applicationConfiguration.Icons != nil {
		options.useIcons = *applicationConfiguration.Icons
	}
	if !flagSet.Changed(hiddenFlagName) && applicationConfiguration.Hidden != nil {
		options.showHidden = *applicationConfiguration.Hidden
	}
	if !flagSet.Changed(sizesFlagName) && applicationConfiguration.Sizes != nil {
		options.showSizes = *applicationConfiguration.Sizes
	}
	if !flagSet.Changed(maxFilesFlagName) && applicationConfiguration.MaxFiles != nil {
		options.maxFiles = *applicationConfiguration.MaxFiles
	}
	if !flagSet.Changed(formatsFlagName) && len(applicationConfiguration.Formats) > 0 {
		options.formats = strings.Join(applicationConfiguration.Formats, ",")
	}
	if !flagSet.Changed(excludeFlagName) && len(applicationConfiguration.Exclude) > 0 {
		options.excludePatterns = applicationConfiguration.Exclude
	}
	if !flagSet.Changed(outputFlagName) && applicationConfiguration.Output != "" {
		options.outputDirectory = applicationConfiguration.Output
	}
	if !flagSet.Changed(copyFlagName) && applicationConfiguration.Clipboard != nil {
		options.copyToClipboard = *applicationConfiguration.Clipboard
	}
}

// applyPositionalArguments interprets the optional depth and style positional
// shorthand. The style value "beautiful" implies the artisanal style with
// icons and txt+png output.
func applyPositionalArguments(arguments []string, options *generationOptions) error {
	if len(arguments) > 1 {
		depthValue, depthParseError := strconv.Atoi(arguments[1])
		if depthParseError != nil {
			return fmt.Errorf(invalidDepthArgumentMessage, arguments[1])
		}
		options.depth = depthValue
	}
	if len(arguments) > 2 {
		styleValue := arguments[2]
		if styleValue == positionalStyleBeautiful {
			options.style = types.StyleArtisanal
			options.useIcons = true
			options.formats = types.FormatText + "," + types.FormatPNG
			return nil
		}
		if !types.IsSupportedStyle(styleValue) {
			return fmt.Errorf(invalidStyleMessage, styleValue)
		}
		options.style = styleValue
	}
	return nil
}

// parseOutputFormats splits the formats value on commas or whitespace and
// partitions it into supported and unsupported names.
func parseOutputFormats(rawFormats string) ([]string, []string) {
	var formatNames []string
	if strings.Contains(rawFormats, ",") {
		for _, formatName := range strings.Split(rawFormats, ",") {
			formatNames = append(formatNames, strings.TrimSpace(formatName))
		}
	} else {
		formatNames = strings.Fields(rawFormats)
	}

	var supportedFormats []string
	var unsupportedFormats []string
	for _, formatName := range formatNames {
		if formatName == "" {
			continue
		}
		normalizedName := strings.ToLower(formatName)
		if types.IsSupportedFormat(normalizedName) {
			supportedFormats = append(supportedFormats, normalizedName)
		} else {
			unsupportedFormats = append(unsupportedFormats, formatName)
		}
	}
	return utils.DeduplicatePatterns(supportedFormats), unsupportedFormats
}

// clampDepth restricts the depth value to the supported range.
func clampDepth(depthValue int) int {
	if depthValue < minimumDepth {
		return minimumDepth
	}
	if depthValue > maximumDepth {
		return maximumDepth
	}
	return depthValue
}

// exportOutputs writes every requested format concurrently. A failed format
// is reported and does not stop the others.
func exportOutputs(
	exportContext context.Context,
	lines []string,
	statistics types.TreeStatistics,
	absoluteRootPath string,
	outputDirectory string,
	requestedFormats []string,
	logger *zap.Logger,
) error {
	if mkdirError := os.MkdirAll(outputDirectory, outputDirectoryMode); mkdirError != nil {
		return fmt.Errorf(createOutputDirectoryErrorFormat, outputDirectory, mkdirError)
	}

	fileNameTimestamp := utils.FormatFileNameTimestamp(time.Now())
	rootBaseName := filepath.Base(absoluteRootPath)

	group, groupContext := errgroup.WithContext(exportContext)
	for _, formatName := range requestedFormats {
		renderer, registered := render.RendererFor(formatName)
		if !registered || !renderer.Available() {
			logger.Warn(fmt.Sprintf(formatUnavailableWarningFormat, formatName))
			continue
		}
		outputPath := filepath.Join(outputDirectory, fmt.Sprintf(outputFileNameFormat, rootBaseName, fileNameTimestamp, formatName))
		group.Go(func() error {
			if contextError := groupContext.Err(); contextError != nil {
				return contextError
			}
			if writeError := renderer.Write(lines, statistics, outputPath, absoluteRootPath); writeError != nil {
				return fmt.Errorf(writeFormatErrorFormat, renderer.Format(), writeError)
			}
			logger.Info(fmt.Sprintf(formatSavedMessageFormat, strings.ToUpper(renderer.Format()), outputPath))
			return nil
		})
	}
	return group.Wait()
}

// printPreview writes the first lines of the tree and the statistics summary
// to the provided writer.
func printPreview(outputWriter io.Writer, lines []string, statistics types.TreeStatistics) {
	separator := strings.Repeat("=", previewSeparatorWidth)
	fmt.Fprintln(outputWriter, separator)
	fmt.Fprintln(outputWriter, "PREVIEW:")
	fmt.Fprintln(outputWriter, separator)
	previewLines := lines
	if len(previewLines) > previewLineCount {
		previewLines = previewLines[:previewLineCount]
	}
	for _, line := range previewLines {
		fmt.Fprintln(outputWriter, line)
	}
	if len(lines) > previewLineCount {
		fmt.Fprintf(outputWriter, previewMoreLinesFormat+"\n", len(lines)-previewLineCount)
	}
	fmt.Fprintln(outputWriter)
	fmt.Fprintf(outputWriter, previewStatisticsFormat+"\n", statistics.FolderCount, statistics.FileCount, utils.FormatByteSize(statistics.TotalSizeBytes))
}

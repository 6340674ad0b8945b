package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

// bundleOptions is everything one bundle run needs, after flags and the
// .bundle file have been merged.
type bundleOptions struct {
	Root             string
	Language         string
	Output           string
	Note             bool
	Sort             string
	RemoveEmptyLines bool
	Author           string
	Exclude          []string
	RespectGitIgnore bool
	EchoMode         string
	TokenCount       bool
	TokenModel       string
}

// bundleResult describes a finished bundle run. Text holds the rendered
// bundle only when a caller asked for it to be kept.
type bundleResult struct {
	Files  int
	Output string
	Text   string
}

// executeBundle runs the bundle pipeline. A zero file count means nothing
// matched and the output file was not touched.
func executeBundle(opts bundleOptions, table *languageTable, logger *consoleLogger) (*bundleResult, error) {
	if strings.TrimSpace(opts.Output) == "" {
		return nil, errOutputRequired
	}

	root, err := filepath.Abs(opts.Root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", opts.Root, err)
	}
	output := opts.Output
	if !filepath.IsAbs(output) {
		output = filepath.Join(root, output)
	}

	extensions := table.Resolve(opts.Language)
	logger.Debugf("language %q resolved to %d extension(s)", opts.Language, len(extensions))

	filter, err := NewFilter(root, output, extensions, opts.RespectGitIgnore, opts.Exclude)
	if err != nil {
		return nil, fmt.Errorf("failed to create filter: %w", err)
	}

	files, err := collectFiles(root, filter)
	if err != nil {
		return nil, err
	}
	sortFiles(files, opts.Sort)
	logger.Debugf("collected %d file(s) under %s", len(files), root)

	result := &bundleResult{Files: len(files), Output: output}
	if len(files) == 0 {
		return result, nil
	}

	layout := bundleLayout{
		Root:             root,
		Author:           opts.Author,
		Note:             opts.Note,
		RemoveEmptyLines: opts.RemoveEmptyLines,
	}

	var text strings.Builder
	var tee io.Writer
	if opts.TokenCount || (opts.EchoMode != "" && opts.EchoMode != echoModeNone) {
		tee = &text
	}
	if err := writeBundleFile(output, files, layout, tee); err != nil {
		return nil, err
	}
	result.Text = text.String()
	return result, nil
}

type bundleFlags struct {
	language         string
	output           string
	note             bool
	sort             string
	removeEmptyLines bool
	author           string
	exclude          []string
	gitIgnore        bool
	profile          string
	printFlag        bool
	copyFlag         bool
	sshCopyFlag      bool
	tokenCount       bool
	tokenModel       string
}

// NewBundleCommand creates the bundle subcommand.
func NewBundleCommand() *cobra.Command {
	flags := &bundleFlags{}

	cmd := &cobra.Command{
		Use:   "bundle",
		Short: "Bundle code files into a single file",
		Long: `Bundle walks the current directory, picks the files written in the requested
languages and concatenates them into one output file. Directories named bin,
obj or debug are always skipped.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			verbose, _ := cmd.Flags().GetBool("verbose")
			logger := newConsoleLogger(cmd.ErrOrStderr(), verbose)
			rep := newReporter(cmd.OutOrStdout())

			root, err := os.Getwd()
			if err != nil {
				rep.Failure(classifyError(err).Message())
				return nil
			}

			opts, table, err := buildBundleOptions(cmd, flags, root, logger)
			if err != nil {
				return err
			}
			runBundle(cmd, opts, table, rep, logger)
			return nil
		},
	}

	cmd.Flags().StringVarP(&flags.language, "language", "l", "", "Required: programming languages (e.g. 'cs', 'java', 'js') or 'all'")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "File path and name for the bundled file")
	cmd.Flags().BoolVarP(&flags.note, "note", "n", false, "Add a comment with the source file's relative path")
	cmd.Flags().StringVarP(&flags.sort, "sort", "s", sortByName, "Sort files by 'name' (alphabetical) or 'type' (extension)")
	cmd.Flags().BoolVarP(&flags.removeEmptyLines, "remove-empty-lines", "r", false, "Remove empty lines from the source code")
	cmd.Flags().StringVarP(&flags.author, "author", "a", "", "Add the name of the author at the top of the bundle")
	cmd.Flags().StringArrayVarP(&flags.exclude, "exclude", "x", nil, "Glob of paths to leave out (repeatable, supports **)")
	cmd.Flags().BoolVar(&flags.gitIgnore, "gitignore", false, "Skip files ignored by the .gitignore in the current directory")
	cmd.Flags().StringVarP(&flags.profile, "profile", "p", "default", "Profile to read from the .bundle file")
	cmd.Flags().BoolVar(&flags.printFlag, "print", false, "Also print the bundle to stdout")
	cmd.Flags().BoolVar(&flags.copyFlag, "copy", false, "Also copy the bundle to the clipboard")
	cmd.Flags().BoolVar(&flags.sshCopyFlag, "ssh-copy", false, "Also copy the bundle through an OSC 52 terminal sequence")
	cmd.Flags().BoolVar(&flags.tokenCount, "tcount", false, "Print the token count of the bundle")
	cmd.Flags().StringVar(&flags.tokenModel, "tcount-model", defaultTokenModel, "Model whose tokenizer --tcount uses")
	_ = cmd.MarkFlagRequired("language")

	return cmd
}

// buildBundleOptions merges command-line flags with the .bundle file found in
// root. Flags set explicitly always win.
func buildBundleOptions(cmd *cobra.Command, flags *bundleFlags, root string, logger *consoleLogger) (bundleOptions, *languageTable, error) {
	defaults, err := readBundleFile(filepath.Join(root, bundleFileName), flags.profile)
	if err != nil {
		return bundleOptions{}, nil, fmt.Errorf("failed to read %s: %w", bundleFileName, err)
	}

	opts := bundleOptions{
		Root:             root,
		Language:         flags.language,
		Output:           flags.output,
		Note:             flags.note,
		Sort:             flags.sort,
		RemoveEmptyLines: flags.removeEmptyLines,
		Author:           flags.author,
		Exclude:          append(defaults.exclude, flags.exclude...),
		RespectGitIgnore: flags.gitIgnore,
		TokenCount:       flags.tokenCount,
		TokenModel:       flags.tokenModel,
	}
	if !cmd.Flags().Changed("output") && defaults.output != "" {
		opts.Output = defaults.output
	}
	if !cmd.Flags().Changed("author") && defaults.author != "" {
		opts.Author = defaults.author
	}

	homeMode, err := readHomeEchoSetting()
	if err != nil {
		logger.Warnf("ignoring default echo mode: %v", err)
		homeMode = ""
	}
	opts.EchoMode, err = resolveEchoMode(homeMode, flags.printFlag, flags.copyFlag, flags.sshCopyFlag)
	if err != nil {
		return bundleOptions{}, nil, err
	}

	return opts, newLanguageTable(defaults.languages), nil
}

// runBundle executes a bundle and reports the outcome. Failures are reported
// as a single line and never returned, so they do not change the exit status.
func runBundle(cmd *cobra.Command, opts bundleOptions, table *languageTable, rep *reporter, logger *consoleLogger) {
	result, err := executeBundle(opts, table, logger)
	if err != nil {
		be := classifyError(err)
		logger.Debugf("bundle failed: %v", err)
		rep.Failure(be.Message())
		return
	}
	if result.Files == 0 {
		rep.Notice("No matching files found for the selected language(s).")
		return
	}
	rep.Success("SUCCESS: %d files bundled into %s", result.Files, result.Output)

	if err := echoBundle(cmd, opts.EchoMode, result.Text); err != nil {
		logger.Warnf("%v", err)
	}
	if opts.TokenCount {
		tokens, err := countTokens(result.Text, opts.TokenModel)
		if err != nil {
			logger.Warnf("%v", err)
			return
		}
		fmt.Fprint(cmd.OutOrStdout(), formatTokenReport(tokens, result.Files, opts.TokenModel))
	}
}

func echoBundle(cmd *cobra.Command, mode string, text string) error {
	switch mode {
	case echoModePrint:
		_, err := fmt.Fprint(cmd.OutOrStdout(), text)
		return err
	case echoModeCopy:
		if err := copyToClipboard(text); err != nil {
			return fmt.Errorf("failed to copy bundle to clipboard: %w", err)
		}
	case echoModeSSHCopy:
		return copyToOSC52(cmd.OutOrStdout(), text)
	}
	return nil
}

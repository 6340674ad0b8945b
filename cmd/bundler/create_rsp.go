package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

// NewCreateRspCommand creates the interactive create-rsp subcommand.
func NewCreateRspCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "create-rsp",
		Short: "Interactive helper to create a response file",
		Long: `create-rsp asks for every bundle option and writes them to options.rsp in the
current directory. Run the saved options later with: bundler @options.rsp`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}
			return runCreateRsp(cmd.InOrStdin(), cmd.OutOrStdout(), dir)
		},
	}
}

// collectRspOptions walks through the create-rsp questions.
func collectRspOptions(pr *prompter) (rspOptions, error) {
	var opts rspOptions
	var err error

	opts.Language, err = pr.Ask(&prompt{
		Question: "Enter languages (e.g., 'cs, java' or 'all'): ",
		Retry:    "Required! Languages: ",
		Required: true,
	})
	if err != nil {
		return opts, err
	}

	opts.Output, err = pr.Ask(&prompt{
		Question: "Enter output file name/path: ",
		Retry:    "Required! Output: ",
		Required: true,
	})
	if err != nil {
		return opts, err
	}

	if opts.Note, err = pr.Confirm("Add source notes? (y/n): "); err != nil {
		return opts, err
	}

	opts.Sort, err = pr.Ask(&prompt{Question: "Sort by [name/type]: "})
	if err != nil {
		return opts, err
	}
	if opts.Sort == "" {
		opts.Sort = sortByName
	}

	if opts.RemoveEmptyLines, err = pr.Confirm("Remove empty lines? (y/n): "); err != nil {
		return opts, err
	}

	opts.Author, err = pr.Ask(&prompt{Question: "Author name (optional): "})
	if err != nil {
		return opts, err
	}
	return opts, nil
}

func runCreateRsp(in io.Reader, out io.Writer, dir string) error {
	rep := newReporter(out)
	rep.Plain("=== Response File Creator ===")

	opts, err := collectRspOptions(newPrompter(in, out))
	if err != nil {
		return err
	}

	if err := writeResponseFile(filepath.Join(dir, responseFileName), opts); err != nil {
		return err
	}

	rep.Plain("")
	rep.Success("SUCCESS! '%s' created.", responseFileName)
	rep.Plain("To run: bundler @%s", responseFileName)
	return nil
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates the bundler root command with all subcommands.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bundler",
		Short: "File Bundler CLI Tool",
		Long: `bundler concatenates the source files of a directory tree into one file.

Options can be stored in a response file (see create-rsp) and replayed with
  bundler @options.rsp`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Log what bundler is doing to stderr")

	cmd.AddCommand(NewBundleCommand())
	cmd.AddCommand(NewCreateRspCommand())
	cmd.AddCommand(NewSetEchoCommand())
	return cmd
}

// NewSetEchoCommand creates the set-echo subcommand, which stores the default
// echo mode in ~/.bundle.
func NewSetEchoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set-echo <none|print|copy|ssh-copy>",
		Short: "Set what bundle does with the bundle text after writing it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, ok := normalizeEchoMode(args[0])
			if !ok {
				return fmt.Errorf("invalid echo mode %q (expected none, print, copy, or ssh-copy)", args[0])
			}
			if err := writeHomeEchoSetting(mode); err != nil {
				return fmt.Errorf("failed to save echo mode: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Default echo mode set to %s\n", mode)
			return nil
		},
	}
}

func main() {
	args, err := expandResponseFiles(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	rootCmd := NewRootCommand()
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/qtyi/luna-sub005/internal/driver"
)

func newFmtCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fmtcheck [flags] <path>...",
		Short: "Check that every file prints back byte for byte",
		Long: `fmtcheck parses each file, prints the syntax tree back and compares it with the input.
The printed text is parsed again and must yield the same node kinds. Directories are searched recursively`,
		Args: cobra.MinimumNArgs(1),
		RunE: runFmtCheck,
	}
	return cmd
}

func runFmtCheck(cmd *cobra.Command, args []string) error {
	env, err := newCLIEnv(cmd)
	if err != nil {
		return err
	}
	results, err := driver.FmtCheckPaths(cmd.Context(), args, env.driverOptions())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	failed := 0
	for _, r := range results {
		switch {
		case r.Err != nil:
			failed++
			fmt.Fprintf(out, "%s: %v\n", r.Path, r.Err)
		case !r.OK:
			failed++
			fmt.Fprintf(out, "%s: %s\n", r.Path, r.Message)
		case !env.quiet:
			fmt.Fprintf(out, "%s: %s\n", r.Path, r.Message)
		}
	}
	if !env.quiet {
		fmt.Fprintf(out, "%d file(s) checked, %d failed\n", len(results), failed)
	}
	env.printTimings(cmd)
	if failed > 0 {
		return exitError{code: 1}
	}
	return nil
}

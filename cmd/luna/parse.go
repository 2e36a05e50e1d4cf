package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/qtyi/luna-sub005/internal/diag"
	"github.com/qtyi/luna-sub005/internal/diagfmt"
	"github.com/qtyi/luna-sub005/internal/driver"
)

func newParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [flags] <file.lua|directory|->",
		Short: "Parse Lua source and print the concrete syntax tree",
		Long: `Parse builds the lossless syntax tree of a Lua source file (or stdin with "-") and prints it.
For a directory every source file is parsed in parallel and a per-file summary is printed`,
		Args: cobra.ExactArgs(1),
		RunE: runParse,
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|json)")
	cmd.Flags().Bool("trivia", false, "print trivia attached to tokens")
	cmd.Flags().Bool("values", false, "print decoded values of literals")
	cmd.Flags().Bool("spans", false, "print line:col ranges")
	cmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
	return cmd
}

func runParse(cmd *cobra.Command, args []string) error {
	env, err := newCLIEnv(cmd)
	if err != nil {
		return err
	}

	formatStr, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	format, err := parseFormat(formatStr, "pretty", "json")
	if err != nil {
		return err
	}
	var treeOpts diagfmt.TreeOpts
	if treeOpts.Trivia, err = cmd.Flags().GetBool("trivia"); err != nil {
		return fmt.Errorf("failed to get trivia flag: %w", err)
	}
	if treeOpts.Values, err = cmd.Flags().GetBool("values"); err != nil {
		return fmt.Errorf("failed to get values flag: %w", err)
	}
	if treeOpts.Spans, err = cmd.Flags().GetBool("spans"); err != nil {
		return fmt.Errorf("failed to get spans flag: %w", err)
	}
	opts := env.driverOptions()
	if cmd.Flags().Changed("jobs") {
		if opts.Jobs, err = cmd.Flags().GetInt("jobs"); err != nil {
			return fmt.Errorf("failed to get jobs flag: %w", err)
		}
	}
	defer env.printTimings(cmd)

	name, content, fromStdin, err := readInput(cmd, args[0])
	if err != nil {
		return err
	}

	var result *driver.ParseResult
	if fromStdin {
		result = driver.ParseSourceWithOptions(name, content, opts)
	} else {
		// Проверяем, файл это или директория
		st, statErr := os.Stat(name)
		if statErr != nil {
			return fmt.Errorf("failed to stat path: %w", statErr)
		}
		if st.IsDir() {
			return parseDirectory(cmd, env, name, opts)
		}
		if result, err = driver.Parse(name, opts); err != nil {
			return fmt.Errorf("parsing failed: %w", err)
		}
	}

	if (result.Bag.HasErrors() || result.Bag.HasWarnings()) && !env.quiet {
		diagfmt.Pretty(cmd.ErrOrStderr(), result.Bag, result.FileSet, diagfmt.PrettyOpts{
			Color:   env.useColor(cmd.ErrOrStderr()),
			Context: 1,
		})
	}

	if format == "json" {
		return diagfmt.FormatTreeJSON(cmd.OutOrStdout(), result.Tree, result.FileSet, treeOpts)
	}
	return diagfmt.FormatTreePretty(cmd.OutOrStdout(), result.Tree, result.FileSet, treeOpts)
}

// parseDirectory parses every source file under dir and prints one line per file.
func parseDirectory(cmd *cobra.Command, env *cliEnv, dir string, opts driver.Options) error {
	fileSet, results, err := driver.ParseDir(cmd.Context(), dir, opts)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}
	out := cmd.OutOrStdout()
	for _, r := range results {
		status := "ok"
		if r.Bag.HasErrors() || r.Bag.HasWarnings() {
			status = fmt.Sprintf("%d diagnostic(s)", r.Bag.Len())
		}
		path := fileSet.Get(r.FileID).FormatPath("auto", fileSet.BaseDir())
		fmt.Fprintf(out, "%s: %s\n", path, status)
	}
	if !env.quiet {
		errOut := cmd.ErrOrStderr()
		diagfmt.PrettyDiagnostics(errOut, collectDiagnostics(results), fileSet,
			diagfmt.PrettyOpts{Color: env.useColor(errOut), Context: 1})
	}
	return nil
}

// collectDiagnostics flattens per-file bags in file order.
func collectDiagnostics(results []driver.ParseDirResult) []diag.Diagnostic {
	var items []diag.Diagnostic
	for _, r := range results {
		if r.Bag != nil {
			items = append(items, r.Bag.Items()...)
		}
	}
	return items
}

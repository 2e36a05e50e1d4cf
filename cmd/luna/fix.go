package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/qtyi/luna-sub005/internal/diag"
	"github.com/qtyi/luna-sub005/internal/driver"
	"github.com/qtyi/luna-sub005/internal/fix"
	"github.com/qtyi/luna-sub005/internal/source"
)

func newFixCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fix [flags] <file.lua|directory>",
		Short: "Apply suggested fixes to a source file or directory",
		Long: `Run diagnostics, surface the fixes they suggest (inserting a missing 'end', ')' and so on),
and apply them according to the chosen strategy`,
		Args: cobra.ExactArgs(1),
		RunE: runFix,
	}
	cmd.Flags().Bool("all", false, "apply every non-overlapping fix")
	cmd.Flags().Bool("once", false, "apply the first available fix (default)")
	cmd.Flags().String("id", "", "apply the fix with a specific identifier (see --list)")
	cmd.Flags().Bool("list", false, "list available fixes without applying them")
	cmd.Flags().Bool("dry-run", false, "print the fixed contents instead of writing files")
	return cmd
}

func runFix(cmd *cobra.Command, args []string) error {
	env, err := newCLIEnv(cmd)
	if err != nil {
		return err
	}
	targetPath := args[0]
	flags := cmd.Flags()

	applyAll, err := flags.GetBool("all")
	if err != nil {
		return err
	}
	applyOnceFlag, err := flags.GetBool("once")
	if err != nil {
		return err
	}
	targetID, err := flags.GetString("id")
	if err != nil {
		return err
	}
	list, err := flags.GetBool("list")
	if err != nil {
		return err
	}
	dryRun, err := flags.GetBool("dry-run")
	if err != nil {
		return err
	}

	if targetID != "" && (applyAll || applyOnceFlag) {
		return fmt.Errorf("--id cannot be combined with --all or --once")
	}
	if applyAll && applyOnceFlag {
		return fmt.Errorf("--all and --once are mutually exclusive")
	}

	mode := fix.ApplyModeOnce
	if targetID != "" {
		mode = fix.ApplyModeID
	} else if applyAll {
		mode = fix.ApplyModeAll
	}
	opts := fix.ApplyOptions{Mode: mode, TargetID: targetID, DryRun: dryRun}

	info, err := os.Stat(targetPath)
	if err != nil {
		return fmt.Errorf("fix: %w", err)
	}
	// id уникален только в пределах одного файла
	if info.IsDir() && targetID != "" {
		return fmt.Errorf("fix: id can only be used with a single file")
	}

	driverOpts := env.driverOptions()
	var (
		fileSet     *source.FileSet
		diagnostics []diag.Diagnostic
	)
	if info.IsDir() {
		fs, results, dirErr := driver.ParseDir(cmd.Context(), targetPath, driverOpts)
		if dirErr != nil {
			return fmt.Errorf("fix: diagnose dir failed: %w", dirErr)
		}
		fileSet, diagnostics = fs, collectDiagnostics(results)
	} else {
		result, parseErr := driver.Parse(targetPath, driverOpts)
		if parseErr != nil {
			return fmt.Errorf("fix: diagnose failed: %w", parseErr)
		}
		fileSet, diagnostics = result.FileSet, result.Diagnostics()
	}

	if list {
		return listFixes(cmd.OutOrStdout(), fileSet, diagnostics)
	}
	res, applyErr := fix.Apply(fileSet, diagnostics, opts)
	return handleApplyResult(cmd.OutOrStdout(), res, applyErr, dryRun)
}

func listFixes(out io.Writer, fs *source.FileSet, diagnostics []diag.Diagnostic) error {
	n := 0
	for i := range diagnostics {
		d := &diagnostics[i]
		for idx, f := range d.Fixes {
			path := fs.Get(d.Primary.File).FormatPath("auto", fs.BaseDir())
			if _, err := fmt.Fprintf(out, "%s  %s: %s (%s)\n", fix.FixID(fs, d, idx), path, f.Title, d.Message); err != nil {
				return err
			}
			n++
		}
	}
	if n == 0 {
		_, err := fmt.Fprintln(out, "No fixes available.")
		return err
	}
	return nil
}

func handleApplyResult(out io.Writer, res *fix.ApplyResult, applyErr error, dryRun bool) error {
	if res == nil {
		return applyErr
	}

	if len(res.Applied) > 0 {
		fmt.Fprintf(out, "Applied %d fix(es):\n", len(res.Applied))
		for _, item := range res.Applied {
			location := item.PrimaryPath
			if location == "" {
				location = "(unknown location)"
			}
			fmt.Fprintf(out, "  %s [%s] %s (%d edits)\n", item.Title, item.ID, location, item.EditCount)
		}
	}

	if len(res.FileChanges) > 0 {
		header := "Updated files:"
		if dryRun {
			header = "Would update files:"
		}
		fmt.Fprintln(out, header)
		for _, change := range res.FileChanges {
			fmt.Fprintf(out, "  %s (%d edits)\n", change.Path, change.EditCount)
			if dryRun {
				fmt.Fprintf(out, "--- %s (fixed)\n%s", change.Path, change.Content)
				if n := len(change.Content); n == 0 || change.Content[n-1] != '\n' {
					fmt.Fprintln(out)
				}
			}
		}
	}

	if len(res.Skipped) > 0 {
		fmt.Fprintln(out, "Skipped fixes:")
		for _, skip := range res.Skipped {
			id := skip.ID
			if id == "" {
				id = "(unnamed)"
			}
			if skip.Title != "" {
				fmt.Fprintf(out, "  %s [%s]: %s\n", skip.Title, id, skip.Reason)
			} else {
				fmt.Fprintf(out, "  [%s]: %s\n", id, skip.Reason)
			}
		}
	}

	if applyErr != nil {
		if errors.Is(applyErr, fix.ErrNoFixes) && len(res.Applied) == 0 {
			_, err := fmt.Fprintln(out, "No applicable fixes found.")
			return err
		}
		return applyErr
	}
	return nil
}

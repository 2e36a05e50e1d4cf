package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/qtyi/luna-sub005/internal/diag"
	"github.com/qtyi/luna-sub005/internal/diagfmt"
	"github.com/qtyi/luna-sub005/internal/driver"
	"github.com/qtyi/luna-sub005/internal/source"
	"github.com/qtyi/luna-sub005/internal/version"
)

func newDiagCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diag [flags] <file.lua|directory|->",
		Short: "Report syntax diagnostics for Lua sources",
		Long: `Run diagnostics on a Lua source file, stdin ("-"), or every source file within a directory.
Exits with status 1 when any error is reported`,
		Args: cobra.ExactArgs(1),
		RunE: runDiagnose,
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|short|json|sarif|golden)")
	cmd.Flags().String("stage", "syntax", "diagnostic stage to run (tokenize|syntax)")
	cmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
	cmd.Flags().Bool("with-notes", false, "include diagnostic notes in output")
	cmd.Flags().Bool("suggest", false, "include fix suggestions in output")
	cmd.Flags().Bool("preview", false, "preview the text after applying fix suggestions")
	cmd.Flags().String("path-mode", "auto", "how to print file paths (auto|absolute|relative|basename)")
	cmd.Flags().Uint8("width", 0, "clip source lines in pretty output to this width (0=off)")
	cmd.Flags().Bool("cache", false, "cache directory diagnostics on disk by content hash")
	cmd.Flags().String("cache-dir", "", "cache location (default: $XDG_CACHE_HOME/luna)")
	cmd.Flags().Bool("clear-cache", false, "drop every cached entry before the run")
	cmd.Flags().String("ui", "auto", "progress UI for directories (auto|on|off)")
	return cmd
}

type diagOutputOptions struct {
	format   string
	pathMode diagfmt.PathMode
	notes    bool
	fixes    bool
	preview  bool
	width    uint8
}

// runDiagnose executes "diag": diagnostics for a file, stdin or a directory
// are printed in the chosen format. Errors in the input yield exit status 1.
func runDiagnose(cmd *cobra.Command, args []string) error {
	env, err := newCLIEnv(cmd)
	if err != nil {
		return err
	}
	flags := cmd.Flags()

	formatStr, err := flags.GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	out := diagOutputOptions{}
	if out.format, err = parseFormat(formatStr, "pretty", "short", "json", "sarif", "golden"); err != nil {
		return err
	}
	stageStr, err := flags.GetString("stage")
	if err != nil {
		return fmt.Errorf("failed to get stage flag: %w", err)
	}
	stage, err := driver.ParseDiagnoseStage(stageStr)
	if err != nil {
		return err
	}
	if out.notes, err = flags.GetBool("with-notes"); err != nil {
		return fmt.Errorf("failed to get with-notes flag: %w", err)
	}
	if out.fixes, err = flags.GetBool("suggest"); err != nil {
		return fmt.Errorf("failed to get suggest flag: %w", err)
	}
	if out.preview, err = flags.GetBool("preview"); err != nil {
		return fmt.Errorf("failed to get preview flag: %w", err)
	}
	out.fixes = out.fixes || out.preview
	pathModeStr, err := flags.GetString("path-mode")
	if err != nil {
		return fmt.Errorf("failed to get path-mode flag: %w", err)
	}
	if out.pathMode, err = diagfmt.ParsePathMode(pathModeStr); err != nil {
		return err
	}
	if out.width, err = flags.GetUint8("width"); err != nil {
		return fmt.Errorf("failed to get width flag: %w", err)
	}

	opts := env.driverOptions()
	if flags.Changed("jobs") {
		if opts.Jobs, err = flags.GetInt("jobs"); err != nil {
			return fmt.Errorf("failed to get jobs flag: %w", err)
		}
	}

	name, content, fromStdin, err := readInput(cmd, args[0])
	if err != nil {
		return err
	}

	var (
		fileSet *source.FileSet
		items   []diag.Diagnostic
		failed  bool
	)
	if fromStdin {
		res := driver.DiagnoseSource(name, content, stage, opts)
		fileSet, items, failed = res.FileSet, res.Bag.Items(), res.Bag.HasErrors()
	} else {
		st, statErr := os.Stat(name)
		if statErr != nil {
			return fmt.Errorf("failed to stat path: %w", statErr)
		}
		if st.IsDir() {
			if stage != driver.DiagnoseStageSyntax {
				return fmt.Errorf("--stage %s is only supported for single files", stage)
			}
			fileSet, items, failed, err = diagnoseDirectory(cmd, env, name, opts)
			if err != nil {
				return err
			}
		} else {
			res, diagErr := driver.Diagnose(name, stage, opts)
			if diagErr != nil {
				return fmt.Errorf("diagnosis failed: %w", diagErr)
			}
			fileSet, items, failed = res.FileSet, res.Bag.Items(), res.Bag.HasErrors()
		}
	}

	if err := writeDiagnostics(cmd, env, out, fileSet, items); err != nil {
		return fmt.Errorf("failed to format diagnostics: %w", err)
	}
	if failed {
		return exitError{code: 1}
	}
	return nil
}

func diagnoseDirectory(cmd *cobra.Command, env *cliEnv, dir string, opts driver.Options) (*source.FileSet, []diag.Diagnostic, bool, error) {
	flags := cmd.Flags()
	useCache, err := flags.GetBool("cache")
	if err != nil {
		return nil, nil, false, fmt.Errorf("failed to get cache flag: %w", err)
	}
	useCache = useCache || (!flags.Changed("cache") && env.config.Config.Cache.Enabled)
	clearCache, err := flags.GetBool("clear-cache")
	if err != nil {
		return nil, nil, false, fmt.Errorf("failed to get clear-cache flag: %w", err)
	}
	if useCache || clearCache {
		cache, cacheErr := openCache(cmd, env)
		if cacheErr != nil {
			return nil, nil, false, cacheErr
		}
		if clearCache {
			if err := cache.DropAll(); err != nil {
				return nil, nil, false, fmt.Errorf("failed to clear cache: %w", err)
			}
		}
		if useCache {
			opts.Cache = cache
		}
	}

	uiStr, err := flags.GetString("ui")
	if err != nil {
		return nil, nil, false, fmt.Errorf("failed to get ui flag: %w", err)
	}
	mode, err := readUIMode(uiStr)
	if err != nil {
		return nil, nil, false, err
	}

	var (
		fileSet *source.FileSet
		results []driver.ParseDirResult
	)
	if !env.quiet && shouldUseTUI(mode, cmd.ErrOrStderr()) {
		files, listErr := driver.ListFiles(dir, opts)
		if listErr != nil {
			return nil, nil, false, listErr
		}
		fileSet, results, err = diagnoseDirWithUI(cmd.Context(), cmd.ErrOrStderr(), "diag "+dir, files, dir, opts)
	} else {
		fileSet, results, err = driver.DiagnoseDir(cmd.Context(), dir, opts)
	}
	if err != nil {
		return nil, nil, false, fmt.Errorf("diagnosis failed: %w", err)
	}

	items := collectDiagnostics(results)
	failed := false
	for _, r := range results {
		failed = failed || r.Bag.HasErrors()
	}
	if env.timer != nil {
		items = append(items, driver.TimingDiagnostic("directory", dir, env.timer.Report()))
	}
	return fileSet, items, failed, nil
}

func openCache(cmd *cobra.Command, env *cliEnv) (*driver.DiskCache, error) {
	dir, err := cmd.Flags().GetString("cache-dir")
	if err != nil {
		return nil, fmt.Errorf("failed to get cache-dir flag: %w", err)
	}
	if dir == "" {
		dir = env.config.Config.Cache.Dir
	}
	var cache *driver.DiskCache
	if dir == "" {
		cache, err = driver.OpenDiskCache("luna")
	} else {
		cache, err = driver.NewDiskCache(dir)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open cache: %w", err)
	}
	return cache, nil
}

func writeDiagnostics(cmd *cobra.Command, env *cliEnv, out diagOutputOptions, fileSet *source.FileSet, items []diag.Diagnostic) error {
	w := cmd.OutOrStdout()
	switch out.format {
	case "short":
		return diagfmt.Short(w, items, fileSet, out.pathMode)
	case "golden":
		return diagfmt.Golden(w, items, fileSet, out.notes)
	case "json":
		return diagfmt.JSONDiagnostics(w, items, fileSet, diagfmt.JSONOpts{
			IncludePositions: true,
			PathMode:         out.pathMode,
			IncludeNotes:     out.notes,
			IncludeFixes:     out.fixes,
			IncludePreviews:  out.preview,
		})
	case "sarif":
		return diagfmt.SarifDiagnostics(w, items, fileSet, diagfmt.SarifRunMeta{
			ToolName:       "luna",
			ToolVersion:    version.Version,
			InvocationArgs: os.Args[1:],
		})
	default:
		if len(items) == 0 {
			if !env.quiet {
				fmt.Fprintln(w, "no diagnostics")
			}
			return nil
		}
		diagfmt.PrettyDiagnostics(w, items, fileSet, diagfmt.PrettyOpts{
			Color:       env.useColor(w),
			Context:     2,
			PathMode:    out.pathMode,
			Width:       out.width,
			ShowNotes:   out.notes,
			ShowFixes:   out.fixes,
			ShowPreview: out.preview,
		})
		return nil
	}
}

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/qtyi/luna-sub005/internal/driver"
	"github.com/qtyi/luna-sub005/internal/lexer"
	"github.com/qtyi/luna-sub005/internal/observ"
)

// cliEnv is the state shared by all commands: persistent flags merged with luna.toml.
type cliEnv struct {
	config    *loadedConfig
	logger    *observ.Logger
	timer     *observ.Timer
	quiet     bool
	colorMode string
	maxDiag   int
	kind      lexer.SourceKind
}

func newCLIEnv(cmd *cobra.Command) (*cliEnv, error) {
	flags := cmd.Flags()

	configPath, err := flags.GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}
	cfg, err := loadConfig(configPath, ".")
	if err != nil {
		return nil, err
	}

	env := &cliEnv{config: cfg}

	if env.quiet, err = flags.GetBool("quiet"); err != nil {
		return nil, fmt.Errorf("failed to get quiet flag: %w", err)
	}
	if env.colorMode, err = flags.GetString("color"); err != nil {
		return nil, fmt.Errorf("failed to get color flag: %w", err)
	}
	switch env.colorMode {
	case "auto", "on", "off":
	default:
		return nil, fmt.Errorf("invalid --color value %q (expected auto|on|off)", env.colorMode)
	}

	if env.maxDiag, err = flags.GetInt("max-diagnostics"); err != nil {
		return nil, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	if !flags.Changed("max-diagnostics") && cfg.isDefined("parse.max_diagnostics") {
		env.maxDiag = cfg.Config.Parse.MaxDiagnostics
	}

	kindStr, err := flags.GetString("kind")
	if err != nil {
		return nil, fmt.Errorf("failed to get kind flag: %w", err)
	}
	if !flags.Changed("kind") && cfg.Config.Parse.Kind != "" {
		kindStr = cfg.Config.Parse.Kind
	}
	kind, ok := lexer.ParseSourceKind(kindStr)
	if !ok {
		return nil, fmt.Errorf("invalid --kind value %q (expected script|fragment)", kindStr)
	}
	env.kind = kind

	timings, err := flags.GetBool("timings")
	if err != nil {
		return nil, fmt.Errorf("failed to get timings flag: %w", err)
	}
	if timings {
		env.timer = observ.NewTimer()
	}

	levelStr, err := flags.GetString("log-level")
	if err != nil {
		return nil, fmt.Errorf("failed to get log-level flag: %w", err)
	}
	level, err := observ.ParseLevel(levelStr)
	if err != nil {
		return nil, err
	}
	logFormat, err := flags.GetString("log-format")
	if err != nil {
		return nil, fmt.Errorf("failed to get log-format flag: %w", err)
	}
	if env.logger, err = observ.NewLogger(cmd.ErrOrStderr(), level, logFormat); err != nil {
		return nil, err
	}
	if cfg.Path != "" {
		env.logger.Debug("loaded config", slog.String("path", cfg.Path))
	}
	return env, nil
}

// driverOptions builds driver.Options for this invocation.
func (e *cliEnv) driverOptions() driver.Options {
	opts := driver.Options{
		Kind:           e.kind,
		MaxDiagnostics: e.maxDiag,
		Jobs:           e.config.Config.Run.Jobs,
		Logger:         e.logger,
		Timer:          e.timer,
	}
	if exts := e.config.Config.Files.Extensions; len(exts) > 0 {
		opts.Extensions = exts
	}
	return opts
}

// useColor resolves --color for the given stream.
func (e *cliEnv) useColor(w io.Writer) bool {
	switch e.colorMode {
	case "on":
		return true
	case "off":
		return false
	}
	f, ok := w.(*os.File)
	return ok && isTerminal(f)
}

// printTimings writes the timer summary to stderr when --timings is set.
func (e *cliEnv) printTimings(cmd *cobra.Command) {
	if e.timer == nil || e.quiet {
		return
	}
	fmt.Fprint(cmd.ErrOrStderr(), e.timer.Summary())
}

// readInput reads path, or stdin when path is "-".
func readInput(cmd *cobra.Command, path string) (name string, content []byte, fromStdin bool, err error) {
	if path != "-" {
		return path, nil, false, nil
	}
	content, err = io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", nil, true, fmt.Errorf("failed to read stdin: %w", err)
	}
	return "<stdin>", content, true, nil
}

func parseFormat(value string, allowed ...string) (string, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	for _, a := range allowed {
		if v == a {
			return v, nil
		}
	}
	return "", fmt.Errorf("unknown format %q (must be %s)", value, strings.Join(allowed, "|"))
}

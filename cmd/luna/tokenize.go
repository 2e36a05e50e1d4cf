package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/qtyi/luna-sub005/internal/diagfmt"
	"github.com/qtyi/luna-sub005/internal/driver"
)

func newTokenizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokenize [flags] <file.lua|->",
		Short: "Tokenize a Lua source file",
		Long:  `Tokenize breaks a Lua source file (or stdin with "-") into tokens with their leading and trailing trivia`,
		Args:  cobra.ExactArgs(1),
		RunE:  runTokenize,
	}
	cmd.Flags().String("format", "pretty", "output format (pretty|json)")
	cmd.Flags().Bool("trivia", false, "print leading and trailing trivia of every token")
	cmd.Flags().Bool("values", false, "print decoded values of literals")
	return cmd
}

func runTokenize(cmd *cobra.Command, args []string) error {
	env, err := newCLIEnv(cmd)
	if err != nil {
		return err
	}

	// Получаем флаги
	formatStr, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	format, err := parseFormat(formatStr, "pretty", "json")
	if err != nil {
		return err
	}
	trivia, err := cmd.Flags().GetBool("trivia")
	if err != nil {
		return fmt.Errorf("failed to get trivia flag: %w", err)
	}
	values, err := cmd.Flags().GetBool("values")
	if err != nil {
		return fmt.Errorf("failed to get values flag: %w", err)
	}

	// Выполняем токенизацию
	opts := env.driverOptions()
	name, content, fromStdin, err := readInput(cmd, args[0])
	if err != nil {
		return err
	}
	var result *driver.TokenizeResult
	if fromStdin {
		result = driver.TokenizeSource(name, content, opts)
	} else if result, err = driver.Tokenize(name, opts); err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	// Выводим диагностику в stderr, если есть
	if (result.Bag.HasErrors() || result.Bag.HasWarnings()) && !env.quiet {
		diagfmt.Pretty(cmd.ErrOrStderr(), result.Bag, result.FileSet, diagfmt.PrettyOpts{
			Color:   env.useColor(cmd.ErrOrStderr()),
			Context: 1,
		})
	}

	tokOpts := diagfmt.TokenOpts{Trivia: trivia, Values: values}
	switch format {
	case "json":
		err = diagfmt.FormatTokensJSON(cmd.OutOrStdout(), result.Tokens, tokOpts)
	default:
		err = diagfmt.FormatTokensPretty(cmd.OutOrStdout(), result.Tokens, result.FileSet, tokOpts)
	}
	env.printTimings(cmd)
	return err
}

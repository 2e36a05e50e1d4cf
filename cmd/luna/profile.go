package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/qtyi/luna-sub005/internal/prof"
)

// withProfiling wraps RunE so that --cpu-profile, --mem-profile and
// --runtime-trace cover the whole command, errors included.
func withProfiling(run func(*cobra.Command, []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) (err error) {
		opts, err := profilingOptions(cmd)
		if err != nil {
			return err
		}
		if !opts.Enabled() {
			return run(cmd, args)
		}
		session, err := prof.Start(opts)
		if err != nil {
			return err
		}
		defer func() {
			if stopErr := session.Stop(); stopErr != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "failed to write profiles: %v\n", stopErr)
			}
		}()
		return run(cmd, args)
	}
}

func profilingOptions(cmd *cobra.Command) (prof.Options, error) {
	flags := cmd.Flags()
	var opts prof.Options
	var err error
	if opts.CPU, err = flags.GetString("cpu-profile"); err != nil {
		return opts, fmt.Errorf("failed to get cpu-profile flag: %w", err)
	}
	if opts.Mem, err = flags.GetString("mem-profile"); err != nil {
		return opts, fmt.Errorf("failed to get mem-profile flag: %w", err)
	}
	if opts.Trace, err = flags.GetString("runtime-trace"); err != nil {
		return opts, fmt.Errorf("failed to get runtime-trace flag: %w", err)
	}
	return opts, nil
}

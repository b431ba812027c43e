package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"stlaunch/internal/preflight"
)

var errPreflightFailed = errors.New("preflight checks failed")

func newCheckCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify the settings directory, server executable and entry point",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			results := preflight.RunAll(cmd.Context(), cfg)

			rows := make([][]string, 0, len(results))
			for _, r := range results {
				rows = append(rows, []string{r.Name, checkStatus(r), yesNo(!r.Optional), r.Detail})
			}
			out := cmd.OutOrStdout()
			fmt.Fprint(out, renderTable([]string{"Check", "Status", "Required", "Detail"}, rows))
			fmt.Fprintln(out)

			if err := cmd.Context().Err(); err != nil {
				return err
			}
			if preflight.Failed(results) {
				return errPreflightFailed
			}
			return nil
		},
	}
}

func checkStatus(r preflight.Result) string {
	switch {
	case r.Passed:
		return "ok"
	case r.Optional:
		return "warn"
	default:
		return "fail"
	}
}

package main

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"stlaunch/internal/streamlit"
)

func newWriteCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "write",
		Short: "Write the Streamlit settings file without starting the server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := ctx.launcher(cmd)
			if err != nil {
				return err
			}
			path, err := l.WriteConfig(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}

func newRenderCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "render",
		Short: "Print the settings file content to stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := ctx.launcher(cmd)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(l.Render())
			return err
		},
	}
}

func newShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Display the current Streamlit settings file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			path := cfg.StreamlitConfigFile()
			entries, err := streamlit.ReadEntries(path)
			if err != nil {
				if errors.Is(err, fs.ErrNotExist) {
					return fmt.Errorf("no settings file at %s (run `stlaunch write` first)", path)
				}
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Settings file: %s\n", path)
			fmt.Fprint(out, renderTable([]string{"Section", "Key", "Value"}, settingsRows(entries)))
			fmt.Fprintln(out)
			return nil
		},
	}
}

// settingsRows lays out entries with one title-cased section label per row.
func settingsRows(entries []streamlit.Entry) [][]string {
	title := cases.Title(language.English)
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		section := "(top level)"
		if e.Section != "" {
			section = title.String(e.Section)
		}
		rows = append(rows, []string{section, e.Key, e.Value})
	}
	return rows
}

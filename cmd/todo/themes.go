package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/sandeepkv93/todo/internal/model"
	"github.com/spf13/cobra"
)

func newThemesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List the available themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tBACKGROUND\tTEXT\tDARK")
			for _, theme := range model.Themes() {
				fmt.Fprintf(w, "%s\t%s\t%s\t%t\n", theme.Name, theme.BackgroundClass, theme.TextClass, theme.IsDark())
			}
			return w.Flush()
		},
	}
}

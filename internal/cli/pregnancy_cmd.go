package cli

import (
	"fmt"

	"github.com/alexanderramin/herdbook/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newPregnancyCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "pregnancy",
		Aliases: []string{"preg"},
		Short:   "Inspect pregnancies",
	}

	cmd.AddCommand(
		newPregnancyListCmd(a),
		newPregnancyShowCmd(a),
	)

	return cmd
}

func newPregnancyListCmd(a *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List pregnancies with progress and stage",
		RunE: func(cmd *cobra.Command, args []string) error {
			views, err := a.Pregnancies.ListViews(cmd.Context(), all)
			if err != nil {
				return err
			}
			if len(views) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No pregnancies found.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatPregnancyList(views, a.dueSoonDays()))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include pregnancies that ended in birth")

	return cmd
}

func newPregnancyShowCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID|DAM",
		Short: "Show a pregnancy with its checkups, BCS and offspring",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolvePregnancyID(ctx, a, args[0])
			if err != nil {
				return err
			}
			view, err := a.Pregnancies.View(ctx, id)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatPregnancyDetail(view))
			return nil
		},
	}
}

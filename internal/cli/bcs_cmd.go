package cli

import (
	"fmt"

	"github.com/alexanderramin/herdbook/internal/domain"
	"github.com/spf13/cobra"
)

func newBCSCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bcs",
		Short: "Record body condition scores",
	}
	cmd.AddCommand(newBCSAddCmd(a))
	return cmd
}

func newBCSAddCmd(a *App) *cobra.Command {
	var date, notes string
	var score float64

	cmd := &cobra.Command{
		Use:   "add ID|DAM",
		Short: "Record a body condition score on an open pregnancy",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolvePregnancyID(ctx, a, args[0])
			if err != nil {
				return err
			}
			scored, err := parseDateFlag(a, "date", date)
			if err != nil {
				return err
			}

			e, err := a.Pregnancies.AddBCS(ctx, id, domain.BCSEntry{Date: scored, Score: score, Notes: notes})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Recorded BCS %v for %s (%s)\n",
				e.Score, e.Date.Format(domain.DateLayout), e.MonthLabel)
			return nil
		},
	}

	cmd.Flags().Float64Var(&score, "score", 0, "Body condition score (1-5)")
	cmd.Flags().StringVar(&date, "date", "", "Score date YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&notes, "notes", "", "Notes")
	_ = cmd.MarkFlagRequired("score")

	return cmd
}

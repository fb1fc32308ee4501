package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/herdbook/internal/domain"
	"github.com/spf13/cobra"
)

func newCheckupCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "checkup",
		Short: "Record pregnancy checkups",
	}
	cmd.AddCommand(newCheckupAddCmd(a))
	return cmd
}

func newCheckupAddCmd(a *App) *cobra.Command {
	var date, health, findings string
	var next *time.Time
	var bcs, weight float64

	cmd := &cobra.Command{
		Use:   "add ID|DAM",
		Short: "Record a checkup on an open pregnancy",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolvePregnancyID(ctx, a, args[0])
			if err != nil {
				return err
			}
			checked, err := parseDateFlag(a, "date", date)
			if err != nil {
				return err
			}

			c := domain.CheckupRecord{
				Date:            checked,
				BCS:             bcs,
				WeightKg:        weight,
				Findings:        findings,
				HealthStatus:    domain.HealthStatus(strings.ToLower(health)),
				NextCheckupDate: next,
			}

			stored, err := a.Pregnancies.AddCheckup(ctx, id, c)
			if err != nil {
				return err
			}
			p, err := a.Pregnancies.GetByID(ctx, id)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Recorded checkup #%d for %s on %s; health now %s\n",
				stored.Seq, p.DamID, stored.Date.Format(domain.DateLayout), p.HealthStatus)
			fmt.Fprintf(cmd.OutOrStdout(), "Next checkup due %s\n",
				nextCheckupText(p, a.Lifecycle.CheckupIntervalDays))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Checkup date YYYY-MM-DD (default today)")
	cmd.Flags().Float64Var(&bcs, "bcs", 0, "Body condition score (1-5)")
	cmd.Flags().Float64Var(&weight, "weight", 0, "Dam weight in kg")
	cmd.Flags().StringVar(&health, "health", string(domain.HealthGood), "good, attention_needed or critical")
	cmd.Flags().StringVar(&findings, "findings", "", "Findings")
	optionalDateFlag(cmd.Flags(), &next, "next", "Next checkup date YYYY-MM-DD")
	_ = cmd.MarkFlagRequired("bcs")
	_ = cmd.MarkFlagRequired("weight")

	return cmd
}

func nextCheckupText(p *domain.PregnancyRecord, interval int) string {
	return p.NextCheckupDue(interval).Format(domain.DateLayout)
}

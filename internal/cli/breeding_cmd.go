package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/herdbook/internal/cli/formatter"
	"github.com/alexanderramin/herdbook/internal/domain"
	"github.com/alexanderramin/herdbook/internal/lifecycle"
	"github.com/alexanderramin/herdbook/internal/repository"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newBreedingCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "breeding",
		Aliases: []string{"br"},
		Short:   "Log and decide breedings",
	}

	cmd.AddCommand(
		newBreedingLogCmd(a),
		newBreedingConfirmCmd(a),
		newBreedingRejectCmd(a),
		newBreedingListCmd(a),
		newBreedingCheckCmd(a),
	)

	return cmd
}

func newBreedingLogCmd(a *App) *cobra.Command {
	var dam, sire, species, date, method, notes string

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Log a breeding",
		RunE: func(cmd *cobra.Command, args []string) error {
			bred, err := parseDateFlag(a, "date", date)
			if err != nil {
				return err
			}
			sp, err := domain.ParseSpecies(species)
			if err != nil {
				return err
			}

			now := a.now()
			b := &domain.BreedingEvent{
				ID:           uuid.New().String(),
				DamID:        dam,
				SireID:       sire,
				Species:      sp,
				BreedingDate: bred,
				Method:       domain.BreedingMethod(strings.ToLower(method)),
				Notes:        notes,
				CreatedAt:    now,
				UpdatedAt:    now,
			}

			logBreeding := a.logBreedingUseCase()
			if logBreeding == nil {
				return fmt.Errorf("log-breeding use case is not configured")
			}
			if err := logBreeding.Log(cmd.Context(), b); err != nil {
				return err
			}

			check := lifecycle.ClassifyBreedingCheck(b.BreedingDate, now)
			fmt.Fprintf(cmd.OutOrStdout(), "Logged breeding %s for %s; confirmation check due %s\n",
				b.ID, b.DamID, check.CheckDate.Format(domain.DateLayout))
			return nil
		},
	}

	cmd.Flags().StringVar(&dam, "dam", "", "Dam ID")
	cmd.Flags().StringVar(&sire, "sire", "", "Sire ID")
	cmd.Flags().StringVar(&species, "species", "", "Species (cattle, goat, sheep)")
	cmd.Flags().StringVar(&date, "date", "", "Breeding date YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&method, "method", string(domain.MethodNatural), "natural, artificial_insemination or embryo_transfer")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-text notes")
	_ = cmd.MarkFlagRequired("dam")
	_ = cmd.MarkFlagRequired("sire")
	_ = cmd.MarkFlagRequired("species")

	return cmd
}

func newBreedingConfirmCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "confirm ID",
		Short: "Confirm a breeding and open a pregnancy",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveBreedingID(ctx, a, args[0])
			if err != nil {
				return err
			}
			confirm := a.confirmBreedingUseCase()
			if confirm == nil {
				return fmt.Errorf("confirm-breeding use case is not configured")
			}
			resp, err := confirm.Confirm(ctx, id)
			if err != nil {
				return err
			}

			var view *lifecycle.PregnancyView
			if a.Pregnancies != nil {
				view, _ = a.Pregnancies.View(ctx, resp.Pregnancy.ID)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatConfirmation(resp, view))
			return nil
		},
	}
}

func newBreedingRejectCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:     "reject ID",
		Aliases: []string{"open"},
		Short:   "Mark a breeding as open (no conception)",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveBreedingID(ctx, a, args[0])
			if err != nil {
				return err
			}
			b, err := a.Breedings.Reject(ctx, id)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Breeding %s for %s marked open\n", b.ID, b.DamID)
			return nil
		},
	}
}

func newBreedingListCmd(a *App) *cobra.Command {
	var dam, status string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List breedings",
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := repository.BreedingFilter{DamID: dam}
			if status != "" {
				filter.Status = domain.BreedingStatus(strings.ToLower(status))
				switch filter.Status {
				case domain.BreedingUnconfirmed, domain.BreedingConfirmed, domain.BreedingOpen:
				default:
					return fmt.Errorf("--status %q: use unconfirmed, confirmed or open", status)
				}
			}

			breedings, err := a.Breedings.List(cmd.Context(), filter)
			if err != nil {
				return err
			}
			if len(breedings) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No breedings found.")
				return nil
			}

			now := a.now()
			checks := make(map[string]lifecycle.BreedingCheck, len(breedings))
			for _, b := range breedings {
				checks[b.ID] = lifecycle.ClassifyBreedingCheck(b.BreedingDate, now)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatBreedingList(breedings, checks))
			return nil
		},
	}

	cmd.Flags().StringVar(&dam, "dam", "", "Filter by dam ID")
	cmd.Flags().StringVar(&status, "status", "", "Filter by status (unconfirmed, confirmed, open)")

	return cmd
}

func newBreedingCheckCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "check ID",
		Short: "Show when a breeding's confirmation check falls due",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolveBreedingID(ctx, a, args[0])
			if err != nil {
				return err
			}
			b, check, err := a.Breedings.Check(ctx, id)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatBreedingCheck(b, check))
			return nil
		},
	}
}

package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/herdbook/internal/app"
	"github.com/alexanderramin/herdbook/internal/cli/formatter"
	"github.com/alexanderramin/herdbook/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newBirthCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "birth",
		Short: "Record births",
	}
	cmd.AddCommand(newBirthRecordCmd(a))
	return cmd
}

func newBirthRecordCmd(a *App) *cobra.Command {
	var date, problem, calvingNotes string
	var offspring []string

	cmd := &cobra.Command{
		Use:   "record ID|DAM",
		Short: "Close a pregnancy with a birth and its offspring",
		Long: `Close a pregnancy with a birth and its offspring.

Give each newborn as --offspring "sex=female,weight=3.2,vigor=strong,condition=normal".
Without --offspring on a terminal, an interactive form collects the birth.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			id, err := resolvePregnancyID(ctx, a, args[0])
			if err != nil {
				return err
			}

			var req app.RecordBirthRequest
			if len(offspring) == 0 {
				if !a.interactive() {
					return fmt.Errorf("at least one --offspring is required")
				}
				p, err := a.Pregnancies.GetByID(ctx, id)
				if err != nil {
					return err
				}
				w := newBirthWizard(p.DamID, a.now())
				final, err := tea.NewProgram(w,
					tea.WithInput(cmd.InOrStdin()),
					tea.WithOutput(cmd.ErrOrStderr()),
				).Run()
				if err != nil {
					return fmt.Errorf("birth form: %w", err)
				}
				if fw, ok := final.(*birthWizard); !ok || !fw.finished() {
					fmt.Fprintln(cmd.OutOrStdout(), formatter.Dim("Cancelled. Nothing was recorded."))
					return nil
				}
				if req, err = w.request(id); err != nil {
					return err
				}
			} else {
				born, err := parseDateFlag(a, "date", date)
				if err != nil {
					return err
				}
				req = app.RecordBirthRequest{
					PregnancyID: id,
					BirthDate:   born,
					Calving: domain.CalvingMeta{
						Problem: domain.CalvingProblem(strings.ToLower(problem)),
						Notes:   calvingNotes,
					},
				}
				for _, spec := range offspring {
					in, err := parseOffspringSpec(spec)
					if err != nil {
						return err
					}
					req.Offspring = append(req.Offspring, in)
				}
			}

			recordBirth := a.recordBirthUseCase()
			if recordBirth == nil {
				return fmt.Errorf("record-birth use case is not configured")
			}
			resp, err := recordBirth.RecordBirth(ctx, req)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatBirth(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Birth date YYYY-MM-DD (default today)")
	cmd.Flags().StringArrayVar(&offspring, "offspring", nil, "Newborn as sex=...,weight=...,vigor=...[,condition=...][,notes=...] (repeatable)")
	cmd.Flags().StringVar(&problem, "problem", string(domain.CalvingNone), "Calving problem")
	cmd.Flags().StringVar(&calvingNotes, "calving-notes", "", "Calving notes")

	return cmd
}

package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/herdbook/internal/app"
	"github.com/alexanderramin/herdbook/internal/cli/formatter"
	"github.com/alexanderramin/herdbook/internal/domain"
	"github.com/spf13/cobra"
)

var reminderKinds = []domain.ReminderKind{
	domain.ReminderBreedingCheck,
	domain.ReminderPregnancyCheckup,
	domain.ReminderExpectedBirth,
	domain.ReminderDeworming,
}

func newRemindersCmd(a *App) *cobra.Command {
	var kinds []string
	var dam string
	var days int
	var all, plain bool

	cmd := &cobra.Command{
		Use:     "reminders",
		Aliases: []string{"due"},
		Short:   "Show overdue and upcoming herd reminders",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := app.NewRemindersRequest()
			req.DueSoonDays = a.dueSoonDays()
			if cmd.Flags().Changed("days") {
				if days <= 0 {
					return fmt.Errorf("--days must be positive")
				}
				req.DueSoonDays = days
			}
			req.IncludeOnTrack = all
			req.DamID = dam
			for _, k := range kinds {
				kind, err := parseReminderKind(k)
				if err != nil {
					return err
				}
				req.Kinds = append(req.Kinds, kind)
			}

			due := a.remindersUseCase()
			if due == nil {
				return fmt.Errorf("reminders use case is not configured")
			}
			resp, err := due.Due(cmd.Context(), req)
			if err != nil {
				return err
			}

			if plain {
				for _, alert := range resp.Alerts {
					fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatAlertLine(alert))
				}
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatReminders(resp, req.DueSoonDays))
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&kinds, "kind", nil, "Only these kinds: breeding_check, pregnancy_checkup, expected_birth, deworming")
	cmd.Flags().StringVar(&dam, "dam", "", "Only reminders for this dam")
	cmd.Flags().IntVar(&days, "days", 0, "Due-soon window in days")
	cmd.Flags().BoolVar(&all, "all", false, "Include on-track reminders")
	cmd.Flags().BoolVar(&plain, "plain", false, "One line per reminder, no table")

	return cmd
}

func parseReminderKind(s string) (domain.ReminderKind, error) {
	k := domain.ReminderKind(strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), "-", "_")))
	for _, known := range reminderKinds {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown reminder kind %q", s)
}

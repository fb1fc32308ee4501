package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/herdbook/internal/app"
	"github.com/alexanderramin/herdbook/internal/domain"
	"github.com/alexanderramin/herdbook/internal/lifecycle"
	"github.com/alexanderramin/herdbook/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Breedings   service.BreedingService
	Pregnancies service.PregnancyService
	Reminders   service.ReminderService
	Import      service.ImportService

	// Optional use-case overrides; nil falls back to the services above.
	LogBreeding     app.LogBreedingUseCase
	ConfirmBreeding app.ConfirmBreedingUseCase
	RecordBirth     app.RecordBirthUseCase
	DueReminders    app.RemindersUseCase
	ImportHerd      app.ImportHerdUseCase

	// Clock is shared with the services so --now moves every derived value.
	Clock     *app.Clock
	Lifecycle lifecycle.Options

	// IsInteractive reports whether stdin is a terminal. Nil means never.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "herdbook" command and registers all
// subcommands against the provided App.
func NewRootCmd(a *App) *cobra.Command {
	var nowFlag, herdFile string

	root := &cobra.Command{
		Use:           "herdbook",
		Short:         "Breeding and pregnancy records for a livestock herd",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if nowFlag != "" {
				now, err := parseNow(nowFlag)
				if err != nil {
					return err
				}
				a.clock().Pin(now)
			}
			if herdFile != "" {
				importer := a.importHerdUseCase()
				if importer == nil {
					return fmt.Errorf("import use case is not configured")
				}
				if _, err := importer.ImportHerd(cmd.Context(), herdFile); err != nil {
					return err
				}
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&nowFlag, "now", "", "Evaluate as of this date (YYYY-MM-DD or RFC3339)")
	root.PersistentFlags().StringVar(&herdFile, "herd", "", "Load a herd snapshot JSON file before running")

	root.AddCommand(
		newBreedingCmd(a),
		newPregnancyCmd(a),
		newCheckupCmd(a),
		newBCSCmd(a),
		newBirthCmd(a),
		newRemindersCmd(a),
		newImportCmd(a),
		newSpeciesCmd(),
	)

	return root
}

func (a *App) clock() *app.Clock {
	if a.Clock == nil {
		a.Clock = &app.Clock{}
	}
	return a.Clock
}

func (a *App) now() time.Time {
	return a.clock().Now()
}

func (a *App) dueSoonDays() int {
	if a.Lifecycle.DueSoonDays > 0 {
		return a.Lifecycle.DueSoonDays
	}
	return lifecycle.DefaultDueSoonDays
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// parseNow accepts a calendar date or a full RFC3339 timestamp. A timestamp
// keeps its offset so "today" is the date written in it.
func parseNow(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := domain.ParseDate(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("--now %q: use YYYY-MM-DD or RFC3339", s)
	}
	return t, nil
}

// parseDateFlag parses an optional date flag, defaulting to today's date.
func parseDateFlag(a *App, name, v string) (time.Time, error) {
	if v == "" {
		return domain.DateOnly(a.now()), nil
	}
	t, err := domain.ParseDate(v)
	if err != nil {
		return time.Time{}, fmt.Errorf("--%s %q: use YYYY-MM-DD", name, v)
	}
	return t, nil
}

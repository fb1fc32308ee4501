package cli

import (
	"fmt"

	"github.com/alexanderramin/herdbook/internal/cli/formatter"
	"github.com/alexanderramin/herdbook/internal/domain"
	"github.com/spf13/cobra"
)

func newSpeciesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "species",
		Short: "List supported species and gestation lengths",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSpecies(domain.KnownSpecies()))
			return nil
		},
	}
}

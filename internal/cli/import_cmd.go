package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newImportCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Import breedings and open pregnancies from a herd JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			importHerd := a.importHerdUseCase()
			if importHerd == nil {
				return fmt.Errorf("import use case is not configured")
			}
			result, err := importHerd.ImportHerd(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d breedings, %d pregnancies, %d checkups, %d BCS entries\n",
				result.BreedingCount, result.PregnancyCount, result.CheckupCount, result.BCSCount)
			return nil
		},
	}
}

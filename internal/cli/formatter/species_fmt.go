package formatter

import (
	"fmt"

	"github.com/alexanderramin/herdbook/internal/domain"
)

// FormatSpecies renders the gestation table.
func FormatSpecies(species []domain.Species) string {
	rows := make([][]string, 0, len(species))
	for _, s := range species {
		days, err := domain.GestationDays(s)
		if err != nil {
			continue
		}
		rows = append(rows, []string{SpeciesBadge(s), fmt.Sprintf("%d days", days), s.OffspringPrefix()})
	}
	return RenderBox("Species", RenderTable([]string{"SPECIES", "GESTATION", "TAG PREFIX"}, rows))
}

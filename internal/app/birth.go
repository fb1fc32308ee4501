package app

import (
	"time"

	"github.com/alexanderramin/herdbook/internal/domain"
)

type RecordBirthRequest struct {
	PregnancyID string
	BirthDate   time.Time
	Offspring   []domain.OffspringInput
	Calving     domain.CalvingMeta
}

type RecordBirthResponse struct {
	Pregnancy *domain.PregnancyRecord
	RecordID  string
	Offspring []domain.OffspringRecord
	Deworming []domain.DewormingReminder
	// Monitoring lists newborns whose vigor calls for close observation.
	Monitoring []domain.OffspringRecord
}

type ConfirmBreedingResponse struct {
	Breeding  *domain.BreedingEvent
	Pregnancy *domain.PregnancyRecord
}

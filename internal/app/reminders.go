package app

import (
	"time"

	"github.com/alexanderramin/herdbook/internal/domain"
	"github.com/alexanderramin/herdbook/internal/lifecycle"
)

type RemindersRequest struct {
	Now            *time.Time
	DueSoonDays    int
	Kinds          []domain.ReminderKind
	IncludeOnTrack bool
	DamID          string
}

func NewRemindersRequest() RemindersRequest {
	return RemindersRequest{DueSoonDays: lifecycle.DefaultDueSoonDays}
}

// WantsKind reports whether alerts of kind pass the request's kind filter.
func (r RemindersRequest) WantsKind(kind domain.ReminderKind) bool {
	if len(r.Kinds) == 0 {
		return true
	}
	for _, k := range r.Kinds {
		if k == kind {
			return true
		}
	}
	return false
}

type ReminderCounts struct {
	Overdue int
	DueSoon int
	OnTrack int
}

type RemindersResponse struct {
	GeneratedAt time.Time
	Alerts      []lifecycle.Alert
	Counts      ReminderCounts
}

package contracts

import (
	"context"

	"timetable-service/internal/app/models"
)

type SchoolSettingsRepository interface {
	// GetSchoolCalendar returns nil without error when the school has not
	// configured its timing yet.
	GetSchoolCalendar(ctx context.Context) (*models.SchoolCalendar, error)
}

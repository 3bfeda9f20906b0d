package contracts

import (
	"context"

	"timetable-service/internal/app/models"
)

type ClassRepository interface {
	// FindByID returns nil without error when the class does not exist.
	FindByID(ctx context.Context, classID string) (*models.Class, error)
}

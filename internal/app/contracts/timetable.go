package contracts

import (
	"context"

	"timetable-service/internal/app/models"
	"timetable-service/internal/pkg/dto/requests"
	"timetable-service/internal/pkg/dto/responses"
)

type TimetableUsecase interface {
	GetWeeklyTimetable(ctx context.Context, classID string) (*responses.WeeklyTimetable, error)
	AssignSlot(ctx context.Context, request *requests.AssignSlot) (*responses.TimetableSlot, error)
	ReplaceWeek(ctx context.Context, classID string, request *requests.ReplaceWeek) error
	ResetTimetable(ctx context.Context, classID string) (int64, error)
	CheckSlot(ctx context.Context, request *requests.CheckSlot) (*responses.SlotAvailability, error)
}

type TimetableRepository interface {
	FindByClass(ctx context.Context, classID string) ([]models.TimetableSlot, error)
	FindByClassDay(ctx context.Context, classID, day string) ([]models.TimetableSlot, error)
	FindByTeacherDay(ctx context.Context, teacherID, day string) ([]models.TimetableSlot, error)
	// FindAtSameTime locates the slot occupying exactly [startMinutes,
	// endMinutes) for the class on that day, the identity used to recognize a
	// re-save of an existing booking.
	FindAtSameTime(ctx context.Context, classID, day string, startMinutes, endMinutes int) (*models.TimetableSlot, error)
	// FindByPosition locates the slot holding (classId, day, period). At most
	// one slot may occupy a position, so assignment clears it before inserting.
	FindByPosition(ctx context.Context, classID, day string, period int) (*models.TimetableSlot, error)
	Insert(ctx context.Context, slot *models.TimetableSlot) (string, error)
	// Upsert writes the slot keyed on (classId, day, period), overwriting
	// teacher, subject and time fields of any slot already in that position.
	Upsert(ctx context.Context, slot *models.TimetableSlot) error
	DeleteByID(ctx context.Context, slotID string) error
	DeleteAllForClass(ctx context.Context, classID string) (int64, error)
	// RunInTransaction executes fn inside a single storage transaction with
	// majority read/write concerns. The context handed to fn must be used for
	// every repository call made within it.
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

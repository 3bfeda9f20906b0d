package timetable

import (
	"context"

	"timetable-service/internal/app/contracts"
	"timetable-service/internal/app/models"
)

// ConflictChecker answers the scheduling questions the assignment pipeline
// asks: does a proposed interval fit the school day, does it collide with
// another class's booking for the same teacher, and does it leave the teacher
// enough of a break inside the same class. All interval math is on minute
// offsets with half-open [start, end) semantics, so a slot ending exactly
// when another starts never counts as a conflict.
type ConflictChecker struct {
	TimetableRepository contracts.TimetableRepository
}

func NewConflictChecker(timetableRepository contracts.TimetableRepository) *ConflictChecker {
	return &ConflictChecker{
		TimetableRepository: timetableRepository,
	}
}

// WithinSchoolHours reports whether [start, end) lies inside the school's
// open window. Boundary-touching slots (start == open or end == close) are
// accepted.
func (c *ConflictChecker) WithinSchoolHours(startMinutes, endMinutes int, window *models.CalendarWindow) bool {
	return startMinutes >= window.OpenMinutes && endMinutes <= window.CloseMinutes
}

// OverlapsLunchBreak reports whether [start, end) intersects the lunch
// window. A slot ending exactly at lunch start, or starting exactly at lunch
// end, does not overlap.
func (c *ConflictChecker) OverlapsLunchBreak(startMinutes, endMinutes int, window *models.CalendarWindow) bool {
	if !window.LunchEnabled {
		return false
	}
	return startMinutes < window.LunchEndMinutes && endMinutes > window.LunchStartMinutes
}

// GlobalTeacherConflict scans every active slot for the teacher on that day
// across all classes except excludeClassID and returns the first one whose
// interval overlaps [start, end). The excluded class is handled separately by
// the same-time re-save lookup.
func (c *ConflictChecker) GlobalTeacherConflict(ctx context.Context, teacherID, day string, startMinutes, endMinutes int, excludeClassID string) (*models.TimetableSlot, error) {
	slots, err := c.TimetableRepository.FindByTeacherDay(ctx, teacherID, day)
	if err != nil {
		return nil, err
	}

	for i := range slots {
		if slots[i].ClassID == excludeClassID {
			continue
		}
		if slots[i].Overlaps(startMinutes, endMinutes) {
			return &slots[i], nil
		}
	}
	return nil, nil
}

// FindExistingSlotAtSameTime locates a slot occupying exactly the proposed
// window in the same class. Such a slot is a stale version of the booking
// being re-saved, not a conflict.
func (c *ConflictChecker) FindExistingSlotAtSameTime(ctx context.Context, classID, day string, startMinutes, endMinutes int) (*models.TimetableSlot, error) {
	return c.TimetableRepository.FindAtSameTime(ctx, classID, day, startMinutes, endMinutes)
}

// FindExistingSlotAtPosition locates the slot already holding
// (classId, day, period). Assignment replaces it so a period is never listed
// twice in the week view.
func (c *ConflictChecker) FindExistingSlotAtPosition(ctx context.Context, classID, day string, period int) (*models.TimetableSlot, error) {
	return c.TimetableRepository.FindByPosition(ctx, classID, day, period)
}

// HasBreakSpacing reports whether the proposed interval keeps at least
// minBreak minutes between itself and every other slot the teacher already
// holds in the same class on that day. A gap of exactly minBreak is legal;
// an overlapping same-class slot never is.
func (c *ConflictChecker) HasBreakSpacing(ctx context.Context, teacherID, classID, day string, startMinutes, endMinutes, minBreak int) (bool, error) {
	slots, err := c.TimetableRepository.FindByClassDay(ctx, classID, day)
	if err != nil {
		return false, err
	}

	for i := range slots {
		if slots[i].TeacherID != teacherID {
			continue
		}
		if gapBetween(&slots[i], startMinutes, endMinutes) < minBreak {
			return false, nil
		}
	}
	return true, nil
}

// gapBetween returns the number of free minutes between the existing slot and
// the proposed [start, end) interval, or -1 when they overlap.
func gapBetween(existing *models.TimetableSlot, startMinutes, endMinutes int) int {
	if existing.EndMinutes <= startMinutes {
		return startMinutes - existing.EndMinutes
	}
	if existing.StartMinutes >= endMinutes {
		return existing.StartMinutes - endMinutes
	}
	return -1
}

package timetable

import (
	"context"
	"sort"
	"time"

	"timetable-service/internal/app/contracts"
	"timetable-service/internal/app/models"
	"timetable-service/internal/pkg/clock"
	"timetable-service/internal/pkg/constvars"
	"timetable-service/internal/pkg/dto/requests"
	"timetable-service/internal/pkg/dto/responses"
	"timetable-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type timetableUsecase struct {
	TimetableRepository      contracts.TimetableRepository
	ClassRepository          contracts.ClassRepository
	SchoolSettingsRepository contracts.SchoolSettingsRepository
	EventPublisher           contracts.TimetableEventPublisher
	ConflictChecker          *ConflictChecker
	Log                      *zap.Logger
}

func NewTimetableUsecase(
	timetableRepository contracts.TimetableRepository,
	classRepository contracts.ClassRepository,
	schoolSettingsRepository contracts.SchoolSettingsRepository,
	eventPublisher contracts.TimetableEventPublisher,
	log *zap.Logger,
) contracts.TimetableUsecase {
	return &timetableUsecase{
		TimetableRepository:      timetableRepository,
		ClassRepository:          classRepository,
		SchoolSettingsRepository: schoolSettingsRepository,
		EventPublisher:           eventPublisher,
		ConflictChecker:          NewConflictChecker(timetableRepository),
		Log:                      log,
	}
}

// AssignSlot places one (class, day, period) booking, short-circuiting on the
// first failed check: class lookup, calendar lookup, time parsing, school
// hours, lunch window, cross-class teacher conflict, stale same-time and
// same-period slot replacement, break spacing, persist. Steps that read and
// write slot state
// run inside one storage transaction; when a concurrent assignment aborts it,
// the whole attempt is re-run once against committed state so the retry's
// conflict check reports the winning booking.
func (uc *timetableUsecase) AssignSlot(ctx context.Context, request *requests.AssignSlot) (*responses.TimetableSlot, error) {
	class, window, err := uc.resolveClassAndWindow(ctx, request.ClassID)
	if err != nil {
		return nil, err
	}

	startMinutes, endMinutes, err := parseInterval(request.StartTime, request.EndTime)
	if err != nil {
		return nil, err
	}

	if !uc.ConflictChecker.WithinSchoolHours(startMinutes, endMinutes, window) {
		return nil, exceptions.ErrOutsideSchoolHours(nil)
	}
	if uc.ConflictChecker.OverlapsLunchBreak(startMinutes, endMinutes, window) {
		return nil, exceptions.ErrOverlapsLunchBreak(nil)
	}

	slot, err := uc.assignOnce(ctx, request, class, window, startMinutes, endMinutes)
	if IsTransientTransactionError(err) {
		uc.Log.Warn("assignment transaction aborted on concurrent write, retrying once",
			zap.String(constvars.LoggingTeacherIDKey, request.TeacherID),
			zap.String(constvars.LoggingDayKey, request.Day),
		)
		slot, err = uc.assignOnce(ctx, request, class, window, startMinutes, endMinutes)
		if IsTransientTransactionError(err) {
			return nil, exceptions.BuildNewCustomError(err, constvars.StatusConflict, constvars.SlotConflictMessage, constvars.ErrDevTransactionWriteConflict)
		}
	}
	if err != nil {
		return nil, err
	}

	uc.publishEvent(ctx, contracts.TimetableEvent{
		Name:       constvars.EventSlotAssigned,
		ClassID:    slot.ClassID,
		Day:        slot.Day,
		Period:     slot.Period,
		SlotID:     slot.ID,
		OccurredAt: time.Now(),
	})

	uc.Log.Info("slot assigned",
		zap.String(constvars.LoggingSlotIDKey, slot.ID),
		zap.String(constvars.LoggingClassIDKey, slot.ClassID),
		zap.String(constvars.LoggingTeacherIDKey, slot.TeacherID),
		zap.String(constvars.LoggingDayKey, slot.Day),
		zap.Int(constvars.LoggingPeriodKey, slot.Period),
	)
	return responses.NewTimetableSlot(slot), nil
}

func (uc *timetableUsecase) assignOnce(
	ctx context.Context,
	request *requests.AssignSlot,
	class *models.Class,
	window *models.CalendarWindow,
	startMinutes, endMinutes int,
) (*models.TimetableSlot, error) {
	var persisted *models.TimetableSlot

	err := uc.TimetableRepository.RunInTransaction(ctx, func(txCtx context.Context) error {
		conflict, err := uc.ConflictChecker.GlobalTeacherConflict(txCtx, request.TeacherID, request.Day, startMinutes, endMinutes, request.ClassID)
		if err != nil {
			return err
		}
		if conflict != nil {
			return exceptions.ErrTeacherDoubleBooked(conflict.ClassName, conflict.Section, conflict.StartTime, conflict.EndTime, conflict.Day)
		}

		// A same-class slot occupying exactly this window is the previous
		// version of the booking being re-saved, and the slot already holding
		// this (day, period) position is being replaced. Drop both before the
		// break check so an idempotent retry is never rejected against itself
		// and a period never ends up listed twice.
		stale, err := uc.ConflictChecker.FindExistingSlotAtSameTime(txCtx, request.ClassID, request.Day, startMinutes, endMinutes)
		if err != nil {
			return err
		}
		if stale != nil {
			if err := uc.TimetableRepository.DeleteByID(txCtx, stale.ID); err != nil {
				return err
			}
		}

		occupant, err := uc.ConflictChecker.FindExistingSlotAtPosition(txCtx, request.ClassID, request.Day, request.Period)
		if err != nil {
			return err
		}
		if occupant != nil && (stale == nil || occupant.ID != stale.ID) {
			if err := uc.TimetableRepository.DeleteByID(txCtx, occupant.ID); err != nil {
				return err
			}
		}

		ok, err := uc.ConflictChecker.HasBreakSpacing(txCtx, request.TeacherID, request.ClassID, request.Day, startMinutes, endMinutes, window.BreakMinutes)
		if err != nil {
			return err
		}
		if !ok {
			return exceptions.ErrInsufficientBreak(nil)
		}

		now := time.Now()
		slot := &models.TimetableSlot{
			ClassID:      request.ClassID,
			ClassName:    class.Name,
			Section:      class.Section,
			TeacherID:    request.TeacherID,
			SubjectID:    request.SubjectID,
			Day:          request.Day,
			Period:       request.Period,
			StartTime:    request.StartTime,
			EndTime:      request.EndTime,
			StartMinutes: startMinutes,
			EndMinutes:   endMinutes,
			Status:       constvars.SlotStatusActive,
			TimeModel: models.TimeModel{
				CreatedAt: now,
				UpdatedAt: now,
			},
		}
		if _, err := uc.TimetableRepository.Insert(txCtx, slot); err != nil {
			return err
		}
		persisted = slot
		return nil
	})
	if err != nil {
		return nil, err
	}
	return persisted, nil
}

// ReplaceWeek overwrites the class's weekly timetable with the supplied
// entries as (classId, day, period) upserts inside one transaction. This is
// the trusted bulk-import path: times are parsed and days validated, but the
// per-slot conflict pipeline is not re-run. Callers needing full validation
// assign slot by slot instead.
func (uc *timetableUsecase) ReplaceWeek(ctx context.Context, classID string, request *requests.ReplaceWeek) error {
	class, err := uc.resolveClass(ctx, classID)
	if err != nil {
		return err
	}

	type pendingSlot struct {
		entry        requests.WeekEntry
		day          string
		startMinutes int
		endMinutes   int
	}

	var pending []pendingSlot
	for day, entries := range request.Days {
		if !isSchoolDay(day) {
			return exceptions.ErrInvalidSchoolDay(day)
		}
		for _, entry := range entries {
			startMinutes, endMinutes, err := parseInterval(entry.StartTime, entry.EndTime)
			if err != nil {
				return err
			}
			pending = append(pending, pendingSlot{
				entry:        entry,
				day:          day,
				startMinutes: startMinutes,
				endMinutes:   endMinutes,
			})
		}
	}

	err = uc.TimetableRepository.RunInTransaction(ctx, func(txCtx context.Context) error {
		now := time.Now()
		for _, p := range pending {
			slot := &models.TimetableSlot{
				ClassID:      classID,
				ClassName:    class.Name,
				Section:      class.Section,
				TeacherID:    p.entry.TeacherID,
				SubjectID:    p.entry.SubjectID,
				Day:          p.day,
				Period:       p.entry.Period,
				StartTime:    p.entry.StartTime,
				EndTime:      p.entry.EndTime,
				StartMinutes: p.startMinutes,
				EndMinutes:   p.endMinutes,
				Status:       constvars.SlotStatusActive,
				TimeModel: models.TimeModel{
					UpdatedAt: now,
				},
			}
			if err := uc.TimetableRepository.Upsert(txCtx, slot); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	uc.publishEvent(ctx, contracts.TimetableEvent{
		Name:       constvars.EventWeekReplaced,
		ClassID:    classID,
		OccurredAt: time.Now(),
	})

	uc.Log.Info("class timetable replaced",
		zap.String(constvars.LoggingClassIDKey, classID),
		zap.Int("entries", len(pending)),
	)
	return nil
}

// ResetTimetable removes every slot for the class and returns the count.
// Other classes are untouched; teacher conflicts are always evaluated live,
// so nothing needs recomputing afterwards.
func (uc *timetableUsecase) ResetTimetable(ctx context.Context, classID string) (int64, error) {
	if err := validateObjectIDParam(classID); err != nil {
		return 0, err
	}

	removed, err := uc.TimetableRepository.DeleteAllForClass(ctx, classID)
	if err != nil {
		return 0, err
	}

	uc.publishEvent(ctx, contracts.TimetableEvent{
		Name:       constvars.EventTimetableReset,
		ClassID:    classID,
		OccurredAt: time.Now(),
	})

	uc.Log.Info("class timetable reset",
		zap.String(constvars.LoggingClassIDKey, classID),
		zap.Int64(constvars.LoggingRemovedKey, removed),
	)
	return removed, nil
}

// CheckSlot is the read-only availability probe clients call before
// submitting a real assignment. Only the cross-class teacher conflict is
// evaluated; hours, lunch and break spacing are left to the real assignment.
// Nothing is persisted regardless of outcome.
func (uc *timetableUsecase) CheckSlot(ctx context.Context, request *requests.CheckSlot) (*responses.SlotAvailability, error) {
	if err := validateObjectIDParam(request.ClassID); err != nil {
		return nil, err
	}

	startMinutes, endMinutes, err := parseInterval(request.StartTime, request.EndTime)
	if err != nil {
		return nil, err
	}

	conflict, err := uc.ConflictChecker.GlobalTeacherConflict(ctx, request.TeacherID, request.Day, startMinutes, endMinutes, request.ClassID)
	if err != nil {
		return nil, err
	}

	if conflict != nil {
		return &responses.SlotAvailability{
			Available: false,
			Conflict:  responses.NewConflictingSlot(conflict),
		}, nil
	}
	return &responses.SlotAvailability{Available: true}, nil
}

// GetWeeklyTimetable returns the class's full week grouped Monday through
// Friday, entries ordered by period within each day.
func (uc *timetableUsecase) GetWeeklyTimetable(ctx context.Context, classID string) (*responses.WeeklyTimetable, error) {
	class, err := uc.resolveClass(ctx, classID)
	if err != nil {
		return nil, err
	}

	slots, err := uc.TimetableRepository.FindByClass(ctx, classID)
	if err != nil {
		return nil, err
	}

	byDay := make(map[string][]responses.TimetableSlot)
	for i := range slots {
		byDay[slots[i].Day] = append(byDay[slots[i].Day], *responses.NewTimetableSlot(&slots[i]))
	}

	week := &responses.WeeklyTimetable{
		ClassID: class.ID,
		Section: class.Section,
	}
	for _, day := range constvars.SchoolDays {
		entries := byDay[day]
		sort.Slice(entries, func(i, j int) bool { return entries[i].Period < entries[j].Period })
		if entries == nil {
			entries = []responses.TimetableSlot{}
		}
		week.Days = append(week.Days, responses.DayTimetable{
			Day:     day,
			Entries: entries,
		})
	}
	return week, nil
}

func (uc *timetableUsecase) resolveClass(ctx context.Context, classID string) (*models.Class, error) {
	if err := validateObjectIDParam(classID); err != nil {
		return nil, err
	}
	class, err := uc.ClassRepository.FindByID(ctx, classID)
	if err != nil {
		return nil, err
	}
	if class == nil {
		return nil, exceptions.ErrClassNotFound(nil)
	}
	return class, nil
}

func (uc *timetableUsecase) resolveClassAndWindow(ctx context.Context, classID string) (*models.Class, *models.CalendarWindow, error) {
	class, err := uc.resolveClass(ctx, classID)
	if err != nil {
		return nil, nil, err
	}

	calendar, err := uc.SchoolSettingsRepository.GetSchoolCalendar(ctx)
	if err != nil {
		return nil, nil, err
	}
	if calendar == nil {
		return nil, nil, exceptions.ErrScheduleNotConfigured(nil)
	}

	// A calendar whose clock strings no longer parse is as unusable as a
	// missing one; the settings service has to repair it first.
	window, err := calendar.ResolveWindow()
	if err != nil {
		return nil, nil, exceptions.ErrScheduleNotConfigured(err)
	}
	return class, window, nil
}

func (uc *timetableUsecase) publishEvent(ctx context.Context, event contracts.TimetableEvent) {
	if err := uc.EventPublisher.Publish(ctx, event); err != nil {
		uc.Log.Error("failed to publish timetable event",
			zap.String(constvars.LoggingEventKey, event.Name),
			zap.String(constvars.LoggingClassIDKey, event.ClassID),
			zap.Error(err),
		)
	}
}

func parseInterval(startTime, endTime string) (int, int, error) {
	startMinutes, err := clock.ParseClockTime(startTime)
	if err != nil {
		return 0, 0, exceptions.ErrCannotParseClockTime(err)
	}
	endMinutes, err := clock.ParseClockTime(endTime)
	if err != nil {
		return 0, 0, exceptions.ErrCannotParseClockTime(err)
	}
	if startMinutes >= endMinutes {
		return 0, 0, exceptions.ErrInvalidTimeRange(nil)
	}
	return startMinutes, endMinutes, nil
}

func isSchoolDay(day string) bool {
	for _, d := range constvars.SchoolDays {
		if d == day {
			return true
		}
	}
	return false
}

func validateObjectIDParam(id string) error {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	return nil
}

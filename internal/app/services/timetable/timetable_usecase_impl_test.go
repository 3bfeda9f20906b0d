package timetable

import (
	"context"
	"fmt"
	"testing"

	"timetable-service/internal/app/contracts"
	"timetable-service/internal/app/models"
	"timetable-service/internal/pkg/clock"
	"timetable-service/internal/pkg/constvars"
	"timetable-service/internal/pkg/dto/requests"
	"timetable-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// In-memory doubles for the storage, class and settings contracts. The
// transaction wrapper runs fn directly, optionally aborting the first
// txnAborts calls with a transient-labeled command error; transactional
// semantics themselves are the mongo repository's concern, the usecase tests
// exercise the decision pipeline and its retry behavior.

type fakeTimetableRepository struct {
	slots   []*models.TimetableSlot
	nextID  int
	inserts int
	upserts int
	deletes int

	txnCalls  int
	txnAborts int
}

func newFakeTimetableRepository() *fakeTimetableRepository {
	return &fakeTimetableRepository{}
}

func (f *fakeTimetableRepository) mutations() int {
	return f.inserts + f.upserts + f.deletes
}

func (f *fakeTimetableRepository) FindByClass(ctx context.Context, classID string) ([]models.TimetableSlot, error) {
	var out []models.TimetableSlot
	for _, s := range f.slots {
		if s.ClassID == classID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeTimetableRepository) FindByClassDay(ctx context.Context, classID, day string) ([]models.TimetableSlot, error) {
	var out []models.TimetableSlot
	for _, s := range f.slots {
		if s.ClassID == classID && s.Day == day {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeTimetableRepository) FindByTeacherDay(ctx context.Context, teacherID, day string) ([]models.TimetableSlot, error) {
	var out []models.TimetableSlot
	for _, s := range f.slots {
		if s.TeacherID == teacherID && s.Day == day {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeTimetableRepository) FindAtSameTime(ctx context.Context, classID, day string, startMinutes, endMinutes int) (*models.TimetableSlot, error) {
	for _, s := range f.slots {
		if s.ClassID == classID && s.Day == day && s.StartMinutes == startMinutes && s.EndMinutes == endMinutes {
			found := *s
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakeTimetableRepository) FindByPosition(ctx context.Context, classID, day string, period int) (*models.TimetableSlot, error) {
	for _, s := range f.slots {
		if s.ClassID == classID && s.Day == day && s.Period == period {
			found := *s
			return &found, nil
		}
	}
	return nil, nil
}

func (f *fakeTimetableRepository) Insert(ctx context.Context, slot *models.TimetableSlot) (string, error) {
	if slot.ID == "" {
		f.nextID++
		slot.ID = fmt.Sprintf("slot-%d", f.nextID)
	}
	stored := *slot
	f.slots = append(f.slots, &stored)
	f.inserts++
	return slot.ID, nil
}

func (f *fakeTimetableRepository) Upsert(ctx context.Context, slot *models.TimetableSlot) error {
	f.upserts++
	for _, s := range f.slots {
		if s.ClassID == slot.ClassID && s.Day == slot.Day && s.Period == slot.Period {
			id, createdAt := s.ID, s.CreatedAt
			*s = *slot
			s.ID = id
			s.CreatedAt = createdAt
			return nil
		}
	}
	f.nextID++
	stored := *slot
	stored.ID = fmt.Sprintf("slot-%d", f.nextID)
	f.slots = append(f.slots, &stored)
	return nil
}

func (f *fakeTimetableRepository) DeleteByID(ctx context.Context, slotID string) error {
	for i, s := range f.slots {
		if s.ID == slotID {
			f.slots = append(f.slots[:i], f.slots[i+1:]...)
			f.deletes++
			return nil
		}
	}
	return nil
}

func (f *fakeTimetableRepository) DeleteAllForClass(ctx context.Context, classID string) (int64, error) {
	var kept []*models.TimetableSlot
	var removed int64
	for _, s := range f.slots {
		if s.ClassID == classID {
			removed++
			continue
		}
		kept = append(kept, s)
	}
	f.slots = kept
	if removed > 0 {
		f.deletes++
	}
	return removed, nil
}

func (f *fakeTimetableRepository) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	f.txnCalls++
	if f.txnAborts > 0 {
		f.txnAborts--
		return mongo.CommandError{
			Message: "WriteConflict",
			Labels:  []string{"TransientTransactionError"},
		}
	}
	return fn(ctx)
}

type fakeClassRepository struct {
	classes map[string]*models.Class
}

func (f *fakeClassRepository) FindByID(ctx context.Context, classID string) (*models.Class, error) {
	return f.classes[classID], nil
}

type fakeSchoolSettingsRepository struct {
	calendar *models.SchoolCalendar
}

func (f *fakeSchoolSettingsRepository) GetSchoolCalendar(ctx context.Context) (*models.SchoolCalendar, error) {
	return f.calendar, nil
}

type fakeEventPublisher struct {
	events     []contracts.TimetableEvent
	publishErr error
}

func (f *fakeEventPublisher) Publish(ctx context.Context, event contracts.TimetableEvent) error {
	if f.publishErr != nil {
		return f.publishErr
	}
	f.events = append(f.events, event)
	return nil
}

func seedSlot(repo *fakeTimetableRepository, classID, className, section, teacherID, day string, period int, startTime, endTime string) {
	start, _ := clock.ParseClockTime(startTime)
	end, _ := clock.ParseClockTime(endTime)
	repo.nextID++
	repo.slots = append(repo.slots, &models.TimetableSlot{
		ID:           fmt.Sprintf("slot-%d", repo.nextID),
		ClassID:      classID,
		ClassName:    className,
		Section:      section,
		TeacherID:    teacherID,
		SubjectID:    "subject-1",
		Day:          day,
		Period:       period,
		StartTime:    startTime,
		EndTime:      endTime,
		StartMinutes: start,
		EndMinutes:   end,
		Status:       constvars.SlotStatusActive,
	})
}

type usecaseFixture struct {
	repo     *fakeTimetableRepository
	classes  *fakeClassRepository
	settings *fakeSchoolSettingsRepository
	events   *fakeEventPublisher
	usecase  contracts.TimetableUsecase

	classA string
	classB string
}

func newUsecaseFixture() *usecaseFixture {
	f := &usecaseFixture{
		repo: newFakeTimetableRepository(),
		settings: &fakeSchoolSettingsRepository{
			calendar: &models.SchoolCalendar{
				OpenTime:              "08:00 AM",
				CloseTime:             "05:00 PM",
				TotalPeriods:          8,
				PeriodDurationMinutes: 40,
				BreakDurationMinutes:  10,
				LunchBreak: models.LunchBreak{
					Enabled:         true,
					StartTime:       "12:00 PM",
					DurationMinutes: 60,
				},
			},
		},
		events: &fakeEventPublisher{},
	}
	f.classA = primitive.NewObjectID().Hex()
	f.classB = primitive.NewObjectID().Hex()
	f.classes = &fakeClassRepository{classes: map[string]*models.Class{
		f.classA: {ID: f.classA, Name: "Class 5", Section: "A"},
		f.classB: {ID: f.classB, Name: "Class 6", Section: "B"},
	}}
	f.usecase = NewTimetableUsecase(f.repo, f.classes, f.settings, f.events, zap.NewNop())
	return f
}

func assignRequest(classID string) *requests.AssignSlot {
	return &requests.AssignSlot{
		ClassID:   classID,
		Day:       "Monday",
		Period:    2,
		TeacherID: "teacher-1",
		SubjectID: "subject-1",
		StartTime: "09:00 AM",
		EndTime:   "09:40 AM",
	}
}

func requireCustomError(t *testing.T, err error, statusCode int) *exceptions.CustomError {
	t.Helper()
	require.Error(t, err)
	customErr, ok := err.(*exceptions.CustomError)
	require.True(t, ok, "expected *exceptions.CustomError, got %T", err)
	require.Equal(t, statusCode, customErr.StatusCode)
	return customErr
}

func TestAssignSlot(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		f := newUsecaseFixture()

		slot, err := f.usecase.AssignSlot(ctx, assignRequest(f.classA))
		require.NoError(t, err)
		assert.NotEmpty(t, slot.ID)
		assert.Equal(t, f.classA, slot.ClassID)
		assert.Equal(t, "Class 5", slot.ClassName)
		assert.Equal(t, constvars.SlotStatusActive, slot.Status)
		assert.Len(t, f.repo.slots, 1)

		require.Len(t, f.events.events, 1)
		assert.Equal(t, constvars.EventSlotAssigned, f.events.events[0].Name)
	})

	t.Run("Re-Saving The Same Window Replaces The Old Slot", func(t *testing.T) {
		f := newUsecaseFixture()

		first, err := f.usecase.AssignSlot(ctx, assignRequest(f.classA))
		require.NoError(t, err)

		second, err := f.usecase.AssignSlot(ctx, assignRequest(f.classA))
		require.NoError(t, err)

		assert.NotEqual(t, first.ID, second.ID)
		assert.Len(t, f.repo.slots, 1)
		assert.Equal(t, 1, f.repo.deletes)
	})

	t.Run("Re-Assigning The Same Period At A New Time Replaces The Old Slot", func(t *testing.T) {
		f := newUsecaseFixture()

		_, err := f.usecase.AssignSlot(ctx, assignRequest(f.classA))
		require.NoError(t, err)

		request := assignRequest(f.classA)
		request.TeacherID = "teacher-2"
		request.StartTime = "10:00 AM"
		request.EndTime = "10:40 AM"
		_, err = f.usecase.AssignSlot(ctx, request)
		require.NoError(t, err)

		require.Len(t, f.repo.slots, 1)
		assert.Equal(t, 2, f.repo.slots[0].Period)
		assert.Equal(t, "teacher-2", f.repo.slots[0].TeacherID)
		assert.Equal(t, 10*60, f.repo.slots[0].StartMinutes)

		week, err := f.usecase.GetWeeklyTimetable(ctx, f.classA)
		require.NoError(t, err)
		require.Len(t, week.Days[0].Entries, 1)
	})

	t.Run("Transient Transaction Abort Is Retried Once", func(t *testing.T) {
		f := newUsecaseFixture()
		f.repo.txnAborts = 1

		slot, err := f.usecase.AssignSlot(ctx, assignRequest(f.classA))
		require.NoError(t, err)
		assert.NotEmpty(t, slot.ID)
		assert.Equal(t, 2, f.repo.txnCalls)
		assert.Len(t, f.repo.slots, 1)
	})

	t.Run("Second Transient Abort Surfaces As Conflict", func(t *testing.T) {
		f := newUsecaseFixture()
		f.repo.txnAborts = 2

		_, err := f.usecase.AssignSlot(ctx, assignRequest(f.classA))
		customErr := requireCustomError(t, err, constvars.StatusConflict)
		assert.Equal(t, constvars.SlotConflictMessage, customErr.ClientMessage)
		assert.Equal(t, 2, f.repo.txnCalls)
		assert.Empty(t, f.repo.slots)
		assert.Empty(t, f.events.events)
	})

	t.Run("Teacher Double Booked Across Classes", func(t *testing.T) {
		f := newUsecaseFixture()
		seedSlot(f.repo, f.classB, "Class 6", "B", "teacher-1", "Monday", 1, "09:00 AM", "10:00 AM")

		request := assignRequest(f.classA)
		request.StartTime = "09:30 AM"
		request.EndTime = "10:10 AM"

		_, err := f.usecase.AssignSlot(ctx, request)
		customErr := requireCustomError(t, err, constvars.StatusConflict)
		expected := fmt.Sprintf(constvars.ErrClientTeacherDoubleBookedFormat,
			"Class 6", "B", "09:00 AM", "10:00 AM", "Monday")
		assert.Equal(t, expected, customErr.ClientMessage)
		assert.Len(t, f.repo.slots, 1)
	})

	t.Run("Back To Back With Another Class Is Allowed", func(t *testing.T) {
		f := newUsecaseFixture()
		seedSlot(f.repo, f.classB, "Class 6", "B", "teacher-1", "Monday", 1, "08:00 AM", "09:00 AM")

		_, err := f.usecase.AssignSlot(ctx, assignRequest(f.classA))
		require.NoError(t, err)
	})

	t.Run("Outside School Hours", func(t *testing.T) {
		f := newUsecaseFixture()
		request := assignRequest(f.classA)
		request.StartTime = "07:59 AM"
		request.EndTime = "08:39 AM"

		_, err := f.usecase.AssignSlot(ctx, request)
		customErr := requireCustomError(t, err, constvars.StatusBadRequest)
		assert.Equal(t, constvars.ErrClientOutsideSchoolHours, customErr.ClientMessage)
	})

	t.Run("Boundary Touching Slots Are Accepted", func(t *testing.T) {
		f := newUsecaseFixture()

		opening := assignRequest(f.classA)
		opening.StartTime = "08:00 AM"
		opening.EndTime = "08:40 AM"
		_, err := f.usecase.AssignSlot(ctx, opening)
		require.NoError(t, err)

		closing := assignRequest(f.classA)
		closing.Period = 8
		closing.TeacherID = "teacher-2"
		closing.StartTime = "04:20 PM"
		closing.EndTime = "05:00 PM"
		_, err = f.usecase.AssignSlot(ctx, closing)
		require.NoError(t, err)
	})

	t.Run("Overlaps Lunch Break", func(t *testing.T) {
		f := newUsecaseFixture()
		request := assignRequest(f.classA)
		request.StartTime = "11:30 AM"
		request.EndTime = "12:10 PM"

		_, err := f.usecase.AssignSlot(ctx, request)
		customErr := requireCustomError(t, err, constvars.StatusBadRequest)
		assert.Equal(t, constvars.ErrClientOverlapsLunchBreak, customErr.ClientMessage)
	})

	t.Run("Ending Exactly At Lunch Start Is Accepted", func(t *testing.T) {
		f := newUsecaseFixture()
		request := assignRequest(f.classA)
		request.StartTime = "11:20 AM"
		request.EndTime = "12:00 PM"

		_, err := f.usecase.AssignSlot(ctx, request)
		require.NoError(t, err)
	})

	t.Run("Insufficient Break Spacing", func(t *testing.T) {
		f := newUsecaseFixture()
		seedSlot(f.repo, f.classA, "Class 5", "A", "teacher-1", "Monday", 1, "09:00 AM", "09:40 AM")

		request := assignRequest(f.classA)
		request.Period = 2
		request.StartTime = "09:49 AM"
		request.EndTime = "10:29 AM"

		_, err := f.usecase.AssignSlot(ctx, request)
		customErr := requireCustomError(t, err, constvars.StatusBadRequest)
		assert.Equal(t, constvars.ErrClientInsufficientBreak, customErr.ClientMessage)
	})

	t.Run("Break Of Exactly The Minimum Is Accepted", func(t *testing.T) {
		f := newUsecaseFixture()
		seedSlot(f.repo, f.classA, "Class 5", "A", "teacher-1", "Monday", 1, "09:00 AM", "09:40 AM")

		request := assignRequest(f.classA)
		request.Period = 2
		request.StartTime = "09:50 AM"
		request.EndTime = "10:30 AM"

		_, err := f.usecase.AssignSlot(ctx, request)
		require.NoError(t, err)
	})

	t.Run("Class Not Found", func(t *testing.T) {
		f := newUsecaseFixture()
		request := assignRequest(primitive.NewObjectID().Hex())

		_, err := f.usecase.AssignSlot(ctx, request)
		customErr := requireCustomError(t, err, constvars.StatusNotFound)
		assert.Equal(t, constvars.ErrClientClassNotFound, customErr.ClientMessage)
	})

	t.Run("Malformed Class ID", func(t *testing.T) {
		f := newUsecaseFixture()

		_, err := f.usecase.AssignSlot(ctx, assignRequest("not-an-object-id"))
		requireCustomError(t, err, constvars.StatusBadRequest)
	})

	t.Run("Schedule Not Configured", func(t *testing.T) {
		f := newUsecaseFixture()
		f.settings.calendar = nil

		_, err := f.usecase.AssignSlot(ctx, assignRequest(f.classA))
		customErr := requireCustomError(t, err, constvars.StatusNotFound)
		assert.Equal(t, constvars.ErrClientScheduleNotConfigured, customErr.ClientMessage)
	})

	t.Run("Unparseable Calendar Is Treated As Missing", func(t *testing.T) {
		f := newUsecaseFixture()
		f.settings.calendar.OpenTime = "eight"

		_, err := f.usecase.AssignSlot(ctx, assignRequest(f.classA))
		customErr := requireCustomError(t, err, constvars.StatusNotFound)
		assert.Equal(t, constvars.ErrClientScheduleNotConfigured, customErr.ClientMessage)
	})

	t.Run("Malformed Time", func(t *testing.T) {
		f := newUsecaseFixture()
		request := assignRequest(f.classA)
		request.StartTime = "25:00"

		_, err := f.usecase.AssignSlot(ctx, request)
		customErr := requireCustomError(t, err, constvars.StatusBadRequest)
		assert.Equal(t, constvars.ErrClientMalformedClockTime, customErr.ClientMessage)
	})

	t.Run("Start Not Before End", func(t *testing.T) {
		f := newUsecaseFixture()
		request := assignRequest(f.classA)
		request.StartTime = "10:00 AM"
		request.EndTime = "10:00 AM"

		_, err := f.usecase.AssignSlot(ctx, request)
		customErr := requireCustomError(t, err, constvars.StatusBadRequest)
		assert.Equal(t, constvars.ErrClientInvalidTimeRange, customErr.ClientMessage)
	})

	t.Run("Failed Event Publish Does Not Fail The Assignment", func(t *testing.T) {
		f := newUsecaseFixture()
		f.events.publishErr = fmt.Errorf("broker down")

		_, err := f.usecase.AssignSlot(ctx, assignRequest(f.classA))
		require.NoError(t, err)
		assert.Len(t, f.repo.slots, 1)
	})
}

func TestReplaceWeek(t *testing.T) {
	ctx := context.Background()

	entry := func(period int, teacherID, startTime, endTime string) requests.WeekEntry {
		return requests.WeekEntry{
			Period:    period,
			TeacherID: teacherID,
			SubjectID: "subject-1",
			StartTime: startTime,
			EndTime:   endTime,
		}
	}

	t.Run("Upserts Every Entry And Publishes One Event", func(t *testing.T) {
		f := newUsecaseFixture()

		err := f.usecase.ReplaceWeek(ctx, f.classA, &requests.ReplaceWeek{Days: map[string][]requests.WeekEntry{
			"Monday": {
				entry(1, "teacher-1", "08:00 AM", "08:40 AM"),
				entry(2, "teacher-2", "08:50 AM", "09:30 AM"),
			},
			"Tuesday": {
				entry(1, "teacher-1", "08:00 AM", "08:40 AM"),
			},
		}})
		require.NoError(t, err)
		assert.Equal(t, 3, f.repo.upserts)
		assert.Len(t, f.repo.slots, 3)

		require.Len(t, f.events.events, 1)
		assert.Equal(t, constvars.EventWeekReplaced, f.events.events[0].Name)
	})

	t.Run("Existing Slot In The Same Position Is Overwritten", func(t *testing.T) {
		f := newUsecaseFixture()
		seedSlot(f.repo, f.classA, "Class 5", "A", "teacher-old", "Monday", 1, "08:00 AM", "08:40 AM")

		err := f.usecase.ReplaceWeek(ctx, f.classA, &requests.ReplaceWeek{Days: map[string][]requests.WeekEntry{
			"Monday": {entry(1, "teacher-new", "09:00 AM", "09:40 AM")},
		}})
		require.NoError(t, err)

		require.Len(t, f.repo.slots, 1)
		assert.Equal(t, "teacher-new", f.repo.slots[0].TeacherID)
		assert.Equal(t, 9*60, f.repo.slots[0].StartMinutes)
	})

	t.Run("Invalid Day Rejects The Whole Request", func(t *testing.T) {
		f := newUsecaseFixture()

		err := f.usecase.ReplaceWeek(ctx, f.classA, &requests.ReplaceWeek{Days: map[string][]requests.WeekEntry{
			"Funday": {entry(1, "teacher-1", "08:00 AM", "08:40 AM")},
		}})
		customErr := requireCustomError(t, err, constvars.StatusBadRequest)
		assert.Contains(t, customErr.ClientMessage, "Funday")
		assert.Equal(t, 0, f.repo.mutations())
	})

	t.Run("Malformed Entry Time Rejects The Whole Request", func(t *testing.T) {
		f := newUsecaseFixture()

		err := f.usecase.ReplaceWeek(ctx, f.classA, &requests.ReplaceWeek{Days: map[string][]requests.WeekEntry{
			"Monday": {
				entry(1, "teacher-1", "08:00 AM", "08:40 AM"),
				entry(2, "teacher-1", "bogus", "09:30 AM"),
			},
		}})
		requireCustomError(t, err, constvars.StatusBadRequest)
		assert.Equal(t, 0, f.repo.mutations())
	})

	t.Run("Unknown Class", func(t *testing.T) {
		f := newUsecaseFixture()

		err := f.usecase.ReplaceWeek(ctx, primitive.NewObjectID().Hex(), &requests.ReplaceWeek{Days: map[string][]requests.WeekEntry{
			"Monday": {entry(1, "teacher-1", "08:00 AM", "08:40 AM")},
		}})
		requireCustomError(t, err, constvars.StatusNotFound)
	})
}

func TestResetTimetable(t *testing.T) {
	ctx := context.Background()

	t.Run("Removes Only The Class's Slots", func(t *testing.T) {
		f := newUsecaseFixture()
		seedSlot(f.repo, f.classA, "Class 5", "A", "teacher-1", "Monday", 1, "08:00 AM", "08:40 AM")
		seedSlot(f.repo, f.classA, "Class 5", "A", "teacher-2", "Tuesday", 1, "08:00 AM", "08:40 AM")
		seedSlot(f.repo, f.classA, "Class 5", "A", "teacher-1", "Friday", 3, "10:00 AM", "10:40 AM")
		seedSlot(f.repo, f.classB, "Class 6", "B", "teacher-1", "Monday", 1, "09:00 AM", "09:40 AM")

		removed, err := f.usecase.ResetTimetable(ctx, f.classA)
		require.NoError(t, err)
		assert.Equal(t, int64(3), removed)

		require.Len(t, f.repo.slots, 1)
		assert.Equal(t, f.classB, f.repo.slots[0].ClassID)

		require.Len(t, f.events.events, 1)
		assert.Equal(t, constvars.EventTimetableReset, f.events.events[0].Name)
	})

	t.Run("Empty Timetable Resets To Zero", func(t *testing.T) {
		f := newUsecaseFixture()

		removed, err := f.usecase.ResetTimetable(ctx, f.classA)
		require.NoError(t, err)
		assert.Equal(t, int64(0), removed)
	})

	t.Run("Malformed Class ID", func(t *testing.T) {
		f := newUsecaseFixture()

		_, err := f.usecase.ResetTimetable(ctx, "not-an-object-id")
		requireCustomError(t, err, constvars.StatusBadRequest)
	})
}

func TestCheckSlot(t *testing.T) {
	ctx := context.Background()

	checkRequest := func(classID string) *requests.CheckSlot {
		return &requests.CheckSlot{
			TeacherID: "teacher-1",
			ClassID:   classID,
			Day:       "Monday",
			StartTime: "09:30 AM",
			EndTime:   "10:10 AM",
		}
	}

	t.Run("Reports The Conflicting Booking", func(t *testing.T) {
		f := newUsecaseFixture()
		seedSlot(f.repo, f.classB, "Class 6", "B", "teacher-1", "Monday", 1, "09:00 AM", "10:00 AM")

		availability, err := f.usecase.CheckSlot(ctx, checkRequest(f.classA))
		require.NoError(t, err)
		assert.False(t, availability.Available)
		require.NotNil(t, availability.Conflict)
		assert.Equal(t, "Class 6", availability.Conflict.ClassName)
		assert.Equal(t, "09:00 AM", availability.Conflict.StartTime)

		assert.Equal(t, 0, f.repo.mutations())
	})

	t.Run("Available When Teacher Is Free", func(t *testing.T) {
		f := newUsecaseFixture()
		seedSlot(f.repo, f.classB, "Class 6", "B", "teacher-2", "Monday", 1, "09:00 AM", "10:00 AM")

		availability, err := f.usecase.CheckSlot(ctx, checkRequest(f.classA))
		require.NoError(t, err)
		assert.True(t, availability.Available)
		assert.Nil(t, availability.Conflict)
		assert.Equal(t, 0, f.repo.mutations())
	})

	t.Run("Own Class Slot Is Not A Conflict", func(t *testing.T) {
		f := newUsecaseFixture()
		seedSlot(f.repo, f.classA, "Class 5", "A", "teacher-1", "Monday", 1, "09:30 AM", "10:10 AM")

		availability, err := f.usecase.CheckSlot(ctx, checkRequest(f.classA))
		require.NoError(t, err)
		assert.True(t, availability.Available)
	})
}

func TestGetWeeklyTimetable(t *testing.T) {
	ctx := context.Background()

	t.Run("Groups By Day And Sorts By Period", func(t *testing.T) {
		f := newUsecaseFixture()
		seedSlot(f.repo, f.classA, "Class 5", "A", "teacher-1", "Monday", 3, "10:00 AM", "10:40 AM")
		seedSlot(f.repo, f.classA, "Class 5", "A", "teacher-2", "Monday", 1, "08:00 AM", "08:40 AM")
		seedSlot(f.repo, f.classA, "Class 5", "A", "teacher-1", "Wednesday", 1, "08:00 AM", "08:40 AM")
		seedSlot(f.repo, f.classB, "Class 6", "B", "teacher-1", "Monday", 1, "09:00 AM", "09:40 AM")

		week, err := f.usecase.GetWeeklyTimetable(ctx, f.classA)
		require.NoError(t, err)
		assert.Equal(t, f.classA, week.ClassID)
		assert.Equal(t, "A", week.Section)

		require.Len(t, week.Days, len(constvars.SchoolDays))
		for i, day := range constvars.SchoolDays {
			assert.Equal(t, day, week.Days[i].Day)
			assert.NotNil(t, week.Days[i].Entries)
		}

		monday := week.Days[0]
		require.Len(t, monday.Entries, 2)
		assert.Equal(t, 1, monday.Entries[0].Period)
		assert.Equal(t, 3, monday.Entries[1].Period)

		assert.Len(t, week.Days[2].Entries, 1)
		assert.Empty(t, week.Days[1].Entries)
		assert.Empty(t, week.Days[4].Entries)
	})

	t.Run("Unknown Class", func(t *testing.T) {
		f := newUsecaseFixture()

		_, err := f.usecase.GetWeeklyTimetable(ctx, primitive.NewObjectID().Hex())
		requireCustomError(t, err, constvars.StatusNotFound)
	})
}

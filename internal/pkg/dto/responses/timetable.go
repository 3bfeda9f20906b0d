package responses

import "timetable-service/internal/app/models"

type TimetableSlot struct {
	ID        string `json:"id"`
	ClassID   string `json:"classId"`
	ClassName string `json:"className"`
	Section   string `json:"section"`
	TeacherID string `json:"teacherId"`
	SubjectID string `json:"subjectId"`
	Day       string `json:"day"`
	Period    int    `json:"period"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Status    string `json:"status"`
}

func NewTimetableSlot(slot *models.TimetableSlot) *TimetableSlot {
	return &TimetableSlot{
		ID:        slot.ID,
		ClassID:   slot.ClassID,
		ClassName: slot.ClassName,
		Section:   slot.Section,
		TeacherID: slot.TeacherID,
		SubjectID: slot.SubjectID,
		Day:       slot.Day,
		Period:    slot.Period,
		StartTime: slot.StartTime,
		EndTime:   slot.EndTime,
		Status:    slot.Status,
	}
}

// WeeklyTimetable groups a class's slots Monday through Friday, entries
// ordered by period within each day.
type WeeklyTimetable struct {
	ClassID string         `json:"classId"`
	Section string         `json:"section"`
	Days    []DayTimetable `json:"days"`
}

type DayTimetable struct {
	Day     string          `json:"day"`
	Entries []TimetableSlot `json:"entries"`
}

// SlotAvailability is the dry-run check outcome. Conflict is set only when
// Available is false.
type SlotAvailability struct {
	Available bool             `json:"available"`
	Conflict  *ConflictingSlot `json:"conflict,omitempty"`
}

type ConflictingSlot struct {
	ClassID   string `json:"classId"`
	ClassName string `json:"className"`
	Section   string `json:"section"`
	Day       string `json:"day"`
	Period    int    `json:"period"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

func NewConflictingSlot(slot *models.TimetableSlot) *ConflictingSlot {
	return &ConflictingSlot{
		ClassID:   slot.ClassID,
		ClassName: slot.ClassName,
		Section:   slot.Section,
		Day:       slot.Day,
		Period:    slot.Period,
		StartTime: slot.StartTime,
		EndTime:   slot.EndTime,
	}
}

type ResetTimetable struct {
	ClassID      string `json:"classId"`
	SlotsRemoved int64  `json:"slotsRemoved"`
}

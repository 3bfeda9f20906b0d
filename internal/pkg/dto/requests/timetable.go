package requests

// AssignSlot is the single-slot placement request. ClassID arrives as a URL
// parameter and is filled in by the controller before validation.
type AssignSlot struct {
	ClassID   string `json:"classId" validate:"required"`
	Day       string `json:"day" validate:"required,school_day"`
	Period    int    `json:"period" validate:"required,gte=1"`
	TeacherID string `json:"teacherId" validate:"required"`
	SubjectID string `json:"subjectId" validate:"required"`
	StartTime string `json:"startTime" validate:"required,clock_time"`
	EndTime   string `json:"endTime" validate:"required,clock_time"`
}

// ReplaceWeek carries a full week of slot definitions keyed by day name.
// This is the trusted bulk-import path: entries are upserted without re-running
// the per-slot conflict pipeline.
type ReplaceWeek struct {
	Days map[string][]WeekEntry `json:"days" validate:"required,min=1"`
}

type WeekEntry struct {
	Period    int    `json:"period" validate:"required,gte=1"`
	TeacherID string `json:"teacherId" validate:"required"`
	SubjectID string `json:"subjectId" validate:"required"`
	StartTime string `json:"startTime" validate:"required,clock_time"`
	EndTime   string `json:"endTime" validate:"required,clock_time"`
}

// CheckSlot is the read-only availability probe.
type CheckSlot struct {
	TeacherID string `json:"teacherId" validate:"required"`
	ClassID   string `json:"classId" validate:"required"`
	Day       string `json:"day" validate:"required,school_day"`
	StartTime string `json:"startTime" validate:"required,clock_time"`
	EndTime   string `json:"endTime" validate:"required,clock_time"`
}

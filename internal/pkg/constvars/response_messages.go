package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Timetable messages
	GetTimetableSuccessMessage     = "get class timetable successfully"
	AssignSlotSuccessMessage       = "slot assigned successfully"
	ReplaceWeekSuccessMessage      = "class timetable replaced successfully"
	ResetTimetableSuccessMessage   = "class timetable reset successfully"
	SlotAvailableMessage           = "slot is available"
	SlotConflictMessage            = "teacher is already booked in this time range"
)

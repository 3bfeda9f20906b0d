package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY ContextKey = "request_id"
)

const (
	ResourceClasses   = "classes"
	ResourceTimetable = "timetable"
)

// School days form a closed set; weekend slots are never scheduled.
const (
	DayMonday    = "Monday"
	DayTuesday   = "Tuesday"
	DayWednesday = "Wednesday"
	DayThursday  = "Thursday"
	DayFriday    = "Friday"
)

var SchoolDays = []string{
	DayMonday,
	DayTuesday,
	DayWednesday,
	DayThursday,
	DayFriday,
}

const (
	SlotStatusActive   = "active"
	SlotStatusInactive = "inactive"
)

const (
	MongoCollectionTimetableSlots = "timetable_slots"
	MongoCollectionClasses        = "classes"
	MongoCollectionSchoolSettings = "school_settings"
)

const (
	RedisKeyClassPrefix = "timetable:class:"
)

const (
	EventSlotAssigned   = "timetable.slot.assigned"
	EventWeekReplaced   = "timetable.week.replaced"
	EventTimetableReset = "timetable.reset"
)

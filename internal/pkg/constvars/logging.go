package constvars

const (
	LoggingRequestIDKey = "request_id"
	LoggingClassIDKey   = "class_id"
	LoggingTeacherIDKey = "teacher_id"
	LoggingDayKey       = "day"
	LoggingPeriodKey    = "period"
	LoggingSlotIDKey    = "slot_id"
	LoggingQueueKey     = "queue"
	LoggingEventKey     = "event"
	LoggingRemovedKey   = "removed"
)

package constvars

// Client-facing messages. Kept free of storage details so the boundary never
// leaks infrastructure state to callers.
const (
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application, please try again later"
	ErrClientCannotProcessRequest          = "Cannot process request, please check your input"
	ErrClientClassNotFound                 = "Class not found"
	ErrClientScheduleNotConfigured         = "School timing has not been configured yet"
	ErrClientMalformedClockTime            = "Time must be in 12-hour format, e.g. 09:00 AM"
	ErrClientInvalidTimeRange              = "Start time must be before end time"
	ErrClientOutsideSchoolHours            = "Slot must lie within school opening hours"
	ErrClientOverlapsLunchBreak            = "Slot overlaps the lunch break"
	ErrClientInsufficientBreak             = "Teacher needs a longer break before or after this slot"
	ErrClientTeacherDoubleBookedFormat     = "Teacher is already booked in class %s (%s) from %s to %s on %s"
	ErrClientInvalidSchoolDayFormat        = "%q is not a school day (Monday through Friday)"
)

// Developer messages carried on CustomError for logs only.
const (
	ErrDevValidationFailed         = "request validation failed"
	ErrDevCannotParseJSON          = "failed to parse JSON request body"
	ErrDevCannotMarshalJSON        = "failed to marshal value into JSON"
	ErrDevCannotParseClockTime     = "failed to parse 12-hour clock time"
	ErrDevInvalidTimeRange         = "slot start minutes >= end minutes"
	ErrDevInvalidSchoolDay         = "day outside the Monday-Friday closed set"
	ErrDevClassNotExists           = "class does not exist"
	ErrDevScheduleNotConfigured    = "school_settings document missing for school"
	ErrDevOutsideSchoolHours       = "slot interval outside configured school hours"
	ErrDevOverlapsLunchBreak       = "slot interval intersects lunch break window"
	ErrDevInsufficientBreak        = "slot violates minimum break spacing"
	ErrDevTeacherDoubleBooked      = "teacher already has an overlapping slot in another class"
	ErrDevTransactionWriteConflict = "storage transaction aborted on write conflict"
	ErrDevUnhandledPanic           = "unhandled panic escaped a handler"

	ErrDevDBFailedToFindDocument     = "failed to find document on mongo database"
	ErrDevDBFailedToInsertDocument   = "failed to insert document on mongo database"
	ErrDevDBFailedToUpdateDocument   = "failed to update document on mongo database"
	ErrDevDBFailedToDeleteDocument   = "failed to delete document on mongo database"
	ErrDevDBFailedToIterateDocuments = "failed to iterate documents on mongo database"
	ErrDevDBStringNotObjectID        = "string cannot be converted into mongo ObjectID"
	ErrDevDBTransactionFailed        = "failed to run mongo transaction"

	ErrDevRedisGetData    = "failed to get data from redis"
	ErrDevRedisSetData    = "failed to set data on redis"
	ErrDevRedisDeleteData = "failed to delete data on redis"

	ErrDevRabbitMQPublishMessage = "failed to publish message to rabbitmq queue %s"
)

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":   "is required",
	"min":        "must be at least %s characters long",
	"max":        "maximum at %s characters long",
	"gt":         "must be greater than %s",
	"gte":        "must be greater than or equal to %s",
	"lt":         "must be less than %s",
	"lte":        "must be less than or equal to %s",
	"oneof":      "must be one of [%s]",
	"numeric":    "must be a number",
	"school_day": "must be a school day (Monday through Friday)",
	"clock_time": "must be a 12-hour clock time like 09:00 AM",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"gt":    true,
	"gte":   true,
	"lt":    true,
	"lte":   true,
	"oneof": true,
}

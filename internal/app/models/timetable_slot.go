package models

import "go.mongodb.org/mongo-driver/bson"

// TimetableSlot is one (class, day, period) entry of a class timetable. At
// most one slot exists per (classId, day, period); the
// (classId, day, startMinutes, endMinutes) combination identifies a re-save
// of the same booking. StartMinutes/EndMinutes are derived from the
// wall-clock strings at write time and every overlap comparison treats them
// as a half-open interval [start, end).
type TimetableSlot struct {
	ID           string `json:"id" bson:"_id,omitempty"`
	ClassID      string `json:"classId" bson:"classId"`
	ClassName    string `json:"className" bson:"className"`
	Section      string `json:"section" bson:"section"`
	TeacherID    string `json:"teacherId" bson:"teacherId"`
	SubjectID    string `json:"subjectId" bson:"subjectId"`
	Day          string `json:"day" bson:"day"`
	Period       int    `json:"period" bson:"period"`
	StartTime    string `json:"startTime" bson:"startTime"`
	EndTime      string `json:"endTime" bson:"endTime"`
	StartMinutes int    `json:"startMinutes" bson:"startMinutes"`
	EndMinutes   int    `json:"endMinutes" bson:"endMinutes"`
	Status       string `json:"status" bson:"status"`
	TimeModel    `bson:",inline"`
}

// Overlaps reports whether the slot's interval intersects [start, end) on the
// half-open convention, so back-to-back periods never count as a conflict.
func (s *TimetableSlot) Overlaps(startMinutes, endMinutes int) bool {
	return s.StartMinutes < endMinutes && s.EndMinutes > startMinutes
}

// ConvertToBsonM builds the $set document for the (classId, day, period)
// upsert used by the bulk replace path.
func (s *TimetableSlot) ConvertToBsonM() bson.M {
	return bson.M{
		"classId":      s.ClassID,
		"className":    s.ClassName,
		"section":      s.Section,
		"teacherId":    s.TeacherID,
		"subjectId":    s.SubjectID,
		"day":          s.Day,
		"period":       s.Period,
		"startTime":    s.StartTime,
		"endTime":      s.EndTime,
		"startMinutes": s.StartMinutes,
		"endMinutes":   s.EndMinutes,
		"status":       s.Status,
		"updatedAt":    s.UpdatedAt,
	}
}

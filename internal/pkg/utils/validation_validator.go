package utils

import (
	"timetable-service/internal/pkg/clock"
	"timetable-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("school_day", validateSchoolDay)
	validate.RegisterValidation("clock_time", validateClockTime)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateSchoolDay(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	for _, day := range constvars.SchoolDays {
		if value == day {
			return true
		}
	}
	return false
}

func validateClockTime(fl validator.FieldLevel) bool {
	_, err := clock.ParseClockTime(fl.Field().String())
	return err == nil
}

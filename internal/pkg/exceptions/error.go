package exceptions

import (
	"fmt"
	"runtime"

	"timetable-service/internal/pkg/constvars"
)

type CustomError struct {
	StatusCode    int        `json:"status_code"`
	Success       bool       `json:"success"`
	ClientMessage string     `json:"message"`
	DevMessage    string     `json:"-"`
	Locations     []Location `json:"-"`
}

type Location struct {
	File         string
	Line         int
	FunctionName string
}

func (e *CustomError) Error() string {
	if len(e.Locations) == 0 {
		return e.DevMessage
	}
	first := e.Locations[0]
	return fmt.Sprintf("%s (%s:%d %s)", e.DevMessage, first.File, first.Line, first.FunctionName)
}

// BuildNewCustomError wraps err into a CustomError carrying the HTTP status
// and both client- and developer-facing messages. If err is already a
// CustomError the original location trail is preserved and extended, so the
// log shows the full path an error travelled through the service.
func BuildNewCustomError(err error, statusCode int, clientMessage, devMessage string) *CustomError {
	location := getLocation(2)

	if customErr, ok := err.(*CustomError); ok {
		customErr.Locations = append(customErr.Locations, location)
		return customErr
	}

	if err != nil {
		devMessage = fmt.Sprintf("%s: %s", devMessage, err.Error())
	}
	return &CustomError{
		StatusCode:    statusCode,
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
		Locations:     []Location{location},
	}
}

func getLocation(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Location{
			File:         constvars.ResponseUnknown,
			Line:         0,
			FunctionName: constvars.ResponseUnknown,
		}
	}
	function := runtime.FuncForPC(pc).Name()
	return Location{
		File:         file,
		Line:         line,
		FunctionName: function,
	}
}

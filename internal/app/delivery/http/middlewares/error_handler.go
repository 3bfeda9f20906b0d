package middlewares

import (
	"errors"
	"net/http"

	"timetable-service/internal/pkg/exceptions"
	"timetable-service/internal/pkg/utils"
)

// ErrorHandler recovers panics escaping a handler and renders the generic
// server-failure envelope; typed errors never travel this path.
func (m *Middlewares) ErrorHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				var err error
				switch x := rec.(type) {
				case string:
					err = errors.New(x)
				case error:
					err = x
				default:
					err = errors.New("unknown error")
				}

				utils.BuildErrorResponse(m.Log, w, exceptions.ErrServerProcess(err))
			}
		}()
		next.ServeHTTP(w, r)
	})
}

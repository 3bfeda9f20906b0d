package routers

import (
	"time"

	"timetable-service/internal/app/config"
	"timetable-service/internal/app/delivery/http/controllers"
	"timetable-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachTimetableRoutes(router chi.Router, internalConfig *config.InternalConfig, c *controllers.TimetableController) {
	assignLimiter := middlewares.NewRateLimiter(
		internalConfig.App.AssignRateLimitPerMinute,
		time.Minute,
		time.Duration(internalConfig.App.AssignRateLimitBlockSecs)*time.Second,
	)

	router.Route("/classes/{classID}/timetable", func(r chi.Router) {
		r.Get("/", c.GetWeeklyTimetable)
		r.Patch("/", c.ReplaceWeek)
		r.Delete("/", c.ResetTimetable)
		r.With(assignLimiter.Limit).Post("/slots", c.AssignSlot)
	})

	router.Post("/timetable/check-slot", c.CheckSlot)
}

package controllers

import (
	"net/http"

	"timetable-service/internal/app/contracts"
	"timetable-service/internal/pkg/constvars"
	"timetable-service/internal/pkg/dto/requests"
	"timetable-service/internal/pkg/dto/responses"
	"timetable-service/internal/pkg/exceptions"
	"timetable-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type TimetableController struct {
	Usecase contracts.TimetableUsecase
	Log     *zap.Logger
}

func NewTimetableController(usecase contracts.TimetableUsecase, log *zap.Logger) *TimetableController {
	return &TimetableController{
		Usecase: usecase,
		Log:     log,
	}
}

func (c *TimetableController) GetWeeklyTimetable(w http.ResponseWriter, r *http.Request) {
	classID := chi.URLParam(r, "classID")

	week, err := c.Usecase.GetWeeklyTimetable(r.Context(), classID)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetTimetableSuccessMessage, week)
}

func (c *TimetableController) AssignSlot(w http.ResponseWriter, r *http.Request) {
	var request requests.AssignSlot
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.ClassID = chi.URLParam(r, "classID")

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	slot, err := c.Usecase.AssignSlot(r.Context(), &request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.AssignSlotSuccessMessage, slot)
}

func (c *TimetableController) ReplaceWeek(w http.ResponseWriter, r *http.Request) {
	classID := chi.URLParam(r, "classID")

	var request requests.ReplaceWeek
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrInputValidation(err))
		return
	}
	for _, entries := range request.Days {
		for _, entry := range entries {
			if err := utils.ValidateStruct(entry); err != nil {
				utils.BuildErrorResponse(c.Log, w, exceptions.ErrInputValidation(err))
				return
			}
		}
	}

	if err := c.Usecase.ReplaceWeek(r.Context(), classID, &request); err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ReplaceWeekSuccessMessage, nil)
}

func (c *TimetableController) ResetTimetable(w http.ResponseWriter, r *http.Request) {
	classID := chi.URLParam(r, "classID")

	removed, err := c.Usecase.ResetTimetable(r.Context(), classID)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ResetTimetableSuccessMessage, responses.ResetTimetable{
		ClassID:      classID,
		SlotsRemoved: removed,
	})
}

func (c *TimetableController) CheckSlot(w http.ResponseWriter, r *http.Request) {
	var request requests.CheckSlot
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(c.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	availability, err := c.Usecase.CheckSlot(r.Context(), &request)
	if err != nil {
		utils.BuildErrorResponse(c.Log, w, err)
		return
	}

	message := constvars.SlotAvailableMessage
	if !availability.Available {
		message = constvars.SlotConflictMessage
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, message, availability)
}

package get_day_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/edmarkin/DCM-ScheduleService/internal/api/handlers"
	getDaySchedule "github.com/edmarkin/DCM-ScheduleService/internal/usecase/get_day_schedule"
	"github.com/edmarkin/DCM-ScheduleService/pkg/types"
)

const (
	msgInvalidProviderID = "некорректный ID врача"
	msgInvalidDate       = "некорректный формат даты"
	msgMissingDate       = "отсутствует параметр date"
	msgProviderNotFound  = "врач не найден"
	msgScheduleNotFound  = "расписание врача не найдено"
)

type Handler struct {
	useCase GetDayScheduleUseCase
	logger  Logger
}

func NewHandler(useCase GetDayScheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/providers/{providerId}/day-schedule?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	providerID, err := strconv.ParseInt(vars["providerId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /providers/{id}/day-schedule - Invalid provider ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProviderID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /providers/{id}/day-schedule - Missing date parameter")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	// Принимаем и дату, и полный timestamp - день берётся из локальных компонент
	date, err := types.DateFromTimestamp(dateStr)
	if err != nil {
		h.logger.Warn("GET /providers/{id}/day-schedule - Invalid date %q: %v", dateStr, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getDaySchedule.Request{
		ProviderID: providerID,
		Date:       date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getDaySchedule.ErrProviderNotFound),
			errors.Is(err, getDaySchedule.ErrProviderInactive):
			h.logger.Warn("GET /providers/{id}/day-schedule - Provider not found: provider_id=%d", providerID)
			handlers.RespondNotFound(w, msgProviderNotFound)

		case errors.Is(err, getDaySchedule.ErrScheduleNotFound):
			h.logger.Warn("GET /providers/{id}/day-schedule - Schedule not found: provider_id=%d", providerID)
			handlers.RespondNotFound(w, msgScheduleNotFound)

		case errors.Is(err, getDaySchedule.ErrInvalidInput):
			h.logger.Warn("GET /providers/{id}/day-schedule - Invalid input: provider_id=%d, error=%v", providerID, err)
			handlers.RespondBadRequest(w, msgInvalidProviderID)

		default:
			h.logger.Error("GET /providers/{id}/day-schedule - Failed: provider_id=%d, error=%v", providerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /providers/{id}/day-schedule - OK: provider_id=%d, date=%s, slots=%d",
		providerID, dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

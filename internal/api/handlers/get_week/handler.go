package get_week

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/edmarkin/DCM-ScheduleService/internal/api/handlers"
	"github.com/edmarkin/DCM-ScheduleService/internal/domain"
	getWeekOverview "github.com/edmarkin/DCM-ScheduleService/internal/usecase/get_week_overview"
)

const (
	msgInvalidProviderID = "некорректный ID врача"
	msgInvalidDate       = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgProviderNotFound  = "врач не найден"
	msgScheduleNotFound  = "расписание врача не найдено"
)

type Handler struct {
	useCase GetWeekOverviewUseCase
	logger  Logger
}

func NewHandler(useCase GetWeekOverviewUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/providers/{providerId}/week?date=YYYY-MM-DD
// Параметр date опционален: без него берётся текущая неделя.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	providerID, err := strconv.ParseInt(vars["providerId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /providers/{id}/week - Invalid provider ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProviderID)
		return
	}

	date := time.Now()
	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		date, err = time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			h.logger.Warn("GET /providers/{id}/week - Invalid date %q: %v", dateStr, err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
	}

	result, err := h.useCase.Execute(r.Context(), &getWeekOverview.Request{
		ProviderID: providerID,
		Date:       date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getWeekOverview.ErrProviderNotFound),
			errors.Is(err, getWeekOverview.ErrProviderInactive):
			h.logger.Warn("GET /providers/{id}/week - Provider not found: provider_id=%d", providerID)
			handlers.RespondNotFound(w, msgProviderNotFound)

		case errors.Is(err, getWeekOverview.ErrScheduleNotFound):
			h.logger.Warn("GET /providers/{id}/week - Schedule not found: provider_id=%d", providerID)
			handlers.RespondNotFound(w, msgScheduleNotFound)

		case errors.Is(err, getWeekOverview.ErrInvalidInput):
			h.logger.Warn("GET /providers/{id}/week - Invalid input: provider_id=%d, error=%v", providerID, err)
			handlers.RespondBadRequest(w, msgInvalidProviderID)

		default:
			h.logger.Error("GET /providers/{id}/week - Failed: provider_id=%d, error=%v", providerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /providers/{id}/week - OK: provider_id=%d, week=%s", providerID, result.Label)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

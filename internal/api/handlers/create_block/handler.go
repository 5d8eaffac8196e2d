package create_block

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/edmarkin/DCM-ScheduleService/internal/api/handlers"
	"github.com/edmarkin/DCM-ScheduleService/internal/api/middleware"
	createBlock "github.com/edmarkin/DCM-ScheduleService/internal/usecase/create_block"
)

const (
	msgInvalidProviderID  = "некорректный ID врача"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgProviderNotFound   = "врач не найден"
	msgIntervalConflict   = "интервал пересекается с приёмом или блокировкой"
	msgInvalidInterval    = "некорректный интервал блокировки"
	msgInvalidInput       = "некорректные данные запроса"
)

type Handler struct {
	useCase CreateBlockUseCase
	logger  Logger
}

func NewHandler(useCase CreateBlockUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/providers/{providerId}/blocks
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	providerID, err := strconv.ParseInt(vars["providerId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /providers/{id}/blocks - Invalid provider ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidProviderID)
		return
	}

	if _, ok := middleware.GetUserID(r.Context()); !ok {
		h.logger.Warn("POST /providers/{id}/blocks - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBlockRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /providers/{id}/blocks - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(providerID)
	if err != nil {
		h.logger.Warn("POST /providers/{id}/blocks - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBlock.ErrIntervalConflict):
			h.logger.Warn("POST /providers/{id}/blocks - Interval conflict: provider_id=%d, error=%v", providerID, err)
			handlers.RespondError(w, http.StatusConflict, msgIntervalConflict)

		case errors.Is(err, createBlock.ErrProviderNotFound),
			errors.Is(err, createBlock.ErrProviderInactive):
			h.logger.Warn("POST /providers/{id}/blocks - Provider not found: provider_id=%d", providerID)
			handlers.RespondNotFound(w, msgProviderNotFound)

		case errors.Is(err, createBlock.ErrInvalidInterval):
			h.logger.Warn("POST /providers/{id}/blocks - Invalid interval: provider_id=%d, error=%v", providerID, err)
			handlers.RespondBadRequest(w, msgInvalidInterval)

		case errors.Is(err, createBlock.ErrInvalidInput):
			h.logger.Warn("POST /providers/{id}/blocks - Invalid input: provider_id=%d, error=%v", providerID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /providers/{id}/blocks - Failed to create block: provider_id=%d, error=%v",
				providerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /providers/{id}/blocks - Block created successfully: block_id=%d, provider_id=%d",
		result.ID, providerID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

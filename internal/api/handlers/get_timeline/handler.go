package get_timeline

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/HMS-FrontdeskService/internal/api/handlers"
	"github.com/m04kA/HMS-FrontdeskService/internal/api/middleware"
	buildTimeline "github.com/m04kA/HMS-FrontdeskService/internal/usecase/build_timeline"
)

const (
	msgInvalidHotelID = "некорректный ID отеля"
	msgMissingStart   = "дата начала окна обязательна"
	msgMissingDays    = "количество дней обязательно"
	msgInvalidParams  = "некорректные параметры запроса"
)

type Handler struct {
	useCase BuildTimelineUseCase
	logger  Logger
}

func NewHandler(useCase BuildTimelineUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/hotels/{hotelId}/timeline
// Query params: start (required, YYYY-MM-DD), days (required),
// roomTypeId (optional), columnWidth (optional, 0 = default)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем hotelId из URL
	hotelID, err := strconv.ParseInt(vars["hotelId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /hotels/{id}/timeline - Invalid hotel ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHotelID)
		return
	}

	startStr := r.URL.Query().Get("start")
	if startStr == "" {
		h.logger.Warn("GET /hotels/{id}/timeline - Missing start date")
		handlers.RespondBadRequest(w, msgMissingStart)
		return
	}

	daysStr := r.URL.Query().Get("days")
	if daysStr == "" {
		h.logger.Warn("GET /hotels/{id}/timeline - Missing days")
		handlers.RespondBadRequest(w, msgMissingDays)
		return
	}

	userID, _ := middleware.UserIDFromContext(r.Context())

	// Формируем запрос к use case
	useCaseReq, err := ToUseCaseRequest(
		userID,
		hotelID,
		startStr,
		daysStr,
		r.URL.Query().Get("roomTypeId"),
		r.URL.Query().Get("columnWidth"),
	)
	if err != nil {
		h.logger.Warn("GET /hotels/{id}/timeline - Failed to parse params: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, buildTimeline.ErrInvalidInput):
			h.logger.Warn("GET /hotels/{id}/timeline - Invalid input: hotel_id=%d, error=%v", hotelID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /hotels/{id}/timeline - Failed to build layout: hotel_id=%d, error=%v", hotelID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /hotels/{id}/timeline - Layout built successfully: hotel_id=%d, rows=%d, blocks=%d",
		hotelID, len(result.Rows), len(result.Blocks))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

package get_availability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/HMS-FrontdeskService/internal/api/handlers"
	"github.com/m04kA/HMS-FrontdeskService/internal/domain"
	roomsService "github.com/m04kA/HMS-FrontdeskService/internal/service/rooms"
)

const (
	msgInvalidHotelID = "некорректный ID отеля"
	msgMissingPeriod  = "даты начала и конца периода обязательны"
	msgInvalidDate    = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidPeriod  = "конец периода должен быть позже начала"
)

type Handler struct {
	service RoomsService
	logger  Logger
}

func NewHandler(service RoomsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/hotels/{hotelId}/availability
// Query params: start (required, YYYY-MM-DD), end (required, exclusive)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	hotelID, err := strconv.ParseInt(vars["hotelId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /hotels/{id}/availability - Invalid hotel ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHotelID)
		return
	}

	startStr := r.URL.Query().Get("start")
	endStr := r.URL.Query().Get("end")
	if startStr == "" || endStr == "" {
		h.logger.Warn("GET /hotels/{id}/availability - Missing period")
		handlers.RespondBadRequest(w, msgMissingPeriod)
		return
	}

	start, err := time.Parse(domain.DateFormat, startStr)
	if err != nil {
		h.logger.Warn("GET /hotels/{id}/availability - Invalid start date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	end, err := time.Parse(domain.DateFormat, endStr)
	if err != nil {
		h.logger.Warn("GET /hotels/{id}/availability - Invalid end date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.GetAvailability(r.Context(), hotelID, start, end)
	if err != nil {
		switch {
		case errors.Is(err, roomsService.ErrInvalidInput):
			h.logger.Warn("GET /hotels/{id}/availability - Invalid period: hotel_id=%d", hotelID)
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		default:
			h.logger.Error("GET /hotels/{id}/availability - Failed to get availability: hotel_id=%d, error=%v", hotelID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /hotels/{id}/availability - Availability retrieved successfully: hotel_id=%d, cells=%d",
		hotelID, len(result.Cells))
	handlers.RespondJSON(w, http.StatusOK, result)
}

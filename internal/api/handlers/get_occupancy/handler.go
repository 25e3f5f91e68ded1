package get_occupancy

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/HMS-FrontdeskService/internal/api/handlers"
	getOccupancy "github.com/m04kA/HMS-FrontdeskService/internal/usecase/get_occupancy"
)

const (
	msgInvalidHotelID = "некорректный ID отеля"
	msgMissingDate    = "дата обязательна"
	msgInvalidParams  = "некорректные параметры запроса"
)

type Handler struct {
	useCase GetOccupancyUseCase
	logger  Logger
}

func NewHandler(useCase GetOccupancyUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/hotels/{hotelId}/occupancy
// Query params: date (required, YYYY-MM-DD), roomTypeId (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	hotelID, err := strconv.ParseInt(vars["hotelId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /hotels/{id}/occupancy - Invalid hotel ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHotelID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /hotels/{id}/occupancy - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(hotelID, dateStr, r.URL.Query().Get("roomTypeId"))
	if err != nil {
		h.logger.Warn("GET /hotels/{id}/occupancy - Failed to parse params: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getOccupancy.ErrInvalidInput):
			h.logger.Warn("GET /hotels/{id}/occupancy - Invalid input: hotel_id=%d, error=%v", hotelID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /hotels/{id}/occupancy - Failed to get occupancy: hotel_id=%d, error=%v", hotelID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /hotels/{id}/occupancy - Occupancy retrieved successfully: hotel_id=%d, date=%s, percent=%d",
		hotelID, dateStr, result.Percent)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(hotelID, result))
}

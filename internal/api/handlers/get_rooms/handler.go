package get_rooms

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/HMS-FrontdeskService/internal/api/handlers"
)

const (
	msgInvalidHotelID    = "некорректный ID отеля"
	msgInvalidRoomTypeID = "некорректный ID типа комнаты"
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

// Handle GET /api/v1/hotels/{hotelId}/rooms
// Query params: roomTypeId (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	hotelID, err := strconv.ParseInt(vars["hotelId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /hotels/{id}/rooms - Invalid hotel ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHotelID)
		return
	}

	var roomTypeID *int64
	if roomTypeIDStr := r.URL.Query().Get("roomTypeId"); roomTypeIDStr != "" {
		id, err := strconv.ParseInt(roomTypeIDStr, 10, 64)
		if err != nil {
			h.logger.Warn("GET /hotels/{id}/rooms - Invalid room type ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRoomTypeID)
			return
		}
		roomTypeID = &id
	}

	result, err := h.service.GetHierarchy(r.Context(), hotelID, roomTypeID)
	if err != nil {
		h.logger.Error("GET /hotels/{id}/rooms - Failed to get rooms: hotel_id=%d, error=%v", hotelID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /hotels/{id}/rooms - Rooms retrieved successfully: hotel_id=%d, types=%d",
		hotelID, len(result.RoomTypes))
	handlers.RespondJSON(w, http.StatusOK, result)
}

package get_reservation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/HMS-FrontdeskService/internal/api/handlers"
	reservationsService "github.com/m04kA/HMS-FrontdeskService/internal/service/reservations"
)

const (
	msgInvalidReservationID = "некорректный ID брони"
	msgReservationNotFound  = "бронь не найдена"
)

type Handler struct {
	service ReservationsService
	logger  Logger
}

func NewHandler(service ReservationsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/reservations/{reservationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	reservationID, err := strconv.ParseInt(vars["reservationId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /reservations/{id} - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	result, err := h.service.GetByID(r.Context(), reservationID)
	if err != nil {
		switch {
		case errors.Is(err, reservationsService.ErrReservationNotFound):
			h.logger.Warn("GET /reservations/{id} - Reservation not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgReservationNotFound)

		default:
			h.logger.Error("GET /reservations/{id} - Failed to get reservation: reservation_id=%d, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /reservations/{id} - Reservation retrieved successfully: reservation_id=%d", reservationID)
	handlers.RespondJSON(w, http.StatusOK, result)
}

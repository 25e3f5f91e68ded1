package update_housekeeping

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/HMS-FrontdeskService/internal/api/handlers"
	"github.com/m04kA/HMS-FrontdeskService/internal/api/middleware"
	roomsService "github.com/m04kA/HMS-FrontdeskService/internal/service/rooms"
	"github.com/m04kA/HMS-FrontdeskService/internal/service/rooms/models"
)

const (
	msgInvalidRoomID      = "некорректный ID комнаты"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidStatus      = "недопустимый статус уборки"
	msgRoomNotFound       = "комната не найдена"
	msgHotelNotFound      = "отель не найден"
	msgAccessDenied       = "доступ запрещен"
	msgStatusRejected     = "смена статуса отклонена PMS"
	msgUnauthorized       = "не удалось определить пользователя"
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

// Handle PATCH /api/v1/rooms/{roomId}/housekeeping
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	roomID, err := strconv.ParseInt(vars["roomId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /rooms/{id}/housekeeping - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("PATCH /rooms/{id}/housekeeping - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req UpdateHousekeepingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /rooms/{id}/housekeeping - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateHousekeeping(r.Context(), &models.UpdateHousekeepingRequest{
		UserID: userID,
		RoomID: roomID,
		Status: req.Status,
	})
	if err != nil {
		switch {
		case errors.Is(err, roomsService.ErrInvalidStatus):
			h.logger.Warn("PATCH /rooms/{id}/housekeeping - Invalid status: room_id=%d, status=%s", roomID, req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, roomsService.ErrRoomNotFound):
			h.logger.Warn("PATCH /rooms/{id}/housekeeping - Room not found: room_id=%d", roomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, roomsService.ErrHotelNotFound):
			h.logger.Warn("PATCH /rooms/{id}/housekeeping - Hotel not found: room_id=%d", roomID)
			handlers.RespondNotFound(w, msgHotelNotFound)

		case errors.Is(err, roomsService.ErrAccessDenied):
			h.logger.Warn("PATCH /rooms/{id}/housekeeping - Access denied: user_id=%d, room_id=%d", userID, roomID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, roomsService.ErrStatusRejected):
			h.logger.Warn("PATCH /rooms/{id}/housekeeping - Status rejected by PMS: room_id=%d, status=%s",
				roomID, req.Status)
			handlers.RespondConflict(w, msgStatusRejected)

		default:
			h.logger.Error("PATCH /rooms/{id}/housekeeping - Failed to update status: room_id=%d, error=%v", roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /rooms/{id}/housekeeping - Status updated successfully: room_id=%d, status=%s",
		roomID, result.Housekeeping)
	handlers.RespondJSON(w, http.StatusOK, result)
}

package commit_selection

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/HMS-FrontdeskService/internal/api/handlers"
	"github.com/m04kA/HMS-FrontdeskService/internal/api/middleware"
	commitSelection "github.com/m04kA/HMS-FrontdeskService/internal/usecase/commit_selection"
)

const (
	msgInvalidHotelID     = "некорректный ID отеля"
	msgInvalidRoomID      = "некорректный ID комнаты"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidWindowFrom  = "некорректный формат даты начала окна, ожидается YYYY-MM-DD"
	msgRoomNotFound       = "комната не найдена"
	msgSelectionConflict  = "выбранный диапазон пересекается с существующей бронью"
	msgUnauthorized       = "не удалось определить пользователя"
)

type Handler struct {
	useCase CommitSelectionUseCase
	logger  Logger
}

func NewHandler(useCase CommitSelectionUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/hotels/{hotelId}/rooms/{roomId}/selection
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	hotelID, err := strconv.ParseInt(vars["hotelId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /hotels/{id}/rooms/{id}/selection - Invalid hotel ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHotelID)
		return
	}

	roomID, err := strconv.ParseInt(vars["roomId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /hotels/{id}/rooms/{id}/selection - Invalid room ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomID)
		return
	}

	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Warn("POST /hotels/{id}/rooms/{id}/selection - Missing user ID in context")
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req CommitSelectionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /hotels/{id}/rooms/{id}/selection - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID, hotelID, roomID)
	if err != nil {
		h.logger.Warn("POST /hotels/{id}/rooms/{id}/selection - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidWindowFrom)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, commitSelection.ErrSelectionConflict):
			h.logger.Warn("POST /hotels/{id}/rooms/{id}/selection - Selection conflict: room_id=%d, cols=[%d..%d]",
				roomID, req.StartCol, req.EndCol)
			handlers.RespondConflict(w, msgSelectionConflict)

		case errors.Is(err, commitSelection.ErrRoomNotFound):
			h.logger.Warn("POST /hotels/{id}/rooms/{id}/selection - Room not found: room_id=%d", roomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, commitSelection.ErrInvalidInput):
			h.logger.Warn("POST /hotels/{id}/rooms/{id}/selection - Invalid input: room_id=%d, error=%v", roomID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /hotels/{id}/rooms/{id}/selection - Failed to commit selection: room_id=%d, error=%v",
				roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /hotels/{id}/rooms/{id}/selection - Selection committed successfully: reservation_id=%d, room_id=%d",
		result.ReservationID, roomID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

package commit_selection

import (
	"fmt"

	"github.com/m04kA/HMS-FrontdeskService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.HotelID <= 0 {
		return fmt.Errorf("%w: hotelID must be positive", ErrInvalidInput)
	}

	if req.RoomID <= 0 {
		return fmt.Errorf("%w: roomID must be positive", ErrInvalidInput)
	}

	if req.WindowFrom.IsZero() {
		return fmt.Errorf("%w: windowFrom is required", ErrInvalidInput)
	}

	if req.WindowDays < domain.MinTimelineDays || req.WindowDays > domain.MaxTimelineDays {
		return fmt.Errorf("%w: windowDays must be between %d and %d",
			ErrInvalidInput, domain.MinTimelineDays, domain.MaxTimelineDays)
	}

	if req.StartCol < 0 || req.StartCol >= req.WindowDays {
		return fmt.Errorf("%w: startCol is outside the window", ErrInvalidInput)
	}

	if req.EndCol < 0 || req.EndCol >= req.WindowDays {
		return fmt.Errorf("%w: endCol is outside the window", ErrInvalidInput)
	}

	if span := selectionSpan(req.StartCol, req.EndCol); span > domain.MaxSelectionDays {
		return fmt.Errorf("%w: selection can not exceed %d days", ErrInvalidInput, domain.MaxSelectionDays)
	}

	if req.GuestName == "" {
		return fmt.Errorf("%w: guestName is required", ErrInvalidInput)
	}

	if req.GuestCount <= 0 {
		return fmt.Errorf("%w: guestCount must be positive", ErrInvalidInput)
	}

	return nil
}

// selectionSpan количество дней в диапазоне независимо от направления drag
func selectionSpan(startCol, endCol int) int {
	if endCol < startCol {
		startCol, endCol = endCol, startCol
	}
	return endCol - startCol + 1
}

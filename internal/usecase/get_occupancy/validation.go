package get_occupancy

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.HotelID <= 0 {
		return fmt.Errorf("%w: hotelID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.RoomTypeID != nil && *req.RoomTypeID <= 0 {
		return fmt.Errorf("%w: roomTypeId must be positive", ErrInvalidInput)
	}

	return nil
}

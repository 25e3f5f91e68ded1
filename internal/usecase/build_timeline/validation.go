package build_timeline

import (
	"fmt"

	"github.com/m04kA/HMS-FrontdeskService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.HotelID <= 0 {
		return fmt.Errorf("%w: hotelID must be positive", ErrInvalidInput)
	}

	if req.StartDate.IsZero() {
		return fmt.Errorf("%w: startDate is required", ErrInvalidInput)
	}

	if req.Days < domain.MinTimelineDays || req.Days > domain.MaxTimelineDays {
		return fmt.Errorf("%w: days must be between %d and %d",
			ErrInvalidInput, domain.MinTimelineDays, domain.MaxTimelineDays)
	}

	if req.RoomTypeID != nil && *req.RoomTypeID <= 0 {
		return fmt.Errorf("%w: roomTypeId must be positive", ErrInvalidInput)
	}

	// 0 = ширина по умолчанию
	if req.ColumnWidth != 0 && (req.ColumnWidth < domain.MinColumnWidth || req.ColumnWidth > domain.MaxColumnWidth) {
		return fmt.Errorf("%w: columnWidth must be between %d and %d",
			ErrInvalidInput, domain.MinColumnWidth, domain.MaxColumnWidth)
	}

	return nil
}

package get_availability

import (
	"context"
	"time"

	"github.com/m04kA/HMS-FrontdeskService/internal/service/rooms/models"
)

type RoomsService interface {
	GetAvailability(ctx context.Context, hotelID int64, start, end time.Time) (*models.AvailabilityResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

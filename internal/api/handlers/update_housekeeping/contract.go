package update_housekeeping

import (
	"context"

	"github.com/m04kA/HMS-FrontdeskService/internal/service/rooms/models"
)

type RoomsService interface {
	UpdateHousekeeping(ctx context.Context, req *models.UpdateHousekeepingRequest) (*models.HousekeepingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

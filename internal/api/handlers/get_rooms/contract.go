package get_rooms

import (
	"context"

	"github.com/m04kA/HMS-FrontdeskService/internal/service/rooms/models"
)

type RoomsService interface {
	GetHierarchy(ctx context.Context, hotelID int64, roomTypeID *int64) (*models.HierarchyResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

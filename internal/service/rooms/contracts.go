package rooms

import (
	"context"
	"time"

	"github.com/m04kA/HMS-FrontdeskService/internal/domain"
	"github.com/m04kA/HMS-FrontdeskService/internal/integrations/pmsservice"
)

// RoomRepository интерфейс репозитория комнат
type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	GetHierarchyByHotel(ctx context.Context, hotelID int64, roomTypeID *int64) ([]*domain.RoomType, error)
	UpdateHousekeepingStatus(ctx context.Context, id int64, status domain.HousekeepingStatus) error
}

// AvailabilityRepository интерфейс репозитория инвентарной сводки
type AvailabilityRepository interface {
	GetByHotelAndPeriod(ctx context.Context, hotelID int64, start, end time.Time) ([]*domain.RoomTypeAvailability, error)
}

// PMSServiceClient интерфейс клиента для PMSService
type PMSServiceClient interface {
	GetHotel(ctx context.Context, hotelID int64) (*pmsservice.Hotel, error)
	UpdateHousekeepingStatus(ctx context.Context, roomID int64, status string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

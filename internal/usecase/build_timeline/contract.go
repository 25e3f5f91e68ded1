package build_timeline

import (
	"context"
	"time"

	"github.com/m04kA/HMS-FrontdeskService/internal/domain"
)

// RoomRepository интерфейс репозитория комнат
type RoomRepository interface {
	// GetHierarchyByHotel получает упорядоченную иерархию тип → комнаты
	GetHierarchyByHotel(ctx context.Context, hotelID int64, roomTypeID *int64) ([]*domain.RoomType, error)
}

// ReservationRepository интерфейс репозитория броней
type ReservationRepository interface {
	GetByHotelWithFilter(ctx context.Context, filter domain.HotelReservationsFilter) ([]*domain.Reservation, error)
}

// AvailabilityRepository интерфейс репозитория инвентарной сводки
type AvailabilityRepository interface {
	GetByHotelAndPeriod(ctx context.Context, hotelID int64, start, end time.Time) ([]*domain.RoomTypeAvailability, error)
}

// LayoutCache кэш сериализованных раскладок (опционален)
type LayoutCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

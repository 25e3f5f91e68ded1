package get_occupancy

import (
	"context"

	"github.com/m04kA/HMS-FrontdeskService/internal/domain"
)

// RoomRepository интерфейс репозитория комнат
type RoomRepository interface {
	GetHierarchyByHotel(ctx context.Context, hotelID int64, roomTypeID *int64) ([]*domain.RoomType, error)
}

// ReservationRepository интерфейс репозитория броней
type ReservationRepository interface {
	GetByHotelWithFilter(ctx context.Context, filter domain.HotelReservationsFilter) ([]*domain.Reservation, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

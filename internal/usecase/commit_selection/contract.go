package commit_selection

import (
	"context"

	"github.com/m04kA/HMS-FrontdeskService/internal/domain"
)

// RoomRepository интерфейс репозитория комнат
type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	GetTypeByID(ctx context.Context, id int64) (*domain.RoomType, error)
}

// ReservationRepository интерфейс репозитория броней
type ReservationRepository interface {
	Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
	GetByHotelWithFilter(ctx context.Context, filter domain.HotelReservationsFilter) ([]*domain.Reservation, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

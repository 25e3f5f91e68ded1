package availability

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/HMS-FrontdeskService/internal/domain"
	"github.com/m04kA/HMS-FrontdeskService/pkg/dbmetrics"
	"github.com/m04kA/HMS-FrontdeskService/pkg/psqlbuilder"
)

// Repository репозиторий инвентарной сводки (свободные комнаты по типам)
// Данные используются только для read-only строки сводки над сеткой,
// в раскладку и подсчёт загрузки они не попадают
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория сводки
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByHotelAndPeriod возвращает количество свободных комнат по типам
// на каждую дату периода [start, end)
func (r *Repository) GetByHotelAndPeriod(ctx context.Context, hotelID int64, start, end time.Time) ([]*domain.RoomTypeAvailability, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"room_type_id",
		"to_char(date, 'YYYY-MM-DD')",
		"available_rooms",
	).
		From("room_availability").
		Where(squirrel.Eq{"hotel_id": hotelID}).
		Where(squirrel.GtOrEq{"date": start}).
		Where(squirrel.Lt{"date": end}).
		OrderBy("room_type_id ASC, date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByHotelAndPeriod - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByHotelAndPeriod - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	items := make([]*domain.RoomTypeAvailability, 0)
	for rows.Next() {
		var item domain.RoomTypeAvailability
		if err := rows.Scan(&item.RoomTypeID, &item.Date, &item.AvailableRooms); err != nil {
			return nil, fmt.Errorf("%w: GetByHotelAndPeriod - scan row: %v", ErrScanRow, err)
		}
		items = append(items, &item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByHotelAndPeriod - rows error: %v", ErrScanRow, err)
	}

	return items, nil
}

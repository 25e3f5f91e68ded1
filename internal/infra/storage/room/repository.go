package room

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/HMS-FrontdeskService/internal/domain"
	"github.com/m04kA/HMS-FrontdeskService/pkg/dbmetrics"
	"github.com/m04kA/HMS-FrontdeskService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с комнатами и типами комнат
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория комнат
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetHierarchyByHotel возвращает иерархию тип → комнаты отеля.
// Порядок типов и комнат внутри типа определяет вертикальный порядок
// строк сетки, поэтому сортировка по sort_order/number обязательна.
// Опционально фильтрует по одному типу комнат.
func (r *Repository) GetHierarchyByHotel(ctx context.Context, hotelID int64, roomTypeID *int64) ([]*domain.RoomType, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	typeBuilder := psqlbuilder.Select(
		"id",
		"hotel_id",
		"name",
		"sort_order",
	).
		From("room_types").
		Where(squirrel.Eq{"hotel_id": hotelID}).
		OrderBy("sort_order ASC, id ASC")

	if roomTypeID != nil {
		typeBuilder = typeBuilder.Where(squirrel.Eq{"id": *roomTypeID})
	}

	query, args, err := typeBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetHierarchyByHotel - build types query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetHierarchyByHotel - execute types query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	types := make([]*domain.RoomType, 0)
	byID := make(map[int64]*domain.RoomType)

	for rows.Next() {
		var rt domain.RoomType
		if err := rows.Scan(&rt.ID, &rt.HotelID, &rt.Name, &rt.SortOrder); err != nil {
			return nil, fmt.Errorf("%w: GetHierarchyByHotel - scan room type: %v", ErrScanRow, err)
		}
		rt.Rooms = make([]*domain.Room, 0)
		types = append(types, &rt)
		byID[rt.ID] = &rt
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetHierarchyByHotel - types rows error: %v", ErrScanRow, err)
	}

	roomBuilder := psqlbuilder.Select(
		"id",
		"hotel_id",
		"room_type_id",
		"number",
		"base_rate",
		"housekeeping_status",
	).
		From("rooms").
		Where(squirrel.Eq{"hotel_id": hotelID}).
		OrderBy("room_type_id ASC, sort_order ASC, id ASC")

	if roomTypeID != nil {
		roomBuilder = roomBuilder.Where(squirrel.Eq{"room_type_id": *roomTypeID})
	}

	query, args, err = roomBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetHierarchyByHotel - build rooms query: %v", ErrBuildQuery, err)
	}

	roomRows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetHierarchyByHotel - execute rooms query: %v", ErrExecQuery, err)
	}
	defer roomRows.Close()

	for roomRows.Next() {
		var rm domain.Room
		if err := roomRows.Scan(&rm.ID, &rm.HotelID, &rm.RoomTypeID, &rm.Number, &rm.BaseRate, &rm.Housekeeping); err != nil {
			return nil, fmt.Errorf("%w: GetHierarchyByHotel - scan room: %v", ErrScanRow, err)
		}

		// Комнаты типов, не попавших в выборку, пропускаем
		if rt, ok := byID[rm.RoomTypeID]; ok {
			rt.Rooms = append(rt.Rooms, &rm)
		}
	}
	if err := roomRows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetHierarchyByHotel - rooms rows error: %v", ErrScanRow, err)
	}

	return types, nil
}

// GetByID получает комнату по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"hotel_id",
		"room_type_id",
		"number",
		"base_rate",
		"housekeeping_status",
	).
		From("rooms").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var rm domain.Room
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&rm.ID,
		&rm.HotelID,
		&rm.RoomTypeID,
		&rm.Number,
		&rm.BaseRate,
		&rm.Housekeeping,
	)

	if err == sql.ErrNoRows {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan room: %v", ErrScanRow, err)
	}

	return &rm, nil
}

// GetTypeByID получает тип комнат по ID (без вложенных комнат)
func (r *Repository) GetTypeByID(ctx context.Context, id int64) (*domain.RoomType, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"hotel_id",
		"name",
		"sort_order",
	).
		From("room_types").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetTypeByID - build select query: %v", ErrBuildQuery, err)
	}

	var rt domain.RoomType
	err = executor.QueryRowContext(ctx, query, args...).Scan(&rt.ID, &rt.HotelID, &rt.Name, &rt.SortOrder)

	if err == sql.ErrNoRows {
		return nil, ErrRoomTypeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetTypeByID - scan room type: %v", ErrScanRow, err)
	}

	return &rt, nil
}

// UpdateHousekeepingStatus обновляет локальное значение статуса уборки
// Вызывается после подтверждения изменения внешней PMS
func (r *Repository) UpdateHousekeepingStatus(ctx context.Context, id int64, status domain.HousekeepingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("rooms").
		Set("housekeeping_status", status).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateHousekeepingStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateHousekeepingStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateHousekeepingStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrRoomNotFound
	}

	return nil
}

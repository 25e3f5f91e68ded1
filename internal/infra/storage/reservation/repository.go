package reservation

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/HMS-FrontdeskService/internal/domain"
	"github.com/m04kA/HMS-FrontdeskService/pkg/dbmetrics"
	"github.com/m04kA/HMS-FrontdeskService/pkg/psqlbuilder"
)

// Repository репозиторий для работы с бронями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория броней
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

func selectReservations() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"hotel_id",
		"room_id",
		"guest_name",
		"guest_count",
		"check_in",
		"check_out",
		"status",
		"status_color",
		"stay_id",
		"source",
		"agent_name",
		"created_at",
		"updated_at",
	).From("reservations")
}

// Create создает новую бронь
// Если в контексте передана активная транзакция (через context.Value), использует её.
// Иначе выполняет обычный запрос без транзакции.
//
// Фиксация выделения всегда идет через сериализуемую транзакцию с повторной
// проверкой занятости - Create без транзакции остаётся для импорта данных.
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reservations").
		Columns(
			"hotel_id",
			"room_id",
			"guest_name",
			"guest_count",
			"check_in",
			"check_out",
			"status",
			"status_color",
			"stay_id",
			"source",
			"agent_name",
		).
		Values(
			res.HotelID,
			res.RoomID,
			res.GuestName,
			res.GuestCount,
			res.CheckIn,
			res.CheckOut,
			res.Status,
			res.StatusColor,
			res.StayID,
			res.Source,
			res.AgentName,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&res.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return res, nil
}

// GetByID получает бронь по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectReservations().
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	res, err := r.scanReservation(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %v", ErrScanRow, err)
	}

	return res, nil
}

// GetByHotelWithFilter получает брони отеля с гибкой фильтрацией.
//
// Однодневные и многодневные брони хранятся в одной таблице (check_out
// NULL = однодневная) и возвращаются вместе.
//
// Фильтр по периоду - пересечение интервалов: однодневная бронь считается
// занимающей один день. Период [StartDate, EndDate) эксклюзивен справа.
//
// Для раскладки по дорожкам выборка делается БЕЗ периода: пиковое число
// дорожек комнаты считается по всей истории броней, а не по видимому окну.
//
// Внутри транзакции с фильтром по комнате добавляется FOR UPDATE - это
// путь повторной проверки занятости при фиксации выделения.
func (r *Repository) GetByHotelWithFilter(ctx context.Context, filter domain.HotelReservationsFilter) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := selectReservations().
		Where(squirrel.Eq{"hotel_id": filter.HotelID})

	if filter.RoomID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"room_id": *filter.RoomID})
	}

	if filter.RoomTypeID != nil {
		selectBuilder = selectBuilder.Where(
			squirrel.Expr("room_id IN (SELECT id FROM rooms WHERE room_type_id = ?)", *filter.RoomTypeID),
		)
	}

	// Пересечение с периодом: [check_in, check_out) против [StartDate, EndDate)
	// NULL check_out трактуется как check_in + 1 день
	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(
			squirrel.Expr("COALESCE(check_out, check_in + INTERVAL '1 day') > ?", *filter.StartDate),
		)
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.Lt{"check_in": *filter.EndDate})
	}

	if !filter.IncludeInactive {
		inactiveStatusStrings := make([]string, len(domain.InactiveStatuses))
		for i, s := range domain.InactiveStatuses {
			inactiveStatusStrings[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": inactiveStatusStrings})
	}

	selectBuilder = selectBuilder.OrderBy("check_in ASC, id ASC")

	if dbmetrics.IsInTransaction(ctx) && filter.RoomID != nil {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByHotelWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByHotelWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanReservations(rows)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanReservation(row rowScanner) (*domain.Reservation, error) {
	var res domain.Reservation
	var checkOut sql.NullTime
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&res.ID,
		&res.HotelID,
		&res.RoomID,
		&res.GuestName,
		&res.GuestCount,
		&res.CheckIn,
		&checkOut,
		&res.Status,
		&res.StatusColor,
		&res.StayID,
		&res.Source,
		&res.AgentName,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if checkOut.Valid {
		t := checkOut.Time
		res.CheckOut = &t
	}
	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return &res, nil
}

// scanReservations сканирует результаты запроса в слайс броней
func (r *Repository) scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)

	for rows.Next() {
		res, err := r.scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanReservations - scan row: %v", ErrScanRow, err)
		}
		reservations = append(reservations, res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanReservations - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}

package room

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HMS-FrontdeskService/internal/domain"
)

func setupMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock, *Repository) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	repo := NewRepository(db)

	return db, mock, repo
}

func TestGetHierarchyByHotel_GroupsRoomsByType(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	typeRows := sqlmock.NewRows([]string{"id", "hotel_id", "name", "sort_order"}).
		AddRow(int64(1), int64(1), "Standard", 1).
		AddRow(int64(2), int64(1), "Suite", 2)

	mock.ExpectQuery(`SELECT .+ FROM room_types WHERE hotel_id = \$1 ORDER BY sort_order ASC, id ASC`).
		WithArgs(int64(1)).
		WillReturnRows(typeRows)

	roomRows := sqlmock.NewRows([]string{"id", "hotel_id", "room_type_id", "number", "base_rate", "housekeeping_status"}).
		AddRow(int64(101), int64(1), int64(1), "101", 3500.0, "clean").
		AddRow(int64(102), int64(1), int64(1), "102", 3500.0, "dirty").
		AddRow(int64(201), int64(1), int64(2), "201", 9000.0, "clean")

	mock.ExpectQuery(`SELECT .+ FROM rooms WHERE hotel_id = \$1 ORDER BY room_type_id ASC, sort_order ASC, id ASC`).
		WithArgs(int64(1)).
		WillReturnRows(roomRows)

	hierarchy, err := repo.GetHierarchyByHotel(context.Background(), 1, nil)

	require.NoError(t, err)
	require.Len(t, hierarchy, 2)
	assert.Equal(t, "Standard", hierarchy[0].Name)
	require.Len(t, hierarchy[0].Rooms, 2)
	assert.Equal(t, "101", hierarchy[0].Rooms[0].Number)
	assert.Equal(t, domain.HousekeepingDirty, hierarchy[0].Rooms[1].Housekeeping)
	require.Len(t, hierarchy[1].Rooms, 1)
	assert.Equal(t, "201", hierarchy[1].Rooms[0].Number)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetHierarchyByHotel_TypeFilter(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	roomTypeID := int64(2)

	mock.ExpectQuery(`SELECT .+ FROM room_types WHERE hotel_id = \$1 AND id = \$2`).
		WithArgs(int64(1), roomTypeID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "hotel_id", "name", "sort_order"}).
			AddRow(int64(2), int64(1), "Suite", 2))

	mock.ExpectQuery(`SELECT .+ FROM rooms WHERE hotel_id = \$1 AND room_type_id = \$2`).
		WithArgs(int64(1), roomTypeID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "hotel_id", "room_type_id", "number", "base_rate", "housekeeping_status"}))

	hierarchy, err := repo.GetHierarchyByHotel(context.Background(), 1, &roomTypeID)

	require.NoError(t, err)
	require.Len(t, hierarchy, 1)
	assert.Equal(t, "Suite", hierarchy[0].Name)
	assert.Empty(t, hierarchy[0].Rooms)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_NotFound(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT .+ FROM rooms WHERE id = \$1`).
		WithArgs(int64(999)).
		WillReturnError(sql.ErrNoRows)

	rm, err := repo.GetByID(context.Background(), 999)

	assert.Nil(t, rm)
	assert.ErrorIs(t, err, ErrRoomNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateHousekeepingStatus_Success(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	mock.ExpectExec(`UPDATE rooms SET housekeeping_status = \$1 WHERE id = \$2`).
		WithArgs(domain.HousekeepingClean, int64(101)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateHousekeepingStatus(context.Background(), 101, domain.HousekeepingClean)

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateHousekeepingStatus_UnknownRoom(t *testing.T) {
	db, mock, repo := setupMockDB(t)
	defer db.Close()

	mock.ExpectExec(`UPDATE rooms SET housekeeping_status`).
		WithArgs(domain.HousekeepingClean, int64(999)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateHousekeepingStatus(context.Background(), 999, domain.HousekeepingClean)

	assert.ErrorIs(t, err, ErrRoomNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

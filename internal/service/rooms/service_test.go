package rooms

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HMS-FrontdeskService/internal/domain"
	roomRepo "github.com/m04kA/HMS-FrontdeskService/internal/infra/storage/room"
	pmsClient "github.com/m04kA/HMS-FrontdeskService/internal/integrations/pmsservice"
	"github.com/m04kA/HMS-FrontdeskService/internal/service/rooms/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeRoomRepo struct {
	room      *domain.Room
	roomErr   error
	hierarchy []*domain.RoomType

	persistErr    error
	persistedID   int64
	persistedStat domain.HousekeepingStatus
}

func (f *fakeRoomRepo) GetByID(_ context.Context, _ int64) (*domain.Room, error) {
	return f.room, f.roomErr
}

func (f *fakeRoomRepo) GetHierarchyByHotel(_ context.Context, _ int64, _ *int64) ([]*domain.RoomType, error) {
	return f.hierarchy, nil
}

func (f *fakeRoomRepo) UpdateHousekeepingStatus(_ context.Context, roomID int64, status domain.HousekeepingStatus) error {
	f.persistedID = roomID
	f.persistedStat = status
	return f.persistErr
}

type fakeAvailabilityRepo struct {
	items []*domain.RoomTypeAvailability
	err   error
}

func (f *fakeAvailabilityRepo) GetByHotelAndPeriod(_ context.Context, _ int64, _, _ time.Time) ([]*domain.RoomTypeAvailability, error) {
	return f.items, f.err
}

type fakePMSClient struct {
	hotel     *pmsClient.Hotel
	hotelErr  error
	updateErr error
	gotStatus string

	// вызывается из UpdateHousekeepingStatus, пока запрос "в полёте"
	inFlight func()
}

func (f *fakePMSClient) GetHotel(_ context.Context, _ int64) (*pmsClient.Hotel, error) {
	return f.hotel, f.hotelErr
}

func (f *fakePMSClient) UpdateHousekeepingStatus(_ context.Context, _ int64, status string) error {
	f.gotStatus = status
	if f.inFlight != nil {
		f.inFlight()
	}
	return f.updateErr
}

func testRoom() *domain.Room {
	return &domain.Room{ID: 101, HotelID: 1, RoomTypeID: 1, Number: "101", Housekeeping: domain.HousekeepingDirty}
}

func managedHotel() *pmsClient.Hotel {
	return &pmsClient.Hotel{ID: 1, Name: "Гранд Отель", ManagerIDs: []int64{7}}
}

func validRequest() *models.UpdateHousekeepingRequest {
	return &models.UpdateHousekeepingRequest{UserID: 7, RoomID: 101, Status: "clean"}
}

func TestUpdateHousekeeping_Success(t *testing.T) {
	repo := &fakeRoomRepo{room: testRoom()}
	pms := &fakePMSClient{hotel: managedHotel()}
	svc := NewService(repo, &fakeAvailabilityRepo{}, pms, nopLogger{})

	resp, err := svc.UpdateHousekeeping(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(101), resp.RoomID)
	assert.Equal(t, "clean", resp.Housekeeping)
	assert.False(t, resp.Pending)
	assert.Equal(t, "clean", pms.gotStatus)

	// Подтверждённое значение записано в локальную read-модель
	assert.Equal(t, int64(101), repo.persistedID)
	assert.Equal(t, domain.HousekeepingClean, repo.persistedStat)
}

func TestUpdateHousekeeping_OptimisticValueVisibleInFlight(t *testing.T) {
	repo := &fakeRoomRepo{
		room: testRoom(),
		hierarchy: []*domain.RoomType{
			{ID: 1, Name: "Standard", Rooms: []*domain.Room{testRoom()}},
		},
	}
	pms := &fakePMSClient{hotel: managedHotel()}
	svc := NewService(repo, &fakeAvailabilityRepo{}, pms, nopLogger{})

	// Пока PMS не ответила, иерархия уже показывает новое значение
	pms.inFlight = func() {
		resp, err := svc.GetHierarchy(context.Background(), 1, nil)
		require.NoError(t, err)

		room := resp.RoomTypes[0].Rooms[0]
		assert.Equal(t, "clean", room.Housekeeping)
		assert.True(t, room.HousekeepingPending)
	}

	_, err := svc.UpdateHousekeeping(context.Background(), validRequest())
	require.NoError(t, err)

	// После подтверждения pending снят
	resp, err := svc.GetHierarchy(context.Background(), 1, nil)
	require.NoError(t, err)
	assert.False(t, resp.RoomTypes[0].Rooms[0].HousekeepingPending)
}

func TestUpdateHousekeeping_RejectedRevertsToPrevious(t *testing.T) {
	repo := &fakeRoomRepo{
		room: testRoom(),
		hierarchy: []*domain.RoomType{
			{ID: 1, Name: "Standard", Rooms: []*domain.Room{testRoom()}},
		},
	}
	pms := &fakePMSClient{hotel: managedHotel(), updateErr: pmsClient.ErrStatusRejected}
	svc := NewService(repo, &fakeAvailabilityRepo{}, pms, nopLogger{})

	_, err := svc.UpdateHousekeeping(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrStatusRejected)

	// Локальная запись не делалась, отображается прежний статус
	assert.Zero(t, repo.persistedID)

	resp, err := svc.GetHierarchy(context.Background(), 1, nil)
	require.NoError(t, err)

	room := resp.RoomTypes[0].Rooms[0]
	assert.Equal(t, "dirty", room.Housekeeping)
	assert.False(t, room.HousekeepingPending)
}

func TestUpdateHousekeeping_PMSFailureRevertsAndWrapsInternal(t *testing.T) {
	repo := &fakeRoomRepo{room: testRoom()}
	pms := &fakePMSClient{hotel: managedHotel(), updateErr: errors.New("timeout")}
	svc := NewService(repo, &fakeAvailabilityRepo{}, pms, nopLogger{})

	_, err := svc.UpdateHousekeeping(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)
	assert.Zero(t, repo.persistedID)
}

func TestUpdateHousekeeping_PersistFailureDoesNotFailRequest(t *testing.T) {
	repo := &fakeRoomRepo{room: testRoom(), persistErr: errors.New("db down")}
	pms := &fakePMSClient{hotel: managedHotel()}
	svc := NewService(repo, &fakeAvailabilityRepo{}, pms, nopLogger{})

	// PMS уже приняла смену - ошибка локальной записи не роняет запрос
	resp, err := svc.UpdateHousekeeping(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, "clean", resp.Housekeeping)
}

func TestUpdateHousekeeping_AccessDenied(t *testing.T) {
	repo := &fakeRoomRepo{room: testRoom()}
	pms := &fakePMSClient{hotel: managedHotel()}
	svc := NewService(repo, &fakeAvailabilityRepo{}, pms, nopLogger{})

	req := validRequest()
	req.UserID = 99

	_, err := svc.UpdateHousekeeping(context.Background(), req)
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Empty(t, pms.gotStatus)
}

func TestUpdateHousekeeping_InvalidStatus(t *testing.T) {
	svc := NewService(&fakeRoomRepo{}, &fakeAvailabilityRepo{}, &fakePMSClient{}, nopLogger{})

	req := validRequest()
	req.Status = "sparkling"

	_, err := svc.UpdateHousekeeping(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateHousekeeping_RoomNotFound(t *testing.T) {
	repo := &fakeRoomRepo{roomErr: roomRepo.ErrRoomNotFound}
	svc := NewService(repo, &fakeAvailabilityRepo{}, &fakePMSClient{}, nopLogger{})

	_, err := svc.UpdateHousekeeping(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestUpdateHousekeeping_HotelNotFound(t *testing.T) {
	repo := &fakeRoomRepo{room: testRoom()}
	pms := &fakePMSClient{hotelErr: pmsClient.ErrHotelNotFound}
	svc := NewService(repo, &fakeAvailabilityRepo{}, pms, nopLogger{})

	_, err := svc.UpdateHousekeeping(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrHotelNotFound)
}

func TestGetAvailability_InvalidPeriod(t *testing.T) {
	svc := NewService(&fakeRoomRepo{}, &fakeAvailabilityRepo{}, &fakePMSClient{}, nopLogger{})

	start := time.Date(2025, 10, 5, 0, 0, 0, 0, time.UTC)

	_, err := svc.GetAvailability(context.Background(), 1, start, start)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetAvailability_Success(t *testing.T) {
	availRepo := &fakeAvailabilityRepo{items: []*domain.RoomTypeAvailability{
		{RoomTypeID: 1, Date: "2025-10-01", AvailableRooms: 3},
		{RoomTypeID: 2, Date: "2025-10-01", AvailableRooms: 1},
	}}
	svc := NewService(&fakeRoomRepo{}, availRepo, &fakePMSClient{}, nopLogger{})

	start := time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 10, 8, 0, 0, 0, 0, time.UTC)

	resp, err := svc.GetAvailability(context.Background(), 1, start, end)
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.HotelID)
	require.Len(t, resp.Cells, 2)
	assert.Equal(t, "2025-10-01", resp.Cells[0].Date)
	assert.Equal(t, 3, resp.Cells[0].AvailableRooms)
}

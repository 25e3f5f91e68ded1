package build_timeline

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HMS-FrontdeskService/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeRoomRepo struct {
	hierarchy []*domain.RoomType
	err       error
}

func (f *fakeRoomRepo) GetHierarchyByHotel(_ context.Context, _ int64, _ *int64) ([]*domain.RoomType, error) {
	return f.hierarchy, f.err
}

type fakeReservationRepo struct {
	reservations []*domain.Reservation
	err          error
	gotFilter    domain.HotelReservationsFilter
}

func (f *fakeReservationRepo) GetByHotelWithFilter(_ context.Context, filter domain.HotelReservationsFilter) ([]*domain.Reservation, error) {
	f.gotFilter = filter
	return f.reservations, f.err
}

type fakeAvailabilityRepo struct {
	items []*domain.RoomTypeAvailability
	err   error
}

func (f *fakeAvailabilityRepo) GetByHotelAndPeriod(_ context.Context, _ int64, _, _ time.Time) ([]*domain.RoomTypeAvailability, error) {
	return f.items, f.err
}

type fakeCache struct {
	store   map[string][]byte
	getErr  error
	setErr  error
	setKeys []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{store: make(map[string][]byte)}
}

func (f *fakeCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	if f.getErr != nil {
		return nil, false, f.getErr
	}
	data, ok := f.store[key]
	return data, ok, nil
}

func (f *fakeCache) Set(_ context.Context, key string, data []byte) error {
	if f.setErr != nil {
		return f.setErr
	}
	f.store[key] = data
	f.setKeys = append(f.setKeys, key)
	return nil
}

func validRequest() *Request {
	return &Request{
		UserID:    7,
		HotelID:   1,
		StartDate: day(2025, 10, 1),
		Days:      7,
	}
}

func TestExecute_BuildsLayout(t *testing.T) {
	roomRepo := &fakeRoomRepo{hierarchy: []*domain.RoomType{
		{ID: 1, Name: "Standard", Rooms: []*domain.Room{
			{ID: 101, RoomTypeID: 1, Number: "101", Housekeeping: domain.HousekeepingClean},
			{ID: 102, RoomTypeID: 1, Number: "102", Housekeeping: domain.HousekeepingDirty},
		}},
	}}
	resRepo := &fakeReservationRepo{reservations: []*domain.Reservation{
		{ID: 1, RoomID: 101, Status: domain.StatusConfirmed, GuestName: "Иванов",
			CheckIn: day(2025, 10, 2), CheckOut: datePtr(day(2025, 10, 5))},
	}}
	availRepo := &fakeAvailabilityRepo{items: []*domain.RoomTypeAvailability{
		{RoomTypeID: 1, Date: "2025-10-01", AvailableRooms: 2},
	}}

	uc := NewUseCase(roomRepo, resRepo, availRepo, nil, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.HotelID)
	assert.Equal(t, domain.DefaultColumnWidth, resp.ColumnWidth)
	assert.Equal(t, 7*domain.DefaultColumnWidth, resp.TotalWidth)
	assert.Len(t, resp.Days, 7)
	assert.Len(t, resp.TypeHeaders, 1)
	assert.Len(t, resp.Rows, 2)
	assert.Len(t, resp.Blocks, 1)
	assert.Len(t, resp.DailyOccupancy, 7)
	assert.Len(t, resp.Availability, 1)

	block := resp.Blocks[0]
	assert.Equal(t, int64(1), block.ReservationID)
	assert.Equal(t, "Иванов", block.GuestName)
	assert.Equal(t, resp.Rows[0].Top, block.Top)

	// Высота: служебная строка + заголовок типа + две строки комнат
	wantHeight := domain.GridHeaderRows*domain.HeaderRowHeight + domain.HeaderRowHeight + 2*domain.MinRowHeight
	assert.Equal(t, wantHeight, resp.TotalHeight)
}

func TestExecute_FetchesReservationsWithoutPeriodFilter(t *testing.T) {
	roomRepo := &fakeRoomRepo{hierarchy: []*domain.RoomType{
		{ID: 1, Name: "Standard", Rooms: []*domain.Room{{ID: 101, RoomTypeID: 1, Number: "101"}}},
	}}
	resRepo := &fakeReservationRepo{}
	uc := NewUseCase(roomRepo, resRepo, &fakeAvailabilityRepo{}, nil, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// Пик дорожек зависит от всей истории - периода в фильтре быть не должно
	assert.Nil(t, resRepo.gotFilter.StartDate)
	assert.Nil(t, resRepo.gotFilter.EndDate)
	assert.False(t, resRepo.gotFilter.IncludeInactive)
}

func TestExecute_PeakIndependentOfWindow(t *testing.T) {
	roomRepo := &fakeRoomRepo{hierarchy: []*domain.RoomType{
		{ID: 1, Name: "Standard", Rooms: []*domain.Room{{ID: 101, RoomTypeID: 1, Number: "101"}}},
	}}
	// Пересекающиеся брони целиком за пределами видимого окна
	resRepo := &fakeReservationRepo{reservations: []*domain.Reservation{
		{ID: 1, RoomID: 101, Status: domain.StatusConfirmed, CheckIn: day(2025, 11, 1), CheckOut: datePtr(day(2025, 11, 5))},
		{ID: 2, RoomID: 101, Status: domain.StatusConfirmed, CheckIn: day(2025, 11, 2), CheckOut: datePtr(day(2025, 11, 6))},
	}}
	uc := NewUseCase(roomRepo, resRepo, &fakeAvailabilityRepo{}, nil, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// Блоков в окне нет, но высота строки отражает пик по всей истории
	assert.Empty(t, resp.Blocks)
	require.Len(t, resp.Rows, 1)
	assert.Equal(t, 2, resp.Rows[0].PeakLanes)
	assert.Equal(t, rowHeight(2), resp.Rows[0].Height)
}

func TestExecute_SkipsReservationsForUnknownRooms(t *testing.T) {
	roomRepo := &fakeRoomRepo{hierarchy: []*domain.RoomType{
		{ID: 1, Name: "Standard", Rooms: []*domain.Room{{ID: 101, RoomTypeID: 1, Number: "101"}}},
	}}
	resRepo := &fakeReservationRepo{reservations: []*domain.Reservation{
		{ID: 1, RoomID: 999, Status: domain.StatusConfirmed, CheckIn: day(2025, 10, 2), CheckOut: datePtr(day(2025, 10, 4))},
	}}
	uc := NewUseCase(roomRepo, resRepo, &fakeAvailabilityRepo{}, nil, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Empty(t, resp.Blocks)
	assert.Equal(t, 0, resp.DailyOccupancy[1].OccupiedRooms)
}

func TestExecute_CacheHitSkipsRepositories(t *testing.T) {
	cache := newFakeCache()
	cached := &Response{HotelID: 1, ColumnWidth: domain.DefaultColumnWidth, TotalWidth: 840}
	data, err := json.Marshal(cached)
	require.NoError(t, err)
	cache.store["1:2025-10-01:7:120:all"] = data

	roomRepo := &fakeRoomRepo{err: errors.New("db down")}
	uc := NewUseCase(roomRepo, &fakeReservationRepo{err: errors.New("db down")}, &fakeAvailabilityRepo{}, cache, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, 840, resp.TotalWidth)
}

func TestExecute_CacheMissStoresResult(t *testing.T) {
	cache := newFakeCache()
	roomRepo := &fakeRoomRepo{hierarchy: []*domain.RoomType{
		{ID: 1, Name: "Standard", Rooms: []*domain.Room{{ID: 101, RoomTypeID: 1, Number: "101"}}},
	}}
	uc := NewUseCase(roomRepo, &fakeReservationRepo{}, &fakeAvailabilityRepo{}, cache, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	require.Len(t, cache.setKeys, 1)
	assert.Equal(t, "1:2025-10-01:7:120:all", cache.setKeys[0])
}

func TestExecute_CacheErrorsAreNotFatal(t *testing.T) {
	cache := newFakeCache()
	cache.getErr = errors.New("redis down")
	roomRepo := &fakeRoomRepo{hierarchy: []*domain.RoomType{
		{ID: 1, Name: "Standard", Rooms: []*domain.Room{{ID: 101, RoomTypeID: 1, Number: "101"}}},
	}}
	uc := NewUseCase(roomRepo, &fakeReservationRepo{}, &fakeAvailabilityRepo{}, cache, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.NoError(t, err)
}

func TestExecute_AvailabilityErrorIsTolerated(t *testing.T) {
	roomRepo := &fakeRoomRepo{hierarchy: []*domain.RoomType{
		{ID: 1, Name: "Standard", Rooms: []*domain.Room{{ID: 101, RoomTypeID: 1, Number: "101"}}},
	}}
	availRepo := &fakeAvailabilityRepo{err: errors.New("table missing")}
	uc := NewUseCase(roomRepo, &fakeReservationRepo{}, availRepo, nil, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Empty(t, resp.Availability)
}

func TestExecute_ValidationErrors(t *testing.T) {
	uc := NewUseCase(&fakeRoomRepo{}, &fakeReservationRepo{}, &fakeAvailabilityRepo{}, nil, nopLogger{})

	tests := []struct {
		name string
		mod  func(*Request)
	}{
		{"zero hotel", func(r *Request) { r.HotelID = 0 }},
		{"zero start date", func(r *Request) { r.StartDate = time.Time{} }},
		{"days below min", func(r *Request) { r.Days = 0 }},
		{"days above max", func(r *Request) { r.Days = domain.MaxTimelineDays + 1 }},
		{"column width too narrow", func(r *Request) { r.ColumnWidth = domain.MinColumnWidth - 1 }},
		{"column width too wide", func(r *Request) { r.ColumnWidth = domain.MaxColumnWidth + 1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mod(req)

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_RepositoryErrorWrapsInternal(t *testing.T) {
	uc := NewUseCase(&fakeRoomRepo{err: errors.New("boom")}, &fakeReservationRepo{}, &fakeAvailabilityRepo{}, nil, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)
}

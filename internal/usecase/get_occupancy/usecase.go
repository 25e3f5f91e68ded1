package get_occupancy

import (
	"context"
	"fmt"
	"math"

	"github.com/m04kA/HMS-FrontdeskService/internal/domain"
	"github.com/m04kA/HMS-FrontdeskService/pkg/ptr"
)

// UseCase use case подсчёта загрузки отеля за один день
type UseCase struct {
	roomRepo        RoomRepository
	reservationRepo ReservationRepository
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(roomRepo RoomRepository, reservationRepo ReservationRepository, logger Logger) *UseCase {
	return &UseCase{
		roomRepo:        roomRepo,
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// Execute выполняет use case подсчёта загрузки.
// Загрузка - отношение множества занятых комнат к общему числу комнат:
// несколько броней одной комнаты в один день дают одну занятую комнату.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetOccupancy: hotel=%d, date=%s", req.HotelID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetOccupancy: validation failed: %v", err)
		return nil, err
	}

	day := domain.DayOf(req.Date)

	// 2. Получаем иерархию комнат - она задаёт знаменатель
	hierarchy, err := uc.roomRepo.GetHierarchyByHotel(ctx, req.HotelID, req.RoomTypeID)
	if err != nil {
		uc.logger.Error("GetOccupancy: failed to get room hierarchy for hotel=%d: %v", req.HotelID, err)
		return nil, fmt.Errorf("%w: failed to get room hierarchy: %v", ErrInternal, err)
	}

	known := make(map[int64]struct{})
	for _, rt := range hierarchy {
		for _, rm := range rt.Rooms {
			known[rm.ID] = struct{}{}
		}
	}

	// 3. Активные брони, пересекающие день [day, day+1)
	reservations, err := uc.reservationRepo.GetByHotelWithFilter(ctx, domain.HotelReservationsFilter{
		HotelID:    req.HotelID,
		RoomTypeID: req.RoomTypeID,
		StartDate:  ptr.Ptr(day),
		EndDate:    ptr.Ptr(day.AddDate(0, 0, 1)),
	})
	if err != nil {
		uc.logger.Error("GetOccupancy: failed to get reservations for hotel=%d: %v", req.HotelID, err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	// 4. Множество занятых комнат: брони неизвестных комнат не считаются
	occupied := make(map[int64]struct{})
	for _, res := range reservations {
		if !res.IsActive() {
			continue
		}
		if _, ok := known[res.RoomID]; !ok {
			continue
		}
		if res.OccupiesDay(day) {
			occupied[res.RoomID] = struct{}{}
		}
	}

	total := len(known)
	percent := 0
	if total > 0 {
		percent = int(math.Round(float64(len(occupied)) / float64(total) * 100))
	}

	uc.logger.Info("GetOccupancy: hotel=%d, date=%s: %d/%d rooms (%d%%)",
		req.HotelID, day.Format(domain.DateFormat), len(occupied), total, percent)

	return &Response{
		Date:          day,
		OccupiedRooms: len(occupied),
		TotalRooms:    total,
		Percent:       percent,
	}, nil
}

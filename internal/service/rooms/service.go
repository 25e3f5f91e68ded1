package rooms

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/m04kA/HMS-FrontdeskService/internal/domain"
	roomRepo "github.com/m04kA/HMS-FrontdeskService/internal/infra/storage/room"
	pmsClient "github.com/m04kA/HMS-FrontdeskService/internal/integrations/pmsservice"
	"github.com/m04kA/HMS-FrontdeskService/internal/service/rooms/models"
)

// Service сервис для работы с комнатами и статусами уборки
type Service struct {
	roomRepo         RoomRepository
	availabilityRepo AvailabilityRepository
	pmsClient        PMSServiceClient
	logger           Logger

	// Оптимистичные смены статуса уборки до подтверждения PMS.
	// Комната попадает в map на время полёта запроса и убирается после
	// Resolve/Revert - чтение всегда накладывает pending поверх БД.
	mu      sync.RWMutex
	pending map[int64]domain.HousekeepingState
}

// NewService создает новый экземпляр сервиса комнат
func NewService(
	roomRepo RoomRepository,
	availabilityRepo AvailabilityRepository,
	pmsClient PMSServiceClient,
	logger Logger,
) *Service {
	return &Service{
		roomRepo:         roomRepo,
		availabilityRepo: availabilityRepo,
		pmsClient:        pmsClient,
		logger:           logger,
		pending:          make(map[int64]domain.HousekeepingState),
	}
}

// GetHierarchy получает иерархию типов и комнат отеля
// Статус уборки каждой комнаты отдаётся с учётом неподтверждённых смен
func (s *Service) GetHierarchy(ctx context.Context, hotelID int64, roomTypeID *int64) (*models.HierarchyResponse, error) {
	s.logger.Info("GetHierarchy: fetching rooms for hotel=%d", hotelID)

	hierarchy, err := s.roomRepo.GetHierarchyByHotel(ctx, hotelID, roomTypeID)
	if err != nil {
		s.logger.Error("GetHierarchy: repository error for hotel=%d: %v", hotelID, err)
		return nil, fmt.Errorf("%w: GetHierarchy - repository error: %v", ErrInternal, err)
	}

	resp := &models.HierarchyResponse{
		HotelID:   hotelID,
		RoomTypes: make([]models.RoomTypeResponse, 0, len(hierarchy)),
	}

	for _, rt := range hierarchy {
		typeResp := models.RoomTypeResponse{
			ID:    rt.ID,
			Name:  rt.Name,
			Rooms: make([]models.RoomResponse, 0, len(rt.Rooms)),
		}

		for _, rm := range rt.Rooms {
			display, isPending := s.displayStatus(rm.ID, rm.Housekeeping)
			typeResp.Rooms = append(typeResp.Rooms, models.FromDomainRoom(rm, display, isPending))
		}

		resp.RoomTypes = append(resp.RoomTypes, typeResp)
	}

	s.logger.Info("GetHierarchy: successfully fetched %d room types for hotel=%d", len(resp.RoomTypes), hotelID)
	return resp, nil
}

// GetAvailability получает инвентарную сводку отеля за период
func (s *Service) GetAvailability(ctx context.Context, hotelID int64, start, end time.Time) (*models.AvailabilityResponse, error) {
	s.logger.Info("GetAvailability: hotel=%d, period=%s to %s",
		hotelID, start.Format(domain.DateFormat), end.Format(domain.DateFormat))

	if !end.After(start) {
		s.logger.Warn("GetAvailability: invalid period for hotel=%d", hotelID)
		return nil, fmt.Errorf("%w: end date must be after start date", ErrInvalidInput)
	}

	items, err := s.availabilityRepo.GetByHotelAndPeriod(ctx, hotelID, start, end)
	if err != nil {
		s.logger.Error("GetAvailability: repository error for hotel=%d: %v", hotelID, err)
		return nil, fmt.Errorf("%w: GetAvailability - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetAvailability: successfully fetched %d cells for hotel=%d", len(items), hotelID)
	return models.FromDomainAvailability(hotelID, items), nil
}

// UpdateHousekeeping меняет статус уборки комнаты оптимистично:
// новое значение показывается сразу, затем подтверждается в PMS.
// Отклонённая PMS смена откатывается к прежнему значению.
// Доступно только менеджерам отеля.
func (s *Service) UpdateHousekeeping(ctx context.Context, req *models.UpdateHousekeepingRequest) (*models.HousekeepingResponse, error) {
	s.logger.Info("UpdateHousekeeping: user=%d, room=%d, status=%s", req.UserID, req.RoomID, req.Status)

	status := domain.HousekeepingStatus(req.Status)
	if !status.IsValid() {
		s.logger.Warn("UpdateHousekeeping: invalid status=%s for room=%d", req.Status, req.RoomID)
		return nil, ErrInvalidStatus
	}

	// 1. Получаем комнату
	room, err := s.roomRepo.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("UpdateHousekeeping: room id=%d not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("UpdateHousekeeping: repository error for room id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: UpdateHousekeeping - repository error: %v", ErrInternal, err)
	}

	// 2. Проверяем права менеджера отеля
	if err := s.checkManagerAccess(ctx, room.HotelID, req.UserID); err != nil {
		return nil, err
	}

	// 3. Оптимистично показываем новое значение
	state := s.beginPending(room.ID, room.Housekeeping, status)

	// 4. Подтверждаем смену в PMS
	if err := s.pmsClient.UpdateHousekeepingStatus(ctx, room.ID, string(status)); err != nil {
		reverted := s.settlePending(room.ID, state.Revert())

		if errors.Is(err, pmsClient.ErrStatusRejected) {
			s.logger.Warn("UpdateHousekeeping: PMS rejected status=%s for room=%d, reverted to %s",
				status, room.ID, reverted.Display())
			return nil, ErrStatusRejected
		}
		if errors.Is(err, pmsClient.ErrRoomNotFound) {
			s.logger.Warn("UpdateHousekeeping: room id=%d unknown to PMS", room.ID)
			return nil, ErrRoomNotFound
		}

		s.logger.Error("UpdateHousekeeping: PMS call failed for room=%d: %v", room.ID, err)
		return nil, fmt.Errorf("%w: UpdateHousekeeping - PMS call failed: %v", ErrInternal, err)
	}

	// 5. Фиксируем подтверждённое значение локально
	resolved := s.settlePending(room.ID, state.Resolve())

	if err := s.roomRepo.UpdateHousekeepingStatus(ctx, room.ID, resolved.Confirmed()); err != nil {
		// PMS уже приняла смену - локальная запись догонит при следующей
		// синхронизации, запрос не роняем
		s.logger.Error("UpdateHousekeeping: failed to persist status for room=%d: %v", room.ID, err)
	}

	s.logger.Info("UpdateHousekeeping: successfully updated room=%d to status=%s", room.ID, resolved.Confirmed())

	return &models.HousekeepingResponse{
		RoomID:       room.ID,
		Housekeeping: string(resolved.Confirmed()),
		Pending:      false,
	}, nil
}

// checkManagerAccess проверяет, что пользователь является менеджером отеля
func (s *Service) checkManagerAccess(ctx context.Context, hotelID, userID int64) error {
	hotel, err := s.pmsClient.GetHotel(ctx, hotelID)
	if err != nil {
		if errors.Is(err, pmsClient.ErrHotelNotFound) {
			s.logger.Warn("checkManagerAccess: hotel id=%d not found", hotelID)
			return ErrHotelNotFound
		}
		s.logger.Error("checkManagerAccess: failed to get hotel id=%d: %v", hotelID, err)
		return fmt.Errorf("%w: checkManagerAccess - PMS call failed: %v", ErrInternal, err)
	}

	for _, managerID := range hotel.ManagerIDs {
		if managerID == userID {
			return nil
		}
	}

	s.logger.Warn("checkManagerAccess: user=%d is not a manager of hotel=%d", userID, hotelID)
	return ErrAccessDenied
}

// displayStatus возвращает отображаемый статус комнаты с учётом pending смен
func (s *Service) displayStatus(roomID int64, confirmed domain.HousekeepingStatus) (domain.HousekeepingStatus, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if state, ok := s.pending[roomID]; ok {
		return state.Display(), state.IsPending()
	}
	return confirmed, false
}

// beginPending регистрирует смену в полёте и возвращает её состояние
func (s *Service) beginPending(roomID int64, confirmed, attempted domain.HousekeepingStatus) domain.HousekeepingState {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, ok := s.pending[roomID]
	if !ok {
		state = domain.ConfirmedHousekeeping(confirmed)
	}
	state = state.BeginUpdate(attempted)
	s.pending[roomID] = state
	return state
}

// settlePending убирает комнату из pending и возвращает итоговое состояние
func (s *Service) settlePending(roomID int64, settled domain.HousekeepingState) domain.HousekeepingState {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.pending, roomID)
	return settled
}

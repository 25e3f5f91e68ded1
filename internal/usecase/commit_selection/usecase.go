package commit_selection

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/HMS-FrontdeskService/internal/domain"
	roomRepo "github.com/m04kA/HMS-FrontdeskService/internal/infra/storage/room"
	"github.com/m04kA/HMS-FrontdeskService/pkg/ptr"
)

// UseCase use case для фиксации выделенного диапазона дат
type UseCase struct {
	roomRepo        RoomRepository
	reservationRepo ReservationRepository
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	roomRepo RoomRepository,
	reservationRepo ReservationRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		roomRepo:        roomRepo,
		reservationRepo: reservationRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет use case фиксации выделения.
// Использует сериализуемую транзакцию для предотвращения гонки данных:
// занятость каждой ячейки диапазона перепроверяется по свежей выборке
// с блокировкой FOR UPDATE, а не по снапшоту, от которого рисовалась сетка.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CommitSelection: user=%d, hotel=%d, room=%d, cols=[%d..%d]",
		req.UserID, req.HotelID, req.RoomID, req.StartCol, req.EndCol)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CommitSelection: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем комнату и её тип
	room, err := uc.roomRepo.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			uc.logger.Warn("CommitSelection: room id=%d not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("CommitSelection: failed to get room id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	if room.HotelID != req.HotelID {
		uc.logger.Warn("CommitSelection: room id=%d does not belong to hotel id=%d", req.RoomID, req.HotelID)
		return nil, ErrRoomNotFound
	}

	roomType, err := uc.roomRepo.GetTypeByID(ctx, room.RoomTypeID)
	if err != nil {
		uc.logger.Error("CommitSelection: failed to get room type id=%d: %v", room.RoomTypeID, err)
		return nil, fmt.Errorf("%w: failed to get room type: %v", ErrInternal, err)
	}

	// 3. Строим окно дат - те же колонки, от которых считались индексы на клиенте
	window := make([]time.Time, req.WindowDays)
	day := domain.DayOf(req.WindowFrom)
	for i := range window {
		window[i] = day
		day = day.AddDate(0, 0, 1)
	}

	var result *domain.Reservation

	// 4. Повторная проверка занятости и вставка в одной сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Свежие активные брони комнаты за окно, с блокировкой FOR UPDATE
		filter := domain.HotelReservationsFilter{
			HotelID:   req.HotelID,
			RoomID:    ptr.Ptr(req.RoomID),
			StartDate: ptr.Ptr(window[0]),
			EndDate:   ptr.Ptr(window[len(window)-1].AddDate(0, 0, 1)),
		}

		reservations, err := uc.reservationRepo.GetByHotelWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CommitSelection: failed to get reservations: %v", err)
			return fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
		}

		occupied := func(roomID int64, col int) bool {
			colDay := window[col]
			for _, res := range reservations {
				if res.RoomID != roomID || !res.IsActive() {
					continue
				}
				if res.OccupiesDay(colDay) {
					return true
				}
			}
			return false
		}

		// 4.2. Прогоняем выделение через машину состояний: Begin на занятой
		// ячейке и Commit поверх обновившихся данных отбрасываются одинаково
		ctrl := domain.NewDragController(window, occupied)

		ref := domain.RoomRef{
			RoomID:       room.ID,
			RoomNumber:   room.Number,
			RoomTypeID:   roomType.ID,
			RoomTypeName: roomType.Name,
		}

		if !ctrl.Begin(ref, req.StartCol) {
			uc.logger.Warn("CommitSelection: start cell is occupied, room=%d, col=%d", req.RoomID, req.StartCol)
			return ErrSelectionConflict
		}
		ctrl.ExtendTo(room.ID, req.EndCol)

		selection, ok := ctrl.Commit()
		if !ok {
			uc.logger.Warn("CommitSelection: selection invalidated on commit, room=%d, cols=[%d..%d]",
				req.RoomID, req.StartCol, req.EndCol)
			return ErrSelectionConflict
		}

		// Занятая конечная ячейка молча срезает выделение до стартовой -
		// для API это тоже конфликт, а не бронь другого диапазона
		lo, hi := req.StartCol, req.EndCol
		if hi < lo {
			lo, hi = hi, lo
		}
		if !selection.StartDate.Equal(window[lo]) || !selection.EndDate.Equal(window[hi].AddDate(0, 0, 1)) {
			uc.logger.Warn("CommitSelection: selection shrank from requested range, room=%d, cols=[%d..%d]",
				req.RoomID, req.StartCol, req.EndCol)
			return ErrSelectionConflict
		}

		// 4.3. Создаем черновик брони на зафиксированный диапазон
		res := &domain.Reservation{
			HotelID:     req.HotelID,
			RoomID:      selection.RoomID,
			GuestName:   req.GuestName,
			GuestCount:  req.GuestCount,
			CheckIn:     selection.StartDate,
			CheckOut:    ptr.Ptr(selection.EndDate),
			Status:      domain.StatusConfirmed,
			StatusColor: domain.DefaultStatusColor,
			Source:      ptr.Ptr(domain.SourceFrontdesk),
		}

		created, err := uc.reservationRepo.Create(txCtx, res)
		if err != nil {
			uc.logger.Error("CommitSelection: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CommitSelection: successfully created reservation id=%d", result.ID)

	checkOut := *result.CheckOut

	return &Response{
		ReservationID: result.ID,
		RoomID:        result.RoomID,
		RoomNumber:    room.Number,
		RoomTypeID:    roomType.ID,
		RoomTypeName:  roomType.Name,
		StartDate:     result.CheckIn,
		EndDate:       checkOut,
		Nights:        int(checkOut.Sub(domain.DayOf(result.CheckIn)).Hours() / 24),
		CreatedAt:     result.CreatedAt,
	}, nil
}

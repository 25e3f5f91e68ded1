package build_timeline

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/m04kA/HMS-FrontdeskService/internal/domain"
)

// UseCase use case построения раскладки сетки броней.
//
// Вся раскладка - чистое синхронное вычисление от снапшота данных:
// окно дат + иерархия комнат + брони дают дорожки, геометрию блоков,
// линии переселений и загрузку за один проход. Никакого фонового
// состояния между вызовами не переносится.
type UseCase struct {
	roomRepo         RoomRepository
	reservationRepo  ReservationRepository
	availabilityRepo AvailabilityRepository
	cache            LayoutCache
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
// cache может быть nil - кэширование тогда отключено
func NewUseCase(
	roomRepo RoomRepository,
	reservationRepo ReservationRepository,
	availabilityRepo AvailabilityRepository,
	cache LayoutCache,
	logger Logger,
) *UseCase {
	return &UseCase{
		roomRepo:         roomRepo,
		reservationRepo:  reservationRepo,
		availabilityRepo: availabilityRepo,
		cache:            cache,
		logger:           logger,
	}
}

// Execute выполняет use case построения раскладки
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("BuildTimeline: user=%d, hotel=%d, start=%s, days=%d",
		req.UserID, req.HotelID, req.StartDate.Format(domain.DateFormat), req.Days)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("BuildTimeline: validation failed: %v", err)
		return nil, err
	}

	colWidth := req.ColumnWidth
	if colWidth == 0 {
		colWidth = domain.DefaultColumnWidth
	}

	// 2. Проверяем кэш
	cacheKey := layoutCacheKey(req, colWidth)
	if cached := uc.fromCache(ctx, cacheKey); cached != nil {
		uc.logger.Info("BuildTimeline: cache hit for hotel=%d key=%s", req.HotelID, cacheKey)
		return cached, nil
	}

	// 3. Получаем иерархию комнат
	hierarchy, err := uc.roomRepo.GetHierarchyByHotel(ctx, req.HotelID, req.RoomTypeID)
	if err != nil {
		uc.logger.Error("BuildTimeline: failed to get room hierarchy for hotel=%d: %v", req.HotelID, err)
		return nil, fmt.Errorf("%w: failed to get room hierarchy: %v", ErrInternal, err)
	}

	// 4. Получаем брони БЕЗ фильтра по периоду: пик дорожек комнаты
	// считается по всей истории, чтобы прокрутка окна не меняла высоту строк
	reservations, err := uc.reservationRepo.GetByHotelWithFilter(ctx, domain.HotelReservationsFilter{
		HotelID:    req.HotelID,
		RoomTypeID: req.RoomTypeID,
	})
	if err != nil {
		uc.logger.Error("BuildTimeline: failed to get reservations for hotel=%d: %v", req.HotelID, err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	// 5. Строим оси и раскладку
	axis := newDateAxis(req.StartDate, req.Days)
	reg := newRoomRegistry(hierarchy)
	lanes := stackReservations(reservations, reg)
	roomTops, headerTops, totalHeight := computeRoomTops(reg, lanes.peakOf)

	// 6. Геометрия блоков видимого окна
	rects := make(map[int64]blockRect)
	blocks := make([]Block, 0)

	for _, res := range reservations {
		lane, ok := lanes.laneOf[res.ID]
		if !ok {
			// Неактивная бронь или неизвестная комната
			continue
		}

		rect, visible := blockGeometry(res, axis, lane, roomTops[res.RoomID], colWidth)
		if !visible {
			continue
		}

		rects[res.ID] = rect
		blocks = append(blocks, Block{
			ReservationID:     res.ID,
			RoomID:            res.RoomID,
			Lane:              lane,
			Left:              rect.Left,
			Width:             rect.Width,
			Top:               rect.Top,
			ContinuesFromPrev: rect.ContinuesFromPrev,
			ContinuesToNext:   rect.ContinuesToNext,
			GuestName:         res.GuestName,
			GuestCount:        res.GuestCount,
			StatusLabel:       string(res.Status),
			StatusColor:       res.StatusColor,
			SourceBadge:       res.Source,
			AgentBadge:        res.AgentName,
			StayID:            res.StayID,
		})
	}

	// 7. Строки комнат и заголовки типов
	headers := make([]TypeHeader, 0, len(reg.types))
	rows := make([]RoomRow, 0, len(reg.flatRooms))

	for _, rt := range reg.types {
		headers = append(headers, TypeHeader{
			RoomTypeID: rt.ID,
			Name:       rt.Name,
			Top:        headerTops[rt.ID],
			RoomCount:  len(rt.Rooms),
		})

		for _, rm := range rt.Rooms {
			peak := lanes.peakOf[rm.ID]
			rows = append(rows, RoomRow{
				RoomID:       rm.ID,
				RoomNumber:   rm.Number,
				RoomTypeID:   rt.ID,
				Housekeeping: rm.Housekeeping,
				BaseRate:     rm.BaseRate,
				Top:          roomTops[rm.ID],
				Height:       rowHeight(peak),
				PeakLanes:    peak,
			})
		}
	}

	// 8. Инвентарная сводка - опциональный вход, её отсутствие не ломает рендер
	availabilityCells := make([]AvailabilityCell, 0)
	availabilityRows, err := uc.availabilityRepo.GetByHotelAndPeriod(ctx, req.HotelID, axis.windowStart(), axis.windowEnd())
	if err != nil {
		uc.logger.Warn("BuildTimeline: availability summary unavailable for hotel=%d: %v", req.HotelID, err)
	} else {
		for _, item := range availabilityRows {
			availabilityCells = append(availabilityCells, AvailabilityCell{
				RoomTypeID:     item.RoomTypeID,
				Date:           item.Date,
				AvailableRooms: item.AvailableRooms,
			})
		}
	}

	resp := &Response{
		HotelID:        req.HotelID,
		Days:           axis.days,
		ColumnWidth:    colWidth,
		TotalWidth:     axis.dayCount() * colWidth,
		TotalHeight:    totalHeight,
		TypeHeaders:    headers,
		Rows:           rows,
		Blocks:         blocks,
		Connectors:     connectorSegments(reservations, rects),
		DailyOccupancy: dailyOccupancy(axis, reservations, reg),
		Availability:   availabilityCells,
	}

	// 9. Кэшируем результат
	uc.toCache(ctx, cacheKey, resp)

	uc.logger.Info("BuildTimeline: built layout for hotel=%d: rooms=%d, blocks=%d, connectors=%d",
		req.HotelID, len(rows), len(blocks), len(resp.Connectors))

	return resp, nil
}

func layoutCacheKey(req *Request, colWidth int) string {
	typeKey := "all"
	if req.RoomTypeID != nil {
		typeKey = fmt.Sprintf("%d", *req.RoomTypeID)
	}
	return fmt.Sprintf("%d:%s:%d:%d:%s",
		req.HotelID, domain.DayOf(req.StartDate).Format(domain.DateFormat), req.Days, colWidth, typeKey)
}

// fromCache пытается достать раскладку из кэша; ошибки кэша не фатальны
func (uc *UseCase) fromCache(ctx context.Context, key string) *Response {
	if uc.cache == nil {
		return nil
	}

	data, ok, err := uc.cache.Get(ctx, key)
	if err != nil {
		uc.logger.Warn("BuildTimeline: cache get failed for key=%s: %v", key, err)
		return nil
	}
	if !ok {
		return nil
	}

	var resp Response
	if err := json.Unmarshal(data, &resp); err != nil {
		uc.logger.Warn("BuildTimeline: cache payload corrupted for key=%s: %v", key, err)
		return nil
	}
	return &resp
}

func (uc *UseCase) toCache(ctx context.Context, key string, resp *Response) {
	if uc.cache == nil {
		return
	}

	data, err := json.Marshal(resp)
	if err != nil {
		uc.logger.Warn("BuildTimeline: cache marshal failed for key=%s: %v", key, err)
		return
	}
	if err := uc.cache.Set(ctx, key, data); err != nil {
		uc.logger.Warn("BuildTimeline: cache set failed for key=%s: %v", key, err)
	}
}

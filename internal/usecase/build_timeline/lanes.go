package build_timeline

import (
	"sort"

	"github.com/m04kA/HMS-FrontdeskService/internal/domain"
)

// laneAssignment результат укладки броней по дорожкам одного рендера
type laneAssignment struct {
	laneOf map[int64]int // ID брони → индекс дорожки внутри её комнаты
	peakOf map[int64]int // ID комнаты → пиковое число дорожек
}

// stackReservations раскладывает брони каждой комнаты по минимальному числу
// непересекающихся дорожек.
//
// Брони комнаты сортируются по заезду (стабильно, при равенстве сохраняется
// исходный порядок) и жадно кладутся в первую дорожку без конфликтов; если
// такой нет - открывается новая. Для интервальных графов эта жадная укладка
// даёт ровно минимальное число дорожек.
//
// Пик считается по ВСЕМ броням комнаты, не только по видимому окну:
// высота строки не должна меняться при прокрутке диапазона дат.
//
// Брони неактивных статусов и неизвестных комнат пропускаются.
// Комната без броней имеет пик 0 - это не ошибка, строка получает
// минимальную высоту.
func stackReservations(reservations []*domain.Reservation, reg *roomRegistry) *laneAssignment {
	byRoom := make(map[int64][]*domain.Reservation)
	roomOrder := make([]int64, 0)

	for _, res := range reservations {
		if !res.IsActive() || !reg.hasRoom(res.RoomID) {
			continue
		}
		if _, ok := byRoom[res.RoomID]; !ok {
			roomOrder = append(roomOrder, res.RoomID)
		}
		byRoom[res.RoomID] = append(byRoom[res.RoomID], res)
	}

	assignment := &laneAssignment{
		laneOf: make(map[int64]int),
		peakOf: make(map[int64]int),
	}

	for _, roomID := range roomOrder {
		roomReservations := byRoom[roomID]

		sort.SliceStable(roomReservations, func(i, j int) bool {
			return roomReservations[i].CheckInDay().Before(roomReservations[j].CheckInDay())
		})

		lanes := make([][]*domain.Reservation, 0)

		for _, res := range roomReservations {
			placed := false
			for laneIdx, occupants := range lanes {
				if !conflictsWithAny(res, occupants) {
					lanes[laneIdx] = append(lanes[laneIdx], res)
					assignment.laneOf[res.ID] = laneIdx
					placed = true
					break
				}
			}
			if !placed {
				lanes = append(lanes, []*domain.Reservation{res})
				assignment.laneOf[res.ID] = len(lanes) - 1
			}
		}

		assignment.peakOf[roomID] = len(lanes)
	}

	return assignment
}

func conflictsWithAny(res *domain.Reservation, occupants []*domain.Reservation) bool {
	for _, other := range occupants {
		if res.ConflictsWith(other) {
			return true
		}
	}
	return false
}

// rowHeight высота строки комнаты по пиковому числу дорожек
func rowHeight(peak int) int {
	if peak <= 0 {
		return domain.MinRowHeight
	}
	h := peak*domain.BlockHeight + (peak-1)*domain.LaneGap
	if h < domain.MinRowHeight {
		return domain.MinRowHeight
	}
	return h
}

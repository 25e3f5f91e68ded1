package build_timeline

import (
	"math"

	"github.com/m04kA/HMS-FrontdeskService/internal/domain"
)

// dailyOccupancy считает загрузку по каждому видимому дню.
//
// Комната занята в день D, если её занимает хотя бы одна активная бронь
// (однодневная с датой D или интервальная с заездом <= D < выездом).
// Несколько броней одной комнаты в один день считаются одной занятой
// комнатой - множество по ID комнат, а не количество броней.
func dailyOccupancy(axis *dateAxis, reservations []*domain.Reservation, reg *roomRegistry) []DayOccupancy {
	total := len(reg.flatRooms)
	result := make([]DayOccupancy, axis.dayCount())

	for i := 0; i < axis.dayCount(); i++ {
		day := axis.day(i)

		occupied := make(map[int64]struct{})
		for _, res := range reservations {
			if !res.IsActive() || !reg.hasRoom(res.RoomID) {
				continue
			}
			if res.OccupiesDay(day) {
				occupied[res.RoomID] = struct{}{}
			}
		}

		result[i] = DayOccupancy{
			Date:          day,
			OccupiedRooms: len(occupied),
			TotalRooms:    total,
			Percent:       occupancyPercent(len(occupied), total),
		}
	}

	return result
}

// occupancyPercent процент загрузки в диапазоне [0, 100]
// Ноль комнат - 0%, а не деление на ноль
func occupancyPercent(occupied, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(occupied) / float64(total) * 100))
}

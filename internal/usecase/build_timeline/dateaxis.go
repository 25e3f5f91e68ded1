package build_timeline

import (
	"time"

	"github.com/m04kA/HMS-FrontdeskService/internal/domain"
)

// dateAxis сопоставляет календарный день и индекс колонки в окне
// Окно - упорядоченная непрерывная последовательность дней без разрывов
type dateAxis struct {
	days  []time.Time
	index map[string]int // YYYY-MM-DD → индекс колонки
}

// newDateAxis строит окно из days последовательных дней начиная со start
func newDateAxis(start time.Time, days int) *dateAxis {
	first := domain.DayOf(start)

	axis := &dateAxis{
		days:  make([]time.Time, days),
		index: make(map[string]int, days),
	}
	for i := 0; i < days; i++ {
		d := first.AddDate(0, 0, i)
		axis.days[i] = d
		axis.index[d.Format(domain.DateFormat)] = i
	}
	return axis
}

// indexOf возвращает индекс колонки для даты или -1, если дата вне окна
// Время суток отбрасывается; вызывающая сторона обязана клэмпить -1, а не падать
func (a *dateAxis) indexOf(t time.Time) int {
	if i, ok := a.index[domain.DayOf(t).Format(domain.DateFormat)]; ok {
		return i
	}
	return -1
}

// dayCount возвращает количество колонок окна
func (a *dateAxis) dayCount() int {
	return len(a.days)
}

// day возвращает дату колонки i
func (a *dateAxis) day(i int) time.Time {
	return a.days[i]
}

// windowStart возвращает первый день окна
func (a *dateAxis) windowStart() time.Time {
	return a.days[0]
}

// windowEnd возвращает эксклюзивную границу окна: день после последней колонки
func (a *dateAxis) windowEnd() time.Time {
	return a.days[len(a.days)-1].AddDate(0, 0, 1)
}

package build_timeline

import (
	"math"
	"time"

	"github.com/m04kA/HMS-FrontdeskService/internal/domain"
)

// blockRect геометрия одного блока брони
type blockRect struct {
	Left              int
	Width             int
	Top               int
	ContinuesFromPrev bool
	ContinuesToNext   bool
}

// computeRoomTops рассчитывает вертикальные смещения детерминированно:
// служебные строки сетки, затем для каждого типа строка-заголовок и строки
// комнат с высотой по пику дорожек. Никаких измерений рендера - раскладка
// полностью выводится из реестра и пиков.
//
// Возвращает top каждой комнаты, top заголовка каждого типа и полную высоту.
func computeRoomTops(reg *roomRegistry, peaks map[int64]int) (map[int64]int, map[int64]int, int) {
	roomTop := make(map[int64]int, len(reg.flatRooms))
	headerTop := make(map[int64]int, len(reg.types))

	top := domain.GridHeaderRows * domain.HeaderRowHeight
	for _, rt := range reg.types {
		headerTop[rt.ID] = top
		top += domain.HeaderRowHeight

		for _, rm := range rt.Rooms {
			roomTop[rm.ID] = top
			top += rowHeight(peaks[rm.ID])
		}
	}

	return roomTop, headerTop, top
}

// blockGeometry конвертирует интервал брони, её дорожку и top комнаты
// в прямоугольник. Второй результат false = бронь целиком вне окна и
// не рендерится.
//
// Якорение горизонтали:
//   - настоящий край брони встаёт на середину своей колонки, чтобы блоки
//     соседних дней стыковались без зазоров;
//   - край, обрезанный окном, прижимается к границе сетки без отступа
//     до середины - обрезку видно как "продолжается за экраном".
func blockGeometry(res *domain.Reservation, axis *dateAxis, lane, roomTop, colWidth int) (blockRect, bool) {
	start, end := res.StackInterval()

	wStart := axis.windowStart()
	wEnd := axis.windowEnd()

	if !start.Before(wEnd) || !end.After(wStart) {
		return blockRect{}, false
	}

	rect := blockRect{
		ContinuesFromPrev: start.Before(wStart),
		ContinuesToNext:   end.After(wEnd),
	}

	gridWidth := axis.dayCount() * colWidth

	if rect.ContinuesFromPrev {
		rect.Left = 0
	} else {
		startIdx := axis.indexOf(start)
		if startIdx < 0 {
			startIdx = 0
		}
		rect.Left = startIdx*colWidth + colWidth/2
	}

	var right int
	if rect.ContinuesToNext {
		right = gridWidth
	} else {
		right = daysBetween(wStart, end)*colWidth + colWidth/2
		// Выезд ровно в день после последней колонки упирается в край сетки
		if right > gridWidth {
			right = gridWidth
		}
	}

	rect.Width = right - rect.Left - domain.BlockGap
	if rect.Width < 1 {
		rect.Width = 1
	}

	rect.Top = roomTop + lane*(domain.BlockHeight+domain.LaneGap)

	return rect, true
}

// daysBetween количество календарных дней от a до b (b >= a)
// Округление гасит сдвиги перехода на летнее время
func daysBetween(a, b time.Time) int {
	return int(math.Round(b.Sub(a).Hours() / 24))
}

package build_timeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/HMS-FrontdeskService/internal/domain"
)

const colW = domain.DefaultColumnWidth

func TestBlockGeometry_MidpointAnchoring(t *testing.T) {
	axis := newDateAxis(day(2025, 10, 1), 7)
	res := &domain.Reservation{
		CheckIn:  day(2025, 10, 2), // колонка 1
		CheckOut: datePtr(day(2025, 10, 5)),
	}

	rect, visible := blockGeometry(res, axis, 0, 100, colW)
	require.True(t, visible)

	// Заезд: середина колонки 1, выезд: середина колонки 4
	assert.Equal(t, 1*colW+colW/2, rect.Left)
	assert.Equal(t, 4*colW+colW/2-rect.Left-domain.BlockGap, rect.Width)
	assert.False(t, rect.ContinuesFromPrev)
	assert.False(t, rect.ContinuesToNext)
	assert.Equal(t, 100, rect.Top)
}

func TestBlockGeometry_SameDayBlockSpansMidpoints(t *testing.T) {
	axis := newDateAxis(day(2025, 10, 1), 7)
	res := &domain.Reservation{CheckIn: day(2025, 10, 3)} // колонка 2, без выезда

	rect, visible := blockGeometry(res, axis, 0, 0, colW)
	require.True(t, visible)

	// Интервал расширен до одного дня: от середины колонки 2 до середины колонки 3
	assert.Equal(t, 2*colW+colW/2, rect.Left)
	assert.Equal(t, colW-domain.BlockGap, rect.Width)
}

func TestBlockGeometry_ClippedLeftEdge(t *testing.T) {
	axis := newDateAxis(day(2025, 10, 5), 7)
	res := &domain.Reservation{
		CheckIn:  day(2025, 10, 1), // до окна
		CheckOut: datePtr(day(2025, 10, 8)),
	}

	rect, visible := blockGeometry(res, axis, 0, 0, colW)
	require.True(t, visible)

	// Обрезанный край прижат к границе сетки, без сдвига до середины
	assert.Equal(t, 0, rect.Left)
	assert.True(t, rect.ContinuesFromPrev)
	assert.False(t, rect.ContinuesToNext)
	// Выезд 8-го: колонка 3, правый край на её середине
	assert.Equal(t, 3*colW+colW/2-domain.BlockGap, rect.Width)
}

func TestBlockGeometry_ClippedRightEdge(t *testing.T) {
	axis := newDateAxis(day(2025, 10, 1), 5)
	res := &domain.Reservation{
		CheckIn:  day(2025, 10, 4),
		CheckOut: datePtr(day(2025, 10, 20)), // далеко за окном
	}

	rect, visible := blockGeometry(res, axis, 0, 0, colW)
	require.True(t, visible)

	gridWidth := 5 * colW
	assert.Equal(t, 3*colW+colW/2, rect.Left)
	assert.Equal(t, gridWidth-rect.Left-domain.BlockGap, rect.Width)
	assert.True(t, rect.ContinuesToNext)
}

func TestBlockGeometry_CheckOutAtWindowEndClampsToGrid(t *testing.T) {
	axis := newDateAxis(day(2025, 10, 1), 5)
	res := &domain.Reservation{
		CheckIn:  day(2025, 10, 4),
		CheckOut: datePtr(day(2025, 10, 6)), // ровно windowEnd, не обрезан
	}

	rect, visible := blockGeometry(res, axis, 0, 0, colW)
	require.True(t, visible)

	// Середина несуществующей колонки упёрлась бы за сетку - край клэмпится
	assert.False(t, rect.ContinuesToNext)
	assert.Equal(t, 5*colW-rect.Left-domain.BlockGap, rect.Width)
}

func TestBlockGeometry_OutsideWindowNotRendered(t *testing.T) {
	axis := newDateAxis(day(2025, 10, 10), 5)

	before := &domain.Reservation{CheckIn: day(2025, 10, 1), CheckOut: datePtr(day(2025, 10, 5))}
	after := &domain.Reservation{CheckIn: day(2025, 10, 20), CheckOut: datePtr(day(2025, 10, 22))}
	// Выезд ровно в первый день окна: полуоткрытый интервал не пересекается
	touching := &domain.Reservation{CheckIn: day(2025, 10, 7), CheckOut: datePtr(day(2025, 10, 10))}

	for _, res := range []*domain.Reservation{before, after, touching} {
		_, visible := blockGeometry(res, axis, 0, 0, colW)
		assert.False(t, visible)
	}
}

func TestBlockGeometry_LaneShiftsTop(t *testing.T) {
	axis := newDateAxis(day(2025, 10, 1), 7)
	res := &domain.Reservation{CheckIn: day(2025, 10, 2), CheckOut: datePtr(day(2025, 10, 4))}

	rect0, _ := blockGeometry(res, axis, 0, 500, colW)
	rect2, _ := blockGeometry(res, axis, 2, 500, colW)

	assert.Equal(t, 500, rect0.Top)
	assert.Equal(t, 500+2*(domain.BlockHeight+domain.LaneGap), rect2.Top)
}

func TestComputeRoomTops(t *testing.T) {
	reg := testRegistry()
	peaks := map[int64]int{101: 2, 102: 0, 201: 1}

	roomTops, headerTops, total := computeRoomTops(reg, peaks)

	base := domain.GridHeaderRows * domain.HeaderRowHeight

	assert.Equal(t, base, headerTops[1])
	assert.Equal(t, base+domain.HeaderRowHeight, roomTops[101])

	h101 := rowHeight(2)
	assert.Equal(t, roomTops[101]+h101, roomTops[102])

	h102 := rowHeight(0)
	assert.Equal(t, roomTops[102]+h102, headerTops[2])
	assert.Equal(t, headerTops[2]+domain.HeaderRowHeight, roomTops[201])

	assert.Equal(t, roomTops[201]+rowHeight(1), total)
}

func TestDaysBetween_RoundsDSTShift(t *testing.T) {
	assert.Equal(t, 3, daysBetween(day(2025, 10, 1), day(2025, 10, 4)))
	assert.Equal(t, 0, daysBetween(day(2025, 10, 1), day(2025, 10, 1)))
}

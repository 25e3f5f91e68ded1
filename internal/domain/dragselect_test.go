package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func window(start time.Time, days int) []time.Time {
	w := make([]time.Time, days)
	for i := range w {
		w[i] = start.AddDate(0, 0, i)
	}
	return w
}

func noneOccupied(int64, int) bool { return false }

func TestDragController_CommitForwardDrag(t *testing.T) {
	start := day(2025, 10, 1)
	c := NewDragController(window(start, 7), noneOccupied)
	room := RoomRef{RoomID: 5, RoomNumber: "101", RoomTypeID: 1, RoomTypeName: "Standard"}

	require.True(t, c.Begin(room, 2))
	assert.True(t, c.Dragging())
	c.ExtendTo(5, 4)

	sel, ok := c.Commit()
	require.True(t, ok)

	assert.Equal(t, int64(5), sel.RoomID)
	assert.Equal(t, "101", sel.RoomNumber)
	assert.Equal(t, day(2025, 10, 3), sel.StartDate)
	// Эксклюзивный конец: день после последней выделенной ячейки
	assert.Equal(t, day(2025, 10, 6), sel.EndDate)
	assert.False(t, c.Dragging())
}

func TestDragController_CommitBackwardDragNormalizes(t *testing.T) {
	start := day(2025, 10, 1)
	c := NewDragController(window(start, 7), noneOccupied)
	room := RoomRef{RoomID: 5}

	require.True(t, c.Begin(room, 5))
	c.ExtendTo(5, 1)

	sel, ok := c.Commit()
	require.True(t, ok)

	assert.Equal(t, day(2025, 10, 2), sel.StartDate)
	assert.Equal(t, day(2025, 10, 7), sel.EndDate)
}

func TestDragController_CommitLastColumnEndsAfterWindow(t *testing.T) {
	start := day(2025, 10, 1)
	c := NewDragController(window(start, 3), noneOccupied)

	require.True(t, c.Begin(RoomRef{RoomID: 5}, 2))

	sel, ok := c.Commit()
	require.True(t, ok)

	// Конец диапазона не обрезается краем окна
	assert.Equal(t, day(2025, 10, 3), sel.StartDate)
	assert.Equal(t, day(2025, 10, 4), sel.EndDate)
}

func TestDragController_BeginOnOccupiedCellIsNoop(t *testing.T) {
	start := day(2025, 10, 1)
	c := NewDragController(window(start, 7), func(roomID int64, col int) bool {
		return col == 2
	})

	assert.False(t, c.Begin(RoomRef{RoomID: 5}, 2))
	assert.False(t, c.Dragging())

	_, ok := c.Commit()
	assert.False(t, ok)
}

func TestDragController_BeginOutsideWindowIsNoop(t *testing.T) {
	c := NewDragController(window(day(2025, 10, 1), 7), noneOccupied)

	assert.False(t, c.Begin(RoomRef{RoomID: 5}, -1))
	assert.False(t, c.Begin(RoomRef{RoomID: 5}, 7))
}

func TestDragController_ExtendIgnoresOccupiedAndForeignRow(t *testing.T) {
	start := day(2025, 10, 1)
	c := NewDragController(window(start, 7), func(roomID int64, col int) bool {
		return col == 4
	})

	require.True(t, c.Begin(RoomRef{RoomID: 5}, 1))

	// Занятая ячейка не расширяет выделение и не отменяет его
	c.ExtendTo(5, 4)
	// Чужая строка игнорируется
	c.ExtendTo(9, 3)
	// Выход за окно игнорируется
	c.ExtendTo(5, 10)
	c.ExtendTo(5, 2)

	sel, ok := c.Commit()
	require.True(t, ok)
	assert.Equal(t, day(2025, 10, 2), sel.StartDate)
	assert.Equal(t, day(2025, 10, 4), sel.EndDate)
}

func TestDragController_SecondBeginWhileDraggingIsNoop(t *testing.T) {
	c := NewDragController(window(day(2025, 10, 1), 7), noneOccupied)

	require.True(t, c.Begin(RoomRef{RoomID: 5}, 1))
	assert.False(t, c.Begin(RoomRef{RoomID: 6}, 3))

	sel, ok := c.Commit()
	require.True(t, ok)
	assert.Equal(t, int64(5), sel.RoomID)
}

func TestDragController_CancelDropsSelection(t *testing.T) {
	c := NewDragController(window(day(2025, 10, 1), 7), noneOccupied)

	require.True(t, c.Begin(RoomRef{RoomID: 5}, 1))
	c.ExtendTo(5, 3)
	c.Cancel()

	assert.False(t, c.Dragging())
	_, ok := c.Commit()
	assert.False(t, ok)
}

func TestDragController_CommitRechecksOccupancy(t *testing.T) {
	// Ячейка становится занятой после начала перетаскивания
	occupiedNow := false
	c := NewDragController(window(day(2025, 10, 1), 7), func(roomID int64, col int) bool {
		return occupiedNow && col == 2
	})

	require.True(t, c.Begin(RoomRef{RoomID: 5}, 1))
	c.ExtendTo(5, 3)

	occupiedNow = true

	_, ok := c.Commit()
	assert.False(t, ok)
	assert.False(t, c.Dragging())
}

func TestDragController_WindowDaysNormalized(t *testing.T) {
	// Дни окна с временем суток нормализуются к полуночи
	noon := time.Date(2025, 10, 1, 12, 30, 0, 0, time.UTC)
	c := NewDragController(window(noon, 3), noneOccupied)

	require.True(t, c.Begin(RoomRef{RoomID: 5}, 0))
	sel, ok := c.Commit()
	require.True(t, ok)
	assert.Equal(t, day(2025, 10, 1), sel.StartDate)
}

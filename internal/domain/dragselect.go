package domain

import "time"

// RoomRef идентификация строки комнаты в сетке
type RoomRef struct {
	RoomID       int64
	RoomNumber   string
	RoomTypeID   int64
	RoomTypeName string
}

// RangeSelection результат зафиксированного выделения диапазона дат.
// EndDate эксклюзивная: следующий календарный день после последней
// выделенной ячейки.
type RangeSelection struct {
	RoomID       int64
	RoomNumber   string
	RoomTypeID   int64
	RoomTypeName string
	StartDate    time.Time
	EndDate      time.Time
}

// CellOccupied сообщает, занята ли ячейка (комната, индекс колонки)
// Вызывается и при старте, и повторно при фиксации - данные могли обновиться
type CellOccupied func(roomID int64, col int) bool

// DragController is the click-and-drag selection state machine:
// Idle → Dragging → Committed/Cancelled → Idle. At most one selection is
// active at a time; Begin on an occupied cell is a no-op, so a second drag
// cannot start while one is in progress (pointer-down targets one cell).
type DragController struct {
	window   []time.Time
	occupied CellOccupied

	dragging bool
	room     RoomRef
	startCol int
	endCol   int
}

// NewDragController создает контроллер для окна дат window
// Дни окна нормализуются к началу суток
func NewDragController(window []time.Time, occupied CellOccupied) *DragController {
	days := make([]time.Time, len(window))
	for i, d := range window {
		days[i] = DayOf(d)
	}
	return &DragController{window: days, occupied: occupied}
}

// Dragging returns true while a selection is in progress
func (c *DragController) Dragging() bool {
	return c.dragging
}

// Begin обрабатывает нажатие кнопки на ячейке (room, col)
// Нажатие на занятую ячейку или вне окна игнорируется
// Возвращает true, если выделение началось
func (c *DragController) Begin(room RoomRef, col int) bool {
	if c.dragging || col < 0 || col >= len(c.window) {
		return false
	}
	if c.occupied(room.RoomID, col) {
		return false
	}

	c.dragging = true
	c.room = room
	c.startCol = col
	c.endCol = col
	return true
}

// ExtendTo обрабатывает вход указателя в ячейку (roomID, col)
// Вход в занятую ячейку или в строку другой комнаты игнорируется:
// выделение не отменяется и не расширяется
func (c *DragController) ExtendTo(roomID int64, col int) {
	if !c.dragging || roomID != c.room.RoomID {
		return
	}
	if col < 0 || col >= len(c.window) {
		return
	}
	if c.occupied(roomID, col) {
		return
	}
	c.endCol = col
}

// Cancel сбрасывает выделение без события (Escape)
func (c *DragController) Cancel() {
	c.reset()
}

// Commit фиксирует выделение (отпускание кнопки или потеря фокуса).
// Занятость всех ячеек диапазона проверяется заново: данные могли
// обновиться за время перетаскивания. Если диапазон стал невалидным,
// выделение молча отбрасывается и возвращается (nil, false).
func (c *DragController) Commit() (*RangeSelection, bool) {
	if !c.dragging {
		return nil, false
	}
	defer c.reset()

	lo, hi := c.startCol, c.endCol
	if hi < lo {
		lo, hi = hi, lo
	}

	for col := lo; col <= hi; col++ {
		if c.occupied(c.room.RoomID, col) {
			return nil, false
		}
	}

	return &RangeSelection{
		RoomID:       c.room.RoomID,
		RoomNumber:   c.room.RoomNumber,
		RoomTypeID:   c.room.RoomTypeID,
		RoomTypeName: c.room.RoomTypeName,
		StartDate:    c.window[lo],
		EndDate:      c.window[hi].AddDate(0, 0, 1),
	}, true
}

func (c *DragController) reset() {
	c.dragging = false
	c.room = RoomRef{}
	c.startCol = 0
	c.endCol = 0
}

package domain

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Default grid layout parameters (pixels)
// Колонка может быть переопределена запросом при ресайзе вьюпорта,
// остальные значения фиксированы для всех клиентов
const (
	DefaultColumnWidth = 120
	BlockHeight        = 28
	LaneGap            = 4
	MinRowHeight       = 36
	HeaderRowHeight    = 32
	BlockGap           = 4

	// GridHeaderRows количество служебных строк над первой группой комнат
	// (строка с датами)
	GridHeaderRows = 1
)

// Defaults for reservations created from the grid
const (
	DefaultStatusColor = "#3B82F6"
	SourceFrontdesk    = "frontdesk"
)

// Business validation constants
const (
	MinTimelineDays  = 1
	MaxTimelineDays  = 92 // квартал
	MinColumnWidth   = 40
	MaxColumnWidth   = 400
	MaxSelectionDays = 62
)

// InactiveStatuses статусы броней, не занимающих комнату
// Исключаются из раскладки и из подсчёта загрузки
var InactiveStatuses = []ReservationStatus{
	StatusCancelled,
	StatusNoShow,
}

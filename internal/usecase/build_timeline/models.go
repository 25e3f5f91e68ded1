package build_timeline

import (
	"time"

	"github.com/m04kA/HMS-FrontdeskService/internal/domain"
)

// Request модель запроса раскладки сетки
type Request struct {
	UserID      int64      // ID пользователя (для логирования, не влияет на результат)
	HotelID     int64      // ID отеля
	StartDate   time.Time  // Первый день окна
	Days        int        // Количество дней окна
	RoomTypeID  *int64     // Фильтр по типу комнат (опционально)
	ColumnWidth int        // Ширина колонки в пикселях (0 = значение по умолчанию)
}

// Response полная раскладка сетки для одного рендера клиента
type Response struct {
	HotelID     int64
	Days        []time.Time // Видимое окно дат (колонки)
	ColumnWidth int
	TotalWidth  int // Ширина сетки: колонки * ширина колонки
	TotalHeight int // Высота сетки: служебные строки + заголовки типов + строки комнат

	TypeHeaders    []TypeHeader
	Rows           []RoomRow
	Blocks         []Block
	Connectors     []Connector
	DailyOccupancy []DayOccupancy
	Availability   []AvailabilityCell
}

// TypeHeader строка-заголовок группы комнат одного типа
type TypeHeader struct {
	RoomTypeID int64
	Name       string
	Top        int
	RoomCount  int
}

// RoomRow строка комнаты с рассчитанной геометрией
type RoomRow struct {
	RoomID       int64
	RoomNumber   string
	RoomTypeID   int64
	Housekeeping domain.HousekeepingStatus
	BaseRate     float64
	Top          int
	Height       int
	PeakLanes    int // Пик одновременных дорожек по всей истории броней комнаты
}

// Block прямоугольник одной брони в сетке
type Block struct {
	ReservationID int64
	RoomID        int64
	Lane          int

	Left  int
	Width int
	Top   int

	// Бронь обрезана краем окна (заезд/выезд за пределами видимых дат)
	ContinuesFromPrev bool
	ContinuesToNext   bool

	GuestName   string
	GuestCount  int
	StatusLabel string
	StatusColor string
	SourceBadge *string
	AgentBadge  *string
	StayID      *string
}

// Connector линия переселения: от конца одного блока проживания
// к началу следующего
type Connector struct {
	StayID            string
	FromReservationID int64
	ToReservationID   int64
	X1                int
	Y1                int
	X2                int
	Y2                int
}

// DayOccupancy загрузка отеля на один видимый день
type DayOccupancy struct {
	Date          time.Time
	OccupiedRooms int
	TotalRooms    int
	Percent       int
}

// AvailabilityCell ячейка инвентарной сводки (read-only строка над сеткой)
type AvailabilityCell struct {
	RoomTypeID     int64
	Date           string
	AvailableRooms int
}

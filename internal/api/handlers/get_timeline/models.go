package get_timeline

import (
	"strconv"
	"time"

	"github.com/m04kA/HMS-FrontdeskService/internal/domain"
	buildTimeline "github.com/m04kA/HMS-FrontdeskService/internal/usecase/build_timeline"
)

// TimelineResponse HTTP response model
type TimelineResponse struct {
	HotelID     int64    `json:"hotelId"`
	Days        []string `json:"days"` // "2025-10-15"
	ColumnWidth int      `json:"columnWidth"`
	TotalWidth  int      `json:"totalWidth"`
	TotalHeight int      `json:"totalHeight"`

	TypeHeaders    []TypeHeader       `json:"typeHeaders"`
	Rows           []RoomRow          `json:"rows"`
	Blocks         []Block            `json:"blocks"`
	Connectors     []Connector        `json:"connectors"`
	DailyOccupancy []DayOccupancy     `json:"dailyOccupancy"`
	Availability   []AvailabilityCell `json:"availability"`
}

// TypeHeader строка-заголовок группы комнат одного типа
type TypeHeader struct {
	RoomTypeID int64  `json:"roomTypeId"`
	Name       string `json:"name"`
	Top        int    `json:"top"`
	RoomCount  int    `json:"roomCount"`
}

// RoomRow строка комнаты
type RoomRow struct {
	RoomID       int64   `json:"roomId"`
	RoomNumber   string  `json:"roomNumber"`
	RoomTypeID   int64   `json:"roomTypeId"`
	Housekeeping string  `json:"housekeeping"`
	BaseRate     float64 `json:"baseRate"`
	Top          int     `json:"top"`
	Height       int     `json:"height"`
	PeakLanes    int     `json:"peakLanes"`
}

// Block прямоугольник брони
type Block struct {
	ReservationID int64 `json:"reservationId"`
	RoomID        int64 `json:"roomId"`
	Lane          int   `json:"lane"`

	Left  int `json:"left"`
	Width int `json:"width"`
	Top   int `json:"top"`

	ContinuesFromPrev bool `json:"continuesFromPrev"`
	ContinuesToNext   bool `json:"continuesToNext"`

	GuestName   string  `json:"guestName"`
	GuestCount  int     `json:"guestCount"`
	StatusLabel string  `json:"statusLabel"`
	StatusColor string  `json:"statusColor"`
	SourceBadge *string `json:"sourceBadge,omitempty"`
	AgentBadge  *string `json:"agentBadge,omitempty"`
	StayID      *string `json:"stayId,omitempty"`
}

// Connector линия переселения между блоками одного проживания
type Connector struct {
	StayID            string `json:"stayId"`
	FromReservationID int64  `json:"fromReservationId"`
	ToReservationID   int64  `json:"toReservationId"`
	X1                int    `json:"x1"`
	Y1                int    `json:"y1"`
	X2                int    `json:"x2"`
	Y2                int    `json:"y2"`
}

// DayOccupancy загрузка на один день окна
type DayOccupancy struct {
	Date          string `json:"date"`
	OccupiedRooms int    `json:"occupiedRooms"`
	TotalRooms    int    `json:"totalRooms"`
	Percent       int    `json:"percent"`
}

// AvailabilityCell ячейка инвентарной сводки
type AvailabilityCell struct {
	RoomTypeID     int64  `json:"roomTypeId"`
	Date           string `json:"date"`
	AvailableRooms int    `json:"availableRooms"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *buildTimeline.Response) *TimelineResponse {
	days := make([]string, len(resp.Days))
	for i, d := range resp.Days {
		days[i] = d.Format(domain.DateFormat)
	}

	headers := make([]TypeHeader, len(resp.TypeHeaders))
	for i, h := range resp.TypeHeaders {
		headers[i] = TypeHeader(h)
	}

	rows := make([]RoomRow, len(resp.Rows))
	for i, r := range resp.Rows {
		rows[i] = RoomRow{
			RoomID:       r.RoomID,
			RoomNumber:   r.RoomNumber,
			RoomTypeID:   r.RoomTypeID,
			Housekeeping: string(r.Housekeeping),
			BaseRate:     r.BaseRate,
			Top:          r.Top,
			Height:       r.Height,
			PeakLanes:    r.PeakLanes,
		}
	}

	blocks := make([]Block, len(resp.Blocks))
	for i, b := range resp.Blocks {
		blocks[i] = Block(b)
	}

	connectors := make([]Connector, len(resp.Connectors))
	for i, c := range resp.Connectors {
		connectors[i] = Connector(c)
	}

	occupancy := make([]DayOccupancy, len(resp.DailyOccupancy))
	for i, o := range resp.DailyOccupancy {
		occupancy[i] = DayOccupancy{
			Date:          o.Date.Format(domain.DateFormat),
			OccupiedRooms: o.OccupiedRooms,
			TotalRooms:    o.TotalRooms,
			Percent:       o.Percent,
		}
	}

	availability := make([]AvailabilityCell, len(resp.Availability))
	for i, a := range resp.Availability {
		availability[i] = AvailabilityCell(a)
	}

	return &TimelineResponse{
		HotelID:        resp.HotelID,
		Days:           days,
		ColumnWidth:    resp.ColumnWidth,
		TotalWidth:     resp.TotalWidth,
		TotalHeight:    resp.TotalHeight,
		TypeHeaders:    headers,
		Rows:           rows,
		Blocks:         blocks,
		Connectors:     connectors,
		DailyOccupancy: occupancy,
		Availability:   availability,
	}
}

// ToUseCaseRequest создает запрос use case из параметров запроса
func ToUseCaseRequest(userID, hotelID int64, startStr, daysStr, roomTypeIDStr, columnWidthStr string) (*buildTimeline.Request, error) {
	start, err := time.Parse(domain.DateFormat, startStr)
	if err != nil {
		return nil, err
	}

	days, err := strconv.Atoi(daysStr)
	if err != nil {
		return nil, err
	}

	req := &buildTimeline.Request{
		UserID:    userID,
		HotelID:   hotelID,
		StartDate: start,
		Days:      days,
	}

	if roomTypeIDStr != "" {
		roomTypeID, err := strconv.ParseInt(roomTypeIDStr, 10, 64)
		if err != nil {
			return nil, err
		}
		req.RoomTypeID = &roomTypeID
	}

	if columnWidthStr != "" {
		columnWidth, err := strconv.Atoi(columnWidthStr)
		if err != nil {
			return nil, err
		}
		req.ColumnWidth = columnWidth
	}

	return req, nil
}

package get_occupancy

import (
	"strconv"
	"time"

	"github.com/m04kA/HMS-FrontdeskService/internal/domain"
	getOccupancy "github.com/m04kA/HMS-FrontdeskService/internal/usecase/get_occupancy"
)

// OccupancyResponse HTTP response model
type OccupancyResponse struct {
	HotelID       int64  `json:"hotelId"`
	Date          string `json:"date"`
	OccupiedRooms int    `json:"occupiedRooms"`
	TotalRooms    int    `json:"totalRooms"`
	Percent       int    `json:"percent"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(hotelID int64, resp *getOccupancy.Response) *OccupancyResponse {
	return &OccupancyResponse{
		HotelID:       hotelID,
		Date:          resp.Date.Format(domain.DateFormat),
		OccupiedRooms: resp.OccupiedRooms,
		TotalRooms:    resp.TotalRooms,
		Percent:       resp.Percent,
	}
}

// ToUseCaseRequest создает запрос use case из параметров запроса
func ToUseCaseRequest(hotelID int64, dateStr, roomTypeIDStr string) (*getOccupancy.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	req := &getOccupancy.Request{
		HotelID: hotelID,
		Date:    date,
	}

	if roomTypeIDStr != "" {
		roomTypeID, err := strconv.ParseInt(roomTypeIDStr, 10, 64)
		if err != nil {
			return nil, err
		}
		req.RoomTypeID = &roomTypeID
	}

	return req, nil
}

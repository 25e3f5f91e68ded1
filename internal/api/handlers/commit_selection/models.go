package commit_selection

import (
	"time"

	"github.com/m04kA/HMS-FrontdeskService/internal/domain"
	commitSelection "github.com/m04kA/HMS-FrontdeskService/internal/usecase/commit_selection"
)

// CommitSelectionRequest HTTP request model
type CommitSelectionRequest struct {
	WindowFrom string `json:"windowFrom"` // Первый день окна, "2025-10-15"
	WindowDays int    `json:"windowDays"`
	StartCol   int    `json:"startCol"`
	EndCol     int    `json:"endCol"`
	GuestName  string `json:"guestName"`
	GuestCount int    `json:"guestCount"`
}

// CommitSelectionResponse HTTP response model
type CommitSelectionResponse struct {
	ReservationID int64  `json:"reservationId"`
	RoomID        int64  `json:"roomId"`
	RoomNumber    string `json:"roomNumber"`
	RoomTypeID    int64  `json:"roomTypeId"`
	RoomTypeName  string `json:"roomTypeName"`
	StartDate     string `json:"startDate"`
	EndDate       string `json:"endDate"` // Эксклюзивный конец диапазона
	Nights        int    `json:"nights"`

	CreatedAt time.Time `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CommitSelectionRequest) ToUseCaseRequest(userID, hotelID, roomID int64) (*commitSelection.Request, error) {
	windowFrom, err := time.Parse(domain.DateFormat, r.WindowFrom)
	if err != nil {
		return nil, err
	}

	return &commitSelection.Request{
		UserID:     userID,
		HotelID:    hotelID,
		RoomID:     roomID,
		WindowFrom: windowFrom,
		WindowDays: r.WindowDays,
		StartCol:   r.StartCol,
		EndCol:     r.EndCol,
		GuestName:  r.GuestName,
		GuestCount: r.GuestCount,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *commitSelection.Response) *CommitSelectionResponse {
	return &CommitSelectionResponse{
		ReservationID: resp.ReservationID,
		RoomID:        resp.RoomID,
		RoomNumber:    resp.RoomNumber,
		RoomTypeID:    resp.RoomTypeID,
		RoomTypeName:  resp.RoomTypeName,
		StartDate:     resp.StartDate.Format(domain.DateFormat),
		EndDate:       resp.EndDate.Format(domain.DateFormat),
		Nights:        resp.Nights,
		CreatedAt:     resp.CreatedAt,
	}
}

package models

import (
	"time"

	"github.com/m04kA/HMS-FrontdeskService/internal/domain"
)

// ReservationResponse ответ с карточкой брони для клика по блоку
type ReservationResponse struct {
	ID         int64  `json:"id"`
	HotelID    int64  `json:"hotelId"`
	RoomID     int64  `json:"roomId"`
	GuestName  string `json:"guestName"`
	GuestCount int    `json:"guestCount"`

	CheckIn  string  `json:"checkIn"`            // "2025-10-15"
	CheckOut *string `json:"checkOut,omitempty"` // nil = однодневная бронь
	Nights   int     `json:"nights"`             // 0 для однодневной

	Status      string  `json:"status"`
	StatusColor string  `json:"statusColor"`
	StayID      *string `json:"stayId,omitempty"`
	Source      *string `json:"source,omitempty"`
	AgentName   *string `json:"agentName,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FromDomainReservation конвертирует domain модель в DTO
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	if r == nil {
		return nil
	}

	resp := &ReservationResponse{
		ID:          r.ID,
		HotelID:     r.HotelID,
		RoomID:      r.RoomID,
		GuestName:   r.GuestName,
		GuestCount:  r.GuestCount,
		CheckIn:     r.CheckIn.Format(domain.DateFormat),
		Status:      string(r.Status),
		StatusColor: r.StatusColor,
		StayID:      r.StayID,
		Source:      r.Source,
		AgentName:   r.AgentName,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}

	if r.CheckOut != nil {
		checkOut := r.CheckOut.Format(domain.DateFormat)
		resp.CheckOut = &checkOut
		resp.Nights = int(r.CheckOutDay().Sub(r.CheckInDay()).Hours() / 24)
	}

	return resp
}

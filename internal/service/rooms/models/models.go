package models

import (
	"github.com/m04kA/HMS-FrontdeskService/internal/domain"
)

// Request модели

// UpdateHousekeepingRequest запрос на смену статуса уборки комнаты
type UpdateHousekeepingRequest struct {
	UserID int64  `json:"userId"`
	RoomID int64  `json:"roomId"`
	Status string `json:"status"`
}

// Response модели

// RoomResponse ответ с данными комнаты
type RoomResponse struct {
	ID           int64   `json:"id"`
	RoomTypeID   int64   `json:"roomTypeId"`
	Number       string  `json:"number"`
	BaseRate     float64 `json:"baseRate"`
	Housekeeping string  `json:"housekeeping"`

	// true, пока смена статуса уборки ещё не подтверждена PMS
	HousekeepingPending bool `json:"housekeepingPending,omitempty"`
}

// RoomTypeResponse ответ с типом комнаты и его комнатами
type RoomTypeResponse struct {
	ID    int64          `json:"id"`
	Name  string         `json:"name"`
	Rooms []RoomResponse `json:"rooms"`
}

// HierarchyResponse ответ с иерархией типов и комнат отеля
type HierarchyResponse struct {
	HotelID   int64              `json:"hotelId"`
	RoomTypes []RoomTypeResponse `json:"roomTypes"`
}

// AvailabilityCellResponse количество свободных комнат типа на дату
type AvailabilityCellResponse struct {
	RoomTypeID     int64  `json:"roomTypeId"`
	Date           string `json:"date"` // "2025-10-15"
	AvailableRooms int    `json:"availableRooms"`
}

// AvailabilityResponse ответ с инвентарной сводкой за период
type AvailabilityResponse struct {
	HotelID int64                      `json:"hotelId"`
	Cells   []AvailabilityCellResponse `json:"cells"`
}

// HousekeepingResponse ответ на смену статуса уборки
type HousekeepingResponse struct {
	RoomID       int64  `json:"roomId"`
	Housekeeping string `json:"housekeeping"`
	Pending      bool   `json:"pending"`
}

// Методы конвертации

// FromDomainRoom конвертирует domain модель в DTO
// display - статус с учётом неподтверждённой оптимистичной смены
func FromDomainRoom(r *domain.Room, display domain.HousekeepingStatus, pending bool) RoomResponse {
	return RoomResponse{
		ID:                  r.ID,
		RoomTypeID:          r.RoomTypeID,
		Number:              r.Number,
		BaseRate:            r.BaseRate,
		Housekeeping:        string(display),
		HousekeepingPending: pending,
	}
}

// FromDomainAvailability конвертирует слайс domain моделей в DTO
func FromDomainAvailability(hotelID int64, items []*domain.RoomTypeAvailability) *AvailabilityResponse {
	cells := make([]AvailabilityCellResponse, 0, len(items))
	for _, item := range items {
		cells = append(cells, AvailabilityCellResponse{
			RoomTypeID:     item.RoomTypeID,
			Date:           item.Date,
			AvailableRooms: item.AvailableRooms,
		})
	}
	return &AvailabilityResponse{HotelID: hotelID, Cells: cells}
}

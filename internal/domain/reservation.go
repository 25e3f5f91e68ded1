package domain

import "time"

// ReservationStatus represents the lifecycle status of a reservation
type ReservationStatus string

const (
	StatusConfirmed  ReservationStatus = "confirmed"
	StatusCheckedIn  ReservationStatus = "checked_in"
	StatusCheckedOut ReservationStatus = "checked_out"
	StatusCancelled  ReservationStatus = "cancelled"
	StatusNoShow     ReservationStatus = "no_show"
)

// Reservation represents a guest reservation rendered on the front-desk grid
type Reservation struct {
	ID         int64
	HotelID    int64
	RoomID     int64
	GuestName  string
	GuestCount int

	CheckIn  time.Time
	CheckOut *time.Time // nil или равный заезду = однодневная бронь (одна ячейка)

	Status      ReservationStatus
	StatusColor string

	// StayID связывает сегменты одного проживания при переселении между комнатами
	StayID *string

	// Метаданные источника для бейджей на блоке
	Source    *string
	AgentName *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DayOf truncates t to local midnight; all grid placement works in whole days
func DayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// CheckInDay returns the check-in truncated to a calendar day
func (r *Reservation) CheckInDay() time.Time {
	return DayOf(r.CheckIn)
}

// CheckOutDay returns the check-out truncated to a calendar day.
// A missing check-out, or one before the check-in, normalizes to the
// check-in day (zero-length interval).
func (r *Reservation) CheckOutDay() time.Time {
	in := r.CheckInDay()
	if r.CheckOut == nil {
		return in
	}
	out := DayOf(*r.CheckOut)
	if out.Before(in) {
		return in
	}
	return out
}

// IsSameDay returns true if the reservation occupies exactly one date cell
func (r *Reservation) IsSameDay() bool {
	return r.CheckOutDay().Equal(r.CheckInDay())
}

// StackInterval returns the half-open [start, end) day interval used for
// lane stacking and occupancy. A zero-length interval widens to one day so
// a same-day reservation still claims its cell.
func (r *Reservation) StackInterval() (time.Time, time.Time) {
	start := r.CheckInDay()
	end := r.CheckOutDay()
	if !end.After(start) {
		end = start.AddDate(0, 0, 1)
	}
	return start, end
}

// OccupiesDay returns true if the reservation occupies the room on the given day
func (r *Reservation) OccupiesDay(day time.Time) bool {
	d := DayOf(day)
	start, end := r.StackInterval()
	return !d.Before(start) && d.Before(end)
}

// ConflictsWith returns true if two reservations cannot share a lane:
// their stacking intervals overlap. Intervals are half-open, so a
// check-out on the other's check-in day is not a conflict.
func (r *Reservation) ConflictsWith(other *Reservation) bool {
	aStart, aEnd := r.StackInterval()
	bStart, bEnd := other.StackInterval()
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// IsActive returns true if the reservation occupies its room
func (r *Reservation) IsActive() bool {
	for _, s := range InactiveStatuses {
		if r.Status == s {
			return false
		}
	}
	return true
}

// HotelReservationsFilter фильтр выборки броней отеля
type HotelReservationsFilter struct {
	HotelID         int64      // Обязательный параметр
	RoomID          *int64     // Фильтр по комнате (опционально)
	RoomTypeID      *int64     // Фильтр по типу комнат (опционально)
	StartDate       *time.Time // Начало периода пересечения (опционально)
	EndDate         *time.Time // Конец периода пересечения, эксклюзивный (опционально)
	IncludeInactive bool       // Включать ли отменённые и no-show брони
}

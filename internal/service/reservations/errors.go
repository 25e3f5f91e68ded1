package reservations

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронь не найдена
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)

package pmsservice

import "errors"

var (
	// ErrHotelNotFound возвращается, когда отель не найден в PMS
	ErrHotelNotFound = errors.New("pmsservice client: hotel not found")

	// ErrRoomNotFound возвращается, когда комната не найдена в PMS
	ErrRoomNotFound = errors.New("pmsservice client: room not found")

	// ErrStatusRejected возвращается, когда PMS отклонила смену статуса уборки
	// Вызывающая сторона должна откатить оптимистичное значение
	ErrStatusRejected = errors.New("pmsservice client: housekeeping status change rejected")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("pmsservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("pmsservice client: invalid response")
)

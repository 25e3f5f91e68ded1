package rooms

import "errors"

var (
	// ErrRoomNotFound возвращается, когда комната не найдена
	ErrRoomNotFound = errors.New("room not found")

	// ErrHotelNotFound возвращается, когда отель не найден в PMS
	ErrHotelNotFound = errors.New("hotel not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrStatusRejected возвращается, когда PMS отклонила смену статуса уборки
	ErrStatusRejected = errors.New("housekeeping status rejected")

	// ErrInvalidStatus возвращается при попытке установить недопустимый статус уборки
	ErrInvalidStatus = errors.New("invalid housekeeping status")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)

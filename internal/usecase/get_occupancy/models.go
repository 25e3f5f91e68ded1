package get_occupancy

import "time"

// Request модель запроса загрузки отеля на дату
type Request struct {
	HotelID    int64     // ID отеля
	Date       time.Time // День, за который считается загрузка
	RoomTypeID *int64    // Опциональный фильтр по типу комнаты
}

// Response модель ответа с загрузкой за день
type Response struct {
	Date          time.Time // День
	OccupiedRooms int       // Количество занятых комнат
	TotalRooms    int       // Общее количество комнат
	Percent       int       // Процент загрузки, округлённый до целого
}

package commit_selection

import "time"

// Request модель запроса на фиксацию выделенного диапазона.
// StartCol и EndCol - индексы колонок от StartDate окна, в том порядке,
// в котором шло перетаскивание: EndCol < StartCol - валидный обратный drag.
type Request struct {
	UserID     int64     // ID сотрудника
	HotelID    int64     // ID отеля
	RoomID     int64     // ID комнаты (строка, в которой шло выделение)
	WindowFrom time.Time // Первый день видимого окна
	WindowDays int       // Количество дней окна
	StartCol   int       // Колонка, где нажата кнопка
	EndCol     int       // Колонка, где кнопка отпущена
	GuestName  string    // Имя гостя для черновика брони
	GuestCount int       // Количество гостей
}

// Response модель ответа с созданной бронью-черновиком
type Response struct {
	ReservationID int64     // ID созданной брони
	RoomID        int64     // ID комнаты
	RoomNumber    string    // Номер комнаты
	RoomTypeID    int64     // ID типа комнаты
	RoomTypeName  string    // Название типа
	StartDate     time.Time // Первый день диапазона
	EndDate       time.Time // Эксклюзивный конец: день после последней ячейки
	Nights        int       // Количество ночей
	CreatedAt     time.Time // Время создания
}

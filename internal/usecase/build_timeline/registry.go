package build_timeline

import "github.com/m04kA/HMS-FrontdeskService/internal/domain"

// roomRegistry сплющивает иерархию тип → комнаты в таблицы поиска.
// Чистая функция от входа; пересобирается на каждый рендер, состояние
// между рендерами не переносится.
type roomRegistry struct {
	types     []*domain.RoomType
	flatRooms []*domain.Room
	typeOf    map[int64]*domain.RoomType
	rowOffset map[int64]int // количество строк (заголовки + комнаты) над комнатой
}

func newRoomRegistry(types []*domain.RoomType) *roomRegistry {
	reg := &roomRegistry{
		types:     types,
		flatRooms: make([]*domain.Room, 0),
		typeOf:    make(map[int64]*domain.RoomType),
		rowOffset: make(map[int64]int),
	}

	offset := 0
	for _, rt := range types {
		offset++ // строка-заголовок типа
		for _, rm := range rt.Rooms {
			reg.typeOf[rm.ID] = rt
			reg.rowOffset[rm.ID] = offset
			reg.flatRooms = append(reg.flatRooms, rm)
			offset++
		}
	}
	return reg
}

// hasRoom сообщает, известна ли комната
// Брони неизвестных комнат молча исключаются из раскладки и загрузки
func (r *roomRegistry) hasRoom(roomID int64) bool {
	_, ok := r.typeOf[roomID]
	return ok
}

// roomTypeOf возвращает тип комнаты или nil
func (r *roomRegistry) roomTypeOf(roomID int64) *domain.RoomType {
	return r.typeOf[roomID]
}

// rowOffsetOf возвращает количество строк над комнатой или -1
func (r *roomRegistry) rowOffsetOf(roomID int64) int {
	if off, ok := r.rowOffset[roomID]; ok {
		return off
	}
	return -1
}

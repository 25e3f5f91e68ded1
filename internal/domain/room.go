package domain

// HousekeepingStatus represents the housekeeping state of a room
type HousekeepingStatus string

const (
	HousekeepingClean          HousekeepingStatus = "clean"
	HousekeepingDirty          HousekeepingStatus = "dirty"
	HousekeepingWorkInProgress HousekeepingStatus = "work_in_progress"
	HousekeepingOccupiedClean  HousekeepingStatus = "occupied_clean"
	HousekeepingOccupiedDirty  HousekeepingStatus = "occupied_dirty"
	HousekeepingUnknown        HousekeepingStatus = "unknown"
)

// IsValid returns true for a known housekeeping status code
func (s HousekeepingStatus) IsValid() bool {
	switch s {
	case HousekeepingClean, HousekeepingDirty, HousekeepingWorkInProgress,
		HousekeepingOccupiedClean, HousekeepingOccupiedDirty, HousekeepingUnknown:
		return true
	default:
		return false
	}
}

// Room represents a physical room; read-only input for the grid per render
type Room struct {
	ID           int64
	HotelID      int64
	RoomTypeID   int64
	Number       string
	BaseRate     float64
	Housekeeping HousekeepingStatus
}

// RoomType represents a room category with its ordered rooms.
// Room order inside the type and type order inside the hotel determine
// vertical row order in the grid.
type RoomType struct {
	ID        int64
	HotelID   int64
	Name      string
	SortOrder int
	Rooms     []*Room
}

// RoomTypeAvailability инвентарная строка сводки: сколько комнат типа
// свободно на дату (только для отображения, не участвует в раскладке)
type RoomTypeAvailability struct {
	RoomTypeID     int64
	Date           string // YYYY-MM-DD
	AvailableRooms int
}

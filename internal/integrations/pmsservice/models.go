package pmsservice

// Hotel модель отеля из PMS
type Hotel struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Timezone   string  `json:"timezone"`
	ManagerIDs []int64 `json:"managerIds"`
}

// housekeepingUpdateRequest тело запроса на смену статуса уборки
type housekeepingUpdateRequest struct {
	Status string `json:"status"`
}

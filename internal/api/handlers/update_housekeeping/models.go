package update_housekeeping

// UpdateHousekeepingRequest HTTP request model
type UpdateHousekeepingRequest struct {
	Status string `json:"status"`
}

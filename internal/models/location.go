package models

// Location is a coordinate pair persisted as a single JSON value.
// Both keys are always present in responses; a missing coordinate is null.
type Location struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

package repositories

import (
	"encoding/json"

	"travelsuzBack/internal/models"
)

// marshalLocation renders the coordinate pair for the JSON column, NULL when
// the entity has no location.
func marshalLocation(loc *models.Location) (interface{}, error) {
	if loc == nil {
		return nil, nil
	}
	return json.Marshal(loc)
}

func unmarshalLocation(raw []byte) (*models.Location, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var loc models.Location
	if err := json.Unmarshal(raw, &loc); err != nil {
		return nil, err
	}
	return &loc, nil
}

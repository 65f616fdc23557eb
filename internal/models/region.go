package models

import (
	"time"
)

type Region struct {
	ID        int           `json:"id"`
	Name      LocalizedText `json:"name"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt *time.Time    `json:"updated_at,omitempty"`
}

// RegionView is the flat, single-language list representation.
type RegionView struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func (r Region) Localize(lang Language) RegionView {
	return RegionView{ID: r.ID, Name: r.Name.Resolve(lang)}
}

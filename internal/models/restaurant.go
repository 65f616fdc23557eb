package models

import (
	"time"
)

type Restaurant struct {
	ID          int           `json:"id"`
	Name        LocalizedText `json:"name"`
	Description LocalizedText `json:"description"`
	Address     LocalizedText `json:"address"`
	Category    LocalizedText `json:"category"`
	PriceRange  LocalizedText `json:"price_range"`
	PhoneNumber string        `json:"phone_number"`
	OpeningTime string        `json:"opening_time,omitempty"`
	ClosingTime string        `json:"closing_time,omitempty"`
	RegionID    int           `json:"region"`
	RegionName  LocalizedText `json:"-"`
	Location    *Location     `json:"location"`
	Images      []Image       `json:"images"`
	Views       int           `json:"views"`
	CreatedAt   time.Time     `json:"created_at"`
}

type RestaurantView struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Address     string    `json:"address"`
	Category    string    `json:"category"`
	PriceRange  string    `json:"price_range"`
	PhoneNumber string    `json:"phone_number"`
	OpeningTime string    `json:"opening_time,omitempty"`
	ClosingTime string    `json:"closing_time,omitempty"`
	Images      []string  `json:"images"`
	Location    *Location `json:"location"`
	Region      string    `json:"region"`
	Views       int       `json:"views"`
	CreatedAt   time.Time `json:"created_at"`
}

func (r Restaurant) Localize(lang Language) RestaurantView {
	return RestaurantView{
		ID:          r.ID,
		Name:        r.Name.Resolve(lang),
		Description: r.Description.Resolve(lang),
		Address:     r.Address.Resolve(lang),
		Category:    r.Category.Resolve(lang),
		PriceRange:  r.PriceRange.Resolve(lang),
		PhoneNumber: r.PhoneNumber,
		OpeningTime: r.OpeningTime,
		ClosingTime: r.ClosingTime,
		Images:      Paths(r.Images),
		Location:    r.Location,
		Region:      r.RegionName.Resolve(lang),
		Views:       r.Views,
		CreatedAt:   r.CreatedAt,
	}
}

package models

import (
	"time"
)

type Travel struct {
	ID          int           `json:"id"`
	Title       LocalizedText `json:"title"`
	Description LocalizedText `json:"description"`
	Address     LocalizedText `json:"address"`
	PlaceType   string        `json:"place_type"`
	TicketPrice *string       `json:"ticket_price"`
	RegionID    int           `json:"region"`
	RegionName  LocalizedText `json:"-"`
	Location    *Location     `json:"location"`
	Images      []Image       `json:"images"`
	Views       int           `json:"views"`
	CreatedAt   time.Time     `json:"created_at"`
}

type TravelView struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Address     string    `json:"address"`
	PlaceType   string    `json:"place_type"`
	TicketPrice *string   `json:"ticket_price"`
	Images      []string  `json:"images"`
	Location    *Location `json:"location"`
	Region      string    `json:"region"`
	Views       int       `json:"views"`
	CreatedAt   time.Time `json:"created_at"`
}

func (t Travel) Localize(lang Language) TravelView {
	return TravelView{
		ID:          t.ID,
		Title:       t.Title.Resolve(lang),
		Description: t.Description.Resolve(lang),
		Address:     t.Address.Resolve(lang),
		PlaceType:   t.PlaceType,
		TicketPrice: t.TicketPrice,
		Images:      Paths(t.Images),
		Location:    t.Location,
		Region:      t.RegionName.Resolve(lang),
		Views:       t.Views,
		CreatedAt:   t.CreatedAt,
	}
}

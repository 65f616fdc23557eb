package models

import (
	"strconv"
	"time"
)

type Hotel struct {
	ID           int           `json:"id"`
	Title        LocalizedText `json:"title"`
	Description  LocalizedText `json:"description"`
	Address      LocalizedText `json:"address"`
	PhoneNumber  string        `json:"phone_number"`
	PhoneNumber2 string        `json:"phone_number_2,omitempty"`
	Price        string        `json:"price"`
	RegionID     int           `json:"region"`
	RegionName   LocalizedText `json:"-"`
	Location     *Location     `json:"location"`
	Images       []Image       `json:"images"`
	Views        int           `json:"views"`
	CreatedAt    time.Time     `json:"created_at"`
}

// HotelView is the flat, single-language representation served by list and
// detail endpoints.
type HotelView struct {
	ID           int       `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Address      string    `json:"address"`
	PhoneNumber  string    `json:"phone_number"`
	PhoneNumber2 string    `json:"phone_number_2,omitempty"`
	Price        string    `json:"price"`
	Images       []string  `json:"images"`
	Location     *Location `json:"location"`
	Region       string    `json:"region"`
	Views        int       `json:"views"`
	CreatedAt    time.Time `json:"created_at"`
}

func (h Hotel) Localize(lang Language) HotelView {
	return HotelView{
		ID:           h.ID,
		Title:        h.Title.Resolve(lang),
		Description:  h.Description.Resolve(lang),
		Address:      h.Address.Resolve(lang),
		PhoneNumber:  h.PhoneNumber,
		PhoneNumber2: h.PhoneNumber2,
		Price:        h.Price,
		Images:       Paths(h.Images),
		Location:     h.Location,
		Region:       h.RegionName.Resolve(lang),
		Views:        h.Views,
		CreatedAt:    h.CreatedAt,
	}
}

// ValidatePrice accepts a positive decimal string such as "150000" or
// "150000.50".
func ValidatePrice(s string) error {
	if s == "" {
		return ErrInvalidPrice
	}
	price, err := strconv.ParseFloat(s, 64)
	if err != nil || price <= 0 {
		return ErrInvalidPrice
	}
	return nil
}

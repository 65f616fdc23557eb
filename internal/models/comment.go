package models

import (
	"time"
)

// Comment is free-text public feedback attached to a content entity.
// Comments are append-only: there is no update or delete operation.
type Comment struct {
	ID        int       `json:"id"`
	ParentID  int       `json:"-"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// Per-entity views name the foreign key after the parent entity.

type HotelComment struct {
	Comment
	HotelID int `json:"hotel_id"`
}

func (c Comment) ForHotel() HotelComment {
	return HotelComment{Comment: c, HotelID: c.ParentID}
}

type RestaurantComment struct {
	Comment
	RestaurantID int `json:"restaurant_id"`
}

func (c Comment) ForRestaurant() RestaurantComment {
	return RestaurantComment{Comment: c, RestaurantID: c.ParentID}
}

type TravelComment struct {
	Comment
	TravelID int `json:"travel_id"`
}

func (c Comment) ForTravel() TravelComment {
	return TravelComment{Comment: c, TravelID: c.ParentID}
}

package models

import (
	"errors"
)

var (
	ErrRegionNotFound     = errors.New("models: region not found")
	ErrHotelNotFound      = errors.New("models: hotel not found")
	ErrRestaurantNotFound = errors.New("models: restaurant not found")
	ErrTravelNotFound     = errors.New("models: travel not found")
	ErrUserNotFound       = errors.New("models: user not found")
	ErrSessionNotFound    = errors.New("models: session not found")

	ErrRegionInUse        = errors.New("models: region is referenced by content")
	ErrDuplicateUsername  = errors.New("models: duplicate username")
	ErrInvalidCredentials = errors.New("models: invalid credentials")
	ErrInvalidPrice       = errors.New("models: invalid price")
	ErrSelfDelete         = errors.New("models: cannot delete own account")
)

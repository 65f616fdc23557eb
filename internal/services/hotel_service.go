package services

import (
	"context"

	"travelsuzBack/internal/models"
	"travelsuzBack/internal/repositories"
)

type HotelService struct {
	HotelRepo *repositories.HotelRepository
}

func (s *HotelService) CreateHotel(ctx context.Context, hotel models.Hotel) (models.Hotel, error) {
	if err := models.ValidatePrice(hotel.Price); err != nil {
		return models.Hotel{}, err
	}
	return s.HotelRepo.CreateHotel(ctx, hotel)
}

func (s *HotelService) GetHotels(ctx context.Context, regionID int) ([]models.Hotel, error) {
	return s.HotelRepo.GetHotels(ctx, regionID)
}

func (s *HotelService) GetHotelByID(ctx context.Context, id int) (models.Hotel, error) {
	return s.HotelRepo.GetHotelByID(ctx, id)
}

// GetHotelDetail counts the read before returning the record.
func (s *HotelService) GetHotelDetail(ctx context.Context, id int) (models.Hotel, error) {
	if err := s.HotelRepo.IncrementViews(ctx, id); err != nil {
		return models.Hotel{}, err
	}
	return s.HotelRepo.GetHotelByID(ctx, id)
}

func (s *HotelService) UpdateHotel(ctx context.Context, hotel models.Hotel, replaceImages bool, images []models.Image) (models.Hotel, error) {
	if err := models.ValidatePrice(hotel.Price); err != nil {
		return models.Hotel{}, err
	}
	if err := s.HotelRepo.UpdateHotel(ctx, hotel, replaceImages, images); err != nil {
		return models.Hotel{}, err
	}
	return s.HotelRepo.GetHotelByID(ctx, hotel.ID)
}

func (s *HotelService) DeleteHotel(ctx context.Context, id int) error {
	return s.HotelRepo.DeleteHotel(ctx, id)
}

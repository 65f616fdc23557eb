package services

import (
	"context"

	"travelsuzBack/internal/models"
	"travelsuzBack/internal/repositories"
)

type TravelService struct {
	TravelRepo *repositories.TravelRepository
}

func (s *TravelService) CreateTravel(ctx context.Context, tr models.Travel) (models.Travel, error) {
	if tr.TicketPrice != nil {
		if err := models.ValidatePrice(*tr.TicketPrice); err != nil {
			return models.Travel{}, err
		}
	}
	return s.TravelRepo.CreateTravel(ctx, tr)
}

func (s *TravelService) GetTravels(ctx context.Context, regionID int) ([]models.Travel, error) {
	return s.TravelRepo.GetTravels(ctx, regionID)
}

func (s *TravelService) GetTravelByID(ctx context.Context, id int) (models.Travel, error) {
	return s.TravelRepo.GetTravelByID(ctx, id)
}

func (s *TravelService) GetTravelDetail(ctx context.Context, id int) (models.Travel, error) {
	if err := s.TravelRepo.IncrementViews(ctx, id); err != nil {
		return models.Travel{}, err
	}
	return s.TravelRepo.GetTravelByID(ctx, id)
}

func (s *TravelService) UpdateTravel(ctx context.Context, tr models.Travel, replaceImages bool, images []models.Image) (models.Travel, error) {
	if tr.TicketPrice != nil {
		if err := models.ValidatePrice(*tr.TicketPrice); err != nil {
			return models.Travel{}, err
		}
	}
	if err := s.TravelRepo.UpdateTravel(ctx, tr, replaceImages, images); err != nil {
		return models.Travel{}, err
	}
	return s.TravelRepo.GetTravelByID(ctx, tr.ID)
}

func (s *TravelService) DeleteTravel(ctx context.Context, id int) error {
	return s.TravelRepo.DeleteTravel(ctx, id)
}

package services

import (
	"context"

	"travelsuzBack/internal/models"
	"travelsuzBack/internal/repositories"
)

type RestaurantService struct {
	RestaurantRepo *repositories.RestaurantRepository
}

func (s *RestaurantService) CreateRestaurant(ctx context.Context, rest models.Restaurant) (models.Restaurant, error) {
	return s.RestaurantRepo.CreateRestaurant(ctx, rest)
}

func (s *RestaurantService) GetRestaurants(ctx context.Context, regionID int) ([]models.Restaurant, error) {
	return s.RestaurantRepo.GetRestaurants(ctx, regionID)
}

func (s *RestaurantService) GetRestaurantByID(ctx context.Context, id int) (models.Restaurant, error) {
	return s.RestaurantRepo.GetRestaurantByID(ctx, id)
}

func (s *RestaurantService) GetRestaurantDetail(ctx context.Context, id int) (models.Restaurant, error) {
	if err := s.RestaurantRepo.IncrementViews(ctx, id); err != nil {
		return models.Restaurant{}, err
	}
	return s.RestaurantRepo.GetRestaurantByID(ctx, id)
}

func (s *RestaurantService) UpdateRestaurant(ctx context.Context, rest models.Restaurant, replaceImages bool, images []models.Image) (models.Restaurant, error) {
	if err := s.RestaurantRepo.UpdateRestaurant(ctx, rest, replaceImages, images); err != nil {
		return models.Restaurant{}, err
	}
	return s.RestaurantRepo.GetRestaurantByID(ctx, rest.ID)
}

func (s *RestaurantService) DeleteRestaurant(ctx context.Context, id int) error {
	return s.RestaurantRepo.DeleteRestaurant(ctx, id)
}

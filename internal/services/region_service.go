package services

import (
	"context"

	"travelsuzBack/internal/models"
	"travelsuzBack/internal/repositories"
)

type RegionService struct {
	RegionRepo *repositories.RegionRepository
}

func (s *RegionService) CreateRegion(ctx context.Context, region models.Region) (models.Region, error) {
	return s.RegionRepo.CreateRegion(ctx, region)
}

func (s *RegionService) GetRegions(ctx context.Context) ([]models.Region, error) {
	return s.RegionRepo.GetRegions(ctx)
}

func (s *RegionService) GetRegionByID(ctx context.Context, id int) (models.Region, error) {
	return s.RegionRepo.GetRegionByID(ctx, id)
}

func (s *RegionService) UpdateRegion(ctx context.Context, region models.Region) (models.Region, error) {
	return s.RegionRepo.UpdateRegion(ctx, region)
}

func (s *RegionService) DeleteRegion(ctx context.Context, id int) error {
	return s.RegionRepo.DeleteRegion(ctx, id)
}

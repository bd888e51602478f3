package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"alugacar-backend/internal/cache"
	"alugacar-backend/internal/domain"
	"alugacar-backend/internal/logger"
	"alugacar-backend/internal/repository"
)

const categoryCacheTTL = 10 * time.Minute

type catalogService struct {
	categoryRepo repository.CategoryRepository
	vehicleRepo  repository.VehicleRepository
	cache        cache.Client
}

// NewCatalogService builds the catalog service. cacheClient may be nil, in
// which case all reads go straight to the database.
func NewCatalogService(categoryRepo repository.CategoryRepository, vehicleRepo repository.VehicleRepository, cacheClient cache.Client) CatalogService {
	return &catalogService{
		categoryRepo: categoryRepo,
		vehicleRepo:  vehicleRepo,
		cache:        cacheClient,
	}
}

func categoryCacheKey(code domain.CategoryCode) string {
	return "category:" + string(code)
}

func (s *catalogService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.categoryRepo.List(ctx)
}

func (s *catalogService) GetCategory(ctx context.Context, code domain.CategoryCode) (*domain.Category, error) {
	if s.cache != nil {
		raw, err := s.cache.Get(ctx, categoryCacheKey(code))
		if err == nil {
			var category domain.Category
			if err := json.Unmarshal([]byte(raw), &category); err == nil {
				return &category, nil
			}
		} else if !errors.Is(err, cache.ErrCacheMiss) {
			logger.Warn("category cache read failed", "code", code, "error", err)
		}
	}

	category, err := s.categoryRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if data, err := json.Marshal(category); err == nil {
			if err := s.cache.Set(ctx, categoryCacheKey(code), data, categoryCacheTTL); err != nil {
				logger.Warn("category cache write failed", "code", code, "error", err)
			}
		}
	}
	return category, nil
}

func (s *catalogService) SaveCategory(ctx context.Context, category *domain.Category) error {
	if !category.Code.Valid() {
		return domain.ErrCategoryNotFound
	}
	if err := s.categoryRepo.Save(ctx, category); err != nil {
		return fmt.Errorf("failed to save category: %w", err)
	}
	if s.cache != nil {
		if err := s.cache.Delete(ctx, categoryCacheKey(category.Code)); err != nil {
			logger.Warn("category cache invalidation failed", "code", category.Code, "error", err)
		}
	}
	return nil
}

func (s *catalogService) AddVehicle(ctx context.Context, cmd AddVehicleCommand) (*domain.Vehicle, error) {
	if _, err := s.categoryRepo.GetByCode(ctx, cmd.Category); err != nil {
		return nil, err
	}

	vehicle, err := domain.NewVehicle(cmd.Plate, cmd.Model, cmd.Category, cmd.City, cmd.DailyRateCents)
	if err != nil {
		return nil, err
	}

	if err := s.vehicleRepo.Save(ctx, vehicle); err != nil {
		return nil, fmt.Errorf("failed to save vehicle: %w", err)
	}
	logger.Info("vehicle onboarded", "plate", vehicle.Plate, "category", vehicle.Category)
	return vehicle, nil
}

func (s *catalogService) GetVehicle(ctx context.Context, plate string) (*domain.Vehicle, error) {
	return s.vehicleRepo.GetByPlate(ctx, plate)
}

func (s *catalogService) ListAvailableVehicles(ctx context.Context, category domain.CategoryCode, city string) ([]domain.Vehicle, error) {
	return s.vehicleRepo.ListAvailable(ctx, category, city)
}

func (s *catalogService) DecommissionVehicle(ctx context.Context, plate string) (*domain.Vehicle, error) {
	vehicle, err := s.vehicleRepo.GetByPlate(ctx, plate)
	if err != nil {
		return nil, err
	}
	if err := vehicle.Decommission(); err != nil {
		return nil, err
	}
	if err := s.vehicleRepo.Save(ctx, vehicle); err != nil {
		return nil, fmt.Errorf("failed to update vehicle: %w", err)
	}
	logger.Info("vehicle decommissioned", "plate", vehicle.Plate)
	return vehicle, nil
}

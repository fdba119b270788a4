package catalog

import (
	"context"
	"fmt"

	"storefront/internal/logger"
	"storefront/internal/models"
)

// Repository is the storage contract the catalog service depends on.
type Repository interface {
	List(ctx context.Context) ([]models.MenuItem, error)
	Get(ctx context.Context, id int64) (*models.MenuItem, error)
	Count(ctx context.Context) (int, error)
	Insert(ctx context.Context, item models.MenuItem) error
}

// seedItems is the fixed catalog inserted on first start.
var seedItems = []models.MenuItem{
	{Name: "Chicken Rice", Category: models.CategoryMain, Price: 850, ImageURL: "https://images.unsplash.com/photo-1617093727343-374698b1b08d?w=600"},
	{Name: "Beef Paella", Category: models.CategoryMain, Price: 1200, ImageURL: "https://images.unsplash.com/photo-1534080564583-6be75777b70a?w=600"},
	{Name: "Brownie", Category: models.CategoryDessert, Price: 300, ImageURL: "https://images.unsplash.com/photo-1606313564200-e75d5e30476c?w=600"},
}

// Service implements the catalog store: listing, point lookup and
// idempotent seeding.
type Service struct {
	repo   Repository
	logger *logger.Logger
}

// NewService creates a new catalog service
func NewService(repo Repository, log *logger.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: log,
	}
}

// ListMenuItems returns all menu items ordered by id ascending.
func (s *Service) ListMenuItems(ctx context.Context) ([]models.MenuItem, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list menu items: %w", err)
	}
	return items, nil
}

// GetMenuItem returns the item with the given id, or nil when it does
// not exist.
func (s *Service) GetMenuItem(ctx context.Context, id int64) (*models.MenuItem, error) {
	item, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get menu item %d: %w", id, err)
	}
	return item, nil
}

// SeedIfEmpty inserts the fixed seed set when the catalog is empty. Safe to
// call on every process start: a populated catalog is left untouched, and
// the unique constraint on item name absorbs a concurrent first-start race.
func (s *Service) SeedIfEmpty(ctx context.Context) error {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("count menu items: %w", err)
	}
	if count > 0 {
		s.logger.Debug("seed_skipped", fmt.Sprintf("Catalog already has %d items", count), "startup", nil)
		return nil
	}

	for _, item := range seedItems {
		if err := s.repo.Insert(ctx, item); err != nil {
			return fmt.Errorf("seed menu item %q: %w", item.Name, err)
		}
	}

	s.logger.Info("catalog_seeded", fmt.Sprintf("Seeded catalog with %d items", len(seedItems)), "startup", nil)
	return nil
}

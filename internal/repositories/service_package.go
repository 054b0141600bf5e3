package repositories

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"hexadigitall/internal/models"
	"hexadigitall/internal/repositories/cache"
	"hexadigitall/internal/services/packages"
)

const (
	packageListKey  = "packages:all"
	packageSlugKey  = "packages:slug:"
	individualsKey  = "packages:individuals"
	packageCacheTTL = 5 * time.Minute
)

// ServicePackageRepository reads service package documents with a
// Redis read-through cache. Implements packages.Source.
type ServicePackageRepository struct {
	db     *gorm.DB
	cache  *cache.CacheService
	logger *zap.Logger
}

// NewServicePackageRepository creates a service package repository.
func NewServicePackageRepository(db *gorm.DB, cacheSvc *cache.CacheService, logger *zap.Logger) *ServicePackageRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ServicePackageRepository{db: db, cache: cacheSvc, logger: logger}
}

func (r *ServicePackageRepository) Groups(ctx context.Context) ([]models.ServicePackageGroup, error) {
	if r.cache != nil {
		var cached []models.ServicePackageGroup
		if err := r.cache.GetJSON(ctx, packageListKey, &cached); err == nil {
			return cached, nil
		}
	}

	var groups []models.ServicePackageGroup
	err := r.db.WithContext(ctx).
		Preload("Tiers", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Order("name").
		Find(&groups).Error
	if err != nil {
		return nil, err
	}

	if r.cache != nil {
		if err := r.cache.SetJSON(ctx, packageListKey, groups, packageCacheTTL); err != nil {
			r.logger.Warn("failed to cache package groups", zap.Error(err))
		}
	}
	return groups, nil
}

func (r *ServicePackageRepository) GroupBySlug(ctx context.Context, slug string) (*models.ServicePackageGroup, error) {
	key := packageSlugKey + slug
	if r.cache != nil {
		var cached models.ServicePackageGroup
		if err := r.cache.GetJSON(ctx, key, &cached); err == nil {
			return &cached, nil
		}
	}

	var group models.ServicePackageGroup
	err := r.db.WithContext(ctx).
		Preload("Tiers", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Where("slug = ?", slug).
		First(&group).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, packages.ErrGroupNotFound
		}
		return nil, err
	}

	if r.cache != nil {
		if err := r.cache.SetJSON(ctx, key, group, packageCacheTTL); err != nil {
			r.logger.Warn("failed to cache package group", zap.Error(err), zap.String("slug", slug))
		}
	}
	return &group, nil
}

func (r *ServicePackageRepository) IndividualServices(ctx context.Context) ([]models.IndividualService, error) {
	if r.cache != nil {
		var cached []models.IndividualService
		if err := r.cache.GetJSON(ctx, individualsKey, &cached); err == nil {
			return cached, nil
		}
	}

	var services []models.IndividualService
	if err := r.db.WithContext(ctx).Order("name").Find(&services).Error; err != nil {
		return nil, err
	}

	if r.cache != nil {
		if err := r.cache.SetJSON(ctx, individualsKey, services, packageCacheTTL); err != nil {
			r.logger.Warn("failed to cache individual services", zap.Error(err))
		}
	}
	return services, nil
}

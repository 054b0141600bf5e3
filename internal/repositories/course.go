package repositories

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"hexadigitall/internal/models"
	"hexadigitall/internal/repositories/cache"
	"hexadigitall/internal/services/enrollment"
)

const (
	courseListKey  = "courses:all"
	courseSlugKey  = "courses:slug:"
	courseCacheTTL = 5 * time.Minute
)

// CourseRepository reads course documents with a Redis read-through
// cache. Implements enrollment.CourseSource.
type CourseRepository struct {
	db     *gorm.DB
	cache  *cache.CacheService
	logger *zap.Logger
}

// NewCourseRepository creates a course repository. Cache may be nil.
func NewCourseRepository(db *gorm.DB, cacheSvc *cache.CacheService, logger *zap.Logger) *CourseRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CourseRepository{db: db, cache: cacheSvc, logger: logger}
}

func (r *CourseRepository) Courses(ctx context.Context) ([]models.Course, error) {
	if r.cache != nil {
		var cached []models.Course
		if err := r.cache.GetJSON(ctx, courseListKey, &cached); err == nil {
			return cached, nil
		}
	}

	var courses []models.Course
	if err := r.db.WithContext(ctx).Preload("Category").Order("title").Find(&courses).Error; err != nil {
		return nil, err
	}

	if r.cache != nil {
		if err := r.cache.SetJSON(ctx, courseListKey, courses, courseCacheTTL); err != nil {
			r.logger.Warn("failed to cache course list", zap.Error(err))
		}
	}
	return courses, nil
}

func (r *CourseRepository) CourseBySlug(ctx context.Context, slug string) (*models.Course, error) {
	key := courseSlugKey + slug
	if r.cache != nil {
		var cached models.Course
		if err := r.cache.GetJSON(ctx, key, &cached); err == nil {
			return &cached, nil
		}
	}

	var course models.Course
	err := r.db.WithContext(ctx).Preload("Category").Where("slug = ?", slug).First(&course).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, enrollment.ErrCourseNotFound
		}
		return nil, err
	}

	if r.cache != nil {
		if err := r.cache.SetJSON(ctx, key, course, courseCacheTTL); err != nil {
			r.logger.Warn("failed to cache course", zap.Error(err), zap.String("slug", slug))
		}
	}
	return &course, nil
}

package categories

import (
	"context"
	"fmt"
	"sync"
	"time"
	"vasavimart-service/internal/app/contracts"
	"vasavimart-service/internal/app/models"
	"vasavimart-service/internal/pkg/constvars"
	"vasavimart-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// The category list changes rarely and backs the storefront home screen, so
// it is served from redis with a short TTL.
const categoriesCacheTTL = 10 * time.Minute

type categoryUsecase struct {
	CategoryRepository CategoryRepository
	RedisRepository    contracts.RedisRepository
	Log                *zap.Logger
}

var (
	categoryUsecaseInstance CategoryUsecase
	onceCategoryUsecase     sync.Once
)

func NewCategoryUsecase(
	categoryRepository CategoryRepository,
	redisRepository contracts.RedisRepository,
	logger *zap.Logger,
) CategoryUsecase {
	onceCategoryUsecase.Do(func() {
		categoryUsecaseInstance = &categoryUsecase{
			CategoryRepository: categoryRepository,
			RedisRepository:    redisRepository,
			Log:                logger,
		}
	})
	return categoryUsecaseInstance
}

func (uc *categoryUsecase) ListCategories(ctx context.Context) ([]models.Category, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	cached, err := uc.RedisRepository.Get(ctx, constvars.RedisKeyCategoriesCache)
	if err != nil {
		uc.Log.Error("categoryUsecase.ListCategories cache read failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
	if cached != "" {
		var categories []models.Category
		if err := json.Unmarshal([]byte(cached), &categories); err == nil {
			return categories, nil
		}
		uc.Log.Warn("categoryUsecase.ListCategories dropping unreadable cache entry",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		_ = uc.RedisRepository.Delete(ctx, constvars.RedisKeyCategoriesCache)
	}

	categories, err := uc.CategoryRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if err := uc.RedisRepository.Set(ctx, constvars.RedisKeyCategoriesCache, categories, categoriesCacheTTL); err != nil {
		uc.Log.Error("categoryUsecase.ListCategories cache write failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
	return categories, nil
}

func (uc *categoryUsecase) GetCategoryByName(ctx context.Context, name string) (*models.Category, error) {
	category, err := uc.CategoryRepository.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, exceptions.ErrCategoryNotFound(fmt.Errorf("no category named %q", name))
	}
	return category, nil
}

func (uc *categoryUsecase) GetCategoryByID(ctx context.Context, categoryID string) (*models.Category, error) {
	category, err := uc.CategoryRepository.FindByID(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, exceptions.ErrCategoryNotFound(fmt.Errorf("no category with id %s", categoryID))
	}
	return category, nil
}

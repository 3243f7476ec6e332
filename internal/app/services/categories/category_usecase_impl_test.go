package categories

import (
	"context"
	"testing"
	"time"
	"vasavimart-service/internal/app/models"
	"vasavimart-service/internal/pkg/constvars"
	"vasavimart-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) FindAll(ctx context.Context) ([]models.Category, error) {
	args := m.Called(ctx)
	categories, _ := args.Get(0).([]models.Category)
	return categories, args.Error(1)
}

func (m *MockCategoryRepository) FindByName(ctx context.Context, name string) (*models.Category, error) {
	args := m.Called(ctx, name)
	category, _ := args.Get(0).(*models.Category)
	return category, args.Error(1)
}

func (m *MockCategoryRepository) FindByID(ctx context.Context, categoryID string) (*models.Category, error) {
	args := m.Called(ctx, categoryID)
	category, _ := args.Get(0).(*models.Category)
	return category, args.Error(1)
}

type MockRedisRepository struct {
	mock.Mock
}

func (m *MockRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	args := m.Called(ctx, key, value, exp)
	return args.Error(0)
}

func (m *MockRedisRepository) SetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	args := m.Called(ctx, key, value, exp)
	return args.Bool(0), args.Error(1)
}

func (m *MockRedisRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockRedisRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func TestListCategories(t *testing.T) {
	sample := []models.Category{
		{ID: primitive.NewObjectID(), Name: "Groceries"},
		{ID: primitive.NewObjectID(), Name: "Dairy"},
	}

	t.Run("cache miss reads mongo and fills the cache", func(t *testing.T) {
		repo := new(MockCategoryRepository)
		redisRepo := new(MockRedisRepository)
		uc := &categoryUsecase{CategoryRepository: repo, RedisRepository: redisRepo, Log: zap.NewNop()}

		redisRepo.On("Get", mock.Anything, constvars.RedisKeyCategoriesCache).Return("", nil)
		repo.On("FindAll", mock.Anything).Return(sample, nil)
		redisRepo.On("Set", mock.Anything, constvars.RedisKeyCategoriesCache, sample, categoriesCacheTTL).Return(nil)

		categories, err := uc.ListCategories(context.Background())

		assert.NoError(t, err)
		assert.Len(t, categories, 2)
		repo.AssertExpectations(t)
		redisRepo.AssertExpectations(t)
	})

	t.Run("cache hit never touches mongo", func(t *testing.T) {
		repo := new(MockCategoryRepository)
		redisRepo := new(MockRedisRepository)
		uc := &categoryUsecase{CategoryRepository: repo, RedisRepository: redisRepo, Log: zap.NewNop()}

		cached, _ := json.Marshal(sample)
		redisRepo.On("Get", mock.Anything, constvars.RedisKeyCategoriesCache).Return(string(cached), nil)

		categories, err := uc.ListCategories(context.Background())

		assert.NoError(t, err)
		assert.Len(t, categories, 2)
		assert.Equal(t, "Groceries", categories[0].Name)
		repo.AssertNotCalled(t, "FindAll", mock.Anything)
	})

	t.Run("unreadable cache entry is dropped and mongo serves", func(t *testing.T) {
		repo := new(MockCategoryRepository)
		redisRepo := new(MockRedisRepository)
		uc := &categoryUsecase{CategoryRepository: repo, RedisRepository: redisRepo, Log: zap.NewNop()}

		redisRepo.On("Get", mock.Anything, constvars.RedisKeyCategoriesCache).Return("{not json", nil)
		redisRepo.On("Delete", mock.Anything, constvars.RedisKeyCategoriesCache).Return(nil)
		repo.On("FindAll", mock.Anything).Return(sample, nil)
		redisRepo.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

		categories, err := uc.ListCategories(context.Background())

		assert.NoError(t, err)
		assert.Len(t, categories, 2)
		redisRepo.AssertCalled(t, "Delete", mock.Anything, constvars.RedisKeyCategoriesCache)
	})

	t.Run("redis failure falls back to mongo", func(t *testing.T) {
		repo := new(MockCategoryRepository)
		redisRepo := new(MockRedisRepository)
		uc := &categoryUsecase{CategoryRepository: repo, RedisRepository: redisRepo, Log: zap.NewNop()}

		redisRepo.On("Get", mock.Anything, mock.Anything).Return("", assert.AnError)
		repo.On("FindAll", mock.Anything).Return(sample, nil)
		redisRepo.On("Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(assert.AnError)

		categories, err := uc.ListCategories(context.Background())

		assert.NoError(t, err)
		assert.Len(t, categories, 2)
	})
}

func TestGetCategory(t *testing.T) {
	t.Run("by name returns 404 when absent", func(t *testing.T) {
		repo := new(MockCategoryRepository)
		uc := &categoryUsecase{CategoryRepository: repo, RedisRepository: new(MockRedisRepository), Log: zap.NewNop()}

		repo.On("FindByName", mock.Anything, "Missing").Return(nil, nil)

		_, err := uc.GetCategoryByName(context.Background(), "Missing")

		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, 404, customErr.StatusCode)
	})

	t.Run("by id returns the category", func(t *testing.T) {
		repo := new(MockCategoryRepository)
		uc := &categoryUsecase{CategoryRepository: repo, RedisRepository: new(MockRedisRepository), Log: zap.NewNop()}

		id := primitive.NewObjectID()
		repo.On("FindByID", mock.Anything, id.Hex()).Return(&models.Category{ID: id, Name: "Dairy"}, nil)

		category, err := uc.GetCategoryByID(context.Background(), id.Hex())

		assert.NoError(t, err)
		assert.Equal(t, "Dairy", category.Name)
	})
}

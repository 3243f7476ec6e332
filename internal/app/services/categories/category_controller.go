package categories

import (
	"context"
	"net/http"
	"time"
	"vasavimart-service/internal/pkg/constvars"
	"vasavimart-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CategoryController struct {
	CategoryUsecase CategoryUsecase
	Log             *zap.Logger
}

func NewCategoryController(categoryUsecase CategoryUsecase, logger *zap.Logger) *CategoryController {
	return &CategoryController{
		CategoryUsecase: categoryUsecase,
		Log:             logger,
	}
}

func (ctrl *CategoryController) AllCategories(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	categories, err := ctrl.CategoryUsecase.ListCategories(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CategoriesFetchSuccess, categories)
}

func (ctrl *CategoryController) GetCategoryByName(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	category, err := ctrl.CategoryUsecase.GetCategoryByName(ctx, chi.URLParam(r, "categoryName"))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CategoryFetchedSuccess, category)
}

func (ctrl *CategoryController) GetCategoryByID(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	category, err := ctrl.CategoryUsecase.GetCategoryByID(ctx, chi.URLParam(r, "categoryId"))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CategoryFetchedSuccess, category)
}

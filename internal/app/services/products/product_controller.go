package products

import (
	"context"
	"net/http"
	"time"
	"vasavimart-service/internal/pkg/constvars"
	"vasavimart-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ProductController struct {
	ProductUsecase ProductUsecase
	Log            *zap.Logger
}

func NewProductController(productUsecase ProductUsecase, logger *zap.Logger) *ProductController {
	return &ProductController{
		ProductUsecase: productUsecase,
		Log:            logger,
	}
}

func (ctrl *ProductController) ListProducts(w http.ResponseWriter, r *http.Request) {
	pagination := utils.BuildPaginationRequest(r, constvars.ProductsPageSize)
	sortKey := r.URL.Query().Get("sort")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	products, total, err := ctrl.ProductUsecase.ListProducts(ctx, sortKey, pagination.Page)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	envelope := utils.BuildPaginationResponse(total, pagination.Page, constvars.ProductsPageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.ProductsFetchedSuccess, envelope, products)
}

func (ctrl *ProductController) ListAllProducts(w http.ResponseWriter, r *http.Request) {
	pagination := utils.BuildPaginationRequest(r, constvars.AllProductsPageSize)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	products, total, err := ctrl.ProductUsecase.ListAllProducts(ctx, pagination.Page)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	envelope := utils.BuildPaginationResponse(total, pagination.Page, constvars.AllProductsPageSize, r.URL.Path)
	utils.BuildSuccessResponseWithPagination(w, constvars.StatusOK, constvars.ProductsFetchedSuccess, envelope, products)
}

func (ctrl *ProductController) GetProductByID(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	product, err := ctrl.ProductUsecase.GetProductByID(ctx, chi.URLParam(r, "productId"))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ProductFetchedSuccess, product)
}

func (ctrl *ProductController) ListProductsByCategoryName(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	products, err := ctrl.ProductUsecase.ListProductsByCategoryName(ctx, chi.URLParam(r, "categoryName"))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ProductsFetchedSuccess, products)
}

package routers

import (
	"vasavimart-service/internal/app/services/categories"
	"vasavimart-service/internal/app/services/products"

	"github.com/go-chi/chi/v5"
)

// attachProductListingRoutes is the storefront listing with sort keys.
func attachProductListingRoutes(router chi.Router, productController *products.ProductController) {
	router.Get("/", productController.ListProducts)
}

// attachCatalogRoutes keeps the mobile app's legacy paths.
func attachCatalogRoutes(router chi.Router, productController *products.ProductController, categoryController *categories.CategoryController) {
	router.Get("/allProducts", productController.ListAllProducts)
	router.Get("/getProducts/{categoryName}", productController.ListProductsByCategoryName)

	router.Route("/category", func(r chi.Router) {
		r.Get("/allCategory", categoryController.AllCategories)
		r.Get("/getCategoryByName/{categoryName}", categoryController.GetCategoryByName)
		r.Get("/getCategoryById/{categoryId}", categoryController.GetCategoryByID)
	})

	router.Get("/{productId}", productController.GetProductByID)
}

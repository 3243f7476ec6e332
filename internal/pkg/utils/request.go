package utils

import (
	"net/http"
	"strconv"
	"vasavimart-service/internal/pkg/dto/requests"
)

func BuildPaginationRequest(r *http.Request, defaultPageSize int) *requests.Pagination {
	pageStr := r.URL.Query().Get("page")
	pageSizeStr := r.URL.Query().Get("page_size")

	page, err := strconv.Atoi(pageStr)
	if err != nil || page <= 0 {
		page = 1
	}

	pageSize, err := strconv.Atoi(pageSizeStr)
	if err != nil || pageSize <= 0 {
		pageSize = defaultPageSize
	}

	return &requests.Pagination{
		Page:     page,
		PageSize: pageSize,
	}
}

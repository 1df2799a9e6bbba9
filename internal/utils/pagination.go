package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	MinPage     = 1
	MaxPageSize = 100
)

// PaginationParams holds the pagination parameters. A Limit of zero means
// the listing is unbounded and returns the full sequence.
type PaginationParams struct {
	Page   int
	Limit  int
	Offset int
}

// PaginationResponse represents the pagination metadata in API responses
type PaginationResponse struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

// GetPaginationParams extracts and validates pagination parameters from the
// request. When no limit is supplied the listing stays unbounded.
func GetPaginationParams(c *gin.Context) PaginationParams {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	if page < MinPage {
		page = MinPage
	}
	if limit < 0 || limit > MaxPageSize {
		limit = MaxPageSize
	}

	offset := 0
	if limit > 0 {
		offset = (page - 1) * limit
	}

	return PaginationParams{
		Page:   page,
		Limit:  limit,
		Offset: offset,
	}
}

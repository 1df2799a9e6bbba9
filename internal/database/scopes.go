package database

import (
	"gorm.io/gorm"

	"usertaskapi/internal/utils"
)

// Paginate applies pagination to a GORM query. An unbounded params value
// (Limit zero) leaves the query untouched.
func Paginate(params utils.PaginationParams) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if params.Limit <= 0 {
			return db
		}
		return db.Offset(params.Offset).Limit(params.Limit)
	}
}

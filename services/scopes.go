package services

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultPageSize is the list page size when the caller sets none.
const DefaultPageSize = 10

// ownedBy is the mandatory owner predicate. Every lookup on an owned resource
// goes through it; a query without it would leak other users' data.
func ownedBy(ownerID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ?", ownerID)
	}
}

// paginate applies 1-based page/limit windowing; a nil page returns the full
// set. Results are always windowed over creation-time ascending order.
func paginate(page *int, limit int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		db = db.Order("created_at ASC")
		if page == nil {
			return db
		}
		if limit <= 0 {
			limit = DefaultPageSize
		}
		return db.Offset((*page - 1) * limit).Limit(limit)
	}
}

// byIDOrName tries the lookup key as a uuid first and falls back to a name
// match when it does not parse as one.
func byIDOrName(key string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if _, err := uuid.Parse(key); err == nil {
			return db.Where("id = ?", key)
		}
		return db.Where("name = ?", key)
	}
}

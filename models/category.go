package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Category struct {
	ID          string `gorm:"type:varchar(36);primaryKey"`
	UserID      string `gorm:"type:varchar(36);index;uniqueIndex:idx_category_owner_name"`
	Name        string `gorm:"not null;uniqueIndex:idx_category_owner_name"`
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Foods []Food `gorm:"many2many:category_foods"`
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

func (c *Category) ToMap() map[string]interface{} {
	foods := make([]string, 0, len(c.Foods))
	for _, food := range c.Foods {
		foods = append(foods, food.Name)
	}

	return map[string]interface{}{
		"id":          c.ID,
		"user_id":     c.UserID,
		"name":        c.Name,
		"description": c.Description,
		"created_at":  c.CreatedAt.Format(TimeLayout),
		"updated_at":  c.UpdatedAt.Format(TimeLayout),
		"foods":       foods,
	}
}

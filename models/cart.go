package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const CartStatusStarted = "Started"

type Cart struct {
	ID        string `gorm:"type:varchar(36);primaryKey"`
	UserID    string `gorm:"type:varchar(36);index;uniqueIndex:idx_cart_owner_name"`
	Name      string `gorm:"not null;uniqueIndex:idx_cart_owner_name"`
	Status    string `gorm:"default:Started"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Foods []CartFood `gorm:"foreignKey:CartID"`
}

func (c *Cart) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.Status == "" {
		c.Status = CartStatusStarted
	}
	return nil
}

func (c *Cart) ToMap() map[string]interface{} {
	foods := make([]map[string]interface{}, 0, len(c.Foods))
	for i := range c.Foods {
		foods = append(foods, c.Foods[i].ToMap())
	}

	return map[string]interface{}{
		"id":         c.ID,
		"user_id":    c.UserID,
		"name":       c.Name,
		"status":     c.Status,
		"created_at": c.CreatedAt.Format(TimeLayout),
		"updated_at": c.UpdatedAt.Format(TimeLayout),
		"foods":      foods,
	}
}

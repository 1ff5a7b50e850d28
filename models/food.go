package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Food struct {
	ID          string `gorm:"type:varchar(36);primaryKey"`
	UserID      string `gorm:"type:varchar(36);index;uniqueIndex:idx_food_owner_name"`
	Name        string `gorm:"not null;uniqueIndex:idx_food_owner_name"`
	Description string
	// Stored path relative to the content store, e.g. "static/ab12cd.png".
	Image     string
	CreatedAt time.Time
	UpdatedAt time.Time

	Categories []Category `gorm:"many2many:category_foods"`
	Carts      []CartFood `gorm:"foreignKey:FoodID"`
}

func (f *Food) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}

// ToMap shapes the food for responses. The image is rendered as an absolute
// URL under domain, or nil when no image is stored. Categories are rendered
// as bare name lists.
func (f *Food) ToMap(domain string) map[string]interface{} {
	var image interface{}
	if f.Image != "" {
		image = domain + f.Image
	}

	categories := make([]string, 0, len(f.Categories))
	for _, category := range f.Categories {
		categories = append(categories, category.Name)
	}

	return map[string]interface{}{
		"id":          f.ID,
		"user_id":     f.UserID,
		"image":       image,
		"name":        f.Name,
		"description": f.Description,
		"created_at":  f.CreatedAt.Format(TimeLayout),
		"updated_at":  f.UpdatedAt.Format(TimeLayout),
		"categories":  categories,
	}
}

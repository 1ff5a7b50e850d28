package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Timestamp layout used in every response payload.
const TimeLayout = "2006-01-02 15:04:05"

type User struct {
	ID        string `gorm:"type:varchar(36);primaryKey"`
	Email     string `gorm:"uniqueIndex;not null"`
	Username  string `gorm:"uniqueIndex;not null"`
	Password  string `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Foods      []Food     `gorm:"foreignKey:UserID"`
	Categories []Category `gorm:"foreignKey:UserID"`
	Carts      []Cart     `gorm:"foreignKey:UserID"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

// ToMap shapes the user for responses. The password hash is never included.
func (u *User) ToMap() map[string]interface{} {
	return map[string]interface{}{
		"id":         u.ID,
		"username":   u.Username,
		"email":      u.Email,
		"created_at": u.CreatedAt.Format(TimeLayout),
		"updated_at": u.UpdatedAt.Format(TimeLayout),
	}
}

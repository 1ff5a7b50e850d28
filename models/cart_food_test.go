package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCartFoodIdentityIgnoresQuantity(t *testing.T) {
	a := &CartFood{CartID: "cart-1", FoodID: "food-1", FoodQty: 1}
	b := &CartFood{CartID: "cart-1", FoodID: "food-1", FoodQty: 5}
	c := &CartFood{CartID: "cart-1", FoodID: "food-2", FoodQty: 1}

	assert.True(t, a.Is(b), "same (cart, food) pair is the same association")
	assert.False(t, a.Is(c))
}

func TestFoodToMapShape(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 30, 5, 0, time.UTC)
	food := Food{
		ID:        "food-1",
		UserID:    "user-1",
		Name:      "apple",
		Image:     "static/abc.png",
		CreatedAt: now,
		UpdatedAt: now,
		Categories: []Category{
			{Name: "Fruit"},
			{Name: "Snacks"},
		},
	}

	data := food.ToMap("http://example.com/")
	assert.Equal(t, "http://example.com/static/abc.png", data["image"])
	assert.Equal(t, "2024-03-01 12:30:05", data["created_at"])
	assert.Equal(t, []string{"Fruit", "Snacks"}, data["categories"])

	food.Image = ""
	assert.Nil(t, food.ToMap("http://example.com/")["image"])
}

func TestUserToMapOmitsPassword(t *testing.T) {
	user := User{ID: "user-1", Email: "a@example.com", Username: "alice", Password: "hash"}
	data := user.ToMap()
	assert.NotContains(t, data, "password")
	assert.Equal(t, "alice", data["username"])
}

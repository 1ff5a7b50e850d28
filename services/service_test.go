package services

import (
	"fmt"
	"testing"

	"github.com/Makai-Stern/shoppingify-api/config"
	"github.com/Makai-Stern/shoppingify-api/models"
	"github.com/Makai-Stern/shoppingify-api/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDB points the global DB at a fresh in-memory sqlite database and
// wires a throwaway disk store for images.
func setupTestDB(t *testing.T) {
	t.Helper()

	// A named shared-cache DSN keeps the schema visible across the pooled
	// connections gorm opens; the uuid keeps tests isolated from each other.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Food{},
		&models.Category{},
		&models.Cart{},
		&models.CartFood{},
	)
	require.NoError(t, err)

	config.DB = db
	config.C.Domain = "http://localhost:8080/"
	config.C.JWTSecret = "test-secret"
	config.C.JWTExpireHours = 1

	store, err := utils.NewDiskStore(t.TempDir())
	require.NoError(t, err)
	Images = store
}

func createTestUser(t *testing.T, email, username string) *models.User {
	t.Helper()
	user, err := RegisterUser(email, username, "secret123")
	require.NoError(t, err)
	return user
}

func createTestFood(t *testing.T, ownerID, name string) *models.Food {
	t.Helper()
	food, err := CreateFood(ownerID, name, "", nil, nil)
	require.NoError(t, err)
	return food
}

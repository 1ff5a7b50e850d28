package services

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Makai-Stern/shoppingify-api/config"
	"github.com/Makai-Stern/shoppingify-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateFoodNameConflict(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "a@example.com", "alice")

	_, err := CreateFood(user.ID, "apple", "", nil, nil)
	require.NoError(t, err)

	_, err = CreateFood(user.ID, "apple", "", nil, nil)
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "Food 'apple', already exists.", conflict.Fields["name"])
}

func TestCreateFoodSameNameDifferentOwners(t *testing.T) {
	setupTestDB(t)
	alice := createTestUser(t, "a@example.com", "alice")
	bob := createTestUser(t, "b@example.com", "bob")

	_, err := CreateFood(alice.ID, "apple", "", nil, nil)
	require.NoError(t, err)

	_, err = CreateFood(bob.ID, "apple", "", nil, nil)
	assert.NoError(t, err, "names are only unique per owner")
}

func TestCreateFoodAutoCreatesCategories(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "a@example.com", "alice")

	_, err := CreateCategory(user.ID, "Fruit", "")
	require.NoError(t, err)

	food, err := CreateFood(user.ID, "apple", "crunchy", nil, []string{"Fruit", "Snacks"})
	require.NoError(t, err)

	names := make([]string, 0, len(food.Categories))
	for _, category := range food.Categories {
		names = append(names, category.Name)
	}
	assert.ElementsMatch(t, []string{"Fruit", "Snacks"}, names)

	// "Snacks" was created implicitly and is a real owned category now.
	snacks, err := GetCategory(user.ID, "Snacks")
	require.NoError(t, err)
	assert.Equal(t, user.ID, snacks.UserID)

	var count int64
	require.NoError(t, config.DB.Model(&models.Category{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.EqualValues(t, 2, count, "existing category must be reused, not duplicated")
}

func TestGetFoodByIDOrName(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "a@example.com", "alice")
	food := createTestFood(t, user.ID, "apple")

	byID, err := GetFood(user.ID, food.ID)
	require.NoError(t, err)
	assert.Equal(t, food.ID, byID.ID)

	byName, err := GetFood(user.ID, "apple")
	require.NoError(t, err)
	assert.Equal(t, food.ID, byName.ID)

	_, err = GetFood(user.ID, "pear")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetFoodCrossUserIsNotFound(t *testing.T) {
	setupTestDB(t)
	alice := createTestUser(t, "a@example.com", "alice")
	bob := createTestUser(t, "b@example.com", "bob")
	food := createTestFood(t, alice.ID, "apple")

	_, err := GetFood(bob.ID, food.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateFoodPartialPatch(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "a@example.com", "alice")

	food, err := CreateFood(user.ID, "apple", "crunchy", nil, nil)
	require.NoError(t, err)

	description := "sweet"
	updated, err := UpdateFood(user.ID, food.ID, FoodPatch{Description: &description})
	require.NoError(t, err)
	assert.Equal(t, "sweet", updated.Description)
	assert.Equal(t, "apple", updated.Name)

	empty := ""
	updated, err = UpdateFood(user.ID, food.ID, FoodPatch{Description: &empty})
	require.NoError(t, err)
	assert.Equal(t, "sweet", updated.Description, "empty-string field is skipped")
}

func TestUpdateFoodReplacesCategorySet(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "a@example.com", "alice")

	food, err := CreateFood(user.ID, "apple", "", nil, []string{"Fruit", "Snacks"})
	require.NoError(t, err)

	categories := []string{"Dessert"}
	updated, err := UpdateFood(user.ID, food.ID, FoodPatch{Categories: &categories})
	require.NoError(t, err)

	require.Len(t, updated.Categories, 1, "categories replace the full set, not additive")
	assert.Equal(t, "Dessert", updated.Categories[0].Name)
}

func TestUpdateFoodUnchangedSkipsPersist(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "a@example.com", "alice")

	food, err := CreateFood(user.ID, "apple", "crunchy", nil, nil)
	require.NoError(t, err)
	before := food.UpdatedAt

	time.Sleep(10 * time.Millisecond)

	description := "crunchy"
	updated, err := UpdateFood(user.ID, food.ID, FoodPatch{Description: &description})
	require.NoError(t, err)
	assert.True(t, updated.UpdatedAt.Equal(before), "identical patch must not touch the row")
}

func TestUpdateFoodReplacesStoredImage(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "a@example.com", "alice")

	first := &ImageUpload{Reader: strings.NewReader("first"), Ext: ".png"}
	food, err := CreateFood(user.ID, "apple", "", first, nil)
	require.NoError(t, err)
	require.NotEmpty(t, food.Image)
	assert.Equal(t, ".png", filepath.Ext(food.Image))

	oldPath := food.Image
	second := &ImageUpload{Reader: strings.NewReader("second"), Ext: ".jpg"}
	updated, err := UpdateFood(user.ID, food.ID, FoodPatch{Image: second})
	require.NoError(t, err)
	assert.NotEqual(t, oldPath, updated.Image)
	assert.Equal(t, ".jpg", filepath.Ext(updated.Image))

	_, err = os.Stat(filepath.FromSlash(oldPath))
	assert.True(t, os.IsNotExist(err), "old image file is deleted")
}

func TestDeleteFoodRemovesCartAssociations(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "a@example.com", "alice")
	apple := createTestFood(t, user.ID, "apple")
	createTestFood(t, user.ID, "banana")

	cart, err := CreateCart(user.ID, "groceries", "", []string{"apple", "banana"})
	require.NoError(t, err)

	data, err := DeleteFood(user.ID, apple.ID)
	require.NoError(t, err)
	assert.Equal(t, "apple", data["name"])

	reloaded, err := GetCart(user.ID, cart.ID)
	require.NoError(t, err)
	require.Len(t, reloaded.Foods, 1)
	assert.Equal(t, "banana", reloaded.Foods[0].Food.Name)
}

func TestListFoodsPagination(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "a@example.com", "alice")

	base := time.Now().Add(-time.Hour)
	for i := 1; i <= 15; i++ {
		food := models.Food{
			UserID:    user.ID,
			Name:      fmt.Sprintf("food-%02d", i),
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, config.DB.Create(&food).Error)
	}

	all, err := ListFoods(user.ID, nil, DefaultPageSize)
	require.NoError(t, err)
	assert.Len(t, all, 15, "no page parameter returns the full set")

	page := 2
	second, err := ListFoods(user.ID, &page, DefaultPageSize)
	require.NoError(t, err)
	require.Len(t, second, 5)
	// Storage order is creation time ascending, so page 2 holds items 11-15.
	assert.Equal(t, "food-11", second[0].Name)
	assert.Equal(t, "food-15", second[4].Name)
}

func TestFoodToMapRendersImageURL(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "a@example.com", "alice")

	plain := createTestFood(t, user.ID, "banana")
	assert.Nil(t, plain.ToMap(config.C.Domain)["image"])

	upload := &ImageUpload{Reader: strings.NewReader("img"), Ext: ".png"}
	food, err := CreateFood(user.ID, "apple", "", upload, nil)
	require.NoError(t, err)

	image, ok := food.ToMap(config.C.Domain)["image"].(string)
	require.True(t, ok)
	assert.True(t, strings.HasPrefix(image, config.C.Domain))
}

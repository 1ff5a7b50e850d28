package services

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/Makai-Stern/shoppingify-api/config"
	"github.com/Makai-Stern/shoppingify-api/models"
	"github.com/Makai-Stern/shoppingify-api/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Images is the content store for food pictures. Main wires a DiskStore or an
// S3Store here depending on configuration.
var Images utils.ImageStore

// ImageUpload is an incoming image file: its contents plus the original
// extension, which the store preserves.
type ImageUpload struct {
	Reader io.Reader
	Ext    string
}

// FoodPatch is a partial update. Nil fields were not supplied. Categories,
// when supplied, replace the food's full category set.
type FoodPatch struct {
	Name        *string
	Description *string
	Categories  *[]string
	Image       *ImageUpload
}

func ListFoods(ownerID string, page *int, limit int) ([]models.Food, error) {
	var foods []models.Food
	err := config.DB.
		Scopes(ownedBy(ownerID), paginate(page, limit)).
		Preload("Categories").
		Find(&foods).Error
	return foods, err
}

func GetFood(ownerID, idOrName string) (*models.Food, error) {
	var food models.Food
	err := config.DB.
		Scopes(ownedBy(ownerID), byIDOrName(idOrName)).
		Preload("Categories").
		First(&food).Error
	if err != nil {
		return nil, ErrNotFound
	}
	return &food, nil
}

// CreateFood stores a new food. Category names resolve through get-or-create;
// an image, when supplied, is written to the content store first.
func CreateFood(ownerID, name, description string, image *ImageUpload, categoryNames []string) (*models.Food, error) {
	var existing models.Food
	err := config.DB.Scopes(ownedBy(ownerID)).Where("name = ?", name).First(&existing).Error
	if err == nil {
		return nil, NewConflictError("name", fmt.Sprintf("Food '%s', already exists.", name))
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	food := models.Food{
		UserID:      ownerID,
		Name:        name,
		Description: description,
	}

	if image != nil {
		location, err := Images.Save(image.Reader, image.Ext)
		if err != nil {
			return nil, err
		}
		food.Image = location
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&food).Error; err != nil {
			return err
		}
		if len(categoryNames) == 0 {
			return nil
		}
		categories, err := resolveCategories(tx, ownerID, categoryNames)
		if err != nil {
			return err
		}
		return tx.Model(&food).Association("Categories").Replace(categories)
	})
	if err != nil {
		return nil, err
	}

	return GetFood(ownerID, food.ID)
}

// UpdateFood applies a partial patch. A new image replaces the stored file
// (old one removed best-effort), supplied categories replace the full set, and
// nothing is written unless some tracked field actually changed.
func UpdateFood(ownerID, id string, patch FoodPatch) (*models.Food, error) {
	var food models.Food
	err := config.DB.Scopes(ownedBy(ownerID)).Preload("Categories").First(&food, "id = ?", id).Error
	if err != nil {
		return nil, ErrNotFound
	}

	snapshotName := food.Name
	snapshotDescription := food.Description
	snapshotImage := food.Image
	snapshotCategories := categoryKey(food.Categories)

	if patch.Name != nil && *patch.Name != "" {
		var existing models.Food
		err := config.DB.Scopes(ownedBy(ownerID)).
			Where("name = ? AND id <> ?", *patch.Name, food.ID).
			First(&existing).Error
		if err == nil {
			return nil, NewConflictError("name", fmt.Sprintf("Name %s, already exist", *patch.Name))
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		food.Name = *patch.Name
	}
	if patch.Description != nil && *patch.Description != "" {
		food.Description = *patch.Description
	}

	var newCategories []models.Category
	if patch.Image != nil {
		location, err := Images.Save(patch.Image.Reader, patch.Image.Ext)
		if err != nil {
			return nil, err
		}
		if snapshotImage != "" {
			// Best-effort cleanup; a file already gone is fine.
			_ = Images.Delete(snapshotImage)
		}
		food.Image = location
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if patch.Categories != nil {
			var err error
			newCategories, err = resolveCategories(tx, ownerID, *patch.Categories)
			if err != nil {
				return err
			}
		}

		changed := food.Name != snapshotName ||
			food.Description != snapshotDescription ||
			food.Image != snapshotImage ||
			(patch.Categories != nil && categoryKey(newCategories) != snapshotCategories)
		if !changed {
			return nil
		}

		if err := tx.Omit(clause.Associations).Save(&food).Error; err != nil {
			return err
		}
		if patch.Categories != nil {
			return tx.Model(&food).Association("Categories").Replace(newCategories)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return GetFood(ownerID, food.ID)
}

// DeleteFood removes a food along with its cart associations and category
// links, then best-effort deletes its stored image. The deleted food's data is
// returned for confirmation.
func DeleteFood(ownerID, id string) (map[string]interface{}, error) {
	var food models.Food
	err := config.DB.Scopes(ownedBy(ownerID)).Preload("Categories").First(&food, "id = ?", id).Error
	if err != nil {
		return nil, ErrNotFound
	}
	data := food.ToMap(config.C.Domain)

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("food_id = ?", food.ID).Delete(&models.CartFood{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&food).Association("Categories").Clear(); err != nil {
			return err
		}
		return tx.Delete(&food).Error
	})
	if err != nil {
		return nil, err
	}

	if food.Image != "" {
		_ = Images.Delete(food.Image)
	}
	return data, nil
}

func resolveCategories(tx *gorm.DB, ownerID string, names []string) ([]models.Category, error) {
	categories := make([]models.Category, 0, len(names))
	seen := map[string]bool{}
	for _, name := range names {
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		category, err := getOrCreateCategory(tx, ownerID, name)
		if err != nil {
			return nil, err
		}
		categories = append(categories, *category)
	}
	return categories, nil
}

// categoryKey flattens a category set into a comparable string.
func categoryKey(categories []models.Category) string {
	ids := make([]string, 0, len(categories))
	for _, category := range categories {
		ids = append(ids, category.ID)
	}
	sort.Strings(ids)
	key := ""
	for _, id := range ids {
		key += id + ","
	}
	return key
}

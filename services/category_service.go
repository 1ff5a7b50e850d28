package services

import (
	"errors"
	"fmt"

	"github.com/Makai-Stern/shoppingify-api/config"
	"github.com/Makai-Stern/shoppingify-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CategoryPatch struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

func ListCategories(ownerID string, page *int, limit int) ([]models.Category, error) {
	var categories []models.Category
	err := config.DB.
		Scopes(ownedBy(ownerID), paginate(page, limit)).
		Preload("Foods").
		Find(&categories).Error
	return categories, err
}

func GetCategory(ownerID, idOrName string) (*models.Category, error) {
	var category models.Category
	err := config.DB.
		Scopes(ownedBy(ownerID), byIDOrName(idOrName)).
		Preload("Foods").
		First(&category).Error
	if err != nil {
		return nil, ErrNotFound
	}
	return &category, nil
}

func CreateCategory(ownerID, name, description string) (*models.Category, error) {
	var existing models.Category
	err := config.DB.Scopes(ownedBy(ownerID)).Where("name = ?", name).First(&existing).Error
	if err == nil {
		return nil, NewConflictError("name", fmt.Sprintf("Category '%s', already exists.", name))
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	category := models.Category{
		UserID:      ownerID,
		Name:        name,
		Description: description,
	}
	if err := config.DB.Create(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// UpdateCategory applies a partial patch; a save is issued only when a field
// actually changed value.
func UpdateCategory(ownerID, id string, patch CategoryPatch) (*models.Category, error) {
	var category models.Category
	err := config.DB.Scopes(ownedBy(ownerID)).Preload("Foods").First(&category, "id = ?", id).Error
	if err != nil {
		return nil, ErrNotFound
	}

	snapshotName := category.Name
	snapshotDescription := category.Description

	if patch.Name != nil && *patch.Name != "" {
		var existing models.Category
		err := config.DB.Scopes(ownedBy(ownerID)).
			Where("name = ? AND id <> ?", *patch.Name, category.ID).
			First(&existing).Error
		if err == nil {
			return nil, NewConflictError("name", fmt.Sprintf("Name %s, already exist", *patch.Name))
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		category.Name = *patch.Name
	}
	if patch.Description != nil && *patch.Description != "" {
		category.Description = *patch.Description
	}

	if category.Name != snapshotName || category.Description != snapshotDescription {
		if err := config.DB.Omit(clause.Associations).Save(&category).Error; err != nil {
			return nil, err
		}
	}
	return &category, nil
}

func DeleteCategory(ownerID, id string) (map[string]interface{}, error) {
	var category models.Category
	err := config.DB.Scopes(ownedBy(ownerID)).Preload("Foods").First(&category, "id = ?", id).Error
	if err != nil {
		return nil, ErrNotFound
	}
	data := category.ToMap()

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&category).Association("Foods").Clear(); err != nil {
			return err
		}
		return tx.Delete(&category).Error
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}

// getOrCreateCategory resolves a category name for the owner, creating it on
// the fly when absent. The food service leans on this during create/update.
func getOrCreateCategory(tx *gorm.DB, ownerID, name string) (*models.Category, error) {
	var category models.Category
	err := tx.Scopes(ownedBy(ownerID)).Where("name = ?", name).First(&category).Error
	if err == nil {
		return &category, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	category = models.Category{UserID: ownerID, Name: name}
	if err := tx.Create(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/Makai-Stern/shoppingify-api/config"
	"github.com/Makai-Stern/shoppingify-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CartPatch is a partial update. A supplied Foods list is the complete desired
// membership for the cart, by food name.
type CartPatch struct {
	Name   *string   `json:"name"`
	Status *string   `json:"status"`
	Foods  *[]string `json:"foods"`
}

func ListCarts(ownerID string, page *int, limit int) ([]models.Cart, error) {
	var carts []models.Cart
	err := config.DB.
		Scopes(ownedBy(ownerID), paginate(page, limit)).
		Preload("Foods.Food").
		Find(&carts).Error
	return carts, err
}

func GetCart(ownerID, idOrName string) (*models.Cart, error) {
	var cart models.Cart
	err := config.DB.
		Scopes(ownedBy(ownerID), byIDOrName(idOrName)).
		Preload("Foods.Food").
		First(&cart).Error
	if err != nil {
		return nil, ErrNotFound
	}
	return &cart, nil
}

// CreateCart stores a new cart and builds its associations from the requested
// food names: the first occurrence of a name creates an association with
// quantity 1, every repeat bumps the quantity, and names that resolve to no
// owned food are skipped.
func CreateCart(ownerID, name, status string, foodNames []string) (*models.Cart, error) {
	var existing models.Cart
	err := config.DB.Scopes(ownedBy(ownerID)).Where("name = ?", name).First(&existing).Error
	if err == nil {
		return nil, NewConflictError("name", fmt.Sprintf("Cart '%s', already exists.", name))
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if status == "" {
		status = models.CartStatusStarted
	}
	cart := models.Cart{UserID: ownerID, Name: name, Status: status}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&cart).Error; err != nil {
			return err
		}
		desired, err := reconcileCartFoods(tx, cart.ID, ownerID, foodNames)
		if err != nil {
			return err
		}
		return applyCartFoods(tx, cart.ID, desired)
	})
	if err != nil {
		return nil, err
	}

	return GetCart(ownerID, cart.ID)
}

// UpdateCart applies a partial patch. When the foods list is present it is the
// complete desired membership: existing (cart, food) associations are reused
// with their quantity set to the name's occurrence count in the list, missing
// ones are created, and associations absent from the list are deleted. Nothing
// is written unless name, status, or the association set changed.
func UpdateCart(ownerID, id string, patch CartPatch) (*models.Cart, error) {
	var cart models.Cart
	err := config.DB.Scopes(ownedBy(ownerID)).Preload("Foods.Food").First(&cart, "id = ?", id).Error
	if err != nil {
		return nil, ErrNotFound
	}

	snapshotName := cart.Name
	snapshotStatus := cart.Status
	snapshotFoods := associationKey(cart.Foods)

	if patch.Name != nil && *patch.Name != "" {
		var existing models.Cart
		err := config.DB.Scopes(ownedBy(ownerID)).
			Where("name = ? AND id <> ?", *patch.Name, cart.ID).
			First(&existing).Error
		if err == nil {
			return nil, NewConflictError("name", fmt.Sprintf("Name %s, already exist", *patch.Name))
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		cart.Name = *patch.Name
	}
	if patch.Status != nil && *patch.Status != "" {
		cart.Status = *patch.Status
	}

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		foodsChanged := false
		var desired []models.CartFood
		if patch.Foods != nil {
			var err error
			desired, err = reconcileCartFoods(tx, cart.ID, ownerID, *patch.Foods)
			if err != nil {
				return err
			}
			foodsChanged = associationKey(desired) != snapshotFoods
		}

		changed := cart.Name != snapshotName || cart.Status != snapshotStatus || foodsChanged
		if !changed {
			return nil
		}

		if err := tx.Omit(clause.Associations).Save(&cart).Error; err != nil {
			return err
		}
		if foodsChanged {
			return applyCartFoods(tx, cart.ID, desired)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return GetCart(ownerID, cart.ID)
}

// DeleteCart removes a cart and its association rows, returning the deleted
// cart's data for confirmation.
func DeleteCart(ownerID, id string) (map[string]interface{}, error) {
	var cart models.Cart
	err := config.DB.Scopes(ownedBy(ownerID)).Preload("Foods.Food").First(&cart, "id = ?", id).Error
	if err != nil {
		return nil, ErrNotFound
	}
	data := cart.ToMap()

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("cart_id = ?", cart.ID).Delete(&models.CartFood{}).Error; err != nil {
			return err
		}
		return tx.Delete(&cart).Error
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}

// reconcileCartFoods turns a list of food names into the desired association
// set for one cart. Associations are deduplicated by their (cart, food)
// composite key via map lookup; a name occurring N times ends up with quantity
// N regardless of any previously stored quantity. Unresolvable names are
// skipped.
func reconcileCartFoods(tx *gorm.DB, cartID, ownerID string, names []string) ([]models.CartFood, error) {
	desired := map[string]*models.CartFood{}
	var order []string

	for _, raw := range names {
		name := strings.TrimSpace(raw)
		if name == "" {
			continue
		}

		var food models.Food
		err := tx.Scopes(ownedBy(ownerID)).Where("name = ?", name).First(&food).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}

		if association, ok := desired[food.ID]; ok {
			association.FoodQty++
			continue
		}
		desired[food.ID] = &models.CartFood{
			CartID:  cartID,
			FoodID:  food.ID,
			UserID:  ownerID,
			FoodQty: 1,
			Food:    food,
		}
		order = append(order, food.ID)
	}

	out := make([]models.CartFood, 0, len(order))
	for _, foodID := range order {
		out = append(out, *desired[foodID])
	}
	return out, nil
}

// applyCartFoods replaces the cart's stored association set with the desired
// one: rows not in the set are deleted so nothing is left dangling, existing
// rows are reused with their quantity updated, and the rest are created.
func applyCartFoods(tx *gorm.DB, cartID string, desired []models.CartFood) error {
	keep := make([]string, 0, len(desired))
	for i := range desired {
		keep = append(keep, desired[i].FoodID)
	}

	stale := tx.Where("cart_id = ?", cartID)
	if len(keep) > 0 {
		stale = stale.Where("food_id NOT IN ?", keep)
	}
	if err := stale.Delete(&models.CartFood{}).Error; err != nil {
		return err
	}

	for i := range desired {
		association := desired[i]
		result := tx.Model(&models.CartFood{}).
			Where("cart_id = ? AND food_id = ?", association.CartID, association.FoodID).
			Update("food_qty", association.FoodQty)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			association.Food = models.Food{}
			if err := tx.Create(&association).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

// associationKey flattens an association set into a comparable string of
// (food id, quantity) pairs.
func associationKey(associations []models.CartFood) string {
	pairs := make([]string, 0, len(associations))
	for i := range associations {
		pairs = append(pairs, fmt.Sprintf("%s=%d", associations[i].FoodID, associations[i].FoodQty))
	}
	sort.Strings(pairs)
	return strings.Join(pairs, ",")
}

package services

import (
	"errors"

	"github.com/Makai-Stern/shoppingify-api/config"
	"github.com/Makai-Stern/shoppingify-api/models"
	"github.com/Makai-Stern/shoppingify-api/utils"

	"gorm.io/gorm"
)

// UserPatch is a partial update of the account. Nil means the field was not
// supplied at all, as opposed to supplied empty.
type UserPatch struct {
	Email    *string `json:"email"`
	Username *string `json:"username"`
	Password *string `json:"password"`
}

// GetUser resolves a user by id, but only for the user themselves; any other
// id looks like a missing record.
func GetUser(currentUserID, id string) (*models.User, error) {
	if id != currentUserID {
		return nil, ErrNotFound
	}

	var user models.User
	if err := config.DB.First(&user, "id = ?", id).Error; err != nil {
		return nil, ErrNotFound
	}
	return &user, nil
}

// UpdateUser applies a partial patch to the caller's own account. A save is
// issued only when some field actually changed value.
func UpdateUser(currentUserID, id string, patch UserPatch) (*models.User, error) {
	user, err := GetUser(currentUserID, id)
	if err != nil {
		return nil, err
	}

	snapshotEmail := user.Email
	snapshotUsername := user.Username
	snapshotPassword := user.Password

	fields := map[string]string{}

	if patch.Email != nil && *patch.Email != "" {
		var existing models.User
		err := config.DB.Where("email = ?", *patch.Email).First(&existing).Error
		switch {
		case err == nil && existing.ID != user.ID:
			fields["email"] = "Email is taken."
		case err == nil:
			fields["email"] = "You are currently using this email address."
		case errors.Is(err, gorm.ErrRecordNotFound):
			user.Email = *patch.Email
		default:
			return nil, err
		}
	}

	if patch.Username != nil && *patch.Username != "" {
		var existing models.User
		err := config.DB.Where("username = ?", *patch.Username).First(&existing).Error
		switch {
		case err == nil && existing.ID != user.ID:
			fields["username"] = "Username is taken."
		case err == nil:
			fields["username"] = "You are currently using this username."
		case errors.Is(err, gorm.ErrRecordNotFound):
			user.Username = *patch.Username
		default:
			return nil, err
		}
	}

	if len(fields) > 0 {
		return nil, &ConflictError{Fields: fields}
	}

	// A supplied password is always rehashed; it only counts as a change
	// when it no longer verifies against the stored hash.
	if patch.Password != nil && *patch.Password != "" {
		if !utils.CheckPasswordHash(*patch.Password, snapshotPassword) {
			hashedPassword, err := utils.HashPassword(*patch.Password)
			if err != nil {
				return nil, err
			}
			user.Password = hashedPassword
		}
	}

	changed := user.Email != snapshotEmail ||
		user.Username != snapshotUsername ||
		user.Password != snapshotPassword

	if changed {
		if err := config.DB.Save(user).Error; err != nil {
			return nil, err
		}
	}
	return user, nil
}

// DeleteUser removes the caller's account and everything it owns: foods,
// categories, carts and all association rows.
func DeleteUser(currentUserID, id string) (map[string]interface{}, error) {
	user, err := GetUser(currentUserID, id)
	if err != nil {
		return nil, err
	}
	data := user.ToMap()

	err = config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", user.ID).Delete(&models.CartFood{}).Error; err != nil {
			return err
		}
		if err := tx.Exec(
			"DELETE FROM category_foods WHERE food_id IN (SELECT id FROM foods WHERE user_id = ?)",
			user.ID,
		).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", user.ID).Delete(&models.Food{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", user.ID).Delete(&models.Category{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", user.ID).Delete(&models.Cart{}).Error; err != nil {
			return err
		}
		return tx.Delete(user).Error
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}

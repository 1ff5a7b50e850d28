package services

import (
	"errors"

	"github.com/Makai-Stern/shoppingify-api/config"
	"github.com/Makai-Stern/shoppingify-api/models"
	"github.com/Makai-Stern/shoppingify-api/utils"

	"gorm.io/gorm"
)

// RegisterUser creates a new account. Email and username are both checked up
// front so a caller taking both learns about both conflicts at once.
func RegisterUser(email, username, password string) (*models.User, error) {
	fields := map[string]string{}

	var existing models.User
	if err := config.DB.Where("email = ?", email).First(&existing).Error; err == nil {
		fields["email"] = "Email is taken."
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if err := config.DB.Where("username = ?", username).First(&existing).Error; err == nil {
		fields["username"] = "Username is taken."
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if len(fields) > 0 {
		return nil, &ConflictError{Fields: fields}
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Email:    email,
		Username: username,
		Password: hashedPassword,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// AuthenticateUser verifies a login by email or username and returns the user
// with a signed session token. Every failure collapses into the same generic
// error.
func AuthenticateUser(email, username, password string) (*models.User, string, error) {
	var user models.User
	var result *gorm.DB

	switch {
	case email != "":
		result = config.DB.Where("email = ?", email).First(&user)
	case username != "":
		result = config.DB.Where("username = ?", username).First(&user)
	default:
		return nil, "", ErrInvalidCredentials
	}

	if result.Error != nil {
		return nil, "", ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := utils.GenerateJWT(user.ID)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

// ChangePassword rehashes and stores a new password after verifying the
// current one.
func ChangePassword(user *models.User, currentPassword, newPassword string) error {
	if !utils.CheckPasswordHash(currentPassword, user.Password) {
		return NewConflictError("currentPassword", "Password is incorrect.")
	}

	hashedPassword, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}

	user.Password = hashedPassword
	return config.DB.Save(user).Error
}

package services

import (
	"errors"

	"github.com/ferbta/babyverse/config"
	"github.com/ferbta/babyverse/models"
	"github.com/ferbta/babyverse/utils"

	"gorm.io/gorm"
)

func RegisterUser(email, password, name string) (*models.User, error) {
	var existing models.User
	err := config.DB.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Email:              email,
		Password:           hashed,
		Name:               name,
		EmailNotifications: true,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func AuthenticateUser(email, password string) (string, error) {
	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return "", ErrInvalidCredential
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return "", ErrInvalidCredential
	}

	return utils.GenerateJWT(user.ID, user.Email)
}

func GetUserSettings(userID uint) (*models.User, error) {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func UpdateUserSettings(userID uint, emailNotifications bool) (*models.User, error) {
	user, err := GetUserSettings(userID)
	if err != nil {
		return nil, err
	}
	user.EmailNotifications = emailNotifications
	if err := config.DB.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

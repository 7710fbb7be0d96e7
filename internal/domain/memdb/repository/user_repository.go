package repository

import (
	"errors"

	"gorm.io/gorm"

	"notekeep/internal/domain/entity"
)

type DefaultUserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *DefaultUserRepository {
	return &DefaultUserRepository{db: db}
}

func (d *DefaultUserRepository) FindByUsername(username string) (*entity.User, error) {
	var user entity.User
	err := d.db.First(&user, "username = ?", username).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (d *DefaultUserRepository) Save(user *entity.User) error {
	return d.db.Save(user).Error
}

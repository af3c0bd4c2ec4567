package database

import (
	"arcadia-sales/internal/models"
)

func (s *Store) UserByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Store) UserByUsername(username string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Store) ListUsers() ([]models.User, error) {
	var users []models.User
	if err := s.db.Order("username asc").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// CreateUser rejects duplicate usernames with ErrUsernameTaken so the
// caller can surface it as a notice instead of a storage error.
func (s *Store) CreateUser(user *models.User) error {
	var count int64
	if err := s.db.Model(&models.User{}).
		Where("username = ?", user.Username).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrUsernameTaken
	}
	return s.db.Create(user).Error
}

func (s *Store) SaveUser(user *models.User) error {
	return s.db.Save(user).Error
}

func (s *Store) DeleteUser(id uint) error {
	return s.db.Delete(&models.User{}, id).Error
}

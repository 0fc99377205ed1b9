package storage

import (
	"errors"
	"fmt"
	"strings"

	"user-feedback-server/models"
	"user-feedback-server/utils"

	"gorm.io/gorm"
)

type UserStore struct {
	db *gorm.DB
}

func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

// Register hashes the password and persists the new user. The plaintext
// password is never stored. Username and email uniqueness is enforced by
// the database constraints and surfaced as ErrDuplicateKey.
func (s *UserStore) Register(firstName, lastName, email, username, password string) (*models.User, error) {
	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Username:  username,
		Password:  hashed,
		Email:     strings.ToLower(email),
		FirstName: firstName,
		LastName:  lastName,
	}
	if err := s.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("register %q: %w", username, ErrDuplicateKey)
		}
		return nil, err
	}
	return &user, nil
}

// Authenticate returns the matching user, or nil for both an unknown
// username and a wrong password. The two cases are deliberately
// indistinguishable so the login response cannot be used to enumerate
// accounts.
func (s *UserStore) Authenticate(username, password string) (*models.User, error) {
	var user models.User
	err := s.db.Where("username = ?", username).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if !utils.CheckPassword(password, user.Password) {
		return nil, nil
	}
	return &user, nil
}

// GetByUsername loads a user together with their feedback, newest first.
func (s *UserStore) GetByUsername(username string) (*models.User, error) {
	var user models.User
	err := s.db.
		Preload("Feedback", func(db *gorm.DB) *gorm.DB {
			return db.Order("id DESC")
		}).
		Where("username = ?", username).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %q: %w", username, ErrNotFound)
		}
		return nil, err
	}
	return &user, nil
}

// Delete removes the user and all their feedback in a single
// transaction, so a failed delete leaves both tables untouched.
func (s *UserStore) Delete(username string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.Where("username = ?", username).First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("user %q: %w", username, ErrNotFound)
			}
			return err
		}
		if err := tx.Where("username = ?", username).Delete(&models.Feedback{}).Error; err != nil {
			return err
		}
		return tx.Delete(&user).Error
	})
}

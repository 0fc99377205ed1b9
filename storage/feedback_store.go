package storage

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"user-feedback-server/models"

	"gorm.io/gorm"
)

const maxFeedbackTitleLen = 100

type FeedbackStore struct {
	db *gorm.DB
}

func NewFeedbackStore(db *gorm.DB) *FeedbackStore {
	return &FeedbackStore{db: db}
}

func validateFeedbackFields(title, content string) error {
	if strings.TrimSpace(title) == "" {
		return &ValidationError{Message: "Title is required."}
	}
	// Runes, not bytes, to match the form's max=100 rule.
	if utf8.RuneCountInString(title) > maxFeedbackTitleLen {
		return &ValidationError{Message: fmt.Sprintf("Title must be at most %d characters.", maxFeedbackTitleLen)}
	}
	if strings.TrimSpace(content) == "" {
		return &ValidationError{Message: "Content is required."}
	}
	return nil
}

// Create persists a new feedback row for username. The owner must exist;
// a dangling username is rejected before anything is written.
func (s *FeedbackStore) Create(title, content, username string) (*models.Feedback, error) {
	if err := validateFeedbackFields(title, content); err != nil {
		return nil, err
	}

	var owners int64
	if err := s.db.Model(&models.User{}).Where("username = ?", username).Count(&owners).Error; err != nil {
		return nil, err
	}
	if owners == 0 {
		return nil, &ValidationError{Message: fmt.Sprintf("User %q does not exist.", username)}
	}

	feedback := models.Feedback{
		Title:    title,
		Content:  content,
		Username: username,
	}
	if err := s.db.Create(&feedback).Error; err != nil {
		return nil, err
	}
	return &feedback, nil
}

func (s *FeedbackStore) GetByID(id uint) (*models.Feedback, error) {
	var feedback models.Feedback
	if err := s.db.First(&feedback, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("feedback %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return &feedback, nil
}

// Update overwrites title and content of an existing row.
func (s *FeedbackStore) Update(id uint, title, content string) (*models.Feedback, error) {
	if err := validateFeedbackFields(title, content); err != nil {
		return nil, err
	}

	feedback, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	feedback.Title = title
	feedback.Content = content
	if err := s.db.Save(feedback).Error; err != nil {
		return nil, err
	}
	return feedback, nil
}

func (s *FeedbackStore) Delete(id uint) error {
	result := s.db.Delete(&models.Feedback{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("feedback %d: %w", id, ErrNotFound)
	}
	return nil
}

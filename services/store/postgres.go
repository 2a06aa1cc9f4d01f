package store

import (
	"fmt"

	models "miniclip/models/postgres"

	"gorm.io/gorm"
)

// PostgresStore persists games in the PostgreSQL games table. Every failure
// is surfaced to the caller as-is; the store never retries and never falls
// back on its own (that policy lives in the moderation service).
type PostgresStore struct {
	DB *gorm.DB
}

func NewPostgresStore(db *gorm.DB) *PostgresStore {
	return &PostgresStore{DB: db}
}

func (s *PostgresStore) Submit(game models.Game) (*models.Game, error) {
	if err := s.DB.Create(&game).Error; err != nil {
		return nil, fmt.Errorf("failed to insert game: %w", err)
	}
	return &game, nil
}

func (s *PostgresStore) ListSubmitted() ([]models.Game, error) {
	var games []models.Game
	err := s.DB.Order("created_at DESC").Find(&games).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list submitted games: %w", err)
	}
	return games, nil
}

func (s *PostgresStore) ListApproved() ([]models.Game, error) {
	var games []models.Game
	err := s.DB.Where("status = ?", models.StatusApproved).
		Order("created_at DESC").
		Find(&games).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list approved games: %w", err)
	}
	return games, nil
}

func (s *PostgresStore) SetStatus(id string, status string) error {
	result := s.DB.Model(&models.Game{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return fmt.Errorf("failed to update game status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PostgresStore) Delete(id string) error {
	result := s.DB.Where("id = ?", id).Delete(&models.Game{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete game: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

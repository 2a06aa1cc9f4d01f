package postgres

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Submission statuses stored in the games table.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

/*
 * 'Game' is the canonical record for a submitted game. Both the durable
 * (PostgreSQL) and the in-memory fallback store use this exact shape, so the
 * rest of the app never branches on which backend produced a record.
 */
type Game struct {
	ID          string    `gorm:"primaryKey;size:64;not null"`
	Title       string    `gorm:"size:255;not null"`
	URL         string    `gorm:"size:2048;not null"`
	Description string    `gorm:"size:1024"`
	Screenshot  string    `gorm:"size:2048"`
	Status      string    `gorm:"size:20;not null;index:idx_games_status"`
	SubmittedBy string    `gorm:"size:100;not null"`
	CreatedAt   time.Time `gorm:"default:CURRENT_TIMESTAMP;index:idx_games_created_at"`
}

// Durable ids are uuids; the fallback store assigns its own time-based ids
// before insert, so the hook only fills ids that are still empty.
func (g *Game) BeforeCreate(tx *gorm.DB) (err error) {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	return nil
}

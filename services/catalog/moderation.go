package catalog

import (
	"errors"
	"strings"
	"time"

	models "miniclip/models/postgres"
	"miniclip/services/store"

	log "github.com/sirupsen/logrus"
)

// ErrURLRequired is the validation failure for a submission without a URL.
// It is the only moderation error that reaches the user.
var ErrURLRequired = errors.New("game URL is required")

/*
 * 'Moderation' orchestrates the submission workflow: submit, list for the
 * admin dashboard, approve, reject, delete. Every write tries the durable
 * store first and falls through to the in-memory fallback on any failure.
 * That failover is best-effort availability, not consistency: the two stores
 * can diverge and are never reconciled.
 */
type Moderation struct {
	durable  store.CatalogStore // nil when the database is unconfigured
	fallback *store.MemoryStore
}

func NewModeration(durable store.CatalogStore, fallback *store.MemoryStore) *Moderation {
	return &Moderation{durable: durable, fallback: fallback}
}

// DurableConfigured reports whether a durable store was wired at startup.
// The admin dashboard shows a notice when it was not.
func (m *Moderation) DurableConfigured() bool {
	return m.durable != nil
}

// SubmitResult says where a submission actually landed. Durable is false when
// the write fell through to the in-memory store and will not survive a
// restart.
type SubmitResult struct {
	Game    *models.Game
	Durable bool
}

// Submit validates the URL, derives title and screenshot, and stores a new
// pending record.
func (m *Moderation) Submit(rawURL string) (*SubmitResult, error) {
	if strings.TrimSpace(rawURL) == "" {
		return nil, ErrURLRequired
	}

	game := models.Game{
		Title:       TitleFromURL(rawURL),
		URL:         rawURL,
		Description: "Game submission from website",
		Screenshot:  ScreenshotURL(rawURL),
		Status:      models.StatusPending,
		SubmittedBy: "anonymous",
		CreatedAt:   time.Now(),
	}

	if m.durable != nil {
		stored, err := m.durable.Submit(game)
		if err == nil {
			return &SubmitResult{Game: stored, Durable: true}, nil
		}
		log.Warnf("Durable store rejected submission, using in-memory fallback: %v", err)
	}

	stored, err := m.fallback.Submit(game)
	if err != nil {
		return nil, err
	}
	return &SubmitResult{Game: stored, Durable: false}, nil
}

// ListSubmitted returns every submission, any status, newest first, for the
// admin dashboard.
func (m *Moderation) ListSubmitted() []models.Game {
	if m.durable != nil {
		games, err := m.durable.ListSubmitted()
		if err == nil {
			return games
		}
		log.Warnf("Failed to list submissions from durable store, using in-memory fallback: %v", err)
	}
	games, _ := m.fallback.ListSubmitted()
	return games
}

// ListApproved returns the approved submissions that belong in the public
// catalog, newest first.
func (m *Moderation) ListApproved() []models.Game {
	if m.durable != nil {
		games, err := m.durable.ListApproved()
		if err == nil {
			for i := range games {
				if games[i].Description == "" {
					games[i].Description = "Approved game submission"
				}
			}
			return games
		}
		log.Warnf("Failed to list approved games from durable store, using in-memory fallback: %v", err)
	}
	games, _ := m.fallback.ListApproved()
	return games
}

// Approve marks a pending submission approved, which makes it public.
func (m *Moderation) Approve(id string) error {
	return m.setStatus(id, models.StatusApproved)
}

// Reject marks a pending submission rejected. It stays visible on the admin
// dashboard but never reaches the public catalog.
func (m *Moderation) Reject(id string) error {
	return m.setStatus(id, models.StatusRejected)
}

func (m *Moderation) setStatus(id string, status string) error {
	if m.durable != nil {
		err := m.durable.SetStatus(id, status)
		if err == nil {
			return nil
		}
		log.Warnf("Failed to set game %s to %s in durable store, using in-memory fallback: %v", id, status, err)
	}
	return m.fallback.SetStatus(id, status)
}

// Delete removes a submission regardless of status.
func (m *Moderation) Delete(id string) error {
	if m.durable != nil {
		err := m.durable.Delete(id)
		if err == nil {
			return nil
		}
		log.Warnf("Failed to delete game %s from durable store, using in-memory fallback: %v", id, err)
	}
	return m.fallback.Delete(id)
}

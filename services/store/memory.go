package store

import (
	"fmt"
	"sync"
	"time"

	models "miniclip/models/postgres"
)

/*
 * 'MemoryStore' is the process-lifetime fallback used when PostgreSQL is
 * unconfigured or a call against it fails. It keeps two ordered lists: every
 * submission, and a denormalized copy of each approved submission. Contents
 * are lost on restart and never reconciled with the durable store; ids use a
 * time-based scheme so they can never collide with durable uuids.
 *
 * A gin server handles requests on concurrent goroutines, so the lists are
 * guarded by a mutex. Semantics stay last-write-wins.
 */
type MemoryStore struct {
	mu        sync.Mutex
	submitted []models.Game
	approved  []models.Game
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Submit(game models.Game) (*models.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Nanosecond resolution so two back-to-back submissions cannot share an
	// id.
	if game.ID == "" {
		game.ID = fmt.Sprintf("submitted-%d", time.Now().UnixNano())
	}
	s.submitted = append(s.submitted, game)
	return &game, nil
}

func (s *MemoryStore) ListSubmitted() ([]models.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return newestFirst(s.submitted), nil
}

func (s *MemoryStore) ListApproved() ([]models.Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return newestFirst(s.approved), nil
}

func (s *MemoryStore) SetStatus(id string, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.submitted {
		if s.submitted[i].ID != id {
			continue
		}
		s.submitted[i].Status = status
		if status == models.StatusApproved {
			// Denormalized copy so the public catalog sees it without
			// re-filtering the submission list.
			approved := s.submitted[i]
			approved.Description = fmt.Sprintf("Game submitted by %s", approved.SubmittedBy)
			approved.CreatedAt = time.Now()
			s.approved = append(s.approved, approved)
		}
		return nil
	}
	return ErrNotFound
}

func (s *MemoryStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	// A record may live in either list or both (approved submissions do).
	if i := indexByID(s.submitted, id); i != -1 {
		s.submitted = append(s.submitted[:i], s.submitted[i+1:]...)
		found = true
	}
	if i := indexByID(s.approved, id); i != -1 {
		s.approved = append(s.approved[:i], s.approved[i+1:]...)
		found = true
	}
	if !found {
		return ErrNotFound
	}
	return nil
}

func indexByID(games []models.Game, id string) int {
	for i := range games {
		if games[i].ID == id {
			return i
		}
	}
	return -1
}

// Lists are append-ordered internally; callers expect newest first.
func newestFirst(games []models.Game) []models.Game {
	out := make([]models.Game, 0, len(games))
	for i := len(games) - 1; i >= 0; i-- {
		out = append(out, games[i])
	}
	return out
}

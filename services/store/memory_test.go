package store

import (
	"testing"
	"time"

	models "miniclip/models/postgres"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pendingGame(title string) models.Game {
	return models.Game{
		Title:       title,
		URL:         "https://" + title + ".io",
		Status:      models.StatusPending,
		SubmittedBy: "anonymous",
		CreatedAt:   time.Now(),
	}
}

func TestMemoryStoreSubmit(t *testing.T) {
	s := NewMemoryStore()

	stored, err := s.Submit(pendingGame("alpha"))
	require.NoError(t, err)

	assert.Regexp(t, `^submitted-\d+$`, stored.ID)
	assert.Equal(t, models.StatusPending, stored.Status)

	other, err := s.Submit(pendingGame("beta"))
	require.NoError(t, err)
	assert.NotEqual(t, stored.ID, other.ID)
}

func TestMemoryStoreListSubmittedNewestFirst(t *testing.T) {
	s := NewMemoryStore()
	first, _ := s.Submit(pendingGame("first"))
	second, _ := s.Submit(pendingGame("second"))

	games, err := s.ListSubmitted()
	require.NoError(t, err)
	require.Len(t, games, 2)
	assert.Equal(t, second.ID, games[0].ID)
	assert.Equal(t, first.ID, games[1].ID)
}

func TestMemoryStoreSetStatus(t *testing.T) {
	t.Run("Approve copies the record into the approved list", func(t *testing.T) {
		s := NewMemoryStore()
		stored, _ := s.Submit(pendingGame("alpha"))

		require.NoError(t, s.SetStatus(stored.ID, models.StatusApproved))

		approved, err := s.ListApproved()
		require.NoError(t, err)
		require.Len(t, approved, 1)
		assert.Equal(t, stored.ID, approved[0].ID)
		assert.Equal(t, "Game submitted by anonymous", approved[0].Description)

		submitted, _ := s.ListSubmitted()
		assert.Equal(t, models.StatusApproved, submitted[0].Status)
	})

	t.Run("Reject keeps the record out of the approved list", func(t *testing.T) {
		s := NewMemoryStore()
		stored, _ := s.Submit(pendingGame("alpha"))

		require.NoError(t, s.SetStatus(stored.ID, models.StatusRejected))

		approved, _ := s.ListApproved()
		assert.Empty(t, approved)

		submitted, _ := s.ListSubmitted()
		require.Len(t, submitted, 1)
		assert.Equal(t, models.StatusRejected, submitted[0].Status)
	})

	t.Run("Unknown id", func(t *testing.T) {
		s := NewMemoryStore()
		assert.ErrorIs(t, s.SetStatus("missing", models.StatusApproved), ErrNotFound)
	})
}

func TestMemoryStoreDelete(t *testing.T) {
	t.Run("Removes from both lists", func(t *testing.T) {
		s := NewMemoryStore()
		stored, _ := s.Submit(pendingGame("alpha"))
		require.NoError(t, s.SetStatus(stored.ID, models.StatusApproved))

		require.NoError(t, s.Delete(stored.ID))

		submitted, _ := s.ListSubmitted()
		assert.Empty(t, submitted)
		approved, _ := s.ListApproved()
		assert.Empty(t, approved)
	})

	t.Run("Unknown id", func(t *testing.T) {
		s := NewMemoryStore()
		assert.ErrorIs(t, s.Delete("missing"), ErrNotFound)
	})
}

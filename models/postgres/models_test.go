package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameBeforeCreate(t *testing.T) {
	t.Run("Assigns a uuid when the id is empty", func(t *testing.T) {
		g := &Game{Title: "Example", URL: "https://example-game.io"}
		require.NoError(t, g.BeforeCreate(nil))
		assert.NotEmpty(t, g.ID)

		other := &Game{Title: "Other", URL: "https://other.io"}
		require.NoError(t, other.BeforeCreate(nil))
		assert.NotEqual(t, g.ID, other.ID)
	})

	t.Run("Keeps a pre-assigned id", func(t *testing.T) {
		g := &Game{ID: "submitted-12345"}
		require.NoError(t, g.BeforeCreate(nil))
		assert.Equal(t, "submitted-12345", g.ID)
	})
}

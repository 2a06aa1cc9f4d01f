package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTitleFromURL(t *testing.T) {
	t.Run("Strips domain suffix and capitalizes", func(t *testing.T) {
		assert.Equal(t, "Example Game", TitleFromURL("https://example-game.io"))
		assert.Equal(t, "Fly Pieter", TitleFromURL("https://fly.pieter.com"))
		assert.Equal(t, "Vibesail", TitleFromURL("http://vibesail.com"))
	})

	t.Run("Strips leading www", func(t *testing.T) {
		assert.Equal(t, "Example", TitleFromURL("https://www.example.com"))
	})

	t.Run("Strips only one suffix", func(t *testing.T) {
		// .app is stripped, the inner .netlify stays and becomes a word.
		assert.Equal(t, "Fps Warehouse Netlify", TitleFromURL("https://fps-warehouse.netlify.app/"))
	})

	t.Run("Replaces underscores and dots with spaces", func(t *testing.T) {
		assert.Equal(t, "Some Game Beta", TitleFromURL("https://some_game.beta.io"))
	})

	t.Run("Unknown suffix is kept as a word", func(t *testing.T) {
		assert.Equal(t, "Kawaiicharacters Pretzel Design", TitleFromURL("https://kawaiicharacters.pretzel.design"))
	})

	t.Run("Malformed input falls back to prefix before first slash", func(t *testing.T) {
		assert.Equal(t, "not a url", TitleFromURL("not a url"))
		assert.Equal(t, "example.com", TitleFromURL("example.com/games/1"))
	})

	t.Run("Valid URLs never produce dots or empty titles", func(t *testing.T) {
		for _, raw := range []string{
			"https://fly.pieter.com",
			"https://party.wearezizo.com",
			"https://solarsystem.connekt.studio/",
			"http://beta-polytrack.kodub.com",
		} {
			title := TitleFromURL(raw)
			assert.NotEmpty(t, title, raw)
			assert.NotContains(t, title, ".", raw)
		}
	})
}

func TestScreenshotURL(t *testing.T) {
	t.Run("Builds thum.io URL embedding the hostname", func(t *testing.T) {
		got := ScreenshotURL("https://fly.pieter.com/play?level=2")
		assert.Equal(t, "https://image.thum.io/get/width/600/crop/900/https://fly.pieter.com", got)
	})

	t.Run("Output contains the hostname for any valid URL", func(t *testing.T) {
		for _, raw := range []string{"https://example-game.io", "http://vibesail.com/x/y"} {
			got := ScreenshotURL(raw)
			assert.True(t, strings.HasPrefix(got, "https://image.thum.io/get/"), raw)
			assert.Contains(t, got, hostOf(raw), raw)
		}
	})

	t.Run("Malformed input yields empty string", func(t *testing.T) {
		assert.Empty(t, ScreenshotURL("not a url"))
		assert.Empty(t, ScreenshotURL("example.com/no-scheme"))
	})
}

func hostOf(raw string) string {
	rest := strings.SplitN(raw, "://", 2)[1]
	return strings.SplitN(rest, "/", 2)[0]
}

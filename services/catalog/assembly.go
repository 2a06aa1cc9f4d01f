package catalog

import (
	"strconv"
	"strings"

	models "miniclip/models/postgres"
)

// GamesPerPage is the fixed page size of the public catalog.
const GamesPerPage = 48

// Page is one slice of the (possibly filtered) catalog. TotalCount is the
// size of the whole filtered set, not the slice.
type Page struct {
	Games      []Game
	TotalCount int
}

// AllGames assembles the full public catalog: the curated list in its fixed
// order, then the approved submissions newest first.
func (m *Moderation) AllGames() []Game {
	approved := m.ListApproved()
	all := make([]Game, 0, len(Curated)+len(approved))
	all = append(all, Curated...)
	for _, g := range approved {
		all = append(all, toCatalogGame(g))
	}
	return all
}

// ListCatalog filters and paginates an assembled catalog. Out-of-range pages
// yield an empty slice, never an error.
func ListCatalog(all []Game, page int, query string) Page {
	filtered := filterGames(all, query)

	if page < 1 {
		page = 1
	}
	start := (page - 1) * GamesPerPage
	end := start + GamesPerPage
	if start > len(filtered) {
		start = len(filtered)
	}
	if end > len(filtered) {
		end = len(filtered)
	}

	return Page{Games: filtered[start:end], TotalCount: len(filtered)}
}

// FindGame looks up a game by id across the assembled catalog.
func FindGame(all []Game, id string) (Game, bool) {
	for _, g := range all {
		if g.ID == id {
			return g, true
		}
	}
	return Game{}, false
}

// ParsePage interprets the page query parameter; anything that is not a
// positive number means page 1.
func ParsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

func filterGames(all []Game, query string) []Game {
	if query == "" {
		return all
	}
	q := strings.ToLower(query)
	filtered := make([]Game, 0, len(all))
	for _, g := range all {
		if strings.Contains(strings.ToLower(g.Title), q) ||
			strings.Contains(strings.ToLower(g.Description), q) {
			filtered = append(filtered, g)
		}
	}
	return filtered
}

func toCatalogGame(g models.Game) Game {
	return Game{
		ID:          g.ID,
		Title:       g.Title,
		Description: g.Description,
		URL:         g.URL,
		Screenshot:  g.Screenshot,
	}
}

package controllers

import (
	"net/http"

	"miniclip/services/catalog"

	"github.com/gin-gonic/gin"
)

// Pagination is the view model for the page links under a game grid.
type Pagination struct {
	CurrentPage int
	TotalPages  int
	PrevPage    int
	NextPage    int
	HasPrev     bool
	HasNext     bool
}

func paginate(currentPage, totalCount int) Pagination {
	totalPages := (totalCount + catalog.GamesPerPage - 1) / catalog.GamesPerPage
	if totalPages < 1 {
		totalPages = 1
	}
	return Pagination{
		CurrentPage: currentPage,
		TotalPages:  totalPages,
		PrevPage:    currentPage - 1,
		NextPage:    currentPage + 1,
		HasPrev:     currentPage > 1,
		HasNext:     currentPage < totalPages,
	}
}

// Home renders the catalog front page: featured strip plus the paginated
// full grid.
func Home(m *catalog.Moderation) gin.HandlerFunc {
	return func(c *gin.Context) {
		page := catalog.ParsePage(c.Query("page"))
		all := m.AllGames()
		result := catalog.ListCatalog(all, page, "")

		c.HTML(http.StatusOK, "home.html", gin.H{
			"Featured":   catalog.Featured(),
			"Games":      result.Games,
			"TotalCount": result.TotalCount,
			"Pagination": paginate(page, result.TotalCount),
		})
	}
}

// Search renders the catalog filtered by the q parameter, title or
// description substring, case-insensitive.
func Search(m *catalog.Moderation) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := c.Query("q")
		page := catalog.ParsePage(c.Query("page"))
		all := m.AllGames()
		result := catalog.ListCatalog(all, page, query)

		c.HTML(http.StatusOK, "search.html", gin.H{
			"Query":      query,
			"Games":      result.Games,
			"TotalCount": result.TotalCount,
			"Pagination": paginate(page, result.TotalCount),
		})
	}
}

// GameDetail renders one game with its embedded play frame and a short list
// of other games.
func GameDetail(m *catalog.Moderation) gin.HandlerFunc {
	return func(c *gin.Context) {
		all := m.AllGames()
		game, ok := catalog.FindGame(all, c.Param("id"))
		if !ok {
			c.HTML(http.StatusNotFound, "not_found.html", gin.H{})
			return
		}

		others := make([]catalog.Game, 0, 4)
		for _, g := range all {
			if g.ID != game.ID && len(others) < 4 {
				others = append(others, g)
			}
		}

		c.HTML(http.StatusOK, "game.html", gin.H{
			"Game":       game,
			"OtherGames": others,
		})
	}
}

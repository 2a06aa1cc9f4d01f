package controllers

import (
	"errors"
	"net/http"

	"miniclip/services/catalog"

	"github.com/gin-gonic/gin"
)

// SubmitForm renders the public submission form.
func SubmitForm() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "submit.html", gin.H{})
	}
}

// Submit handles the submission POST. A missing URL is the only validation
// failure and is rendered inline; everything else redirects to the success
// page no matter which store accepted the write.
func Submit(m *catalog.Moderation) gin.HandlerFunc {
	return func(c *gin.Context) {
		url := c.PostForm("url")

		if _, err := m.Submit(url); err != nil {
			if errors.Is(err, catalog.ErrURLRequired) {
				c.HTML(http.StatusBadRequest, "submit.html", gin.H{
					"Error": "Game URL is required",
					"URL":   url,
				})
				return
			}
			c.HTML(http.StatusInternalServerError, "submit.html", gin.H{
				"Error": "Failed to submit game. Please try again.",
				"URL":   url,
			})
			return
		}

		c.Redirect(http.StatusSeeOther, "/submit/success")
	}
}

// SubmitSuccess renders the post-submission thank-you page.
func SubmitSuccess() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "submit_success.html", gin.H{})
	}
}

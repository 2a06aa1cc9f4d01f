package controllers

import (
	"net/http"
	"os"

	"miniclip/middleware"
	"miniclip/services/catalog"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

const defaultAdminPassword = "nosurprises"

// The trust boundary is a single shared secret. ADMIN_PASSWORD_HASH (bcrypt)
// wins over the plaintext ADMIN_PASSWORD when both are set.
func adminPasswordMatches(password string) bool {
	if hash := os.Getenv("ADMIN_PASSWORD_HASH"); hash != "" {
		return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
	}
	expected := os.Getenv("ADMIN_PASSWORD")
	if expected == "" {
		expected = defaultAdminPassword
	}
	return password == expected
}

// LoginForm renders the admin login page; an admin with a live session is
// sent straight to the dashboard.
func LoginForm() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		if session.Get(middleware.AdminKey) != nil {
			c.Redirect(http.StatusFound, "/admin")
			return
		}
		c.HTML(http.StatusOK, "admin_login.html", gin.H{})
	}
}

// Login checks the shared admin password. The form also posts a hardcoded
// email field; it is not part of the check.
func Login() gin.HandlerFunc {
	return func(c *gin.Context) {
		password := c.PostForm("password")

		if !adminPasswordMatches(password) {
			c.HTML(http.StatusUnauthorized, "admin_login.html", gin.H{
				"Error": "Invalid password",
			})
			return
		}

		session := sessions.Default(c)
		session.Set(middleware.AdminKey, true)
		if err := session.Save(); err != nil {
			c.HTML(http.StatusInternalServerError, "admin_login.html", gin.H{
				"Error": "Failed to save session",
			})
			return
		}
		c.Redirect(http.StatusSeeOther, "/admin")
	}
}

// Logout clears the admin session and returns to the login page.
func Logout() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		session.Delete(middleware.AdminKey)
		session.Options(sessions.Options{Path: "/", MaxAge: -1})
		if err := session.Save(); err != nil {
			log.Warnf("Failed to clear admin session: %v", err)
		}
		c.Redirect(http.StatusSeeOther, "/admin/login")
	}
}

// Dashboard renders the moderation table with every submission, any status.
func Dashboard(m *catalog.Moderation) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.HTML(http.StatusOK, "admin_dashboard.html", gin.H{
			"Games":             m.ListSubmitted(),
			"DurableConfigured": m.DurableConfigured(),
		})
	}
}

// Approve promotes a pending submission into the public catalog. A missing id
// is swallowed; the dashboard redirect happens either way.
func Approve(m *catalog.Moderation) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.PostForm("id")
		if err := m.Approve(id); err != nil {
			log.Warnf("Failed to approve game %s: %v", id, err)
		}
		c.Redirect(http.StatusSeeOther, "/admin")
	}
}

// Reject marks a pending submission rejected.
func Reject(m *catalog.Moderation) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.PostForm("id")
		if err := m.Reject(id); err != nil {
			log.Warnf("Failed to reject game %s: %v", id, err)
		}
		c.Redirect(http.StatusSeeOther, "/admin")
	}
}

// Delete removes a submission regardless of status.
func Delete(m *catalog.Moderation) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.PostForm("id")
		if err := m.Delete(id); err != nil {
			log.Warnf("Failed to delete game %s: %v", id, err)
		}
		c.Redirect(http.StatusSeeOther, "/admin")
	}
}

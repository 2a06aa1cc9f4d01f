package middleware

import (
	"net/http"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

// SessionName is the admin session cookie.
const SessionName = "admin-auth"

// SessionMaxAge is one day, matching the admin login expiry.
const SessionMaxAge = 60 * 60 * 24

func SetUpMiddleware(r *gin.Engine) {
	key := os.Getenv("SESSION_KEY")
	if key == "" {
		key = "secret"
	}
	store := cookie.NewStore([]byte(key))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   SessionMaxAge,
		HttpOnly: true,
		Secure:   os.Getenv("PROD") == "true",
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions(SessionName, store))

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"*"},
		AllowHeaders:     []string{"*"},
		AllowCredentials: true,
	}))
}

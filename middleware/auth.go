package middleware

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// AdminKey is the session key that marks an authenticated admin.
const AdminKey = "admin"

// AuthRequired guards every admin route, the mutation POSTs included, not
// just the dashboard render. Requests without a session are sent to the
// login page before any store is touched.
func AuthRequired(c *gin.Context) {
	session := sessions.Default(c)
	if session.Get(AdminKey) == nil {
		c.Redirect(http.StatusFound, "/admin/login")
		c.Abort()
		return
	}
	c.Next()
}

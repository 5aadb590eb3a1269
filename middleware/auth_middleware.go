package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aumvipul/notes-sharing-website/internal/auth"
	"github.com/aumvipul/notes-sharing-website/internal/metrics"
	"github.com/aumvipul/notes-sharing-website/internal/web"
)

// AuthMiddleware 验证 session cookie 是否有效
// The token signature alone is not enough: the session id inside it must still
// exist server-side, so logout really revokes access.
func AuthMiddleware(session *auth.SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		rejectUnauthenticated := func() {
			metrics.IncForbidden("session")
			if web.WantsJSON(c) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
				return
			}
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
		}

		tokenStr, err := c.Cookie(auth.CookieName)
		if err != nil || tokenStr == "" {
			rejectUnauthenticated()
			return
		}

		claims, err := auth.ParseToken(tokenStr)
		if err != nil {
			rejectUnauthenticated()
			return
		}

		alive, err := session.SessionAlive(claims.ID)
		if err != nil || !alive {
			rejectUnauthenticated()
			return
		}

		// 将用户信息写入上下文
		c.Set("user_id", claims.UserID)
		c.Set("username", claims.Username)
		c.Set("is_admin", claims.IsAdmin)
		c.Set("session_id", claims.ID)
		c.Next()
	}
}

// AdminMiddleware gates admin routes. Non-admin browsers are bounced back to
// the dashboard; API clients get a 403.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool("is_admin") {
			metrics.IncForbidden("admin")
			if web.WantsJSON(c) {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required"})
				return
			}
			web.SetFlash(c, "danger", "Access denied!")
			c.Redirect(http.StatusFound, "/dashboard")
			c.Abort()
			return
		}
		c.Next()
	}
}

// SessionUserID returns the authenticated user's id from the request context.
func SessionUserID(c *gin.Context) uint {
	return c.GetUint("user_id")
}

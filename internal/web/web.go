// Package web holds the small pieces shared between middleware and handlers:
// flash cookies and API-client detection.
package web

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
)

const flashCookie = "flash"

// WantsJSON reports whether the client should get structured error responses
// instead of the browser redirect+flash flow.
func WantsJSON(c *gin.Context) bool {
	if c.GetHeader("X-Requested-With") == "XMLHttpRequest" {
		return true
	}
	accept := c.GetHeader("Accept")
	return strings.Contains(accept, "application/json") && !strings.Contains(accept, "text/html")
}

// SetFlash attaches a one-time message to the next rendered page.
func SetFlash(c *gin.Context, category, message string) {
	v := url.QueryEscape(category + "|" + message)
	c.SetCookie(flashCookie, v, 60, "/", "", false, true)
}

// TakeFlash reads and clears the pending flash message, if any.
func TakeFlash(c *gin.Context) (category, message string, ok bool) {
	raw, err := c.Cookie(flashCookie)
	if err != nil || raw == "" {
		return "", "", false
	}
	c.SetCookie(flashCookie, "", -1, "/", "", false, true)
	decoded, err := url.QueryUnescape(raw)
	if err != nil {
		return "", "", false
	}
	parts := strings.SplitN(decoded, "|", 2)
	if len(parts) != 2 {
		return "", "", false
	}
	return parts[0], parts[1], true
}

// Redirect sends the browser to the given path with a flash message attached.
func Redirect(c *gin.Context, path, category, message string) {
	if message != "" {
		SetFlash(c, category, message)
	}
	c.Redirect(http.StatusFound, path)
}

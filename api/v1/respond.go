package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/aumvipul/notes-sharing-website/internal/web"
)

// pageModel builds the base view model for a page, folding in any pending
// flash message. The presentation layer renders it; the handlers only supply
// data.
func pageModel(c *gin.Context, page string) gin.H {
	m := gin.H{"page": page}
	if category, message, ok := web.TakeFlash(c); ok {
		m["flash"] = gin.H{"category": category, "message": message}
	}
	return m
}

// fail reports an error the way the client expects: structured JSON for API
// clients, flash + redirect for browsers.
func fail(c *gin.Context, status int, message, redirectTo string) {
	if web.WantsJSON(c) {
		c.JSON(status, gin.H{"error": message})
		return
	}
	web.Redirect(c, redirectTo, "danger", message)
}

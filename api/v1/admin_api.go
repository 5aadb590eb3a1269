package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/aumvipul/notes-sharing-website/internal/metrics"
	"github.com/aumvipul/notes-sharing-website/internal/web"
	"github.com/aumvipul/notes-sharing-website/middleware"
	"github.com/aumvipul/notes-sharing-website/service"
)

// AdminAPI exposes the aggregate views and destructive admin operations.
// Every route behind it already passed the session and admin gates.
type AdminAPI struct {
	service *service.AdminService
}

// NewAdminAPI wires the admin service into the HTTP handlers.
func NewAdminAPI(s *service.AdminService) *AdminAPI {
	return &AdminAPI{service: s}
}

// Dashboard serves the aggregate counts.
func (a *AdminAPI) Dashboard(c *gin.Context) {
	stats, err := a.service.Stats()
	if err != nil {
		fail(c, http.StatusInternalServerError, err.Error(), "/dashboard")
		return
	}
	m := pageModel(c, "admin_dashboard")
	m["total_users"] = stats.TotalUsers
	m["total_notes"] = stats.TotalNotes
	c.JSON(http.StatusOK, m)
}

// Users lists every account.
func (a *AdminAPI) Users(c *gin.Context) {
	users, err := a.service.ListUsers()
	if err != nil {
		fail(c, http.StatusInternalServerError, err.Error(), "/admin")
		return
	}
	m := pageModel(c, "admin_users")
	m["users"] = users
	c.JSON(http.StatusOK, m)
}

// DeleteUser removes a user and everything hanging off them. A missing id is a
// silent no-op for browsers and a 404 for API clients.
func (a *AdminAPI) DeleteUser(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		metrics.IncAdminDelete("user", "bad_request")
		fail(c, http.StatusBadRequest, "invalid user id", "/admin/users")
		return
	}
	if err := a.service.DeleteUser(uint(userID), middleware.SessionUserID(c)); err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			metrics.IncAdminDelete("user", "not_found")
			if web.WantsJSON(c) {
				c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
				return
			}
			c.Redirect(http.StatusFound, "/admin/users")
		case errors.Is(err, service.ErrSelfDelete):
			metrics.IncAdminDelete("user", "self_delete")
			fail(c, http.StatusConflict, "You cannot delete your own account.", "/admin/users")
		default:
			metrics.IncAdminDelete("user", "internal_error")
			fail(c, http.StatusInternalServerError, err.Error(), "/admin/users")
		}
		return
	}
	metrics.IncAdminDelete("user", "success")
	if web.WantsJSON(c) {
		c.JSON(http.StatusOK, gin.H{"message": "user deleted"})
		return
	}
	web.Redirect(c, "/admin/users", "success", "User deleted successfully.")
}

// Notes lists every note.
func (a *AdminAPI) Notes(c *gin.Context) {
	notes, err := a.service.ListNotes()
	if err != nil {
		fail(c, http.StatusInternalServerError, err.Error(), "/admin")
		return
	}
	m := pageModel(c, "admin_notes")
	m["notes"] = notes
	c.JSON(http.StatusOK, m)
}

// DeleteNote removes a note row, its likes and its backing file.
func (a *AdminAPI) DeleteNote(c *gin.Context) {
	noteID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		metrics.IncAdminDelete("note", "bad_request")
		fail(c, http.StatusBadRequest, "invalid note id", "/admin/notes")
		return
	}
	if err := a.service.DeleteNote(uint(noteID)); err != nil {
		if errors.Is(err, service.ErrNoteNotFound) {
			metrics.IncAdminDelete("note", "not_found")
			if web.WantsJSON(c) {
				c.JSON(http.StatusNotFound, gin.H{"error": "note not found"})
				return
			}
			c.Redirect(http.StatusFound, "/admin/notes")
			return
		}
		metrics.IncAdminDelete("note", "internal_error")
		fail(c, http.StatusInternalServerError, err.Error(), "/admin/notes")
		return
	}
	metrics.IncAdminDelete("note", "success")
	if web.WantsJSON(c) {
		c.JSON(http.StatusOK, gin.H{"message": "note deleted"})
		return
	}
	web.Redirect(c, "/admin/notes", "success", "Note deleted successfully.")
}

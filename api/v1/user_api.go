package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aumvipul/notes-sharing-website/api/v1/request"
	"github.com/aumvipul/notes-sharing-website/config"
	"github.com/aumvipul/notes-sharing-website/internal/auth"
	"github.com/aumvipul/notes-sharing-website/internal/metrics"
	"github.com/aumvipul/notes-sharing-website/internal/web"
	"github.com/aumvipul/notes-sharing-website/service"
)

// UserAPI exposes HTTP handlers for registration/login/logout flows.
type UserAPI struct {
	service *service.UserService
}

// NewUserAPI wires the service layer into the HTTP handlers.
func NewUserAPI(s *service.UserService) *UserAPI {
	return &UserAPI{service: s}
}

// RegisterForm serves the registration page view model.
func (u *UserAPI) RegisterForm(c *gin.Context) {
	c.JSON(http.StatusOK, pageModel(c, "register"))
}

// Register handles new account creation. A taken username or email is a
// Conflict regardless of which of the two collided.
func (u *UserAPI) Register(c *gin.Context) {
	var req request.RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		metrics.IncRegister("bad_request")
		fail(c, http.StatusBadRequest, err.Error(), "/register")
		return
	}
	if err := u.service.Register(req.Username, req.Email, req.Password); err != nil {
		if errors.Is(err, service.ErrUserExists) {
			metrics.IncRegister("conflict")
			fail(c, http.StatusConflict, "User already exists!", "/register")
			return
		}
		metrics.IncRegister("internal_error")
		fail(c, http.StatusInternalServerError, err.Error(), "/register")
		return
	}
	metrics.IncRegister("success")
	if web.WantsJSON(c) {
		c.JSON(http.StatusCreated, gin.H{"message": "registration successful"})
		return
	}
	web.Redirect(c, "/login", "success", "Registration successful! Please login.")
}

// LoginForm serves the login page view model.
func (u *UserAPI) LoginForm(c *gin.Context) {
	c.JSON(http.StatusOK, pageModel(c, "login"))
}

// Login validates credentials and sets the session cookie.
func (u *UserAPI) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		metrics.IncLogin("bad_request")
		fail(c, http.StatusBadRequest, err.Error(), "/login")
		return
	}
	token, user, err := u.service.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			metrics.IncLogin("unauthorized")
			fail(c, http.StatusUnauthorized, "Invalid email or password", "/login")
			return
		}
		metrics.IncLogin("internal_error")
		fail(c, http.StatusInternalServerError, err.Error(), "/login")
		return
	}
	metrics.IncLogin("success")
	c.SetCookie(auth.CookieName, token, int(config.GlobalConfig.Session.Expire), "/", "", false, true)
	if web.WantsJSON(c) {
		c.JSON(http.StatusOK, gin.H{"message": "login successful", "username": user.Username})
		return
	}
	web.Redirect(c, "/dashboard", "success", "Login successful!")
}

// Logout revokes the session (if any) and clears the cookie. It stays public:
// logging out with a stale or missing cookie is not an error.
func (u *UserAPI) Logout(c *gin.Context) {
	if tokenStr, err := c.Cookie(auth.CookieName); err == nil && tokenStr != "" {
		if claims, err := auth.ParseToken(tokenStr); err == nil {
			_ = u.service.Logout(claims.ID)
		}
	}
	c.SetCookie(auth.CookieName, "", -1, "/", "", false, true)
	if web.WantsJSON(c) {
		c.JSON(http.StatusOK, gin.H{"message": "logged out"})
		return
	}
	web.Redirect(c, "/", "info", "Logged out successfully.")
}

// Dashboard serves the landing page view model for a logged-in user.
func (u *UserAPI) Dashboard(c *gin.Context) {
	m := pageModel(c, "dashboard")
	m["username"] = c.GetString("username")
	m["is_admin"] = c.GetBool("is_admin")
	c.JSON(http.StatusOK, m)
}

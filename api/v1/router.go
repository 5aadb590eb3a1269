package v1

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aumvipul/notes-sharing-website/middleware"
	"github.com/aumvipul/notes-sharing-website/service"
)

// NewRouter assembles the full HTTP surface. Tests build the same router the
// server runs.
func NewRouter(users *service.UserService, notes *service.NoteService, admin *service.AdminService, rdb *redis.Client) *gin.Engine {
	userAPI := NewUserAPI(users)
	noteAPI := NewNoteAPI(notes)
	adminAPI := NewAdminAPI(admin)

	r := gin.Default()
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 公共路由
	r.GET("/", noteAPI.Home)
	r.GET("/register", userAPI.RegisterForm)
	r.POST("/register", userAPI.Register)
	r.GET("/login", userAPI.LoginForm)
	loginLimiter := middleware.LoginRateLimiter(rdb, 5, time.Minute)
	r.POST("/login", loginLimiter, userAPI.Login)
	r.GET("/logout", userAPI.Logout)

	// 私有路由
	private := r.Group("/")
	private.Use(middleware.AuthMiddleware(users.Session))
	{
		private.GET("/dashboard", userAPI.Dashboard)
		private.GET("/upload", noteAPI.UploadForm)
		private.POST("/upload", noteAPI.Upload)
		private.GET("/notes", noteAPI.List)
		private.GET("/my-notes", noteAPI.MyNotes)
		private.GET("/download/:filename", noteAPI.Download)
		private.GET("/like/:id", noteAPI.Like)
	}

	// 管理员路由
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.AuthMiddleware(users.Session), middleware.AdminMiddleware())
	{
		adminGroup.GET("", adminAPI.Dashboard)
		adminGroup.GET("/users", adminAPI.Users)
		adminGroup.GET("/delete-user/:id", adminAPI.DeleteUser)
		adminGroup.GET("/notes", adminAPI.Notes)
		adminGroup.GET("/delete-note/:id", adminAPI.DeleteNote)
	}

	return r
}

package request

type RegisterRequest struct {
	Username string `form:"username" json:"username" binding:"required,notblank"`
	Email    string `form:"email" json:"email" binding:"required,notblank"`
	Password string `form:"password" json:"password" binding:"required"`
}

type LoginRequest struct {
	Email    string `form:"email" json:"email" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
}

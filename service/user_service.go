package service

import (
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"github.com/aumvipul/notes-sharing-website/config"
	"github.com/aumvipul/notes-sharing-website/dao"
	"github.com/aumvipul/notes-sharing-website/internal/auth"
	"github.com/aumvipul/notes-sharing-website/model"
	"github.com/aumvipul/notes-sharing-website/utils"
)

var (
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// UserService bundles the DAO, session storage and authentication helpers.
type UserService struct {
	dao     *dao.UserDAO
	Session *auth.SessionManager
}

// NewUserService 创建一个新的 UserService 实例
func NewUserService(dao *dao.UserDAO, rdb *redis.Client) *UserService {
	return &UserService{
		dao:     dao,
		Session: auth.NewSessionManager(rdb),
	}
}

// Register persists a freshly created user after hashing the password.
// Duplicate username or email surfaces as ErrUserExists; the unique indexes
// decide, not a prior lookup.
func (s *UserService) Register(username, email, password string) error {
	hashed, err := utils.HashPassword(password)
	if err != nil {
		return err
	}
	user := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: hashed,
	}
	if err := s.dao.CreateUser(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrUserExists
		}
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
			return ErrUserExists
		}
		return err
	}
	return nil
}

// Login checks email/password and establishes a session. Whether the email is
// unknown or the password wrong, the caller sees the same error.
func (s *UserService) Login(email, password string) (string, *model.User, error) {
	user, err := s.dao.FindByEmail(email)
	if err != nil || user.ID == 0 {
		return "", nil, ErrInvalidCredentials
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return "", nil, ErrInvalidCredentials
	}

	token, sessionID, err := auth.GenerateSessionToken(user)
	if err != nil {
		return "", nil, err
	}
	ttl := time.Duration(config.GlobalConfig.Session.Expire) * time.Second
	if err := s.Session.SaveSession(sessionID, user.ID, ttl); err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Logout revokes the server-side session record.
func (s *UserService) Logout(sessionID string) error {
	return s.Session.DeleteSession(sessionID)
}

// EnsureAdmin creates the seeded admin account if no user with the configured
// email exists. Safe to run on every startup.
func (s *UserService) EnsureAdmin(cfg config.AdminConfig) error {
	_, err := s.dao.FindByEmail(cfg.Email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	hashed, err := utils.HashPassword(cfg.Password)
	if err != nil {
		return err
	}
	return s.dao.CreateUser(&model.User{
		Username:     cfg.Username,
		Email:        cfg.Email,
		PasswordHash: hashed,
		IsAdmin:      true,
	})
}

package service

import (
	"fmt"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/aumvipul/notes-sharing-website/config"
	"github.com/aumvipul/notes-sharing-website/dao"
	"github.com/aumvipul/notes-sharing-website/internal/storage"
	"github.com/aumvipul/notes-sharing-website/model"
)

// newTestDB opens an isolated in-memory sqlite database. The named shared
// cache keeps gorm's connection pool on one database instead of one per
// connection.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Note{}, &model.Like{}))
	return db
}

func newTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	return redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

func setTestConfig(t *testing.T) {
	t.Helper()
	config.GlobalConfig = &config.Config{
		Session: config.SessionConfig{Secret: "test-secret", Expire: 3600},
	}
}

func newTestStore(t *testing.T) *storage.Store {
	t.Helper()
	s, err := storage.NewStore(t.TempDir(), []string{"pdf", "doc", "docx", "png", "jpg", "jpeg"})
	require.NoError(t, err)
	return s
}

// seedUser registers a user directly through the DAO and returns it.
func seedUser(t *testing.T, db *gorm.DB, username, email string, admin bool) *model.User {
	t.Helper()
	u := &model.User{
		Username:     username,
		Email:        email,
		PasswordHash: "x",
		IsAdmin:      admin,
	}
	require.NoError(t, dao.NewUserDAO(db).CreateUser(u))
	return u
}

package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

var ctx = context.Background()

// CookieName is the session cookie set on login and cleared on logout.
const CookieName = "session_token"

// SessionManager keeps one Redis record per live session. Deleting the record
// revokes the session even if the cookie token has not expired yet.
type SessionManager struct {
	rdb *redis.Client
}

func NewSessionManager(rdb *redis.Client) *SessionManager {
	return &SessionManager{rdb: rdb}
}

// SaveSession records a freshly issued session id for the user.
func (s *SessionManager) SaveSession(sessionID string, userID uint, ttl time.Duration) error {
	key := fmt.Sprintf("notes:session:%s", sessionID)
	return s.rdb.Set(ctx, key, userID, ttl).Err()
}

// SessionAlive reports whether the session id has not been revoked or expired.
func (s *SessionManager) SessionAlive(sessionID string) (bool, error) {
	key := fmt.Sprintf("notes:session:%s", sessionID)
	res, err := s.rdb.Exists(ctx, key).Result()
	return res == 1, err
}

// DeleteSession revokes a session, used during logout and user deletion.
func (s *SessionManager) DeleteSession(sessionID string) error {
	key := fmt.Sprintf("notes:session:%s", sessionID)
	return s.rdb.Del(ctx, key).Err()
}

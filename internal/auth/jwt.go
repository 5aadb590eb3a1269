package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/aumvipul/notes-sharing-website/config"
	"github.com/aumvipul/notes-sharing-website/model"
)

// Claims is the payload of the session cookie token. The ID (jti) doubles as
// the key of the server-side session record, so a token is only valid while
// that record exists.
type Claims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
	jwt.RegisteredClaims
}

// GenerateSessionToken signs a session token for the user and returns it along
// with the session id to store server-side.
func GenerateSessionToken(user *model.User) (token, sessionID string, err error) {
	now := time.Now()
	sessionID = uuid.NewString()
	claims := Claims{
		UserID:   user.ID,
		Username: user.Username,
		IsAdmin:  user.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sessionID,
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(config.GlobalConfig.Session.Expire) * time.Second)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token, err = jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(config.GlobalConfig.Session.Secret))
	if err != nil {
		return "", "", err
	}
	return token, sessionID, nil
}

// ParseToken validates signature and expiry of a session token.
func ParseToken(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(config.GlobalConfig.Session.Secret), nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, errors.New("invalid token")
}

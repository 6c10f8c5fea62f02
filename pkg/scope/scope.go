package scope

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"smart-todo-backend/internal/model"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

// Manager issues and verifies the signed scopes that identify a user on
// every authenticated request.
type Manager interface {
	Generate(scope model.Scope) (string, error)
	Verify(token string) (model.Scope, error)
}

type jwtManager struct {
	secret []byte
	ttl    time.Duration
}

// NewManager creates an HS256 scope manager. Tokens carry user_id and email
// claims and expire after ttl.
func NewManager(secret string, ttl time.Duration) Manager {
	return &jwtManager{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

func (m *jwtManager) Generate(scope model.Scope) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": scope.UserID,
		"email":   scope.Email,
		"exp":     now.Add(m.ttl).Unix(),
		"iat":     now.Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(m.secret)
}

func (m *jwtManager) Verify(token string) (model.Scope, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return model.Scope{}, ErrExpiredToken
		}
		return model.Scope{}, ErrInvalidToken
	}
	if !parsed.Valid {
		return model.Scope{}, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return model.Scope{}, ErrInvalidToken
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return model.Scope{}, ErrInvalidToken
	}
	email, _ := claims["email"].(string)

	return model.Scope{UserID: userID, Email: email}, nil
}

package scope

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrMissingUser  = errors.New("token has no user id")
)

// Payload is what a verified token carries.
type Payload struct {
	UserID   string
	Username string
}

// Manager issues and verifies bearer tokens.
type Manager interface {
	CreateToken(p Payload) (string, error)
	Verify(token string) (Payload, error)
}

type claims struct {
	Username string `json:"username,omitempty"`
	jwt.RegisteredClaims
}

type implManager struct {
	secret []byte
	ttl    time.Duration
	issuer string
}

// New creates a HS256 token Manager. A non-positive ttl defaults to 30 days.
func New(secret string, ttl time.Duration) Manager {
	if ttl <= 0 {
		ttl = 30 * 24 * time.Hour
	}
	return &implManager{
		secret: []byte(secret),
		ttl:    ttl,
		issuer: "productivity-planner",
	}
}

func (m *implManager) CreateToken(p Payload) (string, error) {
	if p.UserID == "" {
		return "", ErrMissingUser
	}

	now := time.Now()
	c := claims{
		Username: p.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   p.UserID,
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func (m *implManager) Verify(tokenString string) (Payload, error) {
	var c claims
	token, err := jwt.ParseWithClaims(tokenString, &c, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return Payload{}, ErrInvalidToken
	}
	if c.Subject == "" {
		return Payload{}, ErrMissingUser
	}
	return Payload{UserID: c.Subject, Username: c.Username}, nil
}

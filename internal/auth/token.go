// Package auth issues and verifies the JWT tokens used by the API. The
// signing secret always comes from configuration, never from source.
package auth

import (
	"fmt"
	"time"

	"agronat/internal/model"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the token payload. It carries the profile fields the frontend
// renders without a roundtrip.
type Claims struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Lastname string `json:"lastname"`
	Nickname string `json:"nickname"`
	Email    string `json:"email"`
	Rol      string `json:"rol"`
	jwt.RegisteredClaims
}

type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenManager(secret string, ttlHours int) *TokenManager {
	return &TokenManager{secret: []byte(secret), ttl: time.Duration(ttlHours) * time.Hour}
}

// Sign issues an HS256 token for the user and returns it with its issued-at
// and expiry unix timestamps.
func (m *TokenManager) Sign(u *model.Usuario) (string, int64, int64, error) {
	now := time.Now()
	exp := now.Add(m.ttl)
	claims := Claims{
		ID:       u.ID.String(),
		Name:     u.Name,
		Lastname: u.Lastname,
		Nickname: u.Nickname,
		Email:    u.Email,
		Rol:      u.Rol,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", 0, 0, err
	}
	return token, now.Unix(), exp.Unix(), nil
}

// Parse verifies the signature and expiry and returns the claims.
func (m *TokenManager) Parse(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("metodo de firma inesperado: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}

package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/crmventas/backend/internal/domain"
	"github.com/crmventas/backend/internal/models"
)

// DefaultTTL is how long an issued token stays valid.
const DefaultTTL = 24 * time.Hour

// Claims is the identity embedded in every access token. The JSON keys
// are part of the wire contract consumed by the frontend.
type Claims struct {
	ID      uint   `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"nombre"`
	Surname string `json:"apellido"`
	jwt.RegisteredClaims
}

func Sign(user *models.User, secret []byte, ttl time.Duration) (string, error) {
	claims := Claims{
		ID:      user.ID,
		Email:   user.Email,
		Name:    user.Name,
		Surname: user.Surname,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(secret)
}

func Verify(raw string, secret []byte) (*Claims, error) {
	claims := &Claims{}
	t, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil || !t.Valid {
		return nil, domain.ErrUnauthenticated
	}

	return claims, nil
}

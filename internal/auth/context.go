package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/crmventas/backend/internal/domain"
	"github.com/crmventas/backend/internal/token"
)

type ctxKey struct{}

// ClaimsFromRequest verifies the bearer token of the Authorization header.
// A missing or invalid token yields nil: the request proceeds without an
// identity and resolvers that need one fail with ErrUnauthenticated.
func ClaimsFromRequest(r *http.Request, secret []byte) *token.Claims {
	raw := r.Header.Get("Authorization")
	if raw == "" {
		return nil
	}
	raw = strings.TrimPrefix(raw, "Bearer ")

	claims, err := token.Verify(raw, secret)
	if err != nil {
		return nil
	}
	return claims
}

func WithClaims(ctx context.Context, claims *token.Claims) context.Context {
	return context.WithValue(ctx, ctxKey{}, claims)
}

func FromContext(ctx context.Context) (*token.Claims, error) {
	if claims, ok := ctx.Value(ctxKey{}).(*token.Claims); ok && claims != nil {
		return claims, nil
	}
	return nil, domain.ErrUnauthenticated
}

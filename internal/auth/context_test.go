package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/crmventas/backend/internal/domain"
	"github.com/crmventas/backend/internal/models"
	"github.com/crmventas/backend/internal/token"
)

var secret = []byte("test_secret")

func TestFromContextMissing(t *testing.T) {
	_, err := FromContext(context.Background())
	require.ErrorIs(t, err, domain.ErrUnauthenticated)
}

func TestWithClaimsRoundTrip(t *testing.T) {
	claims := &token.Claims{ID: 7, Email: "ana@crm.dev"}
	ctx := WithClaims(context.Background(), claims)

	got, err := FromContext(ctx)
	require.NoError(t, err)
	require.Equal(t, claims, got)
}

func TestClaimsFromRequest(t *testing.T) {
	user := &models.User{ID: 7, Email: "ana@crm.dev", Name: "Ana", Surname: "Lopez"}
	raw, err := token.Sign(user, secret, token.DefaultTTL)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/graphql", nil)
	req.Header.Set("Authorization", "Bearer "+raw)

	claims := ClaimsFromRequest(req, secret)
	require.NotNil(t, claims)
	require.Equal(t, user.ID, claims.ID)
	require.Equal(t, user.Email, claims.Email)
}

func TestClaimsFromRequestInvalid(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/graphql", nil)
	require.Nil(t, ClaimsFromRequest(req, secret))

	req.Header.Set("Authorization", "Bearer garbage")
	require.Nil(t, ClaimsFromRequest(req, secret))

	user := &models.User{ID: 7, Email: "ana@crm.dev"}
	raw, err := token.Sign(user, []byte("other_secret"), token.DefaultTTL)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+raw)
	require.Nil(t, ClaimsFromRequest(req, secret))
}

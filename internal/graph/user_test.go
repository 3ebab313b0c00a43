package graph

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/crmventas/backend/internal/models"
	"github.com/crmventas/backend/internal/token"
)

func TestCreateUser(t *testing.T) {
	env := newTestEnv(t)

	res := env.exec(`mutation {
		nuevoUsuario(input: {nombre: "Ana", apellido: "Lopez", email: "ana@crm.dev", password: "secret123"}) {
			id nombre apellido email
		}
	}`, nil)

	user := env.data(res, "nuevoUsuario")
	require.Equal(t, "Ana", user["nombre"])
	require.Equal(t, "Lopez", user["apellido"])
	require.Equal(t, "ana@crm.dev", user["email"])

	var stored models.User
	require.NoError(t, env.DB.Where("email = ?", "ana@crm.dev").First(&stored).Error)
	require.NotEqual(t, "secret123", stored.Password)
	require.NotEmpty(t, stored.Password)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser("ana@crm.dev")

	res := env.exec(`mutation {
		nuevoUsuario(input: {nombre: "Ana", apellido: "Lopez", email: "ana@crm.dev", password: "secret123"}) { id }
	}`, nil)

	require.Equal(t, "user already exists", errMessage(res))
}

func TestAuthenticateUser(t *testing.T) {
	env := newTestEnv(t)
	user, _ := env.seedUser("ana@crm.dev")

	res := env.exec(`mutation {
		autenticarUsuario(input: {email: "ana@crm.dev", password: "password"}) { token }
	}`, nil)

	payload := env.data(res, "autenticarUsuario")
	raw, ok := payload["token"].(string)
	require.True(t, ok)
	require.NotEmpty(t, raw)

	claims, err := token.Verify(raw, env.Secret)
	require.NoError(t, err)
	require.Equal(t, user.ID, claims.ID)
	require.Equal(t, user.Email, claims.Email)
	require.Equal(t, user.Name, claims.Name)
	require.Equal(t, user.Surname, claims.Surname)
}

func TestAuthenticateUserWrongPassword(t *testing.T) {
	env := newTestEnv(t)
	env.seedUser("ana@crm.dev")

	res := env.exec(`mutation {
		autenticarUsuario(input: {email: "ana@crm.dev", password: "wrong"}) { token }
	}`, nil)
	require.Equal(t, "invalid credentials", errMessage(res))

	res = env.exec(`mutation {
		autenticarUsuario(input: {email: "nobody@crm.dev", password: "password"}) { token }
	}`, nil)
	require.Equal(t, "invalid credentials", errMessage(res))
}

func TestGetUserFromToken(t *testing.T) {
	env := newTestEnv(t)
	user, _ := env.seedUser("ana@crm.dev")

	raw, err := token.Sign(user, env.Secret, token.DefaultTTL)
	require.NoError(t, err)

	res := env.exec(fmt.Sprintf(`{ obtenerUsuario(token: %q) { id nombre apellido email } }`, raw), nil)

	decoded := env.data(res, "obtenerUsuario")
	require.Equal(t, fmt.Sprint(user.ID), decoded["id"])
	require.Equal(t, user.Name, decoded["nombre"])
	require.Equal(t, user.Email, decoded["email"])
}

func TestGetUserInvalidToken(t *testing.T) {
	env := newTestEnv(t)

	res := env.exec(`{ obtenerUsuario(token: "garbage") { id } }`, nil)
	require.Equal(t, "not authenticated", errMessage(res))
}

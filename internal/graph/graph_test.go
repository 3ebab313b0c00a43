package graph

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/graphql-go/graphql"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/crmventas/backend/internal/auth"
	"github.com/crmventas/backend/internal/hash"
	"github.com/crmventas/backend/internal/models"
	"github.com/crmventas/backend/internal/token"
)

type testEnv struct {
	T        *testing.T
	DB       *gorm.DB
	Resolver *Resolver
	Schema   graphql.Schema
	Secret   []byte
}

func newTestEnv(t *testing.T) *testEnv {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Client{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
	))

	secret := []byte("test_secret")
	resolver := &Resolver{DB: db, JWTSecret: secret}

	schema, err := NewSchema(resolver)
	require.NoError(t, err)

	return &testEnv{T: t, DB: db, Resolver: resolver, Schema: schema, Secret: secret}
}

// exec runs an operation; a nil claims argument leaves the request
// unauthenticated.
func (env *testEnv) exec(query string, claims *token.Claims) *graphql.Result {
	ctx := context.Background()
	if claims != nil {
		ctx = auth.WithClaims(ctx, claims)
	}
	return graphql.Do(graphql.Params{
		Schema:        env.Schema,
		RequestString: query,
		Context:       ctx,
	})
}

func (env *testEnv) data(res *graphql.Result, field string) map[string]interface{} {
	env.T.Helper()
	require.Empty(env.T, res.Errors)
	root, ok := res.Data.(map[string]interface{})
	require.True(env.T, ok)
	value, ok := root[field].(map[string]interface{})
	require.True(env.T, ok)
	return value
}

func (env *testEnv) list(res *graphql.Result, field string) []interface{} {
	env.T.Helper()
	require.Empty(env.T, res.Errors)
	root, ok := res.Data.(map[string]interface{})
	require.True(env.T, ok)
	value, ok := root[field].([]interface{})
	require.True(env.T, ok)
	return value
}

func errMessage(res *graphql.Result) string {
	if len(res.Errors) == 0 {
		return ""
	}
	return res.Errors[0].Message
}

func (env *testEnv) seedUser(email string) (*models.User, *token.Claims) {
	hashed, err := hash.HashPassword("password")
	require.NoError(env.T, err)

	user := models.User{
		Email:    email,
		Password: hashed,
		Name:     "Ana",
		Surname:  "Lopez",
	}
	require.NoError(env.T, env.DB.Create(&user).Error)

	claims := &token.Claims{
		ID:      user.ID,
		Email:   user.Email,
		Name:    user.Name,
		Surname: user.Surname,
	}
	return &user, claims
}

func (env *testEnv) seedClient(sellerID uint, email string) *models.Client {
	client := models.Client{
		Name:     "Carlos",
		Surname:  "Mora",
		Company:  "ACME",
		Email:    email,
		Phone:    "555-0100",
		SellerID: sellerID,
	}
	require.NoError(env.T, env.DB.Create(&client).Error)
	return &client
}

func (env *testEnv) seedProduct(name string, stock uint, price float64) *models.Product {
	product := models.Product{Name: name, Stock: stock, Price: price}
	require.NoError(env.T, env.DB.Create(&product).Error)
	return &product
}

func (env *testEnv) productStock(id uint) uint {
	var product models.Product
	require.NoError(env.T, env.DB.First(&product, id).Error)
	return product.Stock
}

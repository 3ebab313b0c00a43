package graph

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/crmventas/backend/internal/models"
)

func TestTopClients(t *testing.T) {
	env := newTestEnv(t)
	seller, _ := env.seedUser("ana@crm.dev")
	best := env.seedClient(seller.ID, "best@acme.dev")
	second := env.seedClient(seller.ID, "second@acme.dev")
	pending := env.seedClient(seller.ID, "pending@acme.dev")

	orders := []models.Order{
		{ClientID: best.ID, SellerID: seller.ID, Total: 100, Status: models.OrderStatusCompleted},
		{ClientID: best.ID, SellerID: seller.ID, Total: 150, Status: models.OrderStatusCompleted},
		{ClientID: second.ID, SellerID: seller.ID, Total: 200, Status: models.OrderStatusCompleted},
		{ClientID: pending.ID, SellerID: seller.ID, Total: 900, Status: models.OrderStatusPending},
		{ClientID: pending.ID, SellerID: seller.ID, Total: 900, Status: models.OrderStatusCancelled},
	}
	require.NoError(t, env.DB.Create(&orders).Error)

	res := env.exec(`{ mejoresClientes { total cliente { id email } } }`, nil)
	top := env.list(res, "mejoresClientes")
	require.Len(t, top, 2)

	firstRow := top[0].(map[string]interface{})
	require.Equal(t, 250.0, firstRow["total"])
	require.Equal(t, fmt.Sprint(best.ID), firstRow["cliente"].(map[string]interface{})["id"])

	secondRow := top[1].(map[string]interface{})
	require.Equal(t, 200.0, secondRow["total"])
}

func TestTopSellers(t *testing.T) {
	env := newTestEnv(t)
	alpha, _ := env.seedUser("alpha@crm.dev")
	beta, _ := env.seedUser("beta@crm.dev")
	client := env.seedClient(alpha.ID, "carlos@acme.dev")

	orders := []models.Order{
		{ClientID: client.ID, SellerID: alpha.ID, Total: 50, Status: models.OrderStatusCompleted},
		{ClientID: client.ID, SellerID: beta.ID, Total: 80, Status: models.OrderStatusCompleted},
		{ClientID: client.ID, SellerID: beta.ID, Total: 70, Status: models.OrderStatusCompleted},
		{ClientID: client.ID, SellerID: alpha.ID, Total: 500, Status: models.OrderStatusPending},
	}
	require.NoError(t, env.DB.Create(&orders).Error)

	res := env.exec(`{ mejoresVendedores { total vendedor { id email } } }`, nil)
	top := env.list(res, "mejoresVendedores")
	require.Len(t, top, 2)

	firstRow := top[0].(map[string]interface{})
	require.Equal(t, 150.0, firstRow["total"])
	require.Equal(t, "beta@crm.dev", firstRow["vendedor"].(map[string]interface{})["email"])

	secondRow := top[1].(map[string]interface{})
	require.Equal(t, 50.0, secondRow["total"])
}

func TestTopClientsCappedAtTen(t *testing.T) {
	env := newTestEnv(t)
	seller, _ := env.seedUser("ana@crm.dev")

	for i := 0; i < 12; i++ {
		client := env.seedClient(seller.ID, fmt.Sprintf("client%d@acme.dev", i))
		order := models.Order{
			ClientID: client.ID,
			SellerID: seller.ID,
			Total:    float64(10 + i),
			Status:   models.OrderStatusCompleted,
		}
		require.NoError(t, env.DB.Create(&order).Error)
	}

	res := env.exec(`{ mejoresClientes { total } }`, nil)
	top := env.list(res, "mejoresClientes")
	require.Len(t, top, 10)

	last := 1e9
	for _, row := range top {
		total := row.(map[string]interface{})["total"].(float64)
		require.LessOrEqual(t, total, last)
		last = total
	}
}

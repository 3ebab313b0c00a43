package graph

import (
	"github.com/graphql-go/graphql"

	"github.com/crmventas/backend/internal/models"
)

// reportLimit caps both sales reports at the top ten.
const reportLimit = 10

type salesRow struct {
	OwnerID uint
	Total   float64
}

// TopClients groups completed orders by client, summing order totals.
func (r *Resolver) TopClients(p graphql.ResolveParams) (interface{}, error) {
	var rows []salesRow
	if err := r.DB.Model(&models.Order{}).
		Select("client_id AS owner_id, SUM(total) AS total").
		Where("status = ?", models.OrderStatusCompleted).
		Group("client_id").
		Order("total DESC").
		Limit(reportLimit).
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	result := make([]map[string]interface{}, 0, len(rows))
	for _, row := range rows {
		var client models.Client
		if err := r.DB.First(&client, row.OwnerID).Error; err != nil {
			return nil, err
		}
		result = append(result, map[string]interface{}{
			"total":   row.Total,
			"cliente": client,
		})
	}
	return result, nil
}

// TopSellers groups completed orders by seller, summing order totals.
func (r *Resolver) TopSellers(p graphql.ResolveParams) (interface{}, error) {
	var rows []salesRow
	if err := r.DB.Model(&models.Order{}).
		Select("seller_id AS owner_id, SUM(total) AS total").
		Where("status = ?", models.OrderStatusCompleted).
		Group("seller_id").
		Order("total DESC").
		Limit(reportLimit).
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	result := make([]map[string]interface{}, 0, len(rows))
	for _, row := range rows {
		var seller models.User
		if err := r.DB.First(&seller, row.OwnerID).Error; err != nil {
			return nil, err
		}
		result = append(result, map[string]interface{}{
			"total":    row.Total,
			"vendedor": seller,
		})
	}
	return result, nil
}

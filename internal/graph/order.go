package graph

import (
	"errors"
	"fmt"

	"github.com/graphql-go/graphql"
	"gorm.io/gorm"

	"github.com/crmventas/backend/internal/auth"
	"github.com/crmventas/backend/internal/domain"
	"github.com/crmventas/backend/internal/models"
)

func (r *Resolver) GetOrders(p graphql.ResolveParams) (interface{}, error) {
	var orders []models.Order
	if err := r.DB.Preload("Items").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *Resolver) GetSellerOrders(p graphql.ResolveParams) (interface{}, error) {
	claims, err := auth.FromContext(p.Context)
	if err != nil {
		return nil, err
	}

	var orders []models.Order
	if err := r.DB.Preload("Items").Where("seller_id = ?", claims.ID).Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *Resolver) GetOrder(p graphql.ResolveParams) (interface{}, error) {
	claims, err := auth.FromContext(p.Context)
	if err != nil {
		return nil, err
	}
	return r.ownedOrder(p.Args["id"], claims.ID)
}

func (r *Resolver) GetOrdersByStatus(p graphql.ResolveParams) (interface{}, error) {
	claims, err := auth.FromContext(p.Context)
	if err != nil {
		return nil, err
	}

	status, _ := p.Args["estado"].(string)

	var orders []models.Order
	if err := r.DB.Preload("Items").
		Where("seller_id = ? AND status = ?", claims.ID, status).
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *Resolver) CreateOrder(p graphql.ResolveParams) (interface{}, error) {
	claims, err := auth.FromContext(p.Context)
	if err != nil {
		return nil, err
	}

	input := p.Args["input"].(map[string]interface{})

	client, err := r.ownedClient(input["cliente"], claims.ID)
	if err != nil {
		return nil, err
	}

	itemsRaw, _ := input["pedido"].([]interface{})
	if len(itemsRaw) == 0 {
		return nil, errors.New("an order needs at least one item")
	}

	var order models.Order
	txErr := r.DB.Transaction(func(tx *gorm.DB) error {
		items, total, err := reserveStock(tx, itemsRaw)
		if err != nil {
			return err
		}

		order = models.Order{
			Items:    items,
			Total:    total,
			ClientID: client.ID,
			SellerID: claims.ID,
			Status:   models.OrderStatusPending,
		}
		if status, ok := input["estado"].(string); ok && status != "" {
			order.Status = status
		}
		return tx.Create(&order).Error
	})
	if txErr != nil {
		return nil, txErr
	}

	r.publish(p.Context, fmt.Sprint(claims.ID), map[string]interface{}{
		"type":     "order_created",
		"orderID":  order.ID,
		"sellerID": claims.ID,
		"clientID": client.ID,
		"total":    order.Total,
	})

	return &order, nil
}

func (r *Resolver) UpdateOrder(p graphql.ResolveParams) (interface{}, error) {
	claims, err := auth.FromContext(p.Context)
	if err != nil {
		return nil, err
	}

	order, err := r.ownedOrder(p.Args["id"], claims.ID)
	if err != nil {
		return nil, err
	}

	input := p.Args["input"].(map[string]interface{})

	client, err := r.ownedClient(input["cliente"], claims.ID)
	if err != nil {
		return nil, err
	}

	txErr := r.DB.Transaction(func(tx *gorm.DB) error {
		if itemsRaw, ok := input["pedido"].([]interface{}); ok && len(itemsRaw) > 0 {
			items, total, err := reserveStock(tx, itemsRaw)
			if err != nil {
				return err
			}

			if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderItem{}).Error; err != nil {
				return err
			}
			for i := range items {
				items[i].OrderID = order.ID
			}
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
			order.Total = total
		}

		order.ClientID = client.ID
		if status, ok := input["estado"].(string); ok && status != "" {
			order.Status = status
		}
		order.Items = nil
		return tx.Save(order).Error
	})
	if txErr != nil {
		return nil, txErr
	}

	if err := r.DB.Preload("Items").First(order, order.ID).Error; err != nil {
		return nil, err
	}

	r.publish(p.Context, fmt.Sprint(claims.ID), map[string]interface{}{
		"type":    "order_updated",
		"orderID": order.ID,
		"status":  order.Status,
	})

	return order, nil
}

func (r *Resolver) DeleteOrder(p graphql.ResolveParams) (interface{}, error) {
	claims, err := auth.FromContext(p.Context)
	if err != nil {
		return nil, err
	}

	order, err := r.ownedOrder(p.Args["id"], claims.ID)
	if err != nil {
		return nil, err
	}

	txErr := r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(order).Error
	})
	if txErr != nil {
		return nil, txErr
	}

	r.publish(p.Context, fmt.Sprint(claims.ID), map[string]interface{}{
		"type":    "order_deleted",
		"orderID": order.ID,
	})

	return "Pedido eliminado", nil
}

// reserveStock validates and decrements stock for each line item inside the
// caller's transaction. The decrement is conditional on the current stock, so
// two concurrent orders cannot both take the last units; any failure rolls
// back every decrement made for this request.
func reserveStock(tx *gorm.DB, itemsRaw []interface{}) ([]models.OrderItem, float64, error) {
	var (
		items []models.OrderItem
		total float64
	)
	for _, raw := range itemsRaw {
		line, ok := raw.(map[string]interface{})
		if !ok {
			return nil, 0, errors.New("invalid order item")
		}

		productID, err := parseID(line["id"])
		if err != nil {
			return nil, 0, err
		}
		quantity := inputUint(line, "cantidad")
		if quantity == 0 {
			return nil, 0, errors.New("quantity must be > 0")
		}

		var product models.Product
		if err := tx.First(&product, productID).Error; err != nil {
			return nil, 0, notFound(err, domain.ErrProductNotFound)
		}

		res := tx.Model(&models.Product{}).
			Where("id = ? AND stock >= ?", productID, quantity).
			UpdateColumn("stock", gorm.Expr("stock - ?", quantity))
		if res.Error != nil {
			return nil, 0, res.Error
		}
		if res.RowsAffected == 0 {
			return nil, 0, &domain.InsufficientStockError{Product: product.Name}
		}

		total += float64(quantity) * product.Price
		items = append(items, models.OrderItem{ProductID: productID, Quantity: quantity})
	}
	return items, total, nil
}

func (r *Resolver) ownedOrder(rawID interface{}, sellerID uint) (*models.Order, error) {
	id, err := parseID(rawID)
	if err != nil {
		return nil, err
	}

	var order models.Order
	if err := r.DB.Preload("Items").First(&order, id).Error; err != nil {
		return nil, notFound(err, domain.ErrOrderNotFound)
	}
	if order.SellerID != sellerID {
		return nil, domain.ErrForbidden
	}
	return &order, nil
}

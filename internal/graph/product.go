package graph

import (
	"fmt"

	"github.com/graphql-go/graphql"

	"github.com/crmventas/backend/internal/domain"
	"github.com/crmventas/backend/internal/logging"
	"github.com/crmventas/backend/internal/models"
)

func (r *Resolver) GetProducts(p graphql.ResolveParams) (interface{}, error) {
	var products []models.Product
	if err := r.DB.Order("id ASC").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *Resolver) GetProduct(p graphql.ResolveParams) (interface{}, error) {
	id, err := parseID(p.Args["id"])
	if err != nil {
		return nil, err
	}

	var product models.Product
	if err := r.DB.First(&product, id).Error; err != nil {
		return nil, notFound(err, domain.ErrProductNotFound)
	}
	return &product, nil
}

func (r *Resolver) CreateProduct(p graphql.ResolveParams) (interface{}, error) {
	input := p.Args["input"].(map[string]interface{})

	product := models.Product{
		Name:  inputString(input, "nombre"),
		Stock: inputUint(input, "existencia"),
		Price: inputFloat(input, "precio"),
	}
	if err := r.DB.Create(&product).Error; err != nil {
		return nil, err
	}

	r.index(p, &product)
	r.publish(p.Context, fmt.Sprint(product.ID), map[string]interface{}{
		"type":      "product_created",
		"productID": product.ID,
		"name":      product.Name,
	})

	return &product, nil
}

func (r *Resolver) UpdateProduct(p graphql.ResolveParams) (interface{}, error) {
	id, err := parseID(p.Args["id"])
	if err != nil {
		return nil, err
	}

	var product models.Product
	if err := r.DB.First(&product, id).Error; err != nil {
		return nil, notFound(err, domain.ErrProductNotFound)
	}

	input := p.Args["input"].(map[string]interface{})
	product.Name = inputString(input, "nombre")
	product.Stock = inputUint(input, "existencia")
	product.Price = inputFloat(input, "precio")

	if err := r.DB.Save(&product).Error; err != nil {
		return nil, err
	}

	r.index(p, &product)
	r.publish(p.Context, fmt.Sprint(product.ID), map[string]interface{}{
		"type":      "product_updated",
		"productID": product.ID,
		"name":      product.Name,
	})

	return &product, nil
}

func (r *Resolver) DeleteProduct(p graphql.ResolveParams) (interface{}, error) {
	id, err := parseID(p.Args["id"])
	if err != nil {
		return nil, err
	}

	var product models.Product
	if err := r.DB.First(&product, id).Error; err != nil {
		return nil, notFound(err, domain.ErrProductNotFound)
	}

	if err := r.DB.Delete(&product).Error; err != nil {
		return nil, err
	}

	if r.Searcher != nil {
		if err := r.Searcher.DeleteProduct(p.Context, id); err != nil {
			logging.FromContext(p.Context).Error("search deindex error", "err", err)
		}
	}
	r.publish(p.Context, fmt.Sprint(id), map[string]interface{}{
		"type":      "product_deleted",
		"productID": id,
	})

	return "Producto eliminado", nil
}

func (r *Resolver) SearchProducts(p graphql.ResolveParams) (interface{}, error) {
	if r.Searcher == nil {
		return nil, domain.ErrSearchUnavailable
	}

	text, _ := p.Args["texto"].(string)
	return r.Searcher.Search(p.Context, text, searchLimit)
}

// index keeps the search index in step with product writes. Indexing
// failures are logged, not surfaced: the store stays the source of truth.
func (r *Resolver) index(p graphql.ResolveParams, product *models.Product) {
	if r.Searcher == nil {
		return
	}
	if err := r.Searcher.IndexProduct(p.Context, product); err != nil {
		logging.FromContext(p.Context).Error("search index error", "err", err)
	}
}

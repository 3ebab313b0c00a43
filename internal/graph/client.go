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

func (r *Resolver) GetClients(p graphql.ResolveParams) (interface{}, error) {
	var clients []models.Client
	if err := r.DB.Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

func (r *Resolver) GetSellerClients(p graphql.ResolveParams) (interface{}, error) {
	claims, err := auth.FromContext(p.Context)
	if err != nil {
		return nil, err
	}

	var clients []models.Client
	if err := r.DB.Where("seller_id = ?", claims.ID).Find(&clients).Error; err != nil {
		return nil, err
	}
	return clients, nil
}

func (r *Resolver) GetClient(p graphql.ResolveParams) (interface{}, error) {
	claims, err := auth.FromContext(p.Context)
	if err != nil {
		return nil, err
	}

	client, err := r.ownedClient(p.Args["id"], claims.ID)
	if err != nil {
		return nil, err
	}
	return client, nil
}

func (r *Resolver) CreateClient(p graphql.ResolveParams) (interface{}, error) {
	claims, err := auth.FromContext(p.Context)
	if err != nil {
		return nil, err
	}

	input := p.Args["input"].(map[string]interface{})
	email := inputString(input, "email")

	var existing models.Client
	lookup := r.DB.Where("email = ?", email).First(&existing).Error
	if lookup == nil {
		return nil, domain.ErrClientExists
	}
	if !errors.Is(lookup, gorm.ErrRecordNotFound) {
		return nil, lookup
	}

	client := models.Client{
		Name:     inputString(input, "nombre"),
		Surname:  inputString(input, "apellido"),
		Company:  inputString(input, "empresa"),
		Email:    email,
		Phone:    inputString(input, "telefono"),
		SellerID: claims.ID,
	}
	if err := r.DB.Create(&client).Error; err != nil {
		return nil, err
	}

	r.publish(p.Context, fmt.Sprint(claims.ID), map[string]interface{}{
		"type":     "client_created",
		"clientID": client.ID,
		"sellerID": claims.ID,
	})

	return &client, nil
}

func (r *Resolver) UpdateClient(p graphql.ResolveParams) (interface{}, error) {
	claims, err := auth.FromContext(p.Context)
	if err != nil {
		return nil, err
	}

	client, err := r.ownedClient(p.Args["id"], claims.ID)
	if err != nil {
		return nil, err
	}

	input := p.Args["input"].(map[string]interface{})
	client.Name = inputString(input, "nombre")
	client.Surname = inputString(input, "apellido")
	client.Company = inputString(input, "empresa")
	client.Email = inputString(input, "email")
	client.Phone = inputString(input, "telefono")

	if err := r.DB.Save(client).Error; err != nil {
		return nil, err
	}
	return client, nil
}

func (r *Resolver) DeleteClient(p graphql.ResolveParams) (interface{}, error) {
	claims, err := auth.FromContext(p.Context)
	if err != nil {
		return nil, err
	}

	client, err := r.ownedClient(p.Args["id"], claims.ID)
	if err != nil {
		return nil, err
	}

	if err := r.DB.Delete(client).Error; err != nil {
		return nil, err
	}

	r.publish(p.Context, fmt.Sprint(claims.ID), map[string]interface{}{
		"type":     "client_deleted",
		"clientID": client.ID,
		"sellerID": claims.ID,
	})

	return "Cliente eliminado", nil
}

// ownedClient fetches a client by id and enforces that the requesting
// seller created it.
func (r *Resolver) ownedClient(rawID interface{}, sellerID uint) (*models.Client, error) {
	id, err := parseID(rawID)
	if err != nil {
		return nil, err
	}

	var client models.Client
	if err := r.DB.First(&client, id).Error; err != nil {
		return nil, notFound(err, domain.ErrClientNotFound)
	}
	if client.SellerID != sellerID {
		return nil, domain.ErrForbidden
	}
	return &client, nil
}

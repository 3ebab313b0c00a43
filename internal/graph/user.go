package graph

import (
	"errors"
	"fmt"

	"github.com/graphql-go/graphql"
	"gorm.io/gorm"

	"github.com/crmventas/backend/internal/domain"
	"github.com/crmventas/backend/internal/hash"
	"github.com/crmventas/backend/internal/models"
	"github.com/crmventas/backend/internal/token"
)

// GetUser decodes a token back into the identity claims it carries.
func (r *Resolver) GetUser(p graphql.ResolveParams) (interface{}, error) {
	raw, _ := p.Args["token"].(string)
	return token.Verify(raw, r.JWTSecret)
}

func (r *Resolver) CreateUser(p graphql.ResolveParams) (interface{}, error) {
	input := p.Args["input"].(map[string]interface{})
	email := inputString(input, "email")

	var existing models.User
	err := r.DB.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, domain.ErrUserExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := hash.HashPassword(inputString(input, "password"))
	if err != nil {
		return nil, err
	}

	user := models.User{
		Email:    email,
		Password: hashed,
		Name:     inputString(input, "nombre"),
		Surname:  inputString(input, "apellido"),
	}
	if err := r.DB.Create(&user).Error; err != nil {
		return nil, err
	}

	r.publish(p.Context, fmt.Sprint(user.ID), map[string]interface{}{
		"type":   "user_registered",
		"userID": user.ID,
		"email":  user.Email,
	})

	return &user, nil
}

func (r *Resolver) AuthenticateUser(p graphql.ResolveParams) (interface{}, error) {
	input := p.Args["input"].(map[string]interface{})

	var user models.User
	if err := r.DB.Where("email = ?", inputString(input, "email")).First(&user).Error; err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	if !hash.CheckPassword(user.Password, inputString(input, "password")) {
		return nil, domain.ErrInvalidCredentials
	}

	t, err := token.Sign(&user, r.JWTSecret, token.DefaultTTL)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{"token": t}, nil
}

package domain

import (
	"errors"
	"fmt"
)

var (
	ErrUnauthenticated    = errors.New("not authenticated")
	ErrForbidden          = errors.New("access denied")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")
	ErrClientExists       = errors.New("client already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrClientNotFound     = errors.New("client not found")
	ErrProductNotFound    = errors.New("product not found")
	ErrOrderNotFound      = errors.New("order not found")
	ErrSearchUnavailable  = errors.New("search is not configured")
)

// InsufficientStockError names the product whose requested quantity
// exceeds the available stock.
type InsufficientStockError struct {
	Product string
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("product %q exceeds the available stock", e.Product)
}

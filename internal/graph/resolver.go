package graph

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"gorm.io/gorm"

	"github.com/crmventas/backend/internal/logging"
	"github.com/crmventas/backend/internal/models"
	"github.com/crmventas/backend/internal/mykafka"
)

// searchLimit caps free-text product search results.
const searchLimit = 10

// ProductSearcher maintains and queries the product text index.
type ProductSearcher interface {
	Search(ctx context.Context, query string, limit int) ([]models.Product, error)
	IndexProduct(ctx context.Context, p *models.Product) error
	DeleteProduct(ctx context.Context, id uint) error
}

// Resolver holds every dependency the Query/Mutation handlers need.
type Resolver struct {
	DB        *gorm.DB
	JWTSecret []byte
	Producer  *mykafka.Producer
	Searcher  ProductSearcher
}

func (r *Resolver) publish(ctx context.Context, key string, event map[string]interface{}) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := r.Producer.PublishEvent(ctx, key, event); err != nil {
		logging.FromContext(ctx).Error("kafka publish error", "err", err)
	}
}

func parseID(v interface{}) (uint, error) {
	switch t := v.(type) {
	case string:
		id, err := strconv.ParseUint(t, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid id %q", t)
		}
		return uint(id), nil
	case int:
		if t < 0 {
			return 0, fmt.Errorf("invalid id %d", t)
		}
		return uint(t), nil
	default:
		return 0, fmt.Errorf("invalid id")
	}
}

func inputString(m map[string]interface{}, key string) string {
	v, _ := m[key].(string)
	return v
}

func inputFloat(m map[string]interface{}, key string) float64 {
	switch t := m[key].(type) {
	case float64:
		return t
	case int:
		return float64(t)
	}
	return 0
}

func inputUint(m map[string]interface{}, key string) uint {
	switch t := m[key].(type) {
	case int:
		if t > 0 {
			return uint(t)
		}
	case float64:
		if t > 0 {
			return uint(t)
		}
	}
	return 0
}

// notFound maps a gorm record-not-found to the domain sentinel and passes
// any other error through.
func notFound(err error, sentinel error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return err
}

package store

import (
	"context"

	"github.com/ougirez/regstat/internal/domain"
	"github.com/ougirez/regstat/internal/pkg/store/dbx"
)

type Pool = dbx.Pool

// Store: read-only доступ к справочникам и фактам регистраций.
type Store interface {
	GetCategoryByCode(ctx context.Context, code string) (*domain.VehicleCategory, error)
	GetManufacturerByName(ctx context.Context, name string) (*domain.Manufacturer, error)
	ListCategories(ctx context.Context) ([]*domain.VehicleCategory, error)
	ListManufacturers(ctx context.Context) ([]*domain.Manufacturer, error)
	ListFacts(ctx context.Context, filter domain.FactFilter) ([]*domain.RegistrationFact, error)
	Ping(ctx context.Context) error
}

type store struct {
	pool Pool
}

func NewStore(pool Pool) Store {
	return &store{pool}
}

func (s *store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

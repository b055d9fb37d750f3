// Package memstore: хранилище регистраций в памяти. Наполняется один раз до
// начала чтения, после чего безопасно для конкурентных запросов.
package memstore

import (
	"context"
	"sort"

	"github.com/ougirez/regstat/internal/domain"
	"github.com/ougirez/regstat/internal/pkg/constants"
	"github.com/ougirez/regstat/internal/pkg/store"
)

type Store struct {
	manufacturers []*domain.Manufacturer
	categories    []*domain.VehicleCategory
	facts         []*domain.RegistrationFact
	nextID        int64
}

var _ store.Store = (*Store)(nil)

func New() *Store {
	return &Store{}
}

func (s *Store) id() int64 {
	s.nextID++
	return s.nextID
}

func (s *Store) AddManufacturer(name string) int64 {
	m := &domain.Manufacturer{ID: s.id(), Name: name}
	s.manufacturers = append(s.manufacturers, m)
	return m.ID
}

func (s *Store) AddCategory(code string) int64 {
	c := &domain.VehicleCategory{ID: s.id(), Code: code}
	s.categories = append(s.categories, c)
	return c.ID
}

// AddFact не проверяет квартал, чтобы можно было воспроизвести битые данные.
func (s *Store) AddFact(manufacturerID, categoryID int64, year, quarter int, count int64) {
	s.facts = append(s.facts, &domain.RegistrationFact{
		ID:                s.id(),
		ManufacturerID:    manufacturerID,
		CategoryID:        categoryID,
		Period:            domain.Period{Year: year, Quarter: quarter},
		RegistrationCount: count,
	})
}

func (s *Store) GetCategoryByCode(_ context.Context, code string) (*domain.VehicleCategory, error) {
	for _, c := range s.categories {
		if c.Code == code {
			cp := *c
			return &cp, nil
		}
	}
	return nil, constants.ErrDBNotFound
}

func (s *Store) GetManufacturerByName(_ context.Context, name string) (*domain.Manufacturer, error) {
	for _, m := range s.manufacturers {
		if m.Name == name {
			cp := *m
			return &cp, nil
		}
	}
	return nil, constants.ErrDBNotFound
}

func (s *Store) ListCategories(_ context.Context) ([]*domain.VehicleCategory, error) {
	out := make([]*domain.VehicleCategory, 0, len(s.categories))
	for _, c := range s.categories {
		cp := *c
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out, nil
}

func (s *Store) ListManufacturers(_ context.Context) ([]*domain.Manufacturer, error) {
	out := make([]*domain.Manufacturer, 0, len(s.manufacturers))
	for _, m := range s.manufacturers {
		cp := *m
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// ListFacts отдаёт факты в порядке добавления и, как SQL-хранилище, сравнивает
// (year, quarter) целиком, не проверяя сам квартал.
func (s *Store) ListFacts(ctx context.Context, filter domain.FactFilter) ([]*domain.RegistrationFact, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make([]*domain.RegistrationFact, 0)
	for _, f := range s.facts {
		if filter.Match(f) {
			cp := *f
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (s *Store) Ping(ctx context.Context) error {
	return ctx.Err()
}

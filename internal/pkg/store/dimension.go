package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/ougirez/regstat/internal/domain"
	"github.com/ougirez/regstat/internal/pkg/store/dbx"
)

var (
	manufacturerColumns = []string{"manufacturer_id", "name"}
	categoryColumns     = []string{"category_id", "code"}
)

// GetCategoryByCode ищет категорию по точному коду, с учётом регистра.
func (s *store) GetCategoryByCode(ctx context.Context, code string) (*domain.VehicleCategory, error) {
	query := s.builder().Select(categoryColumns...).
		From(tableVehicleCategories).
		Where(sq.Eq{"code": code}).
		Limit(1)

	var selected domain.VehicleCategory
	if err := s.pool.Getx(ctx, query, &selected.ID, &selected.Code); err != nil {
		return nil, fmt.Errorf("get category %q: %w", code, wrapErr(err))
	}

	return &selected, nil
}

// GetManufacturerByName ищет производителя по точному имени, с учётом регистра.
func (s *store) GetManufacturerByName(ctx context.Context, name string) (*domain.Manufacturer, error) {
	query := s.builder().Select(manufacturerColumns...).
		From(tableManufacturers).
		Where(sq.Eq{"name": name}).
		Limit(1)

	var selected domain.Manufacturer
	if err := s.pool.Getx(ctx, query, &selected.ID, &selected.Name); err != nil {
		return nil, fmt.Errorf("get manufacturer %q: %w", name, wrapErr(err))
	}

	return &selected, nil
}

func (s *store) ListCategories(ctx context.Context) ([]*domain.VehicleCategory, error) {
	query := s.builder().Select(categoryColumns...).
		From(tableVehicleCategories).
		OrderBy("code")

	selected := make([]*domain.VehicleCategory, 0)
	err := s.pool.Selectx(ctx, query, func(row dbx.Row) error {
		var c domain.VehicleCategory
		if err := row.Scan(&c.ID, &c.Code); err != nil {
			return err
		}
		selected = append(selected, &c)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	return selected, nil
}

func (s *store) ListManufacturers(ctx context.Context) ([]*domain.Manufacturer, error) {
	query := s.builder().Select(manufacturerColumns...).
		From(tableManufacturers).
		OrderBy("name")

	selected := make([]*domain.Manufacturer, 0)
	err := s.pool.Selectx(ctx, query, func(row dbx.Row) error {
		var m domain.Manufacturer
		if err := row.Scan(&m.ID, &m.Name); err != nil {
			return err
		}
		selected = append(selected, &m)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list manufacturers: %w", err)
	}

	return selected, nil
}

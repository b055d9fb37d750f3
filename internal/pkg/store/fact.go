package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/ougirez/regstat/internal/domain"
	"github.com/ougirez/regstat/internal/pkg/store/dbx"
)

var factColumns = []string{"stat_id", "manufacturer_id", "category_id", "year", "quarter", "registration_count"}

// periodRangeClause сравнивает (year, quarter) как единый ключ; два отдельных
// BETWEEN по году и кварталу теряют граничные кварталы.
func periodRangeClause(r domain.PeriodRange) sq.Sqlizer {
	return sq.And{
		sq.Expr("(year, quarter) >= (?, ?)", r.Start.Year, r.Start.Quarter),
		sq.Expr("(year, quarter) <= (?, ?)", r.End.Year, r.End.Quarter),
	}
}

func (s *store) ListFacts(ctx context.Context, filter domain.FactFilter) ([]*domain.RegistrationFact, error) {
	query := s.builder().Select(factColumns...).
		From(tableRegistrationStats).
		Where(periodRangeClause(filter.Range)).
		OrderBy("year", "quarter", "stat_id")

	if filter.CategoryID != nil {
		query = query.Where(sq.Eq{"category_id": *filter.CategoryID})
	}

	if filter.ManufacturerID != nil {
		query = query.Where(sq.Eq{"manufacturer_id": *filter.ManufacturerID})
	}

	selected := make([]*domain.RegistrationFact, 0)
	err := s.pool.Selectx(ctx, query, func(row dbx.Row) error {
		var f domain.RegistrationFact
		if err := row.Scan(&f.ID, &f.ManufacturerID, &f.CategoryID, &f.Year, &f.Quarter, &f.RegistrationCount); err != nil {
			return err
		}
		selected = append(selected, &f)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list facts %s: %w", filter.Range, err)
	}

	return selected, nil
}

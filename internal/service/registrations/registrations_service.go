package registrations

import (
	"context"
	"errors"
	"fmt"

	"github.com/ougirez/regstat/internal/domain"
	"github.com/ougirez/regstat/internal/domain/dto"
	"github.com/ougirez/regstat/internal/pkg/constants"
	"github.com/ougirez/regstat/internal/pkg/logger"
	"github.com/ougirez/regstat/internal/pkg/store"
)

// Service строит квартальные ряды регистраций. Состояния между запросами нет.
type Service struct {
	store store.Store
}

func NewService(store store.Store) *Service {
	return &Service{store: store}
}

// ResolveCategory returns found=false with a nil error when the code is unknown.
func (s *Service) ResolveCategory(ctx context.Context, code string) (int64, bool, error) {
	category, err := s.store.GetCategoryByCode(ctx, code)
	if errors.Is(err, constants.ErrDBNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("resolve category: %w", err)
	}
	return category.ID, true, nil
}

// ResolveManufacturer returns found=false with a nil error when the name is unknown.
func (s *Service) ResolveManufacturer(ctx context.Context, name string) (int64, bool, error) {
	manufacturer, err := s.store.GetManufacturerByName(ctx, name)
	if errors.Is(err, constants.ErrDBNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("resolve manufacturer: %w", err)
	}
	return manufacturer.ID, true, nil
}

// Report resolves the dimensions the variant pins, category first, and
// aggregates matching facts per quarter. An unknown dimension yields
// *domain.DimensionNotFoundError before any fact is read.
func (s *Service) Report(ctx context.Context, variant Variant, req *dto.QueryRequest) ([]domain.PeriodTotal, error) {
	filter := domain.FactFilter{Range: req.Range()}

	if variant.PinsCategory() {
		id, found, err := s.ResolveCategory(ctx, req.Category)
		if err != nil {
			return nil, err
		}
		if !found {
			return nil, &domain.DimensionNotFoundError{Dimension: domain.DimensionCategory, Value: req.Category}
		}
		filter.CategoryID = &id
	}

	if variant.PinsManufacturer() {
		id, found, err := s.ResolveManufacturer(ctx, req.Manufacturer)
		if err != nil {
			return nil, err
		}
		if !found {
			return nil, &domain.DimensionNotFoundError{Dimension: domain.DimensionManufacturer, Value: req.Manufacturer}
		}
		filter.ManufacturerID = &id
	}

	return s.aggregate(ctx, variant, filter)
}

func (s *Service) aggregate(ctx context.Context, variant Variant, filter domain.FactFilter) ([]domain.PeriodTotal, error) {
	if filter.Range.Empty() {
		logger.Debugf(ctx, "%s: inverted range %s", variant, filter.Range)
		return []domain.PeriodTotal{}, nil
	}

	facts, err := s.store.ListFacts(ctx, filter)
	if err != nil {
		logger.Errorf(ctx, "%s: ListFacts: %s", variant, err.Error())
		return nil, err
	}

	matched := make([]*domain.RegistrationFact, 0, len(facts))
	for _, f := range facts {
		if err := f.Period.Validate(); err != nil {
			logger.Errorf(ctx, "%s: fact %d: %s", variant, f.ID, err.Error())
			return nil, fmt.Errorf("%w: fact %d: %w", constants.ErrIntegrityViolation, f.ID, err)
		}
		if filter.Match(f) {
			matched = append(matched, f)
		}
	}

	return domain.Aggregate(matched), nil
}

func (s *Service) ListCategories(ctx context.Context) ([]*domain.VehicleCategory, error) {
	return s.store.ListCategories(ctx)
}

func (s *Service) ListManufacturers(ctx context.Context) ([]*domain.Manufacturer, error) {
	return s.store.ListManufacturers(ctx)
}

func (s *Service) Ping(ctx context.Context) error {
	if err := s.store.Ping(ctx); err != nil {
		return fmt.Errorf("%w: %w", constants.ErrStoreUnavailable, err)
	}
	return nil
}

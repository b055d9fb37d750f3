package registrations

import (
	"context"
	"errors"
	"testing"

	"github.com/ougirez/regstat/internal/domain"
	"github.com/ougirez/regstat/internal/domain/dto"
	"github.com/ougirez/regstat/internal/pkg/constants"
	"github.com/ougirez/regstat/internal/pkg/store/memstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingStore считает обращения к фактам, чтобы проверить отсутствие чтения
// при неизвестном измерении.
type countingStore struct {
	*memstore.Store
	listFactsCalls int
	lookups        []string
	factsErr       error
}

func (c *countingStore) GetCategoryByCode(ctx context.Context, code string) (*domain.VehicleCategory, error) {
	c.lookups = append(c.lookups, "category")
	return c.Store.GetCategoryByCode(ctx, code)
}

func (c *countingStore) GetManufacturerByName(ctx context.Context, name string) (*domain.Manufacturer, error) {
	c.lookups = append(c.lookups, "manufacturer")
	return c.Store.GetManufacturerByName(ctx, name)
}

func (c *countingStore) ListFacts(ctx context.Context, filter domain.FactFilter) ([]*domain.RegistrationFact, error) {
	c.listFactsCalls++
	if c.factsErr != nil {
		return nil, c.factsErr
	}
	return c.Store.ListFacts(ctx, filter)
}

func newFixture() *countingStore {
	s := memstore.New()
	honda := s.AddManufacturer("Honda")
	yamaha := s.AddManufacturer("Yamaha")
	twoW := s.AddCategory("2W")
	fourW := s.AddCategory("4W")

	s.AddFact(honda, twoW, 2022, 1, 50)
	s.AddFact(yamaha, twoW, 2022, 1, 30)
	s.AddFact(honda, twoW, 2021, 4, 100)
	s.AddFact(honda, fourW, 2021, 2, 9)
	s.AddFact(honda, fourW, 2022, 2, 4)

	return &countingStore{Store: s}
}

func request(category, manufacturer string, sy, sq, ey, eq int) *dto.QueryRequest {
	return &dto.QueryRequest{
		Category:     category,
		Manufacturer: manufacturer,
		StartYear:    sy,
		StartQuarter: sq,
		EndYear:      ey,
		EndQuarter:   eq,
	}
}

func pt(year, quarter int, total int64) domain.PeriodTotal {
	return domain.PeriodTotal{Period: domain.Period{Year: year, Quarter: quarter}, Total: total}
}

func TestReportVariants(t *testing.T) {
	tests := []struct {
		name    string
		variant Variant
		req     *dto.QueryRequest
		want    []domain.PeriodTotal
	}{
		{
			name:    "all x all single quarter sums manufacturers",
			variant: AllCategoriesAllManufacturers,
			req:     request("", "", 2022, 1, 2022, 1),
			want:    []domain.PeriodTotal{pt(2022, 1, 80)},
		},
		{
			name:    "specific manufacturer",
			variant: AllCategoriesSpecificManufacturer,
			req:     request("", "Honda", 2021, 4, 2022, 1),
			want:    []domain.PeriodTotal{pt(2021, 4, 100), pt(2022, 1, 50)},
		},
		{
			name:    "specific category across year boundary",
			variant: SpecificCategoryAllManufacturers,
			req:     request("4W", "", 2021, 3, 2022, 2),
			want:    []domain.PeriodTotal{pt(2022, 2, 4)},
		},
		{
			name:    "both pinned passes rows through",
			variant: SpecificCategorySpecificManufacturer,
			req:     request("2W", "Yamaha", 2021, 1, 2022, 4),
			want:    []domain.PeriodTotal{pt(2022, 1, 30)},
		},
		{
			name:    "all x all excludes boundary neighbours",
			variant: AllCategoriesAllManufacturers,
			req:     request("", "", 2021, 3, 2022, 1),
			want:    []domain.PeriodTotal{pt(2021, 4, 100), pt(2022, 1, 80)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(newFixture())

			got, err := svc.Report(context.Background(), tt.variant, tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestReportInvertedRangeIsEmptyForEveryVariant(t *testing.T) {
	for _, v := range []Variant{
		AllCategoriesAllManufacturers,
		AllCategoriesSpecificManufacturer,
		SpecificCategoryAllManufacturers,
		SpecificCategorySpecificManufacturer,
	} {
		t.Run(v.String(), func(t *testing.T) {
			st := newFixture()
			svc := NewService(st)

			got, err := svc.Report(context.Background(), v, request("2W", "Honda", 2022, 1, 2021, 1))
			require.NoError(t, err)
			assert.NotNil(t, got)
			assert.Empty(t, got)
			assert.Zero(t, st.listFactsCalls)
		})
	}
}

func TestReportUnknownDimensionShortCircuits(t *testing.T) {
	tests := []struct {
		name      string
		variant   Variant
		req       *dto.QueryRequest
		dimension domain.Dimension
		message   string
		lookups   []string
	}{
		{
			name:      "unknown manufacturer",
			variant:   AllCategoriesSpecificManufacturer,
			req:       request("", "Suzuki", 2021, 1, 2022, 4),
			dimension: domain.DimensionManufacturer,
			message:   "Manufacturer 'Suzuki' not found",
			lookups:   []string{"manufacturer"},
		},
		{
			name:      "unknown category",
			variant:   SpecificCategoryAllManufacturers,
			req:       request("9X", "", 2021, 1, 2022, 4),
			dimension: domain.DimensionCategory,
			message:   "Category '9X' not found",
			lookups:   []string{"category"},
		},
		{
			name:      "both unknown reports category first",
			variant:   SpecificCategorySpecificManufacturer,
			req:       request("9X", "Suzuki", 2021, 1, 2022, 4),
			dimension: domain.DimensionCategory,
			message:   "Category '9X' not found",
			lookups:   []string{"category"},
		},
		{
			name:      "known category unknown manufacturer",
			variant:   SpecificCategorySpecificManufacturer,
			req:       request("2W", "Suzuki", 2021, 1, 2022, 4),
			dimension: domain.DimensionManufacturer,
			message:   "Manufacturer 'Suzuki' not found",
			lookups:   []string{"category", "manufacturer"},
		},
		{
			name:      "lookup is case sensitive",
			variant:   AllCategoriesSpecificManufacturer,
			req:       request("", "honda", 2021, 1, 2022, 4),
			dimension: domain.DimensionManufacturer,
			message:   "Manufacturer 'honda' not found",
			lookups:   []string{"manufacturer"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := newFixture()
			svc := NewService(st)

			got, err := svc.Report(context.Background(), tt.variant, tt.req)
			assert.Nil(t, got)

			var nf *domain.DimensionNotFoundError
			require.ErrorAs(t, err, &nf)
			assert.Equal(t, tt.dimension, nf.Dimension)
			assert.Equal(t, tt.message, nf.Error())
			assert.Equal(t, tt.lookups, st.lookups)
			assert.Zero(t, st.listFactsCalls)
		})
	}
}

func TestReportAllByAllSkipsResolution(t *testing.T) {
	st := newFixture()
	svc := NewService(st)

	_, err := svc.Report(context.Background(), AllCategoriesAllManufacturers, request("9X", "Suzuki", 2021, 1, 2022, 4))
	require.NoError(t, err)
	assert.Empty(t, st.lookups)
	assert.Equal(t, 1, st.listFactsCalls)
}

func TestReportRejectsInvalidStoredQuarter(t *testing.T) {
	st := newFixture()
	honda, _ := st.GetManufacturerByName(context.Background(), "Honda")
	twoW, _ := st.GetCategoryByCode(context.Background(), "2W")
	st.AddFact(honda.ID, twoW.ID, 2022, 5, 1)
	svc := NewService(st)

	_, err := svc.Report(context.Background(), AllCategoriesAllManufacturers, request("", "", 2021, 1, 2023, 4))
	require.Error(t, err)
	assert.ErrorIs(t, err, constants.ErrIntegrityViolation)
	assert.ErrorIs(t, err, domain.ErrInvalidQuarter)
}

func TestReportPropagatesStoreFailure(t *testing.T) {
	st := newFixture()
	st.factsErr = errors.New("connection reset")
	svc := NewService(st)

	_, err := svc.Report(context.Background(), AllCategoriesAllManufacturers, request("", "", 2021, 1, 2022, 4))
	require.Error(t, err)
	var nf *domain.DimensionNotFoundError
	assert.False(t, errors.As(err, &nf))
}

func TestVariantPins(t *testing.T) {
	assert.False(t, AllCategoriesAllManufacturers.PinsCategory())
	assert.False(t, AllCategoriesAllManufacturers.PinsManufacturer())
	assert.True(t, AllCategoriesSpecificManufacturer.PinsManufacturer())
	assert.False(t, AllCategoriesSpecificManufacturer.PinsCategory())
	assert.True(t, SpecificCategoryAllManufacturers.PinsCategory())
	assert.False(t, SpecificCategoryAllManufacturers.PinsManufacturer())
	assert.True(t, SpecificCategorySpecificManufacturer.PinsCategory())
	assert.True(t, SpecificCategorySpecificManufacturer.PinsManufacturer())
	assert.Equal(t, "unknown", Variant(42).String())
}

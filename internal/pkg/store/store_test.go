package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/ougirez/regstat/internal/domain"
	"github.com/ougirez/regstat/internal/pkg/constants"
	"github.com/ougirez/regstat/internal/pkg/migration"
	"github.com/ougirez/regstat/internal/pkg/store/xsql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	store Store
	ids   map[string]int64
}

// newSQLiteStore поднимает файловую sqlite-базу с применёнными миграциями и
// наполняет её тестовыми данными.
func newSQLiteStore(t *testing.T) fixture {
	t.Helper()
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "regstat.db")

	runner, err := migration.New(constants.DriverSQLite, dsn)
	require.NoError(t, err)
	require.NoError(t, runner.Up())
	require.NoError(t, runner.Close())

	pool, err := Open(ctx, OpenOpts{Driver: constants.DriverSQLite, DSN: dsn, MaxConns: 1, Attempts: 1})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	db := pool.(*xsql.Pool).DB()
	ids := map[string]int64{}
	for _, name := range []string{"Honda", "Yamaha"} {
		res, err := db.ExecContext(ctx, `INSERT INTO manufacturers (name) VALUES (?)`, name)
		require.NoError(t, err)
		ids[name], err = res.LastInsertId()
		require.NoError(t, err)
	}
	for _, code := range []string{"2W", "4W"} {
		res, err := db.ExecContext(ctx, `INSERT INTO vehicle_categories (code) VALUES (?)`, code)
		require.NoError(t, err)
		ids[code], err = res.LastInsertId()
		require.NoError(t, err)
	}

	rows := []struct {
		manufacturer, category string
		year, quarter          int
		count                  int64
	}{
		{"Honda", "2W", 2021, 2, 90},
		{"Honda", "2W", 2021, 4, 100},
		{"Honda", "2W", 2022, 1, 50},
		{"Yamaha", "2W", 2022, 1, 30},
		{"Honda", "4W", 2022, 1, 5},
		{"Honda", "2W", 2022, 2, 70},
	}
	for _, r := range rows {
		_, err := db.ExecContext(ctx,
			`INSERT INTO registration_stats (manufacturer_id, category_id, year, quarter, registration_count) VALUES (?, ?, ?, ?, ?)`,
			ids[r.manufacturer], ids[r.category], r.year, r.quarter, r.count)
		require.NoError(t, err)
	}

	return fixture{store: NewStore(pool), ids: ids}
}

func periods(facts []*domain.RegistrationFact) []string {
	out := make([]string, 0, len(facts))
	for _, f := range facts {
		out = append(out, f.Period.String())
	}
	return out
}

func TestListFactsCompositeRange(t *testing.T) {
	fx := newSQLiteStore(t)

	facts, err := fx.store.ListFacts(context.Background(), domain.FactFilter{
		Range: domain.PeriodRange{
			Start: domain.Period{Year: 2021, Quarter: 3},
			End:   domain.Period{Year: 2022, Quarter: 1},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"2021-Q4", "2022-Q1", "2022-Q1", "2022-Q1"}, periods(facts))
}

func TestListFactsPinnedDimensions(t *testing.T) {
	fx := newSQLiteStore(t)
	honda, twoWheeler := fx.ids["Honda"], fx.ids["2W"]
	rng := domain.PeriodRange{
		Start: domain.Period{Year: 2021, Quarter: 1},
		End:   domain.Period{Year: 2022, Quarter: 4},
	}

	tests := []struct {
		name   string
		filter domain.FactFilter
		want   int
	}{
		{"manufacturer", domain.FactFilter{ManufacturerID: &honda, Range: rng}, 5},
		{"category", domain.FactFilter{CategoryID: &twoWheeler, Range: rng}, 5},
		{"both", domain.FactFilter{ManufacturerID: &honda, CategoryID: &twoWheeler, Range: rng}, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			facts, err := fx.store.ListFacts(context.Background(), tt.filter)
			require.NoError(t, err)
			assert.Len(t, facts, tt.want)
			for _, f := range facts {
				assert.True(t, tt.filter.Match(f))
			}
		})
	}
}

func TestListFactsInvertedRangeIsEmpty(t *testing.T) {
	fx := newSQLiteStore(t)

	facts, err := fx.store.ListFacts(context.Background(), domain.FactFilter{
		Range: domain.PeriodRange{
			Start: domain.Period{Year: 2022, Quarter: 1},
			End:   domain.Period{Year: 2021, Quarter: 1},
		},
	})
	require.NoError(t, err)
	assert.Empty(t, facts)
}

func TestDimensionLookup(t *testing.T) {
	fx := newSQLiteStore(t)
	ctx := context.Background()

	m, err := fx.store.GetManufacturerByName(ctx, "Honda")
	require.NoError(t, err)
	assert.Equal(t, fx.ids["Honda"], m.ID)

	c, err := fx.store.GetCategoryByCode(ctx, "2W")
	require.NoError(t, err)
	assert.Equal(t, fx.ids["2W"], c.ID)

	_, err = fx.store.GetManufacturerByName(ctx, "honda")
	assert.ErrorIs(t, err, constants.ErrDBNotFound)

	_, err = fx.store.GetCategoryByCode(ctx, "9X")
	assert.ErrorIs(t, err, constants.ErrDBNotFound)
}

func TestListDimensions(t *testing.T) {
	fx := newSQLiteStore(t)
	ctx := context.Background()

	manufacturers, err := fx.store.ListManufacturers(ctx)
	require.NoError(t, err)
	require.Len(t, manufacturers, 2)
	assert.Equal(t, "Honda", manufacturers[0].Name)
	assert.Equal(t, "Yamaha", manufacturers[1].Name)

	categories, err := fx.store.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "2W", categories[0].Code)

	require.NoError(t, fx.store.Ping(ctx))
}

func TestOpenUnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), OpenOpts{Driver: "mysql", DSN: "x"})
	assert.Error(t, err)
}

package domain

type Manufacturer struct {
	ID   int64  `db:"manufacturer_id" json:"id"`
	Name string `db:"name" json:"name"`
}

type VehicleCategory struct {
	ID   int64  `db:"category_id" json:"id"`
	Code string `db:"code" json:"code"`
}

// RegistrationFact: одно наблюдение: производитель × категория × квартал.
// Дубликаты по ключу допустимы и суммируются.
type RegistrationFact struct {
	ID             int64 `db:"id"`
	ManufacturerID int64 `db:"manufacturer_id"`
	CategoryID     int64 `db:"category_id"`
	Period
	RegistrationCount int64 `db:"registration_count"`
}

// FactFilter is the predicate shared by every report variant. Nil dimension
// ids leave that dimension unpinned.
type FactFilter struct {
	CategoryID     *int64
	ManufacturerID *int64
	Range          PeriodRange
}

func (f FactFilter) Match(fact *RegistrationFact) bool {
	if f.CategoryID != nil && fact.CategoryID != *f.CategoryID {
		return false
	}
	if f.ManufacturerID != nil && fact.ManufacturerID != *f.ManufacturerID {
		return false
	}
	return f.Range.Contains(fact.Period)
}

// PeriodTotal: точка временного ряда.
type PeriodTotal struct {
	Period
	Total int64
}

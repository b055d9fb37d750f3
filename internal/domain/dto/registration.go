package dto

import "github.com/ougirez/regstat/internal/domain"

// QueryRequest: общее тело для всех четырёх отчётов. Неиспользуемые поля
// конкретным вариантом игнорируются.
type QueryRequest struct {
	Category     string `json:"category"`
	Manufacturer string `json:"manufacturer"`
	StartYear    int    `json:"start_year" validate:"min=1"`
	StartQuarter int    `json:"start_quarter" validate:"min=1,max=4"`
	EndYear      int    `json:"end_year" validate:"min=1"`
	EndQuarter   int    `json:"end_quarter" validate:"min=1,max=4"`
}

func (r *QueryRequest) Range() domain.PeriodRange {
	return domain.PeriodRange{
		Start: domain.Period{Year: r.StartYear, Quarter: r.StartQuarter},
		End:   domain.Period{Year: r.EndYear, Quarter: r.EndQuarter},
	}
}

// TotalRegistrations: точка ряда для отчёта по всем категориям и производителям.
type TotalRegistrations struct {
	Year               domain.Year    `json:"year"`
	Quarter            domain.Quarter `json:"quarter"`
	TotalRegistrations int64          `json:"total_registrations"`
}

// RegistrationCount: точка ряда для отчётов с зафиксированным измерением.
type RegistrationCount struct {
	Year              domain.Year    `json:"year"`
	Quarter           domain.Quarter `json:"quarter"`
	RegistrationCount int64          `json:"registration_count"`
}

type DataResponse[T any] struct {
	Data []T `json:"data"`
}

type NotFoundResponse struct {
	Error string `json:"error"`
}

func ToTotalRegistrations(series []domain.PeriodTotal) DataResponse[TotalRegistrations] {
	out := make([]TotalRegistrations, 0, len(series))
	for _, pt := range series {
		out = append(out, TotalRegistrations{Year: pt.Year, Quarter: pt.Quarter, TotalRegistrations: pt.Total})
	}
	return DataResponse[TotalRegistrations]{Data: out}
}

func ToRegistrationCounts(series []domain.PeriodTotal) DataResponse[RegistrationCount] {
	out := make([]RegistrationCount, 0, len(series))
	for _, pt := range series {
		out = append(out, RegistrationCount{Year: pt.Year, Quarter: pt.Quarter, RegistrationCount: pt.Total})
	}
	return DataResponse[RegistrationCount]{Data: out}
}

package domain

import (
	"errors"
	"fmt"
)

type Year = int
type Quarter = int

const (
	MinQuarter Quarter = 1
	MaxQuarter Quarter = 4
)

var ErrInvalidQuarter = errors.New("quarter must be between 1 and 4")

// Period: квартал года. Порядок лексикографический: сначала год, затем квартал.
type Period struct {
	Year    Year    `db:"year" json:"year"`
	Quarter Quarter `db:"quarter" json:"quarter"`
}

func NewPeriod(year Year, quarter Quarter) (Period, error) {
	p := Period{Year: year, Quarter: quarter}
	if err := p.Validate(); err != nil {
		return Period{}, err
	}
	return p, nil
}

func (p Period) Validate() error {
	if p.Quarter < MinQuarter || p.Quarter > MaxQuarter {
		return fmt.Errorf("%w: got %d in %d", ErrInvalidQuarter, p.Quarter, p.Year)
	}
	return nil
}

// Compare returns -1, 0 or +1 as a sorts before, equal to or after b.
func Compare(a, b Period) int {
	switch {
	case a.Year < b.Year:
		return -1
	case a.Year > b.Year:
		return 1
	case a.Quarter < b.Quarter:
		return -1
	case a.Quarter > b.Quarter:
		return 1
	default:
		return 0
	}
}

func (p Period) Before(other Period) bool { return Compare(p, other) < 0 }

func (p Period) After(other Period) bool { return Compare(p, other) > 0 }

func (p Period) String() string {
	return fmt.Sprintf("%d-Q%d", p.Year, p.Quarter)
}

// PeriodRange: включительный диапазон [Start, End].
type PeriodRange struct {
	Start Period
	End   Period
}

// Empty reports an inverted range. Such a range contains no period.
func (r PeriodRange) Empty() bool {
	return r.Start.After(r.End)
}

// Contains compares p against both bounds as a single (year, quarter) key.
func (r PeriodRange) Contains(p Period) bool {
	return Compare(r.Start, p) <= 0 && Compare(p, r.End) <= 0
}

func (r PeriodRange) String() string {
	return fmt.Sprintf("%s..%s", r.Start, r.End)
}

func InRange(p, start, end Period) bool {
	return PeriodRange{Start: start, End: end}.Contains(p)
}

package booking

import (
	"time"

	"tour-booking/internal/pkg/clock"

	"github.com/shopspring/decimal"
)

const day = 24 * time.Hour

var hundred = decimal.NewFromInt(100)

// Period is a half-open [start, end) range of whole UTC days.
type Period struct {
	start time.Time
	end   time.Time
}

// NewPeriod validates start < end and normalizes to day granularity. The
// start is truncated to UTC midnight and the end is placed DayCount days
// later, so the stored range covers exactly the days that are charged.
func NewPeriod(start, end time.Time) (Period, error) {
	if start.IsZero() || end.IsZero() || !start.Before(end) {
		return Period{}, ErrInvalidPeriod
	}
	s := clock.MidnightUTC(start)
	return Period{start: s, end: s.AddDate(0, 0, DayCount(start, end))}, nil
}

// ReconstructPeriod trusts already-normalized dates read from storage.
func ReconstructPeriod(start, end time.Time) Period {
	return Period{start: start.UTC(), end: end.UTC()}
}

// DayCount is the ceiling of the interval length in days, never less than 1.
func DayCount(start, end time.Time) int {
	d := end.Sub(start)
	if d <= 0 {
		return 1
	}
	n := int(d / day)
	if d%day != 0 {
		n++
	}
	return max(n, 1)
}

func (p Period) Start() time.Time { return p.start }
func (p Period) End() time.Time   { return p.end }

func (p Period) Days() int {
	return DayCount(p.start, p.end)
}

// Overlaps is the calendar predicate: existing.start < requested.end AND existing.end > requested.start.
func (p Period) Overlaps(other Period) bool {
	return p.start.Before(other.end) && p.end.After(other.start)
}

// TotalPrice multiplies the per-day price by the number of charged days.
func TotalPrice(pricePerDay decimal.Decimal, days int) decimal.Decimal {
	return pricePerDay.Mul(decimal.NewFromInt(int64(days)))
}

// MinorUnits converts a major-unit amount to the processor's integer minor units.
func MinorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(hundred).Round(0).IntPart()
}

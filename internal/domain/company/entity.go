package company

import (
	"time"

	"github.com/shopspring/decimal"
)

type Company struct {
	ID        string
	Name      string
	Username  string
	Address   *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Settings holds the per-tenant scheduling rules. One row per company,
// seeded lazily with defaults on first read. All times are UTC; Timezone is
// a display label only and never participates in validation.
type Settings struct {
	ID                   string
	CompanyID            string
	MaxDailyHours        decimal.Decimal
	MaxWeeklyHours       decimal.Decimal
	MinBreakHours        decimal.Decimal
	AllowOvernightShifts bool
	Timezone             string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

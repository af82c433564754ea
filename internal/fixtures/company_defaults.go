package fixtures

import "github.com/shopspring/decimal"

// Default company settings, seeded lazily on the first settings read for a
// company that has never been configured.
var (
	DefaultMaxDailyHours  = decimal.NewFromInt(12)
	DefaultMaxWeeklyHours = decimal.NewFromInt(40)
	DefaultMinBreakHours  = decimal.NewFromInt(11)
)

const (
	DefaultAllowOvernightShifts = false
	DefaultTimezone             = "UTC"
)

// Warning band: a daily total at or above this share of the cap produces an
// advisory warning even when the cap itself is not exceeded.
const DailyHoursWarningRatio = 0.83

// Package fine holds the fine arithmetic. All functions are pure.
package fine

import (
	"math"
	"time"

	"github.com/Astemirdum/library-circulation/circulation/internal/model"
	"github.com/shopspring/decimal"
)

const day = 24 * time.Hour

// OverdueDays counts started days past expected, zero when not late.
func OverdueDays(expected, now time.Time) int {
	late := now.Sub(expected)
	if late <= 0 {
		return 0
	}
	return int(math.Ceil(float64(late) / float64(day)))
}

// Calculate returns min(max(0, days-grace) * perDay, max) rounded to cents.
func Calculate(overdueDays int, cfg model.FineConfiguration) decimal.Decimal {
	grace := cfg.GracePeriodDays
	if grace < 0 {
		grace = 0
	}
	effective := overdueDays - grace
	if effective <= 0 {
		return decimal.Zero
	}
	amount := cfg.FinePerDay.Mul(decimal.NewFromInt(int64(effective)))
	if amount.IsNegative() {
		return decimal.Zero
	}
	if cfg.MaxFineAmount.IsPositive() && amount.GreaterThan(cfg.MaxFineAmount) {
		amount = cfg.MaxFineAmount
	}
	return amount.Round(2)
}

// Accrued is the fine owed for an issue expected back at expected, evaluated at now.
func Accrued(expected, now time.Time, cfg model.FineConfiguration) decimal.Decimal {
	return Calculate(OverdueDays(expected, now), cfg)
}

// Outstanding subtracts what was already paid or waived from accrued, floored at zero.
func Outstanding(accrued, settled decimal.Decimal) decimal.Decimal {
	out := accrued.Sub(settled)
	if out.IsNegative() {
		return decimal.Zero
	}
	return out
}

func ValidConfiguration(cfg model.FineConfigurationRequest) bool {
	return cfg.FinePerDay.IsPositive() && cfg.MaxFineAmount.IsPositive() && cfg.GracePeriodDays >= 0
}

package fine_test

import (
	"testing"
	"time"

	"github.com/Astemirdum/library-circulation/circulation/internal/fine"
	"github.com/Astemirdum/library-circulation/circulation/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func cfg(perDay, max string, grace int) model.FineConfiguration {
	return model.FineConfiguration{
		FinePerDay:      decimal.RequireFromString(perDay),
		MaxFineAmount:   decimal.RequireFromString(max),
		GracePeriodDays: grace,
		IsActive:        true,
	}
}

func TestCalculate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		days int
		cfg  model.FineConfiguration
		want string
	}{
		{name: "not overdue", days: 0, cfg: cfg("10", "1000", 1), want: "0"},
		{name: "within grace", days: 1, cfg: cfg("10", "1000", 1), want: "0"},
		{name: "past grace", days: 5, cfg: cfg("10", "1000", 1), want: "40"},
		{name: "capped", days: 500, cfg: cfg("10", "1000", 1), want: "1000"},
		{name: "exactly cap", days: 101, cfg: cfg("10", "1000", 1), want: "1000"},
		{name: "negative days", days: -3, cfg: cfg("10", "1000", 0), want: "0"},
		{name: "no grace", days: 3, cfg: cfg("2.5", "1000", 0), want: "7.5"},
		{name: "negative grace treated as zero", days: 2, cfg: cfg("10", "1000", -4), want: "20"},
		{name: "rounded to cents", days: 3, cfg: cfg("0.333", "1000", 0), want: "1"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := fine.Calculate(tt.days, tt.cfg)
			require.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %s want %s", got, tt.want)
		})
	}
}

func TestOverdueDays(t *testing.T) {
	t.Parallel()
	expected := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		now  time.Time
		want int
	}{
		{name: "before due", now: expected.Add(-time.Hour), want: 0},
		{name: "at due", now: expected, want: 0},
		{name: "one minute late", now: expected.Add(time.Minute), want: 1},
		{name: "exactly one day", now: expected.Add(24 * time.Hour), want: 1},
		{name: "just over one day", now: expected.Add(24*time.Hour + time.Second), want: 2},
		{name: "ten days", now: expected.Add(10 * 24 * time.Hour), want: 10},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, fine.OverdueDays(expected, tt.now))
		})
	}
}

func TestOutstanding(t *testing.T) {
	t.Parallel()
	d := decimal.RequireFromString
	require.True(t, fine.Outstanding(d("50"), d("20")).Equal(d("30")))
	require.True(t, fine.Outstanding(d("20"), d("50")).IsZero())
	require.True(t, fine.Outstanding(d("0"), d("0")).IsZero())
}

func TestValidConfiguration(t *testing.T) {
	t.Parallel()
	d := decimal.RequireFromString
	require.True(t, fine.ValidConfiguration(model.FineConfigurationRequest{FinePerDay: d("1"), MaxFineAmount: d("1"), GracePeriodDays: 0}))
	require.False(t, fine.ValidConfiguration(model.FineConfigurationRequest{FinePerDay: d("0"), MaxFineAmount: d("1")}))
	require.False(t, fine.ValidConfiguration(model.FineConfigurationRequest{FinePerDay: d("1"), MaxFineAmount: d("-1")}))
	require.False(t, fine.ValidConfiguration(model.FineConfigurationRequest{FinePerDay: d("1"), MaxFineAmount: d("1"), GracePeriodDays: -1}))
}

func drawConfig(t *rapid.T) model.FineConfiguration {
	perDayCents := rapid.Int64Range(1, 100_000).Draw(t, "perDayCents")
	maxCents := rapid.Int64Range(1, 10_000_000).Draw(t, "maxCents")
	return model.FineConfiguration{
		FinePerDay:      decimal.New(perDayCents, -2),
		MaxFineAmount:   decimal.New(maxCents, -2),
		GracePeriodDays: rapid.IntRange(0, 30).Draw(t, "grace"),
	}
}

func TestCalculateBounds(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		c := drawConfig(t)
		days := rapid.IntRange(-1000, 100_000).Draw(t, "days")
		got := fine.Calculate(days, c)
		if got.IsNegative() {
			t.Fatalf("negative fine %s", got)
		}
		if got.GreaterThan(c.MaxFineAmount) {
			t.Fatalf("fine %s exceeds max %s", got, c.MaxFineAmount)
		}
		if days <= c.GracePeriodDays && !got.IsZero() {
			t.Fatalf("fine %s within grace", got)
		}
	})
}

func TestCalculateMonotonic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		c := drawConfig(t)
		a := rapid.IntRange(-100, 10_000).Draw(t, "a")
		b := rapid.IntRange(a, 10_001).Draw(t, "b")
		if fine.Calculate(a, c).GreaterThan(fine.Calculate(b, c)) {
			t.Fatalf("fine(%d) > fine(%d)", a, b)
		}
	})
}

func TestOutstandingNeverNegative(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		accrued := decimal.New(rapid.Int64Range(0, 1_000_000).Draw(t, "accrued"), -2)
		settled := decimal.New(rapid.Int64Range(0, 1_000_000).Draw(t, "settled"), -2)
		out := fine.Outstanding(accrued, settled)
		if out.IsNegative() || out.GreaterThan(accrued) {
			t.Fatalf("outstanding %s out of [0, %s]", out, accrued)
		}
	})
}

package expiry_test

import (
	"testing"
	"time"

	"github.com/simmi-91/freezer-storage-app/pkg/expiry"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestClassifyBoundaries(t *testing.T) {
	today := date(2025, time.March, 10)

	cases := []struct {
		days int
		want expiry.Urgency
	}{
		{-1, expiry.UrgencyExpired},
		{0, expiry.UrgencyUrgentSoon},
		{1, expiry.UrgencyUrgentSoon},
		{7, expiry.UrgencyUrgentSoon},
		{8, expiry.UrgencySoon},
		{14, expiry.UrgencySoon},
		{15, expiry.UrgencyGood},
	}

	for _, tc := range cases {
		got := expiry.Classify(today.AddDate(0, 0, tc.days), today)
		if got != tc.want {
			t.Errorf("Classify(today%+d) = %s, want %s", tc.days, got, tc.want)
		}
	}
}

func TestDaysUntilIgnoresTimeOfDay(t *testing.T) {
	// Late evening "today" against an early-morning expiry the same day must
	// still count as zero days, not negative.
	today := time.Date(2025, time.March, 10, 23, 59, 0, 0, time.UTC)
	expiryAt := time.Date(2025, time.March, 10, 0, 1, 0, 0, time.UTC)

	if days := expiry.DaysUntil(expiryAt, today); days != 0 {
		t.Fatalf("DaysUntil same calendar day = %d, want 0", days)
	}
	if got := expiry.Classify(expiryAt, today); got != expiry.UrgencyUrgentSoon {
		t.Fatalf("item expiring today classified %s, want %s", got, expiry.UrgencyUrgentSoon)
	}
}

func TestLabel(t *testing.T) {
	today := date(2025, time.March, 10)

	cases := []struct {
		days int
		want string
	}{
		{-3, "Expired"},
		{0, "Expires today"},
		{1, "Expires in 1 day"},
		{5, "Expires in 5 days"},
		{14, "Expires in 14 days"},
		{30, "Good until Apr 9, 2025"},
	}

	for _, tc := range cases {
		if got := expiry.Label(today.AddDate(0, 0, tc.days), today); got != tc.want {
			t.Errorf("Label(today%+d) = %q, want %q", tc.days, got, tc.want)
		}
	}
}

func TestAddMonthsClampsEndOfMonth(t *testing.T) {
	cases := []struct {
		from   time.Time
		months int
		want   time.Time
	}{
		{date(2024, time.January, 31), 1, date(2024, time.February, 29)},
		{date(2025, time.January, 31), 1, date(2025, time.February, 28)},
		{date(2025, time.March, 31), 1, date(2025, time.April, 30)},
		{date(2025, time.March, 15), 2, date(2025, time.May, 15)},
		{date(2025, time.November, 30), 3, date(2026, time.February, 28)},
	}

	for _, tc := range cases {
		if got := expiry.AddMonths(tc.from, tc.months); !got.Equal(tc.want) {
			t.Errorf("AddMonths(%s, %d) = %s, want %s",
				tc.from.Format("2006-01-02"), tc.months,
				got.Format("2006-01-02"), tc.want.Format("2006-01-02"))
		}
	}
}

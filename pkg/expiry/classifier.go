package expiry

import (
	"fmt"
	"time"

	"github.com/simmi-91/freezer-storage-app/domain"
)

// Urgency buckets an expiry date relative to a reference day.
type Urgency string

const (
	UrgencyExpired    Urgency = "Expired"
	UrgencyUrgentSoon Urgency = "UrgentSoon"
	UrgencySoon       Urgency = "Soon"
	UrgencyGood       Urgency = "Good"
)

const (
	urgentWindowDays = 7
	soonWindowDays   = 14
)

// dateOnly strips time-of-day and zone so day counts are midnight-to-midnight.
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysUntil counts whole calendar days from today to expiry. An item expiring
// today yields 0, yesterday -1.
func DaysUntil(expiry, today time.Time) int {
	return int(dateOnly(expiry).Sub(dateOnly(today)).Hours() / 24)
}

func Classify(expiry, today time.Time) Urgency {
	days := DaysUntil(expiry, today)
	switch {
	case days < 0:
		return UrgencyExpired
	case days <= urgentWindowDays:
		return UrgencyUrgentSoon
	case days <= soonWindowDays:
		return UrgencySoon
	default:
		return UrgencyGood
	}
}

// Label renders the classification for display.
func Label(expiry, today time.Time) string {
	days := DaysUntil(expiry, today)
	switch {
	case days < 0:
		return "Expired"
	case days == 0:
		return "Expires today"
	case days == 1:
		return "Expires in 1 day"
	case days <= soonWindowDays:
		return fmt.Sprintf("Expires in %d days", days)
	default:
		return "Good until " + dateOnly(expiry).Format("Jan 2, 2006")
	}
}

// AddMonths moves t forward by whole calendar months, clamping to the last
// valid day when the source day does not exist in the target month
// (Jan 31 + 1 month lands on Feb 28 or 29, never Mar 2/3).
func AddMonths(t time.Time, months int) time.Time {
	y, m, d := t.Date()
	firstOfTarget := time.Date(y, m+time.Month(months), 1, 0, 0, 0, 0, time.UTC)
	lastDay := firstOfTarget.AddDate(0, 1, -1).Day()
	if d > lastDay {
		d = lastDay
	}
	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), d, 0, 0, 0, 0, time.UTC)
}

// Suggest derives the recommended expiry window for a category from its
// shelf-life range, anchored at the given date.
func Suggest(category domain.Category, from time.Time) (earliest, latest time.Time) {
	shelf := category.ShelfLife()
	return AddMonths(from, shelf.MinMonths), AddMonths(from, shelf.MaxMonths)
}

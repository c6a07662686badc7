// Package views derives the browse and dashboard projections from the
// canonical collection. Everything here is a pure function of the items, the
// query parameters, and the reference date; nothing is cached or truncated.
package views

import (
	"sort"
	"strings"
	"time"

	"github.com/simmi-91/freezer-storage-app/domain"
	"github.com/simmi-91/freezer-storage-app/entities"
	"github.com/simmi-91/freezer-storage-app/pkg/expiry"
)

// Aggregate is the dashboard projection. Expired is ordered most-recently-
// expired first, ExpiringSoon soonest first. Any "show at most N" trimming is
// the renderer's business, not done here.
type Aggregate struct {
	TotalItems     int
	Expired        []entities.FreezerItem
	ExpiringSoon   []entities.FreezerItem
	CategoryCounts []domain.CategoryCount
}

// Browse filters and orders the collection for the list screen. The search
// is a case-insensitive substring match over name and notes. All sort keys
// are stable: equal values keep their original collection order.
func Browse(items []entities.FreezerItem, q domain.BrowseQuery) []entities.FreezerItem {
	out := make([]entities.FreezerItem, 0, len(items))
	search := strings.ToLower(strings.TrimSpace(q.Search))
	for _, item := range items {
		if q.Category != "" && q.Category != domain.CategoryAll && domain.Category(item.Category) != q.Category {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(item.Name), search) &&
			!strings.Contains(strings.ToLower(item.Notes), search) {
			continue
		}
		out = append(out, item)
	}

	sort.SliceStable(out, lessFunc(out, q.Sort))
	return out
}

func lessFunc(items []entities.FreezerItem, key domain.SortKey) func(i, j int) bool {
	switch key {
	case domain.SortByName:
		return func(i, j int) bool { return items[i].Name < items[j].Name }
	case domain.SortByDateAdded:
		// Newest first; items with an unknown date sort last either way.
		return func(i, j int) bool {
			a, b := items[i].DateAdded, items[j].DateAdded
			switch {
			case a == nil:
				return false
			case b == nil:
				return true
			default:
				return a.After(*b)
			}
		}
	case domain.SortByCategory:
		return func(i, j int) bool { return items[i].Category < items[j].Category }
	default:
		return func(i, j int) bool { return items[i].ExpiryDate.Before(items[j].ExpiryDate) }
	}
}

// Dashboard partitions the collection into urgency buckets and counts items
// per category. Categories with zero items never appear; ties in the count
// ordering follow the closed set's order.
func Dashboard(items []entities.FreezerItem, today time.Time) Aggregate {
	agg := Aggregate{TotalItems: len(items)}

	counts := make(map[domain.Category]int)
	for _, item := range items {
		days := expiry.DaysUntil(item.ExpiryDate, today)
		switch {
		case days < 0:
			agg.Expired = append(agg.Expired, item)
		case days <= 14:
			agg.ExpiringSoon = append(agg.ExpiringSoon, item)
		}
		counts[domain.Category(item.Category)]++
	}

	sort.SliceStable(agg.Expired, func(i, j int) bool {
		return agg.Expired[i].ExpiryDate.After(agg.Expired[j].ExpiryDate)
	})
	sort.SliceStable(agg.ExpiringSoon, func(i, j int) bool {
		return agg.ExpiringSoon[i].ExpiryDate.Before(agg.ExpiringSoon[j].ExpiryDate)
	})

	// Walk the closed set in order so that equal counts keep that order
	// after the stable sort by count.
	for _, category := range domain.Categories {
		if n := counts[category]; n > 0 {
			agg.CategoryCounts = append(agg.CategoryCounts, domain.CategoryCount{Category: category, Count: n})
		}
	}
	sort.SliceStable(agg.CategoryCounts, func(i, j int) bool {
		return agg.CategoryCounts[i].Count > agg.CategoryCounts[j].Count
	})

	return agg
}

// CategoryOptions lists the categories that currently hold at least one item,
// in closed-set order. The "all" option is implicit and always available.
func CategoryOptions(items []entities.FreezerItem) []domain.Category {
	present := make(map[domain.Category]bool)
	for _, item := range items {
		present[domain.Category(item.Category)] = true
	}
	options := make([]domain.Category, 0, len(present))
	for _, category := range domain.Categories {
		if present[category] {
			options = append(options, category)
		}
	}
	return options
}

// ResolveFilter keeps the selected category only while it still holds items.
// When its last item disappears the filter resets to "all" and the second
// return value tells the caller a reset happened, so the UI does not show an
// inexplicably empty list.
func ResolveFilter(items []entities.FreezerItem, selected domain.Category) (domain.Category, bool) {
	if selected == "" || selected == domain.CategoryAll {
		return domain.CategoryAll, false
	}
	for _, item := range items {
		if domain.Category(item.Category) == selected {
			return selected, false
		}
	}
	return domain.CategoryAll, true
}

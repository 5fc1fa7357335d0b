package supplies

import (
	"math"
	"sort"
	"time"
)

const dashboardLimit = 3

// ExpiringSoon returns up to three items whose expiration date is strictly
// in the future and at most ExpiryWindowDays away, soonest first. Items
// without an expiration date never appear. Sorting is stable so items
// sharing a date keep their incoming order.
func ExpiringSoon(items []SupplyItem, now time.Time) []SupplyItem {
	cutoff := now.AddDate(0, 0, ExpiryWindowDays)
	soon := make([]SupplyItem, 0, dashboardLimit)
	for _, it := range items {
		if it.ExpirationDate == nil {
			continue
		}
		exp := *it.ExpirationDate
		if exp.After(now) && !exp.After(cutoff) {
			soon = append(soon, it)
		}
	}
	sort.SliceStable(soon, func(i, j int) bool {
		return soon[i].ExpirationDate.Before(*soon[j].ExpirationDate)
	})
	if len(soon) > dashboardLimit {
		soon = soon[:dashboardLimit]
	}
	return soon
}

// RecentlyUsed returns up to three items that have at least one usage
// entry, ordered by the timestamp of their newest entry, most recent
// first.
func RecentlyUsed(items []SupplyItem) []SupplyItem {
	used := make([]SupplyItem, 0, dashboardLimit)
	for _, it := range items {
		if len(it.UsageHistory) > 0 {
			used = append(used, it)
		}
	}
	sort.SliceStable(used, func(i, j int) bool {
		return used[i].UsageHistory[0].Timestamp.After(used[j].UsageHistory[0].Timestamp)
	})
	if len(used) > dashboardLimit {
		used = used[:dashboardLimit]
	}
	return used
}

// MostCommonCategory counts categories across all items, treating an
// empty category as "Unknown". Ties go to the category seen first in
// the input order. An empty inventory is also "Unknown".
func MostCommonCategory(items []SupplyItem) string {
	if len(items) == 0 {
		return "Unknown"
	}
	counts := map[string]int{}
	order := make([]string, 0, len(items))
	for _, it := range items {
		cat := it.Category
		if cat == "" {
			cat = "Unknown"
		}
		if _, seen := counts[cat]; !seen {
			order = append(order, cat)
		}
		counts[cat]++
	}
	best := order[0]
	for _, cat := range order[1:] {
		if counts[cat] > counts[best] {
			best = cat
		}
	}
	return best
}

// ApplyUsage computes the quantity left after consuming amount,
// clamping at zero so overdraws never go negative. Fractional usage
// rounds the remainder down so partial consumption always moves stock.
func ApplyUsage(quantity int, amount float64) int {
	next := float64(quantity) - amount
	if next <= 0 {
		return 0
	}
	return int(math.Floor(next))
}

package supplies

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func datePtr(t time.Time) *time.Time { return &t }

func TestExpiringSoon(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	items := []SupplyItem{
		{DrugName: "no date"},
		{DrugName: "expired", ExpirationDate: datePtr(now.AddDate(0, 0, -1))},
		{DrugName: "far out", ExpirationDate: datePtr(now.AddDate(0, 0, 45))},
		{DrugName: "in ten days", ExpirationDate: datePtr(now.AddDate(0, 0, 10))},
		{DrugName: "tomorrow", ExpirationDate: datePtr(now.AddDate(0, 0, 1))},
		{DrugName: "at the window edge", ExpirationDate: datePtr(now.AddDate(0, 0, 30))},
	}

	soon := ExpiringSoon(items, now)

	require.Len(t, soon, 3)
	assert.Equal(t, "tomorrow", soon[0].DrugName)
	assert.Equal(t, "in ten days", soon[1].DrugName)
	assert.Equal(t, "at the window edge", soon[2].DrugName)
}

func TestExpiringSoonExcludesToday(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	soon := ExpiringSoon([]SupplyItem{
		{DrugName: "expires now", ExpirationDate: datePtr(now)},
	}, now)

	assert.Empty(t, soon)
}

func TestExpiringSoonStableTies(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	sameDay := datePtr(now.AddDate(0, 0, 5))

	soon := ExpiringSoon([]SupplyItem{
		{DrugName: "first", ExpirationDate: sameDay},
		{DrugName: "second", ExpirationDate: sameDay},
		{DrugName: "third", ExpirationDate: sameDay},
	}, now)

	require.Len(t, soon, 3)
	assert.Equal(t, "first", soon[0].DrugName)
	assert.Equal(t, "second", soon[1].DrugName)
	assert.Equal(t, "third", soon[2].DrugName)
}

func TestExpiringSoonCapsAtThree(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	var items []SupplyItem
	for d := 5; d >= 1; d-- {
		items = append(items, SupplyItem{
			DrugName:       "drug",
			ExpirationDate: datePtr(now.AddDate(0, 0, d)),
		})
	}

	soon := ExpiringSoon(items, now)

	require.Len(t, soon, 3)
	assert.True(t, soon[0].ExpirationDate.Before(*soon[1].ExpirationDate))
	assert.True(t, soon[1].ExpirationDate.Before(*soon[2].ExpirationDate))
}

func TestRecentlyUsed(t *testing.T) {
	base := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	history := func(ts time.Time) []UsageEntry {
		return []UsageEntry{{Amount: 1, Timestamp: ts}}
	}

	items := []SupplyItem{
		{DrugName: "never used"},
		{DrugName: "old", UsageHistory: history(base)},
		{DrugName: "newest", UsageHistory: history(base.AddDate(0, 0, 9))},
		{DrugName: "middle", UsageHistory: history(base.AddDate(0, 0, 5))},
	}

	used := RecentlyUsed(items)

	require.Len(t, used, 3)
	assert.Equal(t, "newest", used[0].DrugName)
	assert.Equal(t, "middle", used[1].DrugName)
	assert.Equal(t, "old", used[2].DrugName)
}

func TestRecentlyUsedRanksByNewestEntry(t *testing.T) {
	base := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	// The head of the history is the newest entry; older entries must
	// not influence the ranking.
	items := []SupplyItem{
		{DrugName: "a", UsageHistory: []UsageEntry{
			{Amount: 1, Timestamp: base.AddDate(0, 0, 3)},
			{Amount: 1, Timestamp: base.AddDate(0, 0, 1)},
		}},
		{DrugName: "b", UsageHistory: []UsageEntry{
			{Amount: 1, Timestamp: base.AddDate(0, 0, 4)},
		}},
	}

	used := RecentlyUsed(items)

	require.Len(t, used, 2)
	assert.Equal(t, "b", used[0].DrugName)
	assert.Equal(t, "a", used[1].DrugName)
}

func TestMostCommonCategory(t *testing.T) {
	items := []SupplyItem{
		{Category: "Vaccines"},
		{Category: "Antibiotics"},
		{Category: "Vaccines"},
	}

	assert.Equal(t, "Vaccines", MostCommonCategory(items))
}

func TestMostCommonCategoryTreatsEmptyAsUnknown(t *testing.T) {
	items := []SupplyItem{
		{Category: ""},
		{Category: ""},
		{Category: "Vaccines"},
	}

	assert.Equal(t, "Unknown", MostCommonCategory(items))
}

func TestMostCommonCategoryTieGoesToFirstSeen(t *testing.T) {
	items := []SupplyItem{
		{Category: "Bandages"},
		{Category: "Vaccines"},
		{Category: "Vaccines"},
		{Category: "Bandages"},
	}

	assert.Equal(t, "Bandages", MostCommonCategory(items))
}

func TestMostCommonCategoryEmptyInput(t *testing.T) {
	assert.Equal(t, "Unknown", MostCommonCategory(nil))
	assert.Equal(t, "Unknown", MostCommonCategory([]SupplyItem{}))
}

func TestApplyUsage(t *testing.T) {
	assert.Equal(t, 7, ApplyUsage(10, 3))
	assert.Equal(t, 0, ApplyUsage(10, 10))
	assert.Equal(t, 0, ApplyUsage(3, 10), "overdraw drains to zero, never negative")
	assert.Equal(t, 9, ApplyUsage(10, 0.5))
}

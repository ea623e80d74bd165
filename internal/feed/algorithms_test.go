package feed

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParseDay(t *testing.T, value string) time.Time {
	t.Helper()
	day, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return day
}

func TestDiscoverySeedStableWithinDay(t *testing.T) {
	morning := mustParseDay(t, "2025-06-01T08:00:00Z")
	evening := mustParseDay(t, "2025-06-01T23:59:59Z")

	assert.Equal(t, discoverySeed(42, morning), discoverySeed(42, evening))
}

func TestDiscoverySeedVariesByUserAndDay(t *testing.T) {
	day1 := mustParseDay(t, "2025-06-01T12:00:00Z")
	day2 := mustParseDay(t, "2025-06-02T12:00:00Z")

	assert.NotEqual(t, discoverySeed(1, day1), discoverySeed(2, day1))
	assert.NotEqual(t, discoverySeed(1, day1), discoverySeed(1, day2))
}

func TestShuffleDiscoveryDeterministic(t *testing.T) {
	makeRows := func() []feedRow {
		rows := make([]feedRow, 20)
		for i := range rows {
			rows[i] = feedRow{ID: uint(len(rows) - i), priority: PriorityDiscovery}
		}
		return rows
	}

	first := makeRows()
	second := makeRows()
	shuffleDiscovery(first, 12345)
	shuffleDiscovery(second, 12345)

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].ID, second[i].ID)
		assert.Equal(t, i, first[i].seq)
	}
}

func TestLessFeedRowsPriorityBeforeEverything(t *testing.T) {
	followed := feedRow{ID: 1, priority: PriorityFollowed}
	discovery := feedRow{ID: 99, priority: PriorityDiscovery, seq: 0}

	assert.True(t, lessFeedRows(followed, discovery))
	assert.False(t, lessFeedRows(discovery, followed))
}

func TestLessFeedRowsFollowedByIDDescending(t *testing.T) {
	older := feedRow{ID: 3, priority: PriorityFollowed}
	newer := feedRow{ID: 7, priority: PriorityFollowed}

	assert.True(t, lessFeedRows(newer, older))
	assert.False(t, lessFeedRows(older, newer))
}

func TestLessFeedRowsDiscoveryByShuffledSequence(t *testing.T) {
	first := feedRow{ID: 1, priority: PriorityDiscovery, seq: 0}
	second := feedRow{ID: 2, priority: PriorityDiscovery, seq: 1}

	assert.True(t, lessFeedRows(first, second))
	assert.False(t, lessFeedRows(second, first))
}

func TestOrderFeedInterleavedInput(t *testing.T) {
	followed := []feedRow{
		{ID: 2, priority: PriorityFollowed},
		{ID: 9, priority: PriorityFollowed},
	}
	discovery := []feedRow{
		{ID: 5, priority: PriorityDiscovery, seq: 1},
		{ID: 11, priority: PriorityDiscovery, seq: 0},
	}

	ordered := orderFeed(followed, discovery)

	require.Len(t, ordered, 4)
	assert.Equal(t, uint(9), ordered[0].ID)
	assert.Equal(t, uint(2), ordered[1].ID)
	assert.Equal(t, uint(11), ordered[2].ID)
	assert.Equal(t, uint(5), ordered[3].ID)
}

func TestPageBounds(t *testing.T) {
	testCases := []struct {
		name        string
		total       int
		page        int
		limit       int
		wantStart   int
		wantEnd     int
		wantHasMore bool
	}{
		{"first page of many", 25, 0, 10, 0, 10, true},
		{"last partial page", 25, 2, 10, 20, 25, false},
		{"page beyond end", 25, 3, 10, 25, 25, false},
		{"exact multiple boundary", 20, 1, 10, 10, 20, false},
		{"exact multiple has more", 20, 0, 10, 0, 10, true},
		{"empty set", 0, 0, 10, 0, 0, false},
		{"huge page on empty set", 0, math.MaxInt / 10, 10, 0, 0, false},
		{"page times limit overflows", 25, math.MaxInt/10 + 1, 10, 25, 25, false},
		{"max page max limit", 10, math.MaxInt, math.MaxInt, 10, 10, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			start, end, hasMore := pageBounds(tc.total, tc.page, tc.limit)
			assert.Equal(t, tc.wantStart, start)
			assert.Equal(t, tc.wantEnd, end)
			assert.Equal(t, tc.wantHasMore, hasMore)
		})
	}
}

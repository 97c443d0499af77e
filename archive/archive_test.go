package archive

import (
	"testing"

	"earlobe/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthKey(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"September 1st, 2025", "September 2025"},
		{"October 31st, 2025", "October 2025"},
		{"January 2, 2026", "January 2026"},
		{"no comma here", "no comma here"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, MonthKey(tc.title), "title %q", tc.title)
	}
}

func TestGroupByMonthNewestFirst(t *testing.T) {
	entries := []models.ArchiveEntry{
		{Title: "September 1st, 2025", Links: "https://a.example"},
		{Title: "October 12th, 2025", Links: "https://b.example"},
		{Title: "September 19th, 2025", Links: "https://c.example"},
		{Title: "January 3rd, 2026", Links: "https://d.example"},
	}

	groups := GroupByMonth(entries)

	require.Len(t, groups, 3)
	assert.Equal(t, "January 2026", groups[0].Month)
	assert.Equal(t, "October 2025", groups[1].Month)
	assert.Equal(t, "September 2025", groups[2].Month)

	// September keeps both entries in input order.
	require.Len(t, groups[2].Entries, 2)
	assert.Equal(t, "September 1st, 2025", groups[2].Entries[0].Title)
	assert.Equal(t, "September 19th, 2025", groups[2].Entries[1].Title)
}

func TestGroupByMonthUnparseableKeysSortLast(t *testing.T) {
	entries := []models.ArchiveEntry{
		{Title: "assorted older shows"},
		{Title: "September 1st, 2025"},
	}

	groups := GroupByMonth(entries)

	require.Len(t, groups, 2)
	assert.Equal(t, "September 2025", groups[0].Month)
	assert.Equal(t, "assorted older shows", groups[1].Month)
}

func TestGroupByMonthEmpty(t *testing.T) {
	assert.Empty(t, GroupByMonth(nil))
}

package archive

import (
	"sort"
	"strings"
	"time"

	"earlobe/models"
)

const monthLayout = "January 2006"

// MonthKey extracts the display month from an entry title, e.g.
// "September 1st, 2025" becomes "September 2025". Titles without a comma
// fall through as-is so odd entries still group somewhere.
func MonthKey(title string) string {
	parts := strings.SplitN(title, ",", 2)
	if len(parts) < 2 {
		return strings.TrimSpace(title)
	}
	monthDay := strings.TrimSpace(parts[0])
	year := strings.TrimSpace(parts[1])

	month := monthDay
	if i := strings.IndexByte(monthDay, ' '); i >= 0 {
		month = monthDay[:i]
	}
	return month + " " + year
}

// GroupByMonth buckets entries under their month key, months newest first.
// Keys that do not parse as a month sort after the dated ones. Entry order
// within a month follows the input.
func GroupByMonth(entries []models.ArchiveEntry) []models.ArchiveGroup {
	grouped := make(map[string][]models.ArchiveEntry)
	order := []string{}
	for _, entry := range entries {
		key := MonthKey(entry.Title)
		if _, seen := grouped[key]; !seen {
			order = append(order, key)
		}
		grouped[key] = append(grouped[key], entry)
	}

	sort.SliceStable(order, func(i, j int) bool {
		ti, erri := time.Parse(monthLayout, order[i])
		tj, errj := time.Parse(monthLayout, order[j])
		if erri != nil || errj != nil {
			return errj != nil && erri == nil
		}
		return ti.After(tj)
	})

	groups := make([]models.ArchiveGroup, 0, len(order))
	for _, key := range order {
		groups = append(groups, models.ArchiveGroup{Month: key, Entries: grouped[key]})
	}
	return groups
}

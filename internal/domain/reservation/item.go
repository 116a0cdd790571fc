package reservation

import (
	"fmt"
	"time"
)

// Item is what owners and walkers see in their listings: either one walk or every day
// of a grouped booking. Grouped items keep their records sorted by date and are never empty.
type Item struct {
	records []Record
	grouped bool
}

func newSingleItem(r Record) *Item {
	return &Item{records: []Record{r}}
}

func newGroupedItem(records []Record) *Item {
	return &Item{records: records, grouped: true}
}

func (it *Item) IsGrouped() bool {
	return it.grouped
}

// GroupID is empty for individual items.
func (it *Item) GroupID() string {
	if !it.grouped {
		return ""
	}
	return *it.records[0].GroupID
}

// Records returns a copy of the item's records in display order.
func (it *Item) Records() []Record {
	out := make([]Record, len(it.records))
	copy(out, it.records)
	return out
}

// PrimaryRecord carries the attributes shown at item level (walker, pet, photo).
func (it *Item) PrimaryRecord() Record {
	return it.records[0]
}

func (it *Item) lastRecord() Record {
	return it.records[len(it.records)-1]
}

func (it *Item) firstDate() *time.Time {
	return it.records[0].Date
}

func (it *Item) DayCount() int {
	if !it.grouped {
		return 1
	}
	return len(it.records)
}

func (it *Item) TotalCost() Money {
	var total Money
	for _, r := range it.records {
		total = total.Add(r.Cost)
	}
	return total
}

func (it *Item) DateRangeLabel() string {
	if !it.grouped {
		return it.records[0].FormattedDate()
	}
	first, last := it.records[0].Date, it.lastRecord().Date
	if first == nil || last == nil {
		return fmt.Sprintf("%d días", it.DayCount())
	}
	return formatDate(first) + " – " + formatDate(last)
}

func (it *Item) CompletedCount() int {
	n := 0
	for _, r := range it.records {
		if r.IsCompleted() {
			n++
		}
	}
	return n
}

func (it *Item) IsPartiallyCompleted() bool {
	done := it.CompletedCount()
	return done > 0 && done < it.DayCount()
}

func (it *Item) IsFullyCompleted() bool {
	done := it.CompletedCount()
	return done > 0 && done == it.DayCount()
}

// EffectiveStatus summarises a group: all cancelled, all completed, otherwise the first
// day that is still active. The first day's raw status is the last resort.
func (it *Item) EffectiveStatus() Status {
	if !it.grouped {
		return it.records[0].Status
	}

	allCancelled, allCompleted := true, true
	for _, r := range it.records {
		if r.Status != StatusCancelled {
			allCancelled = false
		}
		if r.Status != StatusCompleted {
			allCompleted = false
		}
	}
	switch {
	case allCancelled:
		return StatusCancelled
	case allCompleted:
		return StatusCompleted
	}

	for _, r := range it.records {
		if r.Status.IsActive() {
			return r.Status
		}
	}
	return it.records[0].Status
}

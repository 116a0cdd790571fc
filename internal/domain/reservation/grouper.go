package reservation

import "slices"

// Group turns a flat list of records into listing items. Records that belong to a group
// are merged into one item per group id; every other record becomes its own item.
// Items are ordered newest first by the date of their first record, unknown dates last.
//
// Group never fails: missing dates, statuses or costs only affect ordering and labels.
func Group(records []Record) []*Item {
	items := make([]*Item, 0, len(records))

	buckets := make(map[string][]Record)
	var order []string
	for _, r := range records {
		if !r.InGroup() {
			items = append(items, newSingleItem(r))
			continue
		}
		id := *r.GroupID
		if _, seen := buckets[id]; !seen {
			order = append(order, id)
		}
		buckets[id] = append(buckets[id], r)
	}

	for _, id := range order {
		members := buckets[id]
		if len(members) == 0 {
			continue
		}
		slices.SortStableFunc(members, func(a, b Record) int {
			return compareDates(a.Date, b.Date)
		})
		items = append(items, newGroupedItem(members))
	}

	slices.SortStableFunc(items, func(a, b *Item) int {
		da, db := a.firstDate(), b.firstDate()
		switch {
		case da == nil && db == nil:
			return 0
		case da == nil:
			return 1
		case db == nil:
			return -1
		default:
			return db.Compare(*da)
		}
	})

	return items
}

// CountRecords returns how many records the items cover; it always equals the
// length of the slice passed to Group.
func CountRecords(items []*Item) int {
	n := 0
	for _, it := range items {
		n += it.DayCount()
	}
	return n
}

package stock

// IsBookingImpacted reports whether saving current over baseline changes
// something bookers of this stock rely on.
func IsBookingImpacted(current, baseline Entry) bool {
	if current.BookingsQuantity <= 0 {
		return false
	}
	if current.BeginningDate != baseline.BeginningDate ||
		current.BeginningTime != baseline.BeginningTime ||
		current.PriceCategoryID != baseline.PriceCategoryID {
		return true
	}
	total := current.TotalQuantity()
	return total != nil && *total < current.BookingsQuantity
}

// ImpactedRows returns the indexes of live rows whose save would affect
// existing bookings. Rows are paired with the baseline by id; rows without id
// are paired by position. A booked row whose id is missing from the baseline
// has no known saved state and always counts as impacted.
func ImpactedRows(live, baseline []Entry) []int {
	byID := make(map[int64]Entry, len(baseline))
	for _, b := range baseline {
		if b.ID != nil {
			byID[*b.ID] = b
		}
	}

	var out []int
	for i, e := range live {
		var (
			base  Entry
			found bool
		)
		if e.ID != nil {
			base, found = byID[*e.ID]
			if !found && e.BookingsQuantity > 0 {
				out = append(out, i)
				continue
			}
		} else if i < len(baseline) && baseline[i].ID == nil {
			base, found = baseline[i], true
		}
		if found && IsBookingImpacted(e, base) {
			out = append(out, i)
		}
	}
	return out
}

func HasChangesOnBookedStocks(live, baseline []Entry) bool {
	return len(ImpactedRows(live, baseline)) > 0
}

package weather

// HighestPossiblePrecipitationSeverity returns the most severe label the item
// may represent. It returns false when the item has no current precipitation
// or its severity list is empty.
func HighestPossiblePrecipitationSeverity[C ~int](item Item[C]) (PrecipitationSeverity, bool) {
	return extremeSeverity(item.Precipitation, 1)
}

// LowestPossiblePrecipitationSeverity returns the least severe label the item
// may represent, with the same false conditions as
// HighestPossiblePrecipitationSeverity.
func LowestPossiblePrecipitationSeverity[C ~int](item Item[C]) (PrecipitationSeverity, bool) {
	return extremeSeverity(item.Precipitation, -1)
}

// SeverityRange returns both extremes of the item's possible severities.
func SeverityRange[C ~int](item Item[C]) (lowest, highest PrecipitationSeverity, ok bool) {
	lowest, ok = LowestPossiblePrecipitationSeverity(item)
	if !ok {
		return "", "", false
	}
	highest, _ = HighestPossiblePrecipitationSeverity(item)
	return lowest, highest, true
}

// extremeSeverity scans the severities once, keeping the element that
// compares strictly better in the requested direction (+1 max, -1 min).
func extremeSeverity(p Precipitation, direction int) (PrecipitationSeverity, bool) {
	current, ok := currentOf(p)
	if !ok || len(current.PossiblePrecipitationSeverities) == 0 {
		return "", false
	}

	best := current.PossiblePrecipitationSeverities[0]
	for _, s := range current.PossiblePrecipitationSeverities[1:] {
		if CompareSeverity(s, best) == direction {
			best = s
		}
	}
	return best, true
}

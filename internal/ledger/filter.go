package ledger

import "strings"

// FilterState is the full set of filter parameters of a viewing session.
// The zero value is the default state and restricts nothing.
type FilterState struct {
	Search    string
	Dates     DateRange
	Type      Option[TransactionType]
	Direction Option[Direction]
	Account   AccountFilter
}

// DefaultFilterState returns the state every filter is reset to.
func DefaultFilterState() FilterState {
	return FilterState{
		Type:      Any[TransactionType](),
		Direction: Any[Direction](),
		Account:   AnyAccount(),
	}
}

// IsDefault reports whether no filter restricts the record set.
func (f FilterState) IsDefault() bool {
	return len(f.predicates()) == 0
}

// predicates returns only the filters that restrict the set.
func (f FilterState) predicates() []Predicate {
	var preds []Predicate
	if search := f.Search; strings.TrimSpace(search) != "" {
		preds = append(preds, func(r Record) bool { return MatchesSearch(r, search) })
	}
	if dates := f.Dates; dates.IsActive() {
		preds = append(preds, func(r Record) bool { return WithinDateRange(r, dates) })
	}
	if t := f.Type; !t.IsAny() {
		preds = append(preds, func(r Record) bool { return MatchesType(r, t) })
	}
	if d := f.Direction; !d.IsAny() {
		preds = append(preds, func(r Record) bool { return MatchesDirection(r, d) })
	}
	if a := f.Account; !a.IsAny() {
		preds = append(preds, func(r Record) bool { return MatchesAccount(r, a) })
	}
	return preds
}

// Apply returns the records satisfying every active filter, in their original order.
// The result is always a new slice; records are never modified.
func Apply(records []Record, f FilterState) []Record {
	preds := f.predicates()
	out := make([]Record, 0, len(records))
records:
	for _, r := range records {
		for _, p := range preds {
			if !p(r) {
				continue records
			}
		}
		out = append(out, r)
	}
	return out
}

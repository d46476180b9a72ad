package ledger

import (
	"strings"

	"cloud.google.com/go/civil"
)

// Predicate decides whether a record belongs in the filtered sequence.
type Predicate func(Record) bool

// DateRange bounds transaction dates inclusively. It only restricts when both
// Start and End are set; a lone bound is ignored.
type DateRange struct {
	Start civil.Date
	End   civil.Date
}

// IsActive reports whether both bounds are set.
func (d DateRange) IsActive() bool {
	return d.Start.IsValid() && d.End.IsValid()
}

// MatchesSearch reports whether term occurs, ignoring case, in the record's
// description, transaction type or reference type. A blank term matches everything.
func MatchesSearch(r Record, term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(r.Description), term) ||
		strings.Contains(strings.ToLower(string(r.Type)), term) ||
		strings.Contains(strings.ToLower(string(r.ReferenceType)), term)
}

// WithinDateRange reports whether the record's calendar date lies in the range.
// Records whose date could not be parsed never satisfy an active range.
func WithinDateRange(r Record, dates DateRange) bool {
	if !dates.IsActive() {
		return true
	}
	if !r.TransactionDate.IsValid() {
		return false
	}
	return !r.TransactionDate.Before(dates.Start) && !r.TransactionDate.After(dates.End)
}

// MatchesType reports whether the record has the selected transaction type.
func MatchesType(r Record, t Option[TransactionType]) bool {
	return t.Matches(r.Type)
}

// MatchesDirection reports whether the record is a credit or debit as selected.
func MatchesDirection(r Record, d Option[Direction]) bool {
	return d.Matches(directionOf(r))
}

// MatchesAccount reports whether the record belongs to the selected account.
func MatchesAccount(r Record, f AccountFilter) bool {
	switch f.kind {
	case accountFilterCash:
		return r.IsCash()
	case accountFilterBank:
		return r.BankAccountID.Valid && r.BankAccountID.UUID == f.id
	default:
		return true
	}
}

package ledger

import (
	"context"
	"slices"

	"github.com/gofrs/uuid/v5"
)

// Row is a visible record with its account label resolved.
type Row struct {
	Record
	AccountLabel string
}

// View is everything the presentation layer renders for a session.
type View struct {
	Rows             []Row
	Totals           Totals
	Formatted        FormattedTotals
	Page             Page
	TotalCount       int
	PageCount        int
	AllowedPageSizes []int
	Filter           FilterState
	Accounts         []BankAccount
	Error            error
}

// Session owns the state of one ledger view: the loaded records, the filters,
// the pagination and everything derived from them. It is not safe for
// concurrent use; callers serialize access.
//
// Every setter recomputes the filtered sequence and totals from scratch before
// returning the new View. Filter changes and reloads return to the first page.
type Session struct {
	records      []Record
	accounts     []BankAccount
	accountNames map[uuid.UUID]string

	filter    FilterState
	pager     Pager
	filtered  []Record
	totals    Totals
	fetchErr  error
	formatter CurrencyFormatter
	listeners []func(View)
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithFormatter sets the currency formatter used for the totals.
func WithFormatter(f CurrencyFormatter) SessionOption {
	return func(s *Session) {
		s.formatter = f
	}
}

// NewSession returns an empty session with default filters on the first page.
func NewSession(opts ...SessionOption) *Session {
	s := &Session{
		filter:       DefaultFilterState(),
		pager:        NewPager(),
		accountNames: map[uuid.UUID]string{},
		formatter:    NewCurrencyFormatter("", "en"),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.recompute()
	return s
}

// OnChange registers fn to be called with the new View after every state change.
func (s *Session) OnChange(fn func(View)) {
	s.listeners = append(s.listeners, fn)
}

// Load replaces the record set and bank accounts with snap and clears any fetch error.
func (s *Session) Load(snap Snapshot) View {
	s.records = snap.Records
	s.accounts = snap.Accounts
	s.accountNames = make(map[uuid.UUID]string, len(snap.Accounts))
	for _, a := range snap.Accounts {
		s.accountNames[a.ID] = a.Name
	}
	s.fetchErr = nil
	return s.changed(true)
}

// FetchFailed records err for display. The previous record set stays loaded.
func (s *Session) FetchFailed(err error) View {
	s.fetchErr = err
	return s.changed(false)
}

// Refresh fetches from store and loads the result, or records the failure.
func (s *Session) Refresh(ctx context.Context, store Store) View {
	snap, err := Fetch(ctx, store)
	if err != nil {
		return s.FetchFailed(err)
	}
	return s.Load(snap)
}

// DismissError clears the last fetch error.
func (s *Session) DismissError() View {
	s.fetchErr = nil
	return s.changed(false)
}

func (s *Session) SetSearch(term string) View {
	s.filter.Search = term
	return s.changed(true)
}

func (s *Session) SetDateRange(dates DateRange) View {
	s.filter.Dates = dates
	return s.changed(true)
}

func (s *Session) SetType(t Option[TransactionType]) View {
	s.filter.Type = t
	return s.changed(true)
}

func (s *Session) SetDirection(d Option[Direction]) View {
	s.filter.Direction = d
	return s.changed(true)
}

func (s *Session) SetAccount(a AccountFilter) View {
	s.filter.Account = a
	return s.changed(true)
}

// SetFilters replaces the whole filter state at once.
func (s *Session) SetFilters(f FilterState) View {
	s.filter = f
	return s.changed(true)
}

// ResetFilters restores every filter to its default.
func (s *Session) ResetFilters() View {
	s.filter = DefaultFilterState()
	return s.changed(true)
}

// SetPage moves to page n, clamped to the available pages.
func (s *Session) SetPage(n int) View {
	s.pager.SetPage(n, len(s.filtered))
	return s.changed(false)
}

// SetPageSize changes the page size and returns to the first page.
func (s *Session) SetPageSize(size int) (View, error) {
	if err := s.pager.SetPageSize(size); err != nil {
		return s.View(), err
	}
	return s.changed(false), nil
}

// View returns the current derived view without changing anything.
func (s *Session) View() View {
	visible := VisibleSlice(s.filtered, s.pager.Page())
	rows := make([]Row, len(visible))
	for i, r := range visible {
		rows[i] = Row{Record: r, AccountLabel: s.accountLabel(r)}
	}

	page := s.pager.Page()
	page.Index = clampIndex(page.Index, len(s.filtered), page.Size)

	return View{
		Rows:             rows,
		Totals:           s.totals,
		Formatted:        s.formatter.FormatTotals(s.totals),
		Page:             page,
		TotalCount:       len(s.filtered),
		PageCount:        PageCount(len(s.filtered), page.Size),
		AllowedPageSizes: slices.Clone(AllowedPageSizes),
		Filter:           s.filter,
		Accounts:         slices.Clone(s.accounts),
		Error:            s.fetchErr,
	}
}

func (s *Session) accountLabel(r Record) string {
	if r.IsCash() {
		return CashAccountLabel
	}
	if r.BankAccountName != "" {
		return r.BankAccountName
	}
	if name, ok := s.accountNames[r.BankAccountID.UUID]; ok {
		return name
	}
	return UnknownAccountLabel
}

// recompute rebuilds every derived value from the records and filters.
func (s *Session) recompute() {
	s.filtered = Apply(s.records, s.filter)
	s.totals = Aggregate(s.filtered)
	s.pager.Reset()
}

func (s *Session) changed(filteredChanged bool) View {
	if filteredChanged {
		s.recompute()
	}
	v := s.View()
	for _, fn := range s.listeners {
		fn(v)
	}
	return v
}

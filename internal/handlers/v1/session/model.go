package session

import (
	"github.com/gofrs/uuid/v5"

	"github.com/jagannath-p-s/malabareco-sub001/internal/ledger"
)

const (
	wildcard    = "all"
	cashAccount = "cash"
)

// SessionView is the API response model for a ledger session.
type SessionView struct {
	SessionID        string        `json:"sessionID" doc:"Ledger session UUID"`
	Rows             []Row         `json:"rows" doc:"Transactions on the current page"`
	Totals           Totals        `json:"totals" doc:"Sums over every filtered transaction"`
	Page             Page          `json:"page" doc:"Pagination state"`
	Filters          Filters       `json:"filters" doc:"Active filters"`
	BankAccounts     []BankAccount `json:"bankAccounts" doc:"Bank accounts available to the account filter"`
	TransactionTypes []string      `json:"transactionTypes" doc:"Transaction types available to the type filter"`
	Anomalies        []Anomaly     `json:"anomalies" doc:"Filtered transactions left out of the totals"`
	Error            string        `json:"error,omitempty" doc:"Last failed refresh, until dismissed"`
}

// Row is one visible transaction.
type Row struct {
	ID              string `json:"id" doc:"Transaction UUID"`
	TransactionDate string `json:"transactionDate" doc:"Calendar date, empty when the stored date is unreadable"`
	Type            string `json:"type" doc:"Transaction type"`
	ReferenceType   string `json:"referenceType" doc:"Originating business event"`
	Description     string `json:"description" doc:"Free text description"`
	Amount          string `json:"amount" doc:"Decimal amount, empty when the stored amount is unreadable"`
	Direction       string `json:"direction" enum:"credit,debit" doc:"Money in or out"`
	BankAccountID   string `json:"bankAccountID,omitempty" doc:"Bank account UUID, absent for cash"`
	AccountLabel    string `json:"accountLabel" doc:"Display name of the account"`
}

// Totals are the decimal sums and their display forms.
type Totals struct {
	Credits          string `json:"credits" doc:"Sum of credit amounts"`
	Debits           string `json:"debits" doc:"Sum of debit amounts"`
	Net              string `json:"net" doc:"Credits minus debits"`
	FormattedCredits string `json:"formattedCredits" doc:"Credits formatted as currency"`
	FormattedDebits  string `json:"formattedDebits" doc:"Debits formatted as currency"`
	FormattedNet     string `json:"formattedNet" doc:"Net formatted as currency"`
}

// Page describes the pagination state.
type Page struct {
	Index        int   `json:"index" doc:"Zero-based page index"`
	Size         int   `json:"size" doc:"Rows per page"`
	TotalCount   int   `json:"totalCount" doc:"Number of filtered transactions"`
	PageCount    int   `json:"pageCount" doc:"Number of pages"`
	AllowedSizes []int `json:"allowedSizes" doc:"Accepted page sizes"`
}

// Filters is the active filter state. Wildcards are reported as "all".
type Filters struct {
	Search    string `json:"search" doc:"Free text search"`
	StartDate string `json:"startDate,omitempty" doc:"Inclusive start date"`
	EndDate   string `json:"endDate,omitempty" doc:"Inclusive end date"`
	Type      string `json:"type" doc:"Transaction type or all"`
	Direction string `json:"direction" doc:"credit, debit or all"`
	Account   string `json:"account" doc:"Bank account UUID, cash or all"`
}

// BankAccount is a choice for the account filter.
type BankAccount struct {
	ID   string `json:"id" doc:"Bank account UUID"`
	Name string `json:"name" doc:"Bank account name"`
}

// Anomaly is a transaction excluded from the totals.
type Anomaly struct {
	TransactionID string `json:"transactionID" doc:"Transaction UUID"`
	Reason        string `json:"reason" doc:"Why it was excluded"`
}

func newSessionView(id uuid.UUID, view ledger.View) SessionView {
	out := SessionView{
		SessionID: id.String(),
		Rows:      make([]Row, len(view.Rows)),
		Totals: Totals{
			Credits:          view.Totals.Credits.StringFixed(2),
			Debits:           view.Totals.Debits.StringFixed(2),
			Net:              view.Totals.Net.StringFixed(2),
			FormattedCredits: view.Formatted.Credits,
			FormattedDebits:  view.Formatted.Debits,
			FormattedNet:     view.Formatted.Net,
		},
		Page: Page{
			Index:        view.Page.Index,
			Size:         view.Page.Size,
			TotalCount:   view.TotalCount,
			PageCount:    view.PageCount,
			AllowedSizes: view.AllowedPageSizes,
		},
		Filters:          newFilters(view.Filter),
		BankAccounts:     make([]BankAccount, len(view.Accounts)),
		TransactionTypes: make([]string, len(ledger.TransactionTypes)),
		Anomalies:        make([]Anomaly, len(view.Totals.Anomalies)),
	}

	for i, r := range view.Rows {
		out.Rows[i] = newRow(r)
	}
	for i, a := range view.Accounts {
		out.BankAccounts[i] = BankAccount{ID: a.ID.String(), Name: a.Name}
	}
	for i, t := range ledger.TransactionTypes {
		out.TransactionTypes[i] = string(t)
	}
	for i, a := range view.Totals.Anomalies {
		out.Anomalies[i] = Anomaly{TransactionID: a.RecordID.String(), Reason: a.Reason}
	}
	if view.Error != nil {
		out.Error = view.Error.Error()
	}
	return out
}

func newRow(r ledger.Row) Row {
	row := Row{
		ID:            r.ID.String(),
		Type:          string(r.Type),
		ReferenceType: string(r.ReferenceType),
		Description:   r.Description,
		Direction:     string(ledger.DirectionDebit),
		AccountLabel:  r.AccountLabel,
	}
	if r.IsCredit {
		row.Direction = string(ledger.DirectionCredit)
	}
	if r.TransactionDate.IsValid() {
		row.TransactionDate = r.TransactionDate.String()
	}
	if r.Amount.Valid {
		row.Amount = r.Amount.Decimal.StringFixed(2)
	}
	if !r.IsCash() {
		row.BankAccountID = r.BankAccountID.UUID.String()
	}
	return row
}

func newFilters(f ledger.FilterState) Filters {
	out := Filters{
		Search:    f.Search,
		Type:      wildcard,
		Direction: wildcard,
		Account:   wildcard,
	}
	if f.Dates.Start.IsValid() {
		out.StartDate = f.Dates.Start.String()
	}
	if f.Dates.End.IsValid() {
		out.EndDate = f.Dates.End.String()
	}
	if t, ok := f.Type.Get(); ok {
		out.Type = string(t)
	}
	if d, ok := f.Direction.Get(); ok {
		out.Direction = string(d)
	}
	if f.Account.IsCash() {
		out.Account = cashAccount
	} else if id, ok := f.Account.BankAccountID(); ok {
		out.Account = id.String()
	}
	return out
}

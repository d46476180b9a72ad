package ledger

import (
	"testing"

	"cloud.google.com/go/civil"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

func date(t *testing.T, s string) civil.Date {
	t.Helper()
	d, err := civil.ParseDate(s)
	if err != nil {
		t.Fatalf("civil.ParseDate(%q): %v", s, err)
	}
	return d
}

func amount(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(s))
}

func bankRef(id uuid.UUID) uuid.NullUUID {
	return uuid.NullUUID{UUID: id, Valid: true}
}

func newRecord(isCredit bool, value string) Record {
	return Record{
		ID:              uuid.Must(uuid.NewV4()),
		TransactionDate: civil.Date{Year: 2024, Month: 1, Day: 15},
		Type:            TransactionTypeRevenue,
		ReferenceType:   ReferenceTypeOutwardEntry,
		Description:     "Sale",
		Amount:          amount(value),
		IsCredit:        isCredit,
	}
}

func recordIDs(records []Record) []uuid.UUID {
	ids := make([]uuid.UUID, len(records))
	for i, r := range records {
		ids[i] = r.ID
	}
	return ids
}

func rowIDs(rows []Row) []uuid.UUID {
	ids := make([]uuid.UUID, len(rows))
	for i, r := range rows {
		ids[i] = r.ID
	}
	return ids
}

func makeRecords(n int) []Record {
	records := make([]Record, n)
	for i := range records {
		records[i] = newRecord(i%2 == 0, "10.00")
	}
	return records
}

package ledger

import (
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ledgerFixture(t *testing.T) ([]Record, uuid.UUID) {
	t.Helper()
	branchID := uuid.Must(uuid.NewV4())

	records := []Record{
		{ID: uuid.Must(uuid.NewV4()), TransactionDate: date(t, "2024-02-01"), Type: TransactionTypeRevenue, ReferenceType: ReferenceTypeOutwardEntry, Description: "Sold PET bales", Amount: amount("500.00"), IsCredit: true, BankAccountID: bankRef(branchID), BankAccountName: "Cash Branch"},
		{ID: uuid.Must(uuid.NewV4()), TransactionDate: date(t, "2024-01-31"), Type: TransactionTypeMaterialPurchase, ReferenceType: ReferenceTypeInwardEntry, Description: "Cardboard from Kochi yard", Amount: amount("120.00"), IsCredit: false},
		{ID: uuid.Must(uuid.NewV4()), TransactionDate: date(t, "2024-01-20"), Type: TransactionTypeStaffPayment, ReferenceType: ReferenceTypeStaffPayment, Description: "Wages", Amount: amount("80.00"), IsCredit: false, BankAccountID: bankRef(branchID), BankAccountName: "Cash Branch"},
		{ID: uuid.Must(uuid.NewV4()), TransactionDate: date(t, "2024-01-01"), Type: TransactionTypeRevenue, ReferenceType: ReferenceTypeSegregatedEntry, Description: "Scrap metal", Amount: amount("250.00"), IsCredit: true},
		{ID: uuid.Must(uuid.NewV4()), TransactionDate: date(t, "2023-12-31"), Type: TransactionTypeExpense, ReferenceType: ReferenceTypeExpense, Description: "Diesel", Amount: amount("40.00"), IsCredit: false},
	}
	return records, branchID
}

func isOrderedSubset(t *testing.T, subset, full []Record) bool {
	t.Helper()
	j := 0
	for _, r := range subset {
		for j < len(full) && full[j].ID != r.ID {
			j++
		}
		if j == len(full) {
			return false
		}
		j++
	}
	return true
}

func TestApply_DefaultStateIsIdentity(t *testing.T) {
	records, _ := ledgerFixture(t)

	assert.Equal(t, recordIDs(records), recordIDs(Apply(records, DefaultFilterState())))
	assert.Equal(t, recordIDs(records), recordIDs(Apply(records, FilterState{})))
	assert.True(t, DefaultFilterState().IsDefault())
}

func TestApply_ResultIsOrderedSubset(t *testing.T) {
	records, branchID := ledgerFixture(t)

	states := []FilterState{
		{Search: "a"},
		{Search: "entry", Direction: Only(DirectionCredit)},
		{Dates: DateRange{Start: date(t, "2024-01-01"), End: date(t, "2024-01-31")}},
		{Type: Only(TransactionTypeRevenue), Account: CashAccount()},
		{Account: BankAccountFilter(branchID), Direction: Only(DirectionDebit)},
		{Search: "nothing matches this"},
	}
	for _, f := range states {
		got := Apply(records, f)
		assert.True(t, isOrderedSubset(t, got, records))
		assert.LessOrEqual(t, len(got), len(records))
	}
}

func TestApply_IsIdempotent(t *testing.T) {
	records, _ := ledgerFixture(t)
	f := FilterState{Search: "e", Direction: Only(DirectionDebit)}

	first := Apply(records, f)
	second := Apply(records, f)

	assert.Equal(t, recordIDs(first), recordIDs(second))
	assert.Equal(t, recordIDs(first), recordIDs(Apply(first, f)))
}

func TestApply_CombinesFiltersWithAnd(t *testing.T) {
	records, _ := ledgerFixture(t)

	got := Apply(records, FilterState{
		Type:      Only(TransactionTypeRevenue),
		Direction: Only(DirectionCredit),
		Account:   CashAccount(),
	})

	require.Len(t, got, 1)
	assert.Equal(t, "Scrap metal", got[0].Description)
}

func TestApply_DateRangeScenario(t *testing.T) {
	records, _ := ledgerFixture(t)

	got := Apply(records, FilterState{
		Dates: DateRange{Start: date(t, "2024-01-01"), End: date(t, "2024-01-31")},
	})

	assert.Equal(t, []uuid.UUID{records[1].ID, records[2].ID, records[3].ID}, recordIDs(got))
}

func TestApply_CashScenario(t *testing.T) {
	records, _ := ledgerFixture(t)

	got := Apply(records, FilterState{Account: CashAccount()})

	require.Len(t, got, 3)
	for _, r := range got {
		assert.True(t, r.IsCash())
		assert.NotEqual(t, "Cash Branch", r.BankAccountName)
	}
}

func TestApply_DoesNotModifyInput(t *testing.T) {
	records, _ := ledgerFixture(t)
	before := recordIDs(records)

	_ = Apply(records, FilterState{Search: "wages"})

	assert.Equal(t, before, recordIDs(records))
}

func TestApply_EmptyInput(t *testing.T) {
	got := Apply(nil, FilterState{Search: "x"})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

package ledger

import (
	"testing"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregate_Scenario(t *testing.T) {
	records := []Record{
		newRecord(true, "100"),
		newRecord(false, "40"),
		newRecord(true, "25"),
	}

	totals := Aggregate(records)

	assert.True(t, totals.Credits.Equal(decimal.RequireFromString("125")))
	assert.True(t, totals.Debits.Equal(decimal.RequireFromString("40")))
	assert.True(t, totals.Net.Equal(decimal.RequireFromString("85")))
	assert.Empty(t, totals.Anomalies)
}

func TestAggregate_Empty(t *testing.T) {
	totals := Aggregate(nil)

	assert.True(t, totals.Credits.IsZero())
	assert.True(t, totals.Debits.IsZero())
	assert.True(t, totals.Net.IsZero())
	assert.Empty(t, totals.Anomalies)
}

func TestAggregate_NoFloatingPointDrift(t *testing.T) {
	records := make([]Record, 0, 10)
	for range 10 {
		records = append(records, newRecord(true, "0.10"))
	}
	records = append(records, newRecord(false, "0.30"))

	totals := Aggregate(records)

	assert.Equal(t, "1", totals.Credits.String())
	assert.Equal(t, "0.7", totals.Net.String())
}

func TestAggregate_NetCanBeNegative(t *testing.T) {
	totals := Aggregate([]Record{newRecord(true, "10.50"), newRecord(false, "20.25")})

	assert.True(t, totals.Net.Equal(decimal.RequireFromString("-9.75")))
	assert.False(t, totals.Credits.IsNegative())
	assert.False(t, totals.Debits.IsNegative())
}

func TestAggregate_InvariantsOverFilteredSequences(t *testing.T) {
	records, branchID := ledgerFixture(t)

	for _, f := range []FilterState{
		DefaultFilterState(),
		{Direction: Only(DirectionDebit)},
		{Account: BankAccountFilter(branchID)},
		{Search: "no match"},
	} {
		totals := Aggregate(Apply(records, f))
		assert.False(t, totals.Credits.IsNegative())
		assert.False(t, totals.Debits.IsNegative())
		assert.True(t, totals.Net.Equal(totals.Credits.Sub(totals.Debits)))
	}
}

func TestAggregate_MalformedRecordsAreSkippedAndReported(t *testing.T) {
	good := newRecord(true, "100")

	nonNumeric := newRecord(true, "0")
	nonNumeric.Amount = decimal.NullDecimal{}

	negative := newRecord(false, "-5")

	undated := newRecord(true, "30")
	undated.TransactionDate = civil.Date{}

	totals := Aggregate([]Record{good, nonNumeric, negative, undated})

	assert.True(t, totals.Credits.Equal(decimal.RequireFromString("100")))
	assert.True(t, totals.Debits.IsZero())
	require.Len(t, totals.Anomalies, 3)
	assert.Equal(t, Anomaly{RecordID: nonNumeric.ID, Reason: AnomalyInvalidAmount}, totals.Anomalies[0])
	assert.Equal(t, Anomaly{RecordID: negative.ID, Reason: AnomalyNegativeAmount}, totals.Anomalies[1])
	assert.Equal(t, Anomaly{RecordID: undated.ID, Reason: AnomalyInvalidDate}, totals.Anomalies[2])
}

package ledger

import (
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Anomaly records a record that was left out of the totals and why.
type Anomaly struct {
	RecordID uuid.UUID
	Reason   string
}

const (
	AnomalyInvalidAmount  = "amount is not a number"
	AnomalyNegativeAmount = "amount is negative"
	AnomalyInvalidDate    = "transaction date is not a valid date"
)

// Totals are the derived sums of a filtered sequence.
type Totals struct {
	Credits   decimal.Decimal
	Debits    decimal.Decimal
	Net       decimal.Decimal
	Anomalies []Anomaly
}

// Aggregate sums credits and debits over records. Malformed records are skipped
// and reported as anomalies instead of failing the whole computation.
func Aggregate(records []Record) Totals {
	credits := decimal.Zero
	debits := decimal.Zero
	var anomalies []Anomaly

	for _, r := range records {
		if reason, ok := malformed(r); ok {
			anomalies = append(anomalies, Anomaly{RecordID: r.ID, Reason: reason})
			continue
		}
		if r.IsCredit {
			credits = credits.Add(r.Amount.Decimal)
		} else {
			debits = debits.Add(r.Amount.Decimal)
		}
	}

	return Totals{
		Credits:   credits,
		Debits:    debits,
		Net:       credits.Sub(debits),
		Anomalies: anomalies,
	}
}

func malformed(r Record) (string, bool) {
	switch {
	case !r.Amount.Valid:
		return AnomalyInvalidAmount, true
	case r.Amount.Decimal.IsNegative():
		return AnomalyNegativeAmount, true
	case !r.TransactionDate.IsValid():
		return AnomalyInvalidDate, true
	}
	return "", false
}

package export

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"mortgage-engine/domain"
)

// ScheduleColumns is the column set of every tabular export, in order.
var ScheduleColumns = []string{"Month", "Payment", "Principal", "Interest", "Tax", "Insurance", "Extra", "Balance"}

// RenderCSV serializes a schedule as delimited text. Money values are
// plain decimal numbers so the output stays machine-readable.
func RenderCSV(result domain.ScheduleResult) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(ScheduleColumns); err != nil {
		return nil, err
	}

	for _, rec := range result.Schedule {
		row := []string{
			strconv.Itoa(rec.Month),
			formatMoney(rec.Payment),
			formatMoney(rec.PrincipalPaid),
			formatMoney(rec.InterestPaid),
			formatMoney(rec.TaxPaid),
			formatMoney(rec.InsurancePaid),
			formatMoney(rec.ExtraPaid),
			formatMoney(rec.Balance),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func formatMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

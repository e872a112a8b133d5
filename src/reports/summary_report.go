package reports

import (
	"fmt"

	"github.com/username/brokercomm/src/models"
)

// BrokerSummary totals commission per broker from a four-column per-case
// commission report (BrokerName,CaseId,BaseCommission,BonusCommission).
// Brokers appear in the output in first-seen order. A row with fewer than
// four fields is a structural mismatch and fails the run instead of being
// silently mis-parsed.
func BrokerSummary(rows [][]string) ([][]string, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("summary report: input has no header row")
	}

	totals := make(map[string]float64)
	var order []string

	for i, row := range rows[1:] {
		if len(row) < 4 {
			return nil, fmt.Errorf("summary report: row %d has %d fields, want 4 (was the commission report generated with a bonus structure?)", i+1, len(row))
		}

		broker := row[0]
		if _, seen := totals[broker]; !seen {
			order = append(order, broker)
		}

		base := models.ParseMoney(row[2])
		bonus := models.ParseMoney(row[3])
		totals[broker] += base.Amount + bonus.Amount
	}

	out := make([][]string, 0, len(order)+1)
	out = append(out, []string{"BrokerName", "TotalCommission"})
	for _, broker := range order {
		total := models.Money{Symbol: models.ReportingSymbol, Amount: totals[broker]}
		out = append(out, []string{broker, total.String()})
	}

	return out, nil
}

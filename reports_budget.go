package bookkeeper

import "sort"

// BudgetVsActuals computes the budget position of every non-header account
// over a date range.
//
// Actual spend is strict: only EXPENSE transactions on the account, dated
// within the range boundaries included, count. The budget is the monthly
// amount pro-rated by the inclusive number of months the range touches
// (minimum 1). Rows come back sorted by descending absolute variance, so
// the largest deviations lead; the sort is stable.
func BudgetVsActuals(l *Ledger, accounts *Accounts, budget *Budget, rng Range) []BudgetRow {
	var rows []BudgetRow
	months := rng.Months()

	for acc := range accounts.All() {
		if acc.IsHeader {
			continue
		}

		var actual Money
		for _, t := range l.Transactions(ByAccount(acc.Code)) {
			if t.Type.IsSpend() && rng.Contains(t.Date) {
				actual = actual.Add(t.Amount)
			}
		}

		monthly := budget.Monthly(acc.Code)
		total := monthly.MulInt(months)
		variance := total.Sub(actual)

		rows = append(rows, BudgetRow{
			Code:        acc.Code,
			Category:    acc.Category,
			Monthly:     monthly,
			Total:       total,
			Actual:      actual,
			Variance:    variance,
			VariancePct: variance.Percent(total),
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Variance.Abs().GreaterThan(rows[j].Variance.Abs())
	})
	return rows
}

package bookkeeper

// TrialBalance derives the per-account net debit or credit position from the
// transaction type classification.
//
// Outflow-classified transactions fill an account's debit bucket, inflow
// types its credit bucket, and the two buckets net against each other so a
// row never shows both sides. Header entries pass through as zero-amount
// label rows for layout. Transactions on codes missing from the chart keep
// their full monetary weight and are gathered under a trailing fallback row,
// so the totals always cover every transaction.
//
// The totals are not forced to balance: this is a single-entry model, and
// an inequality simply reflects a non-zero overall cash position.
func TrialBalance(l *Ledger, accounts *Accounts) TrialBalanceReport {
	var report TrialBalanceReport

	posted := make(map[string]bool)
	for acc := range accounts.All() {
		posted[acc.Code] = true
		if acc.IsHeader {
			report.Rows = append(report.Rows, TrialBalanceRow{
				Code:     acc.Code,
				Category: acc.Category,
				IsHeader: true,
			})
			continue
		}
		row := netRow(l, ByAccount(acc.Code))
		row.Code = acc.Code
		row.Category = acc.Category
		report.Rows = append(report.Rows, row)
		report.TotalDebit = report.TotalDebit.Add(row.Debit)
		report.TotalCredit = report.TotalCredit.Add(row.Credit)
	}

	// Orphaned codes: the category label falls back, the amounts still count.
	orphan := netRow(l, func(t Transaction) bool { return !posted[t.Account] })
	if !orphan.Debit.IsZero() || !orphan.Credit.IsZero() {
		orphan.Category = UnknownCategory
		report.Rows = append(report.Rows, orphan)
		report.TotalDebit = report.TotalDebit.Add(orphan.Debit)
		report.TotalCredit = report.TotalCredit.Add(orphan.Credit)
	}

	return report
}

// netRow sums the debit and credit buckets over the matching transactions
// and nets them: the excess shows on one side only.
func netRow(l *Ledger, match func(Transaction) bool) TrialBalanceRow {
	var debits, credits Money
	for _, t := range l.Transactions(match) {
		if t.Type.IsInflow() {
			credits = credits.Add(t.Amount)
		} else {
			debits = debits.Add(t.Amount)
		}
	}

	var row TrialBalanceRow
	if debits.GreaterThan(credits) {
		row.Debit = debits.Sub(credits)
	} else {
		row.Credit = credits.Sub(debits)
	}
	return row
}

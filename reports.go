package bookkeeper

import "github.com/shopspring/decimal"

// This file holds the derived, disposable view objects produced by the
// aggregation engine. The engine only reads store snapshots; it never
// mutates them, and every view is recomputed on demand.

// CategorySpend is one group of the expense breakdown.
type CategorySpend struct {
	Group string
	Total Money
}

// BudgetRow is one account's budget-vs-actual position over a date range.
// Variance is positive when the account is under budget.
type BudgetRow struct {
	Code        string
	Category    string
	Monthly     Money
	Total       Money // Monthly × months in range
	Actual      Money
	Variance    Money // Total − Actual
	VariancePct decimal.Decimal
}

// TrialBalanceRow is one account's net debit or credit position. Headers
// pass through as zero-amount label rows. At most one of Debit and Credit
// is non-zero.
type TrialBalanceRow struct {
	Code     string
	Category string
	IsHeader bool
	Debit    Money
	Credit   Money
}

// TrialBalanceReport is the full trial balance. This is a single-entry
// model: the report does not force Σdebit == Σcredit. Unequal totals are
// not an error, they surface the overall net cash position.
type TrialBalanceReport struct {
	Rows        []TrialBalanceRow
	TotalDebit  Money
	TotalCredit Money
}

// ReconciliationReport is the bank reconciliation statement as of a date.
type ReconciliationReport struct {
	AsOf                Date
	LedgerBalance       Money
	UnpresentedCheques  []Transaction // unreconciled outflows up to AsOf
	OutstandingDeposits []Transaction // unreconciled inflows up to AsOf
	ChequesTotal        Money
	DepositsTotal       Money
	ProjectedBalance    Money // LedgerBalance + ChequesTotal − DepositsTotal
	StatementBalance    Money
	Difference          Money // ProjectedBalance − StatementBalance
	Balanced            bool  // Difference is exactly zero
}

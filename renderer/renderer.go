// Package renderer turns the engine's report views into markdown. The
// output is plain tables, suitable for a terminal renderer or a file.
package renderer

import (
	"fmt"
	"strings"

	"github.com/akuapem/bookkeeper"
)

// Ledger renders the running balance view: every transaction in
// chronological order with the balance after it.
func Ledger(l *bookkeeper.Ledger) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Ledger\n\n")
	fmt.Fprintln(&b, "| Date | Voucher | Description | Account | Type | Amount | Balance |")
	fmt.Fprintln(&b, "|:---|:---|:---|:---|:---|---:|---:|")
	for t, balance := range bookkeeper.RunningBalance(l) {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s |\n",
			t.Date, t.Voucher, t.Description, t.Account, t.Type,
			t.Signed().SignedString(), balance)
	}
	fmt.Fprintf(&b, "\nTotal balance: **%s**\n", bookkeeper.Balance(l))
	return b.String()
}

// Income renders the income statement: total balance and the expense
// breakdown per category group.
func Income(balance bookkeeper.Money, spend []bookkeeper.CategorySpend) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Income Statement\n\n")
	fmt.Fprintln(&b, "| Category | Spend |")
	fmt.Fprintln(&b, "|:---|---:|")
	for _, row := range spend {
		fmt.Fprintf(&b, "| %s | %s |\n", row.Group, row.Total)
	}
	fmt.Fprintf(&b, "\nNet position: **%s**\n", balance.SignedString())
	return b.String()
}

// BudgetVariance renders the budget-vs-actuals rows for a date range.
func BudgetVariance(rng bookkeeper.Range, rows []bookkeeper.BudgetRow) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Budget vs Actuals %s .. %s\n\n", rng.From, rng.To)
	fmt.Fprintln(&b, "| Code | Category | Budget | Actual | Variance | Variance % |")
	fmt.Fprintln(&b, "|:---|:---|---:|---:|---:|---:|")
	for _, row := range rows {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s%% |\n",
			row.Code, row.Category, row.Total, row.Actual,
			row.Variance.SignedString(), row.VariancePct.StringFixed(1))
	}
	return b.String()
}

// TrialBalance renders the trial balance. Header rows show as bold labels
// spanning the amount columns.
func TrialBalance(report bookkeeper.TrialBalanceReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Trial Balance\n\n")
	fmt.Fprintln(&b, "| Code | Category | Debit | Credit |")
	fmt.Fprintln(&b, "|:---|:---|---:|---:|")
	for _, row := range report.Rows {
		if row.IsHeader {
			fmt.Fprintf(&b, "| **%s** | **%s** | | |\n", row.Code, row.Category)
			continue
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
			row.Code, row.Category, amountOrBlank(row.Debit), amountOrBlank(row.Credit))
	}
	fmt.Fprintf(&b, "| | **Total** | **%s** | **%s** |\n", report.TotalDebit, report.TotalCredit)
	return b.String()
}

func amountOrBlank(m bookkeeper.Money) string {
	if m.IsZero() {
		return ""
	}
	return m.String()
}

// Reconciliation renders the bank reconciliation statement.
func Reconciliation(r bookkeeper.ReconciliationReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Bank Reconciliation as of %s\n\n", r.AsOf)
	fmt.Fprintln(&b, "| | Amount |")
	fmt.Fprintln(&b, "|:---|---:|")
	fmt.Fprintf(&b, "| Ledger balance | %s |\n", r.LedgerBalance)
	fmt.Fprintf(&b, "| Add: unpresented cheques (%d) | %s |\n", len(r.UnpresentedCheques), r.ChequesTotal)
	fmt.Fprintf(&b, "| Less: outstanding deposits (%d) | %s |\n", len(r.OutstandingDeposits), r.DepositsTotal)
	fmt.Fprintf(&b, "| Projected bank balance | %s |\n", r.ProjectedBalance)
	fmt.Fprintf(&b, "| Statement balance | %s |\n", r.StatementBalance)
	fmt.Fprintf(&b, "| Difference | %s |\n", r.Difference.SignedString())
	if r.Balanced {
		fmt.Fprintf(&b, "\nStatus: **balanced**\n")
	} else {
		fmt.Fprintf(&b, "\nStatus: **not balanced**\n")
	}

	if len(r.UnpresentedCheques) > 0 {
		fmt.Fprintf(&b, "\n## Unpresented cheques\n\n")
		transactionTable(&b, r.UnpresentedCheques)
	}
	if len(r.OutstandingDeposits) > 0 {
		fmt.Fprintf(&b, "\n## Outstanding deposits\n\n")
		transactionTable(&b, r.OutstandingDeposits)
	}
	return b.String()
}

// Candidates renders the possible ledger matches for one statement line.
func Candidates(line bookkeeper.BankLine, txs []bookkeeper.Transaction) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Candidates for %s %q %s\n\n", line.Date, line.Description, line.Amount.SignedString())
	if len(txs) == 0 {
		fmt.Fprintln(&b, "No unreconciled transaction matches this amount.")
		return b.String()
	}
	transactionTable(&b, txs)
	return b.String()
}

func transactionTable(b *strings.Builder, txs []bookkeeper.Transaction) {
	fmt.Fprintln(b, "| ID | Date | Description | Type | Status | Amount |")
	fmt.Fprintln(b, "|:---|:---|:---|:---|:---|---:|")
	for _, t := range txs {
		fmt.Fprintf(b, "| %s | %s | %s | %s | %s | %s |\n",
			t.ID, t.Date, t.Description, t.Type, t.Status, t.Amount)
	}
}

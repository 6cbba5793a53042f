package bookkeeper

// BankReconciliation builds the reconciliation statement as of a date.
//
// Transactions dated after asOf are out of scope. The ledger balance is the
// signed sum of the in-scope transactions. Unreconciled outflows are
// unpresented cheques, unreconciled inflows outstanding deposits; the
// projected bank balance adds the cheques back and removes the deposits,
// since the bank has not seen either yet. The statement is balanced when
// the difference against the supplied statement balance is exactly zero —
// amounts are exact decimals, no epsilon applies.
func BankReconciliation(l *Ledger, asOf Date, statementBalance Money) ReconciliationReport {
	report := ReconciliationReport{
		AsOf:             asOf,
		StatementBalance: statementBalance,
	}

	for _, t := range l.Transactions(UpTo(asOf)) {
		report.LedgerBalance = report.LedgerBalance.Add(t.Signed())
		if t.Status == Reconciled {
			continue
		}
		if t.Type.IsInflow() {
			report.OutstandingDeposits = append(report.OutstandingDeposits, t)
			report.DepositsTotal = report.DepositsTotal.Add(t.Amount)
		} else {
			report.UnpresentedCheques = append(report.UnpresentedCheques, t)
			report.ChequesTotal = report.ChequesTotal.Add(t.Amount)
		}
	}

	report.ProjectedBalance = report.LedgerBalance.Add(report.ChequesTotal).Sub(report.DepositsTotal)
	report.Difference = report.ProjectedBalance.Sub(statementBalance)
	report.Balanced = report.Difference.IsZero()
	return report
}

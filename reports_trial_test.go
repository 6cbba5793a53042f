package bookkeeper

import (
	"testing"
	"time"
)

func TestTrialBalance(t *testing.T) {
	accounts := NewAccounts()
	accounts.Add(Account{Code: "ASSETS", Category: "Assets", IsHeader: true})
	accounts.Add(Account{Code: "INC-01", Category: "Fees"})
	accounts.Add(Account{Code: "EXP-01", Category: "Travel"})
	accounts.Add(Account{Code: "PCA-01", Category: "Petty cash"})
	accounts.Add(Account{Code: "IDLE", Category: "Unused"})

	l := NewLedger()
	l.Add(tx("i1", NewDate(2025, time.January, 2), Income, 1000, "INC-01"))
	l.Add(tx("e1", NewDate(2025, time.January, 3), Expense, 300, "EXP-01"))
	// A petty-cash advance is a receivable: it lands on the debit side.
	l.Add(tx("p1", NewDate(2025, time.January, 4), PettyCash, 80, "PCA-01"))
	// Inflow and outflow on the same account net to a single side.
	l.Add(tx("i2", NewDate(2025, time.January, 5), Income, 50, "EXP-01"))

	report := TrialBalance(l, accounts)

	if len(report.Rows) != 5 {
		t.Fatalf("got %d rows, want 5: %v", len(report.Rows), report.Rows)
	}

	rows := make(map[string]TrialBalanceRow)
	for _, row := range report.Rows {
		rows[row.Code] = row
	}

	if header := rows["ASSETS"]; !header.IsHeader || !header.Debit.IsZero() || !header.Credit.IsZero() {
		t.Errorf("header row carries amounts: %+v", header)
	}
	if got := rows["INC-01"]; !got.Credit.Equal(M(1000, "GHS")) || !got.Debit.IsZero() {
		t.Errorf("INC-01 = debit %v credit %v, want credit 1000", got.Debit, got.Credit)
	}
	if got := rows["EXP-01"]; !got.Debit.Equal(M(250, "GHS")) || !got.Credit.IsZero() {
		t.Errorf("EXP-01 = debit %v credit %v, want netted debit 250", got.Debit, got.Credit)
	}
	if got := rows["PCA-01"]; !got.Debit.Equal(M(80, "GHS")) {
		t.Errorf("PCA-01 debit = %v, want 80", got.Debit)
	}
	if got := rows["IDLE"]; !got.Debit.IsZero() || !got.Credit.IsZero() {
		t.Errorf("IDLE must be a zero row, got %+v", got)
	}

	if !report.TotalDebit.Equal(M(330, "GHS")) {
		t.Errorf("TotalDebit = %v, want 330", report.TotalDebit)
	}
	if !report.TotalCredit.Equal(M(1050, "GHS")) {
		t.Errorf("TotalCredit = %v, want 1050", report.TotalCredit)
	}
	// Single-entry model: the gap between the sides is the net cash position.
	if gap := report.TotalCredit.Sub(report.TotalDebit); !gap.Equal(Balance(l)) {
		t.Errorf("credit - debit = %v, want Balance %v", gap, Balance(l))
	}
}

func TestTrialBalance_OrphanedCodes(t *testing.T) {
	accounts := NewAccounts()
	accounts.Add(Account{Code: "INC-01", Category: "Fees"})

	l := NewLedger()
	l.Add(tx("i1", NewDate(2025, time.January, 2), Income, 100, "INC-01"))
	l.Add(tx("x1", NewDate(2025, time.January, 3), Expense, 40, "DELETED-01"))
	l.Add(tx("x2", NewDate(2025, time.January, 4), Expense, 10, "DELETED-02"))

	report := TrialBalance(l, accounts)

	// The orphaned amounts trail in one fallback row and still count in the
	// totals.
	last := report.Rows[len(report.Rows)-1]
	if last.Category != UnknownCategory {
		t.Fatalf("last row category = %q, want %q", last.Category, UnknownCategory)
	}
	if !last.Debit.Equal(M(50, "GHS")) {
		t.Errorf("orphan debit = %v, want 50", last.Debit)
	}
	if !report.TotalDebit.Equal(M(50, "GHS")) {
		t.Errorf("TotalDebit = %v, want 50", report.TotalDebit)
	}
	if !report.TotalCredit.Equal(M(100, "GHS")) {
		t.Errorf("TotalCredit = %v, want 100", report.TotalCredit)
	}
}

func TestTrialBalance_NoOrphanRowWhenAllPosted(t *testing.T) {
	accounts := NewAccounts()
	accounts.Add(Account{Code: "INC-01", Category: "Fees"})
	l := NewLedger()
	l.Add(tx("i1", NewDate(2025, time.January, 2), Income, 100, "INC-01"))

	report := TrialBalance(l, accounts)
	if len(report.Rows) != 1 {
		t.Fatalf("got %d rows, want 1 (no empty fallback row)", len(report.Rows))
	}
}

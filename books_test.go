package bookkeeper

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestBooks_OpenEmptyDirectory(t *testing.T) {
	b, err := Open(filepath.Join(t.TempDir(), "does-not-exist-yet"), "")
	if err != nil {
		t.Fatalf("Open on a fresh directory returned an unexpected error: %v", err)
	}
	if b.Ledger.Len() != 0 || b.Accounts.Len() != 0 || b.Budget.Len() != 0 {
		t.Error("fresh books are not empty")
	}
	if b.Currency() != DefaultCurrency {
		t.Errorf("Currency() = %q, want the default %q", b.Currency(), DefaultCurrency)
	}
}

func TestBooks_MutationsPersist(t *testing.T) {
	dir := t.TempDir()
	b := NewBooks(dir, "GHS")

	tr := tx("t1", NewDate(2025, time.January, 5), Expense, 300, "EXP-01")
	if err := b.AddTransaction(tr); err != nil {
		t.Fatalf("AddTransaction returned an unexpected error: %v", err)
	}
	if err := b.AddAccount(Account{Code: "EXP-01", Category: "Travel"}); err != nil {
		t.Fatalf("AddAccount returned an unexpected error: %v", err)
	}
	if err := b.SetBudget([]BudgetLine{{Code: "EXP-01", Monthly: M(500, "GHS")}}); err != nil {
		t.Fatalf("SetBudget returned an unexpected error: %v", err)
	}

	// A second session sees everything.
	reopened, err := Open(dir, "GHS")
	if err != nil {
		t.Fatalf("Open returned an unexpected error: %v", err)
	}
	got, ok := reopened.Ledger.Get("t1")
	if !ok {
		t.Fatal("t1 did not survive the reopen")
	}
	if !got.Equal(tr) {
		t.Errorf("reopened t1 = %+v, want %+v", got, tr)
	}
	if reopened.Accounts.Category("EXP-01") != "Travel" {
		t.Error("account did not survive the reopen")
	}
	if !reopened.Budget.Monthly("EXP-01").Equal(M(500, "GHS")) {
		t.Error("budget did not survive the reopen")
	}
}

func TestBooks_ValidationRejectsBeforeMutation(t *testing.T) {
	dir := t.TempDir()
	b := NewBooks(dir, "GHS")

	testCases := []struct {
		name string
		tr   Transaction
	}{
		{"missing description", Transaction{ID: "x", Date: Today(), Amount: M(1, "GHS"), Type: Expense, Account: "A"}},
		{"negative amount", Transaction{ID: "x", Date: Today(), Description: "d", Amount: M(-1, "GHS"), Type: Expense, Account: "A"}},
		{"unknown type", Transaction{ID: "x", Date: Today(), Description: "d", Amount: M(1, "GHS"), Type: "NOPE", Account: "A"}},
		{"missing account", Transaction{ID: "x", Date: Today(), Description: "d", Amount: M(1, "GHS"), Type: Expense}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if err := b.AddTransaction(tc.tr); err == nil {
				t.Fatal("AddTransaction accepted an invalid transaction")
			}
			if b.Ledger.Len() != 0 {
				t.Error("a rejected transaction leaked into the store")
			}
			// Nothing was persisted either.
			if _, err := os.Stat(filepath.Join(dir, "transactions.jsonl")); !os.IsNotExist(err) {
				t.Error("a rejected transaction was persisted")
			}
		})
	}
}

func TestBooks_UpdateAndDeleteTransaction(t *testing.T) {
	dir := t.TempDir()
	b := NewBooks(dir, "GHS")
	b.AddTransaction(tx("t1", NewDate(2025, time.January, 5), Expense, 300, "EXP-01"))

	changed := tx("t1", NewDate(2025, time.January, 5), Expense, 310, "EXP-01")
	if err := b.UpdateTransaction(changed); err != nil {
		t.Fatalf("UpdateTransaction returned an unexpected error: %v", err)
	}
	if err := b.DeleteTransaction("never-existed"); err != nil {
		t.Fatalf("DeleteTransaction of an unknown id must be a no-op, got: %v", err)
	}

	reopened, err := Open(dir, "GHS")
	if err != nil {
		t.Fatalf("Open returned an unexpected error: %v", err)
	}
	got, _ := reopened.Ledger.Get("t1")
	if !got.Amount.Equal(M(310, "GHS")) {
		t.Errorf("reopened amount = %v, want the updated 310", got.Amount)
	}

	if err := b.DeleteTransaction("t1"); err != nil {
		t.Fatalf("DeleteTransaction returned an unexpected error: %v", err)
	}
	reopened, _ = Open(dir, "GHS")
	if reopened.Ledger.Len() != 0 {
		t.Error("t1 still persisted after DeleteTransaction")
	}
}

func TestBooks_Reconcile(t *testing.T) {
	b := NewBooks(t.TempDir(), "GHS")
	b.AddTransaction(tx("t1", NewDate(2025, time.January, 5), Expense, 300, "EXP-01"))

	if err := b.Reconcile("t1"); err != nil {
		t.Fatalf("Reconcile returned an unexpected error: %v", err)
	}
	got, _ := b.Ledger.Get("t1")
	if got.Status != Reconciled {
		t.Fatalf("status = %v, want RECONCILED", got.Status)
	}
	// The transition is one-way and re-reconciling is not an error.
	if err := b.Reconcile("t1"); err != nil {
		t.Errorf("second Reconcile returned an unexpected error: %v", err)
	}
	if err := b.Reconcile("ghost"); err == nil {
		t.Error("Reconcile of an unknown id must fail")
	}
}

func TestBooks_LoadIgnoresDamagedLines(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "transactions.jsonl")
	content := `{"id":"ok","date":"2025-01-05","description":"fine","amount":10,"type":"EXPENSE","account":"A","status":"PENDING"}
garbage garbage
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	b, err := Open(dir, "GHS")
	if err != nil {
		t.Fatalf("Open must survive a damaged data file, got: %v", err)
	}
	if b.Ledger.Len() != 1 {
		t.Errorf("Len() = %d, want the 1 readable transaction", b.Ledger.Len())
	}
}

package bookkeeper

import (
	"testing"
	"time"
)

func reconFixture(t *testing.T) *Books {
	t.Helper()
	b := NewBooks(t.TempDir(), "GHS")
	if err := b.AddTransaction(tx("t1", NewDate(2025, time.January, 5), Expense, 300, "EXP-01")); err != nil {
		t.Fatal(err)
	}
	if err := b.AddTransaction(tx("t2", NewDate(2025, time.January, 6), Expense, 300, "EXP-02")); err != nil {
		t.Fatal(err)
	}
	if err := b.AddTransaction(tx("t3", NewDate(2025, time.January, 7), Income, 120, "INC-01")); err != nil {
		t.Fatal(err)
	}
	return b
}

func TestSession_Candidates(t *testing.T) {
	b := reconFixture(t)
	// A withdrawal of 300 on the statement.
	line := BankLine{ID: "l1", Date: NewDate(2025, time.January, 8), Description: "CHQ 231", Amount: M(-300, "GHS")}
	s := NewSession(b, []BankLine{line})

	got := s.Candidates(line)
	if len(got) != 2 {
		t.Fatalf("Candidates returned %d transactions, want the two 300s: %v", len(got), got)
	}
	for _, c := range got {
		if !c.Amount.SameMagnitude(line.Amount) {
			t.Errorf("candidate %s amount %v does not match the line", c.ID, c.Amount)
		}
	}

	// Reconciled transactions stop being candidates.
	if err := b.Reconcile("t1"); err != nil {
		t.Fatal(err)
	}
	got = s.Candidates(line)
	if len(got) != 1 || got[0].ID != "t2" {
		t.Errorf("Candidates after reconciling t1 = %v, want [t2]", got)
	}
}

func TestSession_Match(t *testing.T) {
	b := reconFixture(t)
	lines := []BankLine{
		{ID: "l1", Date: NewDate(2025, time.January, 8), Description: "CHQ 231", Amount: M(-300, "GHS")},
		{ID: "l2", Date: NewDate(2025, time.January, 9), Description: "DEPOSIT", Amount: M(120, "GHS")},
	}
	s := NewSession(b, lines)

	if err := s.Match("l1", "t1"); err != nil {
		t.Fatalf("Match returned an unexpected error: %v", err)
	}

	// The ledger transaction moved to RECONCILED, the line left the set.
	got, _ := b.Ledger.Get("t1")
	if got.Status != Reconciled {
		t.Errorf("t1 status = %v, want RECONCILED", got.Status)
	}
	if remaining := s.Lines(); len(remaining) != 1 || remaining[0].ID != "l2" {
		t.Errorf("Lines() = %v, want [l2]", remaining)
	}

	// A consumed line cannot be matched again.
	if err := s.Match("l1", "t2"); err == nil {
		t.Error("Match of a consumed line must fail")
	}
	// Neither can an already reconciled transaction.
	if err := s.Match("l2", "t1"); err == nil {
		t.Error("Match against a reconciled transaction must fail")
	}
	// Or a magnitude mismatch.
	if err := s.Match("l2", "t2"); err == nil {
		t.Error("Match of a 120 line against a 300 transaction must fail")
	}
	// Or an unknown transaction.
	if err := s.Match("l2", "ghost"); err == nil {
		t.Error("Match against an unknown transaction must fail")
	}

	// The deposit line matches the income by magnitude.
	if err := s.Match("l2", "t3"); err != nil {
		t.Fatalf("Match returned an unexpected error: %v", err)
	}
	if remaining := s.Lines(); len(remaining) != 0 {
		t.Errorf("Lines() = %v, want an empty working set", remaining)
	}
}

func TestSession_Clear(t *testing.T) {
	b := reconFixture(t)
	s := NewSession(b, []BankLine{{ID: "l1", Amount: M(-300, "GHS")}})
	s.Clear()
	if len(s.Lines()) != 0 {
		t.Error("Clear left lines in the working set")
	}
	// Clearing never touches the ledger.
	if got, _ := b.Ledger.Get("t1"); got.Status != Pending {
		t.Errorf("t1 status = %v, want untouched PENDING", got.Status)
	}
}

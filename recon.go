package bookkeeper

import (
	"fmt"
	"slices"
)

// BankLine is one externally supplied bank-statement line. It is ephemeral:
// it exists only inside a reconciliation session and is never persisted.
// The amount is signed — positive for credits/deposits, negative for
// debits/withdrawals.
type BankLine struct {
	ID          string
	Date        Date
	Description string
	Amount      Money
}

// Session is a reconciliation working set: the statement lines still waiting
// for a match. Matching a line transitions the chosen ledger transaction to
// RECONCILED and consumes the line; only the ledger-side status change
// persists.
type Session struct {
	books *Books
	lines []BankLine
}

// NewSession opens a reconciliation session over the given statement lines.
func NewSession(books *Books, lines []BankLine) *Session {
	return &Session{books: books, lines: slices.Clone(lines)}
}

// Lines returns the remaining unmatched statement lines.
func (s *Session) Lines() []BankLine { return slices.Clone(s.lines) }

// Candidates returns the ledger transactions a statement line could settle:
// every unreconciled transaction whose magnitude equals the line's. Matching
// is a manual choice among these; nothing is committed here.
func (s *Session) Candidates(line BankLine) []Transaction {
	want := line.Amount.Abs()
	var out []Transaction
	for _, t := range s.books.Ledger.Transactions() {
		if t.Status != Reconciled && t.Amount.Abs().Equal(want) {
			out = append(out, t)
		}
	}
	return out
}

// Match settles a statement line against a ledger transaction: the
// transaction becomes RECONCILED (one-way) and the line leaves the working
// set. The transaction must be a candidate of the line.
func (s *Session) Match(lineID string, txID ID) error {
	i := slices.IndexFunc(s.lines, func(l BankLine) bool { return l.ID == lineID })
	if i < 0 {
		return fmt.Errorf("statement line %q not in the working set", lineID)
	}
	line := s.lines[i]

	tx, ok := s.books.Ledger.Get(txID)
	if !ok {
		return fmt.Errorf("transaction %s not found", txID)
	}
	if tx.Status == Reconciled {
		return fmt.Errorf("transaction %s is already reconciled", txID)
	}
	if !tx.Amount.Abs().Equal(line.Amount.Abs()) {
		return fmt.Errorf("transaction %s amount %s does not match line %q amount %s",
			txID, tx.Amount, lineID, line.Amount)
	}

	if err := s.books.Reconcile(txID); err != nil {
		return err
	}
	s.lines = slices.Delete(s.lines, i, i+1)
	return nil
}

// Clear discards the remaining working set.
func (s *Session) Clear() { s.lines = nil }

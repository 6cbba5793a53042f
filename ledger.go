package bookkeeper

import (
	"iter"
	"log"
	"slices"
	"sort"
)

// Ledger is the single source of truth for transactions.
//
// The collection keeps insertion order: Add prepends, so the natural order
// is most-recent-first for display. Reports that need chronology use
// SortedByDate, which is stable.
type Ledger struct {
	transactions []Transaction
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{transactions: make([]Transaction, 0)}
}

// Len returns the number of transactions in the ledger.
func (l *Ledger) Len() int { return len(l.transactions) }

// Add inserts a transaction at the head of the collection. A missing id is
// replaced with a fresh one and the id is normalized to its canonical form.
func (l *Ledger) Add(t Transaction) {
	if t.ID == "" {
		t.ID = NewID()
	}
	t.ID = NormalizeID(string(t.ID))
	if t.Status == "" {
		t.Status = Pending
	}
	l.transactions = append([]Transaction{t}, l.transactions...)
}

// Update replaces the transaction whose id matches t.ID. Non-matches are
// silently dropped: an update racing a delete is not an error.
func (l *Ledger) Update(t Transaction) {
	id := NormalizeID(string(t.ID))
	for i := range l.transactions {
		if l.transactions[i].ID == id {
			t.ID = id
			l.transactions[i] = t
			return
		}
	}
	log.Printf("update of unknown transaction %s dropped", id)
}

// Delete removes all transactions whose normalized id equals the normalized
// input. Deleting an unknown id is a no-op, so Delete is idempotent.
func (l *Ledger) Delete(id ID) {
	norm := NormalizeID(string(id))
	l.transactions = slices.DeleteFunc(l.transactions, func(t Transaction) bool {
		return NormalizeID(string(t.ID)) == norm
	})
}

// Get returns the transaction with the given id, or false if unknown.
func (l *Ledger) Get(id ID) (Transaction, bool) {
	norm := NormalizeID(string(id))
	for _, t := range l.transactions {
		if NormalizeID(string(t.ID)) == norm {
			return t, true
		}
	}
	return Transaction{}, false
}

// Overwrite replaces the entire collection. Used by bulk import.
func (l *Ledger) Overwrite(txs []Transaction) {
	l.transactions = slices.Clone(txs)
}

// Transactions returns an iterator that yields each transaction in its
// insertion order. With no filter every transaction is yielded; with
// filters, a transaction is yielded when any filter accepts it.
func (l *Ledger) Transactions(filters ...func(Transaction) bool) iter.Seq2[int, Transaction] {
	return func(yield func(int, Transaction) bool) {
		for i, tx := range l.transactions {
			accept := len(filters) == 0
			for _, filter := range filters {
				if filter(tx) {
					accept = true
					break
				}
			}
			if !accept {
				continue
			}
			if !yield(i, tx) {
				return
			}
		}
	}
}

// SortedByDate returns a copy of the transactions sorted ascending by date.
// The sort is stable: transactions on the same day keep their relative
// insertion order.
func (l *Ledger) SortedByDate() []Transaction {
	txs := slices.Clone(l.transactions)
	sort.SliceStable(txs, func(i, j int) bool {
		return txs[i].Date.Before(txs[j].Date)
	})
	return txs
}

// ByAccount returns a predicate that filters transactions by account code.
func ByAccount(code string) func(Transaction) bool {
	return func(t Transaction) bool { return t.Account == code }
}

// ByType returns a predicate that filters transactions by type.
func ByType(kind TxType) func(Transaction) bool {
	return func(t Transaction) bool { return t.Type == kind }
}

// ByStatus returns a predicate that filters transactions by status.
func ByStatus(s Status) func(Transaction) bool {
	return func(t Transaction) bool { return t.Status == s }
}

// UpTo returns a predicate that keeps transactions dated on or before the
// given day.
func UpTo(day Date) func(Transaction) bool {
	return func(t Transaction) bool { return !t.Date.After(day) }
}

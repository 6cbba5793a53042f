package bookkeeper

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// File names of the three independently persisted stores inside the books
// directory.
const (
	transactionsFile = "transactions.jsonl"
	accountsFile     = "accounts.jsonl"
	budgetFile       = "budget.jsonl"
)

// Books is the top-level application state: the three stores plus the
// directory they persist to. All mutation goes through its named operations,
// and every mutation rewrites the owning store's file synchronously, so a
// reader never observes a partial write.
//
// Books assumes a single logical session. Two processes sharing the same
// directory race last-writer-wins.
type Books struct {
	dir      string
	currency string

	Ledger   *Ledger
	Accounts *Accounts
	Budget   *Budget
}

// NewBooks creates an empty in-memory Books bound to a directory. Nothing is
// written until the first mutation.
func NewBooks(dir, currency string) *Books {
	if currency == "" {
		currency = DefaultCurrency
	}
	return &Books{
		dir:      dir,
		currency: currency,
		Ledger:   NewLedger(),
		Accounts: NewAccounts(),
		Budget:   NewBudget(),
	}
}

// Currency returns the display currency of these books.
func (b *Books) Currency() string { return b.currency }

// Open loads the books from a directory. Missing files load as empty stores:
// a fresh directory is valid books.
func Open(dir, currency string) (*Books, error) {
	b := NewBooks(dir, currency)

	if err := loadFile(filepath.Join(dir, transactionsFile), func(f *os.File) error {
		txs, err := DecodeTransactions(f, b.currency)
		if err != nil {
			return err
		}
		b.Ledger.Overwrite(txs)
		return nil
	}); err != nil {
		return nil, err
	}

	if err := loadFile(filepath.Join(dir, accountsFile), func(f *os.File) error {
		accounts, err := DecodeAccounts(f)
		if err != nil {
			return err
		}
		b.Accounts = accounts
		return nil
	}); err != nil {
		return nil, err
	}

	if err := loadFile(filepath.Join(dir, budgetFile), func(f *os.File) error {
		budget, err := DecodeBudget(f, b.currency)
		if err != nil {
			return err
		}
		b.Budget = budget
		return nil
	}); err != nil {
		return nil, err
	}

	return b, nil
}

func loadFile(path string, decode func(*os.File) error) error {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("could not open %q: %w", path, err)
	}
	defer f.Close()
	if err := decode(f); err != nil {
		return fmt.Errorf("could not decode %q: %w", path, err)
	}
	return nil
}

// saveFile writes one store file in full. The write goes through a temp file
// plus rename so a crash mid-write cannot leave a truncated store behind.
func (b *Books) saveFile(name string, encode func(*os.File) error) error {
	if err := os.MkdirAll(b.dir, 0755); err != nil {
		return fmt.Errorf("could not create books directory %q: %w", b.dir, err)
	}
	path := filepath.Join(b.dir, name)
	tmp, err := os.CreateTemp(b.dir, name+".*")
	if err != nil {
		return fmt.Errorf("could not create temp file for %q: %w", path, err)
	}
	defer os.Remove(tmp.Name())

	if err := encode(tmp); err != nil {
		tmp.Close()
		return fmt.Errorf("could not write %q: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("could not close %q: %w", tmp.Name(), err)
	}
	return os.Rename(tmp.Name(), path)
}

func (b *Books) saveLedger() error {
	return b.saveFile(transactionsFile, func(f *os.File) error {
		return EncodeTransactions(f, collect(b.Ledger))
	})
}

func collect(l *Ledger) []Transaction {
	txs := make([]Transaction, 0, l.Len())
	for _, t := range l.Transactions() {
		txs = append(txs, t)
	}
	return txs
}

func (b *Books) saveAccounts() error {
	return b.saveFile(accountsFile, func(f *os.File) error {
		return EncodeAccounts(f, b.Accounts)
	})
}

func (b *Books) saveBudget() error {
	return b.saveFile(budgetFile, func(f *os.File) error {
		return EncodeBudget(f, b.Budget)
	})
}

// AddTransaction validates and records a transaction, then persists the
// ledger. The store is never mutated on a rejected input.
func (b *Books) AddTransaction(t Transaction) error {
	if err := b.validate(t); err != nil {
		return err
	}
	b.Ledger.Add(t)
	return b.saveLedger()
}

// UpdateTransaction replaces the transaction with the same id and persists
// the ledger. An unknown id is a soft no-op.
func (b *Books) UpdateTransaction(t Transaction) error {
	if err := b.validate(t); err != nil {
		return err
	}
	b.Ledger.Update(t)
	return b.saveLedger()
}

// DeleteTransaction removes a transaction by id and persists the ledger.
// Deleting an unknown id is a no-op, not an error.
func (b *Books) DeleteTransaction(id ID) error {
	b.Ledger.Delete(id)
	return b.saveLedger()
}

// ImportTransactions replaces the whole collection (bulk import) and
// persists the ledger.
func (b *Books) ImportTransactions(txs []Transaction) error {
	b.Ledger.Overwrite(txs)
	return b.saveLedger()
}

// Reconcile marks a transaction RECONCILED. The transition is one-way: a
// transaction already reconciled stays reconciled.
func (b *Books) Reconcile(id ID) error {
	t, ok := b.Ledger.Get(id)
	if !ok {
		return fmt.Errorf("transaction %s not found", id)
	}
	if t.Status == Reconciled {
		return nil
	}
	t.Status = Reconciled
	b.Ledger.Update(t)
	return b.saveLedger()
}

func (b *Books) validate(t Transaction) error {
	if t.Description == "" {
		return fmt.Errorf("description is required")
	}
	if t.Amount.IsNegative() {
		return fmt.Errorf("amount must not be negative, got %s", t.Amount)
	}
	if _, err := ParseTxType(string(t.Type)); err != nil {
		return err
	}
	if t.Account == "" {
		return fmt.Errorf("account code is required")
	}
	return nil
}

// AddAccount adds a chart-of-accounts entry and persists the chart.
// Duplicate codes are rejected before any mutation.
func (b *Books) AddAccount(acc Account) error {
	if err := b.Accounts.Add(acc); err != nil {
		return err
	}
	return b.saveAccounts()
}

// UpdateAccount replaces the entry matching acc.Code and persists the chart.
func (b *Books) UpdateAccount(acc Account) error {
	b.Accounts.Update(acc)
	return b.saveAccounts()
}

// DeleteAccount removes an entry by code and persists the chart. There is
// no cascade to transactions referencing the code.
func (b *Books) DeleteAccount(code string) error {
	b.Accounts.Delete(code)
	return b.saveAccounts()
}

// SetBudget replaces the budget wholesale and persists it. Last upload wins.
func (b *Books) SetBudget(lines []BudgetLine) error {
	b.Budget.Set(lines)
	return b.saveBudget()
}

package bookkeeper

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// UnknownCategory is the fallback display label for account codes that are
// not (or no longer) in the chart of accounts. The transaction amounts still
// count in every type-based aggregation; only the label falls back.
const UnknownCategory = "Unknown"

// Account is one chart-of-accounts entry. Header entries are non-postable
// group titles: they are kept for report layout and excluded from all
// monetary aggregation.
type Account struct {
	Code     string
	Category string
	IsHeader bool
}

// Accounts is the chart of accounts: an ordered list of entries indexed by
// code.
type Accounts struct {
	list  []Account
	index map[string]int
}

// NewAccounts creates an empty chart of accounts.
func NewAccounts() *Accounts {
	return &Accounts{index: make(map[string]int)}
}

// Len returns the number of entries.
func (a *Accounts) Len() int { return len(a.list) }

// Add appends a new entry. A duplicate code is rejected before any mutation.
func (a *Accounts) Add(acc Account) error {
	acc.Code = strings.TrimSpace(acc.Code)
	if acc.Code == "" {
		return fmt.Errorf("account code is required")
	}
	if _, ok := a.index[acc.Code]; ok {
		return fmt.Errorf("account code %q already exists", acc.Code)
	}
	a.index[acc.Code] = len(a.list)
	a.list = append(a.list, acc)
	return nil
}

// Update replaces the entry matching acc.Code. Unknown codes are a soft
// no-op.
func (a *Accounts) Update(acc Account) {
	if i, ok := a.index[strings.TrimSpace(acc.Code)]; ok {
		a.list[i] = acc
	}
}

// Delete removes the entry by code. There is no cascade: transactions
// referencing the code keep it and render with the fallback label.
func (a *Accounts) Delete(code string) {
	i, ok := a.index[code]
	if !ok {
		return
	}
	a.list = slices.Delete(a.list, i, i+1)
	delete(a.index, code)
	for j := i; j < len(a.list); j++ {
		a.index[a.list[j].Code] = j
	}
}

// Get returns the entry for a code, or false if unknown.
func (a *Accounts) Get(code string) (Account, bool) {
	if i, ok := a.index[code]; ok {
		return a.list[i], true
	}
	return Account{}, false
}

// Category returns the display category of a code, falling back to
// UnknownCategory for orphaned codes.
func (a *Accounts) Category(code string) string {
	if acc, ok := a.Get(code); ok {
		return acc.Category
	}
	return UnknownCategory
}

// Overwrite replaces the whole chart. Used by bulk load.
func (a *Accounts) Overwrite(list []Account) {
	a.list = slices.Clone(list)
	a.index = make(map[string]int, len(list))
	for i, acc := range a.list {
		a.index[acc.Code] = i
	}
}

// All iterates the entries in their declared order, which is the report
// layout order.
func (a *Accounts) All() iter.Seq[Account] {
	return func(yield func(Account) bool) {
		for _, acc := range a.list {
			if !yield(acc) {
				return
			}
		}
	}
}

// CategoryGroup returns the grouping key for an account code: its leading
// whitespace token, or "Misc" when the code is empty.
func CategoryGroup(code string) string {
	fields := strings.Fields(code)
	if len(fields) == 0 {
		return "Misc"
	}
	return fields[0]
}

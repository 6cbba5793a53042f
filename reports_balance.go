package bookkeeper

import (
	"iter"
	"sort"
)

// Balance computes the total balance across the whole ledger: inflow types
// add, everything else subtracts. No date filtering.
func Balance(l *Ledger) Money {
	var balance Money
	for _, t := range l.Transactions() {
		balance = balance.Add(t.Signed())
	}
	return balance
}

// RunningBalance yields every transaction in chronological order together
// with the balance after it. The scan is a single pass over a stable
// date-sorted copy, so transactions on the same day keep their relative
// insertion order. The final value yielded equals Balance.
func RunningBalance(l *Ledger) iter.Seq2[Transaction, Money] {
	return func(yield func(Transaction, Money) bool) {
		var balance Money
		for _, t := range l.SortedByDate() {
			balance = balance.Add(t.Signed())
			if !yield(t, balance) {
				return
			}
		}
	}
}

// ExpenseByCategory sums spend per category group. The strict policy
// applies: only EXPENSE transactions count. The group key is the leading
// token of the account code, "Misc" when the code is empty. Groups are
// returned largest first.
func ExpenseByCategory(l *Ledger) []CategorySpend {
	totals := make(map[string]Money)
	var order []string
	for _, t := range l.Transactions() {
		if !t.Type.IsSpend() {
			continue
		}
		group := CategoryGroup(t.Account)
		if _, ok := totals[group]; !ok {
			order = append(order, group)
		}
		totals[group] = totals[group].Add(t.Amount)
	}

	rows := make([]CategorySpend, 0, len(order))
	for _, group := range order {
		rows = append(rows, CategorySpend{Group: group, Total: totals[group]})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Total.GreaterThan(rows[j].Total)
	})
	return rows
}

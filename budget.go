package bookkeeper

import (
	"iter"
	"slices"
	"strings"
)

// BudgetLine is a monthly budget amount for one account code.
type BudgetLine struct {
	Code    string
	Monthly Money
}

// Budget maps account codes to monthly budget amounts. It is replaced
// wholesale by CSV upload: the last upload wins.
type Budget struct {
	lines []BudgetLine
	index map[string]int
}

// NewBudget creates an empty budget.
func NewBudget() *Budget {
	return &Budget{index: make(map[string]int)}
}

// Len returns the number of budget lines.
func (b *Budget) Len() int { return len(b.lines) }

// Set replaces the whole budget line set.
func (b *Budget) Set(lines []BudgetLine) {
	b.lines = slices.Clone(lines)
	b.index = make(map[string]int, len(lines))
	for i, line := range b.lines {
		b.index[strings.TrimSpace(line.Code)] = i
	}
}

// Monthly returns the monthly budget for a code. Codes without a budget
// line budget at zero.
func (b *Budget) Monthly(code string) Money {
	if i, ok := b.index[code]; ok {
		return b.lines[i].Monthly
	}
	return Money{}
}

// Lines iterates the budget lines in upload order.
func (b *Budget) Lines() iter.Seq[BudgetLine] {
	return func(yield func(BudgetLine) bool) {
		for _, line := range b.lines {
			if !yield(line) {
				return
			}
		}
	}
}

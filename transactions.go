package bookkeeper

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// TxType is a typed string identifying the kind of a transaction.
// Every aggregation rule in the engine branches on it.
type TxType string

// Transaction kinds.
const (
	Income      TxType = "INCOME"  // inflow
	Expense     TxType = "EXPENSE" // outflow
	Advance     TxType = "ADV"     // staff advance, outflow
	Transfer    TxType = "TRF"     // internal transfer, outflow
	Contrib     TxType = "CONT"    // contribution, inflow
	Opening     TxType = "OPENING" // opening balance, inflow
	NonBillable TxType = "NB"      // non-billable, outflow/liability
	WHTax       TxType = "WHT"     // withholding tax, outflow/liability
	IncomeTax   TxType = "ITAX"    // income tax, outflow/liability
	SocialSec   TxType = "SSEC"    // social security, outflow/liability
	PettyCash   TxType = "PCA"     // petty-cash advance, outflow/receivable
)

// inflows is the single classification table for the direction of a
// transaction. Everything not listed here is an outflow; in particular a
// petty-cash advance is cash going out (a receivable, hence a debit).
var inflows = map[TxType]bool{
	Income:  true,
	Contrib: true,
	Opening: true,
}

// IsInflow reports whether t adds to the cash balance.
func (t TxType) IsInflow() bool { return inflows[t] }

// IsOutflow reports whether t subtracts from the cash balance.
func (t TxType) IsOutflow() bool { return !inflows[t] }

// IsSpend reports whether t counts as spend for the category breakdown and
// the budget-vs-actuals report. The strict policy: only EXPENSE counts;
// advances and transfers are cash movements, not spend.
func (t TxType) IsSpend() bool { return t == Expense }

// knownTypes is the closed set accepted by ParseTxType.
var knownTypes = []TxType{
	Income, Expense, Advance, Transfer, Contrib, Opening,
	NonBillable, WHTax, IncomeTax, SocialSec, PettyCash,
}

// ParseTxType parses a string into a TxType.
func ParseTxType(s string) (TxType, error) {
	t := TxType(strings.ToUpper(strings.TrimSpace(s)))
	for _, k := range knownTypes {
		if t == k {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown transaction type: %q", s)
}

// Status is the reconciliation state of a transaction.
type Status string

// Transaction lifecycle states. A transaction is created PENDING or CLEARED
// and moves to RECONCILED only through an explicit match; it never moves
// away from RECONCILED.
const (
	Pending    Status = "PENDING"
	Cleared    Status = "CLEARED"
	Reconciled Status = "RECONCILED"
)

// ParseStatus parses a string into a Status.
func ParseStatus(s string) (Status, error) {
	switch st := Status(strings.ToUpper(strings.TrimSpace(s))); st {
	case Pending, Cleared, Reconciled:
		return st, nil
	default:
		return "", fmt.Errorf("unknown transaction status: %q", s)
	}
}

// ID is the opaque unique identifier of a transaction. It is assigned at
// creation, stable for the transaction's lifetime, and never reused.
type ID string

// NewID returns a fresh unique id.
func NewID() ID { return ID(uuid.NewString()) }

// NormalizeID returns the canonical form of an id. All comparisons inside
// the stores go through it, so superficially different encodings of the
// same id (numeric vs string) still compare equal.
func NormalizeID(s string) ID { return ID(strings.TrimSpace(s)) }

// Transaction is a single financial event.
//
// Amount is a non-negative magnitude; the direction is derived from Type,
// never stored as a sign.
type Transaction struct {
	ID          ID
	Date        Date
	Voucher     string
	Cheque      string
	Activity    string
	Description string
	Party       string // payee or payer
	Amount      Money
	Type        TxType
	Account     string // chart of accounts code; unknown codes are tolerated
	Status      Status
}

// NewTransaction builds a transaction with a fresh id. A zero date defaults
// to today and an empty status to PENDING.
func NewTransaction(day Date, t TxType, amount Money, account, description string) Transaction {
	if day.IsZero() {
		day = Today()
	}
	return Transaction{
		ID:          NewID(),
		Date:        day,
		Description: description,
		Amount:      amount,
		Type:        t,
		Account:     account,
		Status:      Pending,
	}
}

// Signed returns the amount with the direction applied: positive for
// inflows, negative for everything else.
func (t Transaction) Signed() Money {
	if t.Type.IsInflow() {
		return t.Amount
	}
	return t.Amount.Neg()
}

// Equal reports whether two transactions carry the same data.
func (t Transaction) Equal(o Transaction) bool {
	return t.ID == o.ID &&
		t.Date == o.Date &&
		t.Voucher == o.Voucher &&
		t.Cheque == o.Cheque &&
		t.Activity == o.Activity &&
		t.Description == o.Description &&
		t.Party == o.Party &&
		t.Amount.Equal(o.Amount) &&
		t.Type == o.Type &&
		t.Account == o.Account &&
		t.Status == o.Status
}

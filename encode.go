package bookkeeper

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// This file contains the persistence codecs. Each store is persisted as its
// own JSONL stream, one record per line, so the files stay human readable
// and diffable. Decoding is defensive: a malformed line is logged and
// skipped, numeric ids are coerced to strings, a missing id gets a fresh
// one, and duplicate ids resolve last-write-wins. A damaged data file never
// halts the application.

// jtx is the persisted form of a Transaction. The id is kept raw so that a
// bare number is accepted as well as a string.
type jtx struct {
	ID          json.RawMessage `json:"id"`
	Date        Date            `json:"date"`
	Voucher     string          `json:"voucher"`
	Cheque      string          `json:"cheque"`
	Activity    string          `json:"activity"`
	Description string          `json:"description"`
	Party       string          `json:"party"`
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"type"`
	Account     string          `json:"account"`
	Status      string          `json:"status"`
}

// coerceID turns a raw JSON id value into its canonical string form. Numbers
// lose their quotes-less encoding here once and for all; internal code never
// re-coerces.
func coerceID(raw json.RawMessage) ID {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return NormalizeID(s)
	}
	// not a string: keep the literal digits.
	return NormalizeID(string(raw))
}

// EncodeTransaction writes a single transaction as one JSONL line with a
// stable field order.
func EncodeTransaction(w io.Writer, t Transaction) error {
	var ow jsonObjectWriter
	ow.Append("id", string(t.ID))
	ow.Append("date", t.Date)
	ow.Optional("voucher", t.Voucher)
	ow.Optional("cheque", t.Cheque)
	ow.Optional("activity", t.Activity)
	ow.Optional("description", t.Description)
	ow.Optional("party", t.Party)
	ow.Append("amount", t.Amount.rounded())
	ow.Append("type", t.Type)
	ow.Append("account", t.Account)
	ow.Append("status", t.Status)
	data, err := ow.MarshalJSON()
	if err != nil {
		return fmt.Errorf("cannot marshal transaction %s: %w", t.ID, err)
	}
	_, err = w.Write(append(data, '\n'))
	return err
}

// EncodeTransactions writes the whole collection in insertion order.
func EncodeTransactions(w io.Writer, txs []Transaction) error {
	for _, t := range txs {
		if err := EncodeTransaction(w, t); err != nil {
			return err
		}
	}
	return nil
}

// DecodeTransactions reads a JSONL stream of transactions. Amounts are bound
// to the given display currency. Malformed lines are skipped with a log
// line; duplicate ids resolve last-write-wins.
func DecodeTransactions(r io.Reader, currency string) ([]Transaction, error) {
	var txs []Transaction
	byID := make(map[ID]int)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var jt jtx
		if err := json.Unmarshal(line, &jt); err != nil {
			log.Printf("skipping unreadable transaction line %q: %v", string(line), err)
			continue
		}

		id := coerceID(jt.ID)
		if id == "" {
			id = NewID()
		}
		kind, err := ParseTxType(jt.Type)
		if err != nil {
			log.Printf("skipping transaction %s: %v", id, err)
			continue
		}
		status, err := ParseStatus(jt.Status)
		if err != nil {
			status = Pending
		}

		t := Transaction{
			ID:          id,
			Date:        jt.Date,
			Voucher:     jt.Voucher,
			Cheque:      jt.Cheque,
			Activity:    jt.Activity,
			Description: jt.Description,
			Party:       jt.Party,
			Amount:      M(jt.Amount.Abs(), currency),
			Type:        kind,
			Account:     jt.Account,
			Status:      status,
		}

		if i, seen := byID[id]; seen {
			txs[i] = t // last write wins
			continue
		}
		byID[id] = len(txs)
		txs = append(txs, t)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read transactions: %w", err)
	}
	return txs, nil
}

// jaccount is the persisted form of an Account.
type jaccount struct {
	Code     string `json:"code"`
	Category string `json:"category"`
	Header   bool   `json:"header"`
}

// EncodeAccounts writes the chart of accounts in layout order.
func EncodeAccounts(w io.Writer, accounts *Accounts) error {
	for acc := range accounts.All() {
		var ow jsonObjectWriter
		ow.Append("code", acc.Code)
		ow.Append("category", acc.Category)
		ow.Optional("header", acc.IsHeader)
		data, err := ow.MarshalJSON()
		if err != nil {
			return fmt.Errorf("cannot marshal account %q: %w", acc.Code, err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return err
		}
	}
	return nil
}

// DecodeAccounts reads a JSONL stream of chart-of-accounts entries.
// Duplicate codes resolve last-write-wins; entries without a code are
// skipped.
func DecodeAccounts(r io.Reader) (*Accounts, error) {
	var list []Account
	byCode := make(map[string]int)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var ja jaccount
		if err := json.Unmarshal(line, &ja); err != nil {
			log.Printf("skipping unreadable account line %q: %v", string(line), err)
			continue
		}
		if ja.Code == "" {
			log.Printf("skipping account line without code: %q", string(line))
			continue
		}
		acc := Account{Code: ja.Code, Category: ja.Category, IsHeader: ja.Header}
		if i, seen := byCode[acc.Code]; seen {
			list[i] = acc
			continue
		}
		byCode[acc.Code] = len(list)
		list = append(list, acc)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read accounts: %w", err)
	}

	accounts := NewAccounts()
	accounts.Overwrite(list)
	return accounts, nil
}

// jbudget is the persisted form of a BudgetLine.
type jbudget struct {
	Code    string          `json:"code"`
	Monthly decimal.Decimal `json:"monthly"`
}

// EncodeBudget writes the budget lines in upload order.
func EncodeBudget(w io.Writer, budget *Budget) error {
	for line := range budget.Lines() {
		var ow jsonObjectWriter
		ow.Append("code", line.Code)
		ow.Append("monthly", line.Monthly.rounded())
		data, err := ow.MarshalJSON()
		if err != nil {
			return fmt.Errorf("cannot marshal budget line %q: %w", line.Code, err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return err
		}
	}
	return nil
}

// DecodeBudget reads a JSONL stream of budget lines. Amounts are bound to
// the given display currency.
func DecodeBudget(r io.Reader, currency string) (*Budget, error) {
	var lines []BudgetLine
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var jb jbudget
		if err := json.Unmarshal(line, &jb); err != nil {
			log.Printf("skipping unreadable budget line %q: %v", string(line), err)
			continue
		}
		if jb.Code == "" {
			continue
		}
		lines = append(lines, BudgetLine{Code: jb.Code, Monthly: M(jb.Monthly.Abs(), currency)})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read budget: %w", err)
	}
	budget := NewBudget()
	budget.Set(lines)
	return budget, nil
}

package bookkeeper

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"

	"github.com/shopspring/decimal"
)

// This file contains the CSV import/export formats. Imports are forgiving:
// a malformed line is logged and skipped, short rows are padded rather than
// rejected. Exports go through encoding/csv so embedded commas and quotes
// survive a round trip.

// budgetHeader is the header line of the budget CSV format.
var budgetHeader = []string{"code", "monthlyBudget"}

// ImportBudgetCSV reads budget lines in the `code,monthlyAmount` format.
// Lines missing either field, and lines whose amount does not parse (the
// header included), are skipped. The result replaces the budget wholesale.
func ImportBudgetCSV(r io.Reader, currency string) ([]BudgetLine, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var lines []BudgetLine
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("cannot read budget csv: %w", err)
		}
		if len(record) < 2 || record[0] == "" {
			log.Printf("skipping short budget csv line %v", record)
			continue
		}
		amount, err := decimal.NewFromString(record[1])
		if err != nil {
			log.Printf("skipping budget csv line %v: %v", record, err)
			continue
		}
		lines = append(lines, BudgetLine{Code: record[0], Monthly: M(amount, currency)})
	}
	return lines, nil
}

// ExportBudgetCSV writes the budget with a header line. Re-importing the
// output reproduces the original code → monthly mapping exactly.
func ExportBudgetCSV(w io.Writer, budget *Budget) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(budgetHeader); err != nil {
		return err
	}
	for line := range budget.Lines() {
		if err := cw.Write([]string{line.Code, line.Monthly.rounded().String()}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ledgerHeader is the header line of the ledger CSV format.
var ledgerHeader = []string{"date", "voucher", "activity", "accountCode", "description", "amount"}

// ImportLedgerCSV reads transactions in the positional 6-column format
// `date,voucher,activity,accountCode,description,amount`. Short rows are
// padded with empty placeholders rather than rejected. The sign of the
// amount selects the type — INCOME when non-negative, EXPENSE otherwise —
// and the magnitude is stored. Each row gets a fresh id and starts PENDING.
func ImportLedgerCSV(r io.Reader, currency string) ([]Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var txs []Transaction
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("cannot read ledger csv: %w", err)
		}
		for len(record) < len(ledgerHeader) {
			record = append(record, "")
		}

		day, err := ParseDate(record[0])
		if err != nil {
			// the header line lands here too.
			log.Printf("skipping ledger csv line %v: %v", record, err)
			continue
		}
		raw := record[5]
		if raw == "" {
			raw = "0"
		}
		amount, err := decimal.NewFromString(raw)
		if err != nil {
			log.Printf("skipping ledger csv line %v: %v", record, err)
			continue
		}

		kind := Income
		if amount.IsNegative() {
			kind = Expense
		}
		txs = append(txs, Transaction{
			ID:          NewID(),
			Date:        day,
			Voucher:     record[1],
			Activity:    record[2],
			Account:     record[3],
			Description: record[4],
			Amount:      M(amount.Abs(), currency),
			Type:        kind,
			Status:      Pending,
		})
	}
	return txs, nil
}

// ExportLedgerCSV writes the transactions with a header line, in insertion
// order, amounts signed by direction.
func ExportLedgerCSV(w io.Writer, l *Ledger) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(ledgerHeader); err != nil {
		return err
	}
	for _, t := range l.Transactions() {
		signed := t.Amount.rounded()
		if t.Type.IsOutflow() {
			signed = signed.Neg()
		}
		record := []string{
			t.Date.String(),
			t.Voucher,
			t.Activity,
			t.Account,
			t.Description,
			signed.String(),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

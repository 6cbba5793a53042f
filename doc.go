// Package bookkeeper provides the stores, aggregation engine and persistence
// for keeping the books of a small organization. It is designed to be
// local-first and single-session: everything lives in plain files in a books
// directory, and every report is recomputed from the transaction record.
//
// The core functionalities include:
//   - Ledger Management: Recording and maintaining the transaction record —
//     incomes, expenses, advances, transfers, contributions, opening balances
//     and the statutory outflows — each typed, dated and tied to a chart of
//     accounts code.
//   - Chart of Accounts and Budget: Account codes with display categories and
//     header groupings, and monthly budget amounts per code, uploaded
//     wholesale from CSV.
//   - Aggregation Engine: A stateless engine deriving balances, running
//     balances, expense breakdowns, budget-vs-actuals variance, the trial
//     balance and the bank reconciliation statement from store snapshots.
//   - Bank Reconciliation: An ephemeral matching session settling bank
//     statement lines against unreconciled ledger transactions.
//   - Data Persistence: Encoding and decoding the stores to and from
//     human-readable, version-controllable JSONL files, tolerating damaged
//     lines instead of refusing to load.
//
// This package serves as the foundational logic for the `obk` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package bookkeeper

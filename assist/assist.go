// Package assist talks to the external text-classification and
// document-parsing service. Every call degrades gracefully: when the client
// is unconfigured, the service unreachable, or the reply unusable, the
// callers get "no suggestion" or the naive fallback parse, never an error
// that aborts the operation.
package assist

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"google.golang.org/genai"

	"github.com/akuapem/bookkeeper"
)

// DefaultModel is the generation model used for both classification and
// statement parsing.
const DefaultModel = "gemini-2.0-flash"

// noMatch is the sentinel the model is instructed to answer when no account
// fits.
const noMatch = "NONE"

// Classifier wraps the generative service. A nil client is a valid,
// permanently degraded classifier.
type Classifier struct {
	client *genai.Client
	model  string
}

// New creates a Classifier. client may be nil when the service is
// unconfigured.
func New(client *genai.Client) *Classifier {
	return &Classifier{client: client, model: DefaultModel}
}

// ask sends a single prompt and returns the text of the first candidate.
func (c *Classifier) ask(ctx context.Context, prompt string) (string, error) {
	if c == nil || c.client == nil {
		return "", fmt.Errorf("classification service not configured")
	}
	contents := []*genai.Content{{Parts: []*genai.Part{{Text: prompt}}}}
	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, nil)
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response from model")
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}

// pick evaluates a jsonpath expression against the model's JSON reply.
// Models love to wrap JSON in markdown fences, so those are stripped first.
func pick(reply, path string) (any, error) {
	reply = strings.TrimSpace(reply)
	reply = strings.TrimPrefix(reply, "```json")
	reply = strings.TrimPrefix(reply, "```")
	reply = strings.TrimSuffix(reply, "```")

	var jobj any
	if err := json.Unmarshal([]byte(strings.TrimSpace(reply)), &jobj); err != nil {
		return nil, fmt.Errorf("reply is not JSON: %w", err)
	}
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("cannot evaluate %q: %w", path, err)
	}
	return jval, nil
}

// Suggest returns a best-guess account code for a free-text description,
// choosing among the given chart of accounts. It returns ("", false) when
// the service is unconfigured, fails, or answers the no-match sentinel.
func (c *Classifier) Suggest(ctx context.Context, description string, accounts []bookkeeper.Account) (string, bool) {
	var sb strings.Builder
	known := make(map[string]bool)
	for _, acc := range accounts {
		if acc.IsHeader {
			continue
		}
		known[acc.Code] = true
		fmt.Fprintf(&sb, "- %s: %s\n", acc.Code, acc.Category)
	}

	prompt := fmt.Sprintf(
		"You are a bookkeeper. Pick the single best account code for the "+
			"transaction description below, strictly from this chart of accounts:\n%s\n"+
			"Description: %q\n"+
			"Answer with JSON only: {\"code\": \"<code>\"}. Use {\"code\": %q} when nothing fits.",
		sb.String(), description, noMatch)

	reply, err := c.ask(ctx, prompt)
	if err != nil {
		log.Printf("no account suggestion: %v", err)
		return "", false
	}
	jval, err := pick(reply, "$.code")
	if err != nil {
		log.Printf("no account suggestion: %v", err)
		return "", false
	}
	code, ok := jval.(string)
	if !ok || code == noMatch || !known[code] {
		return "", false
	}
	return code, true
}

// ParseStatement extracts {date, description, amount} records from raw bank
// statement text. On any failure, or when the model finds nothing, it falls
// back to NaiveStatementSplit on the same text.
func (c *Classifier) ParseStatement(ctx context.Context, raw, currency string) []bookkeeper.BankLine {
	prompt := fmt.Sprintf(
		"Extract the transaction lines from this bank statement text. "+
			"Answer with JSON only: {\"lines\": [{\"date\": \"YYYY-MM-DD\", "+
			"\"description\": \"...\", \"amount\": -123.45}]}. Amounts are signed: "+
			"positive for deposits, negative for withdrawals.\n\nStatement:\n%s", raw)

	reply, err := c.ask(ctx, prompt)
	if err != nil {
		log.Printf("statement parsing degraded to naive split: %v", err)
		return NaiveStatementSplit(raw, currency)
	}
	lines, err := linesFromReply(reply, currency)
	if err != nil || len(lines) == 0 {
		log.Printf("statement parsing degraded to naive split: %v", err)
		return NaiveStatementSplit(raw, currency)
	}
	return lines
}

// linesFromReply converts the model's JSON reply into bank lines.
func linesFromReply(reply, currency string) ([]bookkeeper.BankLine, error) {
	jval, err := pick(reply, "$.lines")
	if err != nil {
		return nil, err
	}
	jlines, ok := jval.([]any)
	if !ok {
		return nil, fmt.Errorf("lines is not a list, got %T", jval)
	}

	var out []bookkeeper.BankLine
	for i, jline := range jlines {
		jobj, ok := jline.(map[string]any)
		if !ok {
			continue
		}
		dateStr, _ := jobj["date"].(string)
		day, err := bookkeeper.ParseDate(dateStr)
		if err != nil {
			continue
		}
		amount, ok := jobj["amount"].(float64)
		if !ok {
			continue
		}
		description, _ := jobj["description"].(string)
		out = append(out, bookkeeper.BankLine{
			ID:          fmt.Sprintf("stmt-%d", i+1),
			Date:        day,
			Description: description,
			Amount:      bookkeeper.M(amount, currency),
		})
	}
	return out, nil
}

// NaiveStatementSplit is the fallback parser: a fixed-column CSV split of
// the raw text, `date,description,amount` per line. Lines that do not fit
// are skipped.
func NaiveStatementSplit(raw, currency string) []bookkeeper.BankLine {
	var out []bookkeeper.BankLine
	for i, line := range strings.Split(raw, "\n") {
		cols := strings.SplitN(strings.TrimSpace(line), ",", 3)
		if len(cols) < 3 {
			continue
		}
		day, err := bookkeeper.ParseDate(cols[0])
		if err != nil {
			continue
		}
		amount, err := bookkeeper.ParseMoney(strings.TrimSpace(cols[2]), currency)
		if err != nil {
			continue
		}
		out = append(out, bookkeeper.BankLine{
			ID:          fmt.Sprintf("stmt-%d", i+1),
			Date:        day,
			Description: strings.TrimSpace(cols[1]),
			Amount:      amount,
		})
	}
	return out
}

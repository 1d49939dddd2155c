package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Amount accepts both JSON numbers and numeric strings such as "1,250.00".
type Amount float64

func (a *Amount) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		return nil
	}

	s := string(b)
	if unq, err := strconv.Unquote(s); err == nil {
		s = strings.ReplaceAll(strings.TrimSpace(unq), ",", "")
		if s == "" {
			return nil
		}
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid amount %s: %w", b, err)
	}

	*a = Amount(v)
	return nil
}

type Transaction struct {
	SubmissionID uuid.UUID `csv:"-"                 db:"submission_id" json:"-"`
	N            int       `csv:"n"                 db:"n"             json:"-"`
	Date         string    `csv:"date"              db:"date"          json:"date"`
	Description  string    `csv:"description"       db:"description"   json:"description"`
	Amount       Amount    `csv:"amount"            db:"amount"        json:"amount"`
	Type         string    `csv:"type"              db:"type"          json:"type"`
	Category     string    `csv:"category"          db:"category"      json:"category"`
	Balance      *Amount   `csv:"balance,omitempty" db:"balance"       json:"balance"`
}

func (t *Transaction) Validate() error {
	if t.Date == "" && t.Description == "" {
		return fmt.Errorf("date or description is required")
	}

	return nil
}

// ParseTransactions extracts the transaction rows of a single-document
// result. A result without a transactions array yields no rows.
func ParseTransactions(submissionID uuid.UUID, result json.RawMessage) ([]*Transaction, error) {
	var payload struct {
		Transactions []*Transaction `json:"transactions"`
	}

	if err := json.Unmarshal(result, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode transactions: %w", err)
	}

	for i, t := range payload.Transactions {
		if t == nil {
			return nil, fmt.Errorf("invalid transaction record #%d: empty record", i+1)
		}

		if err := t.Validate(); err != nil {
			return nil, fmt.Errorf("invalid transaction record #%d: %w", i+1, err)
		}

		t.SubmissionID = submissionID
		t.N = i + 1
	}

	return payload.Transactions, nil
}

// Package model defines the core domain models used throughout the application.
package model

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

// RecordType indicates whether a record books money in or out.
type RecordType string

const (
	// RecordTypeIncome marks money coming in.
	RecordTypeIncome RecordType = "income"
	// RecordTypeExpense marks money going out.
	RecordTypeExpense RecordType = "expense"
)

// ErrInvalidRecordType is returned for type strings other than income/expense.
var ErrInvalidRecordType = errors.New("invalid record type")

// ParseRecordType parses a record type string. Matching is trimmed and
// case-insensitive.
func ParseRecordType(s string) (RecordType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(RecordTypeIncome):
		return RecordTypeIncome, nil
	case string(RecordTypeExpense):
		return RecordTypeExpense, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidRecordType, s)
	}
}

// Valid reports whether t is one of the two known record types.
func (t RecordType) Valid() bool {
	return t == RecordTypeIncome || t == RecordTypeExpense
}

// Record is a single income or expense entry. Records are immutable once
// saved; the only mutation the system supports is explicit deletion.
type Record struct {
	ID        string          `json:"id"`
	Type      RecordType      `json:"type"`
	Category  string          `json:"category"`
	Amount    decimal.Decimal `json:"amount"`
	Date      Date            `json:"date"`
	Note      string          `json:"note,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
}

// NewRecordID returns a unique, creation-time-ordered record identifier.
func NewRecordID() string {
	return ulid.Make().String()
}

// Validate checks the shape invariants that every stored record must hold.
func (r Record) Validate() error {
	if r.ID == "" {
		return errors.New("record: missing id")
	}
	if !r.Type.Valid() {
		return fmt.Errorf("record %s: %w: %q", r.ID, ErrInvalidRecordType, r.Type)
	}
	if r.Category == "" {
		return fmt.Errorf("record %s: missing category", r.ID)
	}
	if !r.Amount.IsPositive() {
		return fmt.Errorf("record %s: amount must be positive", r.ID)
	}
	if r.Date.IsZero() {
		return fmt.Errorf("record %s: missing date", r.ID)
	}
	return nil
}

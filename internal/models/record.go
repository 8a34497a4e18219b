// Package models provides the data structures used throughout the application.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Record is a single budget entry: a transfer between two accounts.
type Record struct {
	Date        time.Time       `json:"date" yaml:"date"`
	FromAccount string          `json:"fromAccount" yaml:"fromAccount"`
	ToAccount   string          `json:"toAccount" yaml:"toAccount"`
	Amount      decimal.Decimal `json:"amount" yaml:"amount"`
	Tag         string          `json:"tag" yaml:"tag"`
	Details     string          `json:"details" yaml:"details"`
}

// DefaultRecord returns the record a new entry starts from: dated now, everything else empty.
func DefaultRecord(now time.Time) Record {
	return Record{
		Date:   now,
		Amount: decimal.Zero,
	}
}

// PartialRecord carries any subset of a Record's fields.
// A nil field is absent and falls back to the default on Merge.
type PartialRecord struct {
	Date        *time.Time       `json:"date,omitempty"`
	FromAccount *string          `json:"fromAccount,omitempty"`
	ToAccount   *string          `json:"toAccount,omitempty"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	Tag         *string          `json:"tag,omitempty"`
	Details     *string          `json:"details,omitempty"`
}

// Merge overlays the present fields of p on top of defaults.
func (p PartialRecord) Merge(defaults Record) Record {
	rec := defaults
	if p.Date != nil {
		rec.Date = *p.Date
	}
	if p.FromAccount != nil {
		rec.FromAccount = *p.FromAccount
	}
	if p.ToAccount != nil {
		rec.ToAccount = *p.ToAccount
	}
	if p.Amount != nil {
		rec.Amount = *p.Amount
	}
	if p.Tag != nil {
		rec.Tag = *p.Tag
	}
	if p.Details != nil {
		rec.Details = *p.Details
	}
	return rec
}

// IsEmpty reports whether no field is present.
func (p PartialRecord) IsEmpty() bool {
	return p.Date == nil && p.FromAccount == nil && p.ToAccount == nil &&
		p.Amount == nil && p.Tag == nil && p.Details == nil
}

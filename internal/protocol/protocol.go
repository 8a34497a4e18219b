// Package protocol reads a prefilled budget form from a link such as
//
//	budgetform://open?amount=10.23&details=something&fromAccount=cash&toAccount=expenses&tag=going%20out
//
// Any subset of the keys may be present. A bare query string is accepted too.
package protocol

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	"fjacquet/budget-form/internal/dateutils"
	"fjacquet/budget-form/internal/models"

	"github.com/shopspring/decimal"
)

// Scheme is the link scheme written by Link.
const Scheme = "budgetform"

// leadingNumber matches the numeric prefix of an amount such as "10.23abc".
var leadingNumber = regexp.MustCompile(`^[+-]?(\d+(\.\d+)?|\.\d+)([eE][+-]?\d+)?`)

// Parse reads the prefill values of raw, a link or a query string.
// Date parts without a zone are read in loc.
func Parse(raw string, loc *time.Location) (models.PartialRecord, error) {
	raw = strings.TrimSpace(raw)
	query := raw
	if strings.Contains(raw, "://") || strings.HasPrefix(raw, "?") {
		u, err := url.Parse(raw)
		if err != nil {
			return models.PartialRecord{}, fmt.Errorf("invalid link %q: %w", raw, err)
		}
		query = u.RawQuery
	}

	values, err := url.ParseQuery(query)
	if err != nil {
		return models.PartialRecord{}, fmt.Errorf("invalid query %q: %w", query, err)
	}
	return FromValues(values, loc), nil
}

// FromValues maps query values onto a partial record.
// Text fields are taken whenever their key is present, even empty.
// amount and date are taken only when they parse. An amount keeps its
// leading number and drops whatever follows, so "10.23abc" is 10.23.
func FromValues(values url.Values, loc *time.Location) models.PartialRecord {
	var p models.PartialRecord

	if v := leadingNumber.FindString(strings.TrimSpace(values.Get(models.FieldAmount))); v != "" {
		if amount, err := decimal.NewFromString(strings.TrimPrefix(v, "+")); err == nil {
			p.Amount = &amount
		}
	}
	if v := strings.TrimSpace(values.Get(models.FieldDate)); v != "" {
		if date, _, err := dateutils.ParseDate(v, loc); err == nil {
			p.Date = &date
		}
	}

	p.Details = lookup(values, models.FieldDetails)
	p.FromAccount = lookup(values, models.FieldFromAccount)
	p.ToAccount = lookup(values, models.FieldToAccount)
	p.Tag = lookup(values, models.FieldTag)
	return p
}

// Link writes p as a prefill link. Absent fields are left out.
func Link(p models.PartialRecord) string {
	values := url.Values{}
	if p.Date != nil {
		values.Set(models.FieldDate, dateutils.ToISOTimestamp(*p.Date))
	}
	if p.Amount != nil {
		values.Set(models.FieldAmount, p.Amount.String())
	}
	for key, v := range map[string]*string{
		models.FieldDetails:     p.Details,
		models.FieldFromAccount: p.FromAccount,
		models.FieldToAccount:   p.ToAccount,
		models.FieldTag:         p.Tag,
	} {
		if v != nil {
			values.Set(key, *v)
		}
	}
	return (&url.URL{Scheme: Scheme, Host: "open", RawQuery: values.Encode()}).String()
}

func lookup(values url.Values, key string) *string {
	if _, ok := values[key]; !ok {
		return nil
	}
	v := values.Get(key)
	return &v
}

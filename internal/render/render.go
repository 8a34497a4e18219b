// Package render substitutes {placeholder} tokens in entry path and content templates.
package render

import (
	"fmt"
	"strings"

	"fjacquet/budget-form/internal/dateutils"
	"fjacquet/budget-form/internal/models"
)

// Render replaces every {name} in tpl whose name is a key of fields.
// Tokens are matched anywhere in the text, stray braces included.
// Unknown tokens are kept verbatim and substituted values are never scanned again.
func Render(tpl string, fields map[string]string) string {
	if len(fields) == 0 {
		return tpl
	}
	pairs := make([]string, 0, 2*len(fields))
	for k, v := range fields {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(tpl)
}

// PathFields returns the placeholders available to path templates.
// Date parts are taken in the record's own location.
func PathFields(rec models.Record) map[string]string {
	return map[string]string{
		models.PlaceholderYear:    fmt.Sprintf("%04d", rec.Date.Year()),
		models.PlaceholderMonth:   fmt.Sprintf("%02d", int(rec.Date.Month())),
		models.PlaceholderDay:     fmt.Sprintf("%02d", rec.Date.Day()),
		models.PlaceholderDetails: strings.ToLower(strings.TrimSpace(rec.Details)),
	}
}

// ContentFields returns one placeholder per record field, each in its plain string form.
func ContentFields(rec models.Record) map[string]string {
	ts := dateutils.ToISOTimestamp(rec.Date)
	return map[string]string{
		models.FieldDate:        ts,
		models.FieldTimestamp:   ts,
		models.FieldFromAccount: rec.FromAccount,
		models.FieldToAccount:   rec.ToAccount,
		models.FieldAmount:      rec.Amount.String(),
		models.FieldTag:         rec.Tag,
		models.FieldDetails:     rec.Details,
	}
}

// Path renders a path template for rec, without extension or suffix.
func Path(tpl string, rec models.Record) string {
	return Render(tpl, PathFields(rec))
}

// Content renders a content template for rec.
func Content(tpl string, rec models.Record) string {
	return Render(tpl, ContentFields(rec))
}

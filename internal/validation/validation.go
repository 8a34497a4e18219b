// Package validation checks that a record is complete before it is written.
package validation

import (
	"fmt"
	"strings"

	"fjacquet/budget-form/internal/entryerror"
	"fjacquet/budget-form/internal/models"
)

const (
	// ReasonEmpty prefixes the list of fields left empty.
	ReasonEmpty = "Please write something in"
	// ReasonSameAccount is reported when both accounts are the same.
	ReasonSameAccount = "From and to account cannot be the same!"
)

// EmptyFields returns the names of the fields of rec that are empty or zero, in record order.
func EmptyFields(rec models.Record) []string {
	var empty []string
	if rec.Date.IsZero() {
		empty = append(empty, models.FieldDate)
	}
	if rec.FromAccount == "" {
		empty = append(empty, models.FieldFromAccount)
	}
	if rec.ToAccount == "" {
		empty = append(empty, models.FieldToAccount)
	}
	if rec.Amount.IsZero() {
		empty = append(empty, models.FieldAmount)
	}
	if rec.Tag == "" {
		empty = append(empty, models.FieldTag)
	}
	if rec.Details == "" {
		empty = append(empty, models.FieldDetails)
	}
	return empty
}

// Record returns a *entryerror.ValidationError when a field of rec is empty
// or when both accounts are the same.
func Record(rec models.Record) error {
	if empty := EmptyFields(rec); len(empty) > 0 {
		return &entryerror.ValidationError{Fields: empty, Reason: ReasonEmpty}
	}
	if rec.FromAccount == rec.ToAccount {
		return &entryerror.ValidationError{Reason: ReasonSameAccount}
	}
	return nil
}

// Settings checks that the settings an entry cannot be created without are set.
// The first missing one is returned as a *entryerror.ConfigurationError.
func Settings(settings models.Settings) error {
	required := []struct {
		name  string
		value string
	}{
		{"accounts_folder_path", settings.AccountsFolderPath},
		{"tags_folder_path", settings.TagsFolderPath},
		{"template_file_path", settings.TemplateFilePath},
		{"created_file_path_template", settings.CreatedFilePathTemplate},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return &entryerror.ConfigurationError{Setting: r.name}
		}
	}
	return nil
}

// IsValidOutputFormat checks if the given listing format is supported.
func IsValidOutputFormat(format string) error {
	switch format {
	case "table", "csv", "yaml", "json":
		return nil
	default:
		return fmt.Errorf("unsupported output format: %s. Supported formats are 'table', 'csv', 'yaml', 'json'", format)
	}
}

// Package common contains shared functionality for command handlers
package common

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"fjacquet/budget-form/internal/entry"
	"fjacquet/budget-form/internal/entryerror"
	"fjacquet/budget-form/internal/logging"
	"fjacquet/budget-form/internal/models"
	"fjacquet/budget-form/internal/validation"

	"github.com/gocarina/gocsv"
	"gopkg.in/yaml.v3"
)

// OptionRow is one account or tag choice as printed by the options command.
type OptionRow struct {
	Kind  string `csv:"kind" yaml:"kind" json:"kind"`
	Label string `csv:"label" yaml:"label" json:"label"`
	ID    string `csv:"id" yaml:"id" json:"id"`
}

// OptionRows flattens a dictionary into rows of the given kind.
func OptionRows(kind string, dict models.OptionDictionary) []OptionRow {
	rows := make([]OptionRow, 0, len(dict))
	for _, o := range dict {
		rows = append(rows, OptionRow{Kind: kind, Label: o.Label, ID: o.ID})
	}
	return rows
}

// WriteOptions prints rows in format: table, csv, yaml or json.
func WriteOptions(w io.Writer, format string, rows []OptionRow) error {
	if err := validation.IsValidOutputFormat(format); err != nil {
		return err
	}

	switch format {
	case "csv":
		csvWriter := csv.NewWriter(w)
		if err := gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
			return fmt.Errorf("error writing CSV data: %w", err)
		}
		return nil
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer func() { _ = enc.Close() }()
		return enc.Encode(rows)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	default:
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		_, _ = fmt.Fprintln(tw, "KIND\tLABEL\tID")
		for _, r := range rows {
			_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\n", r.Kind, r.Label, r.ID)
		}
		return tw.Flush()
	}
}

// Describe turns an entry error into the message shown to the user.
func Describe(err error) string {
	var (
		validationErr *entryerror.ValidationError
		exhaustedErr  *entryerror.WriteExhaustedError
		configErr     *entryerror.ConfigurationError
		templateErr   *entryerror.TemplateError
		sourceErr     *entryerror.OptionSourceError
	)

	switch {
	case errors.As(err, &validationErr):
		return validationErr.Error()
	case errors.As(err, &exhaustedErr):
		return fmt.Sprintf("Could not create file! Attempted %d times (%s)", exhaustedErr.Attempts, exhaustedErr.Path)
	case errors.As(err, &configErr):
		return fmt.Sprintf("Setting %s is empty, set it in the config file or with BUDGET_SETTINGS_%s", configErr.Setting, envName(configErr.Setting))
	case errors.As(err, &templateErr):
		return fmt.Sprintf("Could not read file template! (%s)", templateErr.Path)
	case errors.As(err, &sourceErr):
		return fmt.Sprintf("Could not find %s folder %q", sourceErr.Source, sourceErr.Path)
	default:
		return err.Error()
	}
}

func envName(setting string) string {
	return strings.ToUpper(setting)
}

// PrintCreated reports a created entry and, when one is configured and present,
// the summary document to open next.
func PrintCreated(ctx context.Context, w io.Writer, svc *entry.Service, settings models.Settings, doc models.Document, log logging.Logger) {
	_, _ = fmt.Fprintf(w, "Created %s\n", doc.Path)

	summary, ok, err := svc.Summary(ctx, settings)
	if err != nil {
		log.WithError(err).Warn("Could not look up summary file")
		return
	}
	if ok {
		_, _ = fmt.Fprintf(w, "Summary: %s\n", summary.Path)
	}
}

package entry

import (
	"context"

	"fjacquet/budget-form/internal/models"
)

// CheckResult is the outcome of checking one path setting against the store.
type CheckResult struct {
	Setting string           `json:"setting" yaml:"setting" csv:"setting"`
	Path    string           `json:"path" yaml:"path" csv:"path"`
	Want    models.EntryKind `json:"-" yaml:"-" csv:"-"`
	Found   models.EntryKind `json:"-" yaml:"-" csv:"-"`
	Valid   bool             `json:"valid" yaml:"valid" csv:"valid"`
	Err     error            `json:"-" yaml:"-" csv:"-"`
}

// Check verifies the path settings: the accounts and tags folders must be
// containers, the template and summary files must be documents.
// An unset summary is skipped.
func (s *Service) Check(ctx context.Context, settings models.Settings) []CheckResult {
	checks := []CheckResult{
		{Setting: "accounts_folder_path", Path: settings.AccountsFolderPath, Want: models.KindContainer},
		{Setting: "tags_folder_path", Path: settings.TagsFolderPath, Want: models.KindContainer},
		{Setting: "template_file_path", Path: settings.TemplateFilePath, Want: models.KindDocument},
	}
	if settings.SummaryFilePath != "" {
		checks = append(checks, CheckResult{Setting: "summary_file_path", Path: settings.SummaryFilePath, Want: models.KindDocument})
	}

	for i := range checks {
		c := &checks[i]
		if c.Path == "" {
			continue
		}
		c.Found, c.Err = s.store.Stat(ctx, c.Path)
		c.Valid = c.Err == nil && c.Found == c.Want
	}
	return checks
}

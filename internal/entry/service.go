// Package entry turns a partially filled budget form into a new document:
// it merges defaults, resolves account and tag labels, renders the templates
// and hands the result to the unique writer.
package entry

import (
	"context"
	"errors"
	"time"

	"fjacquet/budget-form/internal/entryerror"
	"fjacquet/budget-form/internal/logging"
	"fjacquet/budget-form/internal/models"
	"fjacquet/budget-form/internal/options"
	"fjacquet/budget-form/internal/render"
	"fjacquet/budget-form/internal/store"
	"fjacquet/budget-form/internal/validation"
	"fjacquet/budget-form/internal/writer"
)

// Option sources, as named in errors and logs.
const (
	SourceAccounts = "accounts"
	SourceTags     = "tags"
)

// Clock returns the current time. New records are dated with it.
type Clock func() time.Time

// Form is a record ready to be edited, with the choices offered for its accounts and tag.
type Form struct {
	Record   models.Record           `json:"record" yaml:"record"`
	Accounts models.OptionDictionary `json:"accounts" yaml:"accounts"`
	Tags     models.OptionDictionary `json:"tags" yaml:"tags"`
}

// Service assembles budget entries.
type Service struct {
	store  store.Store
	writer *writer.Writer
	log    logging.Logger
	clock  Clock
}

// NewService creates a Service. A nil clock means time.Now.
func NewService(s store.Store, w *writer.Writer, logger logging.Logger, clock Clock) *Service {
	if logger == nil {
		logger = logging.Discard()
	}
	if clock == nil {
		clock = time.Now
	}
	return &Service{store: s, writer: w, log: logger, clock: clock}
}

// Options loads the account and tag dictionaries. They are rebuilt on every call.
func (s *Service) Options(ctx context.Context, settings models.Settings) (accounts, tags models.OptionDictionary, err error) {
	if err := validation.Settings(settings); err != nil {
		return nil, nil, err
	}
	accounts, err = options.Load(ctx, s.store, SourceAccounts, settings.AccountsFolderPath, s.log)
	if err != nil {
		return nil, nil, err
	}
	tags, err = options.Load(ctx, s.store, SourceTags, settings.TagsFolderPath, s.log)
	if err != nil {
		return nil, nil, err
	}
	return accounts, tags, nil
}

// Prepare builds the form for partial: the dictionaries are loaded, the template
// is checked, partial is merged over a record dated now and its labels are resolved.
func (s *Service) Prepare(ctx context.Context, settings models.Settings, partial models.PartialRecord) (*Form, error) {
	accounts, tags, err := s.Options(ctx, settings)
	if err != nil {
		return nil, err
	}
	if _, err := s.template(ctx, settings.TemplateFilePath); err != nil {
		return nil, err
	}

	rec := partial.Merge(models.DefaultRecord(s.clock()))
	rec.FromAccount = options.Resolve(accounts, rec.FromAccount)
	rec.ToAccount = options.Resolve(accounts, rec.ToAccount)
	rec.Tag = options.Resolve(tags, rec.Tag)

	return &Form{Record: rec, Accounts: accounts, Tags: tags}, nil
}

// Create validates rec, renders it and writes it under a unique path.
// onSuccess, when not nil, is called once after the document exists.
// Writer failures are returned unchanged.
func (s *Service) Create(ctx context.Context, settings models.Settings, rec models.Record, onSuccess func(models.Document)) (models.Document, error) {
	if err := validation.Settings(settings); err != nil {
		return models.Document{}, err
	}
	if err := validation.Record(rec); err != nil {
		return models.Document{}, err
	}

	tpl, err := s.template(ctx, settings.TemplateFilePath)
	if err != nil {
		return models.Document{}, err
	}

	basePath := render.Path(settings.CreatedFilePathTemplate, rec)
	content := render.Content(tpl, rec)

	start := time.Now()
	doc, err := s.writer.CreateUnique(ctx, basePath, content, 0)
	if err != nil {
		return models.Document{}, err
	}

	s.log.Info("Created budget entry",
		logging.F(logging.FieldPath, doc.Path),
		logging.F(logging.FieldDuration, time.Since(start).Milliseconds()))

	if onSuccess != nil {
		onSuccess(doc)
	}
	return doc, nil
}

// Submit prepares partial and creates it in one go.
func (s *Service) Submit(ctx context.Context, settings models.Settings, partial models.PartialRecord, onSuccess func(models.Document)) (models.Document, error) {
	form, err := s.Prepare(ctx, settings, partial)
	if err != nil {
		return models.Document{}, err
	}
	return s.Create(ctx, settings, form.Record, onSuccess)
}

// Summary returns the summary document to show after an entry was created.
// ok is false when no summary is configured or nothing readable lives at its path.
func (s *Service) Summary(ctx context.Context, settings models.Settings) (doc models.Document, ok bool, err error) {
	if settings.SummaryFilePath == "" {
		return models.Document{}, false, nil
	}
	isDoc, err := store.IsDocument(ctx, s.store, settings.SummaryFilePath)
	if err != nil {
		return models.Document{}, false, &entryerror.StoreError{Op: "stat", Path: settings.SummaryFilePath, Err: err}
	}
	if !isDoc {
		s.log.Warn("Summary file not found", logging.F(logging.FieldPath, settings.SummaryFilePath))
		return models.Document{}, false, nil
	}
	return models.NewDocument(store.Clean(settings.SummaryFilePath)), true, nil
}

func (s *Service) template(ctx context.Context, p string) (string, error) {
	data, err := s.store.Read(ctx, p)
	if err != nil {
		s.log.WithError(err).Warn("Could not read entry template", logging.F(logging.FieldTemplate, p))
		if errors.Is(err, store.ErrNotFound) {
			return "", &entryerror.TemplateError{Path: p}
		}
		return "", &entryerror.TemplateError{Path: p, Err: err}
	}
	return string(data), nil
}

// Package writer creates documents under a name no other document uses yet,
// appending a numeric suffix to the base path until a free one is found.
package writer

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"fjacquet/budget-form/internal/entryerror"
	"fjacquet/budget-form/internal/logging"
	"fjacquet/budget-form/internal/models"
	"fjacquet/budget-form/internal/store"
)

// Writer creates uniquely named documents in a store.
type Writer struct {
	store       store.Store
	log         logging.Logger
	extension   string
	maxAttempts int
}

// Option configures a Writer.
type Option func(*Writer)

// WithExtension sets the extension appended after the numeric suffix.
func WithExtension(ext string) Option {
	return func(w *Writer) {
		w.extension = ext
	}
}

// WithMaxAttempts sets the attempt count used when CreateUnique is called with 0.
func WithMaxAttempts(n int) Option {
	return func(w *Writer) {
		if n > 0 {
			w.maxAttempts = n
		}
	}
}

// New returns a Writer over s.
func New(s store.Store, logger logging.Logger, opts ...Option) *Writer {
	if logger == nil {
		logger = logging.Discard()
	}
	w := &Writer{
		store:       s,
		log:         logger,
		extension:   models.DocumentExtension,
		maxAttempts: models.DefaultMaxAttempts,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// MaxAttempts returns the default attempt count.
func (w *Writer) MaxAttempts() int {
	return w.maxAttempts
}

// Candidate returns the path tried at attempt i: basePath itself first, then basePath1, basePath2...
func (w *Writer) Candidate(basePath string, i int) string {
	if i == 0 {
		return basePath + w.extension
	}
	return basePath + strconv.Itoa(i) + w.extension
}

// CreateUnique writes content at the first free candidate path derived from basePath.
// maxAttempts of 0 uses the writer's default; any other value below 1 means a single attempt.
//
// Failures are *entryerror.InvalidPathError when basePath has no container,
// *entryerror.WriteExhaustedError when every candidate is taken and
// *entryerror.StoreError for any other store failure.
func (w *Writer) CreateUnique(ctx context.Context, basePath, content string, maxAttempts int) (models.Document, error) {
	if maxAttempts == 0 {
		maxAttempts = w.maxAttempts
	}
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	idx := strings.LastIndex(basePath, "/")
	if idx < 0 {
		return models.Document{}, &entryerror.InvalidPathError{Path: basePath}
	}
	container := basePath[:idx]

	if err := w.ensureContainer(ctx, container); err != nil {
		return models.Document{}, err
	}

	for i := 0; i < maxAttempts; i++ {
		if err := ctx.Err(); err != nil {
			return models.Document{}, &entryerror.StoreError{Op: "create", Path: basePath, Err: err}
		}

		candidate := w.Candidate(basePath, i)
		kind, err := w.store.Stat(ctx, candidate)
		if err != nil {
			return models.Document{}, &entryerror.StoreError{Op: "stat", Path: candidate, Err: err}
		}
		if kind != models.KindNone {
			w.log.Debug("Path taken, trying next suffix",
				logging.F(logging.FieldPath, candidate),
				logging.F(logging.FieldAttempt, i+1))
			continue
		}

		doc, err := w.store.Create(ctx, candidate, []byte(content))
		if err != nil {
			if errors.Is(err, store.ErrExists) {
				w.log.Warn("Path taken between check and create, trying next suffix",
					logging.F(logging.FieldPath, candidate),
					logging.F(logging.FieldAttempt, i+1))
				continue
			}
			return models.Document{}, &entryerror.StoreError{Op: "create", Path: candidate, Err: err}
		}

		w.log.Info("Created document",
			logging.F(logging.FieldPath, doc.Path),
			logging.F(logging.FieldAttempt, i+1))
		return doc, nil
	}

	w.log.Warn("Could not find a free path",
		logging.F(logging.FieldPath, basePath),
		logging.F(logging.FieldAttempts, maxAttempts))
	return models.Document{}, &entryerror.WriteExhaustedError{Path: basePath, Attempts: maxAttempts}
}

// ensureContainer creates container when nothing lives there yet.
// An empty container is the store root, which always exists.
func (w *Writer) ensureContainer(ctx context.Context, container string) error {
	if store.Clean(container) == "" {
		return nil
	}
	kind, err := w.store.Stat(ctx, container)
	if err != nil {
		return &entryerror.StoreError{Op: "stat", Path: container, Err: err}
	}
	if kind != models.KindNone {
		return nil
	}
	if err := w.store.CreateContainer(ctx, container); err != nil {
		return &entryerror.StoreError{Op: "create container", Path: container, Err: err}
	}
	w.log.Debug("Created missing container", logging.F(logging.FieldContainer, container))
	return nil
}

package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"

	"fjacquet/budget-form/internal/logging"
	"fjacquet/budget-form/internal/models"

	"github.com/spf13/afero"
)

// FSStore is a Store backed by an afero filesystem, usually a vault directory on disk.
type FSStore struct {
	fs  afero.Fs
	log logging.Logger
}

// NewFSStore returns a store rooted at the directory root of the OS filesystem.
func NewFSStore(root string, logger logging.Logger) *FSStore {
	return NewFSStoreFromFs(afero.NewBasePathFs(afero.NewOsFs(), root), logger)
}

// NewMemStore returns an empty in-memory store.
func NewMemStore(logger logging.Logger) *FSStore {
	return NewFSStoreFromFs(afero.NewMemMapFs(), logger)
}

// NewFSStoreFromFs wraps an existing afero filesystem.
func NewFSStoreFromFs(fs afero.Fs, logger logging.Logger) *FSStore {
	if logger == nil {
		logger = logging.Discard()
	}
	return &FSStore{fs: fs, log: logger}
}

// Fs exposes the underlying filesystem.
func (s *FSStore) Fs() afero.Fs {
	return s.fs
}

func (s *FSStore) Stat(_ context.Context, p string) (models.EntryKind, error) {
	p = Clean(p)
	if p == "" {
		return models.KindContainer, nil
	}
	info, err := s.fs.Stat(p)
	if err != nil {
		if os.IsNotExist(err) {
			return models.KindNone, nil
		}
		return models.KindNone, fmt.Errorf("stat %s: %w", p, err)
	}
	if info.IsDir() {
		return models.KindContainer, nil
	}
	return models.KindDocument, nil
}

func (s *FSStore) Read(ctx context.Context, p string) ([]byte, error) {
	p = Clean(p)
	kind, err := s.Stat(ctx, p)
	if err != nil {
		return nil, err
	}
	if kind != models.KindDocument {
		return nil, fmt.Errorf("read %s: %w", p, ErrNotFound)
	}
	data, err := afero.ReadFile(s.fs, p)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", p, err)
	}
	return data, nil
}

func (s *FSStore) List(ctx context.Context, container string) ([]string, error) {
	container = Clean(container)
	kind, err := s.Stat(ctx, container)
	if err != nil {
		return nil, err
	}
	if kind != models.KindContainer {
		return nil, fmt.Errorf("list %s: %w", container, ErrNotFound)
	}

	dir := container
	if dir == "" {
		dir = "."
	}
	infos, err := afero.ReadDir(s.fs, dir)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", container, err)
	}

	var docs []string
	for _, info := range infos {
		if info.IsDir() {
			continue
		}
		docs = append(docs, path.Join(container, info.Name()))
	}
	return docs, nil
}

func (s *FSStore) CreateContainer(_ context.Context, p string) error {
	p = Clean(p)
	if p == "" {
		return nil
	}
	if err := s.fs.MkdirAll(p, models.PermissionDirectory); err != nil {
		return fmt.Errorf("create container %s: %w", p, err)
	}
	s.log.Debug("Created container", logging.F(logging.FieldContainer, p))
	return nil
}

func (s *FSStore) Create(_ context.Context, p string, content []byte) (models.Document, error) {
	p = Clean(p)
	f, err := s.fs.OpenFile(p, os.O_WRONLY|os.O_CREATE|os.O_EXCL, models.PermissionFile)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return models.Document{}, fmt.Errorf("create %s: %w", p, ErrExists)
		}
		return models.Document{}, fmt.Errorf("create %s: %w", p, err)
	}

	if _, err := f.Write(content); err != nil {
		_ = f.Close()
		s.discard(p)
		return models.Document{}, fmt.Errorf("write %s: %w", p, err)
	}
	if err := f.Close(); err != nil {
		s.discard(p)
		return models.Document{}, fmt.Errorf("close %s: %w", p, err)
	}
	return models.NewDocument(p), nil
}

// discard removes a document whose content could not be written,
// so the path is free again for the next attempt.
func (s *FSStore) discard(p string) {
	if err := s.fs.Remove(p); err != nil && !os.IsNotExist(err) {
		s.log.WithError(err).Warn("Could not remove partly written document",
			logging.F(logging.FieldPath, p))
	}
}

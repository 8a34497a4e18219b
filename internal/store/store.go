// Package store provides the hierarchical document stores budget entries are written to.
//
// Paths are slash-separated and relative to the store root, e.g. "finance/budget/accounts".
// A store holds containers (folders) and documents (files).
package store

import (
	"context"
	"errors"
	"path"
	"strings"

	"fjacquet/budget-form/internal/models"
)

var (
	// ErrNotFound is returned when no document or container exists at a path.
	ErrNotFound = errors.New("not found")

	// ErrExists is returned by Create when the path is already taken.
	ErrExists = errors.New("already exists")
)

// Store is the document store capability used by the entry pipeline.
type Store interface {
	// Stat tells whether a document, a container or nothing lives at p.
	Stat(ctx context.Context, p string) (models.EntryKind, error)

	// Read returns the content of the document at p, or ErrNotFound.
	Read(ctx context.Context, p string) ([]byte, error)

	// List returns the paths of the documents directly inside container, sorted.
	// Nested containers are not listed. Returns ErrNotFound if container does not exist.
	List(ctx context.Context, container string) ([]string, error)

	// CreateContainer creates the container at p along with any missing ancestors.
	CreateContainer(ctx context.Context, p string) error

	// Create writes a new document at p. It never overwrites: an existing
	// entry at p yields ErrExists.
	Create(ctx context.Context, p string, content []byte) (models.Document, error)
}

// Exists reports whether anything lives at p.
func Exists(ctx context.Context, s Store, p string) (bool, error) {
	kind, err := s.Stat(ctx, p)
	if err != nil {
		return false, err
	}
	return kind != models.KindNone, nil
}

// IsDocument reports whether a document lives at p.
func IsDocument(ctx context.Context, s Store, p string) (bool, error) {
	kind, err := s.Stat(ctx, p)
	return kind == models.KindDocument, err
}

// IsContainer reports whether a container lives at p.
func IsContainer(ctx context.Context, s Store, p string) (bool, error) {
	kind, err := s.Stat(ctx, p)
	return kind == models.KindContainer, err
}

// Clean normalizes a store path: no leading or trailing slash, "" for the root.
func Clean(p string) string {
	p = strings.Trim(p, "/")
	if p == "" {
		return ""
	}
	p = path.Clean(p)
	if p == "." {
		return ""
	}
	return p
}

// Ancestors returns every proper ancestor container of p, outermost first.
func Ancestors(p string) []string {
	p = Clean(p)
	var out []string
	for i := 0; i < len(p); i++ {
		if p[i] == '/' {
			out = append(out, p[:i])
		}
	}
	return out
}

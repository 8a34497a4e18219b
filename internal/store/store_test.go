package store

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"fjacquet/budget-form/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/googleapi"
)

func TestClean(t *testing.T) {
	tests := map[string]string{
		"":                  "",
		"/":                 "",
		".":                 "",
		"finance/budget/":   "finance/budget",
		"/finance//budget":  "finance/budget",
		"finance/./budget":  "finance/budget",
		"finance/budget.md": "finance/budget.md",
	}
	for in, want := range tests {
		assert.Equal(t, want, Clean(in), "Clean(%q)", in)
	}
}

func TestAncestors(t *testing.T) {
	assert.Equal(t, []string{"a", "a/b"}, Ancestors("a/b/c.md"))
	assert.Nil(t, Ancestors("c.md"))
	assert.Nil(t, Ancestors(""))
}

// storeFactories lets every backend run the same behavioural suite.
func storeFactories(t *testing.T) map[string]func() Store {
	return map[string]func() Store{
		"mem": func() Store { return NewMemStore(nil) },
		"os": func() Store {
			return NewFSStore(t.TempDir(), nil)
		},
		"bolt": func() Store {
			s, err := NewBoltStore(filepath.Join(t.TempDir(), "vault.db"), nil)
			require.NoError(t, err)
			t.Cleanup(func() { _ = s.Close() })
			return s
		},
		"mock": func() Store { return NewMockStore() },
	}
}

func TestStore_Behaviour(t *testing.T) {
	ctx := context.Background()

	for name, factory := range storeFactories(t) {
		t.Run(name, func(t *testing.T) {
			s := factory()

			kind, err := s.Stat(ctx, "finance/accounts")
			require.NoError(t, err)
			assert.Equal(t, models.KindNone, kind)

			require.NoError(t, s.CreateContainer(ctx, "finance/accounts"))
			kind, err = s.Stat(ctx, "finance")
			require.NoError(t, err)
			assert.Equal(t, models.KindContainer, kind, "ancestors are created")

			doc, err := s.Create(ctx, "finance/accounts/cash.md", []byte("# Cash"))
			require.NoError(t, err)
			assert.Equal(t, "finance/accounts/cash.md", doc.Path)
			assert.Equal(t, "cash", doc.Name)

			_, err = s.Create(ctx, "finance/accounts/cash.md", []byte("other"))
			assert.True(t, errors.Is(err, ErrExists), "create never overwrites: %v", err)

			data, err := s.Read(ctx, "finance/accounts/cash.md")
			require.NoError(t, err)
			assert.Equal(t, "# Cash", string(data))

			_, err = s.Read(ctx, "finance/accounts/missing.md")
			assert.True(t, errors.Is(err, ErrNotFound))

			_, err = s.Read(ctx, "finance/accounts")
			assert.True(t, errors.Is(err, ErrNotFound), "containers cannot be read")

			require.NoError(t, s.CreateContainer(ctx, "finance/accounts/archive"))
			_, err = s.Create(ctx, "finance/accounts/bank.md", []byte("# Bank"))
			require.NoError(t, err)

			docs, err := s.List(ctx, "finance/accounts")
			require.NoError(t, err)
			assert.Equal(t, []string{"finance/accounts/bank.md", "finance/accounts/cash.md"}, docs)

			_, err = s.List(ctx, "finance/tags")
			assert.True(t, errors.Is(err, ErrNotFound))

			exists, err := Exists(ctx, s, "finance/accounts/bank.md")
			require.NoError(t, err)
			assert.True(t, exists)

			isDoc, err := IsDocument(ctx, s, "finance/accounts")
			require.NoError(t, err)
			assert.False(t, isDoc)

			isDir, err := IsContainer(ctx, s, "finance/accounts")
			require.NoError(t, err)
			assert.True(t, isDir)
		})
	}
}

func TestMockStore_InjectedErrors(t *testing.T) {
	ctx := context.Background()
	m := NewMockStore()
	m.AddContainer("a")
	m.CreateErrors = map[string]error{"a/b.md": ErrExists}

	_, err := m.Create(ctx, "a/b.md", nil)
	assert.True(t, errors.Is(err, ErrExists))

	_, err = m.Stat(ctx, "a/b.md")
	require.NoError(t, err)
	assert.Equal(t, []string{"a/b.md"}, m.CallsTo("create"))
	assert.Equal(t, []string{"a/b.md"}, m.CallsTo("stat"))

	m.ReadError = errors.New("io")
	_, err = m.Read(ctx, "a/b.md")
	assert.EqualError(t, err, "io")
}

func TestObjectName(t *testing.T) {
	assert.Equal(t, "a/b.md", objectName("", "a/b.md"))
	assert.Equal(t, "vault/a/b.md", objectName("vault", "a/b.md"))
	assert.Equal(t, "vault", objectName("vault", ""))

	assert.Equal(t, "a/b.md", storePath("", "a/b.md"))
	assert.Equal(t, "a/b.md", storePath("vault", "vault/a/b.md"))
}

func TestContentType(t *testing.T) {
	assert.Equal(t, "text/markdown; charset=utf-8", contentType("a/b.md"))
	assert.Equal(t, "text/plain; charset=utf-8", contentType("a/b.txt"))
}

func TestIsPreconditionFailed(t *testing.T) {
	assert.True(t, isPreconditionFailed(&googleapi.Error{Code: 412}))
	assert.True(t, isPreconditionFailed(fmt.Errorf("wrapped: %w", &googleapi.Error{Code: 412})))
	assert.False(t, isPreconditionFailed(&googleapi.Error{Code: 404}))
	assert.False(t, isPreconditionFailed(errors.New("boom")))
}

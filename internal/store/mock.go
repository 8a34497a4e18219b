package store

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"fjacquet/budget-form/internal/models"
)

// MockStore is an in-memory Store for tests. It records every call and lets
// tests inject failures per operation or per path.
type MockStore struct {
	mu         sync.Mutex
	Documents  map[string][]byte
	Containers map[string]bool
	Calls      []string

	// Error flags for testing error conditions
	StatError            error
	ReadError            error
	ListError            error
	CreateContainerError error
	CreateError          error

	// CreateErrors fails Create for specific paths, e.g. with ErrExists to simulate a lost race.
	CreateErrors map[string]error
	// StatErrors fails Stat for specific paths.
	StatErrors map[string]error
}

// NewMockStore returns an empty MockStore.
func NewMockStore() *MockStore {
	return &MockStore{
		Documents:  make(map[string][]byte),
		Containers: make(map[string]bool),
	}
}

// AddDocument seeds a document and its ancestor containers.
func (m *MockStore) AddDocument(p string, content string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.init()
	p = Clean(p)
	for _, c := range Ancestors(p) {
		m.Containers[c] = true
	}
	m.Documents[p] = []byte(content)
}

// AddContainer seeds a container and its ancestors.
func (m *MockStore) AddContainer(p string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.init()
	p = Clean(p)
	for _, c := range append(Ancestors(p), p) {
		m.Containers[c] = true
	}
}

// CallsTo returns the recorded calls of one operation, e.g. "create".
func (m *MockStore) CallsTo(op string) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []string
	for _, c := range m.Calls {
		if strings.HasPrefix(c, op+" ") {
			out = append(out, strings.TrimPrefix(c, op+" "))
		}
	}
	return out
}

func (m *MockStore) init() {
	if m.Documents == nil {
		m.Documents = make(map[string][]byte)
	}
	if m.Containers == nil {
		m.Containers = make(map[string]bool)
	}
}

func (m *MockStore) record(op, p string) {
	m.init()
	m.Calls = append(m.Calls, op+" "+p)
}

func (m *MockStore) statLocked(p string) models.EntryKind {
	if p == "" || m.Containers[p] {
		return models.KindContainer
	}
	if _, ok := m.Documents[p]; ok {
		return models.KindDocument
	}
	return models.KindNone
}

func (m *MockStore) Stat(_ context.Context, p string) (models.EntryKind, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p = Clean(p)
	m.record("stat", p)
	if m.StatError != nil {
		return models.KindNone, m.StatError
	}
	if err, ok := m.StatErrors[p]; ok {
		return models.KindNone, err
	}
	return m.statLocked(p), nil
}

func (m *MockStore) Read(_ context.Context, p string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p = Clean(p)
	m.record("read", p)
	if m.ReadError != nil {
		return nil, m.ReadError
	}
	data, ok := m.Documents[p]
	if !ok {
		return nil, fmt.Errorf("read %s: %w", p, ErrNotFound)
	}
	return append([]byte(nil), data...), nil
}

func (m *MockStore) List(_ context.Context, container string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	container = Clean(container)
	m.record("list", container)
	if m.ListError != nil {
		return nil, m.ListError
	}
	if m.statLocked(container) != models.KindContainer {
		return nil, fmt.Errorf("list %s: %w", container, ErrNotFound)
	}
	var docs []string
	for p := range m.Documents {
		if parentOf(p) == container {
			docs = append(docs, p)
		}
	}
	sort.Strings(docs)
	return docs, nil
}

func (m *MockStore) CreateContainer(_ context.Context, p string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p = Clean(p)
	m.record("mkdir", p)
	if m.CreateContainerError != nil {
		return m.CreateContainerError
	}
	for _, c := range append(Ancestors(p), p) {
		m.Containers[c] = true
	}
	return nil
}

func (m *MockStore) Create(_ context.Context, p string, content []byte) (models.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p = Clean(p)
	m.record("create", p)
	if m.CreateError != nil {
		return models.Document{}, m.CreateError
	}
	if err, ok := m.CreateErrors[p]; ok {
		return models.Document{}, err
	}
	if m.statLocked(p) != models.KindNone {
		return models.Document{}, fmt.Errorf("create %s: %w", p, ErrExists)
	}
	m.Documents[p] = append([]byte(nil), content...)
	return models.NewDocument(p), nil
}

package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"

	"fjacquet/budget-form/internal/logging"
	"fjacquet/budget-form/internal/models"

	"cloud.google.com/go/storage"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/iterator"
)

// GCSStore is a Store kept in a Google Cloud Storage bucket.
// Containers are object name prefixes; CreateContainer writes a zero-byte
// "name/" marker so that empty containers still exist.
// It assumes Application Default Credentials are configured.
type GCSStore struct {
	client *storage.Client
	bucket *storage.BucketHandle
	prefix string
	log    logging.Logger
}

// NewGCSStore opens a storage client for bucketName. All paths are stored below prefix.
func NewGCSStore(ctx context.Context, bucketName, prefix string, logger logging.Logger) (*GCSStore, error) {
	if logger == nil {
		logger = logging.Discard()
	}
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("create storage client: %w", err)
	}
	return &GCSStore{
		client: client,
		bucket: client.Bucket(bucketName),
		prefix: Clean(prefix),
		log:    logger,
	}, nil
}

// Close releases the storage client.
func (s *GCSStore) Close() error {
	return s.client.Close()
}

func (s *GCSStore) Stat(ctx context.Context, p string) (models.EntryKind, error) {
	p = Clean(p)
	if p == "" {
		return models.KindContainer, nil
	}

	_, err := s.bucket.Object(objectName(s.prefix, p)).Attrs(ctx)
	if err == nil {
		return models.KindDocument, nil
	}
	if !errors.Is(err, storage.ErrObjectNotExist) {
		return models.KindNone, fmt.Errorf("stat %s: %w", p, err)
	}

	it := s.bucket.Objects(ctx, &storage.Query{Prefix: objectName(s.prefix, p) + "/"})
	if _, err := it.Next(); err != nil {
		if errors.Is(err, iterator.Done) {
			return models.KindNone, nil
		}
		return models.KindNone, fmt.Errorf("stat %s: %w", p, err)
	}
	return models.KindContainer, nil
}

func (s *GCSStore) Read(ctx context.Context, p string) ([]byte, error) {
	p = Clean(p)
	r, err := s.bucket.Object(objectName(s.prefix, p)).NewReader(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotExist) {
			return nil, fmt.Errorf("read %s: %w", p, ErrNotFound)
		}
		return nil, fmt.Errorf("open GCS object reader: %w", err)
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read GCS object: %w", err)
	}
	return data, nil
}

func (s *GCSStore) List(ctx context.Context, container string) ([]string, error) {
	container = Clean(container)
	prefix := objectName(s.prefix, container)
	if prefix != "" {
		prefix += "/"
	}

	it := s.bucket.Objects(ctx, &storage.Query{Prefix: prefix, Delimiter: "/"})
	var docs []string
	found := false
	for {
		attrs, err := it.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list %s: %w", container, err)
		}
		found = true
		// Sub-containers come back as synthetic prefixes; markers end with "/".
		if attrs.Prefix != "" || strings.HasSuffix(attrs.Name, "/") {
			continue
		}
		docs = append(docs, storePath(s.prefix, attrs.Name))
	}
	if !found && container != "" {
		return nil, fmt.Errorf("list %s: %w", container, ErrNotFound)
	}
	return docs, nil
}

func (s *GCSStore) CreateContainer(ctx context.Context, p string) error {
	p = Clean(p)
	if p == "" {
		return nil
	}
	w := s.bucket.Object(objectName(s.prefix, p) + "/").If(storage.Conditions{DoesNotExist: true}).NewWriter(ctx)
	if err := w.Close(); err != nil && !isPreconditionFailed(err) {
		return fmt.Errorf("create container %s: %w", p, err)
	}
	s.log.Debug("Created container", logging.F(logging.FieldContainer, p))
	return nil
}

func (s *GCSStore) Create(ctx context.Context, p string, content []byte) (models.Document, error) {
	p = Clean(p)
	w := s.bucket.Object(objectName(s.prefix, p)).If(storage.Conditions{DoesNotExist: true}).NewWriter(ctx)
	w.ContentType = contentType(p)

	if _, err := w.Write(content); err != nil {
		_ = w.Close()
		return models.Document{}, fmt.Errorf("write %s: %w", p, err)
	}
	if err := w.Close(); err != nil {
		if isPreconditionFailed(err) {
			return models.Document{}, fmt.Errorf("create %s: %w", p, ErrExists)
		}
		return models.Document{}, fmt.Errorf("finalize upload %s: %w", p, err)
	}
	return models.NewDocument(p), nil
}

// objectName maps a store path to the bucket object name.
func objectName(prefix, p string) string {
	if prefix == "" {
		return p
	}
	if p == "" {
		return prefix
	}
	return prefix + "/" + p
}

// storePath maps a bucket object name back to a store path.
func storePath(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return strings.TrimPrefix(name, prefix+"/")
}

func contentType(p string) string {
	if path.Ext(p) == models.DocumentExtension {
		return "text/markdown; charset=utf-8"
	}
	return "text/plain; charset=utf-8"
}

func isPreconditionFailed(err error) bool {
	var apiErr *googleapi.Error
	return errors.As(err, &apiErr) && apiErr.Code == http.StatusPreconditionFailed
}

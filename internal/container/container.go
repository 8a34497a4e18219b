// Package container provides dependency injection for the budget-form application.
// It centralizes the creation and wiring of all application dependencies,
// making them explicit and testable.
package container

import (
	"context"
	"fmt"
	"io"
	"time"

	"fjacquet/budget-form/internal/config"
	"fjacquet/budget-form/internal/entry"
	"fjacquet/budget-form/internal/logging"
	"fjacquet/budget-form/internal/store"
	"fjacquet/budget-form/internal/writer"
)

// Container holds all application dependencies and provides methods to access them.
//
// Container is immutable after creation - all fields are private and can only
// be accessed through getter methods.
type Container struct {
	logger   logging.Logger
	config   *config.Config
	location *time.Location
	store    store.Store
	writer   *writer.Writer
	service  *entry.Service
}

// Option overrides a dependency NewContainer would otherwise build from the configuration.
type Option func(*options)

type options struct {
	logger logging.Logger
	store  store.Store
	clock  entry.Clock
}

// WithLogger uses logger instead of a logrus logger built from the configuration.
func WithLogger(logger logging.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithStore uses s instead of the configured vault backend.
func WithStore(s store.Store) Option {
	return func(o *options) { o.store = s }
}

// WithClock dates new entries with clock.
func WithClock(clock entry.Clock) Option {
	return func(o *options) { o.clock = clock }
}

// NewContainer creates and wires all application dependencies.
// This is the main entry point for dependency injection in the application.
func NewContainer(ctx context.Context, cfg *config.Config, opts ...Option) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	// Create logger first as it's needed by other components
	logger := o.logger
	if logger == nil {
		logger = logging.NewLogrusAdapterFromLogger(config.ConfigureLoggingFromConfig(cfg))
	}

	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	s := o.store
	if s == nil {
		s, err = NewStore(ctx, cfg.Vault, logger)
		if err != nil {
			return nil, err
		}
	}

	clock := o.clock
	if clock == nil {
		clock = func() time.Time { return time.Now().In(loc) }
	}

	writerOpts := []writer.Option{writer.WithMaxAttempts(cfg.Writer.MaxAttempts)}
	if cfg.Writer.Extension != "" {
		writerOpts = append(writerOpts, writer.WithExtension(cfg.Writer.Extension))
	}
	w := writer.New(s, logger, writerOpts...)

	svc := entry.NewService(s, w, logger, clock)

	logger.Debug("Container initialized successfully",
		logging.F(logging.FieldBackend, cfg.Vault.Backend))

	return &Container{
		logger:   logger,
		config:   cfg,
		location: loc,
		store:    s,
		writer:   w,
		service:  svc,
	}, nil
}

// NewStore opens the document store selected by the vault configuration.
func NewStore(ctx context.Context, cfg config.VaultConfig, logger logging.Logger) (store.Store, error) {
	switch cfg.Backend {
	case config.BackendFS, "":
		return store.NewFSStore(cfg.Root, logger), nil
	case config.BackendBolt:
		s, err := store.NewBoltStore(cfg.BoltPath, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to open bolt vault %s: %w", cfg.BoltPath, err)
		}
		return s, nil
	case config.BackendGCS:
		s, err := store.NewGCSStore(ctx, cfg.GCSBucket, cfg.GCSPrefix, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to open gcs vault %s: %w", cfg.GCSBucket, err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown vault backend: %s", cfg.Backend)
	}
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetLocation returns the time zone entries are dated in.
func (c *Container) GetLocation() *time.Location {
	return c.location
}

// GetStore returns the document store.
func (c *Container) GetStore() store.Store {
	return c.store
}

// GetWriter returns the unique document writer.
func (c *Container) GetWriter() *writer.Writer {
	return c.writer
}

// GetService returns the entry service.
func (c *Container) GetService() *entry.Service {
	return c.service
}

// Close releases the store when it holds resources.
func (c *Container) Close() error {
	if closer, ok := c.store.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			return fmt.Errorf("failed to close store: %w", err)
		}
	}
	c.logger.Debug("Container closed")
	return nil
}

package container

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"fjacquet/budget-form/internal/config"
	"fjacquet/budget-form/internal/logging"
	"fjacquet/budget-form/internal/models"
	"fjacquet/budget-form/internal/store"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *config.Config {
	return &config.Config{
		Log:      config.LogConfig{Level: "info", Format: "text"},
		Settings: models.DefaultSettings(),
		Vault:    config.VaultConfig{Backend: config.BackendFS, Root: t.TempDir()},
		Writer:   config.WriterConfig{MaxAttempts: 3, Extension: ".md"},
		Timezone: "UTC",
	}
}

func TestNewContainer(t *testing.T) {
	tests := []struct {
		name        string
		config      func(t *testing.T) *config.Config
		expectError bool
		errorMsg    string
	}{
		{
			name:        "nil config",
			config:      func(t *testing.T) *config.Config { return nil },
			expectError: true,
			errorMsg:    "configuration cannot be nil",
		},
		{
			name:   "fs backend",
			config: testConfig,
		},
		{
			name: "bolt backend",
			config: func(t *testing.T) *config.Config {
				cfg := testConfig(t)
				cfg.Vault.Backend = config.BackendBolt
				cfg.Vault.BoltPath = filepath.Join(t.TempDir(), "vault.db")
				return cfg
			},
		},
		{
			name: "unknown backend",
			config: func(t *testing.T) *config.Config {
				cfg := testConfig(t)
				cfg.Vault.Backend = "s3"
				return cfg
			},
			expectError: true,
			errorMsg:    "unknown vault backend",
		},
		{
			name: "invalid timezone",
			config: func(t *testing.T) *config.Config {
				cfg := testConfig(t)
				cfg.Timezone = "Nowhere/City"
				return cfg
			},
			expectError: true,
			errorMsg:    "invalid timezone",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewContainer(context.Background(), tt.config(t), WithLogger(logging.NewMockLogger()))
			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
				assert.Nil(t, c)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, c)
			assert.NotNil(t, c.GetLogger())
			assert.NotNil(t, c.GetConfig())
			assert.NotNil(t, c.GetStore())
			assert.NotNil(t, c.GetWriter())
			assert.NotNil(t, c.GetService())
			assert.Equal(t, time.UTC, c.GetLocation())
			assert.NoError(t, c.Close())
		})
	}
}

func TestNewContainer_WiresWriterFromConfig(t *testing.T) {
	cfg := testConfig(t)
	cfg.Writer.Extension = ".txt"
	cfg.Writer.MaxAttempts = 7

	c, err := NewContainer(context.Background(), cfg, WithStore(store.NewMockStore()), WithLogger(logging.NewMockLogger()))
	require.NoError(t, err)

	assert.Equal(t, 7, c.GetWriter().MaxAttempts())
	assert.Equal(t, "a/b.txt", c.GetWriter().Candidate("a/b", 0))
}

func TestNewContainer_EndToEnd(t *testing.T) {
	cfg := testConfig(t)
	cfg.Settings.CreatedFilePathTemplate = "budget/{year}-{month}-{day}"

	mock := store.NewMockStore()
	mock.AddContainer(cfg.Settings.AccountsFolderPath)
	mock.AddDocument(cfg.Settings.AccountsFolderPath+"/cash.md", "")
	mock.AddDocument(cfg.Settings.AccountsFolderPath+"/bank.md", "")
	mock.AddDocument(cfg.Settings.TagsFolderPath+"/rent.md", "")
	mock.AddDocument(cfg.Settings.TemplateFilePath, "{amount}")

	fixed := time.Date(2024, 2, 29, 8, 0, 0, 0, time.UTC)
	c, err := NewContainer(context.Background(), cfg,
		WithStore(mock), WithLogger(logging.NewMockLogger()), WithClock(func() time.Time { return fixed }))
	require.NoError(t, err)

	from, to, tag, details := "cash", "bank", "rent", "February"
	amount := decimal.NewFromInt(1)
	doc, err := c.GetService().Submit(context.Background(), cfg.Settings, models.PartialRecord{
		FromAccount: &from, ToAccount: &to, Tag: &tag, Details: &details, Amount: &amount,
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, "budget/2024-02-29.md", doc.Path)
	assert.Equal(t, "1", string(mock.Documents[doc.Path]))
}

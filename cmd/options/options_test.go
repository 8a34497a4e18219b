package options_test

import (
	"bytes"
	"context"
	"testing"

	"fjacquet/budget-form/cmd/options"
	"fjacquet/budget-form/cmd/root"
	"fjacquet/budget-form/internal/config"
	"fjacquet/budget-form/internal/container"
	"fjacquet/budget-form/internal/logging"
	"fjacquet/budget-form/internal/models"
	"fjacquet/budget-form/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	root.Init()
	root.Cmd.AddCommand(options.Cmd)
}

func newVault(t *testing.T) *container.Container {
	t.Helper()
	s := store.NewMockStore()
	s.AddDocument("acc/cash.md", "")
	s.AddDocument("acc/bank.md", "")
	s.AddDocument("tags/food.md", "")

	cfg := &config.Config{
		Log: config.LogConfig{Level: "info", Format: "text"},
		Settings: models.Settings{
			AccountsFolderPath:      "acc",
			TagsFolderPath:          "tags",
			TemplateFilePath:        "tpl.md",
			CreatedFilePathTemplate: "{year}/{details}",
		},
		Writer:   config.WriterConfig{MaxAttempts: 1},
		Timezone: "UTC",
	}
	c, err := container.NewContainer(context.Background(), cfg,
		container.WithStore(s), container.WithLogger(logging.NewMockLogger()))
	require.NoError(t, err)
	return c
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root.AppContainer = newVault(t)
	var out bytes.Buffer
	root.Cmd.SetOut(&out)
	root.Cmd.SetArgs(args)
	err := root.Cmd.Execute()
	options.Format, options.Kind = "table", "all"
	return out.String(), err
}

func TestOptionsCommand_Metadata(t *testing.T) {
	assert.Equal(t, "options", options.Cmd.Use)
	assert.Equal(t, "table", options.Cmd.Flags().Lookup("format").DefValue)
	assert.Equal(t, "all", options.Cmd.Flags().Lookup("kind").DefValue)
}

func TestOptionsCommand_Table(t *testing.T) {
	out, err := execute(t, "options")
	require.NoError(t, err)

	assert.Contains(t, out, "KIND")
	assert.Contains(t, out, "[[acc/bank.md]]")
	assert.Contains(t, out, "[[tags/food.md]]")
}

func TestOptionsCommand_CSVTagsOnly(t *testing.T) {
	out, err := execute(t, "options", "--format", "csv", "--kind", "tags")
	require.NoError(t, err)

	assert.Equal(t, "kind,label,id\ntags,food,[[tags/food.md]]\n", out)
}

func TestOptionsCommand_InvalidFlags(t *testing.T) {
	_, err := execute(t, "options", "--format", "xml")
	assert.Error(t, err)

	_, err = execute(t, "options", "--kind", "people")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported kind")
}

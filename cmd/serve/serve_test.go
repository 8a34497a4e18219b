package serve_test

import (
	"testing"

	"fjacquet/budget-form/cmd/serve"

	"github.com/stretchr/testify/assert"
)

func TestServeCommand_Metadata(t *testing.T) {
	assert.Equal(t, "serve", serve.Cmd.Use)
	assert.Contains(t, serve.Cmd.Long, "POST /entries")
	assert.NotNil(t, serve.Cmd.RunE)

	flag := serve.Cmd.Flags().Lookup("address")
	if assert.NotNil(t, flag) {
		assert.Equal(t, "l", flag.Shorthand)
	}
}

package app

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/chembond-tutor/internal/adapters/catalog"
)

// discardLogger returns a logger that discards all output.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func loadCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()

	c, err := catalog.Load()
	require.NoError(t, err)

	return c
}

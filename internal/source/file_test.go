package source_test

import (
	"errors"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/jonesrussell/north-cloud/htmlcheck/internal/source"
	"github.com/jonesrussell/north-cloud/htmlcheck/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssertFileExists(t *testing.T) {
	t.Parallel()

	path := testutils.WriteFile(t, "index.html", "<h1>hi</h1>")

	got, err := source.AssertFileExists(path)
	require.NoError(t, err)
	assert.Equal(t, path, got)
}

func TestAssertFileExists_Missing(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "missing.html")

	_, err := source.AssertFileExists(missing)
	require.ErrorIs(t, err, source.ErrFileNotFound)
	require.ErrorIs(t, err, fs.ErrNotExist)
	assert.Equal(t, missing+" does not exist. Exiting.", err.Error())

	var notFound *source.FileNotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, missing, notFound.Path)
}

func TestFromFile(t *testing.T) {
	t.Parallel()

	path := testutils.WriteFile(t, "index.html", "<h1>hi</h1>")

	data, err := source.FromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "<h1>hi</h1>", string(data))
}

func TestFromFile_ReadError(t *testing.T) {
	t.Parallel()

	// Reading a directory fails even though it exists.
	_, err := source.FromFile(t.TempDir())
	require.ErrorIs(t, err, source.ErrIO)
}

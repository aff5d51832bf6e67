package assets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"awsicons/internal/catalog"
	"awsicons/internal/model"
)

func TestExtract_MaterializesBundledIconSet(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Extract(dir))

	manifest := filepath.Join(dir, catalog.ManifestName)
	_, err := os.Stat(manifest)
	require.NoError(t, err, "find.txt must be extracted")

	records := catalog.Load(dir)
	require.NotEmpty(t, records)

	// Every record's representative file must exist on disk,
	// in every advertised format.
	for _, rec := range records {
		for _, format := range rec.Formats {
			_, err := os.Stat(catalog.ResolvePath(rec, format))
			assert.NoError(t, err, "%s (%s)", rec.Name, format)
		}
	}

	// The bundled set covers all four classifications.
	seen := map[model.Classification]bool{}
	for _, rec := range records {
		seen[rec.Classification] = true
	}
	assert.Len(t, seen, 4)
}

func TestExtract_IsIdempotentAndKeepsExistingFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Extract(dir))

	// Overwrite one file; a second extract must leave it alone.
	manifest := filepath.Join(dir, catalog.ManifestName)
	require.NoError(t, os.WriteFile(manifest, []byte("sentinel"), 0o644))

	require.NoError(t, Extract(dir))

	data, err := os.ReadFile(manifest)
	require.NoError(t, err)
	assert.Equal(t, "sentinel", string(data))
}

package spectrum

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestLoadFromDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "wavelength_chart.txt", `
ch 34: 1550.12 nm / 193.40000 THz
ch 35: 1549,32 NM / 193,50000 THZ
this line has no pair
1234 nm only, no frequency
garbage / more garbage
`)
	// Name without "wavelength" is ignored even though it contains pairs.
	writeFile(t, dir, "notes.txt", "9999.99 nm / 111.11 THz\n")
	// Non-txt resources are ignored.
	writeFile(t, dir, "wavelength.csv", "1111.11 nm / 222.22 THz\n")

	table := Load(context.Background(), LoadOptions{DataDir: dir})
	assert.Equal(t, 2, table.Len())

	// Entries came from the matching file only.
	got, err := table.FrequencyOf(1550.12)
	require.NoError(t, err)
	assert.Equal(t, 193.4, got)
	got, err = table.FrequencyOf(1549.32)
	require.NoError(t, err)
	assert.Equal(t, 193.5, got)
}

func TestLoadMissingDirectory(t *testing.T) {
	table := Load(context.Background(), LoadOptions{DataDir: "/nonexistent/reference/data"})
	assert.Equal(t, 0, table.Len())

	// The empty table must still convert via the physical formula.
	got, err := table.FrequencyOf(1550)
	require.NoError(t, err)
	assert.Equal(t, 193.4125, got)
}

func TestLoadSortsAscendingByWavelength(t *testing.T) {
	dir := t.TempDir()
	// Descending in the file; the table must re-sort so the equidistant
	// tie-break below picks the lower wavelength.
	writeFile(t, dir, "wavelength_table.txt", `
1552.00 nm / 193.1625 THz
1550.00 nm / 193.4125 THz
`)

	table := Load(context.Background(), LoadOptions{DataDir: dir})
	require.Equal(t, 2, table.Len())

	got, err := table.FrequencyOf(1551.00)
	require.NoError(t, err)
	assert.Equal(t, 193.4125, got)
}

// fakeStore implements storage.ReferenceStore for loader tests.
type fakeStore struct {
	keys    []string
	objects map[string]string
	listErr error
}

func (f *fakeStore) ListKeys(ctx context.Context, prefix string) ([]string, error) {
	return f.keys, f.listErr
}

func (f *fakeStore) Download(ctx context.Context, key string) ([]byte, error) {
	body, ok := f.objects[key]
	if !ok {
		return nil, errors.New("no such key")
	}
	return []byte(body), nil
}

func TestLoadMergesStoreEntries(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "wavelength_local.txt", "1550.00 nm / 193.4125 THz\n")

	store := &fakeStore{
		keys: []string{
			"reference/wavelength_remote.txt",
			"reference/readme.md",
			"reference/wavelength_broken.txt",
		},
		objects: map[string]string{
			"reference/wavelength_remote.txt": "1552.00 nm / 193.1625 THz\n",
		},
	}

	table := Load(context.Background(), LoadOptions{DataDir: dir, Store: store, Prefix: "reference/"})
	assert.Equal(t, 2, table.Len())
}

func TestLoadStoreFailureIsNotFatal(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "wavelength_local.txt", "1550.00 nm / 193.4125 THz\n")

	store := &fakeStore{listErr: errors.New("bucket unreachable")}
	table := Load(context.Background(), LoadOptions{DataDir: dir, Store: store})
	assert.Equal(t, 1, table.Len())
}

package regulation

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const en206YAML = `XC4:
  max_wc: 0.50
  min_cement: 300
  strength_min_cyl: 30
  strength_min_cube: 37
XD2:
  max_wc: 0.55
  min_cement: 300
  max_aggregate_size: 32
`

func writeTable(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestRepositoryList(t *testing.T) {
	dir := t.TempDir()
	writeTable(t, dir, "en206.yaml", en206YAML)
	writeTable(t, dir, "as3600.json", `{"B1": {"max_wc": 0.5}}`)
	writeTable(t, dir, "notes.txt", "ignored")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "archive"), 0755))

	repo := NewRepository(dir)
	jurisdictions, err := repo.List()

	require.NoError(t, err)
	assert.Equal(t, []string{"as3600", "en206"}, jurisdictions)
}

func TestRepositoryListMissingDir(t *testing.T) {
	repo := NewRepository(filepath.Join(t.TempDir(), "nope"))
	_, err := repo.List()
	assert.Error(t, err)
}

func TestRepositoryLoadYAML(t *testing.T) {
	dir := t.TempDir()
	writeTable(t, dir, "en206.yaml", en206YAML)

	repo := NewRepository(dir)
	table, err := repo.Load("en206")

	require.NoError(t, err)
	require.Contains(t, table, "XC4")
	row := table["XC4"]
	require.NotNil(t, row.MaxWC)
	assert.Equal(t, 0.50, *row.MaxWC)
	require.NotNil(t, row.StrengthMinCube)
	assert.Equal(t, 37, *row.StrengthMinCube)
	assert.Nil(t, row.MaxAggregateSize)
}

func TestRepositoryLoadJSON(t *testing.T) {
	dir := t.TempDir()
	writeTable(t, dir, "as3600.json",
		`{"B2": {"max_wc": 0.46, "min_cement": 320, "strength_min_cyl": 40}}`)

	repo := NewRepository(dir)
	table, err := repo.Load("as3600")

	require.NoError(t, err)
	require.Contains(t, table, "B2")
	assert.Equal(t, 0.46, *table["B2"].MaxWC)
	assert.Equal(t, 40, *table["B2"].StrengthMinCyl)
}

func TestRepositoryLoadNotFound(t *testing.T) {
	repo := NewRepository(t.TempDir())
	_, err := repo.Load("en206")

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "en206", notFound.Jurisdiction)
	assert.Contains(t, err.Error(), "en206")
}

func TestRepositoryLoadMalformedYAML(t *testing.T) {
	dir := t.TempDir()
	writeTable(t, dir, "bad.yaml", "XC4: [not, a, mapping")

	repo := NewRepository(dir)
	_, err := repo.Load("bad")

	var malformed *MalformedError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, "bad", malformed.Jurisdiction)
}

func TestRepositoryLoadOutOfRangeClause(t *testing.T) {
	dir := t.TempDir()
	writeTable(t, dir, "en206.yaml", "XC4:\n  max_wc: -0.5\n")

	repo := NewRepository(dir)
	_, err := repo.Load("en206")

	var malformed *MalformedError
	require.ErrorAs(t, err, &malformed)
	assert.Contains(t, err.Error(), "XC4")
}

func TestRepositoryLoadCaches(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "en206.yaml")
	writeTable(t, dir, "en206.yaml", en206YAML)

	repo := NewRepository(dir)
	_, err := repo.Load("en206")
	require.NoError(t, err)

	// Removing the file must not affect a cached table
	require.NoError(t, os.Remove(path))
	table, err := repo.Load("en206")
	require.NoError(t, err)
	assert.Contains(t, table, "XC4")
}

func TestRepositoryErrorsUnwrap(t *testing.T) {
	inner := errors.New("boom")
	err := &MalformedError{Jurisdiction: "x", Path: "p", Err: inner}
	assert.ErrorIs(t, err, inner)
}

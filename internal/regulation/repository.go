// Package regulation resolves jurisdiction identifiers to exposure-class
// clause tables stored as YAML or JSON files on disk.
package regulation

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"cscreen/pkg/schema"
)

// Table maps exposure-class codes to their regulation clause rows.
type Table map[string]schema.ClauseVector

// Extensions accepted for regulation table files, in lookup order.
// JSON is valid YAML, so both load through the same decoder.
var tableExtensions = []string{".yaml", ".yml", ".json"}

// Repository loads regulation tables from a directory of
// <jurisdiction>.yaml|yml|json files. Loaded tables are cached; the
// repository is safe for concurrent use.
type Repository struct {
	dir string

	mu    sync.RWMutex
	cache map[string]Table
}

// NewRepository creates a repository over the given tables directory.
func NewRepository(dir string) *Repository {
	return &Repository{
		dir:   dir,
		cache: make(map[string]Table),
	}
}

// List returns the jurisdiction identifiers available in the tables
// directory, sorted and deduplicated across extensions.
func (r *Repository) List() ([]string, error) {
	entries, err := os.ReadDir(r.dir)
	if err != nil {
		return nil, fmt.Errorf("read regulations directory: %w", err)
	}

	seen := make(map[string]bool)
	var out []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := filepath.Ext(entry.Name())
		if !isTableExtension(ext) {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), ext)
		if !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out, nil
}

// Load resolves a jurisdiction identifier to its clause table.
// Returns *NotFoundError when no table file exists and *MalformedError
// when the file fails to parse or a clause row is out of range.
func (r *Repository) Load(jurisdiction string) (Table, error) {
	r.mu.RLock()
	if table, ok := r.cache[jurisdiction]; ok {
		r.mu.RUnlock()
		return table, nil
	}
	r.mu.RUnlock()

	path, err := r.resolvePath(jurisdiction)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read regulation table: %w", err)
	}

	var table Table
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, &MalformedError{Jurisdiction: jurisdiction, Path: path, Err: err}
	}

	for ec, row := range table {
		row := row
		if err := schema.ValidateClauseVector(&row); err != nil {
			return nil, &MalformedError{
				Jurisdiction: jurisdiction,
				Path:         path,
				Err:          fmt.Errorf("class %s: %w", ec, err),
			}
		}
	}

	r.mu.Lock()
	r.cache[jurisdiction] = table
	r.mu.Unlock()

	return table, nil
}

func (r *Repository) resolvePath(jurisdiction string) (string, error) {
	for _, ext := range tableExtensions {
		path := filepath.Join(r.dir, jurisdiction+ext)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", &NotFoundError{Jurisdiction: jurisdiction, Dir: r.dir}
}

func isTableExtension(ext string) bool {
	for _, e := range tableExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// Package store persists screening runs. Each run is staged in a
// temporary directory and renamed into place on commit, so the output
// root never shows a half-written archive.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"cscreen/internal/core"
)

// Archiver writes run archives under an output root directory.
type Archiver struct {
	outputDir string
}

// NewArchiver creates an archiver over the given output root.
func NewArchiver(outputDir string) *Archiver {
	return &Archiver{outputDir: outputDir}
}

// ArchiveRun publishes the result of one screening run atomically under
// <outputDir>/<run-id>/:
//
//	requirements.yaml   combined requirement record + provenance
//	products/<doc>.yaml per-EPD declaration, metrics, verdict (or error)
//	drawings/<doc>.yaml per-drawing constraints (or error)
//
// The whole tree is staged and renamed in one step; a crash mid-archive
// leaves only a stale .tmp directory behind, never a partial run.
func (a *Archiver) ArchiveRun(result *core.ScreeningResult) (string, error) {
	if err := os.MkdirAll(a.outputDir, 0755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}

	lock := NewFileLock(filepath.Join(a.outputDir, ".lock"), result.RunID)
	if err := lock.Acquire(); err != nil {
		return "", err
	}
	defer func() {
		_ = lock.Release()
	}()

	finalDir := filepath.Join(a.outputDir, result.RunID)
	tempDir := finalDir + ".tmp"

	if err := a.stage(tempDir, result); err != nil {
		_ = os.RemoveAll(tempDir)
		return "", err
	}

	if err := os.Rename(tempDir, finalDir); err != nil {
		_ = os.RemoveAll(tempDir)
		return "", fmt.Errorf("commit run archive: %w", err)
	}

	return finalDir, nil
}

func (a *Archiver) stage(dir string, result *core.ScreeningResult) error {
	for _, sub := range []string{"products", "drawings"} {
		if err := os.MkdirAll(filepath.Join(dir, sub), 0755); err != nil {
			return fmt.Errorf("stage archive directories: %w", err)
		}
	}

	summary := struct {
		RunID           string `yaml:"run_id"`
		Jurisdiction    string `yaml:"jurisdiction"`
		UserConstraints any    `yaml:"user_constraints,omitempty"`
		Requirements    any    `yaml:"requirements"`
	}{
		RunID:        result.RunID,
		Jurisdiction: result.Jurisdiction,
		Requirements: result.Requirements,
	}
	if result.UserConstraints != nil {
		summary.UserConstraints = result.UserConstraints
	}
	if err := writeYAML(filepath.Join(dir, "requirements.yaml"), summary); err != nil {
		return err
	}

	productNames := map[string]bool{}
	for _, product := range result.Products {
		path := filepath.Join(dir, "products", yamlName(productNames, product.Document))
		if err := writeYAML(path, product); err != nil {
			return err
		}
	}

	drawingNames := map[string]bool{}
	for _, drawing := range result.Drawings {
		path := filepath.Join(dir, "drawings", yamlName(drawingNames, drawing.Document))
		if err := writeYAML(path, drawing); err != nil {
			return err
		}
	}

	return nil
}

func writeYAML(path string, v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}

// yamlName swaps a document's extension for .yaml, keeping the base name
// so archive entries pair up with uploads. Uploads that collapse to the
// same base ("wall.pdf", "wall.dwg") get a numeric suffix; names already
// taken in used are never reused.
func yamlName(used map[string]bool, document string) string {
	base := filepath.Base(document)
	ext := filepath.Ext(base)
	if ext != "" {
		base = base[:len(base)-len(ext)]
	}
	name := base + ".yaml"
	for n := 2; used[name]; n++ {
		name = fmt.Sprintf("%s-%d.yaml", base, n)
	}
	used[name] = true
	return name
}

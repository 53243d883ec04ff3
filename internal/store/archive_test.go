package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gopkg.in/yaml.v3"

	"cscreen/internal/core"
	"cscreen/pkg/schema"
)

func sampleResult() *core.ScreeningResult {
	return &core.ScreeningResult{
		RunID:        "RUN-test123456",
		Jurisdiction: "en206",
		Requirements: schema.NewRequirementRecord(schema.ClauseVector{
			MaxWC:     schema.Float(0.45),
			MinCement: schema.Float(300),
		}, []string{"XC4"}),
		Products: []core.ProductResult{
			{
				Document: "epd-a.pdf",
				Verdict:  &schema.Verdict{Pass: true, Details: []string{"PASS: ok"}},
			},
			{
				Document: "epd-b.pdf",
				Error:    "provider exploded",
			},
		},
		Drawings: []core.DrawingResult{
			{Document: "wall.pdf", Constraints: &schema.DrawingConstraints{
				DrawingExposureClasses: []string{"XF1"},
			}},
		},
	}
}

func TestArchiveRun(t *testing.T) {
	outputDir := filepath.Join(t.TempDir(), "output")
	archiver := NewArchiver(outputDir)

	runDir, err := archiver.ArchiveRun(sampleResult())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(outputDir, "RUN-test123456"), runDir)

	// Requirements round-trip
	data, err := os.ReadFile(filepath.Join(runDir, "requirements.yaml"))
	require.NoError(t, err)
	var summary struct {
		RunID        string                   `yaml:"run_id"`
		Jurisdiction string                   `yaml:"jurisdiction"`
		Requirements schema.RequirementRecord `yaml:"requirements"`
	}
	require.NoError(t, yaml.Unmarshal(data, &summary))
	assert.Equal(t, "RUN-test123456", summary.RunID)
	require.NotNil(t, summary.Requirements.MaxWC)
	assert.Equal(t, 0.45, *summary.Requirements.MaxWC)
	assert.Equal(t, []string{"XC4"}, summary.Requirements.SourceExposureClasses)

	// Per-document files named after the uploads
	assert.FileExists(t, filepath.Join(runDir, "products", "epd-a.yaml"))
	assert.FileExists(t, filepath.Join(runDir, "products", "epd-b.yaml"))
	assert.FileExists(t, filepath.Join(runDir, "drawings", "wall.yaml"))

	// A failed document archives its error, not a verdict
	data, err = os.ReadFile(filepath.Join(runDir, "products", "epd-b.yaml"))
	require.NoError(t, err)
	var failed core.ProductResult
	require.NoError(t, yaml.Unmarshal(data, &failed))
	assert.Equal(t, "provider exploded", failed.Error)
	assert.Nil(t, failed.Verdict)
}

func TestArchiveRunDisambiguatesCollidingNames(t *testing.T) {
	result := sampleResult()
	result.Drawings = []core.DrawingResult{
		{Document: "wall.pdf", Constraints: &schema.DrawingConstraints{
			DrawingExposureClasses: []string{"XF1"},
		}},
		{Document: "wall.dwg", Error: "unreadable scan"},
	}

	outputDir := filepath.Join(t.TempDir(), "output")
	archiver := NewArchiver(outputDir)

	runDir, err := archiver.ArchiveRun(result)
	require.NoError(t, err)

	// Both drawings survive; neither overwrites the other.
	assert.FileExists(t, filepath.Join(runDir, "drawings", "wall.yaml"))
	assert.FileExists(t, filepath.Join(runDir, "drawings", "wall-2.yaml"))

	data, err := os.ReadFile(filepath.Join(runDir, "drawings", "wall.yaml"))
	require.NoError(t, err)
	var first core.DrawingResult
	require.NoError(t, yaml.Unmarshal(data, &first))
	assert.Equal(t, "wall.pdf", first.Document)

	data, err = os.ReadFile(filepath.Join(runDir, "drawings", "wall-2.yaml"))
	require.NoError(t, err)
	var second core.DrawingResult
	require.NoError(t, yaml.Unmarshal(data, &second))
	assert.Equal(t, "wall.dwg", second.Document)
	assert.Equal(t, "unreadable scan", second.Error)
}

func TestArchiveRunLeavesNoTempOnSuccess(t *testing.T) {
	outputDir := filepath.Join(t.TempDir(), "output")
	archiver := NewArchiver(outputDir)

	_, err := archiver.ArchiveRun(sampleResult())
	require.NoError(t, err)

	entries, err := os.ReadDir(outputDir)
	require.NoError(t, err)
	for _, entry := range entries {
		assert.NotContains(t, entry.Name(), ".tmp")
		assert.NotEqual(t, ".lock", entry.Name(), "lock released after archiving")
	}
}

func TestArchiveRunTwoRunsCoexist(t *testing.T) {
	outputDir := filepath.Join(t.TempDir(), "output")
	archiver := NewArchiver(outputDir)

	first := sampleResult()
	_, err := archiver.ArchiveRun(first)
	require.NoError(t, err)

	second := sampleResult()
	second.RunID = "RUN-second00001"
	_, err = archiver.ArchiveRun(second)
	require.NoError(t, err)

	assert.DirExists(t, filepath.Join(outputDir, "RUN-test123456"))
	assert.DirExists(t, filepath.Join(outputDir, "RUN-second00001"))
}

func TestFileLockBlocksSecondHolder(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".lock")

	first := NewFileLock(path, "RUN-one")
	require.NoError(t, first.Acquire())
	defer func() {
		_ = first.Release()
	}()

	second := NewFileLock(path, "RUN-two")
	err := second.Acquire()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "RUN-one")
}

func TestFileLockReleaseAllowsReacquire(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".lock")

	first := NewFileLock(path, "RUN-one")
	require.NoError(t, first.Acquire())
	require.NoError(t, first.Release())

	second := NewFileLock(path, "RUN-two")
	require.NoError(t, second.Acquire())
	require.NoError(t, second.Release())
}

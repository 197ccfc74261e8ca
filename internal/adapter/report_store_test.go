package adapter

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "unitgen.dev/pkg/unitgen/internal/model"
)

func TestLocalReportStore_RoundTrip(t *testing.T) {
	fs := afero.NewMemMapFs()
	store := NewReportStoreOn(fs)

	report := m.FinalReport{
		RunID:       "run-1",
		GeneratedAt: "2026-01-02T03:04:05.000Z",
		Summary:     m.ReportSummary{TotalTests: 2, PassedTests: 1, FailedTests: 1},
		FailedTests: []m.FailedTest{{TestFile: "a.test.js", TestName: "a fails", ErrorMessage: "boom"}},
		Generation:  m.RunCounters{FilesProcessed: 1, TestsGenerated: 1},
	}

	path, err := store.SaveReport("/out", report)
	require.NoError(t, err)
	assert.Equal(t, m.Path("/out/final-report.json"), path)

	loaded, err := store.LoadReport("/out")
	require.NoError(t, err)
	assert.Equal(t, report, loaded)
}

func TestLocalReportStore_EmptyFailedTests(t *testing.T) {
	fs := afero.NewMemMapFs()
	store := NewReportStoreOn(fs)

	_, err := store.SaveReport("/out", m.FinalReport{RunID: "run-1"})
	require.NoError(t, err)

	data, err := afero.ReadFile(fs, "/out/final-report.json")
	require.NoError(t, err)
	assert.Contains(t, string(data), `"failedTests": []`)
}

func TestLocalReportStore_LoadErrors(t *testing.T) {
	fs := afero.NewMemMapFs()
	store := NewReportStoreOn(fs)

	_, err := store.LoadReport("/missing")
	assert.ErrorContains(t, err, "failed to read report")

	require.NoError(t, afero.WriteFile(fs, "/bad/final-report.json", []byte("{"), 0o644))

	_, err = store.LoadReport("/bad")
	assert.ErrorContains(t, err, "failed to decode report")
}

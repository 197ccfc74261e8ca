package adapter

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/afero"
	m "unitgen.dev/pkg/unitgen/internal/model"
)

// FinalReportFileName is the file written inside the reports directory.
const FinalReportFileName = "final-report.json"

// ReportStore persists the final report of a run.
type ReportStore interface {
	// SaveReport writes report into dir and returns the written file path.
	SaveReport(dir m.Path, report m.FinalReport) (m.Path, error)
	// LoadReport reads the report previously saved into dir.
	LoadReport(dir m.Path) (m.FinalReport, error)
}

// LocalReportStore stores reports as indented JSON.
type LocalReportStore struct {
	fs afero.Fs
}

// NewReportStore constructs a LocalReportStore on the OS filesystem.
func NewReportStore() *LocalReportStore {
	return NewReportStoreOn(afero.NewOsFs())
}

// NewReportStoreOn constructs a LocalReportStore over fs.
func NewReportStoreOn(fs afero.Fs) *LocalReportStore {
	return &LocalReportStore{fs: fs}
}

// SaveReport writes <dir>/final-report.json.
func (s *LocalReportStore) SaveReport(dir m.Path, report m.FinalReport) (m.Path, error) {
	if err := s.fs.MkdirAll(string(dir), 0o755); err != nil {
		slog.Error("Failed to create reports directory", "dir", dir, "error", err)
		return "", fmt.Errorf("failed to create reports directory: %w", err)
	}

	if report.FailedTests == nil {
		report.FailedTests = []m.FailedTest{}
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode report: %w", err)
	}

	path := filepath.Join(string(dir), FinalReportFileName)
	if err := afero.WriteFile(s.fs, path, data, 0o644); err != nil {
		slog.Error("Failed to write report", "path", path, "error", err)
		return "", fmt.Errorf("failed to write report: %w", err)
	}

	return m.Path(path), nil
}

// LoadReport reads <dir>/final-report.json.
func (s *LocalReportStore) LoadReport(dir m.Path) (m.FinalReport, error) {
	path := filepath.Join(string(dir), FinalReportFileName)

	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return m.FinalReport{}, fmt.Errorf("failed to read report %s: %w", path, err)
	}

	var report m.FinalReport
	if err := json.Unmarshal(data, &report); err != nil {
		return m.FinalReport{}, fmt.Errorf("failed to decode report %s: %w", path, err)
	}

	return report, nil
}

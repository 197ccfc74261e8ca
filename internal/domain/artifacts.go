package domain

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/pmezard/go-difflib/difflib"
	"unitgen.dev/pkg/unitgen/internal/adapter"
	m "unitgen.dev/pkg/unitgen/internal/model"
)

const (
	generatedTestGlob = "*.test.js"
	// JestResultsFile is written next to the generated tests.
	JestResultsFile = ".jest-results.json"
)

// ArtifactName is the test file name of one exported function.
func ArtifactName(stem, functionName string) string {
	return fmt.Sprintf("%s.%s.test.js", stem, functionName)
}

// ArtifactWriter owns the generated directory for the duration of a run.
// Clean removes the previous run's files and remembers their content so
// Write can tell new, updated and unchanged artifacts apart.
type ArtifactWriter struct {
	fs       adapter.SourceFSAdapter
	dir      m.Path
	previous map[m.Path]string
}

// NewArtifactWriter creates an ArtifactWriter for dir.
func NewArtifactWriter(fs adapter.SourceFSAdapter, dir m.Path) *ArtifactWriter {
	return &ArtifactWriter{
		fs:       fs,
		dir:      dir,
		previous: map[m.Path]string{},
	}
}

// Dir returns the generated directory.
func (w *ArtifactWriter) Dir() m.Path {
	return w.dir
}

// Clean deletes every generated test file and the previous Jest results.
func (w *ArtifactWriter) Clean() error {
	matches, err := w.fs.Glob(filepath.Join(string(w.dir), generatedTestGlob))
	if err != nil {
		slog.Error("Failed to list generated tests", "dir", w.dir, "error", err)
		return fmt.Errorf("failed to list generated tests: %w", err)
	}

	for _, path := range matches {
		if content, readErr := w.fs.ReadFile(path); readErr == nil {
			w.previous[path] = string(content)
		}

		if err := w.fs.Remove(path); err != nil {
			slog.Error("Failed to remove generated test", "path", path, "error", err)
			return fmt.Errorf("failed to remove generated test: %w", err)
		}
	}

	if err := w.fs.Remove(w.fs.JoinPath(string(w.dir), JestResultsFile)); err != nil {
		slog.Error("Failed to remove jest results", "dir", w.dir, "error", err)
		return fmt.Errorf("failed to remove jest results: %w", err)
	}

	slog.Debug("Cleaned generated directory", "dir", w.dir, "removed", len(matches))

	return nil
}

// Write stores content under name and reports how it compares with the
// file removed by Clean.
func (w *ArtifactWriter) Write(name string, content string) (m.Path, m.ArtifactStatus, error) {
	path := w.fs.JoinPath(string(w.dir), name)

	if err := w.fs.WriteFile(path, []byte(content), 0o644); err != nil {
		slog.Error("Failed to write generated test", "path", path, "error", err)
		return path, "", fmt.Errorf("failed to write generated test: %w", err)
	}

	before, existed := w.previous[path]

	switch {
	case !existed:
		return path, m.ArtifactNew, nil
	case before == content:
		return path, m.ArtifactUnchanged, nil
	default:
		slog.Debug("Regenerated test changed", "path", path, "diff", unifiedDiff(string(path), before, content))
		return path, m.ArtifactUpdated, nil
	}
}

func unifiedDiff(name, before, after string) string {
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(before),
		B:        difflib.SplitLines(after),
		FromFile: name + " (previous)",
		ToFile:   name,
		Context:  2,
	})
	if err != nil {
		return ""
	}

	return diff
}

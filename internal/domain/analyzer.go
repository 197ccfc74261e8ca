// Package domain contains the UnitGen pipeline: static analysis of
// JavaScript sources, mock planning, test rendering and the generation
// workflow.
package domain

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"unitgen.dev/pkg/unitgen/internal/adapter"
	"unitgen.dev/pkg/unitgen/internal/domain/policy"
	m "unitgen.dev/pkg/unitgen/internal/model"
)

// Analyzer runs the static half of the pipeline on one source file.
type Analyzer interface {
	Analyze(ctx context.Context, path m.Path, src []byte) (m.FileAnalysis, error)
}

type analyzer struct {
	adapter.JSParserAdapter
	classifier policy.Classifier
	renderer   MockRenderer
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer(parser adapter.JSParserAdapter, classifier policy.Classifier, renderer MockRenderer) Analyzer {
	return &analyzer{
		JSParserAdapter: parser,
		classifier:      classifier,
		renderer:        renderer,
	}
}

// Analyze parses src and computes imports, usage, dependencies and the mock
// plan of every exported function. A file without exported functions
// returns ErrNoExportedFunctions together with the partial analysis.
func (a *analyzer) Analyze(ctx context.Context, path m.Path, src []byte) (m.FileAnalysis, error) {
	analysis := m.FileAnalysis{
		Path: path,
		Stem: sourceStem(path),
	}

	tree, err := a.Parse(ctx, src)
	if err != nil {
		slog.Error("Failed to parse source", "path", path, "error", err)
		return analysis, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	defer tree.Close()

	root := tree.RootNode()

	analysis.Functions = ExtractFunctions(root, src)
	analysis.Exported = ExportedFunctions(analysis.Functions)
	analysis.Imports = BuildImportMap(root, src)

	if len(analysis.Exported) == 0 {
		return analysis, fmt.Errorf("%s: %w", path, m.ErrNoExportedFunctions)
	}

	analysis.Usage = DetectUsage(root, src, analysis.Imports, analysis.Exported)
	analysis.Dependencies = ResolveDependencies(analysis.Imports, analysis.Usage)
	analysis.Plan = BuildMockPlan(analysis.Exported, analysis.Imports, analysis.Usage, analysis.Dependencies, a.classifier)
	analysis.Mocks = a.renderer.RenderPlan(analysis.Plan)
	analysis.Hints = make(map[string][]string, len(analysis.Plan))

	for fn, entries := range analysis.Plan {
		analysis.Hints[fn] = a.renderer.Hints(entries)
	}

	slog.Debug("Analyzed source",
		"path", path,
		"functions", len(analysis.Functions),
		"exported", m.FunctionNames(analysis.Exported),
		"imports", len(analysis.Imports),
	)

	return analysis, nil
}

func sourceStem(path m.Path) string {
	base := filepath.Base(string(path))
	return strings.TrimSuffix(base, filepath.Ext(base))
}

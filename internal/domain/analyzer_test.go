package domain

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"unitgen.dev/pkg/unitgen/internal/adapter"
	"unitgen.dev/pkg/unitgen/internal/domain/policy"
	m "unitgen.dev/pkg/unitgen/internal/model"
)

func newTestAnalyzer() Analyzer {
	return NewAnalyzer(
		adapter.NewTreeSitterJSParserAdapter(),
		policy.NewNodeBuiltins(),
		NewMockRenderer(policy.DefaultStandIns),
	)
}

func TestAnalyzer_Analyze(t *testing.T) {
	analysis, err := newTestAnalyzer().Analyze(context.Background(), "examples/mocks/loader.js", readExample(t, "mocks", "loader.js"))
	require.NoError(t, err)

	assert.Equal(t, "loader", analysis.Stem)
	assert.Equal(t, []string{"loadConfig"}, m.FunctionNames(analysis.Exported))
	assert.Equal(t, []string{"path", "fs", "axios"}, analysis.Dependencies["loadConfig"])
	require.Len(t, analysis.Plan["loadConfig"], 3)

	mocks := analysis.Mocks["loadConfig"]
	assert.Contains(t, mocks, `jest.mock("path", () => { const api = { join: jest.fn(() => "data/x.txt") }; return { ...api, default: api }; });`)
	assert.Contains(t, mocks, `jest.mock("fs", () => { const api = { readFileSync: jest.fn(() => "dummy file") }; return { ...api, default: api }; });`)
	assert.Contains(t, mocks, `jest.mock("axios", () => {`)

	assert.Equal(t, []string{
		"join -> 'data/x.txt'",
		"readFileSync -> 'dummy file'",
		"get -> { data: {} }",
	}, analysis.Hints["loadConfig"])
}

func TestAnalyzer_PureModule(t *testing.T) {
	analysis, err := newTestAnalyzer().Analyze(context.Background(), "examples/basic/math.js", readExample(t, "basic", "math.js"))
	require.NoError(t, err)

	assert.Equal(t, []string{"add", "subtract", "total"}, m.FunctionNames(analysis.Exported))
	assert.Len(t, analysis.Functions, 4)

	for _, name := range m.FunctionNames(analysis.Exported) {
		assert.Empty(t, analysis.Plan[name], name)
		assert.Empty(t, analysis.Mocks[name], name)
		assert.Empty(t, analysis.Hints[name], name)
	}
}

func TestAnalyzer_Errors(t *testing.T) {
	tests := []struct {
		name    string
		path    m.Path
		src     []byte
		wantErr error
	}{
		{"no exported functions", "constants.js", readExample(t, "nofunc", "constants.js"), m.ErrNoExportedFunctions},
		{"syntax error", "broken.js", readExample(t, "invalid", "broken.js"), m.ErrParse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			analysis, err := newTestAnalyzer().Analyze(context.Background(), tt.path, tt.src)

			require.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.path, analysis.Path)
			assert.Empty(t, analysis.Exported)
			assert.Nil(t, analysis.Plan)
		})
	}
}

func TestSourceStem(t *testing.T) {
	tests := []struct {
		path m.Path
		want string
	}{
		{"src/math.js", "math"},
		{"lib/api.client.mjs", "api.client"},
		{"index.JS", "index"},
		{"noext", "noext"},
	}

	for _, tt := range tests {
		t.Run(string(tt.path), func(t *testing.T) {
			assert.Equal(t, tt.want, sourceStem(tt.path))
		})
	}
}

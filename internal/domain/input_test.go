package domain

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"unitgen.dev/pkg/unitgen/internal/adapter"
	m "unitgen.dev/pkg/unitgen/internal/model"
)

func newMemFS(t *testing.T, files map[string]string) (afero.Fs, adapter.SourceFSAdapter) {
	t.Helper()

	memFS := afero.NewMemMapFs()
	for path, content := range files {
		require.NoError(t, afero.WriteFile(memFS, path, []byte(content), 0o644))
	}

	return memFS, adapter.NewSourceFSAdapter(memFS)
}

func TestResolveInput_Invalid(t *testing.T) {
	memFS, fs := newMemFS(t, map[string]string{
		"/project/readme.md": "# readme",
	})
	require.NoError(t, memFS.MkdirAll("/empty", 0o755))

	tests := []struct {
		name    string
		input   m.Path
		message string
	}{
		{"missing path", "", "Missing path. Usage: unitgen run <file-or-folder>"},
		{"blank path", "   ", "Missing path. Usage: unitgen run <file-or-folder>"},
		{"path does not exist", "/nope", "Path does not exist: /nope"},
		{"not a js file", "/project/readme.md", "Not a .js file: /project/readme.md"},
		{"folder without sources", "/empty", "No .js files found in folder: /empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel, err := ResolveInput(fs, tt.input, nil)

			require.ErrorIs(t, err, m.ErrInvalidInput)
			assert.Contains(t, err.Error(), tt.message)
			assert.Empty(t, sel.Files)
			assert.Equal(t, []m.Message{{Level: m.LevelError, Text: tt.message}}, sel.Messages)
		})
	}
}

func TestResolveInput_File(t *testing.T) {
	_, fs := newMemFS(t, map[string]string{
		"/project/src/math.js": "export function add(a, b) { return a + b; }",
	})

	sel, err := ResolveInput(fs, "/project/src/math.js", nil)
	require.NoError(t, err)

	assert.Equal(t, m.InputFile, sel.Kind)
	assert.Equal(t, []m.Path{"/project/src/math.js"}, sel.Files)
	assert.Equal(t, []m.Message{{Level: m.LevelInfo, Text: "Input: JavaScript file (/project/src/math.js)"}}, sel.Messages)
}

func TestResolveInput_Folder(t *testing.T) {
	files := map[string]string{
		"/project/package.json":                    "{}",
		"/project/src/b.js":                        "",
		"/project/src/a.js":                        "",
		"/project/src/nested/c.JS":                 "",
		"/project/src/notes.txt":                   "",
		"/project/node_modules/lib/index.js":       "",
		"/project/dist/bundle.js":                  "",
		"/project/lib/util.js":                     "",
		"/plain/index.js":                          "",
		"/plain/node_modules/ignored/index.js":     "",
		"/node_modules/project/src/inside.js":      "",
		"/node_modules/project/src/also/inside.js": "",
	}
	_, fs := newMemFS(t, files)

	t.Run("default ignores and package.json", func(t *testing.T) {
		sel, err := ResolveInput(fs, "/project", nil)
		require.NoError(t, err)

		assert.Equal(t, m.InputFolder, sel.Kind)
		assert.Equal(t, []m.Path{
			"/project/lib/util.js",
			"/project/src/a.js",
			"/project/src/b.js",
			"/project/src/nested/c.JS",
		}, sel.Files)
		assert.Equal(t, []m.Message{
			{Level: m.LevelInfo, Text: "Input: Node.js project folder (package.json found)"},
			{Level: m.LevelInfo, Text: "Discovered 4 .js file(s)."},
		}, sel.Messages)
	})

	t.Run("custom ignores replace the defaults", func(t *testing.T) {
		sel, err := ResolveInput(fs, "/project", []string{"src"})
		require.NoError(t, err)

		assert.Equal(t, []m.Path{
			"/project/dist/bundle.js",
			"/project/lib/util.js",
			"/project/node_modules/lib/index.js",
		}, sel.Files)
	})

	t.Run("plain folder warns", func(t *testing.T) {
		sel, err := ResolveInput(fs, "/plain", nil)
		require.NoError(t, err)

		assert.Equal(t, []m.Path{"/plain/index.js"}, sel.Files)
		assert.Equal(t, m.LevelWarn, sel.Messages[0].Level)
		assert.Equal(t, "No package.json found. Treating as a plain JS folder.", sel.Messages[0].Text)
	})

	t.Run("an ignored name as the root is still scanned", func(t *testing.T) {
		sel, err := ResolveInput(fs, "/node_modules", nil)
		require.NoError(t, err)

		assert.Len(t, sel.Files, 2)
	})
}

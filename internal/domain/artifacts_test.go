package domain

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "unitgen.dev/pkg/unitgen/internal/model"
)

func TestArtifactName(t *testing.T) {
	assert.Equal(t, "math.add.test.js", ArtifactName("math", "add"))
}

func TestArtifactWriter_Clean(t *testing.T) {
	memFS, fs := newMemFS(t, map[string]string{
		"/out/math.add.test.js":    "old",
		"/out/math.sub.test.js":    "old",
		"/out/.jest-results.json":  "{}",
		"/out/helpers.js":          "keep",
		"/out/nested/deep.test.js": "keep",
		"/elsewhere/other.test.js": "keep",
	})

	writer := NewArtifactWriter(fs, "/out")
	require.NoError(t, writer.Clean())

	for _, gone := range []string{"/out/math.add.test.js", "/out/math.sub.test.js", "/out/.jest-results.json"} {
		exists, err := afero.Exists(memFS, gone)
		require.NoError(t, err)
		assert.False(t, exists, gone)
	}

	for _, kept := range []string{"/out/helpers.js", "/out/nested/deep.test.js", "/elsewhere/other.test.js"} {
		exists, err := afero.Exists(memFS, kept)
		require.NoError(t, err)
		assert.True(t, exists, kept)
	}
}

func TestArtifactWriter_CleanMissingDir(t *testing.T) {
	_, fs := newMemFS(t, nil)

	require.NoError(t, NewArtifactWriter(fs, "/missing").Clean())
}

func TestArtifactWriter_Write(t *testing.T) {
	memFS, fs := newMemFS(t, map[string]string{
		"/out/math.add.test.js": "same",
		"/out/math.sub.test.js": "before",
	})

	writer := NewArtifactWriter(fs, "/out")
	require.NoError(t, writer.Clean())

	tests := []struct {
		name    string
		file    string
		content string
		want    m.ArtifactStatus
	}{
		{"unchanged", "math.add.test.js", "same", m.ArtifactUnchanged},
		{"updated", "math.sub.test.js", "after", m.ArtifactUpdated},
		{"new", "math.mul.test.js", "fresh", m.ArtifactNew},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, status, err := writer.Write(tt.file, tt.content)
			require.NoError(t, err)

			assert.Equal(t, m.Path("/out/"+tt.file), path)
			assert.Equal(t, tt.want, status)

			data, err := afero.ReadFile(memFS, string(path))
			require.NoError(t, err)
			assert.Equal(t, tt.content, string(data))
		})
	}
}

func TestUnifiedDiff(t *testing.T) {
	diff := unifiedDiff("a.test.js", "one\ntwo\n", "one\nthree\n")

	assert.Contains(t, diff, "-two")
	assert.Contains(t, diff, "+three")
}

package adapter

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	m "unitgen.dev/pkg/unitgen/internal/model"
)

func TestLocalSourceFSAdapter_ReadWrite(t *testing.T) {
	fsAdapter := NewSourceFSAdapter(afero.NewMemMapFs())

	path := m.Path("/out/deep/nested/a.test.js")
	require.NoError(t, fsAdapter.WriteFile(path, []byte("content"), 0o644))

	assert.True(t, fsAdapter.Exists(path))

	got, err := fsAdapter.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "content", string(got))

	info, err := fsAdapter.FileInfo("/out/deep")
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestLocalSourceFSAdapter_Remove(t *testing.T) {
	fsAdapter := NewSourceFSAdapter(afero.NewMemMapFs())
	require.NoError(t, fsAdapter.WriteFile("/a.js", []byte("x"), 0o644))

	require.NoError(t, fsAdapter.Remove("/a.js"))
	assert.False(t, fsAdapter.Exists("/a.js"))

	require.NoError(t, fsAdapter.Remove("/a.js"))
}

func TestLocalSourceFSAdapter_GlobAndWalk(t *testing.T) {
	fs := afero.NewMemMapFs()
	fsAdapter := NewSourceFSAdapter(fs)

	for _, p := range []string{"/gen/a.test.js", "/gen/b.test.js", "/gen/helper.js", "/gen/sub/c.test.js"} {
		require.NoError(t, afero.WriteFile(fs, p, []byte("x"), 0o644))
	}

	matches, err := fsAdapter.Glob("/gen/*.test.js")
	require.NoError(t, err)
	assert.Equal(t, []m.Path{"/gen/a.test.js", "/gen/b.test.js"}, matches)

	var files []string

	err = fsAdapter.Walk("/gen", func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if !info.IsDir() {
			files = append(files, path)
		}

		return nil
	})
	require.NoError(t, err)

	sort.Strings(files)
	assert.Equal(t, []string{"/gen/a.test.js", "/gen/b.test.js", "/gen/helper.js", "/gen/sub/c.test.js"}, files)
}

func TestLocalSourceFSAdapter_Paths(t *testing.T) {
	fsAdapter := NewLocalSourceFSAdapter()

	rel, err := fsAdapter.RelPath("/project/tests/generated", "/project/src/math.js")
	require.NoError(t, err)
	assert.Equal(t, m.Path(filepath.FromSlash("../../src/math.js")), rel)

	abs, err := fsAdapter.AbsPath("src")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(string(abs)))

	assert.Equal(t, m.Path(filepath.Join("a", "b", "c.js")), fsAdapter.JoinPath("a", "b", "c.js"))
}

package store

import (
	"path/filepath"
	"testing"

	"github.com/metal-toolbox/cookiejar/app"
	"github.com/metal-toolbox/cookiejar/pkg/types"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testStore runs the assignment semantics every backend shares.
func testStore(t *testing.T, s Store) {
	t.Helper()

	got, err := s.Read()
	require.NoError(t, err)
	assert.Equal(t, "", got)

	require.NoError(t, s.Write("theme=dark"))
	require.NoError(t, s.Write("lang=en; path=/"))

	got, err = s.Read()
	require.NoError(t, err)
	assert.Equal(t, "theme=dark; lang=en", got)

	require.NoError(t, s.Write("theme=light"))

	got, err = s.Read()
	require.NoError(t, err)
	assert.Equal(t, "theme=light; lang=en", got)

	require.NoError(t, s.Write("theme="))

	got, err = s.Read()
	require.NoError(t, err)
	assert.Equal(t, "lang=en", got)
}

func TestMemory(t *testing.T) {
	testStore(t, NewMemory(""))
}

func TestMemoryInjectedErrors(t *testing.T) {
	m := NewMemory("a=1")
	m.ReadErr = errors.New("blocked")
	m.WriteErr = errors.New("blocked")

	_, err := m.Read()
	assert.True(t, errors.Is(err, ErrStoreAccess))

	err = m.Write("b=2")
	assert.True(t, errors.Is(err, ErrStoreAccess))

	m.ReadErr = nil

	got, err := m.Read()
	require.NoError(t, err)
	assert.Equal(t, "a=1", got)
}

func TestFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/var/lib/cookiejar", 0o755))

	testStore(t, NewFile(fs, "/var/lib/cookiejar/cookies.txt"))

	// a second instance on the same path sees the persisted jar
	got, err := NewFile(fs, "/var/lib/cookiejar/cookies.txt").Read()
	require.NoError(t, err)
	assert.Equal(t, "lang=en", got)

	// no temporary files are left behind
	entries, err := afero.ReadDir(fs, "/var/lib/cookiejar")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "cookies.txt", entries[0].Name())
}

func TestFileCreatesParentDirectory(t *testing.T) {
	cases := []struct {
		name string
		fs   afero.Fs
		path string
	}{
		{"memory fs", afero.NewMemMapFs(), "/home/user/.config/cookiejar/cookies.txt"},
		{"os fs", afero.NewOsFs(), filepath.Join(t.TempDir(), "config", "cookiejar", "cookies.txt")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := NewFile(tc.fs, tc.path)

			require.NoError(t, f.Write("theme=dark"))

			exists, err := afero.DirExists(tc.fs, filepath.Dir(tc.path))
			require.NoError(t, err)
			assert.True(t, exists)

			got, err := f.Read()
			require.NoError(t, err)
			assert.Equal(t, "theme=dark", got)
		})
	}
}

func TestFileReadOnly(t *testing.T) {
	base := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(base, "/cookies.txt", []byte("a=1\n"), fileMode))

	f := NewFile(afero.NewReadOnlyFs(base), "/cookies.txt")

	got, err := f.Read()
	require.NoError(t, err)
	assert.Equal(t, "a=1", got)

	err = f.Write("b=2")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrStoreAccess))
}

func TestAccessErrorKeepsCause(t *testing.T) {
	cause := errors.New("permission denied")

	err := accessError(cause, "file write")

	assert.True(t, errors.Is(err, ErrStoreAccess))
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, cause, errors.Cause(err))
	assert.Equal(t, "cookie store access error: file write: permission denied", err.Error())
}

func TestNewUnsupportedKind(t *testing.T) {
	_, _, err := New(&app.Configuration{StoreKind: "redis"})
	assert.True(t, errors.Is(err, errStoreKind))
}

func TestNewMemory(t *testing.T) {
	s, closeFn, err := New(&app.Configuration{StoreKind: types.StoreKindMemory})
	require.NoError(t, err)
	defer closeFn()

	assert.IsType(t, &Memory{}, s)
}

func TestNewFile(t *testing.T) {
	s, closeFn, err := New(&app.Configuration{
		StoreKind:   types.StoreKindFile,
		FileOptions: &app.FileOptions{Path: t.TempDir() + "/cookies.txt"},
	})
	require.NoError(t, err)
	defer closeFn()

	testStore(t, s)
}

func TestNewDocumentUnavailable(t *testing.T) {
	_, _, err := New(&app.Configuration{StoreKind: types.StoreKindDocument})
	assert.True(t, errors.Is(err, ErrStoreAccess))
}

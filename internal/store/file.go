package store

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/metal-toolbox/cookiejar/internal/jar"
	"github.com/spf13/afero"
)

const (
	fileMode = 0o600
	dirMode  = 0o700
)

// File keeps the aggregate cookie string in a single file.
type File struct {
	mu   sync.Mutex
	fs   afero.Fs
	path string
}

// NewFile returns a File store backed by path on fs. The file is created on
// the first write.
func NewFile(fs afero.Fs, path string) *File {
	return &File{fs: fs, path: path}
}

func (f *File) Read() (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.read()
}

func (f *File) Write(fragment string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	current, err := f.read()
	if err != nil {
		return err
	}

	j := jar.Parse(current)
	j.Apply(fragment)

	dir := filepath.Dir(f.path)
	if err := f.fs.MkdirAll(dir, dirMode); err != nil {
		return accessError(err, "file mkdir")
	}

	// write a sibling and rename it over the target
	tmp := filepath.Join(dir, "."+filepath.Base(f.path)+"."+uuid.NewString())

	if err := afero.WriteFile(f.fs, tmp, []byte(j.String()+"\n"), fileMode); err != nil {
		return accessError(err, "file write")
	}

	if err := f.fs.Rename(tmp, f.path); err != nil {
		_ = f.fs.Remove(tmp)
		return accessError(err, "file rename")
	}

	return nil
}

func (f *File) read() (string, error) {
	b, err := afero.ReadFile(f.fs, f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}

		return "", accessError(err, "file read")
	}

	return strings.TrimSpace(string(b)), nil
}

package filesystem

import (
	"io"
	"os"
)

// GacheFs lets gache caches persist through whatever backend is active at call time,
// so a cache created at init still honours SetMemMapFs in tests.
type GacheFs struct{}

func (GacheFs) OpenFile(name string, flag int, perm os.FileMode) (io.ReadWriteCloser, error) {
	return backend.OpenFile(name, flag, perm)
}

func (GacheFs) MkdirAll(path string, perm os.FileMode) error {
	return backend.MkdirAll(path, perm)
}

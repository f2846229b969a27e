package util

import (
	"io"
	"os"
	"path/filepath"

	"github.com/layervue/create-layervue/filesystem"
	"github.com/samber/lo"
	"github.com/spf13/afero"
)

// Exists reports whether anything is present at path.
func Exists(path string) (bool, error) {
	return filesystem.API().Exists(path)
}

// Delete recursively removes a file or directory.
func Delete(path string) error {
	fs := filesystem.API()
	stat, err := fs.Stat(path)
	if err != nil {
		return err
	}

	if stat.IsDir() {
		return fs.RemoveAll(path)
	}
	return fs.Remove(path)
}

// Empty removes everything below path and then path itself. A missing path is not an error.
func Empty(path string) error {
	exists, err := Exists(path)
	if err != nil || !exists {
		return err
	}
	return filesystem.API().RemoveAll(path)
}

// Copy recursively copies the contents of src into the existing directory dst.
// Files whose base name is listed in exclude are skipped at every depth.
// Symbolic links are followed and their targets copied.
func Copy(src, dst string, exclude []string) error {
	fs := filesystem.API()

	entries, err := fs.ReadDir(src)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		from := filepath.Join(src, entry.Name())
		to := filepath.Join(dst, entry.Name())

		// ReadDir reports symlinks themselves; follow them like any other entry.
		if entry.Mode()&os.ModeSymlink != 0 {
			if entry, err = fs.Stat(from); err != nil {
				return err
			}
		}

		if entry.IsDir() {
			if err := fs.Mkdir(to, entry.Mode().Perm()|0o700); err != nil {
				return err
			}
			if err := Copy(from, to, exclude); err != nil {
				return err
			}
			continue
		}

		if lo.Contains(exclude, entry.Name()) {
			continue
		}

		if err := copyFile(fs, from, to, entry.Mode().Perm()); err != nil {
			return err
		}
	}

	return nil
}

func copyFile(fs afero.Afero, from, to string, perm os.FileMode) error {
	in, err := fs.Open(from)
	if err != nil {
		return err
	}
	defer Ignore(in.Close)

	out, err := fs.OpenFile(to, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

package fileutil

import (
	"errors"
	"os"
	"path/filepath"
)

// ErrExists is returned by AtomicWriteFile when the file exists and
// overwrite is false.
var ErrExists = errors.New("file already exists")

// AtomicWriteFile writes data to a file atomically, creating missing parent
// directories. It returns true if the file was created.
func AtomicWriteFile(filename string, data []byte, perm os.FileMode, overwrite bool) (bool, error) {
	_, err := os.Stat(filename)
	created := os.IsNotExist(err)
	if !created && !overwrite {
		return false, ErrExists
	}

	dir, name := filepath.Split(filename)
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return false, err
	}

	tmpfile, err := os.CreateTemp(dir, name+".*.tmp")
	if err != nil {
		return false, err
	}
	defer os.Remove(tmpfile.Name()) // no-op once renamed

	if _, err := tmpfile.Write(data); err != nil {
		tmpfile.Close()
		return false, err
	}
	if err := tmpfile.Sync(); err != nil {
		tmpfile.Close()
		return false, err
	}
	if err := tmpfile.Close(); err != nil {
		return false, err
	}

	if err := os.Chmod(tmpfile.Name(), perm); err != nil {
		return false, err
	}

	if err := os.Rename(tmpfile.Name(), filename); err != nil {
		return false, err
	}
	return created, nil
}

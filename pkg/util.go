package pkg

import (
	"fmt"
	"os"
)

// PathExists returns whether the given file or directory exists
func PathExists(path string, isDir bool) (bool, error) {
	stat, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	if isDir && !stat.IsDir() {
		return false, &os.PathError{Op: "stat", Path: path, Err: errNotADirectory}
	}
	if !isDir && stat.IsDir() {
		return false, &os.PathError{Op: "stat", Path: path, Err: errIsADirectory}
	}
	return true, nil
}

// RequireFile fails unless path is an existing regular file. name is the input it is
// reported as, e.g. "daily activity csv".
func RequireFile(path, name string) error {
	if path == "" {
		return fmt.Errorf("%s: %w", name, ErrPathNotSet)
	}
	exists, err := PathExists(path, false)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	if !exists {
		return fmt.Errorf("%s [%s]: %w", name, path, os.ErrNotExist)
	}
	return nil
}

package util

import (
	"os"
)

// CheckFileExists reports whether fpath can be stat'ed.
func CheckFileExists(fpath string) bool {
	_, e := os.Stat(fpath)
	return e == nil
}

// EnsureDir creates path and any missing parents with 0o755 permissions.
func EnsureDir(path string) error {
	if err := os.MkdirAll(path, 0o755); err != nil {
		log.WithError(err).WithField("path", path).Error("Could not create directory")
		return err
	}
	return nil
}

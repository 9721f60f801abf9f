package test

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/google/uuid"
)

// TmpFile returns the path to a unique file to be used in tests
func TmpFile(t *testing.T) string {
	dir := t.TempDir()
	return filepath.Join(dir, uuid.New().String())
}

// testdataDir returns the testdata directory of the importer package.
func testdataDir(t *testing.T) string {
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("could not determine the path of the test package")
	}

	return filepath.Join(filepath.Dir(file), "..", "pkg", "importer", "testdata")
}

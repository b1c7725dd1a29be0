package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/exporter/pkg/errors"
)

// CreateFile creates a file with the given content in the specified directory.
// It fails the test if the file cannot be created.
func CreateFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)

	// Create parent directories if needed
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create parent directories for %s: %v", path, err)
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create file %s: %v", path, err)
	}

	return path
}

// AssertPanicCode runs fn and fails the test unless it panics with an
// ExporterError carrying code. It returns the recovered error.
func AssertPanicCode(t *testing.T, code errors.ErrorCode, fn func()) (recovered *errors.ExporterError) {
	t.Helper()

	defer func() {
		r := recover()
		if r == nil {
			t.Errorf("expected panic with code %s, got none", code)
			return
		}
		err, ok := r.(*errors.ExporterError)
		if !ok {
			t.Errorf("expected panic with *ExporterError, got %T: %v", r, r)
			return
		}
		if err.Code != code {
			t.Errorf("expected panic with code %s, got %s", code, err.Code)
		}
		recovered = err
	}()

	fn()
	return nil
}

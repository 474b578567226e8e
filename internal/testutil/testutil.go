// Package testutil provides fixtures shared by the go-afp package tests.
//
// Fixture files get random names so tests that share a directory never
// collide. All helpers call t.Fatalf on setup failure.
package testutil

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/pkg/xattr"
)

// TempFile creates a regular file with the given contents in a per-test
// directory and returns its path.
func TempFile(t testing.TB, contents []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), uuid.NewString()+".dat")
	if err := os.WriteFile(path, contents, 0o644); err != nil {
		t.Fatalf("creating fixture %s: %v", path, err)
	}
	return path
}

// MissingPath returns a path in a per-test directory that does not exist.
func MissingPath(t testing.TB) string {
	t.Helper()
	return filepath.Join(t.TempDir(), uuid.NewString())
}

// RequireXattrs skips the test when the filesystem holding path does not
// accept user extended attributes.
func RequireXattrs(t testing.TB, path string) {
	t.Helper()
	if !xattr.XATTR_SUPPORTED {
		t.Skip("extended attributes are not supported on this platform")
	}
	const probe = "user.go-afp.probe"
	if err := xattr.Set(path, probe, []byte{1}); err != nil {
		if errors.Is(err, errors.ErrUnsupported) || errors.Is(err, fs.ErrPermission) {
			t.Skipf("filesystem does not support user extended attributes: %v", err)
		}
		t.Fatalf("probing extended attributes on %s: %v", path, err)
	}
	_ = xattr.Remove(path, probe)
}

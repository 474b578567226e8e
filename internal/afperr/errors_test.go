package afperr

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{name: "bare kind", err: NoMetadata, want: NoMetadata},
		{name: "wrapped kind", err: fmt.Errorf("reading: %w", DataCorrupt), want: DataCorrupt},
		{name: "afp error", err: New("open", "/x", BadDescriptor), want: BadDescriptor},
		{name: "not exist", err: fs.ErrNotExist, want: NotFound},
		{name: "permission", err: fs.ErrPermission, want: PermissionDenied},
		{name: "closed file", err: os.ErrClosed, want: BadDescriptor},
		{name: "path error", err: &fs.PathError{Op: "open", Path: "/x", Err: fs.ErrNotExist}, want: NotFound},
		{name: "unknown", err: errors.New("boom"), want: Io},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestKindOfNil(t *testing.T) {
	assert.Equal(t, Kind(0), KindOf(nil))
	assert.False(t, IsKind(nil, Io))
}

func TestErrorMatchesKind(t *testing.T) {
	err := WrapKind("read", "/tmp/file", DataCorrupt, errors.New("short record"))

	assert.True(t, errors.Is(err, DataCorrupt))
	assert.False(t, errors.Is(err, NoMetadata))
	assert.Contains(t, err.Error(), "read /tmp/file")
	assert.Contains(t, err.Error(), "data corrupt")
	assert.Contains(t, err.Error(), "short record")
}

func TestWrapPreservesExistingKind(t *testing.T) {
	inner := New("", "", NoMetadata)
	err := Wrap("open", "/tmp/file", fmt.Errorf("side-car: %w", inner))

	var e *Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, NoMetadata, e.Kind)
	assert.Equal(t, "open", e.Op)
	assert.Equal(t, "/tmp/file", e.Path)
}

func TestWrapLeavesSharedErrorUntouched(t *testing.T) {
	shared := New("", "", NoMetadata)

	first := Wrap("open", "/tmp/a", shared)
	second := Wrap("read", "/tmp/b", shared)

	var e *Error
	require.True(t, errors.As(shared, &e))
	assert.Empty(t, e.Op)
	assert.Empty(t, e.Path)

	require.True(t, errors.As(first, &e))
	assert.Equal(t, "open", e.Op)
	assert.Equal(t, "/tmp/a", e.Path)

	require.True(t, errors.As(second, &e))
	assert.Equal(t, "read", e.Op)
	assert.Equal(t, "/tmp/b", e.Path)
	assert.True(t, errors.Is(second, NoMetadata))
}

func TestWrapNil(t *testing.T) {
	assert.NoError(t, Wrap("open", "/x", nil))
}

func TestWrapClassifiesSyscallErrors(t *testing.T) {
	err := Wrap("open", "/missing", &fs.PathError{Op: "open", Path: "/missing", Err: syscall.ENOENT})
	assert.True(t, errors.Is(err, NotFound))
	assert.True(t, errors.Is(err, syscall.ENOENT))
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "no metadata", NoMetadata.String())
	assert.Equal(t, "error kind 99", Kind(99).Error())
}

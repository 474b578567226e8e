package filetype

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deploymenttheory/go-afp/internal/afperr"
	"github.com/deploymenttheory/go-afp/internal/sidecar"
	"github.com/deploymenttheory/go-afp/internal/types"
	"github.com/deploymenttheory/go-afp/pkg/app"
	"github.com/deploymenttheory/go-afp/pkg/services"
)

func newTestContext(t *testing.T) *app.Context {
	t.Helper()
	p := sidecar.Platform{
		GOOS:             "test",
		FinderInfo:       sidecar.Key{Kind: types.SidecarStream, Name: ":FinderInfo"},
		FinderInfoFormat: types.FormatPlain,
	}
	ctx := app.NewContext()
	ctx.Stderr = &bytes.Buffer{}
	ctx.Services = services.NewServiceFactory(services.Config{Platform: &p})
	return ctx
}

func newFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
	return path
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		request  Request
		wantErr  bool
		wantType uint8
		wantAux  uint16
	}{
		{"mnemonic", Request{Path: "f", ProDOS: "TXT"}, false, 0x04, 0},
		{"hex with aux", Request{Path: "f", ProDOS: "$FF/$2000"}, false, 0xFF, 0x2000},
		{"decimal with 0x aux", Request{Path: "f", ProDOS: "6/0x0800"}, false, 0x06, 0x0800},
		{"type and creator", Request{Path: "f", FileType: "TEXT", Creator: "ttxt"}, false, 0, 0},
		{"creator only", Request{Path: "f", Creator: "ttxt"}, false, 0, 0},
		{"clear", Request{Path: "f", Clear: true}, false, 0, 0},
		{"no path", Request{ProDOS: "TXT"}, true, 0, 0},
		{"nothing to do", Request{Path: "f"}, true, 0, 0},
		{"conflicting", Request{Path: "f", ProDOS: "TXT", FileType: "TEXT"}, true, 0, 0},
		{"type too large", Request{Path: "f", ProDOS: "$100"}, true, 0, 0},
		{"aux too large", Request{Path: "f", ProDOS: "$04/$10000"}, true, 0, 0},
		{"short code", Request{Path: "f", FileType: "TXT"}, true, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.wantErr {
				var common *app.CommonError
				require.ErrorAs(t, err, &common)
				assert.Equal(t, app.ErrCodeInvalidInput, common.Code)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantType, tt.request.prodosType)
			assert.Equal(t, tt.wantAux, tt.request.prodosAux)
		})
	}
}

func TestHandle(t *testing.T) {
	ctx := newTestContext(t)
	path := newFile(t)

	resp, err := Handle(ctx, &Request{Path: path, ProDOS: "SRC"})
	require.NoError(t, err)
	assert.Equal(t, ActionSetProDOS, resp.Action)
	assert.Equal(t, "p\\xb0\\x00\\x00", resp.FileType)
	assert.Equal(t, "pdos", resp.Creator)
	assert.True(t, resp.IsText)

	resp, err = Handle(ctx, &Request{Path: path, FileType: "TEXT"})
	require.NoError(t, err)
	assert.Equal(t, ActionSetTypeCreator, resp.Action)
	assert.Equal(t, "TEXT", resp.FileType)
	assert.Equal(t, "pdos", resp.Creator, "creator is kept")
	assert.Equal(t, uint16(0x04), resp.ProDOSFileType)

	resp, err = Handle(ctx, &Request{Path: path, Clear: true})
	require.NoError(t, err)
	assert.Equal(t, ActionClear, resp.Action)

	raw, err := os.ReadFile(path + ":FinderInfo")
	require.NoError(t, err)
	assert.Equal(t, make([]byte, types.FinderInfoSize), raw)
}

func TestHandleMissingFile(t *testing.T) {
	ctx := newTestContext(t)
	_, err := Handle(ctx, &Request{Path: filepath.Join(t.TempDir(), "missing"), ProDOS: "TXT"})

	var common *app.CommonError
	require.ErrorAs(t, err, &common)
	assert.Equal(t, app.ErrCodeNotFound, common.Code)
	assert.True(t, errors.Is(err, afperr.NotFound))
}

func TestFormatOutput(t *testing.T) {
	resp := &Response{Path: "f", Action: ActionSetProDOS, FileType: "TEXT", Creator: "pdos", ProDOSType: "TXT"}

	var buf bytes.Buffer
	require.NoError(t, FormatOutput(&buf, resp, "table"))
	assert.Equal(t, "f: TEXT/pdos (ProDOS TXT $0000)\n", buf.String())

	buf.Reset()
	require.NoError(t, FormatOutput(&buf, resp, "json"))
	assert.Contains(t, buf.String(), `"file_type": "TEXT"`)

	buf.Reset()
	require.NoError(t, FormatOutput(&buf, resp, "yaml"))
	assert.Contains(t, buf.String(), "prodos_type: TXT")

	buf.Reset()
	require.NoError(t, FormatOutput(&buf, &Response{Path: "f", Action: ActionClear}, "table"))
	assert.Equal(t, "f: finder info cleared\n", buf.String())

	assert.Error(t, FormatOutput(&buf, resp, "csv"))
}

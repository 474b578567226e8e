package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deploymenttheory/go-afp/internal/testutil"
	"github.com/deploymenttheory/go-afp/pkg/app/info"
)

// resetFlags restores every flag to its default so commands can be executed
// repeatedly in one process.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, child := range c.Commands() {
		resetFlags(child)
	}
}

func executeCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)
	t.Setenv("HOME", t.TempDir())

	var stdout, stderr bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)

	err := rootCmd.Execute()
	return stdout.String(), err
}

func TestRootHelp(t *testing.T) {
	out, err := executeCommand(t, "", "--help")
	require.NoError(t, err)
	for _, name := range []string{"info", "settype", "clear", "rsrc"} {
		assert.Contains(t, out, name)
	}
}

func TestInvalidConfig(t *testing.T) {
	_, err := executeCommand(t, "", "--fork-backend", "tape", "rsrc", "size", "whatever")
	assert.Error(t, err)
}

func TestSettypeRequiresAFlag(t *testing.T) {
	_, err := executeCommand(t, "", "settype", testutil.TempFile(t, nil))
	assert.Error(t, err)

	_, err = executeCommand(t, "", "settype", "--prodos", "TXT", "--type", "TEXT", testutil.TempFile(t, nil))
	assert.Error(t, err)
}

func TestSettypeAndInfo(t *testing.T) {
	path := testutil.TempFile(t, []byte("PRODOS"))
	testutil.RequireXattrs(t, path)

	out, err := executeCommand(t, "", "settype", path, "--prodos", "SYS/$2000")
	require.NoError(t, err)
	assert.Contains(t, out, "ProDOS SYS $2000")

	out, err = executeCommand(t, "", "info", "-o", "json", path)
	require.NoError(t, err)

	var resp info.Response
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	require.Len(t, resp.Files, 1)
	assert.Equal(t, "SYS", resp.Files[0].ProDOSType)
	assert.Equal(t, uint32(0x2000), resp.Files[0].ProDOSAuxType)
	assert.Equal(t, info.ClassBinary, resp.Files[0].Class)

	_, err = executeCommand(t, "", "clear", "-q", path)
	require.NoError(t, err)

	out, err = executeCommand(t, "", "info", "-o", "json", path)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, info.ClassUntyped, resp.Files[0].Class)
}

func TestRsrcCommands(t *testing.T) {
	path := testutil.TempFile(t, nil)
	testutil.RequireXattrs(t, path)

	out, err := executeCommand(t, "resource data", "rsrc", "put", path)
	require.NoError(t, err)
	assert.Contains(t, out, "wrote 13 bytes")

	out, err = executeCommand(t, "", "rsrc", "size", path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "13\t"), out)

	out, err = executeCommand(t, "", "rsrc", "cat", path)
	require.NoError(t, err)
	assert.Equal(t, "resource data", out)

	_, err = executeCommand(t, "", "rsrc", "truncate", path, "0")
	require.NoError(t, err)

	out, err = executeCommand(t, "", "-o", "json", "rsrc", "size", path)
	require.NoError(t, err)
	assert.Contains(t, out, `"size": 0`)

	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, contents, "the data fork is untouched")
}

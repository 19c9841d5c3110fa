package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridpad-labs/gridpad-cli/internal/core/services"
)

// runNormalizeCmd executes the normalize command with the given stdin
// and arguments, returning captured output.
func runNormalizeCmd(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	oldNormalizer := normalizerService
	normalizerService = services.NewNormalizer()
	defer func() { normalizerService = oldNormalizer }()

	normalizeFormat = "" // flag values persist across executions

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(append([]string{"normalize"}, args...))
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestNormalizeCmd_JSONFormat(t *testing.T) {
	out, err := runNormalizeCmd(t, "name,age\nada,36", "--format", "json")

	require.NoError(t, err)
	assert.Contains(t, out, `"data":[["name","age"],["ada","36"]]`)
}

func TestNormalizeCmd_PrettyFormat(t *testing.T) {
	out, err := runNormalizeCmd(t, "a\tb", "--format", "pretty")

	require.NoError(t, err)
	assert.Contains(t, out, "\"data\": [\n")
}

func TestNormalizeCmd_TableFormat(t *testing.T) {
	out, err := runNormalizeCmd(t, "name\tage\nada\t36", "--format", "table")

	require.NoError(t, err)
	assert.Contains(t, out, "name  age")
	assert.Contains(t, out, "2 rows × 2 columns")
}

func TestNormalizeCmd_HTMLFormat(t *testing.T) {
	out, err := runNormalizeCmd(t, "a,b\nc,d", "--format", "html")

	require.NoError(t, err)
	assert.Contains(t, out, "<th>a</th><th>b</th>")
	assert.Contains(t, out, "<td>c</td><td>d</td>")
}

func TestNormalizeCmd_BlankInput(t *testing.T) {
	out, err := runNormalizeCmd(t, "   \n  ", "--format", "table")

	require.NoError(t, err)
	assert.Contains(t, out, "No table data.")
}

func TestNormalizeCmd_EmptyTableJSONFails(t *testing.T) {
	_, err := runNormalizeCmd(t, `{"data": []}`, "--format", "json")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no valid table data found")
}

func TestNormalizeCmd_UnknownFormat(t *testing.T) {
	_, err := runNormalizeCmd(t, "a,b", "--format", "yaml")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

func TestNormalizeCmd_ReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.csv")
	require.NoError(t, os.WriteFile(path, []byte("x,y\n1,2"), 0600))

	out, err := runNormalizeCmd(t, "", "--format", "json", path)

	require.NoError(t, err)
	assert.Contains(t, out, `[["x","y"],["1","2"]]`)
}

func TestNormalizeCmd_MissingService(t *testing.T) {
	oldNormalizer := normalizerService
	normalizerService = nil
	defer func() { normalizerService = oldNormalizer }()

	rootCmd.SetOut(new(bytes.Buffer))
	rootCmd.SetErr(new(bytes.Buffer))
	rootCmd.SetIn(strings.NewReader("a,b"))
	rootCmd.SetArgs([]string{"normalize", "--format", "json"})
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
	}()

	err := rootCmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}

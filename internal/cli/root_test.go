package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/clampvec/internal/testutil"
)

var testStart = time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

// testOptions returns root options with deterministic clock, IDs and suffixes.
func testOptions() *RootOptions {
	return &RootOptions{
		Now:    testutil.NewStepClock(testStart, time.Second).Now,
		IDs:    testutil.NewSequenceGenerator("exp-"),
		Suffix: testutil.NewSequenceGenerator("s").Generate,
	}
}

// execute runs the root command with args and stdin, returning stdout and stderr.
func execute(t *testing.T, opts *RootOptions, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand(opts)
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

// writeConfig writes a YAML config into a temp dir and returns its path and
// the output directory it points at.
func writeConfig(t *testing.T, extra string) (string, string) {
	t.Helper()
	dir := t.TempDir()
	outDir := filepath.Join(dir, "out")
	require.NoError(t, os.MkdirAll(outDir, 0755))

	content := "output_dir: " + outDir + "\n" + extra
	path := filepath.Join(dir, "clampvec.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path, outDir
}

// writeJournalConfig is writeConfig with a journal inside the output dir.
func writeJournalConfig(t *testing.T) (string, string, string) {
	t.Helper()
	cfgPath, outDir := writeConfig(t, "")
	db := filepath.Join(outDir, "journal.db")
	content := "output_dir: " + outDir + "\njournal: " + db + "\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0644))
	return cfgPath, outDir, db
}

func splitLines(s string) []string {
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "clampvec", cmd.Use)
	assert.Contains(t, cmd.Long, "[-100, 100]")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	commands := []string{"show", "add", "sub", "append", "stats", "export", "session", "journal"}

	for _, cmdName := range commands {
		t.Run(cmdName, func(t *testing.T) {
			subCmd, _, err := cmd.Find([]string{cmdName})
			require.NoError(t, err, "Command %s should exist", cmdName)
			require.NotNil(t, subCmd)
			assert.Equal(t, cmdName, subCmd.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	verboseFlag := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "v", verboseFlag.Shorthand)
	assert.Equal(t, "false", verboseFlag.DefValue)

	formatFlag := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "text", formatFlag.DefValue)

	require.NotNil(t, cmd.PersistentFlags().Lookup("config"))
	require.NotNil(t, cmd.PersistentFlags().Lookup("lang"))
}

func TestExportCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	exportCmd, _, err := cmd.Find([]string{"export"})
	require.NoError(t, err)

	outFlag := exportCmd.Flags().Lookup("out")
	require.NotNil(t, outFlag)
	assert.Equal(t, "o", outFlag.Shorthand)

	asFlag := exportCmd.Flags().Lookup("as")
	require.NotNil(t, asFlag)
	assert.Equal(t, "", asFlag.DefValue)
}

func TestJournalCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	journalCmd, _, err := cmd.Find([]string{"journal"})
	require.NoError(t, err)

	dbFlag := journalCmd.Flags().Lookup("db")
	require.NotNil(t, dbFlag)
	assert.Equal(t, "", dbFlag.DefValue)
}

func TestInvalidOutputFormat(t *testing.T) {
	_, _, err := execute(t, testOptions(), "", "show", "1", "--format", "yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid format "yaml"`)
}

func TestMissingConfigFile(t *testing.T) {
	out, _, err := execute(t, testOptions(), "", "show", "1", "--config", filepath.Join(t.TempDir(), "none.yaml"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, "Error [E008]")
}

func TestUnsupportedLang(t *testing.T) {
	out, _, err := execute(t, testOptions(), "", "show", "1", "--lang", "xx")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, "Error [E008]")
	assert.Contains(t, out, `--lang "xx"`)
}

func TestLangOverridesConfig(t *testing.T) {
	cfgPath, _ := writeConfig(t, "lang: ru\n")

	out, _, err := execute(t, testOptions(), "", "show", "1", "--config", cfgPath, "--lang", "en")
	require.NoError(t, err)
	assert.Equal(t, "Array [size: 1]: 1\n", out)
}

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gis116/pyker/internal/core"
)

// withTempHome points the helper at a throwaway home directory so tests
// never touch the real ~/.pyker.
func withTempHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	core.ResetPaths()
	t.Cleanup(core.ResetPaths)
	return home
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	cmd := NewRootCmd()
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestCompleteCommandSubcommands(t *testing.T) {
	withTempHome(t)

	out, err := runCommand(t, "complete", "--cword", "1", "--", "pyker")
	require.NoError(t, err)

	lines := strings.Fields(out)
	assert.ElementsMatch(t,
		[]string{"delete", "info", "list", "logs", "restart", "start", "stop", "uninstall"},
		lines,
	)
}

func TestCompleteCommandProcessNames(t *testing.T) {
	home := withTempHome(t)
	require.NoError(t, os.MkdirAll(filepath.Join(home, ".pyker"), 0755))
	require.NoError(t, os.WriteFile(
		filepath.Join(home, ".pyker", "processes.json"),
		[]byte(`{"bot": {"pid": 1}, "worker": {"pid": 2}}`),
		0644,
	))

	out, err := runCommand(t, "complete", "--cword", "2", "--", "pyker", "stop")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"bot", "worker"}, strings.Fields(out))
}

func TestCompleteCommandMalformedRegistry(t *testing.T) {
	home := withTempHome(t)
	require.NoError(t, os.MkdirAll(filepath.Join(home, ".pyker"), 0755))
	require.NoError(t, os.WriteFile(
		filepath.Join(home, ".pyker", "processes.json"),
		[]byte("{definitely not json"),
		0644,
	))

	out, err := runCommand(t, "complete", "--cword", "2", "--", "pyker", "stop")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestCompleteCommandLineMode(t *testing.T) {
	withTempHome(t)

	out, err := runCommand(t, "complete", "--line", "pyker sto")
	require.NoError(t, err)
	assert.Equal(t, "stop\n", out)
}

func TestCompleteCommandHonorsConfigStateFile(t *testing.T) {
	home := withTempHome(t)
	require.NoError(t, os.MkdirAll(filepath.Join(home, ".pyker"), 0755))

	statePath := filepath.Join(home, "elsewhere.json")
	require.NoError(t, os.WriteFile(statePath, []byte(`{"alt": {}}`), 0644))
	require.NoError(t, os.WriteFile(
		filepath.Join(home, ".pyker", "completion.yaml"),
		[]byte("state_file: "+statePath+"\n"),
		0644,
	))

	out, err := runCommand(t, "complete", "--cword", "2", "--", "pyker", "info")
	require.NoError(t, err)
	assert.Equal(t, "alt\n", out)
}

func TestScriptCommand(t *testing.T) {
	out, err := runCommand(t, "script", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "complete -o nospace -F _pyker_completion pyker")
}

func TestScriptCommandRejectsUnknownShell(t *testing.T) {
	_, err := runCommand(t, "script", "fish")
	require.Error(t, err)
}

func TestInstallCommand(t *testing.T) {
	home := withTempHome(t)

	out, err := runCommand(t, "install", "bash")
	require.NoError(t, err)

	scriptPath := filepath.Join(home, ".pyker", "completion", "pyker.bash")
	assert.Contains(t, out, scriptPath)

	content, err := os.ReadFile(scriptPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "complete -o nospace")
}

func TestVersionCommand(t *testing.T) {
	out, err := runCommand(t, "version")
	require.NoError(t, err)
	assert.Equal(t, BUILD_VERSION+"\n", out)
}

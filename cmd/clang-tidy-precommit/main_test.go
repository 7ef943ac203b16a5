package main

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDatabase(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "compile_commands.json"), []byte("[]"), 0o644))
	return dir
}

// writeTool installs a shell script standing in for clang-tidy.
func writeTool(t *testing.T, script string) string {
	t.Helper()
	if runtime.GOOS != "linux" {
		t.Skip("the stub tool is invoked directly, without the xcrun shim")
	}
	path := filepath.Join(t.TempDir(), "clang-tidy-stub")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script+"\n"), 0o755))
	return path
}

func TestRunNoRelevantFiles(t *testing.T) {
	rc := run(context.Background(), []string{"README.md", "docs.txt"})

	assert.Equal(t, 0, rc)
}

func TestRunMissingDatabaseExitsTwo(t *testing.T) {
	rc := run(context.Background(), []string{
		"-B", filepath.Join(t.TempDir(), "no-such-build"),
		"a.cpp",
	})

	assert.Equal(t, 2, rc)
}

func TestRunFlagParseFailureExitsTwo(t *testing.T) {
	rc := run(context.Background(), []string{"--no-such-flag", "a.cpp"})

	assert.Equal(t, 2, rc)
}

func TestRunCMakeFailurePropagatesCode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("cmake commands run through sh")
	}

	rc := run(context.Background(), []string{
		"-B", t.TempDir(),
		"--cmake", "exit 7",
		"a.cpp",
	})

	assert.Equal(t, 7, rc)
}

func TestRunFindingsExitOne(t *testing.T) {
	t.Setenv("CLANG_TIDY", writeTool(t, `echo "warning: do not use endl"; exit 1`))

	rc := run(context.Background(), []string{"-B", writeDatabase(t), "a.cpp"})

	assert.Equal(t, 1, rc)
}

func TestRunCleanExitsZero(t *testing.T) {
	t.Setenv("CLANG_TIDY", writeTool(t, "exit 0"))

	rc := run(context.Background(), []string{"-B", writeDatabase(t), "a.cpp"})

	assert.Equal(t, 0, rc)
}

func TestRunForwardsPassthroughArgs(t *testing.T) {
	argsFile := filepath.Join(t.TempDir(), "args.txt")
	t.Setenv("CLANG_TIDY", writeTool(t, `printf '%s\n' "$@" > `+argsFile))

	rc := run(context.Background(), []string{
		"-B", writeDatabase(t),
		"a.cpp",
		"--", "-line-filter=[]", "-dump-config",
	})
	require.Equal(t, 0, rc)

	recorded, err := os.ReadFile(argsFile)
	require.NoError(t, err)
	args := strings.Split(strings.TrimSpace(string(recorded)), "\n")

	assert.Contains(t, args, "-quiet")
	assert.Contains(t, args, "-line-filter=[]")
	assert.Contains(t, args, "-dump-config")
	assert.Equal(t, "a.cpp", args[len(args)-1], "the file under lint comes last")
}

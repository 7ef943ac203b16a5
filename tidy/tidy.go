// Package tidy runs clang-tidy over a set of files against a
// CMake-generated compilation database. It implements the behavior of
// the clang-tidy-precommit hook: pick the files worth linting, make
// sure compile_commands.json exists, then fan clang-tidy out over the
// files and fail the commit if any run reports findings.
package tidy

import (
	"os"
	"os/exec"
)

// Options mirror the clang-tidy-precommit command line.
type Options struct {
	// CMake / compilation database.
	BuildDir        string
	CompileCommands string
	CMakeCommands   []string
	CMakeIfMissing  bool
	CMakeCwd        string

	// Rules / checks.
	Checks           string
	HeaderFilter     string
	WarningsAsErrors string

	// Behavior.
	IncludeHeaders  bool
	Jobs            int
	Fix             bool
	FormatStyle     string
	ExtraArgs       []string
	ExtraArgsBefore []string
	PassThrough     []string // everything after --, verbatim
}

// Lookup returns the clang-tidy executable to invoke. The CLANG_TIDY
// environment variable takes precedence over a PATH lookup. If neither
// resolves, the bare name is returned and the eventual exec fails with
// the usual "executable file not found" message.
func Lookup() string {
	if override := os.Getenv("CLANG_TIDY"); override != "" {
		return override
	}
	if exe, err := exec.LookPath("clang-tidy"); err == nil {
		return exe
	}
	return "clang-tidy"
}

// BaseCommand assembles the clang-tidy invocation shared by every file.
// databaseDir is the directory holding compile_commands.json, passed
// via -p. The file to lint is appended per run by Run.
func (o *Options) BaseCommand(tool, databaseDir string) []string {
	cmd := []string{tool, "-p=" + databaseDir, "-quiet"}

	if o.Checks != "" {
		cmd = append(cmd, "-checks="+o.Checks)
	}
	if o.HeaderFilter != "" {
		cmd = append(cmd, "-header-filter="+o.HeaderFilter)
	}
	if o.WarningsAsErrors != "" {
		cmd = append(cmd, "-warnings-as-errors="+o.WarningsAsErrors)
	}
	for _, arg := range o.ExtraArgsBefore {
		cmd = append(cmd, "--extra-arg-before", arg)
	}
	for _, arg := range o.ExtraArgs {
		cmd = append(cmd, "--extra-arg", arg)
	}
	if o.Fix {
		cmd = append(cmd, "-fix")
		if o.FormatStyle != "" {
			cmd = append(cmd, "-format-style="+o.FormatStyle)
		}
	}

	return append(cmd, o.PassThrough...)
}

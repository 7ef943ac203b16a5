package tidy

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/pkg/errors"
)

// ErrNoDatabase is returned when no compile_commands.json can be found
// after any requested cmake commands have run.
var ErrNoDatabase = errors.New("could not find compile_commands.json")

// CMakeError reports a failed --cmake command and carries its exit code
// so the hook can propagate it.
type CMakeError struct {
	Command string
	Code    int
	Err     error
}

func (e *CMakeError) Error() string {
	return fmt.Sprintf("cmake command failed with exit code %d: %s", e.Code, e.Command)
}

func (e *CMakeError) Unwrap() error { return e.Err }

// EnsureDatabase locates compile_commands.json, running the configured
// cmake commands first when asked to. It returns the directory that
// holds the database, which is what clang-tidy's -p flag expects.
func (o *Options) EnsureDatabase() (string, error) {
	ccPath := o.CompileCommands
	if ccPath == "" {
		ccPath = filepath.Join(o.BuildDir, "compile_commands.json")
	}
	ccPath, err := filepath.Abs(ccPath)
	if err != nil {
		return "", errors.Wrap(err, "resolving compile_commands.json path")
	}

	needCMake := false
	if len(o.CMakeCommands) > 0 {
		if o.CMakeIfMissing {
			_, err := os.Stat(ccPath)
			needCMake = err != nil
		} else {
			needCMake = true
		}
	}

	if needCMake {
		cwd := o.CMakeCwd
		if cwd == "" {
			cwd = "."
		}
		for _, command := range o.CMakeCommands {
			slog.Debug("running cmake command", "cmd", command, "cwd", cwd)

			cmd := exec.Command("sh", "-c", command)
			cmd.Dir = cwd
			cmd.Stdout = os.Stdout
			cmd.Stderr = os.Stderr
			if err := cmd.Run(); err != nil {
				code := 1
				var exitErr *exec.ExitError
				if errors.As(err, &exitErr) {
					code = exitErr.ExitCode()
				}
				return "", &CMakeError{Command: command, Code: code, Err: err}
			}
		}
	}

	if _, err := os.Stat(ccPath); err != nil {
		return "", fmt.Errorf("%w at: %s", ErrNoDatabase, ccPath)
	}

	return filepath.Dir(ccPath), nil
}

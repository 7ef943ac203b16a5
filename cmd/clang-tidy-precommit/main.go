package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"slices"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	flag "github.com/spf13/pflag"

	"github.com/junrushao/pre-commit-clang-tidy/tidy"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	os.Exit(run(ctx, os.Args[1:]))
}

func run(ctx context.Context, argv []string) int {
	setupLogging()

	var opts tidy.Options

	// pflag treats everything after -- as positional arguments, but the
	// hook forwards it verbatim to clang-tidy instead. Split first.
	if i := slices.Index(argv, "--"); i >= 0 {
		opts.PassThrough = argv[i+1:]
		argv = argv[:i]
	}

	fs := flag.NewFlagSet("clang-tidy-precommit", flag.ContinueOnError)
	fs.SortFlags = false

	// CMake / compilation database
	fs.StringVarP(&opts.BuildDir, "build-dir", "B", "build",
		"CMake build directory to use with -p (must contain compile_commands.json)")
	fs.StringVarP(&opts.CompileCommands, "compile-commands", "C", "",
		"explicit path to compile_commands.json (overrides --build-dir)")
	fs.StringArrayVar(&opts.CMakeCommands, "cmake", nil,
		"shell command to (re)generate compile_commands.json (repeatable)")
	fs.BoolVar(&opts.CMakeIfMissing, "cmake-if-missing", false,
		"only run --cmake commands if compile_commands.json is missing")
	fs.StringVar(&opts.CMakeCwd, "cmake-cwd", ".",
		"working directory for --cmake commands")

	// Rules / checks
	fs.StringVar(&opts.Checks, "checks", "",
		"clang-tidy checks pattern (e.g. 'modernize-*,bugprone-*'); empty uses .clang-tidy or clang-tidy defaults")
	fs.StringVar(&opts.HeaderFilter, "header-filter", "",
		"regex of headers to diagnose")
	fs.StringVar(&opts.WarningsAsErrors, "warnings-as-errors", "",
		"comma-separated globs to upgrade warnings to errors (e.g. '*')")

	// Behavior
	fs.BoolVar(&opts.IncludeHeaders, "include-headers", false,
		"also lint header files passed by pre-commit")
	fs.IntVarP(&opts.Jobs, "jobs", "j", runtime.NumCPU(),
		"maximum parallel clang-tidy processes")
	fs.BoolVar(&opts.Fix, "fix", false,
		"apply clang-tidy fixes in-place (-fix); pre-commit fails the commit if files change")
	fs.StringVar(&opts.FormatStyle, "format-style", "",
		"formatting style when using --fix (e.g. 'file' or 'llvm')")
	fs.StringArrayVar(&opts.ExtraArgs, "extra-arg", nil,
		"argument to append to the compiler command line (repeatable)")
	fs.StringArrayVar(&opts.ExtraArgsBefore, "extra-arg-before", nil,
		"argument to prepend to the compiler command line (repeatable)")

	if err := fs.Parse(argv); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	files, err := tidy.FilterFiles(fs.Args(), opts.IncludeHeaders)
	if err != nil {
		slog.Error(err.Error())
		return 1
	}
	if len(files) == 0 {
		slog.Debug("no relevant files to lint")
		return 0
	}

	databaseDir, err := opts.EnsureDatabase()
	if err != nil {
		var cmakeErr *tidy.CMakeError
		if errors.As(err, &cmakeErr) {
			fmt.Fprintf(os.Stderr, "[clang-tidy-precommit] CMake command failed: %s\n", cmakeErr.Command)
			return cmakeErr.Code
		}
		if errors.Is(err, tidy.ErrNoDatabase) {
			fmt.Fprintf(os.Stderr, "[clang-tidy-precommit] %s\n", err)
			fmt.Fprintln(os.Stderr, "  Provide --compile-commands or --build-dir, or pass --cmake to generate it.")
			return 2
		}
		slog.Error(err.Error())
		return 1
	}

	base := opts.BaseCommand(tidy.Lookup(), databaseDir)
	if runtime.GOOS == "darwin" {
		// clang-tidy commonly lives behind the Xcode shim on macOS.
		base = append([]string{"xcrun"}, base...)
	}
	slog.Debug("base command", "cmd", strings.Join(base, " "))

	rc := tidy.Run(ctx, base, files, opts.Jobs, os.Stdout, os.Stderr)
	if rc != 0 && opts.Fix {
		fmt.Fprintln(os.Stderr, "[clang-tidy-precommit] clang-tidy reported issues and applied fixes. "+
			"Re-stage your changes if files were modified.")
	}
	return rc
}

func setupLogging() {
	level := slog.LevelInfo
	if os.Getenv("CTP_DEBUG") != "" {
		level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		NoColor:    !isatty.IsTerminal(os.Stderr.Fd()),
	})))
}

package tidy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupEnvOverride(t *testing.T) {
	t.Setenv("CLANG_TIDY", "/opt/llvm/bin/clang-tidy-18")

	assert.Equal(t, "/opt/llvm/bin/clang-tidy-18", Lookup())
}

func TestBaseCommandDefaults(t *testing.T) {
	var opts Options

	got := opts.BaseCommand("clang-tidy", "/repo/build")

	assert.Equal(t, []string{"clang-tidy", "-p=/repo/build", "-quiet"}, got)
}

func TestBaseCommandAllOptions(t *testing.T) {
	opts := Options{
		Checks:           "modernize-*,bugprone-*",
		HeaderFilter:     ".*",
		WarningsAsErrors: "*",
		Fix:              true,
		FormatStyle:      "file",
		ExtraArgs:        []string{"-std=c++20"},
		ExtraArgsBefore:  []string{"-isystem/usr/include/x"},
		PassThrough:      []string{"-line-filter=[]"},
	}

	got := opts.BaseCommand("clang-tidy", "/repo/build")

	assert.Equal(t, []string{
		"clang-tidy", "-p=/repo/build", "-quiet",
		"-checks=modernize-*,bugprone-*",
		"-header-filter=.*",
		"-warnings-as-errors=*",
		"--extra-arg-before", "-isystem/usr/include/x",
		"--extra-arg", "-std=c++20",
		"-fix",
		"-format-style=file",
		"-line-filter=[]",
	}, got)
}

func TestBaseCommandFormatStyleNeedsFix(t *testing.T) {
	opts := Options{FormatStyle: "llvm"}

	got := opts.BaseCommand("clang-tidy", "/repo/build")

	assert.NotContains(t, got, "-format-style=llvm")
}

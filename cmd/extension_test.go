package cmd

import (
	"bytes"
	"flag"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/google/subcommands"
)

// installExtension writes an executable shell script named mt-<name> in a
// directory put first in PATH.
func installExtension(t *testing.T, name, script string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("extensions are shell scripts in this test")
	}
	dir := t.TempDir()
	path := filepath.Join(dir, ExtensionPrefix+name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0o755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))
}

func TestRunExtension(t *testing.T) {
	installExtension(t, "hello", `echo "args=$*"
echo "storage=$MT_STORAGE"
echo "verbose=$MT_VERBOSE"
`)
	*storageFlag = "sqlite"
	*Verbose = true
	defer func() { *storageFlag, *Verbose = "", false }()

	var stdout, stderr bytes.Buffer
	ok, code := RunExtension("hello", []string{"a", "b"}, &stdout, &stderr)
	if !ok || code != 0 {
		t.Fatalf("RunExtension() = %v, %d; stderr: %s", ok, code, stderr.String())
	}
	want := "args=a b\nstorage=sqlite\nverbose=true\n"
	if got := stdout.String(); got != want {
		t.Errorf("extension output = %q, want %q", got, want)
	}
}

func TestRunExtensionExitCode(t *testing.T) {
	installExtension(t, "fail", "exit 3\n")
	var stdout, stderr bytes.Buffer
	if ok, code := RunExtension("fail", nil, &stdout, &stderr); !ok || code != 3 {
		t.Errorf("RunExtension() = %v, %d; want true, 3", ok, code)
	}
}

func TestRunExtensionMissing(t *testing.T) {
	t.Setenv("PATH", t.TempDir())
	var stdout, stderr bytes.Buffer
	if ok, _ := RunExtension("nope", nil, &stdout, &stderr); ok {
		t.Errorf("RunExtension(missing) = true")
	}
}

func TestIsCommand(t *testing.T) {
	c := subcommands.NewCommander(flag.NewFlagSet("mt", flag.ContinueOnError), "mt")
	Register(c)
	for _, name := range []string{"add", "ls", "goal", "reflect", "topic"} {
		if !IsCommand(c, name) {
			t.Errorf("IsCommand(%q) = false", name)
		}
	}
	if IsCommand(c, "hello") {
		t.Errorf("IsCommand(hello) = true")
	}
	if n := len(Commands()); n < 25 {
		t.Errorf("Commands() has %d commands", n)
	}
	var names []string
	for _, cmd := range Commands() {
		if strings.TrimSpace(cmd.Synopsis()) == "" || !strings.HasPrefix(cmd.Usage(), "mt "+cmd.Name()) {
			names = append(names, cmd.Name())
		}
	}
	if len(names) > 0 {
		t.Errorf("commands without synopsis or usage: %v", names)
	}
}

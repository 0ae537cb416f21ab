package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"

	"github.com/google/subcommands"
)

// EnvVerbose tells an extension whether -v was given.
const EnvVerbose = "MT_VERBOSE"

// ExtensionPrefix is prepended to a subcommand name to find its extension.
const ExtensionPrefix = "mt-"

// IsCommand reports whether name is a subcommand registered in c.
func IsCommand(c *subcommands.Commander, name string) bool {
	found := false
	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		found = found || cmd.Name() == name
	})
	return found
}

// RunExtension attempts to find and execute an external mt-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
//
// The extension inherits the environment, with the global flags passed
// as the variables config reads, so it can open the same store.
func RunExtension(subcommand string, args []string, stdout, stderr io.Writer) (bool, int) {
	name := ExtensionPrefix + subcommand
	path, err := exec.LookPath(name)
	if err != nil {
		return false, 0
	}

	cmd := exec.Command(path, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	cmd.Env = os.Environ()
	if *storageFlag != "" {
		cmd.Env = append(cmd.Env, EnvStorage+"="+*storageFlag)
	}
	if *pathFlag != "" {
		cmd.Env = append(cmd.Env, EnvStoragePath+"="+*pathFlag)
	}
	cmd.Env = append(cmd.Env, EnvVerbose+"="+strconv.FormatBool(*Verbose))

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return true, exitErr.ExitCode()
		}
		fmt.Fprintf(stderr, "Error executing external command %q: %v\n", name, err)
		return true, 1
	}
	return true, 0
}

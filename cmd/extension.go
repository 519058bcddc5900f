package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"syscall"
)

const (
	EnvPortfolioFile = "GROW_PORTFOLIO_FILE"
	EnvYears         = "GROW_YEARS"
	EnvCompounding   = "GROW_COMPOUNDING"
	EnvVerbose       = "GROW_VERBOSE"
)

// RunExtension attempts to find and execute an external grow-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found or executed.
func RunExtension(subcommand string, args []string) (bool, int) {
	externalCmdName := "grow-" + subcommand

	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		logf("External command %q not found in PATH: %v", externalCmdName, err)
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	// Pass global flags as environment variables
	cmd.Env = os.Environ()
	cmd.Env = append(cmd.Env, EnvPortfolioFile+"="+*portfolioFile)
	cmd.Env = append(cmd.Env, EnvYears+"="+strconv.FormatFloat(*years, 'f', -1, 64))
	cmd.Env = append(cmd.Env, EnvCompounding+"="+strconv.Itoa(*compounding))
	cmd.Env = append(cmd.Env, EnvVerbose+"="+strconv.FormatBool(*Verbose))

	if err := cmd.Run(); err != nil {
		if exitError, ok := err.(*exec.ExitError); ok {
			if status, ok := exitError.Sys().(syscall.WaitStatus); ok {
				return true, status.ExitStatus()
			}
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", externalCmdName, err)
		return true, 1
	}
	return true, 0
}

package cmd

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

func TestExtensionMechanism(t *testing.T) {
	tempDir := t.TempDir()

	// grow-hello prints the environment it received.
	helloCmdSource := fmt.Sprintf(`
package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Printf("%s=%%s\n", os.Getenv("%s"))
	fmt.Printf("%s=%%s\n", os.Getenv("%s"))
	fmt.Printf("%s=%%s\n", os.Getenv("%s"))
	fmt.Printf("%s=%%s\n", os.Getenv("%s"))
}
`, EnvPortfolioFile, EnvPortfolioFile, EnvYears, EnvYears, EnvCompounding, EnvCompounding, EnvVerbose, EnvVerbose)

	helloCmdPath := filepath.Join(tempDir, "grow-hello")
	srcFile := helloCmdPath + ".go"
	if err := os.WriteFile(srcFile, []byte(helloCmdSource), 0644); err != nil {
		t.Fatalf("Failed to write grow-hello source: %v", err)
	}
	cmd := exec.Command("go", "build", "-o", helloCmdPath, srcFile)
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		t.Fatalf("Failed to compile grow-hello: %v", err)
	}
	log.Printf("Compiled grow-hello to %s", helloCmdPath)

	growBinaryPath := filepath.Join(tempDir, "grow")
	cmd = exec.Command("go", "build", "-o", growBinaryPath, "../grow")
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		t.Fatalf("Failed to compile grow binary: %v", err)
	}

	expectedPortfolioFile := filepath.Join(tempDir, "assets.csv")
	args := []string{
		"--portfolio-file", expectedPortfolioFile,
		"--years", "12.5",
		"--compounding", "30",
		"-v",
		"hello",
	}

	growCmd := exec.Command(growBinaryPath, args...)
	growCmd.Env = []string{"PATH=" + tempDir + string(os.PathListSeparator) + os.Getenv("PATH")}

	var stdout, stderr bytes.Buffer
	growCmd.Stdout = &stdout
	growCmd.Stderr = &stderr
	if err := growCmd.Run(); err != nil {
		t.Fatalf("grow command failed: %v\nStdout: %s\nStderr: %s", err, stdout.String(), stderr.String())
	}

	output := stdout.String()
	expectedEnvVars := []struct {
		Name  string
		Value string
	}{
		{EnvPortfolioFile, expectedPortfolioFile},
		{EnvYears, "12.5"},
		{EnvCompounding, "30"},
		{EnvVerbose, strconv.FormatBool(true)},
	}
	for _, ev := range expectedEnvVars {
		expectedLine := fmt.Sprintf("%s=%s", ev.Name, ev.Value)
		if !strings.Contains(output, expectedLine) {
			t.Errorf("Expected output to contain %q, but got:\n%s", expectedLine, output)
		}
	}
}

// Package shared contains testing utilities shared between integration tests.
// It provides common functions for building scan fixtures, capturing output,
// and running the CLI the way the binary does.
package shared

import (
	"bytes"
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"github.com/reem-012/gpg-checker/cmd"
	logger "github.com/reem-012/gpg-checker/internal/logging"
)

// CaptureOutput captures both stdout and stderr during function execution.
func CaptureOutput(fn func() error) (string, error) {
	originalStdout := os.Stdout
	originalStderr := os.Stderr

	stdoutReader, stdoutWriter, _ := os.Pipe()
	stderrReader, stderrWriter, _ := os.Pipe()

	os.Stdout = stdoutWriter
	os.Stderr = stderrWriter

	outputChan := make(chan string, 2)

	go func() {
		var buf bytes.Buffer
		if _, err := io.Copy(&buf, stdoutReader); err != nil {
			log.Fatalf("Failed to copy captured stdout: %s", err)
		}
		outputChan <- buf.String()
	}()

	go func() {
		var buf bytes.Buffer
		if _, err := io.Copy(&buf, stderrReader); err != nil {
			log.Fatalf("Failed to copy captured stderr: %s", err)
		}
		outputChan <- buf.String()
	}()

	err := fn()

	stdoutWriter.Close()
	stderrWriter.Close()

	os.Stdout = originalStdout
	os.Stderr = originalStderr

	stdout := <-outputChan
	stderr := <-outputChan

	return stdout + stderr, err
}

// CreateTestCLI creates a complete CLI instance for testing with the scan
// command attached, mirroring the real binary's command tree.
func CreateTestCLI(stdout, stderr io.Writer, verboseFlag, debugFlag bool) *cobra.Command {
	cmd.ResetGlobalState()
	cmd.SetVerbose(verboseFlag)
	cmd.SetDebug(debugFlag)
	cmd.SetLogger(logger.Logger{
		Verbose: verboseFlag,
		Debug:   debugFlag,
	})

	rootCmd := &cobra.Command{
		Use:   "gpg-checker",
		Short: "gpg-checker - Finds GPG encrypted files and their recipients.",
	}
	rootCmd.AddCommand(cmd.GetScanCmd())

	if stdout != nil {
		rootCmd.SetOut(stdout)
		cmd.GetScanCmd().SetOut(stdout)
	}
	if stderr != nil {
		rootCmd.SetErr(stderr)
		cmd.GetScanCmd().SetErr(stderr)
	}

	return rootCmd
}

// WriteEncryptedFixture writes a minimal binary OpenPGP message encrypted
// to the given 8-byte key ID.
func WriteEncryptedFixture(t *testing.T, path string, keyID []byte) {
	t.Helper()
	if len(keyID) != 8 {
		t.Fatalf("key ID must be 8 bytes, got %d", len(keyID))
	}

	body := append([]byte{0x03}, keyID...)
	body = append(body, 0x01, 0x00, 0x00)
	data := append([]byte{0xC1, byte(len(body))}, body...)

	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("Failed to write encrypted fixture: %v", err)
	}
}

// WritePlainFixture writes an ordinary non-OpenPGP file.
func WritePlainFixture(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write plain fixture: %v", err)
	}
}

// SetupScanDirectory builds a directory with one encrypted and two plain
// files and returns its path along with the encrypted file's key ID string.
func SetupScanDirectory(t *testing.T) (string, string) {
	t.Helper()
	tmpDir := t.TempDir()

	WritePlainFixture(t, filepath.Join(tmpDir, "alpha.txt"), "first plain file")
	WriteEncryptedFixture(t, filepath.Join(tmpDir, "beta.gpg"), []byte{0xDE, 0xAD, 0xBE, 0xEF, 0x01, 0x23, 0x45, 0x67})
	WritePlainFixture(t, filepath.Join(tmpDir, "gamma.txt"), "second plain file")

	return tmpDir, "DEADBEEF01234567"
}

package scan_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/reem-012/gpg-checker/internal/report"
	"github.com/reem-012/gpg-checker/test/integration/shared"
)

func TestScan_TableOutput(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	tmpDir, keyID := shared.SetupScanDirectory(t)

	output, err := shared.CaptureOutput(func() error {
		cli := shared.CreateTestCLI(nil, nil, false, false)
		cli.SetArgs([]string{"scan", "-d", tmpDir})
		return cli.Execute()
	})
	if err != nil {
		t.Fatalf("Scan command failed: %v\nOutput:\n%s", err, output)
	}

	if !strings.Contains(output, "File Path") {
		t.Errorf("Output should contain the table header:\n%s", output)
	}
	if !strings.Contains(output, keyID) {
		t.Errorf("Output should contain the recipient key ID %s:\n%s", keyID, output)
	}
	if !strings.Contains(output, "alpha.txt") || !strings.Contains(output, "gamma.txt") {
		t.Errorf("Output should list the plain files too:\n%s", output)
	}
	if !strings.Contains(output, "Scanned 3 files, 1 encrypted") {
		t.Errorf("Output should contain the scan summary:\n%s", output)
	}
}

func TestScan_CSVReport(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	tmpDir, keyID := shared.SetupScanDirectory(t)
	outFile := filepath.Join(t.TempDir(), "report.csv")

	output, err := shared.CaptureOutput(func() error {
		cli := shared.CreateTestCLI(nil, nil, false, false)
		cli.SetArgs([]string{"scan", "-d", tmpDir, "-o", outFile, "-s"})
		return cli.Execute()
	})
	if err != nil {
		t.Fatalf("Scan command failed: %v\nOutput:\n%s", err, output)
	}

	rep, err := report.ReadCSV(outFile)
	if err != nil {
		t.Fatalf("Failed to read back CSV: %v", err)
	}
	if len(rep) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(rep))
	}
	if rep.EncryptedCount() != 1 {
		t.Errorf("Expected exactly 1 encrypted row, got %d", rep.EncryptedCount())
	}

	var found bool
	for _, row := range rep {
		if row.IsEncrypted {
			found = true
			if row.Recipient != keyID {
				t.Errorf("Recipient = %s, want %s", row.Recipient, keyID)
			}
			if filepath.Base(row.FilePath) != "beta.gpg" {
				t.Errorf("Encrypted row should be beta.gpg, got %s", row.FilePath)
			}
		}
	}
	if !found {
		t.Errorf("No encrypted row in CSV report")
	}

	// Suppressed output must not print the table.
	if strings.Contains(output, "File Path  ") {
		t.Errorf("Table should be suppressed with -s:\n%s", output)
	}
}

func TestScan_ClobberProtection(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	tmpDir, _ := shared.SetupScanDirectory(t)
	outFile := filepath.Join(t.TempDir(), "report.csv")

	if err := os.WriteFile(outFile, []byte("precious data"), 0644); err != nil {
		t.Fatalf("Failed to seed existing file: %v", err)
	}

	output, err := shared.CaptureOutput(func() error {
		cli := shared.CreateTestCLI(nil, nil, false, false)
		cli.SetArgs([]string{"scan", "-d", tmpDir, "-o", outFile})
		return cli.Execute()
	})
	if err == nil {
		t.Fatalf("Expected an error when the out-file exists\nOutput:\n%s", output)
	}

	data, readErr := os.ReadFile(outFile)
	if readErr != nil {
		t.Fatalf("Failed to read back out-file: %v", readErr)
	}
	if string(data) != "precious data" {
		t.Errorf("Existing out-file was modified without --allow-clobber")
	}

	// With --allow-clobber the same invocation succeeds.
	output, err = shared.CaptureOutput(func() error {
		cli := shared.CreateTestCLI(nil, nil, false, false)
		cli.SetArgs([]string{"scan", "-d", tmpDir, "-o", outFile, "-a"})
		return cli.Execute()
	})
	if err != nil {
		t.Fatalf("Scan with --allow-clobber failed: %v\nOutput:\n%s", err, output)
	}

	rep, err := report.ReadCSV(outFile)
	if err != nil {
		t.Fatalf("Failed to read back CSV after clobber: %v", err)
	}
	if len(rep) != 3 {
		t.Errorf("Expected 3 rows after clobber, got %d", len(rep))
	}
}

func TestScan_RecursiveFlag(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	tmpDir, _ := shared.SetupScanDirectory(t)

	subDir := filepath.Join(tmpDir, "nested")
	if err := os.Mkdir(subDir, 0755); err != nil {
		t.Fatalf("Failed to create nested dir: %v", err)
	}
	shared.WriteEncryptedFixture(t, filepath.Join(subDir, "delta.gpg"), []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08})

	// Flat scan ignores the nested file.
	output, err := shared.CaptureOutput(func() error {
		cli := shared.CreateTestCLI(nil, nil, false, false)
		cli.SetArgs([]string{"scan", "-d", tmpDir})
		return cli.Execute()
	})
	if err != nil {
		t.Fatalf("Flat scan failed: %v", err)
	}
	if strings.Contains(output, "delta.gpg") {
		t.Errorf("Flat scan should not reach nested files:\n%s", output)
	}

	// Recursive scan finds it.
	output, err = shared.CaptureOutput(func() error {
		cli := shared.CreateTestCLI(nil, nil, false, false)
		cli.SetArgs([]string{"scan", "-d", tmpDir, "-r"})
		return cli.Execute()
	})
	if err != nil {
		t.Fatalf("Recursive scan failed: %v", err)
	}
	if !strings.Contains(output, "delta.gpg") {
		t.Errorf("Recursive scan should reach nested files:\n%s", output)
	}
	if !strings.Contains(output, "Scanned 4 files, 2 encrypted") {
		t.Errorf("Recursive summary should count 4 files:\n%s", output)
	}
}

func TestScan_MissingDirectory(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	_, err := shared.CaptureOutput(func() error {
		cli := shared.CreateTestCLI(nil, nil, false, false)
		cli.SetArgs([]string{"scan", "-d", "/definitely/not/a/real/path"})
		return cli.Execute()
	})
	if err == nil {
		t.Errorf("Expected an error for a missing scan directory")
	}
}

func TestScan_WorkersProduceSameReport(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	tmpDir, _ := shared.SetupScanDirectory(t)

	runScan := func(workers string) (report.Report, error) {
		outFile := filepath.Join(t.TempDir(), "report.csv")
		_, err := shared.CaptureOutput(func() error {
			cli := shared.CreateTestCLI(nil, nil, false, false)
			cli.SetArgs([]string{"scan", "-d", tmpDir, "-o", outFile, "-s", "--workers", workers})
			return cli.Execute()
		})
		if err != nil {
			return nil, err
		}
		return report.ReadCSV(outFile)
	}

	sequential, err := runScan("1")
	if err != nil {
		t.Fatalf("Sequential scan failed: %v", err)
	}
	parallel, err := runScan("8")
	if err != nil {
		t.Fatalf("Parallel scan failed: %v", err)
	}

	if len(sequential) != len(parallel) {
		t.Fatalf("Row count differs: %d vs %d", len(sequential), len(parallel))
	}
	for i := range sequential {
		if sequential[i] != parallel[i] {
			t.Errorf("Row %d differs between worker counts:\nseq: %v\npar: %v", i, sequential[i], parallel[i])
		}
	}
}

package scanner

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestScan_MixedDirectory(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "gpg-checker-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	keyID := []byte{0xDE, 0xAD, 0xBE, 0xEF, 0x01, 0x23, 0x45, 0x67}
	writeTestFile(t, filepath.Join(tmpDir, "a.txt"), []byte("first plain file"))
	writeTestFile(t, filepath.Join(tmpDir, "b.gpg"), encryptedFileBytes(t, keyID))
	writeTestFile(t, filepath.Join(tmpDir, "c.txt"), []byte("second plain file"))

	paths, err := ListFiles(tmpDir, false, nil)
	if err != nil {
		t.Fatalf("ListFiles failed: %v", err)
	}
	if len(paths) != 3 {
		t.Fatalf("Expected 3 files, got %d", len(paths))
	}

	rep := Driver{}.Scan(paths)
	if len(rep) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(rep))
	}
	if rep.EncryptedCount() != 1 {
		t.Errorf("Expected exactly 1 encrypted file, got %d", rep.EncryptedCount())
	}

	// Results stay in discovery order.
	for i, result := range rep {
		if result.FilePath != paths[i] {
			t.Errorf("Result %d is %s, want %s (order not preserved)", i, result.FilePath, paths[i])
		}
	}

	if !rep[1].IsEncrypted || rep[1].Recipient != "DEADBEEF01234567" {
		t.Errorf("b.gpg should be the encrypted file: %+v", rep[1])
	}
}

func TestScan_ParallelMatchesSequential(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "gpg-checker-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	var paths []string
	for i := 0; i < 50; i++ {
		path := filepath.Join(tmpDir, fmt.Sprintf("file-%02d", i))
		if i%3 == 0 {
			keyID := []byte{0x00, 0x11, 0x22, 0x33, 0x44, 0x55, 0x66, byte(i)}
			writeTestFile(t, path, encryptedFileBytes(t, keyID))
		} else {
			writeTestFile(t, path, []byte(fmt.Sprintf("plain contents %d", i)))
		}
		paths = append(paths, path)
	}

	sequential := Driver{Workers: 1}.Scan(paths)
	parallel := Driver{Workers: 8}.Scan(paths)

	if !reflect.DeepEqual(sequential, parallel) {
		t.Errorf("Parallel scan diverged from sequential scan")
	}
}

func TestScan_EmptyPathList(t *testing.T) {
	rep := Driver{Workers: 4}.Scan(nil)
	if len(rep) != 0 {
		t.Errorf("Expected empty report, got %d results", len(rep))
	}
}

func TestScan_BadFileDoesNotAbortBatch(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "gpg-checker-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	keyID := []byte{0xAA, 0xBB, 0xCC, 0xDD, 0xEE, 0xFF, 0x00, 0x11}
	good := filepath.Join(tmpDir, "good.gpg")
	writeTestFile(t, good, encryptedFileBytes(t, keyID))

	paths := []string{
		filepath.Join(tmpDir, "missing-one"),
		good,
		filepath.Join(tmpDir, "missing-two"),
	}

	rep := Driver{}.Scan(paths)
	if len(rep) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(rep))
	}
	if rep[0].IsEncrypted || rep[2].IsEncrypted {
		t.Errorf("Missing files must classify as not encrypted")
	}
	if !rep[1].IsEncrypted {
		t.Errorf("Good file must still classify despite neighboring failures")
	}
}

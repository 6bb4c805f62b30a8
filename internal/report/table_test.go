package report

import (
	"strings"
	"testing"
)

func TestWriteTable(t *testing.T) {
	var sb strings.Builder
	WriteTable(&sb, sampleReport())
	out := sb.String()

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// Header + separator + one line per result.
	if len(lines) != 5 {
		t.Fatalf("Expected 5 lines, got %d:\n%s", len(lines), out)
	}

	if !strings.HasPrefix(lines[0], "File Path") {
		t.Errorf("First line should start with the File Path header: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "---") {
		t.Errorf("Second line should be a separator: %q", lines[1])
	}
	if !strings.Contains(out, "DEADBEEF01234567") {
		t.Errorf("Table should contain the recipient key ID:\n%s", out)
	}
	if !strings.Contains(lines[3], "False") {
		t.Errorf("Unencrypted row should render False: %q", lines[3])
	}

	// Columns align: every data row places "True"/"False" at the same offset.
	trueIdx := strings.Index(lines[2], "True")
	falseIdx := strings.Index(lines[3], "False")
	if trueIdx != falseIdx {
		t.Errorf("Encryption column misaligned: %d vs %d\n%s", trueIdx, falseIdx, out)
	}
}

func TestWriteTable_EmptyReport(t *testing.T) {
	var sb strings.Builder
	WriteTable(&sb, Report{})
	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Errorf("Empty report should render header and separator only, got %d lines", len(lines))
	}
}

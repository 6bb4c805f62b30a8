package report

import (
	"encoding/csv"
	"fmt"
	"os"

	gerrors "github.com/reem-012/gpg-checker/internal/errors"
)

// WriteCSV writes the report to outputPath with a header row. An existing
// destination is refused unless allowClobber is set, in which case it is
// overwritten in place.
func WriteCSV(outputPath string, rep Report, allowClobber bool) error {
	if _, err := os.Stat(outputPath); err == nil && !allowClobber {
		return fmt.Errorf("%s: %w", outputPath, gerrors.ErrOutputExists)
	}

	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", outputPath, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	headers := Headers()
	if err := writer.Write(headers); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, result := range rep {
		row := result.Row()
		if len(row) != len(headers) {
			return fmt.Errorf("%d fields against %d headers: %w", len(row), len(headers), gerrors.ErrRowWidthMismatch)
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row for %s: %w", result.FilePath, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// ReadCSV reads a report back from a CSV file written by WriteCSV.
func ReadCSV(path string) (Report, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%s: empty CSV, expected a header row", path)
	}

	headers := Headers()
	if len(records[0]) != len(headers) {
		return nil, fmt.Errorf("%s: %w", path, gerrors.ErrRowWidthMismatch)
	}
	for i, h := range headers {
		if records[0][i] != h {
			return nil, fmt.Errorf("%s: unexpected header %q, want %q", path, records[0][i], h)
		}
	}

	rep := make(Report, 0, len(records)-1)
	for _, record := range records[1:] {
		rep = append(rep, Result{
			FilePath:    record[0],
			Recipient:   record[1],
			IsEncrypted: record[2] == "True",
		})
	}
	return rep, nil
}

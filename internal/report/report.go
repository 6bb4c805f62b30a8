package report

// Result is the classification outcome for a single file.
type Result struct {
	// FilePath is the path exactly as it was discovered.
	FilePath string

	// Recipient is the hex-rendered key ID of the first recipient, or ""
	// when the file carries none.
	Recipient string

	// IsEncrypted is true iff a recipient was found.
	IsEncrypted bool
}

// Report is an ordered collection of results, one per scanned file, in
// discovery order.
type Report []Result

// Headers returns the column headers used by both the table and CSV output.
func Headers() []string {
	return []string{"File Path", "Recipient UID", "Is Encrypted"}
}

// Row renders the result as CSV/table fields, matching Headers.
func (r Result) Row() []string {
	encrypted := "False"
	if r.IsEncrypted {
		encrypted = "True"
	}
	return []string{r.FilePath, r.Recipient, encrypted}
}

// EncryptedCount returns the number of results marked encrypted.
func (rep Report) EncryptedCount() int {
	count := 0
	for _, r := range rep {
		if r.IsEncrypted {
			count++
		}
	}
	return count
}

// Package report holds the scan result model and its two sinks: a plain
// fixed-width terminal table and a CSV file with clobber protection.
//
// Rows appear in discovery order, one per scanned file, and the CSV header
// is always "File Path,Recipient UID,Is Encrypted". An existing CSV
// destination is refused with ErrOutputExists unless the caller allows
// overwriting.
package report

// Package errors provides typed error values for the gpg-checker application.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching. This makes
// error handling more robust and refactoring-safe.
//
// # Error Categories
//
// Errors are grouped by category:
//
//   - Input errors: problems with the scan target (ErrPathNotFound, ErrNotADirectory)
//   - Parse errors: unreadable OpenPGP framing (ErrMalformedHeader, ErrTruncatedPacket)
//   - Output errors: report writing conflicts (ErrOutputExists)
//
// # Usage
//
// Return errors from internal packages:
//
//	if info.Mode().IsDir() == false {
//	    return errors.ErrNotADirectory
//	}
//
// Handle errors in the CLI layer:
//
//	err := report.WriteCSV(path, rep, allowClobber)
//	if errors.Is(err, gerrors.ErrOutputExists) {
//	    // Suggest --allow-clobber
//	}
//
// Parse errors are internal to the classifier: they are downgraded to a
// not-encrypted result and never reach the CLI layer.
package errors

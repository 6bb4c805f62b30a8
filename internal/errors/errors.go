package errors

import "errors"

// Input errors indicate problems with the scan target supplied by the user.
var (
	// ErrPathNotFound indicates the scan directory does not exist.
	ErrPathNotFound = errors.New("path does not exist")

	// ErrNotADirectory indicates the scan path exists but is not a directory.
	ErrNotADirectory = errors.New("path is not a directory")

	// ErrNoFilesFound indicates the directory contained no regular files to classify.
	ErrNoFilesFound = errors.New("no files found in directory")
)

// Parse errors indicate a file's bytes could not be read as OpenPGP framing.
// They never cross the classifier boundary; callers see a not-encrypted result.
var (
	// ErrMalformedHeader indicates a byte that is not a valid packet header.
	ErrMalformedHeader = errors.New("malformed packet header")

	// ErrTruncatedPacket indicates the stream ended inside a header or length field.
	ErrTruncatedPacket = errors.New("truncated packet")

	// ErrUnsupportedVersion indicates a session-key packet version this tool does not read.
	ErrUnsupportedVersion = errors.New("unsupported session key packet version")
)

// Output errors indicate problems writing the report.
var (
	// ErrOutputExists indicates the CSV destination already exists and clobbering is not allowed.
	ErrOutputExists = errors.New("output file already exists and clobbering is not allowed")

	// ErrRowWidthMismatch indicates a report row does not match the header width.
	ErrRowWidthMismatch = errors.New("row width does not match header")
)

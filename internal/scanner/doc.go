// Package scanner orchestrates a directory scan: discovering files,
// classifying each one through the pgp decoder, and collecting results
// into a report.
//
// Classification is isolated per file. A file that cannot be opened or
// parsed yields a not-encrypted result and a logged diagnostic; it never
// aborts the batch. The Driver can fan classification out over workers
// while keeping the report in discovery order.
package scanner

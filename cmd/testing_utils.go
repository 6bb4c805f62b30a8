package cmd

import (
	"github.com/spf13/cobra"

	logger "github.com/reem-012/gpg-checker/internal/logging"
)

// Helper functions for testing

// GetScanCmd returns the ScanCmd for testing.
func GetScanCmd() *cobra.Command {
	return ScanCmd
}

// ResetGlobalState resets all global variables to their default values for testing.
func ResetGlobalState() {
	verbose = false
	debug = false
	scanDirectory = ""
	scanRecursive = false
	suppressOutput = false
	outFile = ""
	allowClobber = false
	excludeGlobs = nil
	scanWorkers = 0
}

// SetVerbose sets the verbose flag for testing.
func SetVerbose(v bool) {
	verbose = v
}

// SetDebug sets the debug flag for testing.
func SetDebug(d bool) {
	debug = d
}

// SetLogger sets the logger for testing.
func SetLogger(l logger.Logger) {
	Logger = l
}

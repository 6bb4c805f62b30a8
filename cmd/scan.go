package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/reem-012/gpg-checker/internal/configs"
	gerrors "github.com/reem-012/gpg-checker/internal/errors"
	logger "github.com/reem-012/gpg-checker/internal/logging"
	"github.com/reem-012/gpg-checker/internal/report"
	"github.com/reem-012/gpg-checker/internal/scanner"
	"github.com/reem-012/gpg-checker/internal/ui"
)

var (
	verbose bool
	debug   bool
	Logger  logger.Logger

	scanDirectory  string
	scanRecursive  bool
	suppressOutput bool
	outFile        string
	allowClobber   bool
	excludeGlobs   []string
	scanWorkers    int
)

var ScanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scans a directory and reports GPG encrypted files and their recipients",
	Long: `Scans a directory for OpenPGP (GPG) encrypted files by reading each file's
binary packet framing and extracting the recipient key ID, without decrypting.
Results render as a table on stdout and can be saved to CSV.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		Logger = logger.Logger{
			Verbose: verbose,
			Debug:   debug,
		}
		Logger.Debugf("Initializing scan command with verbose=%t, debug=%t", verbose, debug)
	},
	RunE: runScan,
}

func init() {
	ScanCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	ScanCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")

	ScanCmd.Flags().StringVarP(&scanDirectory, "directory", "d", "", "the directory to check (required)")
	ScanCmd.Flags().BoolVarP(&scanRecursive, "recursive", "r", false, "recurse into subdirectories")
	ScanCmd.Flags().BoolVarP(&suppressOutput, "suppress-output", "s", false, "do not print the table to stdout (requires --out-file)")
	ScanCmd.Flags().StringVarP(&outFile, "out-file", "o", "", "path to save the CSV report")
	ScanCmd.Flags().BoolVarP(&allowClobber, "allow-clobber", "a", false, "allow overwriting an existing out-file")
	ScanCmd.Flags().StringArrayVar(&excludeGlobs, "exclude", nil, "glob pattern to skip (repeatable)")
	ScanCmd.Flags().IntVar(&scanWorkers, "workers", 0, "number of parallel classification workers")

	if err := ScanCmd.MarkFlagRequired("directory"); err != nil {
		panic(err)
	}
}

func runScan(cmd *cobra.Command, args []string) error {
	Logger.Infof("Starting scan command")

	// Flag cross-validation happens before any filesystem work.
	if suppressOutput && outFile == "" {
		return fmt.Errorf("the %s flag requires the %s flag to be set", ui.Code.Sprint("--suppress-output"), ui.Code.Sprint("--out-file"))
	}
	if allowClobber && outFile == "" {
		return fmt.Errorf("the %s flag requires the %s flag to be set", ui.Code.Sprint("--allow-clobber"), ui.Code.Sprint("--out-file"))
	}

	config, err := configs.LoadScanConfig()
	if err != nil {
		Logger.WarnfAlways("Ignoring unreadable config file: %v", err)
		config = &configs.ScanConfig{}
	}
	applyConfigDefaults(cmd.Flags(), config)

	directory, err := scanner.ValidateDirectory(scanDirectory)
	if err != nil {
		return Logger.ErrorfAndReturn("invalid scan directory: %v", err)
	}
	Logger.Debugf("Scanning directory: %s (recursive=%t, workers=%d)", directory, scanRecursive, scanWorkers)

	spinner, cleanup := startSpinner("Scanning for GPG encrypted files...", verbose)
	defer cleanup()

	paths, err := scanner.ListFiles(directory, scanRecursive, excludeGlobs)
	if err != nil {
		return Logger.ErrorfAndReturn("failed to list files: %v", err)
	}
	Logger.Infof("Found %d files to classify", len(paths))

	if len(paths) > 500 {
		Logger.Warnf("Classifying %d files - this may take a moment", len(paths))
	}

	driver := scanner.Driver{
		Classifier: scanner.Classifier{Log: Logger},
		Workers:    scanWorkers,
	}
	rep := driver.Scan(paths)

	finalMessage := ui.Success.Sprint("✓") + fmt.Sprintf(" Scanned %d files, %d encrypted", len(rep), rep.EncryptedCount())
	if len(paths) == 0 {
		finalMessage = ui.Failure.Sprint("✗") + " No files found in " + ui.Path.Sprint(directory)
	}
	spinner.FinalMSG = finalMessage
	cleanup()

	if !suppressOutput {
		fmt.Println()
		report.WriteTable(os.Stdout, rep)
	}

	if outFile != "" {
		if err := report.WriteCSV(outFile, rep, allowClobber); err != nil {
			if errors.Is(err, gerrors.ErrOutputExists) {
				fmt.Println(ui.Failure.Sprint("✗") + " " + ui.Path.Sprint(outFile) + " already exists\n" +
					ui.Hint.Sprint("→") + " Re-run with " + ui.Code.Sprint("--allow-clobber") + " to overwrite it")
				return err
			}
			return Logger.ErrorfAndReturn("failed to write CSV report: %v", err)
		}
		fmt.Println(ui.Success.Sprint("✓") + " Report written to " + ui.Path.Sprint(outFile))
	}

	return nil
}

// applyConfigDefaults fills in values from the user config file for flags
// the user did not set on the command line.
func applyConfigDefaults(flags *pflag.FlagSet, config *configs.ScanConfig) {
	if !flags.Changed("workers") && config.Scan.Workers > 0 {
		scanWorkers = config.Scan.Workers
	}
	if !flags.Changed("recursive") && config.Scan.Recursive {
		scanRecursive = true
	}
	if len(config.Scan.Exclude) > 0 {
		excludeGlobs = append(excludeGlobs, config.Scan.Exclude...)
	}
}

package cmd

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync"
	"time"

	"github.com/briandowns/spinner"

	"github.com/reem-012/gpg-checker/internal/ui"
)

// startSpinner starts a progress spinner and returns it with an idempotent
// cleanup function. In verbose or debug mode the spinner stays off so log
// lines remain readable.
func startSpinner(message string, verbose bool) (*spinner.Spinner, func()) {
	Logger.Debugf("Starting spinner with message: %s", message)
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stdout))
	s.Suffix = " " + message

	if err := s.Color("cyan"); err != nil {
		// If we can't set spinner color, just continue without it.
		Logger.Warnf("Failed to set spinner color: %v", err)
	}

	if !verbose && !debug {
		s.Start()
		// Ensure log output is discarded unless in verbose mode.
		log.SetOutput(io.Discard)
	} else {
		Logger.Infof("Running in verbose or debug mode: %s", message)
	}

	var once sync.Once
	cleanup := func() {
		once.Do(func() {
			if !verbose && !debug {
				log.SetOutput(os.Stdout)
			}

			finalMsg := ""
			if s.FinalMSG != "" {
				finalMsg = ui.EnsureNewline(s.FinalMSG)
			}

			if s.Active() {
				s.FinalMSG = finalMsg
				s.Stop()
			} else if finalMsg != "" {
				// Spinner never ran (verbose mode); print the message directly.
				fmt.Print(finalMsg)
			}
		})
	}

	return s, cleanup
}

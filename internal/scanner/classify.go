package scanner

import (
	"os"

	logger "github.com/reem-012/gpg-checker/internal/logging"
	"github.com/reem-012/gpg-checker/internal/pgp"
	"github.com/reem-012/gpg-checker/internal/report"
)

// Classifier decides whether a file is OpenPGP-encrypted and to whom.
// It holds no state between files; a zero Classifier with a zero Logger
// is usable.
type Classifier struct {
	Log logger.Logger
}

// Classify inspects the file at path and returns its scan result. It never
// fails: unreadable files and byte streams that are not OpenPGP framing
// both come back as not-encrypted, with a diagnostic on the logger. Each
// file is opened, read, and closed within this call.
func (c Classifier) Classify(path string) report.Result {
	result := report.Result{FilePath: path}

	file, err := os.Open(path)
	if err != nil {
		c.Log.Warnf("Skipping unreadable file %s: %v", path, err)
		return result
	}
	defer file.Close()

	recipients, err := pgp.FindRecipient(file)
	if err != nil {
		// Not OpenPGP framing. The common case for ordinary files.
		c.Log.Debugf("No OpenPGP framing in %s: %v", path, err)
		return result
	}

	if recipients.SawSymmetric && !recipients.Found {
		// Passphrase-encrypted files carry no recipient and are reported
		// as not encrypted, matching the tool's recipient-based definition.
		c.Log.Warnf("%s is passphrase-encrypted (no recipient); reporting as not encrypted", path)
	}
	if recipients.SawHidden && !recipients.Found {
		c.Log.Warnf("%s is encrypted to a hidden recipient only; reporting as not encrypted", path)
	}

	if recipients.Found {
		result.Recipient = recipients.KeyID.String()
		result.IsEncrypted = true
		c.Log.Infof("%s is encrypted to %s", path, result.Recipient)
	}

	return result
}

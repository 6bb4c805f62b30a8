package pgp

import (
	"errors"
	"io"
)

// pkeskVersion is the session-key packet version whose body carries a
// plain 8-byte key ID right after the version octet.
const pkeskVersion = 3

// Recipients is the outcome of scanning one stream for session-key packets.
type Recipients struct {
	// KeyID is the first usable recipient key ID, valid only when Found.
	KeyID KeyID

	// Found reports whether a PKESK with a real (non-wildcard) key ID was seen.
	Found bool

	// SawSymmetric reports whether a symmetric (passphrase) session-key
	// packet was seen. Such files carry no recipient.
	SawSymmetric bool

	// SawHidden reports whether a PKESK with the all-zero wildcard key ID
	// was seen and skipped.
	SawHidden bool
}

// FindRecipient reads packet headers from r until it finds the first PKESK
// carrying a usable key ID, the stream ends, or the framing stops making
// sense. First recipient wins: scanning stops at the first usable key ID,
// so multi-recipient messages report only the leading one.
//
// The error is non-nil only for framing failures before any recipient was
// found; callers treat that the same as "no recipient".
func FindRecipient(r io.Reader) (Recipients, error) {
	var out Recipients

	pr := NewPacketReader(r)
	for {
		desc, err := pr.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return out, nil
			}
			return out, err
		}

		switch desc.Tag {
		case TagPKESK:
			// Version octet then the 8-byte key ID (version 3 layout).
			body, err := pr.ReadBodyPrefix(1 + len(KeyID{}))
			if err != nil {
				return out, err
			}
			if body[0] != pkeskVersion {
				// Unknown version; no key ID at a known offset. Skip it.
				continue
			}

			var id KeyID
			copy(id[:], body[1:])
			if id.IsWildcard() {
				out.SawHidden = true
				continue
			}

			out.KeyID = id
			out.Found = true
			return out, nil

		case TagSKESK:
			out.SawSymmetric = true

		default:
			// Any other packet type is skipped wholesale.
		}
	}
}

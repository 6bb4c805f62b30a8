package pgp

import "fmt"

// KeyID is the 8-byte identifier of an OpenPGP public key, as carried in
// the key ID field of a PKESK packet.
type KeyID [8]byte

// String renders the key ID as fixed-width upper-case hex, the format GnuPG
// prints long key IDs in.
func (id KeyID) String() string {
	return fmt.Sprintf("%016X", id[:])
}

// IsWildcard reports whether the key ID is the all-zero wildcard, which an
// encrypter uses to hide the intended recipient.
func (id KeyID) IsWildcard() bool {
	return id == KeyID{}
}

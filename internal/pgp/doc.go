// Package pgp implements the minimal slice of OpenPGP binary framing
// (RFC 4880) needed to identify the intended recipients of an encrypted
// message without decrypting it.
//
// A PacketReader walks the packet headers of a stream, old and new format
// alike, skipping bodies with bounded reads. FindRecipient drives it to the
// first Public-Key Encrypted Session Key packet and pulls out the 8-byte
// recipient key ID.
//
// This is deliberately not a full OpenPGP implementation: no decryption,
// no signature handling, no ASCII armor. Anything that fails to parse is
// simply not an OpenPGP message as far as this package is concerned.
package pgp

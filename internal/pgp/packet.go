package pgp

import (
	"fmt"
	"io"

	gerrors "github.com/reem-012/gpg-checker/internal/errors"
)

// OpenPGP packet tags this tool cares about (RFC 4880 section 4.3).
const (
	// TagPKESK is the Public-Key Encrypted Session Key packet.
	TagPKESK byte = 1

	// TagSKESK is the Symmetric-Key Encrypted Session Key packet.
	TagSKESK byte = 3
)

// maxKnownTag bounds the RFC 4880 packet-tag registry. Tags 60-63 are
// private/experimental and also accepted.
const maxKnownTag byte = 19

// PacketDescriptor describes one packet header parsed from a stream.
type PacketDescriptor struct {
	// Tag is the packet type, 0-63.
	Tag byte

	// BodyLength is the declared body length in bytes. For Partial packets
	// it is the first chunk's length; for Indeterminate packets it is -1.
	BodyLength int64

	// Indeterminate marks an old-format packet whose body runs to end of stream.
	Indeterminate bool

	// Partial marks a new-format packet using partial body length chunks.
	Partial bool

	// NewFormat distinguishes new-format from old-format headers.
	NewFormat bool

	// HeaderLen is the number of header bytes consumed, tag byte included.
	HeaderLen int
}

// PacketReader parses OpenPGP packet headers from a byte stream, yielding
// one PacketDescriptor per packet. The sequence is lazy, finite, and
// non-restartable: bodies are skipped with bounded reads, never buffered,
// so memory use stays constant regardless of declared packet size.
type PacketReader struct {
	r io.Reader

	// remaining counts unread bytes of the current packet's current chunk.
	// -1 means the body runs to end of stream (old-format indeterminate).
	remaining int64

	// partial is true while more length-prefixed chunks follow the current one.
	partial bool
}

// NewPacketReader returns a PacketReader over r.
func NewPacketReader(r io.Reader) *PacketReader {
	return &PacketReader{r: r}
}

// Next skips any unread body bytes of the previous packet and parses the
// next packet header. It returns io.EOF when the stream ends cleanly at a
// packet boundary. A first byte without the top bit set, a reserved tag,
// or a stream that ends inside a header yields a parse error.
func (pr *PacketReader) Next() (*PacketDescriptor, error) {
	if err := pr.skipBody(); err != nil {
		return nil, err
	}

	var first [1]byte
	n, err := io.ReadFull(pr.r, first[:])
	if err != nil {
		if n == 0 && (err == io.EOF || err == io.ErrUnexpectedEOF) {
			// Clean end of the packet sequence.
			return nil, io.EOF
		}
		return nil, fmt.Errorf("reading packet tag: %w", err)
	}

	c := first[0]
	if c&0x80 == 0 {
		return nil, fmt.Errorf("tag byte %#02x: %w", c, gerrors.ErrMalformedHeader)
	}

	desc := &PacketDescriptor{HeaderLen: 1}

	if c&0x40 != 0 {
		// New format: tag in the low six bits, variable-length length field.
		desc.NewFormat = true
		desc.Tag = c & 0x3f

		length, lengthOctets, partial, err := pr.readNewLength()
		if err != nil {
			return nil, err
		}
		desc.BodyLength = length
		desc.Partial = partial
		desc.HeaderLen += lengthOctets
	} else {
		// Old format: tag in bits 5-2, length type in bits 1-0.
		desc.Tag = (c >> 2) & 0x0f

		lengthType := c & 0x03
		if lengthType == 3 {
			desc.Indeterminate = true
			desc.BodyLength = -1
		} else {
			octets := 1 << lengthType // 0,1,2 -> 1,2,4 bytes
			length, err := pr.readBigEndian(octets)
			if err != nil {
				return nil, err
			}
			desc.BodyLength = length
			desc.HeaderLen += octets
		}
	}

	if desc.Tag == 0 {
		// Tag zero is reserved and must never appear in a valid stream.
		return nil, fmt.Errorf("reserved tag 0: %w", gerrors.ErrMalformedHeader)
	}
	if desc.Tag > maxKnownTag && desc.Tag < 60 {
		return nil, fmt.Errorf("unassigned tag %d: %w", desc.Tag, gerrors.ErrMalformedHeader)
	}

	pr.remaining = desc.BodyLength
	pr.partial = desc.Partial
	if desc.Indeterminate {
		pr.remaining = -1
	}

	return desc, nil
}

// ReadBodyPrefix reads exactly n bytes from the current packet's body,
// crossing partial-length chunk boundaries as needed. It fails with
// ErrTruncatedPacket when the body holds fewer than n bytes.
func (pr *PacketReader) ReadBodyPrefix(n int) ([]byte, error) {
	buf := make([]byte, n)
	read := 0

	for read < n {
		if pr.remaining == 0 {
			if !pr.partial {
				return nil, fmt.Errorf("body ended after %d of %d bytes: %w", read, n, gerrors.ErrTruncatedPacket)
			}
			if err := pr.nextChunk(); err != nil {
				return nil, err
			}
			continue
		}

		want := int64(n - read)
		if pr.remaining > 0 && want > pr.remaining {
			want = pr.remaining
		}

		m, err := io.ReadFull(pr.r, buf[read:read+int(want)])
		read += m
		if pr.remaining > 0 {
			pr.remaining -= int64(m)
		}
		if err != nil {
			return nil, fmt.Errorf("reading packet body: %w", gerrors.ErrTruncatedPacket)
		}
	}

	return buf, nil
}

// skipBody discards whatever is left of the current packet's body.
func (pr *PacketReader) skipBody() error {
	if pr.remaining < 0 {
		// Indeterminate length: the packet owns the rest of the stream.
		if _, err := io.Copy(io.Discard, pr.r); err != nil {
			return fmt.Errorf("discarding indeterminate body: %w", err)
		}
		pr.remaining = 0
		return nil
	}

	for {
		if pr.remaining > 0 {
			if _, err := io.CopyN(io.Discard, pr.r, pr.remaining); err != nil {
				return fmt.Errorf("discarding packet body: %w", gerrors.ErrTruncatedPacket)
			}
			pr.remaining = 0
		}
		if !pr.partial {
			return nil
		}
		if err := pr.nextChunk(); err != nil {
			return err
		}
	}
}

// nextChunk reads the next partial body length header and updates the
// remaining/partial state.
func (pr *PacketReader) nextChunk() error {
	length, _, partial, err := pr.readNewLength()
	if err != nil {
		return err
	}
	pr.remaining = length
	pr.partial = partial
	return nil
}

// readNewLength parses a new-format length field (RFC 4880 section 4.2.2):
// one octet up to 191, two octets up to 8383, five octets for a full
// 32-bit length, and 224-254 for a power-of-two partial chunk.
func (pr *PacketReader) readNewLength() (length int64, octets int, partial bool, err error) {
	var b [4]byte
	if _, err := io.ReadFull(pr.r, b[:1]); err != nil {
		return 0, 0, false, fmt.Errorf("reading length octet: %w", gerrors.ErrTruncatedPacket)
	}

	switch l := b[0]; {
	case l < 192:
		return int64(l), 1, false, nil
	case l < 224:
		if _, err := io.ReadFull(pr.r, b[:1]); err != nil {
			return 0, 0, false, fmt.Errorf("reading length octet: %w", gerrors.ErrTruncatedPacket)
		}
		return int64(l-192)<<8 + int64(b[0]) + 192, 2, false, nil
	case l == 255:
		if _, err := io.ReadFull(pr.r, b[:4]); err != nil {
			return 0, 0, false, fmt.Errorf("reading length octets: %w", gerrors.ErrTruncatedPacket)
		}
		length = int64(b[0])<<24 | int64(b[1])<<16 | int64(b[2])<<8 | int64(b[3])
		return length, 5, false, nil
	default:
		// 224-254: partial body length, a power-of-two chunk size.
		return int64(1) << (l & 0x1f), 1, true, nil
	}
}

// readBigEndian reads an old-format length field of 1, 2, or 4 octets.
func (pr *PacketReader) readBigEndian(octets int) (int64, error) {
	var b [4]byte
	if _, err := io.ReadFull(pr.r, b[:octets]); err != nil {
		return 0, fmt.Errorf("reading length octets: %w", gerrors.ErrTruncatedPacket)
	}

	var length int64
	for i := 0; i < octets; i++ {
		length = length<<8 | int64(b[i])
	}
	return length, nil
}

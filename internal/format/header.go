package format

import (
	"bytes"
	"fmt"

	"github.com/joshuapare/etsvibes/internal/buf"
)

// Header captures the fixed part of an encrypted (ScsC) container.
//
//	Offset  Size  Description
//	------  ----  ----------------------------------------------------------
//	 0x00    4    'S' 'c' 's' 'C'
//	 0x04   32    HMAC-SHA256 over IV || ciphertext
//	 0x24   16    AES-CBC initialization vector
//	 0x34    4    Decompressed size hint (little-endian)
//	 0x38    N    Ciphertext
//
// The size hint is advisory: it sizes the inflate buffer and nothing more.
type Header struct {
	Tag      [TagSize]byte
	IV       [IVSize]byte
	SizeHint uint32
}

// ParseHeader validates the marker and extracts the header fields.
func ParseHeader(b []byte) (Header, error) {
	if len(b) < HeaderSize {
		return Header{}, fmt.Errorf("scsc header: %d bytes: %w", len(b), ErrBufferTooSmall)
	}
	if !bytes.Equal(b[:MarkerSize], EncryptedMarker) {
		return Header{}, fmt.Errorf("scsc header: marker %q: %w", b[:MarkerSize], ErrUnknownFormat)
	}
	var h Header
	copy(h.Tag[:], b[TagOffset:TagOffset+TagSize])
	copy(h.IV[:], b[IVOffset:IVOffset+IVSize])
	h.SizeHint = buf.U32LE(b[SizeHintOffset:])
	return h, nil
}

// Payload returns the ciphertext that follows the header. It does not copy.
func Payload(b []byte) []byte {
	p, ok := buf.Slice(b, HeaderSize, len(b)-HeaderSize)
	if !ok {
		return nil
	}
	return p
}

// AppendContainer appends a complete encrypted container (header followed by
// ciphertext) to dst.
func AppendContainer(dst []byte, h Header, ciphertext []byte) []byte {
	var hdr [HeaderSize]byte
	copy(hdr[:MarkerSize], EncryptedMarker)
	copy(hdr[TagOffset:], h.Tag[:])
	copy(hdr[IVOffset:], h.IV[:])
	buf.PutU32LE(hdr[SizeHintOffset:], h.SizeHint)
	dst = append(dst, hdr[:]...)
	return append(dst, ciphertext...)
}

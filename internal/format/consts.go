// Package format houses the low-level layout of SCS save containers: the
// four-byte markers that identify a container variant and the fixed-offset
// header that precedes the ciphertext of an encrypted save. Everything here is
// a protocol constant shared with the game client; changing a value breaks
// compatibility with existing saves.
package format

var (
	// EncryptedMarker opens every encrypted (AES-CBC + zlib) container.
	EncryptedMarker = []byte{'S', 'c', 's', 'C'}

	// PlainMarker opens a plain-text SII document written by the game.
	PlainMarker = []byte{'S', 'i', 'i', 'N'}

	// BinaryMarker opens a binary-serialized SII document (g_save_format 0).
	// These are rejected outright.
	BinaryMarker = []byte{'B', 'S', 'I', 'I'}
)

const (
	// MarkerSize is the length of every container marker.
	MarkerSize = 4

	// TagOffset / TagSize locate the HMAC-SHA256 tag.
	TagOffset = 0x04
	TagSize   = 32

	// IVOffset / IVSize locate the AES-CBC initialization vector.
	IVOffset = 0x24
	IVSize   = 16

	// SizeHintOffset locates the little-endian uint32 decompressed size hint.
	SizeHintOffset = 0x34
	SizeHintSize   = 4

	// HeaderSize is the size of the encrypted container header; ciphertext
	// starts right after it.
	HeaderSize = 0x38

	// BlockSize is the AES block size. Ciphertext length is always a
	// multiple of it.
	BlockSize = 16

	// MaxPadding is the largest PKCS7 padding length for BlockSize.
	MaxPadding = BlockSize

	// blockMask is BlockSize-1, used by Align16.
	blockMask = BlockSize - 1
)

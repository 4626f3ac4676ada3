package format

import "errors"

var (
	// ErrBufferTooSmall indicates the buffer lacked the bytes required for a
	// marker or an encrypted header.
	ErrBufferTooSmall = errors.New("format: buffer too small")
	// ErrUnsupportedFormat indicates a binary (BSII) save. Switch the game to
	// g_save_format 2 to get text saves.
	ErrUnsupportedFormat = errors.New("format: unsupported binary format BSII")
	// ErrUnknownFormat indicates no marker matched and the bytes are not UTF-8.
	ErrUnknownFormat = errors.New("format: unknown format")
	// ErrCryptoUnavailable indicates the AES primitive could not be constructed.
	ErrCryptoUnavailable = errors.New("format: cipher unavailable")
	// ErrDecryptionFailed indicates the AES-CBC operation failed.
	ErrDecryptionFailed = errors.New("format: decryption failed")
	// ErrDecompressionFailed indicates neither zlib attempt produced a stream.
	ErrDecompressionFailed = errors.New("format: decompression failed")
	// ErrUTF8Decode indicates the decoded document is not valid UTF-8.
	ErrUTF8Decode = errors.New("format: invalid utf-8")
)

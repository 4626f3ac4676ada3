package sii

import (
	"fmt"

	"github.com/joshuapare/etsvibes/internal/format"
	"github.com/joshuapare/etsvibes/internal/scsc"
)

// Variant identifies the container a document was read from.
type Variant = format.Variant

// Container variants (re-exported for convenience).
const (
	VariantEncrypted     = format.VariantEncrypted
	VariantPlainTagged   = format.VariantPlainTagged
	VariantPlainUntagged = format.VariantPlainUntagged
)

// Codec errors (re-exported for convenience). Match with errors.Is.
var (
	ErrBufferTooSmall      = format.ErrBufferTooSmall
	ErrUnsupportedFormat   = format.ErrUnsupportedFormat
	ErrUnknownFormat       = format.ErrUnknownFormat
	ErrCryptoUnavailable   = format.ErrCryptoUnavailable
	ErrDecryptionFailed    = format.ErrDecryptionFailed
	ErrDecompressionFailed = format.ErrDecompressionFailed
	ErrUTF8Decode          = format.ErrUTF8Decode
)

// Decode detects the container variant of data and returns its document.
// Plain documents are returned verbatim, including any SiiN marker.
func Decode(data []byte) (string, Variant, error) {
	variant, err := format.Detect(data)
	if err != nil {
		return "", variant, err
	}
	if variant != format.VariantEncrypted {
		return string(data), variant, nil
	}
	text, err := scsc.Decrypt(data)
	if err != nil {
		return "", variant, fmt.Errorf("decrypt save: %w", err)
	}
	return text, variant, nil
}

// Encode wraps text into a new encrypted container.
func Encode(text string) ([]byte, error) {
	data, err := scsc.Encrypt(text)
	if err != nil {
		return nil, fmt.Errorf("encrypt save: %w", err)
	}
	return data, nil
}

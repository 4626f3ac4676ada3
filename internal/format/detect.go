package format

import (
	"bytes"
	"fmt"
	"unicode/utf8"
)

// Variant identifies how a container stores its document.
type Variant int

const (
	// VariantUnknown is the zero value; Detect never returns it without an error.
	VariantUnknown Variant = iota
	// VariantEncrypted is an AES-CBC + zlib container (ScsC).
	VariantEncrypted
	// VariantPlainTagged is a text document starting with SiiN.
	VariantPlainTagged
	// VariantPlainUntagged is any other valid UTF-8 text.
	VariantPlainUntagged
)

// String returns the human-readable name of a variant.
func (v Variant) String() string {
	switch v {
	case VariantEncrypted:
		return "encrypted"
	case VariantPlainTagged:
		return "plain"
	case VariantPlainUntagged:
		return "plain-untagged"
	default:
		return fmt.Sprintf("unknown(%d)", int(v))
	}
}

// IsPlain reports whether the variant holds the document as text.
func (v Variant) IsPlain() bool {
	return v == VariantPlainTagged || v == VariantPlainUntagged
}

// Detect classifies b by its leading marker. The encrypted marker is checked
// first, binary saves are rejected, and everything else must be valid UTF-8.
// A SiiN document with broken UTF-8 reports ErrUTF8Decode; untagged garbage
// reports ErrUnknownFormat.
func Detect(b []byte) (Variant, error) {
	if len(b) < MarkerSize {
		return VariantUnknown, fmt.Errorf("detect: %d bytes: %w", len(b), ErrBufferTooSmall)
	}
	marker := b[:MarkerSize]
	switch {
	case bytes.Equal(marker, EncryptedMarker):
		return VariantEncrypted, nil
	case bytes.Equal(marker, BinaryMarker):
		return VariantUnknown, fmt.Errorf("detect: %w", ErrUnsupportedFormat)
	}
	tagged := bytes.Equal(marker, PlainMarker)
	if !utf8.Valid(b) {
		if tagged {
			return VariantUnknown, fmt.Errorf("detect: SiiN document: %w", ErrUTF8Decode)
		}
		return VariantUnknown, fmt.Errorf("detect: marker %q: %w", marker, ErrUnknownFormat)
	}
	if tagged {
		return VariantPlainTagged, nil
	}
	return VariantPlainUntagged, nil
}

package scsc

import (
	"bytes"
	"fmt"

	"github.com/klauspost/compress/zlib"

	"github.com/joshuapare/etsvibes/internal/format"
	"github.com/joshuapare/etsvibes/internal/logger"
)

// maxSizeHint caps how much the inflate buffer is pre-grown from the header's
// size hint. Real saves are a few MiB; larger hints are ignored.
const maxSizeHint = 64 << 20

// deflate compresses data as a zlib stream at best compression.
func deflate(data []byte) ([]byte, error) {
	var out bytes.Buffer
	w, err := zlib.NewWriterLevel(&out, zlib.BestCompression)
	if err != nil {
		return nil, fmt.Errorf("zlib writer: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("zlib compress: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("zlib compress: %w", err)
	}
	return out.Bytes(), nil
}

// inflate decompresses a zlib stream. Bytes after the end of the stream are
// ignored. sizeHint only pre-sizes the output.
func inflate(src []byte, sizeHint uint32) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(src))
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var out bytes.Buffer
	if sizeHint > 0 && sizeHint <= maxSizeHint {
		out.Grow(int(sizeHint))
	}
	if _, err := out.ReadFrom(r); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// inflateWithFallback inflates the decrypted buffer as-is first. If that
// fails, the last byte is taken as a PKCS7 padding length and, when it is in
// 1..16, the stream is retried without the padding.
func inflateWithFallback(decrypted []byte, sizeHint uint32) ([]byte, error) {
	out, err := inflate(decrypted, sizeHint)
	if err == nil {
		return out, nil
	}

	if len(decrypted) == 0 {
		return nil, fmt.Errorf("%w: %w", format.ErrDecompressionFailed, err)
	}
	padding := int(decrypted[len(decrypted)-1])
	if padding < 1 || padding > format.MaxPadding || padding > len(decrypted) {
		return nil, fmt.Errorf("%w: padding byte %d out of range: %w", format.ErrDecompressionFailed, padding, err)
	}

	logger.Debug("inflate failed, retrying without padding", "padding", padding, "error", err)
	out, retryErr := inflate(decrypted[:len(decrypted)-padding], sizeHint)
	if retryErr != nil {
		return nil, fmt.Errorf("%w: %w", format.ErrDecompressionFailed, retryErr)
	}
	return out, nil
}

// pad appends PKCS7 padding up to the next block boundary. A full block of
// padding is added when data is already aligned.
func pad(data []byte) []byte {
	n := format.BlockSize - len(data)%format.BlockSize
	out := make([]byte, len(data), len(data)+n)
	copy(out, data)
	for i := 0; i < n; i++ {
		out = append(out, byte(n))
	}
	return out
}

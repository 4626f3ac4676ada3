package scsc

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"
	"math"
	"unicode/utf8"

	"github.com/joshuapare/etsvibes/internal/format"
)

// randReader supplies IVs. Tests swap it for a deterministic source.
var randReader io.Reader = rand.Reader

func newBlock() (cipher.Block, error) {
	block, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", format.ErrCryptoUnavailable, err)
	}
	return block, nil
}

// Decrypt decodes an encrypted container into its UTF-8 document.
//
// Ciphertext that is not block-aligned (a truncated file) is zero-padded to
// the next block before decryption. The header tag is read but not verified.
// A header with no ciphertext decodes to the empty document.
func Decrypt(b []byte) (string, error) {
	h, err := format.ParseHeader(b)
	if err != nil {
		return "", err
	}

	payload := format.Payload(b)
	ciphertext := make([]byte, format.Align16(len(payload)))
	copy(ciphertext, payload)
	if len(ciphertext) == 0 {
		return "", nil
	}

	decrypted, err := decryptBlocks(ciphertext, h.IV[:])
	if err != nil {
		return "", err
	}

	out, err := inflateWithFallback(decrypted, h.SizeHint)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(out) {
		return "", fmt.Errorf("scsc document: %w", format.ErrUTF8Decode)
	}
	return string(out), nil
}

// Encrypt wraps a UTF-8 document into a new encrypted container with a fresh
// random IV.
func Encrypt(text string) ([]byte, error) {
	data := []byte(text)
	if uint64(len(data)) > math.MaxUint32 {
		return nil, fmt.Errorf("scsc encode: document of %d bytes exceeds size hint range", len(data))
	}

	compressed, err := deflate(data)
	if err != nil {
		return nil, err
	}

	var iv [format.IVSize]byte
	if _, err := io.ReadFull(randReader, iv[:]); err != nil {
		return nil, fmt.Errorf("scsc encode: generate iv: %w", err)
	}

	return seal(pad(compressed), iv, uint32(len(data)))
}

// seal encrypts a block-aligned payload and frames it with a tagged header.
func seal(payload []byte, iv [format.IVSize]byte, sizeHint uint32) ([]byte, error) {
	if len(payload)%format.BlockSize != 0 {
		return nil, fmt.Errorf("scsc encode: payload of %d bytes is not block aligned", len(payload))
	}
	block, err := newBlock()
	if err != nil {
		return nil, err
	}

	ciphertext := make([]byte, len(payload))
	cipher.NewCBCEncrypter(block, iv[:]).CryptBlocks(ciphertext, payload)

	h := format.Header{IV: iv, SizeHint: sizeHint}
	copy(h.Tag[:], tag(iv[:], ciphertext))

	out := make([]byte, 0, format.HeaderSize+len(ciphertext))
	return format.AppendContainer(out, h, ciphertext), nil
}

func decryptBlocks(ciphertext, iv []byte) ([]byte, error) {
	if len(ciphertext)%format.BlockSize != 0 {
		return nil, fmt.Errorf("%w: ciphertext of %d bytes is not block aligned", format.ErrDecryptionFailed, len(ciphertext))
	}
	if len(iv) != format.IVSize {
		return nil, fmt.Errorf("%w: iv of %d bytes", format.ErrDecryptionFailed, len(iv))
	}
	block, err := newBlock()
	if err != nil {
		return nil, err
	}

	plain := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plain, ciphertext)
	return plain, nil
}

// tag computes HMAC-SHA256 over iv || ciphertext.
func tag(iv, ciphertext []byte) []byte {
	mac := hmac.New(sha256.New, key[:])
	mac.Write(iv)
	mac.Write(ciphertext)
	return mac.Sum(nil)
}

// Package scsc implements the cipher/compression engine for encrypted SCS
// save containers: AES-256-CBC around a zlib stream, framed by the header in
// internal/format.
package scsc

// key is the AES-256 key the game client uses for every encrypted save. It
// doubles as the HMAC-SHA256 key for the container tag.
var key = [32]byte{
	0x2a, 0x5f, 0xcb, 0x17, 0x91, 0xd2, 0x2f, 0xb6,
	0x02, 0x45, 0xb3, 0xd8, 0x36, 0x9e, 0xd0, 0xb2,
	0xc2, 0x73, 0x71, 0x56, 0x3f, 0xbf, 0x1f, 0x3c,
	0x9e, 0xdf, 0x6b, 0x11, 0x82, 0x5a, 0x5d, 0x0a,
}

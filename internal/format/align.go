package format

// Align16 returns n aligned up to the next AES block boundary.
//
// Example:
//
//	Align16(0)  = 0
//	Align16(1)  = 16
//	Align16(16) = 16
//	Align16(17) = 32
func Align16(n int) int {
	return (n + blockMask) & ^blockMask
}

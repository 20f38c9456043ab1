package decoder

import (
	"encoding/binary"
	"hash/crc32"
)

// checkCRC reports whether the 4-byte little-endian trailer following the
// first length bytes of buff matches the computed CRC-32 of those bytes.
//
// The wire polynomial (reflected, 0xEDB88320) is exactly the IEEE
// polynomial hash/crc32 uses by default, so the primitive itself is
// delegated to the standard library rather than reimplemented — the spec
// treats the CRC-32 hash as an external collaborator, only the
// check-and-compare step is this package's concern.
func checkCRC(buff []byte, length int) bool {
	if len(buff) < length+4 {
		return false
	}
	want := binary.LittleEndian.Uint32(buff[length : length+4])
	got := crc32.ChecksumIEEE(buff[:length])
	return got == want
}

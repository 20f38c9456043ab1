package decoder

import (
	"encoding/binary"
	"math"
)

// Little-endian field readers over a byte slice at offset 0 of the
// passed sub-slice. Named after the teacher's crescent.go/binex.go
// readers (U1/I1/U2L/U4L/I4L/R4L/R8L).

func u1(b []byte) uint8 { return b[0] }

func i1(b []byte) int8 { return int8(b[0]) }

func u2l(b []byte) uint16 { return binary.LittleEndian.Uint16(b) }

func i2l(b []byte) int16 { return int16(binary.LittleEndian.Uint16(b)) }

func u4l(b []byte) uint32 { return binary.LittleEndian.Uint32(b) }

func i4l(b []byte) int32 { return int32(binary.LittleEndian.Uint32(b)) }

func r4l(b []byte) float32 { return math.Float32frombits(binary.LittleEndian.Uint32(b)) }

func r8l(b []byte) float64 { return math.Float64frombits(binary.LittleEndian.Uint64(b)) }

// clampSNR converts a dB-Hz value to its stored form, snrUnit per count,
// returning 0 if the scaled value falls outside a byte's range.
func clampSNR(snr float64) uint16 {
	v := snr / snrUnit
	if v < 0 || v > 255 {
		return 0
	}
	return uint16(v + 0.5)
}

// exsign sign-extends the low `bits` bits of v.
func exsign(v uint32, bits int) int32 {
	if v&(1<<uint(bits-1)) != 0 {
		return int32(v) - int32(1<<uint(bits))
	}
	return int32(v)
}

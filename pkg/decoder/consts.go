// Package decoder implements a streaming decoder for a Unicore/NovAtel
// OEM4-style binary GNSS telemetry protocol: frame synchronization, CRC
// validation, tracking-status and RANGE/RANGECMP observation decoding,
// and GPS/GLONASS/Galileo/BeiDou ephemeris decoding.
package decoder

import "github.com/fxgnss/unicoreraw/pkg/satcat"

// Frame synchronization and header layout.
const (
	sync1 = 0xAA
	sync2 = 0x44
	sync3 = 0x12

	headerLen  = 28
	maxRawLen  = 16384
	maxOBS     = 96
	nFreq      = 3
	nExOBS     = 0
	snrUnit    = 0.25  // SNR storage unit, dB-Hz per count
	maxVal     = 8388608.0 // 2^23, RANGECMP ADR roll modulus
	offFRQNO   = -7
)

// Message IDs. RANGE/RANGECMP match the teacher's real NovAtel
// assignments. The ephemeris IDs below follow this decoder's own wire
// contract (see DESIGN.md "GPS ephemeris body layout"): GPS=7 and
// BDS=1047 differ from the teacher's RAWEPHEM=41/ID_BDSEPHEMERIS=1696
// because this protocol decodes a single pre-parsed ephemeris message
// per constellation rather than raw subframes.
const (
	idRange    = 43
	idRangeCmp = 140
	idGPSEph   = 7
	idGLOEph   = 723
	idGALEph   = 1122
	idBDSEph   = 1047
)

// LLI bits.
const (
	lliSlip  = 0x01
	lliHalfC = 0x02
	lliHalfA = 0x40
)

// Tracking-status → satcat system mapping (bits 16-18 of the status word).
var statSys = [7]int{
	satcat.SysGPS,
	satcat.SysGLO,
	satcat.SysSBS,
	satcat.SysGAL,
	satcat.SysBDS,
	satcat.SysQZS,
	satcat.SysNone, // reserved; this protocol never emits this system code
}

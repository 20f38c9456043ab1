// Package satcat is a reference implementation of the satellite-number
// registry and wavelength/URA lookup tables that the decoder treats as
// external collaborators. A host engine is free to supply its own.
package satcat

// System identifiers (bit flags), one for each system the tracking-status
// system field can encode; pkg/decoder maps that field's values onto them.
const (
	SysNone = 0
	SysGPS  = 1 << 0
	SysGLO  = 1 << 1
	SysGAL  = 1 << 2
	SysQZS  = 1 << 3
	SysBDS  = 1 << 4
	SysSBS  = 1 << 5
)

// PRN ranges and per-system satellite counts. Scoped to the six systems
// this protocol's tracking-status word can express; IRN/LEO/NavIC are
// dropped since no (system, signal) pair in trackstat.go ever maps to
// them.
const (
	MinPRNGPS, MaxPRNGPS, NSatGPS = 1, 32, 32
	MinPRNGLO, MaxPRNGLO, NSatGLO = 1, 27, 27
	MinPRNGAL, MaxPRNGAL, NSatGAL = 1, 36, 36
	MinPRNQZS, MaxPRNQZS, NSatQZS = 193, 202, 10
	MinPRNBDS, MaxPRNBDS, NSatBDS = 1, 63, 63
	MinPRNSBS, MaxPRNSBS, NSatSBS = 120, 158, 39

	MaxSat = NSatGPS + NSatGLO + NSatGAL + NSatQZS + NSatBDS + NSatSBS
)

// SatNo returns the dense 1-based satellite index for (sys, prn), or 0 if
// prn is out of range for sys.
func SatNo(sys, prn int) int {
	switch sys {
	case SysGPS:
		if prn < MinPRNGPS || prn > MaxPRNGPS {
			return 0
		}
		return prn - MinPRNGPS + 1
	case SysGLO:
		if prn < MinPRNGLO || prn > MaxPRNGLO {
			return 0
		}
		return NSatGPS + prn - MinPRNGLO + 1
	case SysGAL:
		if prn < MinPRNGAL || prn > MaxPRNGAL {
			return 0
		}
		return NSatGPS + NSatGLO + prn - MinPRNGAL + 1
	case SysQZS:
		if prn < MinPRNQZS || prn > MaxPRNQZS {
			return 0
		}
		return NSatGPS + NSatGLO + NSatGAL + prn - MinPRNQZS + 1
	case SysBDS:
		if prn < MinPRNBDS || prn > MaxPRNBDS {
			return 0
		}
		return NSatGPS + NSatGLO + NSatGAL + NSatQZS + prn - MinPRNBDS + 1
	case SysSBS:
		if prn < MinPRNSBS || prn > MaxPRNSBS {
			return 0
		}
		return NSatGPS + NSatGLO + NSatGAL + NSatQZS + NSatBDS + prn - MinPRNSBS + 1
	}
	return 0
}

// SatSys returns the system and, via prn, the PRN for a dense satellite
// index. Returns SysNone if sat is out of range.
func SatSys(sat int) (sys, prn int) {
	switch {
	case sat <= 0:
		return SysNone, 0
	case sat <= NSatGPS:
		return SysGPS, sat + MinPRNGPS - 1
	case sat <= NSatGPS+NSatGLO:
		return SysGLO, sat - NSatGPS + MinPRNGLO - 1
	case sat <= NSatGPS+NSatGLO+NSatGAL:
		return SysGAL, sat - NSatGPS - NSatGLO + MinPRNGAL - 1
	case sat <= NSatGPS+NSatGLO+NSatGAL+NSatQZS:
		return SysQZS, sat - NSatGPS - NSatGLO - NSatGAL + MinPRNQZS - 1
	case sat <= NSatGPS+NSatGLO+NSatGAL+NSatQZS+NSatBDS:
		return SysBDS, sat - NSatGPS - NSatGLO - NSatGAL - NSatQZS + MinPRNBDS - 1
	case sat <= MaxSat:
		return SysSBS, sat - NSatGPS - NSatGLO - NSatGAL - NSatQZS - NSatBDS + MinPRNSBS - 1
	}
	return SysNone, 0
}

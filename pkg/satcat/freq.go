package satcat

// CLight is the speed of light used for ADR/pseudorange cross-checks.
const CLight = 299792458.0

// Code identifiers. Limited to the codes trackstat.go's (system, signal)
// table can ever produce.
const (
	CodeNone = 0
	CodeL1C  = 1 // GPS/QZS/GLO/SBS L1 C/A
	CodeL2W  = 2 // GPS L2 P(Y), semi-codeless
	CodeE1B  = 3 // Galileo E1B
	CodeE1C  = 4 // Galileo E1C
	CodeE5bQ = 5 // Galileo E5b-Q
	CodeB1I  = 6 // BDS B1I
	CodeB2I  = 7 // BDS B2I
	CodeL2C  = 8 // GLONASS/QZS L2C
	CodeL5I  = 9 // SBAS L5I
)

// Carrier base frequencies (Hz).
const (
	freqL1    = 1.57542e9
	freqL2    = 1.22760e9
	freqL5    = 1.17645e9
	freqE5b   = 1.20714e9
	freqB1I   = 1.561098e9
	freqB2I   = 1.20714e9
	freqG1Base = 1.60200e9
	freqG1Step = 0.56250e6
	freqG2Base = 1.24600e9
	freqG2Step = 0.43750e6
)

// CarrierFreq returns the carrier frequency in Hz for (sys, code), with
// fcn the GLONASS frequency channel number (centered at 0; unused for
// other systems). Returns 0 for a code this system does not carry.
func CarrierFreq(sys, code, fcn int) float64 {
	switch sys {
	case SysGPS, SysQZS:
		switch code {
		case CodeL1C:
			return freqL1
		case CodeL2W, CodeL2C:
			return freqL2
		}
	case SysGLO:
		switch code {
		case CodeL1C:
			return freqG1Base + freqG1Step*float64(fcn)
		case CodeL2C:
			return freqG2Base + freqG2Step*float64(fcn)
		}
	case SysGAL:
		switch code {
		case CodeE1B, CodeE1C:
			return freqL1
		case CodeE5bQ:
			return freqE5b
		}
	case SysBDS:
		switch code {
		case CodeB1I:
			return freqB1I
		case CodeB2I:
			return freqB2I
		}
	case SysSBS:
		switch code {
		case CodeL1C:
			return freqL1
		case CodeL5I:
			return freqL5
		}
	}
	return 0.0
}

// GloChannelSource supplies the registered GLONASS frequency channel
// number for a satellite, decoupling freq.go from any particular nav
// store layout. A channel of 0 with ok=false means "unknown".
type GloChannelSource interface {
	GloChannel(sat int) (fcn int, ok bool)
}

// SatFreq resolves the carrier frequency for sat/code, consulting src for
// the GLONASS channel number when sys is SysGLO. Returns 0 if the channel
// is not yet known.
func SatFreq(sat, code int, src GloChannelSource) float64 {
	sys, _ := SatSys(sat)
	fcn := 0
	if sys == SysGLO {
		if src == nil {
			return 0.0
		}
		n, ok := src.GloChannel(sat)
		if !ok {
			return 0.0
		}
		fcn = n
	}
	return CarrierFreq(sys, code, fcn)
}

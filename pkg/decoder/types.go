package decoder

import "github.com/fxgnss/unicoreraw/pkg/satcat"

// ObsD is one satellite's observations for a single epoch. Arrays are
// indexed by slot (see trackstat.go's checkSlot).
type ObsD struct {
	Time Gtime
	Sat  int
	L    [nFreq + nExOBS]float64 // carrier phase (cycles)
	P    [nFreq + nExOBS]float64 // pseudorange (m)
	D    [nFreq + nExOBS]float64 // Doppler (Hz)
	SNR  [nFreq + nExOBS]uint16  // C/N0 in snrUnit (0.25 dB-Hz) counts
	LLI  [nFreq + nExOBS]uint8
	Code [nFreq + nExOBS]uint8
}

// ObsBuf is the epoch accumulator: at most maxOBS satellites, all
// sharing one epoch time.
type ObsBuf struct {
	Data [maxOBS]ObsD
	N    int
}

// Eph is a Keplerian broadcast ephemeris, shared by GPS/Galileo/BeiDou.
type Eph struct {
	Sat            int
	Iode, Iodc     int
	Sva            int // URA/SISA index
	Svh            int // health bits, packing is system-specific
	Week           int
	Code           int // Galileo data-source bits; unused elsewhere
	Toe, Toc, Ttr  Gtime
	Toes           float64
	A, E, I0       float64
	OMG0, Omg, M0  float64
	Deln, OMGd     float64
	Idot           float64
	Crc, Crs       float64
	Cuc, Cus       float64
	Cic, Cis       float64
	F0, F1, F2     float64
	Tgd            [2]float64
}

// GEph is a GLONASS broadcast ephemeris (position/velocity/acceleration
// plus clock bias/drift, no Keplerian elements).
type GEph struct {
	Sat       int
	Iode      int
	Frq       int // frequency channel number, centered at 0
	Svh, Age  int
	Toe, Tof  Gtime
	Pos, Vel  [3]float64
	Acc       [3]float64
	Taun      float64
	Gamn      float64
	DTaun     float64
}

// NavStore holds the decoded broadcast navigation messages. GPS/GAL/BDS
// ephemerides are indexed by (sat-1); Galileo additionally keys on a
// "set" (0=I/NAV in Ephs, 1=F/NAV in EphsAlt). GLONASS ephemerides are indexed
// by (prn-1) in Geph, matching the teacher's Nav layout.
type NavStore struct {
	Ephs    [satcat.MaxSat]Eph
	EphsAlt [satcat.MaxSat]Eph // Galileo F/NAV slot, set=1
	Geph    [satcat.NSatGLO]GEph
	GloFCN  [satcat.NSatGLO]int // registered channel+8, 0 if unknown
}

// GloChannel implements satcat.GloChannelSource, consulting the decoded
// ephemeris frequency channel first and falling back to the raw
// receiver-reported channel registered by the RANGE decoder.
func (n *NavStore) GloChannel(sat int) (int, bool) {
	sys, prn := satcat.SatSys(sat)
	if sys != satcat.SysGLO {
		return 0, false
	}
	for i := range n.Geph {
		if n.Geph[i].Sat == sat {
			return n.Geph[i].Frq, true
		}
	}
	if prn-1 >= 0 && prn-1 < len(n.GloFCN) && n.GloFCN[prn-1] > 0 {
		return n.GloFCN[prn-1] - 8, true
	}
	return 0, false
}

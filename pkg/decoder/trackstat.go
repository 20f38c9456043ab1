package decoder

import "github.com/fxgnss/unicoreraw/pkg/satcat"

// trackStatus is the decoded form of the 32-bit tracking-status word
// (SPEC_FULL §3). Field names mirror the teacher's decode_track_stat
// out-parameters.
type trackStatus struct {
	sys    int
	code   int
	track  int
	plock  bool
	clock  bool
	parity bool
	halfc  bool
}

// decodeTrackStat extracts a trackStatus and the frequency-slot index
// for stat, or ok=false if the system or (system, signal) pair is one
// this protocol never emits.
func decodeTrackStat(stat uint32) (ts trackStatus, idx int, ok bool) {
	ts.track = int(stat & 0x1F)
	ts.plock = (stat>>10)&1 != 0
	ts.parity = (stat>>11)&1 != 0
	ts.clock = (stat>>12)&1 != 0
	satsys := int((stat >> 16) & 7)
	ts.halfc = (stat>>28)&1 != 0
	sigtype := int((stat >> 21) & 0x1F)

	if satsys < 0 || satsys >= len(statSys) || statSys[satsys] == satcat.SysNone {
		return ts, -1, false
	}
	ts.sys = statSys[satsys]

	ts.code = sig2code(ts.sys, sigtype)
	if ts.code == satcat.CodeNone {
		return ts, -1, false
	}
	idx = code2Idx(ts.code)
	if idx < 0 {
		return ts, -1, false
	}
	return ts, idx, true
}

// sig2code maps (system, signal-type) to a code, per SPEC_FULL §4.3's
// table. Pairs outside that table return satcat.CodeNone, same as the
// teacher's sig2code falling through to its final `return 0`.
func sig2code(sys, sigtype int) int {
	switch sys {
	case satcat.SysGPS:
		switch sigtype {
		case 0:
			return satcat.CodeL1C
		case 9:
			return satcat.CodeL2W
		}
	case satcat.SysQZS:
		switch sigtype {
		case 0:
			return satcat.CodeL1C
		case 9:
			return satcat.CodeL2C
		}
	case satcat.SysGLO:
		switch sigtype {
		case 0:
			return satcat.CodeL1C
		case 5:
			return satcat.CodeL2C
		}
	case satcat.SysGAL:
		switch sigtype {
		case 1:
			return satcat.CodeE1B
		case 2:
			return satcat.CodeE1C
		case 17:
			return satcat.CodeE5bQ
		}
	case satcat.SysBDS:
		switch sigtype {
		case 0:
			return satcat.CodeB1I
		case 17:
			return satcat.CodeB2I
		}
	case satcat.SysSBS:
		switch sigtype {
		case 0:
			return satcat.CodeL1C
		case 6:
			return satcat.CodeL5I
		}
	}
	return satcat.CodeNone
}

// code2Idx maps a code to its native frequency index (0=primary,
// 1=secondary, 2=tertiary), grounded on the teacher's Code2Idx dispatch.
func code2Idx(code int) int {
	switch code {
	case satcat.CodeL1C, satcat.CodeE1B, satcat.CodeE1C, satcat.CodeB1I:
		return 0
	case satcat.CodeL2W, satcat.CodeL2C, satcat.CodeE5bQ, satcat.CodeB2I:
		return 1
	case satcat.CodeL5I:
		return 2
	}
	return -1
}

// checkSlot applies the user option overrides to a native slot index,
// grounded on checkpri_novatel. Returns -1 to drop the observation.
func checkSlot(opt string, sys, code, idx int) int {
	switch sys {
	case satcat.SysGPS:
		if hasToken(opt, "-GL1P") && idx == 0 {
			if code == satcat.CodeL2W {
				return 0
			}
			return -1
		}
	case satcat.SysGLO:
		if hasToken(opt, "-RL2C") && idx == 1 {
			if code == satcat.CodeL2C {
				return 1
			}
			return -1
		}
	case satcat.SysGAL:
		if hasToken(opt, "-EL1B") && idx == 0 {
			if code == satcat.CodeE1B {
				return 0
			}
			return -1
		}
	}
	if idx >= nFreq+nExOBS {
		return -1
	}
	return idx
}

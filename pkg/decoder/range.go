package decoder

import (
	"github.com/fxgnss/unicoreraw/pkg/satcat"
)

// decodeRange decodes the uncompressed 44-byte-per-record RANGE message.
// Grounded on the teacher's decode_rangeb.
func (d *Decoder) decodeRange() int {
	p := headerLen
	nobs := int(u4l(d.buff[p : p+4]))
	if d.length < headerLen+4+nobs*44 {
		d.log.WithField("nobs", nobs).Warn("range length error")
		return StatusError
	}

	for i, off := 0, p+4; i < nobs; i, off = i+1, off+44 {
		rec := d.buff[off : off+44]
		ts, idx, ok := decodeTrackStat(u4l(rec[40:44]))
		if !ok {
			continue
		}
		prn := int(u2l(rec[0:2]))
		if ts.sys == satcat.SysGLO {
			prn -= 37
		}
		sat := satcat.SatNo(ts.sys, prn)
		if sat == 0 {
			continue
		}
		if ts.sys == satcat.SysGLO && !ts.parity {
			continue
		}
		idx = checkSlot(d.opt.Raw, ts.sys, ts.code, idx)
		if idx < 0 {
			continue
		}

		gfrq := int(u2l(rec[2:4])) // GLONASS FCN+7
		psr := r8l(rec[4:12])
		// rec[12:16] is the psr std-dev field, not used by this decoder.
		adr := r8l(rec[16:24])
		// rec[24:28] is the adr std-dev field, not used by this decoder.
		dop := float64(r4l(rec[28:32]))
		snr := float64(r4l(rec[32:36]))
		lockt := float64(r4l(rec[36:40]))

		if ts.sys == satcat.SysGLO {
			freq := satcat.SatFreq(sat, ts.code, &d.Nav)
			if freq != 0 && d.opt.hasBias {
				adr -= d.opt.GLOBias * freq / satcat.CLight
			}
			// GloFCN holds FCN+8 so that 0 means unknown.
			if fcn8 := gfrq + 1; d.Nav.GloFCN[prn-1] != fcn8 {
				d.Nav.GloFCN[prn-1] = fcn8
			}
		}

		lli := uint8(0)
		if d.tObs[sat-1][idx].Time != 0 {
			tt := TimeDiff(d.Time, d.tObs[sat-1][idx])
			if lockt-d.lockTime[sat-1][idx]+0.05 <= tt {
				lli = lliSlip
			}
		}
		if !ts.parity {
			lli |= lliHalfC
		}
		if ts.halfc {
			lli |= lliHalfA
		}
		d.tObs[sat-1][idx] = d.Time
		d.lockTime[sat-1][idx] = lockt
		d.halfc[sat-1][idx] = boolToU8(ts.halfc)

		if !ts.clock {
			psr = 0.0
		}
		if !ts.plock {
			adr, dop = 0.0, 0.0
		}

		flushIfNewEpoch(&d.Obs, d.Time)
		if index := obsIndex(&d.Obs, d.Time, sat); index >= 0 {
			e := &d.Obs.Data[index]
			e.L[idx] = -adr
			e.P[idx] = psr
			e.D[idx] = dop
			e.SNR[idx] = clampSNR(snr)
			e.LLI[idx] = lli
			e.Code[idx] = uint8(ts.code)
		}
	}
	return StatusObs
}

func boolToU8(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}

package decoder

import (
	"math"

	"github.com/fxgnss/unicoreraw/pkg/satcat"
)

// reconstructADR recovers the rolled accumulated-Doppler-range integer
// cycle count from the compressed record's raw ADR field, the
// pseudorange, and the carrier frequency, per SPEC_FULL §4.5/§8.3.
// Grounded on the ADR-roll arithmetic embedded in decode_rangecmpb.
func reconstructADR(psr, adrRaw, freq float64) float64 {
	if freq == 0 {
		return 1e-9
	}
	adrRolls := (psr*freq/satcat.CLight + adrRaw) / maxVal
	if adrRolls <= 0 {
		return -adrRaw + maxVal*math.Floor(adrRolls-0.5)
	}
	return -adrRaw + maxVal*math.Floor(adrRolls+0.5)
}

// decodeRangeCmp decodes the compressed 24-byte-per-record RANGECMP
// message. Grounded on the teacher's decode_rangecmpb.
func (d *Decoder) decodeRangeCmp() int {
	p := headerLen
	nobs := int(u4l(d.buff[p : p+4]))
	if d.length < headerLen+4+nobs*24 {
		d.log.WithField("nobs", nobs).Warn("rangecmp length error")
		return StatusError
	}

	for i, off := 0, p+4; i < nobs; i, off = i+1, off+24 {
		rec := d.buff[off : off+24]
		ts, idx, ok := decodeTrackStat(u4l(rec[0:4]))
		if !ok {
			continue
		}
		prn := int(u1(rec[17:18]))
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

		dop := float64(exsign(u4l(rec[4:8])&0xFFFFFFF, 28)) / 256.0
		psr := float64(u4l(rec[7:11])>>4)/128.0 + float64(u1(rec[11:12]))*2097152.0

		var adr float64
		freq := satcat.SatFreq(sat, ts.code, &d.Nav)
		if freq != 0.0 {
			adrRaw := float64(i4l(rec[12:16])) / 256.0
			adr = reconstructADR(psr, adrRaw, freq)
			if ts.sys == satcat.SysGLO && d.opt.hasBias {
				adr += d.opt.GLOBias * freq / satcat.CLight
			}
		} else {
			adr = 1e-9
		}

		lockt := float64(u4l(rec[18:22])&0x1FFFFF) / 32.0

		lli := uint8(0)
		if d.tObs[sat-1][idx].Time != 0 {
			tt := TimeDiff(d.Time, d.tObs[sat-1][idx])
			if lockt < 65535.968 && lockt-d.lockTime[sat-1][idx]+0.05 <= tt {
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

		snr := float64((u2l(rec[20:22])&0x3FF)>>5) + 20.0
		if !ts.clock {
			psr = 0.0
		}
		if !ts.plock {
			adr, dop = 0.0, 0.0
		}

		flushIfNewEpoch(&d.Obs, d.Time)
		if index := obsIndex(&d.Obs, d.Time, sat); index >= 0 {
			e := &d.Obs.Data[index]
			e.L[idx] = adr
			e.P[idx] = psr
			e.D[idx] = dop
			e.SNR[idx] = clampSNR(snr)
			e.LLI[idx] = lli
			e.Code[idx] = uint8(ts.code)
		}
	}
	return StatusObs
}

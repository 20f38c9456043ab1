package decoder

import "github.com/fxgnss/unicoreraw/pkg/satcat"

// decodeGPSEph decodes a GPS ephemeris message. The body layout below is
// original to this decoder (see DESIGN.md "GPS ephemeris body layout"):
// the teacher lineage demodulates GPS ephemerides from raw subframes
// rather than a single pre-parsed message, so there is no direct analog
// to follow field-for-field; the sequential-offset decode idiom is
// carried over from decode_galephemerisb/decode_bdsephemerisb.
func (d *Decoder) decodeGPSEph() int {
	const bodyLen = 192
	if d.length < headerLen+bodyLen {
		d.log.Warn("gps ephemeris length error")
		return StatusError
	}
	b := d.buff[headerLen : headerLen+bodyLen]

	prn := int(u4l(b[0:4]))
	week := int(u4l(b[4:8]))
	ura := r8l(b[8:16])
	health := int(u4l(b[16:20]))
	iode := int(u4l(b[20:24]))
	iodc := int(u4l(b[24:28]))
	toes := float64(u4l(b[28:32]))
	iode2 := int(u4l(b[32:36]))
	toc := float64(u4l(b[36:40]))

	if iode2 != iode {
		d.log.WithField("prn", prn).Warn("gps ephemeris iode mismatch")
		return StatusError
	}

	sat := satcat.SatNo(satcat.SysGPS, prn)
	if sat == 0 {
		d.log.WithField("prn", prn).Warn("gps ephemeris prn error")
		return StatusError
	}

	var eph Eph
	eph.Sat = sat
	eph.Week = week
	eph.Sva = satcat.URAIndex(ura)
	eph.Svh = health
	eph.Iode = iode
	eph.Iodc = iodc
	eph.Toes = toes

	sqrtA := r8l(b[40:48])
	eph.E = r8l(b[48:56])
	eph.Omg = r8l(b[56:64])
	eph.Deln = r8l(b[64:72])
	eph.M0 = r8l(b[72:80])
	eph.OMG0 = r8l(b[80:88])
	eph.OMGd = r8l(b[88:96])
	eph.I0 = r8l(b[96:104])
	eph.Idot = r8l(b[104:112])
	eph.Cuc = r8l(b[112:120])
	eph.Cus = r8l(b[120:128])
	eph.Crc = r8l(b[128:136])
	eph.Crs = r8l(b[136:144])
	eph.Cic = r8l(b[144:152])
	eph.Cis = r8l(b[152:160])
	eph.F0 = r8l(b[160:168])
	eph.F1 = r8l(b[168:176])
	eph.F2 = r8l(b[176:184])
	eph.Tgd[0] = r8l(b[184:192])

	eph.A = sqrtA * sqrtA
	eph.Toe = GpsTime(eph.Week, eph.Toes)
	eph.Toc = GpsTime(eph.Week, toc)

	tt := TimeDiff(eph.Toe, d.Time)
	if tt < -302400.0 {
		eph.Week++
	} else if tt > 302400.0 {
		eph.Week--
	}
	eph.Toe = GpsTime(eph.Week, eph.Toes)
	eph.Toc = GpsTime(eph.Week, toc)
	eph.Ttr = d.Time

	if !d.opt.EphAll {
		prev := d.Nav.Ephs[sat-1]
		if TimeDiff(eph.Toe, prev.Toe) == 0.0 && eph.Iode == prev.Iode && eph.Iodc == prev.Iodc {
			return StatusIncomplete
		}
	}
	d.Nav.Ephs[sat-1] = eph
	d.LastEphSat, d.LastEphSet = sat, 0
	return StatusEph
}

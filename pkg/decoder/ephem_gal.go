package decoder

import "github.com/fxgnss/unicoreraw/pkg/satcat"

// Galileo data-source code bits, per SPEC_FULL §4.6.
const (
	galCodeINav = (1 << 0) | (1 << 9)
	galCodeFNav = (1 << 1) | (1 << 8)
)

// decodeGALEph decodes a Galileo ephemeris message carrying both I/NAV
// and F/NAV clock corrections, selecting one per the -GALINAV/-GALFNAV
// options or the message's own receive flags. Grounded on the teacher's
// decode_galephemerisb.
func (d *Decoder) decodeGALEph() int {
	const bodyLen = 227
	if d.length < headerLen+bodyLen {
		d.log.Warn("galileo ephemeris length error")
		return StatusError
	}
	b := d.buff[headerLen : headerLen+bodyLen]

	selEph := 3
	if d.opt.GALINav {
		selEph = 1
	}
	if d.opt.GALFNav {
		selEph = 2
	}

	idx := 0
	prn := int(u4l(b[idx : idx+4]))
	idx += 4
	rcvFNav := int(u4l(b[idx:idx+4])) & 1
	idx += 4
	rcvINav := int(u4l(b[idx:idx+4])) & 1
	idx += 4
	svhE1b := int(u1(b[idx:idx+1])) & 3
	idx++
	svhE5a := int(u1(b[idx:idx+1])) & 3
	idx++
	svhE5b := int(u1(b[idx:idx+1])) & 3
	idx++
	dvsE1b := int(u1(b[idx:idx+1])) & 1
	idx++
	dvsE5a := int(u1(b[idx:idx+1])) & 1
	idx++
	dvsE5b := int(u1(b[idx:idx+1])) & 1
	idx++
	sisa := r8l(b[idx : idx+8])
	idx += 8 + 1 // SISA index field + reserved byte
	iodNav := int(u4l(b[idx : idx+4]))
	idx += 4
	toes := float64(u4l(b[idx : idx+4]))
	idx += 4
	sqrtA := r8l(b[idx : idx+8])
	idx += 8
	deln := r8l(b[idx : idx+8])
	idx += 8
	m0 := r8l(b[idx : idx+8])
	idx += 8
	e := r8l(b[idx : idx+8])
	idx += 8
	omg := r8l(b[idx : idx+8])
	idx += 8
	cuc := r8l(b[idx : idx+8])
	idx += 8
	cus := r8l(b[idx : idx+8])
	idx += 8
	crc := r8l(b[idx : idx+8])
	idx += 8
	crs := r8l(b[idx : idx+8])
	idx += 8
	cic := r8l(b[idx : idx+8])
	idx += 8
	cis := r8l(b[idx : idx+8])
	idx += 8
	i0 := r8l(b[idx : idx+8])
	idx += 8
	idot := r8l(b[idx : idx+8])
	idx += 8
	omg0 := r8l(b[idx : idx+8])
	idx += 8
	omgd := r8l(b[idx : idx+8])
	idx += 8
	tocFNav := int(u4l(b[idx : idx+4]))
	idx += 4
	af0FNav := r8l(b[idx : idx+8])
	idx += 8
	af1FNav := r8l(b[idx : idx+8])
	idx += 8
	af2FNav := r8l(b[idx : idx+8])
	idx += 8
	tocINav := int(u4l(b[idx : idx+4]))
	idx += 4
	af0INav := r8l(b[idx : idx+8])
	idx += 8
	af1INav := r8l(b[idx : idx+8])
	idx += 8
	af2INav := r8l(b[idx : idx+8])
	idx += 8
	tgd0 := r8l(b[idx : idx+8])
	idx += 8
	tgd1 := r8l(b[idx : idx+8])

	sat := satcat.SatNo(satcat.SysGAL, prn)
	if sat == 0 {
		d.log.WithField("prn", prn).Warn("galileo ephemeris prn error")
		return StatusError
	}

	// I/NAV unless only F/NAV was received; -GALINAV/-GALFNAV pick their
	// set whenever the message carries it.
	set := 0
	if rcvFNav > 0 && rcvINav == 0 {
		set = 1
	}
	if d.opt.GALFNav && rcvFNav > 0 {
		set = 1
	}
	if d.opt.GALINav && rcvINav > 0 {
		set = 0
	}
	if (selEph&1) == 0 && set == 0 {
		return StatusIncomplete
	}
	if (selEph&2) == 0 && set == 1 {
		return StatusIncomplete
	}

	var eph Eph
	eph.A = sqrtA * sqrtA
	eph.Deln, eph.M0, eph.E, eph.Omg = deln, m0, e, omg
	eph.Cuc, eph.Cus, eph.Crc, eph.Crs = cuc, cus, crc, crs
	eph.Cic, eph.Cis = cic, cis
	eph.I0, eph.Idot = i0, idot
	eph.OMG0, eph.OMGd = omg0, omgd
	eph.Iode = iodNav
	eph.Iodc = iodNav
	eph.Toes = toes
	eph.Sva = satcat.URAIndex(sisa)

	if set > 0 {
		eph.F0, eph.F1, eph.F2 = af0FNav, af1FNav, af2FNav
		eph.Code = galCodeFNav
		eph.Toc = adjWeek(d.Time, float64(tocFNav))
	} else {
		eph.F0, eph.F1, eph.F2 = af0INav, af1INav, af2INav
		eph.Code = galCodeINav
		eph.Toc = adjWeek(d.Time, float64(tocINav))
	}
	eph.Tgd[0], eph.Tgd[1] = tgd0, tgd1
	eph.Svh = (svhE5b << 7) | (dvsE5b << 6) | (svhE5a << 4) | (dvsE5a << 3) | (svhE1b << 1) | dvsE1b

	week, _ := TimeToGpsWeek(d.Time)
	eph.Week = week
	eph.Toe = GpsTime(eph.Week, eph.Toes)

	tt := TimeDiff(eph.Toe, d.Time)
	if tt < -302400.0 {
		eph.Week++
	} else if tt > 302400.0 {
		eph.Week--
	}
	eph.Toe = GpsTime(eph.Week, eph.Toes)
	eph.Ttr = d.Time
	eph.Sat = sat

	store := &d.Nav.Ephs
	if set == 1 {
		store = &d.Nav.EphsAlt
	}
	if !d.opt.EphAll {
		prev := store[sat-1]
		if eph.Iode == prev.Iode && eph.Code == prev.Code {
			return StatusIncomplete
		}
	}
	store[sat-1] = eph
	d.LastEphSat, d.LastEphSet = sat, set
	return StatusEph
}

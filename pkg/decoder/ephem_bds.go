package decoder

import "github.com/fxgnss/unicoreraw/pkg/satcat"

// decodeBDSEph decodes a BeiDou ephemeris message. Grounded on the
// teacher's decode_bdsephemerisb.
func (d *Decoder) decodeBDSEph() int {
	const bodyLen = 196
	if d.length < headerLen+bodyLen {
		d.log.Warn("bds ephemeris length error")
		return StatusError
	}
	b := d.buff[headerLen : headerLen+bodyLen]

	idx := 0
	prn := int(u4l(b[idx : idx+4]))
	idx += 4
	week := int(u4l(b[idx : idx+4]))
	idx += 4
	ura := r8l(b[idx : idx+8])
	idx += 8
	svh := int(u4l(b[idx:idx+4]) & 1)
	idx += 4
	tgd0 := r8l(b[idx : idx+8])
	idx += 8
	tgd1 := r8l(b[idx : idx+8])
	idx += 8
	aodc := int(u4l(b[idx : idx+4]))
	idx += 4
	toc := int(u4l(b[idx : idx+4]))
	idx += 4
	f0 := r8l(b[idx : idx+8])
	idx += 8
	f1 := r8l(b[idx : idx+8])
	idx += 8
	f2 := r8l(b[idx : idx+8])
	idx += 8
	aode := int(u4l(b[idx : idx+4]))
	idx += 4
	toes := float64(u4l(b[idx : idx+4]))
	idx += 4
	sqrtA := r8l(b[idx : idx+8])
	idx += 8
	e := r8l(b[idx : idx+8])
	idx += 8
	omg := r8l(b[idx : idx+8])
	idx += 8
	deln := r8l(b[idx : idx+8])
	idx += 8
	m0 := r8l(b[idx : idx+8])
	idx += 8
	omg0 := r8l(b[idx : idx+8])
	idx += 8
	omgd := r8l(b[idx : idx+8])
	idx += 8
	i0 := r8l(b[idx : idx+8])
	idx += 8
	idot := r8l(b[idx : idx+8])
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

	sat := satcat.SatNo(satcat.SysBDS, prn)
	if sat == 0 {
		d.log.WithField("prn", prn).Warn("bds ephemeris prn error")
		return StatusError
	}

	var eph Eph
	eph.Sat = sat
	eph.Week = week
	eph.Svh = svh
	eph.Tgd[0], eph.Tgd[1] = tgd0, tgd1
	eph.Iodc = aodc
	eph.Iode = aode
	eph.F0, eph.F1, eph.F2 = f0, f1, f2
	eph.Toes = toes
	eph.A = sqrtA * sqrtA
	eph.E, eph.Omg, eph.Deln, eph.M0 = e, omg, deln, m0
	eph.OMG0, eph.OMGd, eph.I0, eph.Idot = omg0, omgd, i0, idot
	eph.Cuc, eph.Cus, eph.Crc, eph.Crs = cuc, cus, crc, crs
	eph.Cic, eph.Cis = cic, cis
	eph.Sva = satcat.URAIndex(ura)

	eph.Toe = BDTToGps(BDTime(eph.Week, eph.Toes))
	eph.Toc = BDTToGps(BDTime(eph.Week, float64(toc)))
	eph.Ttr = d.Time

	if !d.opt.EphAll {
		prev := d.Nav.Ephs[sat-1]
		if TimeDiff(prev.Toe, eph.Toe) == 0.0 && prev.Iode == eph.Iode && prev.Iodc == eph.Iodc {
			return StatusIncomplete
		}
	}
	d.Nav.Ephs[sat-1] = eph
	d.LastEphSat, d.LastEphSet = sat, 0
	return StatusEph
}

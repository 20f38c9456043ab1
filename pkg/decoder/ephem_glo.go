package decoder

import (
	"math"

	"github.com/fxgnss/unicoreraw/pkg/satcat"
)

// decodeGLOEph decodes a GLONASS ephemeris message. Grounded on the
// teacher's decode_gloephemerisb.
func (d *Decoder) decodeGLOEph() int {
	const bodyLen = 144
	if d.length < headerLen+bodyLen {
		d.log.Warn("glonass ephemeris length error")
		return StatusError
	}
	b := d.buff[headerLen : headerLen+bodyLen]

	prn := int(u2l(b[0:2])) - 37
	sat := satcat.SatNo(satcat.SysGLO, prn)
	if sat == 0 {
		d.log.WithField("prn", prn).Warn("glonass ephemeris prn error")
		return StatusError
	}

	var geph GEph
	geph.Frq = int(u2l(b[2:4])) + offFRQNO
	week := int(u2l(b[6:8]))
	tow := math.Floor(float64(u4l(b[8:12]))/1000.0 + 0.5)
	toff := float64(u4l(b[12:16]))
	geph.Iode = int(u4l(b[20:24]) & 0x7F)
	geph.Svh = 1
	if u4l(b[24:28]) < 4 {
		geph.Svh = 0
	}
	geph.Pos[0] = r8l(b[28:36])
	geph.Pos[1] = r8l(b[36:44])
	geph.Pos[2] = r8l(b[44:52])
	geph.Vel[0] = r8l(b[52:60])
	geph.Vel[1] = r8l(b[60:68])
	geph.Vel[2] = r8l(b[68:76])
	geph.Acc[0] = r8l(b[76:84])
	geph.Acc[1] = r8l(b[84:92])
	geph.Acc[2] = r8l(b[92:100])
	geph.Taun = r8l(b[100:108])
	geph.DTaun = r8l(b[108:116])
	geph.Gamn = r8l(b[116:124])
	tof := float64(u4l(b[124:128])) - toff
	geph.Age = int(u4l(b[136:140]))

	geph.Toe = GpsTime(week, tow)
	tof += math.Floor(tow/86400.0) * 86400
	if tof < tow-43200.0 {
		tof += 86400.0
	} else if tof > tow+43200.0 {
		tof -= 86400.0
	}
	geph.Tof = GpsTime(week, tof)

	if !d.opt.EphAll {
		prev := d.Nav.Geph[prn-1]
		if math.Abs(TimeDiff(geph.Toe, prev.Toe)) < 1.0 && geph.Svh == prev.Svh {
			return StatusIncomplete
		}
	}
	geph.Sat = sat
	d.Nav.Geph[prn-1] = geph
	d.LastEphSat, d.LastEphSet = sat, 0
	return StatusEph
}

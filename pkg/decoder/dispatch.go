package decoder

import "fmt"

// dispatch verifies the CRC, stamps the decoder's current time, and
// routes to the per-message decoder. Grounded on the teacher's
// decode_oem4.
func (d *Decoder) dispatch() int {
	msgID := u2l(d.buff[4:6])

	if !checkCRC(d.buff[:], d.length) {
		d.log.WithField("msg_id", msgID).Warn("crc error")
		return StatusError
	}

	msgType := int((u1(d.buff[6:7]) >> 4) & 0x3) // 0=binary, 1=ascii
	week := int(u2l(d.buff[14:16]))
	if week == 0 {
		return StatusIncomplete
	}
	week = AdjGpsWeek(week)
	tow := float64(u4l(d.buff[16:20])) * 0.001
	d.Time = GpsTime(week, tow)

	if msgType != 0 {
		return StatusIncomplete
	}

	if d.verbose {
		d.MsgType = fmt.Sprintf("UNICORE%s (%4d): msg=%3d %v", d.id, d.length, msgID, d.Time)
		d.log.WithFields(map[string]interface{}{
			"msg_id": msgID,
			"len":    d.length,
		}).Debug("frame decoded")
	}

	switch msgID {
	case idRangeCmp:
		return d.decodeRangeCmp()
	case idRange:
		return d.decodeRange()
	case idGPSEph:
		return d.decodeGPSEph()
	case idGLOEph:
		return d.decodeGLOEph()
	case idGALEph:
		return d.decodeGALEph()
	case idBDSEph:
		return d.decodeBDSEph()
	}
	return StatusIncomplete
}

package decoder

import (
	"io"
)

// Return codes, matching SPEC_FULL §6.
const (
	StatusEOF        = -2
	StatusError      = -1
	StatusIncomplete = 0
	StatusObs        = 1
	StatusEph        = 2
	StatusSBAS       = 3
	StatusIonUTC     = 9
)

func sync(buff []byte, b byte) bool {
	buff[0] = buff[1]
	buff[1] = buff[2]
	buff[2] = b
	return buff[0] == sync1 && buff[1] == sync2 && buff[2] == sync3
}

// InputByte feeds one byte into the framer, returning a status code as
// soon as a complete frame has been synchronized, validated and
// dispatched. Grounded on the teacher's sync_oem4/Input_oem4.
func (d *Decoder) InputByte(b byte) int {
	if d.nbyte == 0 {
		if sync(d.buff[:3], b) {
			d.nbyte = 3
		}
		return StatusIncomplete
	}
	d.buff[d.nbyte] = b
	d.nbyte++
	d.length = int(u2l(d.buff[8:10])) + headerLen
	if d.nbyte == 10 && d.length > maxRawLen-4 {
		d.log.WithField("len", d.length).Warn("frame length error")
		d.nbyte = 0
		return StatusError
	}
	if d.nbyte < 10 || d.nbyte < d.length+4 {
		return StatusIncomplete
	}
	d.nbyte = 0
	return d.dispatch()
}

// InputFile feeds frames from fp in bulk, one frame per call, matching
// the teacher's input_oem4f fast path for file replay. Returns
// StatusEOF on end of stream or a short read.
func (d *Decoder) InputFile(fp io.Reader) int {
	if d.nbyte == 0 {
		var c [1]byte
		for i := 0; ; i++ {
			if _, err := io.ReadFull(fp, c[:]); err != nil {
				return StatusEOF
			}
			if sync(d.buff[:3], c[0]) {
				break
			}
			if i >= 4096 {
				return StatusIncomplete
			}
		}
	}
	n, err := io.ReadFull(fp, d.buff[3:10])
	if err != nil || n < 7 {
		return StatusEOF
	}
	d.nbyte = 10

	d.length = int(u2l(d.buff[8:10])) + headerLen
	if d.length > maxRawLen-4 {
		d.log.WithField("len", d.length).Warn("frame length error")
		d.nbyte = 0
		return StatusError
	}
	n, err = io.ReadFull(fp, d.buff[10:d.length+4])
	if err != nil || n < d.length-6 {
		return StatusEOF
	}
	d.nbyte = 0
	return d.dispatch()
}

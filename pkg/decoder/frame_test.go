package decoder

import (
	"encoding/binary"
	"hash/crc32"
)

// buildFrame assembles a complete, CRC-valid wire frame for msgID with
// the given body, GPS week, and time-of-week (ms). Test-only helper.
func buildFrame(msgID uint16, week int, towMs uint32, body []byte) []byte {
	total := headerLen + len(body)
	buf := make([]byte, total+4)
	buf[0], buf[1], buf[2] = sync1, sync2, sync3
	binary.LittleEndian.PutUint16(buf[4:6], msgID)
	buf[6] = 0 // message type: binary
	binary.LittleEndian.PutUint16(buf[8:10], uint16(len(body)))
	binary.LittleEndian.PutUint16(buf[14:16], uint16(week))
	binary.LittleEndian.PutUint32(buf[16:20], towMs)
	copy(buf[headerLen:], body)
	crc := crc32.ChecksumIEEE(buf[:total])
	binary.LittleEndian.PutUint32(buf[total:total+4], crc)
	return buf
}

// feedFrame drives InputByte with every byte of frame, returning the
// status of the final byte.
func feedFrame(d *Decoder, frame []byte) int {
	status := StatusIncomplete
	for _, b := range frame {
		status = d.InputByte(b)
	}
	return status
}

func newTestDecoder() *Decoder {
	opt, _ := ParseOptions("")
	return New(nil, opt)
}

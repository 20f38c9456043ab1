package decoder

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fxgnss/unicoreraw/pkg/satcat"
)

func buildStatus(satsysBits, sigtype int, plock, parity, clock, halfc bool) uint32 {
	var s uint32
	s |= uint32(satsysBits&7) << 16
	s |= uint32(sigtype&0x1F) << 21
	if plock {
		s |= 1 << 10
	}
	if parity {
		s |= 1 << 11
	}
	if clock {
		s |= 1 << 12
	}
	if halfc {
		s |= 1 << 28
	}
	return s
}

func TestDecodeTrackStatGPSL1C(t *testing.T) {
	stat := buildStatus(0, 0, true, true, true, false)
	ts, idx, ok := decodeTrackStat(stat)
	assert.True(t, ok)
	assert.Equal(t, satcat.SysGPS, ts.sys)
	assert.Equal(t, satcat.CodeL1C, ts.code)
	assert.Equal(t, 0, idx)
	assert.True(t, ts.plock)
	assert.True(t, ts.parity)
	assert.True(t, ts.clock)
}

func TestDecodeTrackStatQZSL2C(t *testing.T) {
	stat := buildStatus(5, 9, true, true, true, false)
	ts, idx, ok := decodeTrackStat(stat)
	assert.True(t, ok)
	assert.Equal(t, satcat.SysQZS, ts.sys)
	assert.Equal(t, satcat.CodeL2C, ts.code)
	assert.Equal(t, 1, idx)
}

func TestDecodeTrackStatGalileoE5bQ(t *testing.T) {
	stat := buildStatus(3, 17, true, true, true, false)
	ts, idx, ok := decodeTrackStat(stat)
	assert.True(t, ok)
	assert.Equal(t, satcat.SysGAL, ts.sys)
	assert.Equal(t, satcat.CodeE5bQ, ts.code)
	assert.Equal(t, 1, idx)
}

func TestDecodeTrackStatUnknownSystem(t *testing.T) {
	stat := buildStatus(6, 0, true, true, true, false)
	_, _, ok := decodeTrackStat(stat)
	assert.False(t, ok)
}

func TestDecodeTrackStatUnknownSignal(t *testing.T) {
	stat := buildStatus(0, 31, true, true, true, false)
	_, _, ok := decodeTrackStat(stat)
	assert.False(t, ok)
}

func TestCheckSlotDropsOverBudget(t *testing.T) {
	assert.Equal(t, -1, checkSlot("", satcat.SysGPS, satcat.CodeL1C, nFreq+nExOBS))
}

func TestCheckSlotGL1POverride(t *testing.T) {
	assert.Equal(t, 0, checkSlot("-GL1P", satcat.SysGPS, satcat.CodeL2W, 0))
	assert.Equal(t, -1, checkSlot("-GL1P", satcat.SysGPS, satcat.CodeL1C, 0))
}

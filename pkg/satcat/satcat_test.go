package satcat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSatNoRoundTrip(t *testing.T) {
	cases := []struct {
		sys, prn int
	}{
		{SysGPS, 1}, {SysGPS, 32},
		{SysGLO, 1}, {SysGLO, 27},
		{SysGAL, 1}, {SysGAL, 36},
		{SysQZS, 193}, {SysQZS, 202},
		{SysBDS, 1}, {SysBDS, 63},
		{SysSBS, 120}, {SysSBS, 158},
	}
	for _, c := range cases {
		sat := SatNo(c.sys, c.prn)
		assert.NotZero(t, sat)
		gotSys, gotPRN := SatSys(sat)
		assert.Equal(t, c.sys, gotSys)
		assert.Equal(t, c.prn, gotPRN)
	}
}

func TestSatNoOutOfRange(t *testing.T) {
	assert.Zero(t, SatNo(SysGPS, 0))
	assert.Zero(t, SatNo(SysGPS, 33))
	assert.Zero(t, SatNo(SysGLO, 28))
}

func TestCarrierFreqGLOChannel(t *testing.T) {
	f0 := CarrierFreq(SysGLO, CodeL1C, 0)
	f1 := CarrierFreq(SysGLO, CodeL1C, 1)
	assert.Greater(t, f1, f0)
	assert.InDelta(t, freqG1Step, f1-f0, 1e-6)
}

func TestCarrierFreqUnknownCode(t *testing.T) {
	assert.Zero(t, CarrierFreq(SysGPS, CodeB1I, 0))
}

type fakeGloSource map[int]int

func (f fakeGloSource) GloChannel(sat int) (int, bool) {
	v, ok := f[sat]
	return v, ok
}

func TestSatFreqConsultsGloChannel(t *testing.T) {
	sat := SatNo(SysGLO, 5)
	src := fakeGloSource{sat: 3}
	f := SatFreq(sat, CodeL1C, src)
	assert.InDelta(t, freqG1Base+freqG1Step*3, f, 1e-6)
}

func TestSatFreqUnknownGloChannel(t *testing.T) {
	sat := SatNo(SysGLO, 6)
	f := SatFreq(sat, CodeL1C, fakeGloSource{})
	assert.Zero(t, f)
}

func TestURAIndex(t *testing.T) {
	assert.Equal(t, 0, URAIndex(1.0))
	assert.Equal(t, 0, URAIndex(2.4))
	assert.Equal(t, 1, URAIndex(3.0))
	assert.Equal(t, 15, URAIndex(10000.0))
}

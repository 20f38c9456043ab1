package decoder

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fxgnss/unicoreraw/pkg/satcat"
)

// buildRangeRecord packs one 44-byte RANGE observation record, matching
// the real NovAtel layout range.go decodes (PRN, GLONASS channel, psr,
// psr-stddev gap, ADR, ADR-stddev gap, Doppler, C/N0, lock-time, status).
func buildRangeRecord(status uint32, prn uint16, psr, adr, dop, snr, lockt float64) []byte {
	rec := make([]byte, 44)
	binary.LittleEndian.PutUint16(rec[0:2], prn)
	binary.LittleEndian.PutUint64(rec[4:12], math.Float64bits(psr))
	binary.LittleEndian.PutUint64(rec[16:24], math.Float64bits(adr))
	binary.LittleEndian.PutUint32(rec[28:32], math.Float32bits(float32(dop)))
	binary.LittleEndian.PutUint32(rec[32:36], math.Float32bits(float32(snr)))
	binary.LittleEndian.PutUint32(rec[36:40], math.Float32bits(float32(lockt)))
	binary.LittleEndian.PutUint32(rec[40:44], status)
	return rec
}

func rangeFrame(nobs int, rec []byte, week int, towMs uint32) []byte {
	body := make([]byte, 4+len(rec))
	binary.LittleEndian.PutUint32(body[0:4], uint32(nobs))
	copy(body[4:], rec)
	return buildFrame(idRange, week, towMs, body)
}

// TestScenarioS1EmptyFrameIsIncomplete feeds a zero-length, zero-week
// frame with a valid CRC. Expect StatusIncomplete, no state change.
func TestScenarioS1EmptyFrameIsIncomplete(t *testing.T) {
	d := newTestDecoder()
	frame := buildFrame(idRange, 0, 0, nil)

	status := feedFrame(d, frame)
	assert.Equal(t, StatusIncomplete, status)
	assert.Equal(t, 0, d.Obs.N)
}

// TestScenarioS2RangeObservation matches SPEC_FULL S2.
func TestScenarioS2RangeObservation(t *testing.T) {
	d := newTestDecoder()
	status := buildStatus(0, 0, true, true, true, false) // GPS L1C, all locks
	rec := buildRangeRecord(status, 5, 22000000.0, -1e8, -1000, 45.0, 10.0)

	s := feedFrame(d, rangeFrame(1, rec, 2200, 345600000))
	assert.Equal(t, StatusObs, s)
	assert.Equal(t, 1, d.Obs.N)

	sat := satcat.SatNo(satcat.SysGPS, 5)
	obs := d.Obs.Data[0]
	assert.Equal(t, sat, obs.Sat)
	assert.InDelta(t, 1e8, obs.L[0], 1e-6)
	assert.InDelta(t, 22000000.0, obs.P[0], 1e-6)
	assert.InDelta(t, -1000.0, obs.D[0], 1e-3)
	assert.Equal(t, uint16(180), obs.SNR[0])
	assert.Equal(t, uint8(0), obs.LLI[0])
	assert.Equal(t, uint8(satcat.CodeL1C), obs.Code[0])
}

// TestScenarioS3LLISlipOneSecondLater matches SPEC_FULL S3.
func TestScenarioS3LLISlipOneSecondLater(t *testing.T) {
	d := newTestDecoder()
	status := buildStatus(0, 0, true, true, true, false)

	rec1 := buildRangeRecord(status, 5, 22000000.0, -1e8, -1000, 45.0, 10.0)
	feedFrame(d, rangeFrame(1, rec1, 2200, 345600000))

	rec2 := buildRangeRecord(status, 5, 22000000.0, -1e8, -1000, 45.0, 5.0)
	feedFrame(d, rangeFrame(1, rec2, 2200, 345601000))

	sat := satcat.SatNo(satcat.SysGPS, 5)
	var obs *ObsD
	for i := 0; i < d.Obs.N; i++ {
		if d.Obs.Data[i].Sat == sat {
			obs = &d.Obs.Data[i]
		}
	}
	assert.NotNil(t, obs)
	assert.NotEqual(t, uint8(0), obs.LLI[0]&lliSlip)
}

// TestScenarioS4GPSEphemerisDedup matches SPEC_FULL S4.
func TestScenarioS4GPSEphemerisDedup(t *testing.T) {
	d := newTestDecoder()
	body := buildGPSEphBody(12, 2200, 0, 50, 50, 302400, 302400)
	frame := buildFrame(idGPSEph, 2200, 302400000, body)

	first := feedFrame(d, frame)
	second := feedFrame(d, frame)

	assert.Equal(t, StatusEph, first)
	assert.Equal(t, StatusIncomplete, second)
}

// TestScenarioS5GalileoFNavSelection matches SPEC_FULL S5.
func TestScenarioS5GalileoFNavSelection(t *testing.T) {
	d := newTestDecoder()
	body := buildGALEphBody(3, 1, 77, 302400) // rcv_inav=0 implied, rcv_fnav=1
	status := feedFrame(d, buildFrame(idGALEph, 2200, 302400000, body))

	assert.Equal(t, StatusEph, status)
	sat := satcat.SatNo(satcat.SysGAL, 3)
	assert.Equal(t, (1<<1)|(1<<8), d.Nav.EphsAlt[sat-1].Code)
}

// TestScenarioS6CorruptedCRCRejected matches SPEC_FULL S6.
func TestScenarioS6CorruptedCRCRejected(t *testing.T) {
	d := newTestDecoder()
	status := buildStatus(0, 0, true, true, true, false)
	rec := buildRangeRecord(status, 5, 22000000.0, -1e8, -1000, 45.0, 10.0)
	frame := rangeFrame(1, rec, 2200, 345600000)
	frame[len(frame)-1] ^= 0xFF

	s := feedFrame(d, frame)
	assert.Equal(t, StatusError, s)
	assert.Equal(t, 0, d.Obs.N)
}

package decoder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGpsTimeRoundTrip(t *testing.T) {
	t0 := GpsTime(2200, 345600.5)
	week, tow := TimeToGpsWeek(t0)
	assert.Equal(t, 2200, week)
	assert.InDelta(t, 345600.5, tow, 1e-6)
}

func TestTimeAddTimeDiff(t *testing.T) {
	t0 := GpsTime(2200, 100.25)
	t1 := TimeAdd(t0, 10.5)
	assert.InDelta(t, 10.5, TimeDiff(t1, t0), 1e-9)
}

func TestBDTToGpsRoundTrip(t *testing.T) {
	g := GpsTime(2200, 100000.0)
	bdt := GpsToBDT(g)
	assert.InDelta(t, 14.0, TimeDiff(g, bdt), 1e-9)
	assert.InDelta(t, 0.0, TimeDiff(BDTToGps(bdt), g), 1e-9)
}

func TestAdjGpsWeekRollover(t *testing.T) {
	full := AdjGpsWeek(1)
	rolled := full % 1024
	assert.Equal(t, full, AdjGpsWeek(rolled))
}

func TestAdjWeekHalfWeekBoundary(t *testing.T) {
	ref := GpsTime(2200, 345600.0)
	adj := adjWeek(ref, 345600.0-400000.0)
	week, tow := TimeToGpsWeek(adj)
	assert.Equal(t, 2200, week)
	assert.InDelta(t, 345600.0-400000.0+604800.0, tow, 1e-6)
}

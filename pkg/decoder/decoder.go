package decoder

import (
	"io"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/fxgnss/unicoreraw/pkg/satcat"
)

// Decoder owns all of a stream's mutable decode state: the frame
// reassembly buffer, per-satellite lock-time history, the observation
// epoch accumulator and the navigation store. Unlike the teacher's
// global raw_t, a Decoder is a plain value the caller constructs and
// threads explicitly — one instance per independent byte stream.
type Decoder struct {
	id     uuid.UUID
	log    logrus.FieldLogger
	opt    Options
	verbose bool

	buff   [maxRawLen]byte
	nbyte  int
	length int

	Time Gtime

	Obs ObsBuf
	Nav NavStore

	// lock-state matrices, indexed [sat-1][slot].
	tObs     [satcat.MaxSat][nFreq + nExOBS]Gtime
	lockTime [satcat.MaxSat][nFreq + nExOBS]float64
	halfc    [satcat.MaxSat][nFreq + nExOBS]uint8

	// MsgType is the last diagnostic string produced, mirroring the
	// teacher's raw.MsgType, populated only when Verbose is set.
	MsgType string

	// LastEphSat/LastEphSet record which ephemeris slot was last
	// written, mirroring raw.EphSat/raw.EphSet.
	LastEphSat int
	LastEphSet int
}

// New constructs a Decoder bound to logger (nil is accepted and becomes
// a discard logger) and options opt.
func New(logger logrus.FieldLogger, opt Options) *Decoder {
	if logger == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		logger = logrus.NewEntry(discard)
	}
	id := uuid.New()
	return &Decoder{
		id:  id,
		log: logger.WithFields(logrus.Fields{"instance": id.String(), "component": "decoder"}),
		opt: opt,
	}
}

// SetVerbose toggles MsgType diagnostic-string population, mirroring the
// teacher's raw.OutType > 0 check.
func (d *Decoder) SetVerbose(v bool) { d.verbose = v }

// ID returns the decoder's correlation UUID.
func (d *Decoder) ID() uuid.UUID { return d.id }

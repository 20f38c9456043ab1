// Command unicoreraw streams a Unicore/NovAtel OEM4-style binary
// telemetry capture, from a serial port or a plain file, through
// pkg/decoder and logs each decoded frame.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/fxgnss/unicoreraw/pkg/decoder"
)

func main() {
	app := &cli.App{
		Name:  "unicoreraw",
		Usage: "decode a Unicore/NovAtel OEM4-style GNSS telemetry stream",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "source",
				Aliases:  []string{"s"},
				Usage:    "serial port (e.g. /dev/ttyUSB0:115200) or file path",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "opt",
				Usage: "decoder option string (e.g. \"-EPHALL -GALFNAV\")",
			},
			&cli.BoolFlag{
				Name:  "file",
				Usage: "treat source as a plain file instead of a serial port",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "log per-frame diagnostics",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		logrus.WithError(err).Fatal("unicoreraw: fatal error")
	}
}

func run(c *cli.Context) error {
	log := logrus.New()
	if c.Bool("verbose") {
		log.SetLevel(logrus.DebugLevel)
	}

	opt, err := decoder.ParseOptions(c.String("opt"))
	if err != nil {
		return err
	}
	d := decoder.New(log, opt)
	d.SetVerbose(c.Bool("verbose"))

	source := c.String("source")
	if c.Bool("file") {
		return runFile(d, log, source)
	}
	return runSerial(d, log, source)
}

func runFile(d *decoder.Decoder, log *logrus.Logger, path string) error {
	f, err := openFile(path)
	if err != nil {
		return err
	}
	defer f.Close()

	for {
		status := d.InputFile(f)
		if status == decoder.StatusEOF {
			return nil
		}
		logFrame(log, d, status)
	}
}

func runSerial(d *decoder.Decoder, log *logrus.Logger, path string) error {
	p, err := openSerial(path)
	if err != nil {
		return err
	}
	defer p.Close()

	var b [1]byte
	for {
		n, err := p.Read(b[:])
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return fmt.Errorf("read serial: %w", err)
		}
		if n == 0 {
			continue
		}
		status := d.InputByte(b[0])
		if status == decoder.StatusIncomplete {
			continue
		}
		logFrame(log, d, status)
	}
}

func logFrame(log *logrus.Logger, d *decoder.Decoder, status int) {
	switch status {
	case decoder.StatusError, decoder.StatusEOF:
		return
	case decoder.StatusObs:
		log.WithField("nobs", d.Obs.N).Info("observation epoch decoded")
	case decoder.StatusEph:
		log.WithFields(logrus.Fields{
			"sat": d.LastEphSat,
			"set": d.LastEphSet,
		}).Info("ephemeris decoded")
	default:
		if d.MsgType != "" {
			log.Debug(strings.TrimSpace(d.MsgType))
		}
	}
}

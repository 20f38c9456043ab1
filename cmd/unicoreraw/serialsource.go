package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.bug.st/serial"
)

const (
	defaultBaudRate = 115200
	defaultDataBits = 8
	defaultStopBits = 1
	defaultTimeout  = 100 * time.Millisecond
)

// openSerial opens a serial port described by path, in the teacher's
// "port[:brate[:bsize[:parity[:stopb]]]]" format. Grounded on
// bramburn-gnssgo/pkg/gnssgo/stream/serial.go's OpenSerial.
func openSerial(path string) (serial.Port, error) {
	brate, bsize, stopb := defaultBaudRate, defaultDataBits, defaultStopBits
	parity := byte('N')

	port := path
	if idx := strings.Index(path, ":"); idx > 0 {
		port = path[:idx]
		parts := strings.Split(path[idx+1:], ":")
		if len(parts) > 0 && parts[0] != "" {
			if v, err := strconv.Atoi(parts[0]); err == nil {
				brate = v
			}
		}
		if len(parts) > 1 && parts[1] != "" {
			if v, err := strconv.Atoi(parts[1]); err == nil {
				bsize = v
			}
		}
		if len(parts) > 2 && parts[2] != "" {
			parity = parts[2][0]
		}
		if len(parts) > 3 && parts[3] != "" {
			if v, err := strconv.Atoi(parts[3]); err == nil {
				stopb = v
			}
		}
	}

	mode := &serial.Mode{
		BaudRate: brate,
		DataBits: bsize,
		StopBits: serial.OneStopBit,
		Parity:   serial.NoParity,
	}
	switch stopb {
	case 2:
		mode.StopBits = serial.TwoStopBits
	default:
		mode.StopBits = serial.OneStopBit
	}
	switch parity {
	case 'E', 'e':
		mode.Parity = serial.EvenParity
	case 'O', 'o':
		mode.Parity = serial.OddParity
	}

	p, err := serial.Open(port, mode)
	if err != nil {
		return nil, fmt.Errorf("open serial %s: %w", port, err)
	}
	if err := p.SetReadTimeout(defaultTimeout); err != nil {
		p.Close()
		return nil, fmt.Errorf("set read timeout: %w", err)
	}
	return p, nil
}

package decoder

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Options is the parsed form of the receiver option string the teacher
// lineage passes around as a raw "-FOO -BAR=1" string (raw.Opt). This
// decoder still accepts and forwards the raw string for components that
// only need substring checks (checkSlot), but also exposes one strongly
// typed, validated view for callers and the CLI.
type Options struct {
	Raw string

	EphAll    bool
	GL1P      bool
	GL2X      bool
	RL2C      bool
	EL1B      bool
	GALINav   bool `validate:"excluded_with=GALFNav"`
	GALFNav   bool `validate:"excluded_with=GALINav"`
	GLOBias   float64
	hasBias   bool
}

var optionsValidator = validator.New()

// ParseOptions tokenizes a space-separated option string into Options and
// validates it, rejecting a simultaneous -GALINAV/-GALFNAV request and a
// malformed -GLOBIAS= value.
func ParseOptions(raw string) (Options, error) {
	opt := Options{Raw: raw}
	for _, tok := range strings.Fields(raw) {
		switch {
		case tok == "-EPHALL":
			opt.EphAll = true
		case tok == "-GL1P":
			opt.GL1P = true
		case tok == "-GL2X":
			opt.GL2X = true
		case tok == "-RL2C":
			opt.RL2C = true
		case tok == "-EL1B":
			opt.EL1B = true
		case tok == "-GALINAV":
			opt.GALINav = true
		case tok == "-GALFNAV":
			opt.GALFNav = true
		case strings.HasPrefix(tok, "-GLOBIAS="):
			v, err := strconv.ParseFloat(strings.TrimPrefix(tok, "-GLOBIAS="), 64)
			if err != nil {
				return Options{}, fmt.Errorf("decoder: invalid -GLOBIAS= token %q: %w", tok, err)
			}
			opt.GLOBias = v
			opt.hasBias = true
		}
	}
	if err := optionsValidator.Struct(opt); err != nil {
		return Options{}, fmt.Errorf("decoder: invalid options %q: %w", raw, err)
	}
	return opt, nil
}

// hasToken reports whether raw contains token, matching the teacher's
// strings.Contains(raw.Opt, "-FOO") checks for components that still work
// directly off the option string (trackstat.go's checkSlot).
func hasToken(raw, token string) bool {
	return strings.Contains(raw, token)
}

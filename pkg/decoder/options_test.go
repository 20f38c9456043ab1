package decoder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseOptionsTokens(t *testing.T) {
	opt, err := ParseOptions("-EPHALL -GL1P -RL2C -EL1B")
	assert.NoError(t, err)
	assert.True(t, opt.EphAll)
	assert.True(t, opt.GL1P)
	assert.True(t, opt.RL2C)
	assert.True(t, opt.EL1B)
	assert.False(t, opt.GALINav)
}

func TestParseOptionsGLOBias(t *testing.T) {
	opt, err := ParseOptions("-GLOBIAS=-0.5")
	assert.NoError(t, err)
	assert.InDelta(t, -0.5, opt.GLOBias, 1e-9)
	assert.True(t, opt.hasBias)
}

func TestParseOptionsGLOBiasMalformed(t *testing.T) {
	_, err := ParseOptions("-GLOBIAS=notanumber")
	assert.Error(t, err)
}

func TestParseOptionsRejectsMutuallyExclusiveGalileoMode(t *testing.T) {
	_, err := ParseOptions("-GALINAV -GALFNAV")
	assert.Error(t, err)
}

func TestParseOptionsAllowsSingleGalileoMode(t *testing.T) {
	opt, err := ParseOptions("-GALFNAV")
	assert.NoError(t, err)
	assert.True(t, opt.GALFNav)
	assert.False(t, opt.GALINav)
}

func TestParseOptionsEmpty(t *testing.T) {
	opt, err := ParseOptions("")
	assert.NoError(t, err)
	assert.Equal(t, Options{Raw: ""}, opt)
}

func TestHasToken(t *testing.T) {
	assert.True(t, hasToken("-GL1P -RL2C", "-GL1P"))
	assert.False(t, hasToken("-GL1P -RL2C", "-EL1B"))
}

package charts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBandColorEndpoints(t *testing.T) {
	// a 5-step scale pins its ends to the gradient stops
	assert.Equal(t, "rgba(248,113,113,0.2)", BandColor(0, 5))
	assert.Equal(t, "rgba(233,233,233,0.2)", BandColor(2, 5))
	assert.Equal(t, "rgba(12,185,129,0.2)", BandColor(4, 5))
}

func TestBandColorAlwaysTranslucent(t *testing.T) {
	for ordinal := 0; ordinal < 5; ordinal++ {
		c := BandColor(ordinal, 5)
		assert.True(t, strings.HasPrefix(c, "rgba("), c)
		assert.True(t, strings.HasSuffix(c, ",0.2)"), c)
	}
}

func TestBandColorDegenerateScale(t *testing.T) {
	assert.Equal(t, "rgba(248,113,113,0.2)", BandColor(0, 1))
}

func TestHeatRampEndpoints(t *testing.T) {
	ramp := HeatRamp(9)
	require.Len(t, ramp, 9)
	assert.Equal(t, "#ffffff", ramp[0])
	assert.Equal(t, "#6366f1", ramp[8])
}

func TestHeatRampMinimumStops(t *testing.T) {
	ramp := HeatRamp(0)
	require.Len(t, ramp, 2)
	assert.Equal(t, "#ffffff", ramp[0])
	assert.Equal(t, "#6366f1", ramp[1])
}

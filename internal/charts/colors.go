package charts

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Quality gradient stops, worst to best. Intermediate ordinals interpolate in
// Lab so the tint shifts smoothly rather than jumping between a discrete
// palette.
var (
	qualityLow     = mustHex("#F87171")
	qualityNeutral = mustHex("#E9E9E9")
	qualityHigh    = mustHex("#0CB981")

	heatLow  = mustHex("#FFFFFF")
	heatHigh = mustHex("#6366F1")
)

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// BandColor maps a quality ordinal on an n-step scale to a translucent
// background tint: low through neutral to high.
func BandColor(ordinal, steps int) string {
	t := 0.0
	if steps > 1 {
		t = float64(ordinal) / float64(steps-1)
	}
	var c colorful.Color
	if t <= 0.5 {
		c = qualityLow.BlendLab(qualityNeutral, t*2).Clamped()
	} else {
		c = qualityNeutral.BlendLab(qualityHigh, (t-0.5)*2).Clamped()
	}
	r, g, b := c.RGB255()
	return fmt.Sprintf("rgba(%d,%d,%d,0.2)", r, g, b)
}

// HeatRamp returns n hex stops from the minimum to the maximum cell intensity,
// interpolated in Lab, for the heatmap's visual map.
func HeatRamp(n int) []string {
	if n < 2 {
		n = 2
	}
	stops := make([]string, n)
	for i := range stops {
		t := float64(i) / float64(n-1)
		stops[i] = heatLow.BlendLab(heatHigh, t).Clamped().Hex()
	}
	return stops
}

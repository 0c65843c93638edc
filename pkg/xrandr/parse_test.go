package xrandr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSingleOutput(t *testing.T) {
	outputs, err := Parse(queryLaptopOnly)
	require.NoError(t, err)

	require.Len(t, outputs, 6)
	names := make([]string, len(outputs))
	for i, out := range outputs {
		names[i] = out.Name
	}
	assert.Equal(t, []string{"eDP1", "DP1", "DP2", "HDMI1", "HDMI2", "VIRTUAL1"}, names)

	edp := outputs[0]
	assert.True(t, edp.Connected)
	assert.False(t, edp.Primary)
	require.NotNil(t, edp.Geometry)
	assert.Equal(t, Geometry{Width: 1920, Height: 1080, XOffset: 0, YOffset: 0}, *edp.Geometry)
	assert.Equal(t, "309mm x 173mm", edp.PhysicalSize)
	require.Len(t, edp.Modes, 20)

	// first mode line: "1920x1080  60.01*+  59.93"
	assert.Equal(t, Mode{Width: 1920, Height: 1080, Frequency: 60.01, Active: true, Preferred: true}, edp.Modes[0])
	// last mode line: "640x360  60.00"
	assert.Equal(t, Mode{Width: 640, Height: 360, Frequency: 60.00}, edp.Modes[19])

	for _, out := range outputs[1:] {
		assert.False(t, out.Connected, out.Name)
		assert.Nil(t, out.Geometry, out.Name)
		assert.Empty(t, out.Modes, out.Name)
	}

	assert.Len(t, Connected(outputs), 1)
}

func TestParseLaptopWithProjector(t *testing.T) {
	outputs, err := Parse(queryLaptopProjector)
	require.NoError(t, err)
	require.Len(t, outputs, 6)

	connected := Connected(outputs)
	require.Len(t, connected, 2)
	assert.Equal(t, "eDP1", connected[0].Name)
	assert.Equal(t, "HDMI2", connected[1].Name)

	hdmi := connected[1]
	// projector is connected but not active yet
	assert.Nil(t, hdmi.Geometry)
	// interlaced modes (1920x1080i etc.) are skipped
	require.Len(t, hdmi.Modes, 17)

	// "1280x800  59.81 +": preferred marker in its own token
	assert.Equal(t, Mode{Width: 1280, Height: 800, Frequency: 59.81, Preferred: true}, hdmi.Modes[0])
	// "1920x1080  60.00  50.00  59.94  30.00  24.00  29.97  23.98"
	assert.Equal(t, Mode{Width: 1920, Height: 1080, Frequency: 60.00}, hdmi.Modes[2])
}

func TestParseDualMonitors(t *testing.T) {
	outputs, err := Parse(queryDualMonitors)
	require.NoError(t, err)
	require.Len(t, outputs, 4)

	connected := Connected(outputs)
	require.Len(t, connected, 2)

	dvi, hdmi := connected[0], connected[1]
	assert.Equal(t, "DVI-D-0", dvi.Name)
	assert.False(t, dvi.Primary)
	require.NotNil(t, dvi.Geometry)
	assert.Equal(t, 1920, dvi.Geometry.XOffset)

	assert.Equal(t, "HDMI-0", hdmi.Name)
	assert.True(t, hdmi.Primary)
	require.NotNil(t, hdmi.Geometry)
	assert.Equal(t, 0, hdmi.Geometry.XOffset)

	// "1280x1024  75.02  60.02": first rate wins when none is starred
	assert.Equal(t, Mode{Width: 1280, Height: 1024, Frequency: 75.02}, dvi.Modes[3])
}

func TestParseKnownSample(t *testing.T) {
	sample := "Screen 0: minimum 8 x 8, current 1920 x 1080, maximum 32767 x 32767\n" +
		"HDMI-1 connected (normal left inverted right x axis y axis)\n" +
		"   1920x1080     60.00 +\n" +
		"   1280x720      59.94\n"

	outputs, err := Parse(sample)
	require.NoError(t, err)
	require.Len(t, outputs, 1)
	assert.Equal(t, "HDMI-1", outputs[0].Name)
	require.Len(t, outputs[0].Modes, 2)
	assert.Equal(t, "1920x1080", outputs[0].Modes[0].Resolution())
	assert.Equal(t, "1280x720", outputs[0].Modes[1].Resolution())
}

func TestParseActiveRateNotFirst(t *testing.T) {
	// xrandr can star any rate on the line, not just the first one
	sample := "HDMI-1 connected 1360x768+0+0 (normal left inverted right x axis y axis) 510mm x 287mm\n" +
		"   1360x768      59.80    59.96*\n" +
		"   1280x720      60.00+   50.00\n"

	outputs, err := Parse(sample)
	require.NoError(t, err)
	require.Len(t, outputs, 1)
	require.Len(t, outputs[0].Modes, 2)

	assert.Equal(t, Mode{Width: 1360, Height: 768, Frequency: 59.96, Active: true}, outputs[0].Modes[0])
	assert.Equal(t, Mode{Width: 1280, Height: 720, Frequency: 60.00, Preferred: true}, outputs[0].Modes[1])
}

func TestParseEmpty(t *testing.T) {
	outputs, err := Parse("")
	require.NoError(t, err)
	assert.Empty(t, outputs)

	outputs, err = Parse("Screen 0: minimum 8 x 8, current 0 x 0, maximum 32767 x 32767\n")
	require.NoError(t, err)
	assert.Empty(t, outputs)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{
			name:  "mode line before any output",
			query: "   1920x1080  60.00\n",
		},
		{
			name:  "garbage output line",
			query: "this is not xrandr output\n",
		},
		{
			name:  "garbage mode line",
			query: "HDMI-1 connected (normal)\n   not-a-resolution  60.00\n",
		},
		{
			name:  "garbage rate token",
			query: "HDMI-1 connected (normal)\n   1920x1080  sixty\n",
		},
		{
			name:  "mode line without rates",
			query: "HDMI-1 connected (normal)\n   1920x1080\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.query)
			assert.Error(t, err)
		})
	}
}

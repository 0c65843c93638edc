// Package xrandr talks to the xrandr binary: it runs it, parses its
// --query listing into a small data model, and surfaces its failures.
package xrandr

import "fmt"

// Mode is a single resolution setting reported for an output.
// One Mode per resolution line of `xrandr --query`; when a line lists
// several refresh rates, Frequency is the active rate if one is
// starred, otherwise the first listed rate.
type Mode struct {
	Width     int     `json:"width"`
	Height    int     `json:"height"`
	Frequency float64 `json:"frequency"`
	Active    bool    `json:"active"`
	Preferred bool    `json:"preferred"`
}

// Resolution returns the mode formatted the way xrandr expects it,
// e.g. "1920x1080".
func (m Mode) Resolution() string {
	return fmt.Sprintf("%dx%d", m.Width, m.Height)
}

// Geometry is the current placement of an active output.
type Geometry struct {
	Width   int `json:"width"`
	Height  int `json:"height"`
	XOffset int `json:"x_offset"`
	YOffset int `json:"y_offset"`
}

// Output is a display connector as enumerated by xrandr, in listing
// order. Geometry is nil for outputs that are not currently active.
type Output struct {
	Name         string    `json:"name"`
	Connected    bool      `json:"connected"`
	Primary      bool      `json:"primary"`
	Geometry     *Geometry `json:"geometry,omitempty"`
	Info         string    `json:"info"`
	PhysicalSize string    `json:"physical_size,omitempty"`
	Modes        []Mode    `json:"modes"`
}

// Connected filters outputs down to the connected ones, preserving
// listing order. The first connected output is the main output, the
// second is the secondary one.
func Connected(outputs []Output) []Output {
	var connected []Output
	for _, out := range outputs {
		if out.Connected {
			connected = append(connected, out)
		}
	}
	return connected
}
